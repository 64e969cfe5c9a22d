package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Duncanian/develop-v2/internal/adapter/logger"
	"github.com/Duncanian/develop-v2/internal/domain"
	"github.com/Duncanian/develop-v2/internal/interfaces"
)

const (
	msgMenuCreated  = "Menu created successfully!"
	msgMenuNameReq  = "Please enter a name for the menu"
	msgMenuNotFound = "There is no menu yet"
	msgMealNameReq  = "Please enter a name for the meal"
	msgMealBadPrice = "Please enter a number value for price"
	msgMealCreated  = "Meal added successfully!"
)

type MenuHandler struct {
	service interfaces.MenuService
	logger  logger.Logger
}

func NewMenuHandler(service interfaces.MenuService, lgr logger.Logger) *MenuHandler {
	return &MenuHandler{service: service, logger: lgr}
}

type createMenuRequest struct {
	MenuName string          `json:"menu_name"`
	MealIDs  json.RawMessage `json:"meal_ids"`
}

type createMealRequest struct {
	MealName string          `json:"meal_name"`
	Price    json.RawMessage `json:"price"`
}

type mealView struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CreateMenu handles POST /api/v2/menu. The meal_ids field is validated with
// the same shape rules as order creation.
func (h *MenuHandler) CreateMenu(w http.ResponseWriter, r *http.Request) {
	var req createMenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusOK, msgInvalidBody)
		return
	}

	if strings.TrimSpace(req.MenuName) == "" {
		respondMessage(w, http.StatusOK, msgMenuNameReq)
		return
	}

	mealIDs, outcome := validateMealIDs(req.MealIDs)
	switch outcome {
	case mealIDsEmpty:
		respondMessage(w, http.StatusOK, msgMealIDsEmpty)
		return
	case mealIDsNotList:
		respondMessage(w, http.StatusOK, msgMealIDsNotList)
		return
	case mealIDsNotNumbers:
		respondMessage(w, http.StatusOK, msgMealIDsNotInts)
		return
	}

	switch _, err := h.service.CreateMenu(r.Context(), strings.TrimSpace(req.MenuName), mealIDs); {
	case errors.Is(err, domain.ErrMealNotInMenu):
		respondMessage(w, http.StatusOK, msgMealNotInMenu)
	case err != nil:
		h.logger.Error("menu_create_failed", "Menu creation failed", "", nil, err)
		respondMessage(w, http.StatusInternalServerError, msgInternalFailure)
	default:
		respondMessage(w, http.StatusOK, msgMenuCreated)
	}
}

// GetMenu handles GET /api/v2/menu and returns the current menu with meal
// details.
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	menu, meals, err := h.service.CurrentMenu(r.Context())
	if errors.Is(err, domain.ErrMenuNotFound) {
		respondMessage(w, http.StatusOK, msgMenuNotFound)
		return
	}
	if err != nil {
		h.logger.Error("menu_fetch_failed", "Menu fetch failed", "", nil, err)
		respondMessage(w, http.StatusInternalServerError, msgInternalFailure)
		return
	}

	views := make([]mealView, 0, len(meals))
	for _, meal := range meals {
		views = append(views, mealView{ID: meal.ID, Name: meal.Name, Price: meal.Price})
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"menu_name": menu.Name,
		"meals":     views,
	})
}

// CreateMeal handles POST /api/v2/meals.
func (h *MenuHandler) CreateMeal(w http.ResponseWriter, r *http.Request) {
	var req createMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusOK, msgInvalidBody)
		return
	}

	if strings.TrimSpace(req.MealName) == "" {
		respondMessage(w, http.StatusOK, msgMealNameReq)
		return
	}

	var price float64
	if len(req.Price) == 0 || json.Unmarshal(req.Price, &price) != nil || price <= 0 {
		respondMessage(w, http.StatusOK, msgMealBadPrice)
		return
	}

	if _, err := h.service.AddMeal(r.Context(), strings.TrimSpace(req.MealName), price); err != nil {
		h.logger.Error("meal_create_failed", "Meal creation failed", "", nil, err)
		respondMessage(w, http.StatusInternalServerError, msgInternalFailure)
		return
	}
	respondMessage(w, http.StatusOK, msgMealCreated)
}

// ListMeals handles GET /api/v2/meals.
func (h *MenuHandler) ListMeals(w http.ResponseWriter, r *http.Request) {
	meals, err := h.service.ListMeals(r.Context())
	if err != nil {
		h.logger.Error("meal_list_failed", "Meal listing failed", "", nil, err)
		respondMessage(w, http.StatusInternalServerError, msgInternalFailure)
		return
	}

	views := make([]mealView, 0, len(meals))
	for _, meal := range meals {
		views = append(views, mealView{ID: meal.ID, Name: meal.Name, Price: meal.Price})
	}
	respondJSON(w, http.StatusOK, map[string]any{"meals": views})
}
