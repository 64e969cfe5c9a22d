package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Duncanian/develop-v2/internal/adapter/logger"
	"github.com/Duncanian/develop-v2/internal/domain"
	"github.com/Duncanian/develop-v2/internal/interfaces"
)

// Client-facing order messages, kept verbatim from the original API
// contract. Validation failures respond 200 with a message body rather than
// a 4xx status; that inconsistency is part of the observed contract.
const (
	msgMealIDsEmpty    = "Please enter an id to add your meals to the menu"
	msgMealIDsNotList  = "Please enter list id values for meals"
	msgMealIDsNotInts  = "List values should only be in numbers"
	msgMealNotInMenu   = "Please enter food that is in the menu"
	msgOrderDuplicate  = "Sorry, the meal is already in your order"
	msgOrderCreated    = "Your order was successfully created!"
	msgOrderNotFound   = "The order was not found"
	msgQtyEmpty        = "Please enter the quantity you want to change to"
	msgQtyNotNumber    = "Please enter a number value for quantity"
	msgOrderModified   = "Order modified!"
	msgOrderRemoved    = "The order has been removed"
	msgInvalidBody     = "Invalid request body"
	msgInvalidOrderID  = "Invalid order id"
	msgInternalFailure = "Something went wrong, please try again"
)

type OrderHandler struct {
	service interfaces.OrderService
	logger  logger.Logger
}

func NewOrderHandler(service interfaces.OrderService, lgr logger.Logger) *OrderHandler {
	return &OrderHandler{service: service, logger: lgr}
}

type createOrderRequest struct {
	MealIDs json.RawMessage `json:"meal_ids"`
}

type updateOrderRequest struct {
	Qty json.RawMessage `json:"qty"`
}

type orderView struct {
	ID       int                `json:"id"`
	MealIDs  []int              `json:"meal_ids"`
	Quantity int                `json:"qty"`
	Status   domain.OrderStatus `json:"status"`
}

// Create handles POST /api/v2/orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, msgTokenMissing)
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusOK, msgInvalidBody)
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

	_, err := h.service.Create(r.Context(), userID, mealIDs)
	switch {
	case errors.Is(err, domain.ErrMealNotInMenu):
		respondMessage(w, http.StatusOK, msgMealNotInMenu)
	case errors.Is(err, domain.ErrDuplicateOrder):
		respondMessage(w, http.StatusOK, msgOrderDuplicate)
	case err != nil:
		h.logger.Error("order_create_failed", "Order creation failed", "", nil, err)
		respondMessage(w, http.StatusInternalServerError, msgInternalFailure)
	default:
		respondMessage(w, http.StatusOK, msgOrderCreated)
	}
}

// Update handles PUT /api/v2/orders/{id}. The order's existence is checked
// before the quantity field is validated; a bad qty against a missing order
// reports not-found.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondMessage(w, http.StatusOK, msgInvalidOrderID)
		return
	}

	if _, err := h.service.Get(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			respondMessage(w, http.StatusOK, msgOrderNotFound)
			return
		}
		h.logger.Error("order_lookup_failed", "Order lookup failed", "", nil, err)
		respondMessage(w, http.StatusInternalServerError, msgInternalFailure)
		return
	}

	var req updateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusOK, msgInvalidBody)
		return
	}

	qty, outcome := validateQty(req.Qty)
	switch outcome {
	case qtyEmpty:
		respondMessage(w, http.StatusOK, msgQtyEmpty)
		return
	case qtyNotNumber:
		respondMessage(w, http.StatusOK, msgQtyNotNumber)
		return
	}

	switch err := h.service.UpdateQuantity(r.Context(), id, qty); {
	case errors.Is(err, domain.ErrOrderNotFound):
		respondMessage(w, http.StatusOK, msgOrderNotFound)
	case err != nil:
		h.logger.Error("order_update_failed", "Order update failed", "", nil, err)
		respondMessage(w, http.StatusInternalServerError, msgInternalFailure)
	default:
		respondJSON(w, http.StatusOK, dataResponse{Data: msgOrderModified})
	}
}

// Delete handles DELETE /api/v2/orders/{id}.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondMessage(w, http.StatusOK, msgInvalidOrderID)
		return
	}

	switch err := h.service.Delete(r.Context(), id); {
	case errors.Is(err, domain.ErrOrderNotFound):
		respondMessage(w, http.StatusOK, msgOrderNotFound)
	case err != nil:
		h.logger.Error("order_delete_failed", "Order deletion failed", "", nil, err)
		respondMessage(w, http.StatusInternalServerError, msgInternalFailure)
	default:
		respondMessage(w, http.StatusOK, msgOrderRemoved)
	}
}

// List handles GET /api/v2/orders and returns the caller's orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, msgTokenMissing)
		return
	}

	orders, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("order_list_failed", "Order listing failed", "", nil, err)
		respondMessage(w, http.StatusInternalServerError, msgInternalFailure)
		return
	}

	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, orderView{
			ID:       o.ID,
			MealIDs:  o.MealIDs,
			Quantity: o.Quantity,
			Status:   o.Status,
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{"orders": views})
}
