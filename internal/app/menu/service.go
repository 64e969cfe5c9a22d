package menu

import (
	"context"
	"fmt"
	"time"

	"github.com/Duncanian/develop-v2/internal/adapter/logger"
	"github.com/Duncanian/develop-v2/internal/domain"
	"github.com/Duncanian/develop-v2/internal/interfaces"
)

// Service maintains the meal catalog and the menu built from it.
type Service struct {
	meals  interfaces.MealRepository
	menus  interfaces.MenuRepository
	logger logger.Logger
}

func NewService(meals interfaces.MealRepository, menus interfaces.MenuRepository, lgr logger.Logger) *Service {
	return &Service{meals: meals, menus: menus, logger: lgr}
}

func (s *Service) AddMeal(ctx context.Context, name string, price float64) (*domain.Meal, error) {
	meal := &domain.Meal{Name: name, Price: price}
	if err := s.meals.Create(ctx, meal); err != nil {
		s.logger.Error("meal_create_failed", "Failed to create meal", "", nil, err)
		return nil, err
	}
	s.logger.Info("meal_created", "Meal added to catalog", "", map[string]interface{}{
		"meal_id": meal.ID,
		"name":    meal.Name,
	})
	return meal, nil
}

func (s *Service) ListMeals(ctx context.Context) ([]*domain.Meal, error) {
	return s.meals.List(ctx)
}

// CreateMenu builds a menu from catalog meal ids. Every id must resolve to
// an existing meal; repeated ids collapse to a single entry.
func (s *Service) CreateMenu(ctx context.Context, name string, mealIDs []int) (*domain.Menu, error) {
	mealIDs = domain.UniqueIDs(mealIDs)

	missing, err := s.meals.MissingIDs(ctx, mealIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to check meal ids: %w", err)
	}
	if len(missing) > 0 {
		return nil, domain.ErrMealNotInMenu
	}

	menu := &domain.Menu{Name: name, MealIDs: mealIDs, CreatedAt: time.Now()}
	if err := s.menus.Create(ctx, menu); err != nil {
		s.logger.Error("menu_create_failed", "Failed to create menu", "", nil, err)
		return nil, err
	}
	s.logger.Info("menu_created", "Menu created", "", map[string]interface{}{
		"menu_id": menu.ID,
		"name":    menu.Name,
	})
	return menu, nil
}

// CurrentMenu returns the latest menu together with its meal details.
func (s *Service) CurrentMenu(ctx context.Context) (*domain.Menu, []*domain.Meal, error) {
	menu, err := s.menus.Current(ctx)
	if err != nil {
		return nil, nil, err
	}

	all, err := s.meals.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	inMenu := make(map[int]bool, len(menu.MealIDs))
	for _, id := range menu.MealIDs {
		inMenu[id] = true
	}

	var meals []*domain.Meal
	for _, meal := range all {
		if inMenu[meal.ID] {
			meals = append(meals, meal)
		}
	}
	return menu, meals, nil
}
