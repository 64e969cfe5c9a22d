package interfaces

import (
	"context"

	"github.com/Duncanian/develop-v2/internal/domain"
)

// OrderService owns the order lifecycle. Business outcomes are reported as
// sentinel errors from the domain package (ErrOrderNotFound,
// ErrDuplicateOrder, ErrMealNotInMenu); shape validation of request fields
// happens in the HTTP adapter before these are called.
type OrderService interface {
	Create(ctx context.Context, userID int, mealIDs []int) (*domain.Order, error)
	Get(ctx context.Context, id int) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int) ([]*domain.Order, error)
	UpdateQuantity(ctx context.Context, id, quantity int) error
	Delete(ctx context.Context, id int) error
}

// MenuService maintains the meal catalog and the current menu.
type MenuService interface {
	AddMeal(ctx context.Context, name string, price float64) (*domain.Meal, error)
	ListMeals(ctx context.Context) ([]*domain.Meal, error)
	CreateMenu(ctx context.Context, name string, mealIDs []int) (*domain.Menu, error)
	CurrentMenu(ctx context.Context) (*domain.Menu, []*domain.Meal, error)
}

// AuthService registers users and issues signed tokens.
type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}
