package interfaces

import (
	"context"

	"github.com/Duncanian/develop-v2/internal/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int) ([]*domain.Order, error)
	UpdateQuantity(ctx context.Context, id, quantity int) error
	Delete(ctx context.Context, id int) error
}

type MealRepository interface {
	Create(ctx context.Context, meal *domain.Meal) error
	List(ctx context.Context) ([]*domain.Meal, error)
	// MissingIDs returns the subset of ids that do not resolve to a meal.
	MissingIDs(ctx context.Context, ids []int) ([]int, error)
}

type MenuRepository interface {
	Create(ctx context.Context, menu *domain.Menu) error
	Current(ctx context.Context) (*domain.Menu, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
