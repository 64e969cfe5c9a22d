package postgres

import (
	"context"
	"fmt"

	"github.com/Duncanian/develop-v2/internal/domain"
	"github.com/Duncanian/develop-v2/internal/interfaces"
)

type mealRepository struct {
	db DB
}

func NewMealRepository(db DB) interfaces.MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) Create(ctx context.Context, meal *domain.Meal) error {
	query := `INSERT INTO meals (name, price) VALUES ($1, $2) RETURNING id`
	if err := r.db.QueryRow(ctx, query, meal.Name, meal.Price).Scan(&meal.ID); err != nil {
		return fmt.Errorf("failed to insert meal: %w", err)
	}
	return nil
}

func (r *mealRepository) List(ctx context.Context) ([]*domain.Meal, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, price FROM meals ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	defer rows.Close()

	var meals []*domain.Meal
	for rows.Next() {
		var meal domain.Meal
		if err := rows.Scan(&meal.ID, &meal.Name, &meal.Price); err != nil {
			return nil, fmt.Errorf("failed to scan meal: %w", err)
		}
		meals = append(meals, &meal)
	}
	return meals, rows.Err()
}

func (r *mealRepository) MissingIDs(ctx context.Context, ids []int) ([]int, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `SELECT id FROM meals WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to check meal ids: %w", err)
	}
	defer rows.Close()

	found := make(map[int]bool, len(ids))
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan meal id: %w", err)
		}
		found[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read meal ids: %w", err)
	}

	var missing []int
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
