package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Duncanian/develop-v2/internal/domain"
	"github.com/Duncanian/develop-v2/internal/interfaces"
)

type menuRepository struct {
	db DB
}

func NewMenuRepository(db DB) interfaces.MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(ctx context.Context, menu *domain.Menu) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO menus (name, created_at) VALUES ($1, $2) RETURNING id`
	if err := tx.QueryRow(ctx, query, menu.Name, menu.CreatedAt).Scan(&menu.ID); err != nil {
		return fmt.Errorf("failed to insert menu: %w", err)
	}

	for _, mealID := range menu.MealIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO menu_meals (menu_id, meal_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			menu.ID, mealID); err != nil {
			return fmt.Errorf("failed to insert menu meal: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *menuRepository) Current(ctx context.Context) (*domain.Menu, error) {
	query := `
		SELECT id, name, created_at
		FROM menus
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var menu domain.Menu
	err := r.db.QueryRow(ctx, query).Scan(&menu.ID, &menu.Name, &menu.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrMenuNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find menu: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT meal_id FROM menu_meals WHERE menu_id = $1 ORDER BY meal_id`, menu.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu meals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan menu meal: %w", err)
		}
		menu.MealIDs = append(menu.MealIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read menu meals: %w", err)
	}

	return &menu, nil
}
