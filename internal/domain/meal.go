package domain

import "time"

// Meal is a catalog item referenced by menus and orders.
type Meal struct {
	ID    int
	Name  string
	Price float64
}

// Menu is a named grouping of meal references for a serving day.
type Menu struct {
	ID        int
	Name      string
	MealIDs   []int
	CreatedAt time.Time
}
