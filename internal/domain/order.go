package domain

import (
	"errors"
	"time"
)

// Order represents a customer's request to purchase one or more meals.
type Order struct {
	ID        int
	UserID    int
	MealIDs   []int
	Quantity  int
	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultQuantity is assigned to newly created orders.
const DefaultQuantity = 1

// NewOrder creates an order for a user with the default quantity. Repeated
// meal ids collapse to a single entry.
func NewOrder(userID int, mealIDs []int) *Order {
	now := time.Now()
	return &Order{
		UserID:    userID,
		MealIDs:   UniqueIDs(mealIDs),
		Quantity:  DefaultQuantity,
		Status:    OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DedupPolicy controls how an incoming meal-id set is compared against a
// user's existing orders when rejecting duplicates.
type DedupPolicy string

const (
	// DedupExact rejects only when the meal-id sets are equal.
	DedupExact DedupPolicy = "exact"
	// DedupOverlap rejects when any meal id is shared.
	DedupOverlap DedupPolicy = "overlap"
)

// Valid reports whether the policy is a known value.
func (p DedupPolicy) Valid() bool {
	return p == DedupExact || p == DedupOverlap
}

// DuplicateOf reports whether an order with the given meal ids would be
// considered a duplicate of this one under the policy.
func (o *Order) DuplicateOf(mealIDs []int, policy DedupPolicy) bool {
	if policy == DedupOverlap {
		return overlaps(o.MealIDs, mealIDs)
	}
	return sameSet(o.MealIDs, mealIDs)
}

func sameSet(a, b []int) bool {
	as := toSet(a)
	bs := toSet(b)
	if len(as) != len(bs) {
		return false
	}
	for id := range as {
		if !bs[id] {
			return false
		}
	}
	return true
}

func overlaps(a, b []int) bool {
	as := toSet(a)
	for _, id := range b {
		if as[id] {
			return true
		}
	}
	return false
}

// UniqueIDs returns ids with duplicates removed, preserving first
// occurrence. A repeated id in a submission is valid input, not an error,
// but only one row per id is persisted.
func UniqueIDs(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func toSet(ids []int) map[int]bool {
	s := make(map[int]bool, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrDuplicateOrder = errors.New("meal is already in an order")
	ErrMealNotInMenu  = errors.New("meal is not in the menu")
	ErrMenuNotFound   = errors.New("menu not found")
	ErrUserExists     = errors.New("user already exists")
	ErrBadCredentials = errors.New("invalid username or password")
)
