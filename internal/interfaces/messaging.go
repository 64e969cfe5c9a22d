package interfaces

import (
	"context"
	"time"
)

// Order lifecycle event names.
const (
	EventOrderCreated         = "order_created"
	EventOrderQuantityUpdated = "order_quantity_updated"
	EventOrderCancelled       = "order_cancelled"
)

type OrderEvent struct {
	Event      string    `json:"event"`
	OrderID    int       `json:"order_id"`
	UserID     int       `json:"user_id,omitempty"`
	MealIDs    []int     `json:"meal_ids,omitempty"`
	Quantity   int       `json:"quantity,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, evt OrderEvent) error
}
