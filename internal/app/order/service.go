package order

import (
	"context"
	"fmt"
	"time"

	"github.com/Duncanian/develop-v2/internal/adapter/logger"
	"github.com/Duncanian/develop-v2/internal/domain"
	"github.com/Duncanian/develop-v2/internal/interfaces"
)

type Service struct {
	orders    interfaces.OrderRepository
	meals     interfaces.MealRepository
	publisher interfaces.EventPublisher
	logger    logger.Logger
	dedup     domain.DedupPolicy
}

// NewService wires the order service. publisher may be nil when no broker is
// configured; events are then skipped.
func NewService(orders interfaces.OrderRepository, meals interfaces.MealRepository,
	publisher interfaces.EventPublisher, lgr logger.Logger, dedup domain.DedupPolicy) *Service {
	return &Service{
		orders:    orders,
		meals:     meals,
		publisher: publisher,
		logger:    lgr,
		dedup:     dedup,
	}
}

// Create validates the meal ids against the catalog, rejects duplicates of
// the user's existing orders under the configured policy, and persists a new
// order with the default quantity.
func (s *Service) Create(ctx context.Context, userID int, mealIDs []int) (*domain.Order, error) {
	missing, err := s.meals.MissingIDs(ctx, mealIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to check meal ids: %w", err)
	}
	if len(missing) > 0 {
		return nil, domain.ErrMealNotInMenu
	}

	existing, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list existing orders: %w", err)
	}
	for _, o := range existing {
		if o.DuplicateOf(mealIDs, s.dedup) {
			return nil, domain.ErrDuplicateOrder
		}
	}

	order := domain.NewOrder(userID, mealIDs)
	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error("order_create_failed", "Failed to create order", "", nil, err)
		return nil, err
	}
	s.logger.Info("order_created", "Order created", "", map[string]interface{}{
		"order_id": order.ID,
		"user_id":  userID,
	})

	s.publish(ctx, interfaces.OrderEvent{
		Event:    interfaces.EventOrderCreated,
		OrderID:  order.ID,
		UserID:   order.UserID,
		MealIDs:  order.MealIDs,
		Quantity: order.Quantity,
	})

	return order, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID int) ([]*domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// UpdateQuantity sets the quantity of an existing order. Returns
// domain.ErrOrderNotFound when the order id does not resolve.
func (s *Service) UpdateQuantity(ctx context.Context, id, quantity int) error {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.orders.UpdateQuantity(ctx, order.ID, quantity); err != nil {
		s.logger.Error("order_update_failed", "Failed to update order quantity", "", nil, err)
		return err
	}
	s.logger.Info("order_updated", "Order quantity updated", "", map[string]interface{}{
		"order_id": order.ID,
		"quantity": quantity,
	})

	s.publish(ctx, interfaces.OrderEvent{
		Event:    interfaces.EventOrderQuantityUpdated,
		OrderID:  order.ID,
		UserID:   order.UserID,
		Quantity: quantity,
	})

	return nil
}

// Delete removes an existing order. Returns domain.ErrOrderNotFound when the
// order id does not resolve, so a second delete of the same id reports
// not-found rather than success.
func (s *Service) Delete(ctx context.Context, id int) error {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.orders.Delete(ctx, order.ID); err != nil {
		s.logger.Error("order_delete_failed", "Failed to delete order", "", nil, err)
		return err
	}
	s.logger.Info("order_deleted", "Order deleted", "", map[string]interface{}{
		"order_id": order.ID,
	})

	s.publish(ctx, interfaces.OrderEvent{
		Event:   interfaces.EventOrderCancelled,
		OrderID: order.ID,
		UserID:  order.UserID,
	})

	return nil
}

// publish sends an order event when a broker is configured. Publish failures
// are logged and swallowed: the persisted outcome must not depend on the
// broker being up.
func (s *Service) publish(ctx context.Context, evt interfaces.OrderEvent) {
	if s.publisher == nil {
		return
	}
	evt.OccurredAt = time.Now().UTC()
	if err := s.publisher.PublishOrderEvent(ctx, evt); err != nil {
		s.logger.Error("event_publish_failed", "Failed to publish order event", "", map[string]interface{}{
			"event":    evt.Event,
			"order_id": evt.OrderID,
		}, err)
	}
}
