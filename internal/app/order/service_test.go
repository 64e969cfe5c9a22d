package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Duncanian/develop-v2/internal/adapter/logger"
	"github.com/Duncanian/develop-v2/internal/domain"
	"github.com/Duncanian/develop-v2/internal/interfaces"
)

type fakeOrderRepo struct {
	orders map[int]*domain.Order
	nextID int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[int]*domain.Order), nextID: 1}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	order.ID = r.nextID
	r.nextID++
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id int) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (r *fakeOrderRepo) ListByUser(_ context.Context, userID int) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateQuantity(_ context.Context, id, quantity int) error {
	order, ok := r.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.Quantity = quantity
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

type fakeMealRepo struct {
	ids map[int]bool
}

func newFakeMealRepo(ids ...int) *fakeMealRepo {
	m := &fakeMealRepo{ids: make(map[int]bool)}
	for _, id := range ids {
		m.ids[id] = true
	}
	return m
}

func (r *fakeMealRepo) Create(_ context.Context, meal *domain.Meal) error {
	meal.ID = len(r.ids) + 1
	r.ids[meal.ID] = true
	return nil
}

func (r *fakeMealRepo) List(_ context.Context) ([]*domain.Meal, error) { return nil, nil }

func (r *fakeMealRepo) MissingIDs(_ context.Context, ids []int) ([]int, error) {
	var missing []int
	for _, id := range ids {
		if !r.ids[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

type recordingPublisher struct {
	events []interfaces.OrderEvent
}

func (p *recordingPublisher) PublishOrderEvent(_ context.Context, evt interfaces.OrderEvent) error {
	p.events = append(p.events, evt)
	return nil
}

func newTestService(policy domain.DedupPolicy, mealIDs ...int) (*Service, *fakeOrderRepo, *recordingPublisher) {
	repo := newFakeOrderRepo()
	pub := &recordingPublisher{}
	svc := NewService(repo, newFakeMealRepo(mealIDs...), pub, logger.NewNop(), policy)
	return svc, repo, pub
}

func TestCreate(t *testing.T) {
	svc, repo, pub := newTestService(domain.DedupExact, 1, 2, 3)
	ctx := context.Background()

	order, err := svc.Create(ctx, 7, []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 7, order.UserID)
	assert.Equal(t, domain.DefaultQuantity, order.Quantity)
	assert.Len(t, repo.orders, 1)

	require.Len(t, pub.events, 1)
	assert.Equal(t, interfaces.EventOrderCreated, pub.events[0].Event)
	assert.Equal(t, order.ID, pub.events[0].OrderID)
}

func TestCreateCollapsesRepeatedIDs(t *testing.T) {
	svc, repo, _ := newTestService(domain.DedupExact, 1, 2, 3)

	order, err := svc.Create(context.Background(), 7, []int{1, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, order.MealIDs)
	assert.Equal(t, []int{1, 2}, repo.orders[order.ID].MealIDs)
}

func TestCreateRejectsUnknownMeal(t *testing.T) {
	svc, repo, _ := newTestService(domain.DedupExact, 1, 2, 3)

	_, err := svc.Create(context.Background(), 7, []int{8, 6, 5})
	assert.ErrorIs(t, err, domain.ErrMealNotInMenu)
	assert.Empty(t, repo.orders)
}

func TestCreateRejectsDuplicateExact(t *testing.T) {
	svc, _, _ := newTestService(domain.DedupExact, 1, 2, 3)
	ctx := context.Background()

	_, err := svc.Create(ctx, 7, []int{1, 2, 3})
	require.NoError(t, err)

	_, err = svc.Create(ctx, 7, []int{1, 2, 3})
	assert.ErrorIs(t, err, domain.ErrDuplicateOrder)

	// A different set is fine under the exact policy even when it overlaps.
	_, err = svc.Create(ctx, 7, []int{1, 2})
	assert.NoError(t, err)
}

func TestCreateRejectsDuplicateOverlap(t *testing.T) {
	svc, _, _ := newTestService(domain.DedupOverlap, 1, 2, 3)
	ctx := context.Background()

	_, err := svc.Create(ctx, 7, []int{1, 2})
	require.NoError(t, err)

	_, err = svc.Create(ctx, 7, []int{2, 3})
	assert.ErrorIs(t, err, domain.ErrDuplicateOrder)
}

func TestCreateDuplicateScopedToUser(t *testing.T) {
	svc, _, _ := newTestService(domain.DedupExact, 1, 2, 3)
	ctx := context.Background()

	_, err := svc.Create(ctx, 7, []int{1, 2, 3})
	require.NoError(t, err)

	_, err = svc.Create(ctx, 8, []int{1, 2, 3})
	assert.NoError(t, err)
}

func TestUpdateQuantity(t *testing.T) {
	svc, repo, pub := newTestService(domain.DedupExact, 1, 2, 3)
	ctx := context.Background()

	order, err := svc.Create(ctx, 7, []int{1, 2, 3})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateQuantity(ctx, order.ID, 3))
	assert.Equal(t, 3, repo.orders[order.ID].Quantity)

	require.Len(t, pub.events, 2)
	assert.Equal(t, interfaces.EventOrderQuantityUpdated, pub.events[1].Event)
}

func TestUpdateQuantityNotFound(t *testing.T) {
	svc, _, _ := newTestService(domain.DedupExact)

	err := svc.UpdateQuantity(context.Background(), 7, 3)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestDelete(t *testing.T) {
	svc, repo, pub := newTestService(domain.DedupExact, 1, 2, 3)
	ctx := context.Background()

	order, err := svc.Create(ctx, 7, []int{1, 2, 3})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, order.ID))
	assert.Empty(t, repo.orders)

	// Deleting again reports not-found.
	assert.ErrorIs(t, svc.Delete(ctx, order.ID), domain.ErrOrderNotFound)

	require.Len(t, pub.events, 2)
	assert.Equal(t, interfaces.EventOrderCancelled, pub.events[1].Event)
}

func TestDeleteNotFound(t *testing.T) {
	svc, _, _ := newTestService(domain.DedupExact)

	err := svc.Delete(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestNilPublisher(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewService(repo, newFakeMealRepo(1), nil, logger.NewNop(), domain.DedupExact)

	_, err := svc.Create(context.Background(), 7, []int{1})
	assert.NoError(t, err)
}
