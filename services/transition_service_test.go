package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/Tazeen604/ZerZabar-sub002/status"
	"github.com/Tazeen604/ZerZabar-sub002/store"
	"github.com/stretchr/testify/assert"
)

type mockUpdater struct {
	updateFn func(ctx context.Context, id, newStatus string, adminNotes *string) (*models.Order, error)
	calls    int
}

func (m *mockUpdater) UpdateOrderStatus(ctx context.Context, id, newStatus string, adminNotes *string) (*models.Order, error) {
	m.calls++
	return m.updateFn(ctx, id, newStatus, adminNotes)
}

func seededStore() *store.OrderStore {
	s := store.NewOrderStore()
	s.SetOrders([]models.Order{
		{ID: "1", Status: "pending"},
		{ID: "2", Status: "completed"},
	}, 2)
	return s
}

func TestTransitionEndToEnd(t *testing.T) {
	orders := seededStore()
	client := &mockUpdater{
		updateFn: func(ctx context.Context, id, newStatus string, adminNotes *string) (*models.Order, error) {
			assert.Equal(t, "1", id)
			assert.Equal(t, "processing", newStatus)
			return &models.Order{ID: id, Status: newStatus}, nil
		},
	}
	svc := NewTransitionService(client, orders)

	pending, err := svc.Request("1", "pending", "processing", nil)
	assert.NoError(t, err)
	assert.Equal(t, status.Pending, pending.From)

	settled, err := svc.Confirm(context.Background(), "1")
	assert.NoError(t, err)
	assert.Equal(t, "processing", settled.Status)

	// only order 1 changed
	o1, _ := orders.Get("1")
	assert.Equal(t, "processing", o1.Status)
	o2, _ := orders.Get("2")
	assert.Equal(t, "completed", o2.Status)
}

func TestTransitionDeniedWithoutNetworkCall(t *testing.T) {
	orders := seededStore()
	client := &mockUpdater{
		updateFn: func(ctx context.Context, id, newStatus string, adminNotes *string) (*models.Order, error) {
			t.Fatal("denied transition must not reach the network")
			return nil, nil
		},
	}
	svc := NewTransitionService(client, orders)

	_, err := svc.Request("2", "completed", "pending", nil)
	assert.Equal(t, status.ErrFinalStatus, err)
	assert.Zero(t, client.calls)

	// both orders untouched
	o1, _ := orders.Get("1")
	assert.Equal(t, "pending", o1.Status)
	o2, _ := orders.Get("2")
	assert.Equal(t, "completed", o2.Status)
}

func TestTransitionSpecificDenialMessages(t *testing.T) {
	svc := NewTransitionService(&mockUpdater{}, seededStore())

	_, err := svc.Request("2", "completed", "cancelled", nil)
	assert.Equal(t, status.ErrCancelCompleted, err)

	_, err = svc.Request("2", "cancelled", "completed", nil)
	assert.Equal(t, status.ErrCompleteCanceled, err)

	_, err = svc.Request("2", "delivered", "cancelled", nil)
	assert.Equal(t, status.ErrCancelDelivered, err)
}

func TestTransitionBackendMappingAtCommit(t *testing.T) {
	orders := seededStore()
	var sent string
	client := &mockUpdater{
		updateFn: func(ctx context.Context, id, newStatus string, adminNotes *string) (*models.Order, error) {
			sent = newStatus
			return &models.Order{ID: id, Status: newStatus}, nil
		},
	}
	svc := NewTransitionService(client, orders)

	pending, err := svc.Request("1", "pending", "In Process", nil)
	assert.NoError(t, err)
	// pending keeps the human-facing form until commit
	assert.Equal(t, status.Status("in process"), pending.To)

	_, err = svc.Confirm(context.Background(), "1")
	assert.NoError(t, err)
	assert.Equal(t, "processing", sent)
}

func TestTransitionCommitFailureRollsBack(t *testing.T) {
	orders := seededStore()
	client := &mockUpdater{
		updateFn: func(ctx context.Context, id, newStatus string, adminNotes *string) (*models.Order, error) {
			return nil, errors.New("insufficient inventory")
		},
	}
	svc := NewTransitionService(client, orders)

	_, err := svc.Request("1", "pending", "shipped", nil)
	assert.NoError(t, err)

	_, err = svc.Confirm(context.Background(), "1")
	assert.EqualError(t, err, "insufficient inventory")

	// local state unchanged
	o1, _ := orders.Get("1")
	assert.Equal(t, "pending", o1.Status)

	// orchestrator is re-entrant after a failed commit
	_, err = svc.Request("1", "pending", "processing", nil)
	assert.NoError(t, err)
}

func TestTransitionCancelHasNoSideEffect(t *testing.T) {
	orders := seededStore()
	client := &mockUpdater{
		updateFn: func(ctx context.Context, id, newStatus string, adminNotes *string) (*models.Order, error) {
			t.Fatal("cancelled confirmation must not commit")
			return nil, nil
		},
	}
	svc := NewTransitionService(client, orders)

	_, err := svc.Request("1", "pending", "shipped", nil)
	assert.NoError(t, err)
	svc.Cancel("1")

	_, err = svc.Confirm(context.Background(), "1")
	assert.Equal(t, ErrNoPendingTransition, err)
	assert.Zero(t, client.calls)
}

func TestTransitionsPerOrderIndependent(t *testing.T) {
	orders := seededStore()
	client := &mockUpdater{
		updateFn: func(ctx context.Context, id, newStatus string, adminNotes *string) (*models.Order, error) {
			return &models.Order{ID: id, Status: newStatus}, nil
		},
	}
	svc := NewTransitionService(client, orders)

	// one caller parks a change for order 1
	_, err := svc.Request("1", "pending", "shipped", nil)
	assert.NoError(t, err)

	// another caller validates-then-cancels a change for a different order
	_, err = svc.Request("2", "delivered", "completed", nil)
	assert.NoError(t, err)
	svc.Cancel("2")

	// order 1's pending change survives and commits
	settled, err := svc.Confirm(context.Background(), "1")
	assert.NoError(t, err)
	assert.Equal(t, "shipped", settled.Status)

	// order 2's change really was dropped
	_, err = svc.Confirm(context.Background(), "2")
	assert.Equal(t, ErrNoPendingTransition, err)
	o2, _ := orders.Get("2")
	assert.Equal(t, "completed", o2.Status)
}

func TestTransitionSingleFlightPerOrder(t *testing.T) {
	orders := seededStore()
	blocked := make(chan struct{})
	release := make(chan struct{})
	client := &mockUpdater{
		updateFn: func(ctx context.Context, id, newStatus string, adminNotes *string) (*models.Order, error) {
			close(blocked)
			<-release
			return &models.Order{ID: id, Status: newStatus}, nil
		},
	}
	svc := NewTransitionService(client, orders)

	_, err := svc.Request("1", "pending", "processing", nil)
	assert.NoError(t, err)

	done := make(chan struct{})
	go func() {
		_, _ = svc.Confirm(context.Background(), "1")
		close(done)
	}()

	<-blocked
	_, err = svc.Request("1", "pending", "shipped", nil)
	assert.Equal(t, ErrTransitionInFlight, err)

	close(release)
	<-done

	// a new request is accepted once settled
	_, err = svc.Request("1", "processing", "shipped", nil)
	assert.NoError(t, err)
}
