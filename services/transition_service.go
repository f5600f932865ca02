package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/Tazeen604/ZerZabar-sub002/status"
	"github.com/Tazeen604/ZerZabar-sub002/store"
)

// OrderUpdater is the slice of the storefront client the orchestrator needs.
type OrderUpdater interface {
	UpdateOrderStatus(ctx context.Context, id, newStatus string, adminNotes *string) (*models.Order, error)
}

var (
	ErrTransitionInFlight  = errors.New("another status change is already in progress for this order")
	ErrNoPendingTransition = errors.New("no status change awaiting confirmation")
)

// PendingTransition is a validated status change waiting for confirmation.
// To keeps the requested human-facing form; the backend vocabulary mapping
// happens only when the commit goes out.
type PendingTransition struct {
	OrderID    string
	From       status.Status
	To         status.Status
	AdminNotes *string
}

// TransitionService drives status changes one at a time per order:
// validate -> pending -> committing -> settled. Pending changes are keyed by
// order id so concurrent requests for different orders never interfere. A
// denied transition never reaches the network; a failed commit leaves local
// state untouched.
type TransitionService struct {
	mu         sync.Mutex
	pending    map[string]*PendingTransition
	committing map[string]bool

	client OrderUpdater
	orders *store.OrderStore
}

func NewTransitionService(client OrderUpdater, orders *store.OrderStore) *TransitionService {
	return &TransitionService{
		pending:    map[string]*PendingTransition{},
		committing: map[string]bool{},
		client:     client,
		orders:     orders,
	}
}

// Request validates the change against the status policy and, when allowed,
// parks it awaiting confirmation for that order. A re-request for the same
// order replaces its earlier pending change. Policy denials come back as the
// specific sentinel errors from the status package.
func (s *TransitionService) Request(orderID, current, requested string, adminNotes *string) (*PendingTransition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.committing[orderID] {
		return nil, ErrTransitionInFlight
	}

	from := status.Canonical(current)
	to := status.Canonical(requested)
	if err := status.CheckTransition(from, status.BackendValue(requested)); err != nil {
		log.Printf("[transition] denied order=%s %s -> %s: %v", orderID, from, to, err)
		return nil, err
	}

	p := &PendingTransition{OrderID: orderID, From: from, To: to, AdminNotes: adminNotes}
	s.pending[orderID] = p
	return p, nil
}

// Cancel drops the order's pending change with no side effect. Safe to call
// when nothing is pending; a change already committing is not cancellable.
func (s *TransitionService) Cancel(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.committing[orderID] {
		delete(s.pending, orderID)
	}
}

// Confirm commits the order's pending change with the service's own client.
func (s *TransitionService) Confirm(ctx context.Context, orderID string) (*models.Order, error) {
	return s.ConfirmUsing(ctx, s.client, orderID)
}

// ConfirmUsing commits the order's pending change: maps the status to the
// backend vocabulary (exactly once, here), issues the update, and on success
// patches the order store with the server-acknowledged status. On failure the
// store is left at its last-known-good value and the backend message is
// returned verbatim. The client parameter lets callers attach per-request
// credentials.
func (s *TransitionService) ConfirmUsing(ctx context.Context, client OrderUpdater, orderID string) (*models.Order, error) {
	s.mu.Lock()
	if s.committing[orderID] {
		s.mu.Unlock()
		return nil, ErrTransitionInFlight
	}
	p, ok := s.pending[orderID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNoPendingTransition
	}
	s.committing[orderID] = true
	s.mu.Unlock()

	backendStatus := string(status.BackendValue(string(p.To)))
	order, err := client.UpdateOrderStatus(ctx, p.OrderID, backendStatus, p.AdminNotes)

	s.mu.Lock()
	delete(s.pending, orderID)
	delete(s.committing, orderID)
	s.mu.Unlock()

	if err != nil {
		log.Printf("[transition] commit failed order=%s -> %s: %v", p.OrderID, backendStatus, err)
		return nil, err
	}

	s.orders.PatchStatus(p.OrderID, order.Status)
	log.Printf("[transition] settled order=%s status=%s", p.OrderID, order.Status)
	return order, nil
}
