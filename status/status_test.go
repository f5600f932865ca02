package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCancelledDeniesEverything(t *testing.T) {
	targets := []Status{Pending, Processing, Shipped, Delivered, Completed, Cancelled, Returned}
	for _, target := range targets {
		assert.False(t, CanTransition(Cancelled, target), "cancelled -> %s must be denied", target)
	}
}

func TestSpecialCaseMessages(t *testing.T) {
	assert.Equal(t, ErrCancelCompleted, CheckTransition(Completed, Cancelled))
	assert.Equal(t, ErrCompleteCanceled, CheckTransition(Cancelled, Completed))
	assert.Equal(t, ErrCancelDelivered, CheckTransition(Delivered, Cancelled))
}

func TestFinalStatuses(t *testing.T) {
	assert.True(t, IsFinal(Completed))
	assert.True(t, IsFinal(Cancelled))
	assert.True(t, IsFinal(Returned))
	assert.False(t, IsFinal(Pending))
	assert.False(t, IsFinal(Shipped))
	assert.False(t, IsFinal(Delivered))

	assert.Equal(t, ErrFinalStatus, CheckTransition(Returned, Pending))
	assert.Equal(t, ErrFinalStatus, CheckTransition(Completed, Shipped))
}

func TestPermissiveTransitions(t *testing.T) {
	assert.True(t, CanTransition(Pending, Processing))
	// no intermediate-state enforcement: skips are allowed
	assert.True(t, CanTransition(Pending, Delivered))
	assert.True(t, CanTransition(Shipped, Pending))
	assert.True(t, CanTransition(Delivered, Completed))
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, Pending, Canonical("  Pending "))
	assert.Equal(t, Shipped, Canonical("SHIPPED"))
	// Canonical keeps the human-facing spelling; only BackendValue folds it
	assert.Equal(t, Status("in process"), Canonical("In Process"))
}

func TestBackendValue(t *testing.T) {
	assert.Equal(t, Processing, BackendValue("In Process"))
	assert.Equal(t, Processing, BackendValue("InProcess"))
	assert.Equal(t, Processing, BackendValue("processing"))
	assert.Equal(t, Cancelled, BackendValue("Cancelled"))
}

func TestMetaFallback(t *testing.T) {
	m := Meta("definitely-not-a-status")
	assert.Equal(t, "#808080", m.Color)
	assert.Equal(t, "shopping-cart", m.Icon)

	assert.Equal(t, "In Process", Label(Processing))
	assert.Equal(t, "truck", Meta("Shipped").Icon)
}
