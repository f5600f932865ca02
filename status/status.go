package status

import (
	"errors"
	"strings"
)

// Status is the canonical (lower-cased, backend-recognized) spelling of an
// order status. The human-facing label can differ; see Label.
type Status string

const (
	Pending    Status = "pending"
	Processing Status = "processing"
	Shipped    Status = "shipped"
	Delivered  Status = "delivered"
	Completed  Status = "completed"
	Cancelled  Status = "cancelled"
	Returned   Status = "returned"
)

// Transition denial reasons. The UI shows different text for each, so these
// stay separate sentinels instead of one generic final-status error.
var (
	ErrCancelCompleted  = errors.New("cannot cancel a completed order")
	ErrCancelDelivered  = errors.New("cannot cancel a delivered order")
	ErrCompleteCanceled = errors.New("cannot complete a cancelled order")
	ErrFinalStatus      = errors.New("order is in a final status and cannot be changed")
)

// Canonical lower-cases and trims raw status input. It does NOT fold the
// "In Process" spellings into processing; that happens only at the commit
// boundary via BackendValue, so display comparisons keep the incoming form.
func Canonical(raw string) Status {
	return Status(strings.ToLower(strings.TrimSpace(raw)))
}

// BackendValue maps a status to the vocabulary the storefront backend
// accepts. Applied exactly once, right before the update call.
func BackendValue(raw string) Status {
	s := Canonical(raw)
	switch s {
	case "in process", "inprocess":
		return Processing
	}
	return s
}

// IsFinal reports whether no further transition is permitted from s.
func IsFinal(s Status) bool {
	switch s {
	case Completed, Cancelled, Returned:
		return true
	}
	return false
}

// CheckTransition decides whether an order may move from current to
// requested. Final statuses deny everything; the three special cases keep
// their own messages. Everything else is allowed, including skips like
// pending -> delivered (the storefront never enforced a strict lifecycle
// ordering, and this mirrors that).
func CheckTransition(current, requested Status) error {
	switch {
	case current == Completed && requested == Cancelled:
		return ErrCancelCompleted
	case current == Delivered && requested == Cancelled:
		return ErrCancelDelivered
	case current == Cancelled && requested == Completed:
		return ErrCompleteCanceled
	case IsFinal(current):
		return ErrFinalStatus
	}
	return nil
}

// CanTransition is the boolean form of CheckTransition.
func CanTransition(current, requested Status) bool {
	return CheckTransition(current, requested) == nil
}
