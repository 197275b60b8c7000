package service

import "github.com/ilnabucco/restaurant-reservation/internal/model"

// validStatuses is the closed set of reservation statuses.
var validStatuses = map[string]bool{
	model.StatusPending:   true,
	model.StatusConfirmed: true,
	model.StatusDeclined:  true,
	model.StatusCancelled: true,
}

// StatusMachine governs reservation status changes.  The machine is
// deliberately permissive: any of the four statuses may follow any
// other, including moving out of cancelled.  A single-location
// restaurant regularly un-cancels and re-confirms by phone, so no
// transition table restricts order.  The only rule enforced is that
// the requested value belongs to the enumeration.
type StatusMachine struct{}

// ValidStatus reports whether s is one of the four enumerated values.
func (StatusMachine) ValidStatus(s string) bool { return validStatuses[s] }

// Transition validates a requested status change and returns the new
// status.  ErrInvalidStatus is returned when requested is outside the
// enumeration; the current status is returned unchanged in that case.
func (m StatusMachine) Transition(current, requested string) (string, error) {
	if !m.ValidStatus(requested) {
		return current, ErrInvalidStatus
	}
	return requested, nil
}
