package entitlement

import (
	"errors"
	"time"

	"premium-reconciler/internal/domain/user"
)

var ErrInvalidPeriod = errors.New("grant period must be positive")

type State string

const (
	StateUnregistered State = "unregistered"
	StateActive       State = "active"
	StateInactive     State = "inactive"
)

func (s State) String() string {
	return string(s)
}

// Status is what a front end renders. ActiveUntil is set only for StateActive.
type Status struct {
	State       State
	ActiveUntil *time.Time
}

func (s Status) IsActive() bool {
	return s.State == StateActive
}

// Entitlement is the premium window attached to an owner.
type Entitlement struct {
	owner       user.ID
	activeUntil *time.Time
}

func New(owner user.ID) *Entitlement {
	return &Entitlement{owner: owner}
}

func Reconstruct(owner user.ID, activeUntil *time.Time) *Entitlement {
	return &Entitlement{owner: owner, activeUntil: activeUntil}
}

// Grant resets the window to now+period. Repeated grants do not stack.
func (e *Entitlement) Grant(now time.Time, period time.Duration) error {
	if period <= 0 {
		return ErrInvalidPeriod
	}
	until := now.Add(period)
	e.activeUntil = &until
	return nil
}

func (e *Entitlement) StatusAt(now time.Time) Status {
	if e.activeUntil != nil && e.activeUntil.After(now) {
		until := *e.activeUntil
		return Status{State: StateActive, ActiveUntil: &until}
	}
	return Status{State: StateInactive}
}

// StatusOf folds the "no user record" case into the status.
func StatusOf(e *Entitlement, now time.Time) Status {
	if e == nil {
		return Status{State: StateUnregistered}
	}
	return e.StatusAt(now)
}

func (e *Entitlement) Owner() user.ID          { return e.owner }
func (e *Entitlement) ActiveUntil() *time.Time { return e.activeUntil }
