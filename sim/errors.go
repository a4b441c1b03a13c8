package sim

import "errors"

// Membership results. Collections return these as values for the caller to
// inspect; they signal routine conditions, not faults.
var (
	ErrAlreadyMember = errors.New("entity is already a member")
	ErrNotMember     = errors.New("entity is not a member")
)

// Programmer-error conditions, rejected at the boundary. Construction and
// mutation fail closed rather than silently clamping.
var (
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrNegativeAmount  = errors.New("amount cannot be negative")
	ErrInvalidCapacity = errors.New("capacity must be positive")
)
