package generator

import "errors"

// Sentinel errors for parameter and sampling failures
var (
	// ErrRange marks size/k/nas/batch-size values outside their allowed bounds.
	ErrRange = errors.New("parameter out of range")

	// ErrPrecondition marks a sampling request for fewer rows than the pool
	// already holds. The caller supplied an inconsistent configuration.
	ErrPrecondition = errors.New("sampling precondition violated")
)
