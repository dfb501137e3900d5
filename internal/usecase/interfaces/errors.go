package interfaces

import "errors"

// Storage-level failures shared by every repository implementation.
var (
	ErrNumeroAlreadyExists         = errors.New("policy numero already exists")
	ErrConcurrentModification      = errors.New("policy was modified concurrently")
	ErrEndorsementAlreadyCancelled = errors.New("endorsement already cancelled")
)
