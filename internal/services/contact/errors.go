package contact

import "errors"

// Domain errors for contact service
var (
	// ErrNegativePageSize is returned for a page size below zero
	ErrNegativePageSize = errors.New("page size cannot be negative")
)
