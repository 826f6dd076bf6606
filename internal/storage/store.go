// Package storage reads and writes the phone book file
package storage

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// Store is the persistence contract used by the contact repository.
// Implementations always hold the complete list; there is no partial sync.
type Store interface {
	// ReadAll returns every stored contact in file order
	ReadAll(ctx context.Context) ([]models.Contact, error)
	// Append adds one contact after the existing ones
	Append(ctx context.Context, contact models.Contact) error
	// RewriteAll replaces the stored contents with contacts
	RewriteAll(ctx context.Context, contacts []models.Contact) error
}

// StorageError is returned when the backing file cannot be opened, read or written
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ParseError reports a malformed record in the backing file.
// Line is 1-based; it is 0 when the decoder cannot tell.
type ParseError struct {
	Path   string
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parse %s: %s", e.Path, e.Reason)
	}
	if e.Text == "" {
		return fmt.Sprintf("parse %s:%d: %s", e.Path, e.Line, e.Reason)
	}
	return fmt.Sprintf("parse %s:%d: %s: %q", e.Path, e.Line, e.Reason, e.Text)
}
