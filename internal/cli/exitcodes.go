package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/phonebook/internal/models"
	"github.com/thenoetrevino/phonebook/internal/repository"
	contactservice "github.com/thenoetrevino/phonebook/internal/services/contact"
	"github.com/thenoetrevino/phonebook/internal/storage"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage I/O errors and unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested contact was not found.
	ExitNotFound = 3

	// ExitDataErr indicates a malformed phone book file.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: empty required fields, unknown field names, negative page sizes.
	ExitValidation = 5
)

// ExitCodeError carries the exit code a failed command should terminate with.
// The error has already been reported to the user when it is returned.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit %d: %v", e.Code, e.Err)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// ExitCodeFor maps an error to the process exit code
func ExitCodeFor(err error) int {
	var exitErr *ExitCodeError
	var parseErr *storage.ParseError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.As(err, &parseErr):
		return ExitDataErr
	case errors.Is(err, models.ErrIndexOutOfRange):
		return ExitNotFound
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrUnknownField),
		errors.Is(err, contactservice.ErrNegativePageSize),
		errors.Is(err, repository.ErrInvalidPageSize):
		return ExitValidation
	default:
		return ExitError
	}
}

// ErrorCode returns the machine readable code printed in JSON error output
func ErrorCode(err error) string {
	var parseErr *storage.ParseError
	var storageErr *storage.StorageError

	switch {
	case errors.As(err, &parseErr):
		return "PARSE_ERROR"
	case errors.As(err, &storageErr):
		return "STORAGE_ERROR"
	case errors.Is(err, models.ErrIndexOutOfRange):
		return "CONTACT_NOT_FOUND"
	case errors.Is(err, models.ErrUnknownField):
		return "UNKNOWN_FIELD"
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, contactservice.ErrNegativePageSize),
		errors.Is(err, repository.ErrInvalidPageSize):
		return "VALIDATION_ERROR"
	default:
		return "ERROR"
	}
}
