package storage

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// DefaultFileName is the name of the phone book file
const DefaultFileName = "phonebook.txt"

// FlatFileStore keeps every contact in a single text file encoded by a Codec
type FlatFileStore struct {
	path  string
	codec Codec
}

var _ Store = (*FlatFileStore)(nil)

// NewFlatFileStore creates a store for path. A nil codec selects BlockCodec.
// The file is not touched until the first operation.
func NewFlatFileStore(path string, codec Codec) *FlatFileStore {
	if codec == nil {
		codec = BlockCodec{}
	}
	return &FlatFileStore{path: path, codec: codec}
}

// Path returns the backing file path
func (s *FlatFileStore) Path() string {
	return s.path
}

// Codec returns the codec in use
func (s *FlatFileStore) Codec() Codec {
	return s.codec
}

// CheckValue reports whether value can be written for field f by the codec in use
func (s *FlatFileStore) CheckValue(f models.Field, value string) error {
	checker, ok := s.codec.(ValueChecker)
	if !ok {
		return models.ValidateValue(f, value)
	}
	return checker.CheckValue(f, value)
}

// checkAll runs CheckValue over every field so a rejected value never
// truncates or extends the file
func (s *FlatFileStore) checkAll(contacts []models.Contact) error {
	for i := range contacts {
		for _, f := range models.AllFields {
			if err := s.CheckValue(f, contacts[i].Value(f)); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadAll opens the file, creating an empty one if it does not exist, and
// decodes every contact.
func (s *FlatFileStore) ReadAll(ctx context.Context) ([]models.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.ensureDir(); err != nil {
		return nil, &StorageError{Op: "read", Path: s.path, Err: err}
	}

	file, err := os.OpenFile(s.path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, &StorageError{Op: "read", Path: s.path, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("error closing phone book file", "path", s.path, "error", err)
		}
	}()

	contacts, err := s.codec.Decode(bufio.NewReader(file))
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = s.path
			return nil, parseErr
		}
		return nil, &StorageError{Op: "read", Path: s.path, Err: err}
	}

	slog.Debug("read contacts", "path", s.path, "format", s.codec.Name(), "count", len(contacts))
	return contacts, nil
}

// Append adds one contact at the end of the file
func (s *FlatFileStore) Append(ctx context.Context, contact models.Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.checkAll([]models.Contact{contact}); err != nil {
		return err
	}

	if !s.codec.Appendable() {
		contacts, err := s.ReadAll(ctx)
		if err != nil {
			return err
		}
		return s.write(append(contacts, contact), "append")
	}

	if err := s.ensureDir(); err != nil {
		return &StorageError{Op: "append", Path: s.path, Err: err}
	}

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &StorageError{Op: "append", Path: s.path, Err: err}
	}

	if err := s.codec.Encode(file, []models.Contact{contact}); err != nil {
		_ = file.Close()
		return &StorageError{Op: "append", Path: s.path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &StorageError{Op: "append", Path: s.path, Err: err}
	}

	slog.Debug("appended contact", "path", s.path, "id", contact.ID)
	return nil
}

// RewriteAll truncates the file and writes contacts in order.
// The write is not atomic: a failure part way through leaves a truncated file.
func (s *FlatFileStore) RewriteAll(ctx context.Context, contacts []models.Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.write(contacts, "rewrite")
}

func (s *FlatFileStore) write(contacts []models.Contact, op string) error {
	if err := s.checkAll(contacts); err != nil {
		return err
	}
	if err := s.ensureDir(); err != nil {
		return &StorageError{Op: op, Path: s.path, Err: err}
	}

	file, err := os.OpenFile(s.path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &StorageError{Op: op, Path: s.path, Err: err}
	}

	if err := s.codec.Encode(file, contacts); err != nil {
		_ = file.Close()
		return &StorageError{Op: op, Path: s.path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &StorageError{Op: op, Path: s.path, Err: err}
	}

	slog.Debug("rewrote contacts", "path", s.path, "format", s.codec.Name(), "count", len(contacts))
	return nil
}

func (s *FlatFileStore) ensureDir() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}
