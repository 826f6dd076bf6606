// Package repository holds the in-memory contact list backed by a storage.Store
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/phonebook/internal/models"
	"github.com/thenoetrevino/phonebook/internal/storage"
)

// ErrInvalidPageSize is returned by Paginate for a negative page size
var ErrInvalidPageSize = errors.New("page size cannot be negative")

// Entry pairs a contact with its 0-based position in the book.
// The position is what UpdateField expects.
type Entry struct {
	Index   int
	Contact models.Contact
}

// ContactRepository caches the stored contacts in memory.
// The cache is rebuilt from the store after every write and is never the
// source of truth. It is not safe for concurrent use.
type ContactRepository struct {
	store    storage.Store
	contacts []models.Contact
}

// New creates a repository and loads the current contents of store
func New(ctx context.Context, store storage.Store) (*ContactRepository, error) {
	r := &ContactRepository{store: store}
	if err := r.Reload(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// valueChecker is implemented by stores whose format restricts values
type valueChecker interface {
	CheckValue(f models.Field, value string) error
}

// CheckValue reports whether value can be stored for field f. Stores without
// their own rules only reject line breaks.
func (r *ContactRepository) CheckValue(f models.Field, value string) error {
	if checker, ok := r.store.(valueChecker); ok {
		return checker.CheckValue(f, value)
	}
	return models.ValidateValue(f, value)
}

// Count returns the number of cached contacts
func (r *ContactRepository) Count() int {
	return len(r.contacts)
}

// Reload replaces the cache with the store contents
func (r *ContactRepository) Reload(ctx context.Context) error {
	contacts, err := r.store.ReadAll(ctx)
	if err != nil {
		return err
	}
	r.contacts = contacts
	return nil
}

// All returns a copy of every cached contact in order
func (r *ContactRepository) All() []models.Contact {
	out := make([]models.Contact, len(r.contacts))
	copy(out, r.contacts)
	return out
}

// Get returns the contact at a 0-based index
func (r *ContactRepository) Get(index int) (models.Contact, error) {
	if index < 0 || index >= len(r.contacts) {
		return models.Contact{}, fmt.Errorf("%w: %d", models.ErrIndexOutOfRange, index)
	}
	return r.contacts[index], nil
}

// NextID returns the id for a new contact: one past the largest stored id,
// or 0 for an empty book. For books whose ids are 0..n-1 this is the count.
func (r *ContactRepository) NextID() int {
	next := 0
	for _, c := range r.contacts {
		if c.ID >= next {
			next = c.ID + 1
		}
	}
	return next
}

// Add appends contact to the store and reloads the cache.
// Store failures are returned unchanged and leave the cache as it was.
func (r *ContactRepository) Add(ctx context.Context, contact models.Contact) error {
	if err := r.store.Append(ctx, contact); err != nil {
		slog.Error("failed to append contact", "error", err)
		return err
	}
	return r.Reload(ctx)
}

// UpdateField sets one field of the contact at index, rewrites the store and
// reloads. Unknown or read-only fields and bad indexes are rejected without
// touching the store.
func (r *ContactRepository) UpdateField(ctx context.Context, index int, field models.Field, value string) error {
	if !field.Editable() {
		return fmt.Errorf("%w: %s", models.ErrUnknownField, field)
	}
	if index < 0 || index >= len(r.contacts) {
		return fmt.Errorf("%w: %d", models.ErrIndexOutOfRange, index)
	}

	updated := r.All()
	if err := updated[index].Set(field, value); err != nil {
		return err
	}

	if err := r.store.RewriteAll(ctx, updated); err != nil {
		slog.Error("failed to rewrite contacts", "error", err)
		return err
	}
	return r.Reload(ctx)
}

// Search returns every contact with a field containing query, ignoring case.
// A blank query matches everything.
func (r *ContactRepository) Search(query string) []Entry {
	if strings.TrimSpace(query) == "" {
		return r.entries(0, len(r.contacts))
	}

	needle := strings.ToLower(query)
	var found []Entry
	for i := range r.contacts {
		if matches(&r.contacts[i], needle) {
			found = append(found, Entry{Index: i, Contact: r.contacts[i]})
		}
	}
	return found
}

// Paginate returns the page at cursor and advances it. A pageSize of 0 uses
// DefaultPageSize. HasMore is false on the last page, on an empty book and
// once the cursor has run past the end.
func (r *ContactRepository) Paginate(cursor *Cursor, pageSize int) (Page, error) {
	if pageSize < 0 {
		return Page{}, ErrInvalidPageSize
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}

	count := len(r.contacts)
	totalPages := (count + pageSize - 1) / pageSize

	start := min(cursor.Offset, count)
	end := min(cursor.Offset+pageSize, count)
	page := Page{
		Contacts:   r.entries(start, end),
		Number:     cursor.Page,
		TotalPages: totalPages,
		HasMore:    cursor.Page < totalPages,
	}

	cursor.Offset += pageSize
	cursor.Page++

	return page, nil
}

func (r *ContactRepository) entries(start, end int) []Entry {
	out := make([]Entry, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, Entry{Index: i, Contact: r.contacts[i]})
	}
	return out
}

func matches(c *models.Contact, needle string) bool {
	for _, f := range models.AllFields {
		if strings.Contains(strings.ToLower(c.Value(f)), needle) {
			return true
		}
	}
	return false
}
