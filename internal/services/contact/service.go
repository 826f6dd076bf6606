// Package contact holds the business rules for creating and editing phone book entries
package contact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/phonebook/internal/models"
	"github.com/thenoetrevino/phonebook/internal/repository"
)

// Service defines all contact-related business operations
type Service interface {
	// Read operations
	Count() int
	Get(index int) (models.Contact, error)
	ListPage(cursor *repository.Cursor, pageSize int) (repository.Page, error)
	Search(query string) []repository.Entry

	// Write operations
	CreateContact(ctx context.Context, req CreateContactRequest) (*models.Contact, error)
	UpdateContact(ctx context.Context, req UpdateContactRequest) (*models.Contact, error)
}

// CreateContactRequest encapsulates data for creating a contact.
// OrgName and PhoneForWork are optional.
type CreateContactRequest struct {
	Surname       string
	Name          string
	Middlename    string
	PersonalPhone string
	OrgName       string
	PhoneForWork  string
}

// UpdateContactRequest changes one field of the contact at Index (0-based).
// Field is what the user typed: a label such as "личный телефон" or a key
// such as "personal_phone".
type UpdateContactRequest struct {
	Index int
	Field string
	Value string
}

// repo defines the data access methods needed by the contact service
type repo interface {
	Count() int
	Get(index int) (models.Contact, error)
	NextID() int
	Add(ctx context.Context, contact models.Contact) error
	UpdateField(ctx context.Context, index int, field models.Field, value string) error
	Search(query string) []repository.Entry
	Paginate(cursor *repository.Cursor, pageSize int) (repository.Page, error)
	CheckValue(f models.Field, value string) error
}

type service struct {
	repo repo
}

// NewService creates a new contact service
func NewService(r repo) Service {
	return &service{repo: r}
}

func (s *service) Count() int {
	return s.repo.Count()
}

func (s *service) Get(index int) (models.Contact, error) {
	return s.repo.Get(index)
}

func (s *service) Search(query string) []repository.Entry {
	return s.repo.Search(query)
}

// ListPage returns the next page for cursor
func (s *service) ListPage(cursor *repository.Cursor, pageSize int) (repository.Page, error) {
	if pageSize < 0 {
		return repository.Page{}, ErrNegativePageSize
	}
	return s.repo.Paginate(cursor, pageSize)
}

// CreateContact validates the request, assigns the next id and stores the contact
func (s *service) CreateContact(ctx context.Context, req CreateContactRequest) (*models.Contact, error) {
	contact := models.Contact{
		Surname:       req.Surname,
		Name:          req.Name,
		Middlename:    req.Middlename,
		PersonalPhone: req.PersonalPhone,
		OrgName:       req.OrgName,
		PhoneForWork:  req.PhoneForWork,
	}
	contact.Normalize()

	if err := contact.Validate(); err != nil {
		return nil, err
	}
	for _, f := range models.AllFields {
		if err := s.repo.CheckValue(f, contact.Value(f)); err != nil {
			return nil, err
		}
	}

	contact.ID = s.repo.NextID()

	if err := s.repo.Add(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to save contact: %w", err)
	}

	slog.Info("contact created", "id", contact.ID)
	return &contact, nil
}

// UpdateContact resolves the field name and applies the new value
func (s *service) UpdateContact(ctx context.Context, req UpdateContactRequest) (*models.Contact, error) {
	field, err := models.LookupEditableField(req.Field)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, req.Field)
	}

	if _, err := s.repo.Get(req.Index); err != nil {
		return nil, err
	}

	value := strings.TrimSpace(req.Value)
	if value == "" {
		if field.Required() {
			return nil, &models.ValidationError{Field: field}
		}
		value = models.NotSpecified
	}
	if err := s.repo.CheckValue(field, value); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateField(ctx, req.Index, field, value); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	updated, err := s.repo.Get(req.Index)
	if err != nil {
		return nil, err
	}

	slog.Info("contact updated", "id", updated.ID, "field", field.Key())
	return &updated, nil
}
