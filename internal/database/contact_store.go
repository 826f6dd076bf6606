package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"

	"github.com/thenoetrevino/phonebook/internal/models"
	"github.com/thenoetrevino/phonebook/internal/storage"
)

const (
	selectContacts = `SELECT id, surname, name, middlename, org_name, phone_for_work, personal_phone
		FROM contacts ORDER BY position`
	insertContact = `INSERT INTO contacts (id, surname, name, middlename, org_name, phone_for_work, personal_phone)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
)

// SQLiteStore keeps the phone book in a SQLite table.
// It satisfies the same whole-list contract as the flat file store.
type SQLiteStore struct {
	db   *sql.DB
	name string
}

var _ storage.Store = (*SQLiteStore)(nil)

// NewSQLiteStore wraps an initialized database. name is only used in errors.
func NewSQLiteStore(db *sql.DB, name string) *SQLiteStore {
	return &SQLiteStore{db: db, name: name}
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ReadAll(ctx context.Context) ([]models.Contact, error) {
	rows, err := s.db.QueryContext(ctx, selectContacts)
	if err != nil {
		return nil, s.wrap("read", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("error closing rows", "error", err)
		}
	}()

	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Surname, &c.Name, &c.Middlename, &c.OrgName, &c.PhoneForWork, &c.PersonalPhone); err != nil {
			return nil, s.wrap("read", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, s.wrap("read", err)
	}

	slog.Debug("read contacts", "path", s.name, "format", "sqlite", "count", len(contacts))
	return contacts, nil
}

func (s *SQLiteStore) Append(ctx context.Context, contact models.Contact) error {
	if _, err := s.db.ExecContext(ctx, insertContact, insertArgs(contact)...); err != nil {
		return s.wrap("append", err)
	}
	slog.Debug("appended contact", "path", s.name, "id", contact.ID)
	return nil
}

func (s *SQLiteStore) RewriteAll(ctx context.Context, contacts []models.Contact) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.wrap("rewrite", fmt.Errorf("failed to begin transaction: %w", err))
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Printf("failed to rollback transaction: %v", err)
		}
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM contacts"); err != nil {
		return s.wrap("rewrite", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertContact)
	if err != nil {
		return s.wrap("rewrite", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, c := range contacts {
		if _, err := stmt.ExecContext(ctx, insertArgs(c)...); err != nil {
			return s.wrap("rewrite", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return s.wrap("rewrite", fmt.Errorf("failed to commit transaction: %w", err))
	}

	slog.Debug("rewrote contacts", "path", s.name, "format", "sqlite", "count", len(contacts))
	return nil
}

func (s *SQLiteStore) wrap(op string, err error) error {
	return &storage.StorageError{Op: op, Path: s.name, Err: err}
}

func insertArgs(c models.Contact) []any {
	return []any{c.ID, c.Surname, c.Name, c.Middlename, c.OrgName, c.PhoneForWork, c.PersonalPhone}
}
