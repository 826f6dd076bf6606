// Package console runs the interactive menu of the phone book
package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/thenoetrevino/phonebook/internal/cli/styles"
	"github.com/thenoetrevino/phonebook/internal/models"
	"github.com/thenoetrevino/phonebook/internal/repository"
	contactservice "github.com/thenoetrevino/phonebook/internal/services/contact"
	"github.com/thenoetrevino/phonebook/internal/storage"
)

// Console drives the 1-5 menu over a contact service
type Console struct {
	service  contactservice.Service
	prompter Prompter
	renderer Renderer
	pageSize int
	cursor   *repository.Cursor
}

// New creates a console. pageSize is offered when the user leaves the
// pagination prompt blank.
func New(service contactservice.Service, prompter Prompter, renderer Renderer, pageSize int) *Console {
	if pageSize <= 0 {
		pageSize = repository.DefaultPageSize
	}
	return &Console{
		service:  service,
		prompter: prompter,
		renderer: renderer,
		pageSize: pageSize,
		cursor:   repository.NewCursor(),
	}
}

// Run shows the menu until the user exits. Recoverable failures are
// reported and the menu is shown again; only prompt I/O failures end it.
func (c *Console) Run(ctx context.Context) error {
	c.renderer.Message(KindInfo, msgWelcome)

	if c.service.Count() == 0 {
		c.renderer.Markdown(msgFirstRun)
		if _, err := c.addContact(ctx); err != nil && !errors.Is(err, ErrAborted) {
			return err
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := c.prompter.Select(msgMenuTitle, menuOptions)
		if errors.Is(err, ErrAborted) {
			choice = choiceExit
		} else if err != nil {
			return err
		}

		switch choice {
		case choiceList:
			err = c.listContacts()
		case choiceAdd:
			c.renderer.Message(KindPlain, msgRequiredFields)
			var added bool
			added, err = c.addContact(ctx)
			if added {
				_, err = c.prompter.Pause(msgPressAnyKey)
			}
		case choiceEdit:
			err = c.editContact(ctx)
		case choiceSearch:
			err = c.searchContacts()
		case choiceExit:
			c.renderer.Message(KindInfo, msgGoodbye)
			return nil
		default:
			c.renderer.Message(KindError, msgUnknownChoice)
		}

		if errors.Is(err, ErrAborted) {
			continue
		}
		if err != nil {
			return err
		}
	}
}

// listContacts shows the book page by page
func (c *Console) listContacts() error {
	answer, err := c.prompter.Input(fmt.Sprintf(msgPageSizePrompt, c.pageSize), strconv.Itoa(c.pageSize))
	if err != nil {
		return err
	}

	pageSize := c.pageSize
	if answer != "" {
		pageSize, err = strconv.Atoi(answer)
		if err != nil {
			c.renderer.Message(KindError, msgNotANumber)
			return nil
		}
	}

	c.cursor.Reset()
	defer c.cursor.Reset()

	for {
		page, err := c.service.ListPage(c.cursor, pageSize)
		if errors.Is(err, contactservice.ErrNegativePageSize) {
			c.renderer.Message(KindError, msgNegativePageSize)
			return nil
		}
		if err != nil {
			return err
		}

		c.renderer.Table(page.Contacts, styles.TableOptions{Title: msgYourContacts, ShowIndex: true})
		c.renderer.PageFooter(page)

		if !page.HasMore {
			c.renderer.Message(KindSuccess, msgBookFinished)
			_, err := c.prompter.Pause(msgPressAnyKey)
			return err
		}

		more, err := c.prompter.Pause(msgPressAnyKey)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// addContact asks for a contact until it validates or the user aborts.
// Storage failures are reported and end the attempt.
func (c *Console) addContact(ctx context.Context) (bool, error) {
	var req contactservice.CreateContactRequest
	for {
		if err := c.prompter.ContactForm(msgRequiredFields, &req); err != nil {
			return false, err
		}

		contact, err := c.service.CreateContact(ctx, req)
		var validationErr *models.ValidationError
		switch {
		case errors.As(err, &validationErr) && validationErr.Reason != "":
			c.renderer.Message(KindError, validationErr.Error())
			continue
		case errors.As(err, &validationErr):
			c.renderer.Message(KindError, msgMissingFields)
			continue
		case err != nil:
			slog.Error("failed to add contact", "error", err)
			c.renderer.Message(KindError, msgSaveFailed)
			_, pauseErr := c.prompter.Pause(msgPressAnyKey)
			return false, pauseErr
		}

		c.renderer.Card(*contact)
		return true, nil
	}
}

// editContact picks a contact by number then edits fields until "exit"
func (c *Console) editContact(ctx context.Context) error {
	all := c.service.Search("")
	if len(all) == 0 {
		c.renderer.Message(KindWarning, msgEmptyBook)
		return nil
	}
	c.renderer.Table(all, styles.TableOptions{Title: msgYourContacts, ShowIndex: true})

	answer, err := c.prompter.Input(msgEditPickContact, "1")
	if err != nil {
		return err
	}
	number, err := strconv.Atoi(answer)
	if err != nil {
		c.renderer.Message(KindError, msgNotANumber)
		return nil
	}
	index := number - 1
	if _, err := c.service.Get(index); err != nil {
		c.renderer.Message(KindError, msgEditNoContact)
		return nil
	}

	c.renderer.Markdown(editHelp())

	for {
		field, err := c.prompter.Input(msgEditFieldPrompt, "")
		if err != nil {
			return err
		}
		if strings.EqualFold(strings.TrimSpace(field), exitWord) {
			return nil
		}
		if _, err := models.LookupEditableField(field); err != nil {
			c.renderer.Message(KindError, msgFieldNotFound)
			continue
		}

		value, err := c.prompter.Input(msgEditNewValue, "")
		if err != nil {
			return err
		}

		updated, err := c.service.UpdateContact(ctx, contactservice.UpdateContactRequest{
			Index: index,
			Field: field,
			Value: value,
		})
		var validationErr *models.ValidationError
		var storageErr *storage.StorageError
		switch {
		case errors.As(err, &validationErr):
			c.renderer.Message(KindError, validationErr.Error())
			continue
		case errors.As(err, &storageErr):
			slog.Error("failed to update contact", "error", err)
			c.renderer.Message(KindError, msgSaveFailed)
			continue
		case err != nil:
			return err
		}

		c.renderer.Card(*updated)
	}
}

// searchContacts prints every contact containing the typed text
func (c *Console) searchContacts() error {
	query, err := c.prompter.Input(msgSearchPrompt, "")
	if err != nil {
		return err
	}

	found := c.service.Search(query)
	if len(found) == 0 {
		c.renderer.Message(KindWarning, msgSearchNotFound)
	} else {
		c.renderer.Table(found, styles.TableOptions{Title: msgSearchFound, ShowIndex: true, ShowID: true})
	}

	_, err = c.prompter.Pause(msgPressAnyKey)
	return err
}

func editHelp() string {
	var b strings.Builder
	b.WriteString(msgEditWhat)
	b.WriteString("\n\nПоля для изменения:\n\n")
	for _, f := range models.AllFields {
		if f.Editable() {
			fmt.Fprintf(&b, "- _%s_\n", styles.Capitalize(f.Label()))
		}
	}
	return b.String()
}
