package console

import (
	"errors"
	"io"
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/phonebook/internal/models"
	contactservice "github.com/thenoetrevino/phonebook/internal/services/contact"
)

// HuhPrompter asks questions with huh forms and pauses with a bubbletea pager
type HuhPrompter struct {
	theme  huh.Theme
	input  io.Reader
	output io.Writer
}

// NewHuhPrompter creates a prompter drawing on the terminal with theme
func NewHuhPrompter(theme huh.Theme, input io.Reader, output io.Writer) *HuhPrompter {
	return &HuhPrompter{theme: theme, input: input, output: output}
}

func (p *HuhPrompter) run(fields ...huh.Field) error {
	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(p.theme).
		WithShowHelp(false)
	if p.input != nil {
		form = form.WithInput(p.input)
	}
	if p.output != nil {
		form = form.WithOutput(p.output)
	}

	err := form.Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

// Input implements Prompter
func (p *HuhPrompter) Input(title, placeholder string) (string, error) {
	var value string
	err := p.run(huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value))
	return strings.TrimSpace(value), err
}

// ContactForm implements Prompter
func (p *HuhPrompter) ContactForm(title string, req *contactservice.CreateContactRequest) error {
	input := func(f models.Field, value *string, caption string) huh.Field {
		placeholder := ""
		if !f.Required() {
			placeholder = models.NotSpecified
		}
		return huh.NewInput().
			Key(f.Key()).
			Title(caption).
			Placeholder(placeholder).
			Value(value)
	}

	return p.run(
		huh.NewNote().Title(title),
		input(models.FieldSurname, &req.Surname, "Фамилия*"),
		input(models.FieldName, &req.Name, "Имя*"),
		input(models.FieldMiddlename, &req.Middlename, "Отчество*"),
		input(models.FieldPersonalPhone, &req.PersonalPhone, "Личный (сотовый) телефон*"),
		input(models.FieldOrgName, &req.OrgName, "Организация"),
		input(models.FieldPhoneForWork, &req.PhoneForWork, "Рабочий телефон"),
	)
}

// Select implements Prompter
func (p *HuhPrompter) Select(title string, options []Option) (int, error) {
	huhOptions := make([]huh.Option[int], 0, len(options))
	for _, o := range options {
		huhOptions = append(huhOptions, huh.NewOption(o.Label, o.Value))
	}

	var choice int
	if len(options) > 0 {
		choice = options[0].Value
	}
	err := p.run(huh.NewSelect[int]().
		Title(title).
		Options(huhOptions...).
		Value(&choice))
	return choice, err
}

// Pause implements Prompter
func (p *HuhPrompter) Pause(message string) (bool, error) {
	return runPager(message, p.input, p.output)
}
