package styles

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/phonebook/internal/config/colors"
	"github.com/thenoetrevino/phonebook/internal/models"
	"github.com/thenoetrevino/phonebook/internal/repository"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 60

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "ФИО:"
	ValueStyle    lipgloss.Style // For field values
	SubtleStyle   lipgloss.Style // For the "Не указан" sentinel

	// Table styles
	TableBorderStyle lipgloss.Style
	TableHeaderStyle lipgloss.Style
	TableCellStyle   lipgloss.Style
	TableIndexStyle  lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	EditStyle    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	scheme.ApplyDefaults()

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(0, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SubtleStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(scheme.Subtle))

	TableBorderStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.TableBorder))

	TableHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color(scheme.TableHeader))

	TableCellStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color(scheme.TableCell))

	TableIndexStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color(scheme.Delete))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Create))

	EditStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Edit))

	// Notifications are rendered as foreground/background badges
	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color(scheme.ErrorFg)).
		Background(lipgloss.Color(scheme.ErrorBg))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color(scheme.WarningFg)).
		Background(lipgloss.Color(scheme.WarningBg))

	InfoStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color(scheme.InfoFg)).
		Background(lipgloss.Color(scheme.InfoBg))
}

// Capitalize upper-cases the first letter of a field label
func Capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// TableOptions controls RenderContactTable
type TableOptions struct {
	Title string

	// ShowIndex adds a 1-based "№" column, the number edit and show expect
	ShowIndex bool

	// ShowID adds the stored id column
	ShowID bool
}

// RenderContactTable renders entries as a bordered table
func RenderContactTable(entries []repository.Entry, opts TableOptions) string {
	var headers []string
	if opts.ShowIndex {
		headers = append(headers, "№")
	}
	if opts.ShowID {
		headers = append(headers, "ID")
	}
	for _, f := range models.AllFields[1:] {
		headers = append(headers, Capitalize(f.Label()))
	}
	leading := len(headers) - (len(models.AllFields) - 1)

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		var row []string
		if opts.ShowIndex {
			row = append(row, strconv.Itoa(e.Index+1))
		}
		if opts.ShowID {
			row = append(row, strconv.Itoa(e.Contact.ID))
		}
		for _, f := range models.AllFields[1:] {
			row = append(row, e.Contact.Value(f))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(TableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle
			case col < leading:
				return TableIndexStyle
			default:
				return TableCellStyle
			}
		}).
		Headers(headers...).
		Rows(rows...)

	out := t.String()
	if opts.Title != "" {
		out = TitleStyle.Render(opts.Title) + "\n" + out
	}
	return out
}

// RenderPageFooter returns the "Страница N из M" line printed under a page
func RenderPageFooter(page repository.Page) string {
	return SubtitleStyle.Render(fmt.Sprintf("Страница %d из %d", page.Number, page.TotalPages))
}

// RenderCard renders the detail view of one contact
func RenderCard(c models.Contact) string {
	value := func(s string) string {
		if s == models.NotSpecified {
			return SubtleStyle.Render(s)
		}
		return ValueStyle.Render(s)
	}

	lines := []string{
		TitleStyle.Render(c.FullName()),
		"",
		LabelStyle.Render("ФИО: ") + value(c.FullName()),
		LabelStyle.Render("Организация: ") + value(c.OrgName),
		LabelStyle.Render("Рабочий телефон: ") + value(c.PhoneForWork),
		LabelStyle.Render("Личный телефон: ") + value(c.PersonalPhone),
	}
	return CardStyle.Render(strings.Join(lines, "\n"))
}

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders md for the terminal, falling back to the raw text
func RenderMarkdown(md string, width int) string {
	renderer, err := getRenderer(width)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(rendered)
}
