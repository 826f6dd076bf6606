package console

import (
	"fmt"
	"io"

	"github.com/thenoetrevino/phonebook/internal/cli/styles"
	"github.com/thenoetrevino/phonebook/internal/models"
	"github.com/thenoetrevino/phonebook/internal/repository"
)

// MessageKind selects how a message is styled
type MessageKind int

const (
	KindPlain MessageKind = iota
	KindInfo
	KindSuccess
	KindWarning
	KindError
)

// Renderer draws console output
type Renderer interface {
	Message(kind MessageKind, text string)
	Markdown(md string)
	Table(entries []repository.Entry, opts styles.TableOptions)
	PageFooter(page repository.Page)
	Card(contact models.Contact)
}

// TerminalRenderer writes lipgloss-styled output to a writer
type TerminalRenderer struct {
	out   io.Writer
	width int
}

// NewTerminalRenderer creates a renderer wrapping markdown at width columns
func NewTerminalRenderer(out io.Writer, width int) *TerminalRenderer {
	if width <= 0 {
		width = 80
	}
	return &TerminalRenderer{out: out, width: width}
}

func (r *TerminalRenderer) Message(kind MessageKind, text string) {
	switch kind {
	case KindInfo:
		text = styles.InfoStyle.Render(text)
	case KindSuccess:
		text = styles.SuccessStyle.Render(text)
	case KindWarning:
		text = styles.WarningStyle.Render(text)
	case KindError:
		text = styles.ErrorStyle.Render(text)
	}
	fmt.Fprintln(r.out, text)
}

func (r *TerminalRenderer) Markdown(md string) {
	fmt.Fprintln(r.out, styles.RenderMarkdown(md, r.width))
}

func (r *TerminalRenderer) Table(entries []repository.Entry, opts styles.TableOptions) {
	fmt.Fprintln(r.out, styles.RenderContactTable(entries, opts))
}

func (r *TerminalRenderer) PageFooter(page repository.Page) {
	fmt.Fprintln(r.out, styles.RenderPageFooter(page))
}

func (r *TerminalRenderer) Card(contact models.Contact) {
	fmt.Fprintln(r.out, styles.RenderCard(contact))
}
