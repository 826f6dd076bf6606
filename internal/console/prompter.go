package console

import (
	"errors"

	contactservice "github.com/thenoetrevino/phonebook/internal/services/contact"
)

// ErrAborted is returned by a Prompter when the user cancels a prompt
var ErrAborted = errors.New("prompt aborted")

// Option is one entry of a Select prompt
type Option struct {
	Label string
	Value int
}

// Prompter asks the user for input
type Prompter interface {
	// Input asks for one line of text
	Input(title, placeholder string) (string, error)

	// ContactForm asks for every contact field. Values already present in
	// req are offered as the starting text.
	ContactForm(title string, req *contactservice.CreateContactRequest) error

	// Select returns the Value of the chosen option
	Select(title string, options []Option) (int, error)

	// Pause waits for a key press. It returns false when the user asked to
	// stop instead of continuing.
	Pause(message string) (bool, error)
}
