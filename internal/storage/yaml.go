package storage

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// YAMLCodec stores the whole book as a single YAML sequence
type YAMLCodec struct{}

var _ Codec = YAMLCodec{}

func (YAMLCodec) Name() string { return FormatYAML }

// Appendable is false: a second document appended to the file would not
// extend the sequence, so appends go through a full rewrite.
func (YAMLCodec) Appendable() bool { return false }

func (YAMLCodec) Encode(w io.Writer, contacts []models.Contact) error {
	if contacts == nil {
		contacts = []models.Contact{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(contacts); err != nil {
		return err
	}
	return enc.Close()
}

func (YAMLCodec) Decode(r io.Reader) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := yaml.NewDecoder(r).Decode(&contacts); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, &ParseError{Reason: err.Error()}
	}
	for i := range contacts {
		fillNotSpecified(&contacts[i])
	}
	return contacts, nil
}
