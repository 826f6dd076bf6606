package storage

import (
	"fmt"
	"io"
	"strings"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// Codec converts a contact list to and from a file format
type Codec interface {
	// Name is the value accepted by CodecByName
	Name() string
	// Decode reads every contact from r. Malformed input yields a *ParseError.
	Decode(r io.Reader) ([]models.Contact, error)
	// Encode writes contacts to w
	Encode(w io.Writer, contacts []models.Contact) error
	// Appendable reports whether Encode output can be appended to an existing file
	Appendable() bool
}

// ValueChecker is implemented by codecs that cannot round-trip every string.
// CheckValue returns a *models.ValidationError for a value that would not
// read back unchanged.
type ValueChecker interface {
	CheckValue(f models.Field, value string) error
}

// Supported codec names
const (
	FormatBlock     = "block"
	FormatJSONLines = "jsonl"
	FormatYAML      = "yaml"
)

// CodecByName returns the codec registered under name
func CodecByName(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatBlock, "":
		return BlockCodec{}, nil
	case FormatJSONLines:
		return JSONLinesCodec{}, nil
	case FormatYAML:
		return YAMLCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown storage format %q (must be: block, jsonl, yaml)", name)
	}
}
