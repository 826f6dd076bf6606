package storage

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// JSONLinesCodec stores one JSON object per line
type JSONLinesCodec struct{}

var _ Codec = JSONLinesCodec{}

func (JSONLinesCodec) Name() string     { return FormatJSONLines }
func (JSONLinesCodec) Appendable() bool { return true }

// Encode writes each contact as a single line
func (JSONLinesCodec) Encode(w io.Writer, contacts []models.Contact) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for i := range contacts {
		if err := enc.Encode(&contacts[i]); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads one contact per non-blank line
func (JSONLinesCodec) Decode(r io.Reader) ([]models.Contact, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var contacts []models.Contact
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var contact models.Contact
		if err := json.Unmarshal(line, &contact); err != nil {
			return nil, &ParseError{Line: lineNo, Text: string(line), Reason: err.Error()}
		}
		fillNotSpecified(&contact)
		contacts = append(contacts, contact)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return contacts, nil
}

// fillNotSpecified replaces absent optional values with the sentinel
func fillNotSpecified(c *models.Contact) {
	if c.OrgName == "" {
		c.OrgName = models.NotSpecified
	}
	if c.PhoneForWork == "" {
		c.PhoneForWork = models.NotSpecified
	}
}
