package storage

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// Separator is the delimiter line written after every block
const Separator = "----------"

const (
	blockOpen   = "{"
	blockClose  = "}"
	blockIndent = "    "
	nullValue   = "null"

	maxLineSize = 1024 * 1024
)

// BlockCodec is the legacy phonebook.txt format: one brace-delimited block of
// "key": "value", lines per contact followed by a separator line.
//
// Values are written verbatim, nothing is escaped. A key/value line is split on
// its first colon, so colons inside values survive, but quotes or commas at the
// edges of a value, and newlines anywhere in it, do not. CheckValue rejects those.
type BlockCodec struct{}

var (
	_ Codec        = BlockCodec{}
	_ ValueChecker = BlockCodec{}
)

func (BlockCodec) Name() string     { return FormatBlock }
func (BlockCodec) Appendable() bool { return true }

// CheckValue reports a value that would not survive a write and read
func (BlockCodec) CheckValue(f models.Field, value string) error {
	if err := models.ValidateValue(f, value); err != nil {
		return err
	}
	switch {
	case strings.HasPrefix(value, `"`), strings.HasSuffix(value, `"`):
		return &models.ValidationError{Field: f, Reason: models.ReasonEdgeQuote}
	case strings.HasPrefix(value, ","), strings.HasSuffix(value, ","):
		return &models.ValidationError{Field: f, Reason: models.ReasonEdgeComma}
	}
	return nil
}

// Encode writes one block per contact. Nothing is written when any value
// fails CheckValue.
func (c BlockCodec) Encode(w io.Writer, contacts []models.Contact) error {
	for i := range contacts {
		for _, f := range models.AllFields {
			if err := c.CheckValue(f, contacts[i].Value(f)); err != nil {
				return err
			}
		}
	}

	bw := bufio.NewWriter(w)
	for i := range contacts {
		bw.WriteString(blockOpen + "\n")
		for _, kv := range contacts[i].Fields() {
			fmt.Fprintf(bw, "%s\"%s\": \"%s\",\n", blockIndent, kv.Key, kv.Value)
		}
		bw.WriteString(blockClose + "\n\n\n" + Separator + "\n\n\n")
	}
	return bw.Flush()
}

// Decode parses blocks until EOF. Blank and separator lines are skipped.
func (BlockCodec) Decode(r io.Reader) ([]models.Contact, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		contacts  []models.Contact
		fields    map[string]string
		blockLine int
		lineNo    int
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "" || line == Separator:
			continue

		case strings.HasPrefix(line, blockOpen):
			if fields != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Reason: "block opened before the previous one was closed"}
			}
			fields = make(map[string]string, len(models.AllFields))
			blockLine = lineNo

		case strings.HasPrefix(line, blockClose):
			if fields == nil {
				return nil, &ParseError{Line: lineNo, Text: line, Reason: "closing brace without an open block"}
			}
			contact, err := contactFromFields(fields, blockLine)
			if err != nil {
				return nil, err
			}
			contacts = append(contacts, contact)
			fields = nil

		default:
			if fields == nil {
				return nil, &ParseError{Line: lineNo, Text: line, Reason: "field outside of a block"}
			}
			key, value, ok := strings.Cut(line, ":")
			if !ok {
				return nil, &ParseError{Line: lineNo, Text: line, Reason: "missing colon"}
			}
			fields[cleanToken(key)] = cleanToken(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if fields != nil {
		return nil, &ParseError{Line: blockLine, Reason: "block is never closed"}
	}

	return contacts, nil
}

// cleanToken strips surrounding whitespace, quotes and commas
func cleanToken(s string) string {
	return strings.Trim(s, " \t\",")
}

func contactFromFields(fields map[string]string, line int) (models.Contact, error) {
	contact := models.Contact{
		OrgName:      models.NotSpecified,
		PhoneForWork: models.NotSpecified,
	}

	for key, value := range fields {
		field, ok := models.FieldByKey(key)
		if !ok {
			slog.Debug("ignoring unknown key", "key", key, "line", line)
			continue
		}
		if value == nullValue {
			value = models.NotSpecified
		}
		if err := contact.Set(field, value); err != nil {
			return models.Contact{}, &ParseError{Line: line, Text: value, Reason: "invalid " + key}
		}
	}

	return contact, nil
}
