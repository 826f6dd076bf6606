package models

import (
	"strconv"
	"strings"
)

// NotSpecified is stored in place of an optional field that was left empty
const NotSpecified = "Не указан"

// Contact represents a single entry in the phone book
type Contact struct {
	ID            int    `json:"id" yaml:"id"`
	Surname       string `json:"surname" yaml:"surname"`
	Name          string `json:"name" yaml:"name"`
	Middlename    string `json:"middlename" yaml:"middlename"`
	OrgName       string `json:"org_name" yaml:"org_name"`
	PhoneForWork  string `json:"phone_for_work" yaml:"phone_for_work"`
	PersonalPhone string `json:"personal_phone" yaml:"personal_phone"`
}

// GetID lets the CLI output formatter print only the id in quiet mode
func (c *Contact) GetID() int {
	return c.ID
}

// FullName returns "Surname Name Middlename"
func (c *Contact) FullName() string {
	return strings.Join([]string{c.Surname, c.Name, c.Middlename}, " ")
}

// Value returns the string form of a field
func (c *Contact) Value(f Field) string {
	switch f {
	case FieldID:
		return strconv.Itoa(c.ID)
	case FieldSurname:
		return c.Surname
	case FieldName:
		return c.Name
	case FieldMiddlename:
		return c.Middlename
	case FieldOrgName:
		return c.OrgName
	case FieldPhoneForWork:
		return c.PhoneForWork
	case FieldPersonalPhone:
		return c.PersonalPhone
	}
	return ""
}

// Set assigns a string value to a field. FieldID expects a decimal integer.
func (c *Contact) Set(f Field, value string) error {
	switch f {
	case FieldID:
		id, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		c.ID = id
	case FieldSurname:
		c.Surname = value
	case FieldName:
		c.Name = value
	case FieldMiddlename:
		c.Middlename = value
	case FieldOrgName:
		c.OrgName = value
	case FieldPhoneForWork:
		c.PhoneForWork = value
	case FieldPersonalPhone:
		c.PersonalPhone = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Fields returns the contact as key/value pairs in serialization order
func (c *Contact) Fields() []KeyValue {
	kvs := make([]KeyValue, 0, len(AllFields))
	for _, f := range AllFields {
		kvs = append(kvs, KeyValue{Key: f.Key(), Value: c.Value(f)})
	}
	return kvs
}

// Normalize trims every text field and fills empty optional fields with NotSpecified
func (c *Contact) Normalize() {
	c.Surname = strings.TrimSpace(c.Surname)
	c.Name = strings.TrimSpace(c.Name)
	c.Middlename = strings.TrimSpace(c.Middlename)
	c.PersonalPhone = strings.TrimSpace(c.PersonalPhone)
	c.OrgName = orNotSpecified(c.OrgName)
	c.PhoneForWork = orNotSpecified(c.PhoneForWork)
}

// Validate reports the first required field that is empty, then the first
// field holding a line break
func (c *Contact) Validate() error {
	for _, f := range RequiredFields {
		if strings.TrimSpace(c.Value(f)) == "" {
			return &ValidationError{Field: f}
		}
	}
	for _, f := range AllFields {
		if err := ValidateValue(f, c.Value(f)); err != nil {
			return err
		}
	}
	return nil
}

// ValidateValue rejects a value no storage format can hold on one line
func ValidateValue(f Field, value string) error {
	if strings.ContainsAny(value, "\r\n") {
		return &ValidationError{Field: f, Reason: ReasonLineBreak}
	}
	return nil
}

// KeyValue is one serialized field
type KeyValue struct {
	Key   string
	Value string
}

func orNotSpecified(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return NotSpecified
	}
	return s
}
