package models

import "strings"

// Field identifies one attribute of a Contact
type Field int

const (
	FieldID Field = iota
	FieldSurname
	FieldName
	FieldMiddlename
	FieldOrgName
	FieldPhoneForWork
	FieldPersonalPhone
)

// AllFields lists every field in serialization order
var AllFields = []Field{
	FieldID,
	FieldSurname,
	FieldName,
	FieldMiddlename,
	FieldOrgName,
	FieldPhoneForWork,
	FieldPersonalPhone,
}

// RequiredFields must be non-empty on every stored contact
var RequiredFields = []Field{
	FieldSurname,
	FieldName,
	FieldMiddlename,
	FieldPersonalPhone,
}

var fieldKeys = map[Field]string{
	FieldID:            "id",
	FieldSurname:       "surname",
	FieldName:          "name",
	FieldMiddlename:    "middlename",
	FieldOrgName:       "org_name",
	FieldPhoneForWork:  "phone_for_work",
	FieldPersonalPhone: "personal_phone",
}

var fieldLabels = map[Field]string{
	FieldID:            "id",
	FieldSurname:       "фамилия",
	FieldName:          "имя",
	FieldMiddlename:    "отчество",
	FieldOrgName:       "организация",
	FieldPhoneForWork:  "рабочий телефон",
	FieldPersonalPhone: "личный телефон",
}

// Key returns the serialized key name, e.g. "org_name"
func (f Field) Key() string {
	return fieldKeys[f]
}

// Label returns the lower-case user-facing name, e.g. "организация"
func (f Field) Label() string {
	return fieldLabels[f]
}

// String implements fmt.Stringer
func (f Field) String() string {
	return f.Key()
}

// Required reports whether the field must be non-empty
func (f Field) Required() bool {
	for _, r := range RequiredFields {
		if r == f {
			return true
		}
	}
	return false
}

// Editable reports whether the field can be changed after creation.
// The id is assigned once and never edited.
func (f Field) Editable() bool {
	_, ok := fieldKeys[f]
	return ok && f != FieldID
}

// FieldByKey resolves a serialized key name
func FieldByKey(key string) (Field, bool) {
	for f, k := range fieldKeys {
		if k == key {
			return f, true
		}
	}
	return 0, false
}

// LookupEditableField resolves what a user typed into an editable field.
// Both the user-facing label ("личный телефон") and the key ("personal_phone")
// are accepted, ignoring case and surrounding whitespace.
func LookupEditableField(input string) (Field, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	for _, f := range AllFields {
		if !f.Editable() {
			continue
		}
		if input == f.Label() || input == f.Key() {
			return f, nil
		}
	}
	return 0, ErrUnknownField
}
