package contactform

import (
	"fmt"
	"strings"
)

// Field names one of the contact form inputs.
type Field string

const (
	FieldFirstName Field = "firstName"
	FieldLastName  Field = "lastName"
	FieldEmail     Field = "email"
	FieldMessage   Field = "message"
)

var declaredFields = []Field{FieldFirstName, FieldLastName, FieldEmail, FieldMessage}

// Fields returns the contact fields in declared order.
func Fields() []Field {
	return append([]Field(nil), declaredFields...)
}

// Required reports whether the field must be filled before submitting.
func (f Field) Required() bool {
	return f != FieldMessage
}

func (f Field) String() string {
	return string(f)
}

// ParseField resolves a field name, ignoring case and surrounding whitespace.
func ParseField(raw string) (Field, error) {
	trimmed := strings.TrimSpace(raw)
	for _, field := range declaredFields {
		if strings.EqualFold(trimmed, string(field)) {
			return field, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, raw)
}

func knownField(f Field) bool {
	for _, field := range declaredFields {
		if field == f {
			return true
		}
	}
	return false
}

// FieldSet maps each contact field to its current value.
type FieldSet map[Field]string

// Get returns the value stored for field, or "" when unset.
func (s FieldSet) Get(field Field) string {
	if s == nil {
		return ""
	}
	return s[field]
}

// Clone returns a copy of the set. A nil set clones to an empty one.
func (s FieldSet) Clone() FieldSet {
	out := make(FieldSet, len(s))
	for key, value := range s {
		out[key] = value
	}
	return out
}

// Trimmed returns a copy with every value stripped of surrounding whitespace.
func (s FieldSet) Trimmed() FieldSet {
	out := make(FieldSet, len(s))
	for key, value := range s {
		out[key] = strings.TrimSpace(value)
	}
	return out
}
