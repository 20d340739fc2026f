package contactform

import (
	"errors"
	"strings"
)

// ErrUnknownField is returned when a caller addresses a field the contact form
// does not declare.
var ErrUnknownField = errors.New("contactform: unknown field")

// ErrorKind enumerates the validation failures the form can report.
type ErrorKind int

const (
	FirstNameTooShort ErrorKind = iota + 1
	LastNameRequired
	EmailInvalid
)

func (k ErrorKind) String() string {
	switch k {
	case FirstNameTooShort:
		return "FirstNameTooShort"
	case LastNameRequired:
		return "LastNameRequired"
	case EmailInvalid:
		return "EmailInvalid"
	default:
		return "Unknown"
	}
}

// Messages shown for each validation failure.
const (
	MessageFirstNameTooShort = "firstName must have at least 5 characters."
	MessageLastNameRequired  = "lastName is a required field."
	MessageEmailInvalid      = "email must be a valid email address."
)

// ValidationError describes a single violated rule.
type ValidationError struct {
	Field   Field     `json:"field"`
	Kind    ErrorKind `json:"-"`
	Message string    `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors is an ordered list of violations, firstName first.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	return strings.Join(errs.Messages(), " ")
}

// Messages returns the bare message strings in order.
func (errs ValidationErrors) Messages() []string {
	if len(errs) == 0 {
		return []string{}
	}
	out := make([]string, 0, len(errs))
	for _, err := range errs {
		out = append(out, err.Message)
	}
	return out
}

// For returns the violations reported for field.
func (errs ValidationErrors) For(field Field) ValidationErrors {
	var out ValidationErrors
	for _, err := range errs {
		if err.Field == field {
			out = append(out, err)
		}
	}
	return out
}

// Has reports whether a violation of kind is present.
func (errs ValidationErrors) Has(kind ErrorKind) bool {
	for _, err := range errs {
		if err.Kind == kind {
			return true
		}
	}
	return false
}
