package contactform

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FirstNameMinLength is the minimum number of characters accepted for firstName.
const FirstNameMinLength = 5

// Rule pairs a predicate over one field value with the error it reports.
// Check receives the trimmed value and returns true when the value is valid.
type Rule struct {
	Field   Field
	Kind    ErrorKind
	Message string
	Check   func(v *validator.Validate, value string) bool
}

// DefaultRules returns the contact form rules in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Field:   FieldFirstName,
			Kind:    FirstNameTooShort,
			Message: MessageFirstNameTooShort,
			Check:   tagCheck(fmt.Sprintf("min=%d", FirstNameMinLength)),
		},
		{
			Field:   FieldLastName,
			Kind:    LastNameRequired,
			Message: MessageLastNameRequired,
			Check:   tagCheck("required"),
		},
		{
			Field:   FieldEmail,
			Kind:    EmailInvalid,
			Message: MessageEmailInvalid,
			Check:   checkEmail,
		},
	}
}

// NewValidator returns the validator instance rules are evaluated with.
func NewValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func tagCheck(tag string) func(*validator.Validate, string) bool {
	return func(v *validator.Validate, value string) bool {
		return v.Var(value, tag) == nil
	}
}

// checkEmail accepts local@domain.tld addresses. validator's email tag allows
// dotless domains, so the top level label is checked separately.
func checkEmail(v *validator.Validate, value string) bool {
	if v.Var(value, "required,email") != nil {
		return false
	}
	at := strings.LastIndex(value, "@")
	if at < 0 {
		return false
	}
	domain := value[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// Validate evaluates every rule against values and returns the violations in
// rule order. It never stops at the first failure.
func Validate(values FieldSet, rules ...Rule) ValidationErrors {
	return validateWith(NewValidator(), values, rules)
}

func validateWith(v *validator.Validate, values FieldSet, rules []Rule) ValidationErrors {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	var out ValidationErrors
	for _, rule := range rules {
		if failed, verr := evaluate(v, rule, values); failed {
			out = append(out, verr)
		}
	}
	return out
}

func evaluate(v *validator.Validate, rule Rule, values FieldSet) (bool, ValidationError) {
	if rule.Check == nil {
		return false, ValidationError{}
	}
	value := strings.TrimSpace(values.Get(rule.Field))
	if rule.Check(v, value) {
		return false, ValidationError{}
	}
	return true, ValidationError{
		Field:   rule.Field,
		Kind:    rule.Kind,
		Message: rule.Message,
	}
}
