package model

import (
	"errors"
	"fmt"
)

// ErrSchemaMismatch is returned when a form description disagrees with the
// fields or constraints the contact form engine enforces.
var ErrSchemaMismatch = errors.New("model: form does not match the contact form")

// CheckContactForm compares form with ContactForm. Labels, widgets, order
// and titles may differ; the field set, required flags, minimum lengths and
// formats must not.
func CheckContactForm(form FormModel) error {
	reference := ContactForm()

	var errs []error
	seen := make(map[string]bool, len(form.Fields))
	for _, field := range form.Fields {
		if seen[field.Name] {
			errs = append(errs, fmt.Errorf("field %q is declared twice", field.Name))
			continue
		}
		seen[field.Name] = true

		want, ok := reference.Field(field.Name)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown field %q", field.Name))
			continue
		}
		if field.Required != want.Required {
			errs = append(errs, fmt.Errorf("field %q required is %t, want %t", field.Name, field.Required, want.Required))
		}
		if got, exp := ruleParam(field, ValidationRuleMinLength, "value"), ruleParam(want, ValidationRuleMinLength, "value"); got != exp {
			errs = append(errs, fmt.Errorf("field %q minLength is %q, want %q", field.Name, got, exp))
		}
		if got, exp := formatOf(field), formatOf(want); got != exp {
			errs = append(errs, fmt.Errorf("field %q format is %q, want %q", field.Name, got, exp))
		}
	}
	for _, want := range reference.Fields {
		if !seen[want.Name] {
			errs = append(errs, fmt.Errorf("missing field %q", want.Name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrSchemaMismatch, errors.Join(errs...))
	}
	return nil
}

func ruleParam(field Field, kind, key string) string {
	rule, ok := field.Rule(kind)
	if !ok {
		return ""
	}
	return rule.Params[key]
}

func formatOf(field Field) string {
	if field.Format != "" {
		return field.Format
	}
	return ruleParam(field, ValidationRuleFormat, "format")
}
