package model

import (
	"strconv"

	"github.com/goliatone/go-contactform/pkg/contactform"
)

// DefaultTitle is the header shown above the contact form.
const DefaultTitle = "Contact Form"

// ContactForm returns the built-in description of the contact form. It
// matches the embedded OpenAPI document and is used when no schema is loaded.
func ContactForm() FormModel {
	return FormModel{
		OperationID: "submitContact",
		Endpoint:    "/",
		Method:      "POST",
		Title:       DefaultTitle,
		Fields: []Field{
			{
				Name:     "firstName",
				Type:     FieldTypeString,
				Required: true,
				Label:    "First Name",
				Widget:   WidgetInput,
				Validations: []ValidationRule{
					{Kind: ValidationRuleRequired},
					{Kind: ValidationRuleMinLength, Params: map[string]string{"value": strconv.Itoa(contactform.FirstNameMinLength)}},
				},
			},
			{
				Name:     "lastName",
				Type:     FieldTypeString,
				Required: true,
				Label:    "Last Name",
				Widget:   WidgetInput,
				Validations: []ValidationRule{
					{Kind: ValidationRuleRequired},
				},
			},
			{
				Name:     "email",
				Type:     FieldTypeString,
				Format:   "email",
				Required: true,
				Label:    "Email",
				Widget:   WidgetEmail,
				Validations: []ValidationRule{
					{Kind: ValidationRuleRequired},
					{Kind: ValidationRuleFormat, Params: map[string]string{"format": "email"}},
				},
			},
			{
				Name:   "message",
				Type:   FieldTypeString,
				Label:  "Message",
				Widget: WidgetTextArea,
			},
		},
	}
}
