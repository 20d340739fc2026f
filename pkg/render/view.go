package render

import (
	"strings"

	"github.com/goliatone/go-contactform/pkg/contactform"
	"github.com/goliatone/go-contactform/pkg/model"
)

// Display identifiers used by renderers for the error and echo regions.
const (
	ErrorTestID = "error"
)

// FieldView is one input as a renderer draws it.
type FieldView struct {
	Name      string   `json:"name"`
	Label     string   `json:"label"`
	Widget    string   `json:"widget"`
	InputType string   `json:"inputType"`
	Value     string   `json:"value"`
	Required  bool     `json:"required"`
	MinLength string   `json:"minLength,omitempty"`
	Invalid   bool     `json:"invalid"`
	Errors    []string `json:"errors,omitempty"`
}

// DisplayRow is one echoed value of the last submission.
type DisplayRow struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Value  string `json:"value"`
	HTML   string `json:"html"`
	TestID string `json:"testId"`
}

// View is the renderer-neutral projection of a form and its engine state.
type View struct {
	Title     string        `json:"title"`
	Action    string        `json:"action"`
	Method    string        `json:"method"`
	State     string        `json:"state"`
	Fields    []FieldView   `json:"fields"`
	Errors    []string      `json:"errors"`
	Submitted bool          `json:"submitted"`
	Display   []DisplayRow  `json:"display"`
	Hidden    []HiddenField `json:"hidden,omitempty"`
}

// NewView combines the form description with a snapshot. Errors keep rule
// order; the message row is only displayed when the submission carried one.
func NewView(form model.FormModel, snap contactform.Snapshot, options RenderOptions) View {
	if len(form.Fields) == 0 {
		form = model.ContactForm()
	}
	prefix := options.errorPrefix()

	view := View{
		Title:  options.title(form),
		Action: firstNonEmpty(options.Action, form.Endpoint, "/"),
		Method: strings.ToUpper(firstNonEmpty(options.Method, form.Method, "POST")),
		State:  snap.State.String(),
		Errors: FormatErrors(prefix, snap.Errors.Messages()),
		Hidden: SortedHiddenFields(options.HiddenFields),
	}

	for _, field := range form.Fields {
		fv := FieldView{
			Name:      field.Name,
			Label:     field.Label,
			Widget:    string(field.Widget),
			InputType: inputType(field),
			Value:     snap.Values.Get(contactform.Field(field.Name)),
			Required:  field.Required,
		}
		if fv.Label == "" {
			fv.Label = model.DefaultLabeler(field.Name)
		}
		if rule, ok := field.Rule(model.ValidationRuleMinLength); ok {
			fv.MinLength = rule.Params["value"]
		}
		if errs := snap.Errors.For(contactform.Field(field.Name)); len(errs) > 0 {
			fv.Invalid = true
			fv.Errors = FormatErrors(prefix, errs.Messages())
		}
		view.Fields = append(view.Fields, fv)
	}

	if snap.Submission != nil {
		view.Submitted = true
		view.Display = displayRows(form, *snap.Submission)
	}
	return view
}

func displayRows(form model.FormModel, sub contactform.Submission) []DisplayRow {
	values := map[contactform.Field]string{
		contactform.FieldFirstName: sub.FirstName,
		contactform.FieldLastName:  sub.LastName,
		contactform.FieldEmail:     sub.Email,
	}
	if sub.HasMessage {
		values[contactform.FieldMessage] = sub.Message
	}

	var rows []DisplayRow
	for _, field := range contactform.Fields() {
		value, ok := values[field]
		if !ok {
			continue
		}
		label := model.DefaultLabeler(string(field))
		if described, found := form.Field(string(field)); found && described.Label != "" {
			label = described.Label
		}
		rows = append(rows, DisplayRow{
			Name:   string(field),
			Label:  label,
			Value:  value,
			HTML:   SanitizeDisplay(value),
			TestID: DisplayTestID(field),
		})
	}
	return rows
}

// DisplayTestID returns the identifier of the echo row for field, for
// example "firstnameDisplay".
func DisplayTestID(field contactform.Field) string {
	return strings.ToLower(string(field)) + "Display"
}

func inputType(field model.Field) string {
	switch field.Widget {
	case model.WidgetEmail:
		return "email"
	case model.WidgetTextArea:
		return "textarea"
	default:
		return "text"
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
