package model

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString FieldType = "string"
)

// Widget names the input control a renderer should use.
type Widget string

const (
	WidgetInput    Widget = "input"
	WidgetEmail    Widget = "email"
	WidgetTextArea Widget = "textarea"
)

const (
	ValidationRuleMinLength = "minLength"
	ValidationRuleRequired  = "required"
	ValidationRuleFormat    = "format"
)

// ValidationRule represents a single validation constraint applied to a field.
// Length limits encode their threshold in Params["value"]; format rules carry
// the format name in Params["format"].
type ValidationRule struct {
	Kind   string            `json:"kind"`
	Params map[string]string `json:"params,omitempty"`
}

// Field models an individual input inside the form.
type Field struct {
	Name        string           `json:"name"`
	Type        FieldType        `json:"type"`
	Format      string           `json:"format,omitempty"`
	Required    bool             `json:"required"`
	Label       string           `json:"label,omitempty"`
	Placeholder string           `json:"placeholder,omitempty"`
	Description string           `json:"description,omitempty"`
	Widget      Widget           `json:"widget,omitempty"`
	Validations []ValidationRule `json:"validations,omitempty"`
}

// Rule returns the first validation rule of kind.
func (f Field) Rule(kind string) (ValidationRule, bool) {
	for _, rule := range f.Validations {
		if rule.Kind == kind {
			return rule, true
		}
	}
	return ValidationRule{}, false
}

// FormModel is the top-level representation renderers consume.
type FormModel struct {
	OperationID string  `json:"operationId"`
	Endpoint    string  `json:"endpoint"`
	Method      string  `json:"method"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Fields      []Field `json:"fields"`
}

// Field looks up a field by name.
func (m FormModel) Field(name string) (Field, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}
