package render

import "github.com/goliatone/go-contactform/pkg/model"

// DefaultErrorPrefix is prepended to every displayed validation message.
const DefaultErrorPrefix = "Error: "

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the form model.
type RenderOptions struct {
	// Title overrides the form header.
	Title string
	// ErrorPrefix is prepended to displayed error messages. Empty means
	// DefaultErrorPrefix.
	ErrorPrefix string
	// Action and Method populate the HTML form element. They default to the
	// form model's endpoint and method.
	Action string
	Method string
	// HiddenFields are emitted as hidden inputs, sorted by name.
	HiddenFields map[string]string
}

func (o RenderOptions) errorPrefix() string {
	if o.ErrorPrefix == "" {
		return DefaultErrorPrefix
	}
	return o.ErrorPrefix
}

func (o RenderOptions) title(form model.FormModel) string {
	switch {
	case o.Title != "":
		return o.Title
	case form.Title != "":
		return form.Title
	default:
		return model.DefaultTitle
	}
}
