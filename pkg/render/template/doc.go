// Package template defines the template rendering contract used by the HTML
// renderer, so callers can swap the default pongo2 engine for their own.
package template
