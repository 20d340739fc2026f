// Package contactform implements the contact form engine: it owns the values
// typed into the four contact fields, evaluates the validation rules in their
// declared order (firstName, lastName, email), and keeps an immutable snapshot
// of the last successful submission for display.
//
// The engine is synchronous and owned by a single rendered form. Renderers
// observe it through Subscribe and redraw from the Snapshot they receive.
package contactform
