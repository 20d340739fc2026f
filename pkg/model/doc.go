// Package model describes the contact form for renderers: the ordered fields,
// their labels and widgets, and the validation constraints declared for each
// one. Validation rules expose canonical identifiers (minLength, required,
// format) with string parameters so renderers can map them onto HTML
// attributes or prompt hints. The model is descriptive only; the contactform
// package is the source of truth for whether a value passes.
package model
