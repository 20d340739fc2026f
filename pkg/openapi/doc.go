// Package openapi loads the contact form description from an OpenAPI 3
// document. The request body schema of the form operation supplies field
// order, labels, widgets and constraints; kin-openapi does the parsing and
// stays hidden behind model.FormModel.
package openapi
