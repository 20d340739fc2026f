package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-contactform/pkg/model"
)

// DefaultOperationID is the operation that describes the contact form.
const DefaultOperationID = "submitContact"

const (
	orderExtensionKey  = "x-order"
	widgetExtensionKey = "x-widget"
)

// ErrOperationNotFound is returned when the requested operation is missing.
var ErrOperationNotFound = errors.New("openapi parser: operation not found")

// ParserOptions exposes toggles for parsing.
type ParserOptions struct {
	// ResolveReferences validates the document, which also resolves $ref
	// pointers, before reading schemas.
	ResolveReferences bool
	// Labeler produces labels for properties without a title.
	Labeler func(string) string
	// Decorators run on the built form model.
	Decorators []model.Decorator
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithReferenceResolution toggles document validation and reference resolution.
func WithReferenceResolution(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.ResolveReferences = enabled
	}
}

// WithLabeler overrides the default label generation function.
func WithLabeler(labeler func(string) string) ParserOption {
	return func(opts *ParserOptions) {
		if labeler != nil {
			opts.Labeler = labeler
		}
	}
}

// WithDecorators appends decorators applied after the form is built.
func WithDecorators(decorators ...model.Decorator) ParserOption {
	return func(opts *ParserOptions) {
		opts.Decorators = append(opts.Decorators, decorators...)
	}
}

// Parser converts OpenAPI documents into form models using kin-openapi.
type Parser struct {
	options ParserOptions
}

// NewParser constructs a Parser with the given options.
func NewParser(options ...ParserOption) *Parser {
	cfg := ParserOptions{
		ResolveReferences: true,
		Labeler:           model.DefaultLabeler,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Parser{options: cfg}
}

// Form builds the form model for operationID from doc.
func (p *Parser) Form(ctx context.Context, doc Document, operationID string) (model.FormModel, error) {
	if err := ctx.Err(); err != nil {
		return model.FormModel{}, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return model.FormModel{}, errors.New("openapi parser: document payload is empty")
	}
	if operationID == "" {
		operationID = DefaultOperationID
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("openapi parser: load document: %w", err)
	}
	if p.options.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return model.FormModel{}, fmt.Errorf("openapi parser: validate: %w", err)
		}
	}

	method, path, op := findOperation(spec, operationID)
	if op == nil {
		return model.FormModel{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	body := requestSchema(op.RequestBody)
	if body == nil {
		return model.FormModel{}, fmt.Errorf("openapi parser: operation %q has no request body schema", operationID)
	}

	form := model.FormModel{
		OperationID: operationID,
		Endpoint:    path,
		Method:      method,
		Title:       strings.TrimSpace(op.Summary),
		Description: strings.TrimSpace(op.Description),
		Fields:      p.fields(body),
	}
	if form.Title == "" {
		form.Title = model.DefaultTitle
	}
	if err := model.Apply(&form, p.options.Decorators...); err != nil {
		return model.FormModel{}, fmt.Errorf("openapi parser: decorate: %w", err)
	}
	return form, nil
}

func findOperation(spec *openapi3.T, operationID string) (string, string, *openapi3.Operation) {
	if spec.Paths == nil {
		return "", "", nil
	}
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op != nil && op.OperationID == operationID {
				return strings.ToUpper(method), path, op
			}
		}
	}
	return "", "", nil
}

func requestSchema(requestBody *openapi3.RequestBodyRef) *openapi3.Schema {
	if requestBody == nil || requestBody.Value == nil {
		return nil
	}
	content := requestBody.Value.Content
	for _, mediaType := range []string{"application/x-www-form-urlencoded", "application/json", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

type orderedField struct {
	order int
	field model.Field
}

func (p *Parser) fields(schema *openapi3.Schema) []model.Field {
	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	collected := make([]orderedField, 0, len(schema.Properties))
	for name, ref := range schema.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		collected = append(collected, orderedField{
			order: extensionInt(ref.Value.Extensions, orderExtensionKey),
			field: p.field(name, ref.Value, required[name]),
		})
	}

	sort.SliceStable(collected, func(i, j int) bool {
		if collected[i].order != collected[j].order {
			return collected[i].order < collected[j].order
		}
		return collected[i].field.Name < collected[j].field.Name
	})

	out := make([]model.Field, 0, len(collected))
	for _, entry := range collected {
		out = append(out, entry.field)
	}
	return out
}

func (p *Parser) field(name string, src *openapi3.Schema, required bool) model.Field {
	field := model.Field{
		Name:        name,
		Type:        model.FieldTypeString,
		Format:      src.Format,
		Required:    required,
		Label:       strings.TrimSpace(src.Title),
		Description: strings.TrimSpace(src.Description),
		Widget:      model.WidgetInput,
	}
	if field.Label == "" {
		field.Label = p.options.Labeler(name)
	}

	if required {
		field.Validations = append(field.Validations, model.ValidationRule{Kind: model.ValidationRuleRequired})
	}
	if src.MinLength > 0 {
		field.Validations = append(field.Validations, model.ValidationRule{
			Kind:   model.ValidationRuleMinLength,
			Params: map[string]string{"value": strconv.FormatUint(src.MinLength, 10)},
		})
	}
	if src.Format != "" {
		field.Validations = append(field.Validations, model.ValidationRule{
			Kind:   model.ValidationRuleFormat,
			Params: map[string]string{"format": src.Format},
		})
		if src.Format == "email" {
			field.Widget = model.WidgetEmail
		}
	}
	if widget, ok := src.Extensions[widgetExtensionKey].(string); ok && widget != "" {
		field.Widget = model.Widget(widget)
	}
	return field
}

func extensionInt(extensions map[string]any, key string) int {
	switch v := extensions[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return 0
}

// LoadForm loads src and builds the contact form model from the default
// operation. Documents whose fields or constraints differ from what the
// engine enforces are rejected with model.ErrSchemaMismatch.
func LoadForm(ctx context.Context, src Source, options ...ParserOption) (model.FormModel, error) {
	doc, err := NewLoader().Load(ctx, src)
	if err != nil {
		return model.FormModel{}, err
	}
	form, err := NewParser(options...).Form(ctx, doc, DefaultOperationID)
	if err != nil {
		return model.FormModel{}, err
	}
	if err := model.CheckContactForm(form); err != nil {
		return model.FormModel{}, fmt.Errorf("openapi parser: %s: %w", src.Location(), err)
	}
	return form, nil
}
