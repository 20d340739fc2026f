package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-contactform/pkg/contactform"
	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/render"
)

const retryMessage = "Fix the errors and submit again?"

// Renderer drives the contact form from a terminal. Run is the interactive
// session; Render prints a static text view of a snapshot.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	theme        Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, pretty output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatPrettyText,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	switch r.outputFormat {
	case OutputFormatJSON, OutputFormatPrettyText:
	default:
		return nil, fmt.Errorf("tui: unsupported output format %q", r.outputFormat)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render and Run.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatJSON {
		return "application/json"
	}
	return "text/plain; charset=utf-8"
}

func (r *Renderer) errorPrefix() string {
	if r.theme.ErrorPrefix != "" {
		return r.theme.ErrorPrefix
	}
	return render.DefaultErrorPrefix
}

// Run prompts for every field, feeding each answer to engine so live errors
// are printed as soon as a field is left. It then submits; a rejected
// submission prints all errors and offers to prompt again with the current
// values as defaults. The serialized submission is returned on success.
func (r *Renderer) Run(ctx context.Context, engine *contactform.Engine, form model.FormModel) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if engine == nil {
		return nil, errors.New("tui: engine is required")
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}
	if len(form.Fields) == 0 {
		form = model.ContactForm()
	}
	if err := model.CheckContactForm(form); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	if err := r.info(ctx, titleOf(form)); err != nil {
		return nil, err
	}

	for {
		for _, field := range form.Fields {
			if err := r.promptField(ctx, engine, field); err != nil {
				return nil, err
			}
		}

		result := engine.Submit()
		if result.Valid() {
			return r.serialize(form, engine.Snapshot())
		}

		for _, line := range render.FormatErrors(r.errorPrefix(), result.Errors.Messages()) {
			if err := r.info(ctx, line); err != nil {
				return nil, err
			}
		}
		retry, err := r.driver.Confirm(ctx, ConfirmConfig{Message: retryMessage, Default: true})
		if err != nil {
			return nil, err
		}
		if !retry {
			return nil, ErrCancelled
		}
	}
}

func (r *Renderer) promptField(ctx context.Context, engine *contactform.Engine, field model.Field) error {
	name, err := contactform.ParseField(field.Name)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	label := field.Label
	if label == "" {
		label = model.DefaultLabeler(field.Name)
	}
	help := field.Description
	if help == "" && !field.Required {
		help = "Optional."
	}

	var value string
	if field.Widget == model.WidgetTextArea {
		value, err = r.driver.TextArea(ctx, TextAreaConfig{
			Message: label,
			Default: engine.Value(name),
			Help:    help,
		})
	} else {
		value, err = r.driver.Input(ctx, InputConfig{
			Message: label,
			Default: engine.Value(name),
			Help:    help,
		})
	}
	if err != nil {
		return err
	}

	if err := engine.SetField(name, value); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	for _, line := range render.FormatErrors(r.errorPrefix(), engine.ValidationErrors().For(name).Messages()) {
		if err := r.info(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}

func (r *Renderer) serialize(form model.FormModel, snap contactform.Snapshot) ([]byte, error) {
	if snap.Submission == nil {
		return nil, errors.New("tui: no submission to serialize")
	}
	if r.outputFormat == OutputFormatJSON {
		out, err := json.MarshalIndent(snap.Submission, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("tui: encode submission: %w", err)
		}
		return append(out, '\n'), nil
	}

	var buf bytes.Buffer
	view := render.NewView(form, snap, render.RenderOptions{})
	writeDisplay(&buf, view)
	return buf.Bytes(), nil
}

// Render prints the form state held in snap as plain text, or the view model
// as JSON when the JSON output format is selected.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, snap contactform.Snapshot, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if options.ErrorPrefix == "" {
		options.ErrorPrefix = r.errorPrefix()
	}
	view := render.NewView(form, snap, options)

	if r.outputFormat == OutputFormatJSON {
		out, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("tui: encode view: %w", err)
		}
		return append(out, '\n'), nil
	}

	var buf bytes.Buffer
	buf.WriteString(view.Title + "\n")
	buf.WriteString(strings.Repeat("=", len(view.Title)) + "\n")
	for _, field := range view.Fields {
		fmt.Fprintf(&buf, "%s: %s\n", field.Label, field.Value)
	}
	for _, line := range view.Errors {
		buf.WriteString(line + "\n")
	}
	if view.Submitted {
		buf.WriteString("\n")
		writeDisplay(&buf, view)
	}
	return buf.Bytes(), nil
}

func writeDisplay(buf *bytes.Buffer, view render.View) {
	buf.WriteString("You Submitted:\n")
	for _, row := range view.Display {
		fmt.Fprintf(buf, "%s: %s\n", row.Label, row.Value)
	}
}

func titleOf(form model.FormModel) string {
	if form.Title != "" {
		return form.Title
	}
	return model.DefaultTitle
}
