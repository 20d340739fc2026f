package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contactform/pkg/contactform"
	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/render"
)

func TestNewView_EmptyForm(t *testing.T) {
	view := render.NewView(model.ContactForm(), contactform.New().Snapshot(), render.RenderOptions{})

	if view.Title != "Contact Form" || view.Action != "/" || view.Method != "POST" {
		t.Fatalf("unexpected chrome: %+v", view)
	}
	if view.State != "editing" || view.Submitted || len(view.Display) != 0 {
		t.Fatalf("fresh form must not display a submission: %+v", view)
	}
	if len(view.Errors) != 0 {
		t.Fatalf("fresh form must not show errors, got %v", view.Errors)
	}

	var labels, types []string
	for _, field := range view.Fields {
		labels = append(labels, field.Label)
		types = append(types, field.InputType)
	}
	if diff := cmp.Diff([]string{"First Name", "Last Name", "Email", "Message"}, labels); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"text", "text", "email", "textarea"}, types); diff != "" {
		t.Fatalf("input types mismatch (-want +got):\n%s", diff)
	}
	if view.Fields[0].MinLength != "5" {
		t.Fatalf("expected minLength hint on firstName, got %q", view.Fields[0].MinLength)
	}
}

func TestNewView_ErrorsArePrefixedAndOrdered(t *testing.T) {
	engine := contactform.New()
	engine.Submit()

	view := render.NewView(model.ContactForm(), engine.Snapshot(), render.RenderOptions{})
	want := []string{
		"Error: firstName must have at least 5 characters.",
		"Error: lastName is a required field.",
		"Error: email must be a valid email address.",
	}
	if diff := cmp.Diff(want, view.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if !view.Fields[2].Invalid || view.Fields[3].Invalid {
		t.Fatalf("unexpected invalid flags: %+v", view.Fields)
	}

	custom := render.NewView(model.ContactForm(), engine.Snapshot(), render.RenderOptions{ErrorPrefix: "!! "})
	if custom.Errors[0] != "!! firstName must have at least 5 characters." {
		t.Fatalf("custom prefix not applied: %q", custom.Errors[0])
	}
}

func TestNewView_DisplayRows(t *testing.T) {
	engine := contactform.New()
	_ = engine.SetField(contactform.FieldFirstName, "Fernando")
	_ = engine.SetField(contactform.FieldLastName, "Martinez")
	_ = engine.SetField(contactform.FieldEmail, "fernando817mm@gmail.com")
	engine.Submit()

	view := render.NewView(model.ContactForm(), engine.Snapshot(), render.RenderOptions{
		HiddenFields: map[string]string{"_csrf": "abc"},
	})
	want := []render.DisplayRow{
		{Name: "firstName", Label: "First Name", Value: "Fernando", HTML: "Fernando", TestID: "firstnameDisplay"},
		{Name: "lastName", Label: "Last Name", Value: "Martinez", HTML: "Martinez", TestID: "lastnameDisplay"},
		{Name: "email", Label: "Email", Value: "fernando817mm@gmail.com", HTML: "fernando817mm@gmail.com", TestID: "emailDisplay"},
	}
	if diff := cmp.Diff(want, view.Display); diff != "" {
		t.Fatalf("display mismatch (-want +got):\n%s", diff)
	}
	if len(view.Hidden) != 1 || view.Hidden[0].Name != "_csrf" {
		t.Fatalf("hidden fields not carried: %+v", view.Hidden)
	}

	_ = engine.SetField(contactform.FieldMessage, "n/a")
	engine.Submit()
	view = render.NewView(model.ContactForm(), engine.Snapshot(), render.RenderOptions{})
	last := view.Display[len(view.Display)-1]
	if last.TestID != "messageDisplay" || last.Value != "n/a" {
		t.Fatalf("expected message row, got %+v", last)
	}
}

func TestNewView_FallsBackToBuiltInForm(t *testing.T) {
	view := render.NewView(model.FormModel{}, contactform.New().Snapshot(), render.RenderOptions{Title: "Hello"})
	if view.Title != "Hello" || len(view.Fields) != 4 {
		t.Fatalf("unexpected fallback view: %+v", view)
	}
}
