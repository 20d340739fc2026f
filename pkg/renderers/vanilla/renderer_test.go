package vanilla_test

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contactform/pkg/contactform"
	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/render"
	"github.com/goliatone/go-contactform/pkg/renderers/vanilla"
	"github.com/goliatone/go-contactform/pkg/testsupport"
)

var errorRow = regexp.MustCompile(`<li data-testid="error">([^<]*)</li>`)

func renderEngine(t *testing.T, engine *contactform.Engine, opts render.RenderOptions) string {
	t.Helper()
	r, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := r.Render(context.Background(), model.ContactForm(), engine.Snapshot(), opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func errorRows(html string) []string {
	var out []string
	for _, match := range errorRow.FindAllStringSubmatch(html, -1) {
		out = append(out, match[1])
	}
	return out
}

func TestRender_HeaderAndLabelledInputs(t *testing.T) {
	html := renderEngine(t, contactform.New(), render.RenderOptions{})

	for _, want := range []string{
		`<h1 class="contact-form__title">Contact Form</h1>`,
		`<label for="firstName">First Name`,
		`<label for="lastName">Last Name`,
		`<label for="email">Email`,
		`<label for="message">Message</label>`,
		`<input id="email" name="email" type="email" value="">`,
		`minlength="5"`,
		`<textarea id="message" name="message"></textarea>`,
		`<button type="submit">Submit</button>`,
		`data-state="editing"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
	if len(errorRows(html)) != 0 {
		t.Fatalf("fresh form must not render errors")
	}
	if strings.Contains(html, "Display") {
		t.Fatalf("fresh form must not render a submission")
	}
}

func TestRender_LiveFirstNameError(t *testing.T) {
	engine := testsupport.FilledEngine(t, map[contactform.Field]string{contactform.FieldFirstName: "Fer"})

	html := renderEngine(t, engine, render.RenderOptions{})
	want := []string{"Error: firstName must have at least 5 characters."}
	if diff := cmp.Diff(want, errorRows(html)); diff != "" {
		t.Fatalf("error rows mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(html, `value="Fer" minlength="5" aria-invalid="true"`) {
		t.Fatalf("expected invalid firstName input:\n%s", html)
	}
}

func TestRender_AllErrorsOnEmptySubmit(t *testing.T) {
	engine := contactform.New()
	engine.Submit()

	html := renderEngine(t, engine, render.RenderOptions{})
	want := []string{
		"Error: firstName must have at least 5 characters.",
		"Error: lastName is a required field.",
		"Error: email must be a valid email address.",
	}
	if diff := cmp.Diff(want, errorRows(html)); diff != "" {
		t.Fatalf("error rows mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_SubmissionWithoutMessage(t *testing.T) {
	engine, _ := testsupport.SubmittedEngine(t, testsupport.ValidValues())

	html := renderEngine(t, engine, render.RenderOptions{})
	for _, want := range []string{
		`<p data-testid="firstnameDisplay">First Name: Fernando</p>`,
		`<p data-testid="lastnameDisplay">Last Name: Martinez</p>`,
		`<p data-testid="emailDisplay">Email: fernando817mm@gmail.com</p>`,
		`data-state="submitted"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
	if strings.Contains(html, "messageDisplay") {
		t.Fatalf("message must not be displayed when not submitted")
	}
	if len(errorRows(html)) != 0 {
		t.Fatalf("valid submit must not render errors")
	}
}

func TestRender_SubmissionWithMessageIsSanitized(t *testing.T) {
	values := testsupport.ValidValues()
	values[contactform.FieldMessage] = "<b>n/a</b>"
	engine, _ := testsupport.SubmittedEngine(t, values)

	html := renderEngine(t, engine, render.RenderOptions{})
	if !strings.Contains(html, `<p data-testid="messageDisplay">Message: n/a</p>`) {
		t.Fatalf("expected sanitized message row:\n%s", html)
	}
	if !strings.Contains(html, "&lt;b&gt;n/a&lt;/b&gt;</textarea>") {
		t.Fatalf("expected escaped textarea value:\n%s", html)
	}
}

func TestRender_OptionsAndHiddenFields(t *testing.T) {
	r, err := vanilla.New(vanilla.WithInlineStylesheet(true))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := r.Render(context.Background(), model.ContactForm(), contactform.New().Snapshot(), render.RenderOptions{
		Title:        "Say hello",
		Action:       "/contact",
		HiddenFields: map[string]string{"_csrf": "tok"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	for _, want := range []string{
		"<style>",
		`<h1 class="contact-form__title">Say hello</h1>`,
		`<form action="/contact" method="POST" novalidate>`,
		`<input type="hidden" name="_csrf" value="tok">`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
	if r.Name() != "vanilla" || !strings.HasPrefix(r.ContentType(), "text/html") {
		t.Fatalf("unexpected renderer metadata")
	}
}

func TestRender_CustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		"templates/form.tmpl": &fstest.MapFile{Data: []byte(`{{ view.title }}|{{ view.errors|length }}`)},
	}
	r, err := vanilla.New(vanilla.WithTemplatesFS(files))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	engine := contactform.New()
	engine.Submit()

	out, err := r.Render(context.Background(), model.ContactForm(), engine.Snapshot(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "Contact Form|3" {
		t.Fatalf("got %q", out)
	}
}

func TestRender_CancelledContext(t *testing.T) {
	r, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Render(ctx, model.ContactForm(), contactform.New().Snapshot(), render.RenderOptions{}); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestAssetsFS(t *testing.T) {
	if _, err := vanilla.AssetsFS().Open(vanilla.StylesheetName); err != nil {
		t.Fatalf("open stylesheet: %v", err)
	}
}
