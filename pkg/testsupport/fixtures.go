package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/goliatone/go-contactform/pkg/contactform"
	pkgopenapi "github.com/goliatone/go-contactform/pkg/openapi"
)

// ValidValues returns the values of a submission that passes every rule,
// without a message.
func ValidValues() map[contactform.Field]string {
	return map[contactform.Field]string{
		contactform.FieldFirstName: "Fernando",
		contactform.FieldLastName:  "Martinez",
		contactform.FieldEmail:     "fernando817mm@gmail.com",
	}
}

// Fill types values into engine in field order, failing the test on unknown
// fields.
func Fill(t *testing.T, engine *contactform.Engine, values map[contactform.Field]string) {
	t.Helper()

	for _, field := range contactform.Fields() {
		value, ok := values[field]
		if !ok {
			continue
		}
		if err := engine.SetField(field, value); err != nil {
			t.Fatalf("set %s: %v", field, err)
		}
	}
}

// FilledEngine returns a new engine with values typed in.
func FilledEngine(t *testing.T, values map[contactform.Field]string) *contactform.Engine {
	t.Helper()

	engine := contactform.New()
	Fill(t, engine, values)
	return engine
}

// SubmittedEngine fills a new engine and submits it once.
func SubmittedEngine(t *testing.T, values map[contactform.Field]string) (*contactform.Engine, contactform.Result) {
	t.Helper()

	engine := FilledEngine(t, values)
	return engine, engine.Submit()
}

// LoadDocument reads an OpenAPI fixture from disk.
func LoadDocument(t *testing.T, path string) pkgopenapi.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T.
func LoadDocumentFromPath(path string) (pkgopenapi.Document, error) {
	if path == "" {
		return pkgopenapi.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(path), data)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
