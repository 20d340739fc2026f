package testsupport_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-contactform/pkg/contactform"
	"github.com/goliatone/go-contactform/pkg/openapi"
	"github.com/goliatone/go-contactform/pkg/testsupport"
)

func TestSubmittedEngine_ValidValues(t *testing.T) {
	engine, result := testsupport.SubmittedEngine(t, testsupport.ValidValues())
	if !result.Valid() {
		t.Fatalf("fixture values must be valid: %v", result.Errors)
	}
	if engine.State() != contactform.StateSubmitted {
		t.Fatalf("state = %s", engine.State())
	}
}

func TestLoadDocumentFromPath(t *testing.T) {
	if _, err := testsupport.LoadDocumentFromPath(""); err == nil {
		t.Fatalf("expected error for empty path")
	}

	path := filepath.Join(t.TempDir(), "contact.yaml")
	if err := os.WriteFile(path, openapi.EmbeddedDocument().Raw(), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	doc := testsupport.LoadDocument(t, path)
	if doc.Location() != path {
		t.Fatalf("location = %q", doc.Location())
	}
}
