package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-contactform/pkg/model"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return out.String()
}

func TestSchemaCommandPrintsBuiltInForm(t *testing.T) {
	var form model.FormModel
	if err := json.Unmarshal([]byte(execute(t, "schema")), &form); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if form.Title != model.DefaultTitle || len(form.Fields) != 4 {
		t.Fatalf("unexpected form %+v", form)
	}
}

func TestRenderCommandWritesSubmission(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "contactform.yaml")
	if err := os.WriteFile(cfgPath, []byte("title: Say hello\nlog:\n  level: error\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	outPath := filepath.Join(dir, "form.html")

	execute(t, "render", "--config", cfgPath,
		"--first", "Fernando", "--last", "Martinez", "--email", "fernando817mm@gmail.com",
		"--submit", "--output", outPath,
	)

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	html := string(data)
	for _, want := range []string{
		"Say hello",
		`<p data-testid="firstnameDisplay">First Name: Fernando</p>`,
		`<p data-testid="lastnameDisplay">Last Name: Martinez</p>`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
}
