package gotemplate_test

import (
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-contactform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-contactform/pkg/testsupport"
)

type greeting struct {
	Name   string   `json:"name"`
	Errors []string `json:"errors"`
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()
	files := fstest.MapFS{
		"templates/hello.tmpl": &fstest.MapFile{
			Data: []byte(`{{ site }}: hello {{ name|trim }}{% for e in errors %} [{{ e }}]{% endfor %}`),
		},
	}
	engine, err := gotemplate.New(
		gotemplate.WithFS(files),
		gotemplate.WithExtension("tmpl"),
		gotemplate.WithGlobalData(map[string]any{"site": "contact"}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplateFromStruct(t *testing.T) {
	engine := newEngine(t)

	out, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("templates/hello", greeting{Name: "  Fernando ", Errors: []string{"a", "b"}}, w)
	})
	want := "contact: hello Fernando [a] [b]"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
	if written != want {
		t.Fatalf("writer got %q", written)
	}
}

func TestEngine_RenderDispatchesInlineContent(t *testing.T) {
	engine := newEngine(t)

	out, err := engine.Render("{{ name }} <{{ tag }}>", map[string]any{"name": "Ana", "tag": "b"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Ana <b>" {
		t.Fatalf("got %q", out)
	}

	escaped, err := engine.RenderString("{{ value }}", map[string]any{"value": "<script>"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if strings.Contains(escaped, "<script>") {
		t.Fatalf("expected autoescaping, got %q", escaped)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)

	err := engine.RegisterFilter("contactform_shout", func(in any, _ any) (any, error) {
		s, _ := in.(string)
		return strings.ToUpper(s), nil
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	out, err := engine.RenderString("{{ v|contactform_shout }}", map[string]any{"v": "hey"})
	if err != nil || out != "HEY" {
		t.Fatalf("filter output %q, err %v", out, err)
	}

	if err := engine.RegisterFilter("contactform_shout", func(in any, _ any) (any, error) { return in, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}
}

func TestEngine_Errors(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without template sources")
	}

	engine := newEngine(t)
	if _, err := engine.RenderTemplate("templates/missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestEngine_GlobalContextMergesNestedValues(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	out, err := engine.RenderString("{{ site }}/{{ settings.env }}", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "contact/staging" {
		t.Fatalf("got %q", out)
	}
}
