package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contactform/pkg/contactform"
	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/render"
)

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }
func (n namedRenderer) Render(context.Context, model.FormModel, contactform.Snapshot, render.RenderOptions) ([]byte, error) {
	return []byte(n), nil
}

func TestRegistry(t *testing.T) {
	registry, err := render.NewRegistry(namedRenderer("vanilla"), namedRenderer("tui"))
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	if diff := cmp.Diff([]string{"tui", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if err := registry.Register(namedRenderer("tui")); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(namedRenderer("")); err == nil {
		t.Fatalf("expected empty name error")
	}
	if _, err := registry.Get("preact"); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
	got, err := registry.Get("vanilla")
	if err != nil || got.Name() != "vanilla" {
		t.Fatalf("get vanilla: %v", err)
	}
}
