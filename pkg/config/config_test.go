package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contactform/pkg/config"
)

func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
title: Get in touch
renderer: tui
output: json
server:
  addr: 127.0.0.1:9000
log:
  level: debug
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := config.Default()
	want.Title = "Get in touch"
	want.Renderer = config.RendererTUI
	want.Output = "json"
	want.Server.Addr = "127.0.0.1:9000"
	want.Log.Level = "debug"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	opts := cfg.RenderOptions()
	if opts.Title != "Get in touch" || opts.ErrorPrefix != "Error: " {
		t.Fatalf("unexpected render options %+v", opts)
	}
}

func TestRenderOptions_HiddenFields(t *testing.T) {
	cfg, err := config.Parse([]byte("hiddenFields:\n  \" source \": landing\n  \"\": dropped\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := map[string]string{"source": "landing"}
	if diff := cmp.Diff(want, cfg.RenderOptions().HiddenFields); diff != "" {
		t.Fatalf("hidden fields mismatch (-want +got):\n%s", diff)
	}
	if config.Default().RenderOptions().HiddenFields != nil {
		t.Fatalf("default config must not emit hidden fields")
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":    "colour: blue\n",
		"bad renderer":   "renderer: preact\n",
		"bad output":     "output: xml\n",
		"bad level":      "log:\n  level: loud\n",
		"empty addr":     "server:\n  addr: \"\"\n",
		"malformed yaml": "title: [\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := config.Parse([]byte(input)); err == nil {
				t.Fatalf("expected error for %q", input)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}

	path := filepath.Join(t.TempDir(), "contactform.yaml")
	if err := os.WriteFile(path, []byte("errorPrefix: \"! \"\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err = config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ErrorPrefix != "! " {
		t.Fatalf("errorPrefix = %q", cfg.ErrorPrefix)
	}

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "missing.yaml") {
		t.Fatalf("expected missing file error, got %v", err)
	}
}
