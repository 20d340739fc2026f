// Package config loads the contact form settings shared by the CLI and the
// HTTP handler from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/render"
)

// Renderer names accepted in the configuration.
const (
	RendererVanilla = "vanilla"
	RendererTUI     = "tui"
)

// Config holds every tunable the binaries read.
type Config struct {
	Title       string       `yaml:"title" json:"title"`
	ErrorPrefix string       `yaml:"errorPrefix" json:"errorPrefix"`
	Renderer    string       `yaml:"renderer" json:"renderer"`
	Output      string       `yaml:"output" json:"output"`
	Schema      string       `yaml:"schema" json:"schema"`
	Server      ServerConfig `yaml:"server" json:"server"`
	Log         LogConfig    `yaml:"log" json:"log"`

	// HiddenFields are emitted as hidden inputs in the HTML form.
	HiddenFields map[string]string `yaml:"hiddenFields" json:"hiddenFields,omitempty"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr         string `yaml:"addr" json:"addr"`
	InlineStyles bool   `yaml:"inlineStyles" json:"inlineStyles"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level" json:"level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Title:       model.DefaultTitle,
		ErrorPrefix: render.DefaultErrorPrefix,
		Renderer:    RendererVanilla,
		Output:      "pretty",
		Server: ServerConfig{
			Addr:         ":8080",
			InlineStyles: true,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path and overlays it on Default. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result. Unknown keys are
// rejected so typos surface early.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	var errs []error
	switch c.Renderer {
	case RendererVanilla, RendererTUI:
	default:
		errs = append(errs, fmt.Errorf("renderer %q is not one of vanilla, tui", c.Renderer))
	}
	switch c.Output {
	case "pretty", "json":
	default:
		errs = append(errs, fmt.Errorf("output %q is not one of pretty, json", c.Output))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// RenderOptions projects the display settings onto render options.
func (c Config) RenderOptions() render.RenderOptions {
	return render.RenderOptions{
		Title:        c.Title,
		ErrorPrefix:  c.ErrorPrefix,
		HiddenFields: render.MergeHiddenFields(c.HiddenFields),
	}
}
