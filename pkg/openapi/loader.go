package openapi

import (
	"context"
	"fmt"
	"io/fs"
	"os"
)

// Loader fetches OpenAPI documents from files, fs.FS entries or the embedded
// default.
type Loader struct {
	options LoaderOptions
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem resolves file sources when set; the operating system is used
	// otherwise.
	FileSystem fs.FS
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for file sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// NewLoader constructs a Loader.
func NewLoader(options ...LoaderOption) *Loader {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Loader{options: cfg}
}

// Load reads the document identified by src.
func (l *Loader) Load(ctx context.Context, src Source) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	if src == nil {
		return Document{}, fmt.Errorf("openapi loader: source is required")
	}

	var (
		raw []byte
		err error
	)
	switch typed := src.(type) {
	case embeddedSource:
		return EmbeddedDocument(), nil
	case fsSource:
		if typed.files == nil {
			return Document{}, fmt.Errorf("openapi loader: fs source %q has no filesystem", typed.name)
		}
		raw, err = fs.ReadFile(typed.files, typed.name)
	case fileSource:
		if l.options.FileSystem != nil {
			raw, err = fs.ReadFile(l.options.FileSystem, typed.path)
		} else {
			raw, err = os.ReadFile(typed.path)
		}
	default:
		return Document{}, fmt.Errorf("openapi loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return Document{}, fmt.Errorf("openapi loader: read %s: %w", src.Location(), err)
	}
	return NewDocument(src, raw)
}
