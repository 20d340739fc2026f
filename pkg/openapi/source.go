package openapi

import (
	"io/fs"
	"path/filepath"
)

// Source identifies where an OpenAPI document originated so the loader can
// operate on files, fs.FS entries or the embedded default without leaking
// implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile     SourceKind = "file"
	SourceKindFS       SourceKind = "fs"
	SourceKindEmbedded SourceKind = "embedded"
)

// fileSource identifies on-disk OpenAPI documents.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a path within an fs.FS.
type fsSource struct {
	files fs.FS
	name  string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a resource inside files.
func SourceFromFS(files fs.FS, name string) Source {
	return fsSource{files: files, name: name}
}

type embeddedSource struct{}

func (embeddedSource) Location() string {
	return embeddedDocumentName
}

func (embeddedSource) Kind() SourceKind {
	return SourceKindEmbedded
}

// SourceEmbedded identifies the contact form document compiled into the binary.
func SourceEmbedded() Source {
	return embeddedSource{}
}
