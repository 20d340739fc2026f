package openapi

import _ "embed"

const embeddedDocumentName = "contact.openapi.yaml"

//go:embed contact.openapi.yaml
var embeddedDocument []byte

// EmbeddedDocument returns the built-in contact form document.
func EmbeddedDocument() Document {
	return MustNewDocument(SourceEmbedded(), embeddedDocument)
}
