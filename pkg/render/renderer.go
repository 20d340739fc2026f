package render

import (
	"context"

	"github.com/goliatone/go-contactform/pkg/contactform"
	"github.com/goliatone/go-contactform/pkg/model"
)

// Renderer draws the contact form and its current state (HTML, text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.FormModel, snap contactform.Snapshot, options RenderOptions) ([]byte, error)
}
