// Package httpform serves the contact form over HTTP. Each request builds a
// fresh engine from the posted values, so no form state is shared between
// requests.
package httpform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/goliatone/go-contactform/pkg/contactform"
	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/render"
	"github.com/goliatone/go-contactform/pkg/renderers/vanilla"
)

const maxFormBytes = 64 << 10

// Option configures a Handler.
type Option func(*Handler)

// WithRenderer overrides the renderer used for GET and POST responses.
func WithRenderer(renderer render.Renderer) Option {
	return func(h *Handler) {
		if renderer != nil {
			h.renderer = renderer
		}
	}
}

// WithForm overrides the form description, for example one loaded from an
// OpenAPI document. New rejects forms that disagree with the engine rules.
func WithForm(form model.FormModel) Option {
	return func(h *Handler) {
		if len(form.Fields) > 0 {
			h.form = form
		}
	}
}

// WithRenderOptions sets the title, error prefix and hidden fields used when
// rendering.
func WithRenderOptions(options render.RenderOptions) Option {
	return func(h *Handler) {
		h.options = options
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithStaticAssets mounts the vanilla stylesheet under /assets/.
func WithStaticAssets() Option {
	return func(h *Handler) {
		h.assets = true
	}
}

// Handler serves the contact form.
type Handler struct {
	form     model.FormModel
	renderer render.Renderer
	options  render.RenderOptions
	logger   *zap.Logger
	assets   bool
	mux      *http.ServeMux
	validate *validator.Validate
}

// New builds a Handler. Without WithRenderer the vanilla HTML renderer is used.
func New(options ...Option) (*Handler, error) {
	h := &Handler{
		form:     model.ContactForm(),
		logger:   zap.NewNop(),
		validate: contactform.NewValidator(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(h)
		}
	}
	if err := model.CheckContactForm(h.form); err != nil {
		return nil, fmt.Errorf("httpform: %w", err)
	}
	if h.renderer == nil {
		renderer, err := vanilla.New()
		if err != nil {
			return nil, fmt.Errorf("httpform: default renderer: %w", err)
		}
		h.renderer = renderer
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.showForm)
	mux.HandleFunc("POST /{$}", h.submitForm)
	mux.HandleFunc("POST /validate", h.validateField)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if h.assets {
		mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServerFS(vanilla.AssetsFS())))
	}
	h.mux = mux
	return h, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) showForm(w http.ResponseWriter, r *http.Request) {
	h.write(r.Context(), w, http.StatusOK, h.newEngine().Snapshot())
}

func (h *Handler) submitForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	posted := make(contactform.FieldSet, len(contactform.Fields()))
	for _, field := range contactform.Fields() {
		posted[field] = r.PostForm.Get(string(field))
	}

	engine := h.newEngine(contactform.WithValues(posted))
	result := engine.Submit()
	status := http.StatusOK
	if result.Valid() {
		h.logger.Info("contact form submitted",
			zap.String("submission", result.Submission.Describe()),
			zap.Bool("message", result.Submission.HasMessage),
		)
	} else {
		status = http.StatusUnprocessableEntity
		h.logger.Debug("contact form rejected", zap.Strings("errors", result.Errors.Messages()))
	}
	h.write(r.Context(), w, status, engine.Snapshot())
}

type validateResponse struct {
	Field  string   `json:"field"`
	Errors []string `json:"errors"`
}

// validateField runs the live validation for a single field, as the engine
// does on every keystroke.
func (h *Handler) validateField(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}
	field, err := contactform.ParseField(r.PostForm.Get("field"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	engine := h.newEngine()
	if err := engine.SetField(field, r.PostForm.Get("value")); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	prefix := h.options.ErrorPrefix
	if prefix == "" {
		prefix = render.DefaultErrorPrefix
	}
	resp := validateResponse{
		Field:  string(field),
		Errors: render.FormatErrors(prefix, engine.ValidationErrors().For(field).Messages()),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Warn("write validation response", zap.Error(err))
	}
}

// newEngine builds a per-request engine on the shared validator.
func (h *Handler) newEngine(options ...contactform.Option) *contactform.Engine {
	return contactform.New(append([]contactform.Option{contactform.WithValidator(h.validate)}, options...)...)
}

func (h *Handler) write(ctx context.Context, w http.ResponseWriter, status int, snap contactform.Snapshot) {
	out, err := h.renderer.Render(ctx, h.form, snap, h.options)
	if err != nil {
		h.logger.Error("render contact form", zap.String("renderer", h.renderer.Name()), zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", h.renderer.ContentType())
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}
