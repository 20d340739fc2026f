package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-contactform/pkg/contactform"
	"github.com/goliatone/go-contactform/pkg/render"
	"github.com/goliatone/go-contactform/pkg/renderers/tui"
	"github.com/goliatone/go-contactform/pkg/renderers/vanilla"
)

var renderFlags struct {
	first   string
	last    string
	email   string
	message string
	submit  bool
	output  string
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the form for the given field values",
	Long: `Fill the form with the given values and render the resulting state.

Each flag is applied as if typed into the form, so live errors for the
fields that were set show up. With --submit the form is submitted and either
all errors or the submitted values are rendered.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderFlags.first, "first", "", "First name")
	renderCmd.Flags().StringVar(&renderFlags.last, "last", "", "Last name")
	renderCmd.Flags().StringVar(&renderFlags.email, "email", "", "Email address")
	renderCmd.Flags().StringVar(&renderFlags.message, "message", "", "Optional message")
	renderCmd.Flags().BoolVar(&renderFlags.submit, "submit", false, "Submit the form after filling it")
	renderCmd.Flags().StringVarP(&renderFlags.output, "output", "o", "", "Output file (stdout if empty)")
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	form, err := loadForm(ctx)
	if err != nil {
		return err
	}

	values := make(map[string]string)
	for flag, field := range map[string]contactform.Field{
		"first":   contactform.FieldFirstName,
		"last":    contactform.FieldLastName,
		"email":   contactform.FieldEmail,
		"message": contactform.FieldMessage,
	} {
		if cmd.Flags().Changed(flag) {
			value, _ := cmd.Flags().GetString(flag)
			values[string(field)] = value
		}
	}

	engine := contactform.New()
	if err := engine.SetValues(values); err != nil {
		return err
	}
	if renderFlags.submit {
		result := engine.Submit()
		logger.Debug("form submitted", zap.Bool("valid", result.Valid()), zap.Strings("errors", result.Errors.Messages()))
	}

	renderer, err := newRenderer()
	if err != nil {
		return err
	}
	out, err := renderer.Render(ctx, form, engine.Snapshot(), cfg.RenderOptions())
	if err != nil {
		return err
	}
	return writeOutput(cmd, renderFlags.output, out)
}

// newRenderer builds every renderer and picks the configured one by name.
func newRenderer() (render.Renderer, error) {
	html, err := vanilla.New(vanilla.WithInlineStylesheet(cfg.Server.InlineStyles))
	if err != nil {
		return nil, err
	}
	text, err := tui.New(
		tui.WithOutputFormat(tui.OutputFormat(cfg.Output)),
		tui.WithTheme(tui.Theme{ErrorPrefix: cfg.ErrorPrefix}),
	)
	if err != nil {
		return nil, err
	}
	registry, err := render.NewRegistry(html, text)
	if err != nil {
		return nil, err
	}
	logger.Debug("renderers registered", zap.Strings("names", registry.List()))
	return registry.Get(cfg.Renderer)
}
