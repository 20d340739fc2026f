// Command contactform renders, prompts for and serves the contact form.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-contactform/pkg/config"
	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/openapi"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "contactform",
	Short: "Contact form renderer, prompt and server",
	Long: `contactform drives a four-field contact form (first name, last name,
email, optional message) with live validation.

Render it to HTML, fill it in from the terminal, or serve it over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = newLogger(cfg.Log.Level, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debug("configuration loaded",
			zap.String("path", configPath),
			zap.String("renderer", cfg.Renderer),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

// loadForm returns the built-in form, or the one described by the configured
// OpenAPI document, with the configured title applied.
func loadForm(ctx context.Context) (model.FormModel, error) {
	if cfg.Schema == "" {
		form := model.ContactForm()
		if err := model.Apply(&form, model.WithTitle(cfg.Title)); err != nil {
			return model.FormModel{}, err
		}
		return form, nil
	}
	form, err := openapi.LoadForm(ctx, openapi.SourceFromFile(cfg.Schema),
		openapi.WithDecorators(model.WithTitle(cfg.Title)),
	)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("load schema %s: %w", cfg.Schema, err)
	}
	return form, nil
}

func writeOutput(cmd *cobra.Command, path string, out []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("output written", zap.String("path", path), zap.Int("bytes", len(out)))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(schemaCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
