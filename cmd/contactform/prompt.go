package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-contactform/pkg/contactform"
	"github.com/goliatone/go-contactform/pkg/renderers/tui"
)

var promptOutput string

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Fill in the form interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		form, err := loadForm(ctx)
		if err != nil {
			return err
		}
		renderer, err := tui.New(
			tui.WithOutputFormat(tui.OutputFormat(cfg.Output)),
			tui.WithTheme(tui.Theme{ErrorPrefix: cfg.ErrorPrefix}),
		)
		if err != nil {
			return err
		}

		engine := contactform.New()
		unsubscribe := engine.Subscribe(func(snap contactform.Snapshot) {
			logger.Debug("form changed", zap.Stringer("state", snap.State), zap.Int("errors", len(snap.Errors)))
		})
		defer unsubscribe()

		out, err := renderer.Run(ctx, engine, form)
		if errors.Is(err, tui.ErrCancelled) || errors.Is(err, tui.ErrAborted) {
			logger.Info("prompt cancelled")
			return nil
		}
		if err != nil {
			return err
		}
		return writeOutput(cmd, promptOutput, out)
	},
}

func init() {
	promptCmd.Flags().StringVarP(&promptOutput, "output", "o", "", "Output file (stdout if empty)")
}
