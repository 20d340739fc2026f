package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-contactform/pkg/httpform"
	"github.com/goliatone/go-contactform/pkg/renderers/vanilla"
)

var (
	serveAddr     string
	shutdownGrace time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the form over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides server.addr)")
	serveCmd.Flags().DurationVar(&shutdownGrace, "grace", 5*time.Second, "Shutdown grace period")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	form, err := loadForm(ctx)
	if err != nil {
		return err
	}
	renderer, err := vanilla.New(vanilla.WithInlineStylesheet(cfg.Server.InlineStyles))
	if err != nil {
		return err
	}
	handler, err := httpform.New(
		httpform.WithForm(form),
		httpform.WithRenderer(renderer),
		httpform.WithRenderOptions(cfg.RenderOptions()),
		httpform.WithLogger(logger.Named("http")),
		httpform.WithStaticAssets(),
	)
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()
	logger.Info("contact form listening", zap.String("addr", addr))

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown", zap.Error(err))
		return err
	}
	logger.Info("server stopped")
	return nil
}
