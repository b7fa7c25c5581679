package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"finitefield.org/strategy-report/internal/platform/config"
	"finitefield.org/strategy-report/internal/platform/observability"
	"finitefield.org/strategy-report/internal/report/content"
	"finitefield.org/strategy-report/internal/report/export"
	"finitefield.org/strategy-report/internal/report/httpserver"
	"finitefield.org/strategy-report/internal/report/page"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "report: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	addr := fs.String("addr", cfg.Server.Address, "listen address")
	contentFile := fs.String("content", cfg.Content.File, "report content YAML (embedded table when empty)")
	dev := fs.Bool("dev", cfg.Content.Dev, "reload the content file on every request")
	exportDir := fs.String("export", "", "write the rendered site to this directory and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	report, err := loadReport(*contentFile)
	if err != nil {
		return err
	}
	opts := page.Options{BaseURL: cfg.Page.BaseURL, Tailwind: cfg.Page.Tailwind}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *exportDir != "" {
		manifest, err := export.Export(ctx, *exportDir, report, opts)
		if err != nil {
			return err
		}
		logger.Info("report exported", zap.String("dir", *exportDir), zap.Int("files", len(manifest.Files)))
		return nil
	}

	srv, err := httpserver.New(httpserver.Config{
		Address:      *addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Report:       &report,
		ContentFile:  *contentFile,
		Dev:          *dev,
		Page:         opts,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("report server listening", zap.String("addr", *addr), zap.Bool("dev", *dev))

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("report server stopped")
	return nil
}

func loadReport(path string) (content.Report, error) {
	if path == "" {
		return content.Default(), nil
	}
	return content.LoadFile(path)
}
