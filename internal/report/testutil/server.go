package testutil

import (
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"finitefield.org/strategy-report/internal/report/content"
	"finitefield.org/strategy-report/internal/report/httpserver"
	"finitefield.org/strategy-report/internal/report/page"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithReport serves report instead of the embedded table.
func WithReport(report content.Report) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Report = &report
	}
}

// WithDevContent switches the server to dev mode, reloading path per request.
func WithDevContent(path string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Dev = true
		cfg.ContentFile = path
	}
}

// WithPageOptions overrides document rendering options.
func WithPageOptions(opts page.Options) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Page = opts
	}
}

// WithLogger routes server logs to logger.
func WithLogger(logger *zap.Logger) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Logger = logger
	}
}

// NewServer constructs an httptest server running the report HTTP stack with sensible defaults.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Address: ":0",
		Page:    page.Options{BaseURL: "https://report.example.com/"},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	srv, err := httpserver.New(cfg)
	if err != nil {
		t.Fatalf("httpserver.New: %v", err)
	}
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
