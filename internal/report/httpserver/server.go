package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"finitefield.org/strategy-report/internal/platform/observability"
	"finitefield.org/strategy-report/internal/report/content"
	custommw "finitefield.org/strategy-report/internal/report/httpserver/middleware"
	"finitefield.org/strategy-report/internal/report/page"
	"finitefield.org/strategy-report/public"
)

const (
	staticPrefix          = "/static/"
	defaultRequestTimeout = 30 * time.Second
	defaultDevCacheSize   = 16
)

// Config holds runtime options for the report HTTP server.
type Config struct {
	Address        string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration

	// Report is served in production mode. Defaults to the embedded table.
	Report *content.Report
	// ContentFile is re-read on every request when Dev is set.
	ContentFile string
	Dev         bool
	// DevCacheSize bounds the number of rendered documents kept in dev mode.
	DevCacheSize int

	Page   page.Options
	Logger *zap.Logger
	// Meter records dev render metrics. Defaults to the global meter provider.
	Meter metric.Meter
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) (*http.Server, error) {
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  durationOr(cfg.ReadTimeout, 10*time.Second),
		WriteTimeout: durationOr(cfg.WriteTimeout, 30*time.Second),
		IdleTimeout:  durationOr(cfg.IdleTimeout, 60*time.Second),
	}, nil
}

// NewHandler builds the router serving the report, its assets and the health check.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	pageHandler, err := buildPageHandler(cfg, logger)
	if err != nil {
		return nil, err
	}

	staticContent, err := public.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("httpserver: embed static: %w", err)
	}
	assets, err := custommw.AssetsWithCache(staticContent, staticPrefix)
	if err != nil {
		return nil, fmt.Errorf("httpserver: hash static assets: %w", err)
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(observability.TraceMiddleware())
	router.Use(observability.InjectLoggerMiddleware(logger))
	router.Use(observability.RequestLoggerMiddleware())
	router.Use(observability.RecoveryMiddleware(logger))
	router.Use(chimw.Compress(5))
	router.Use(chimw.Timeout(durationOr(cfg.RequestTimeout, defaultRequestTimeout)))

	pages := chi.Router(router)
	if cfg.Dev {
		pages = router.With(custommw.NoStore())
	}
	pages.Method(http.MethodGet, "/", pageHandler)
	pages.Method(http.MethodHead, "/", pageHandler)
	router.Get("/healthz", healthHandler)
	router.Handle(staticPrefix+"*", assets)

	return router, nil
}

func buildPageHandler(cfg Config, logger *zap.Logger) (http.Handler, error) {
	if cfg.Dev {
		if cfg.ContentFile == "" {
			return nil, errors.New("httpserver: dev mode requires a content file")
		}
		logger.Info("serving report in dev mode", zap.String("content_file", cfg.ContentFile))
		return newDevPageHandler(cfg.ContentFile, cfg.Page, cfg.DevCacheSize, cfg.Meter)
	}

	report := content.Default()
	if cfg.Report != nil {
		report = *cfg.Report
	}
	h, err := newStaticPageHandler(context.Background(), report, cfg.Page)
	if err != nil {
		return nil, err
	}
	logger.Info("report rendered",
		zap.String("digest", report.Digest()),
		zap.Strings("sections", report.SectionIDs()),
		zap.Int("bytes", len(h.body)),
	)
	return h, nil
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
