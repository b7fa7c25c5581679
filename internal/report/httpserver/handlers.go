package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"finitefield.org/strategy-report/internal/platform/observability"
	"finitefield.org/strategy-report/internal/report/content"
	custommw "finitefield.org/strategy-report/internal/report/httpserver/middleware"
	"finitefield.org/strategy-report/internal/report/page"
)

const (
	htmlContentType = "text/html; charset=utf-8"
	metricNamespace = "finitefield.org/strategy-report/httpserver"
)

// staticPageHandler serves a document rendered once at startup.
type staticPageHandler struct {
	body     []byte
	etag     string
	language string
}

func newStaticPageHandler(ctx context.Context, report content.Report, opts page.Options) (*staticPageHandler, error) {
	body, err := page.RenderBytes(ctx, report, opts)
	if err != nil {
		return nil, fmt.Errorf("httpserver: render report: %w", err)
	}
	return &staticPageHandler{
		body:     body,
		etag:     custommw.WeakETag(body),
		language: page.Language(report).String(),
	}, nil
}

func (h *staticPageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	header := w.Header()
	header.Set("ETag", h.etag)
	header.Set("Content-Language", h.language)
	header.Set("Cache-Control", "public, max-age=300, must-revalidate")
	if custommw.MatchesETag(r.Header.Get("If-None-Match"), h.etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	header.Set("Content-Type", htmlContentType)
	header.Set("Content-Length", strconv.Itoa(len(h.body)))
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	_, _ = w.Write(h.body)
}

// devPageHandler reloads the content table on every request so edits show up
// without a restart. Rendered documents are cached by content digest.
type devPageHandler struct {
	path  string
	opts  page.Options
	cache *lru.Cache[string, []byte]

	renderLatency metric.Float64Histogram
	cacheHits     metric.Int64Counter
}

func newDevPageHandler(path string, opts page.Options, size int, meter metric.Meter) (*devPageHandler, error) {
	if size <= 0 {
		size = defaultDevCacheSize
	}
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("httpserver: dev cache: %w", err)
	}
	if meter == nil {
		meter = otel.GetMeterProvider().Meter(metricNamespace)
	}
	latency, err := meter.Float64Histogram(
		"report.render.latency",
		metric.WithUnit("ms"),
		metric.WithDescription("Latency in milliseconds for rendering the report document"),
	)
	if err != nil {
		return nil, fmt.Errorf("httpserver: register render latency metric: %w", err)
	}
	hits, err := meter.Int64Counter(
		"report.render.cache_hits",
		metric.WithDescription("Count of dev requests served from the render cache"),
	)
	if err != nil {
		return nil, fmt.Errorf("httpserver: register cache hit metric: %w", err)
	}
	return &devPageHandler{path: path, opts: opts, cache: cache, renderLatency: latency, cacheHits: hits}, nil
}

func (h *devPageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := observability.FromContext(r.Context())

	report, err := content.LoadFile(h.path)
	if err != nil {
		logger.Warn("content reload failed", zap.Error(err))
		http.Error(w, fmt.Sprintf("content load error: %v", err), http.StatusInternalServerError)
		return
	}

	body, hit := h.cache.Get(report.Digest())
	if hit {
		h.cacheHits.Add(r.Context(), 1)
	} else {
		start := time.Now()
		body, err = page.RenderBytes(r.Context(), report, h.opts)
		h.renderLatency.Record(r.Context(), float64(time.Since(start))/float64(time.Millisecond),
			metric.WithAttributes(attribute.Bool("ok", err == nil)))
		if err != nil {
			logger.Warn("report render failed", zap.Error(err))
			http.Error(w, fmt.Sprintf("render error: %v", err), http.StatusInternalServerError)
			return
		}
		h.cache.Add(report.Digest(), body)
	}
	logger.Debug("report served", zap.String("digest", report.Digest()), zap.Bool("cache_hit", hit))

	header := w.Header()
	header.Set("Content-Language", page.Language(report).String())
	header.Set("Content-Type", htmlContentType)
	header.Set("Content-Length", strconv.Itoa(len(body)))
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	_, _ = w.Write(body)
}

// cached reports whether a document for digest is held in the render cache.
func (h *devPageHandler) cached(digest string) bool {
	return h.cache.Contains(digest)
}
