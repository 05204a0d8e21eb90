package device

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/devicecaps/pkg/logger"
)

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	webpQualities []int
	jpegQualities []int
	log           *slog.Logger
}

// WithPreferredImageQualities installs the quality tables on every
// classifier created by the middleware.
func WithPreferredImageQualities(webp, jpeg []int) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.webpQualities = cloneInts(webp)
		c.jpegQualities = cloneInts(jpeg)
	}
}

// WithLogger enables a debug record per classified request. Nothing is
// resolved for the record unless the logger has debug enabled.
func WithLogger(log *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.log = log
	}
}

// Middleware creates a Properties for each request from its User-Agent and
// headers and stores it in the request context. Retrieve it with FromContext.
func Middleware(m Matcher, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := New(m)
			p.SetUserAgent(r.UserAgent())
			p.ParseRequestHeaders(r.Header)
			if cfg.webpQualities != nil || cfg.jpegQualities != nil {
				p.SetPreferredImageQualities(cfg.webpQualities, cfg.jpegQualities)
			}

			if cfg.log != nil && cfg.log.Enabled(r.Context(), slog.LevelDebug) {
				cfg.log.DebugContext(r.Context(), "device classified",
					logger.Component("device"),
					logger.UserAgent(p.UserAgent()),
					logger.Client(p.Client()),
					logger.DeviceType(p.DeviceType()),
					slog.Bool("bot", p.IsBot()),
				)
			}

			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), p)))
		})
	}
}
