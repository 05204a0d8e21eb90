// Command devicecaps classifies HTTP clients by their User-Agent and Accept
// headers.
//
//	devicecaps -ua "Mozilla/5.0 ..." -accept "image/webp,*/*" [-mobile]
//	devicecaps -serve :8080
//
// The first form prints a JSON capability report. The second serves
// GET /capabilities, which reports on the calling client.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/devicecaps/pkg/config"
	"github.com/dmitrymomot/devicecaps/pkg/device"
	"github.com/dmitrymomot/devicecaps/pkg/httpserver"
	"github.com/dmitrymomot/devicecaps/pkg/logger"
	"github.com/dmitrymomot/devicecaps/pkg/requestid"
	"github.com/dmitrymomot/devicecaps/pkg/useragent"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
}

type options struct {
	ua     string
	accept string
	mobile bool
	serve  string
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "devicecaps:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("devicecaps", flag.ContinueOnError)
	var opts options
	fs.StringVar(&opts.ua, "ua", "", "User-Agent to classify")
	fs.StringVar(&opts.accept, "accept", "", "Accept header sent with the User-Agent")
	fs.BoolVar(&opts.mobile, "mobile", false, "enable mobile script rewriting (overrides DEVICE_ENABLE_MOBILE)")
	fs.StringVar(&opts.serve, "serve", "", "serve /capabilities on this address instead of classifying once")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var app appConfig
	if err := config.Load(&app); err != nil {
		return err
	}
	logOpts := []logger.Option{
		logger.WithEnvironment(app.Env, "devicecaps"),
		logger.WithOutput(os.Stderr),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if app.LogLevel != "" {
		logOpts = append(logOpts, logger.WithLevel(parseLevel(app.LogLevel)))
	}
	log := logger.New(logOpts...)

	var uaCfg useragent.Config
	if err := config.Load(&uaCfg); err != nil {
		return err
	}
	matcher, err := useragent.NewFromConfig(uaCfg)
	if err != nil {
		return err
	}

	devCfg, err := device.LoadConfig()
	if err != nil {
		return err
	}
	enableMobile := devCfg.EnableMobile || opts.mobile

	if opts.serve == "" {
		return classify(stdout, matcher, devCfg, opts.ua, opts.accept, enableMobile)
	}

	var httpCfg httpserver.Config
	if err := config.Load(&httpCfg); err != nil {
		return err
	}
	httpCfg.Addr = opts.serve

	router := newRouter(matcher, devCfg, enableMobile, log)
	err = httpserver.New(httpCfg, log).Run(ctx, router)
	logCacheStats(context.WithoutCancel(ctx), log, matcher)
	return err
}

// logCacheStats reports how well the profile cache served the run.
func logCacheStats(ctx context.Context, log *slog.Logger, c *useragent.CachingMatcher) {
	hits, misses := c.Stats()
	log.InfoContext(ctx, "profile cache",
		logger.Component("useragent"),
		slog.Uint64("hits", hits),
		slog.Uint64("misses", misses),
		slog.Int("entries", c.Len()),
	)
}

func classify(w io.Writer, m device.Matcher, cfg device.Config, ua, accept string, enableMobile bool) error {
	p := device.New(m)
	p.SetUserAgent(ua)
	p.ParseRequestHeaders(http.Header{"Accept": {accept}})
	if len(cfg.WebpQualities) > 0 {
		p.SetPreferredImageQualities(cfg.WebpQualities, cfg.JpegQualities)
	}
	return writeJSON(w, device.Snapshot(p, enableMobile))
}

func newRouter(m device.Matcher, cfg device.Config, enableMobile bool, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(device.Middleware(m, append(cfg.MiddlewareOptions(), device.WithLogger(log))...))

	r.Get("/health", httpserver.HealthCheckHandler(log))
	r.Get("/capabilities", func(w http.ResponseWriter, r *http.Request) {
		p := device.FromContext(r.Context())
		if p == nil {
			http.Error(w, "classifier unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Add("Vary", "User-Agent, Accept")
		if err := writeJSON(w, device.Snapshot(p, enableMobile)); err != nil {
			log.ErrorContext(r.Context(), "write capabilities", logger.Error(err))
		}
	})
	return r
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Join(errors.New("encode capabilities"), err)
	}
	return nil
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
