// Package httpserver runs the classifier's HTTP surface with graceful
// shutdown on context cancellation or SIGINT/SIGTERM.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//	srv := httpserver.New(cfg, log)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// HealthCheckHandler provides liveness and readiness probes.
package httpserver
