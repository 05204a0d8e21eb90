// Package logger builds the service's *slog.Logger and the attribute
// helpers shared by its packages.
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "devicecaps"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.DebugContext(ctx, "device classified",
//	    logger.UserAgent(r.UserAgent()),
//	    logger.DeviceType(props.DeviceType()),
//	)
//
// Error and RequestID return an empty attribute for zero input, which slog
// drops, so callers need no nil checks.
package logger
