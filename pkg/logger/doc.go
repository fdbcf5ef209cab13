// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers so log keys stay consistent across lrukit.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format, applies static attributes and wraps the result in
// LogHandlerDecorator, which runs registered ContextExtractor callbacks on
// every record (for example to attach the request id set by the requestid
// middleware).
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "lrudemo"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "cache ready",
//	    logger.CacheName("sessions"),
//	    slog.Any("stats", c.Stats()),
//	)
//
// # Environments
//
// WithEnvironment maps an environment name to defaults:
//
//   - development (or "dev", or anything unknown): text output, debug level
//   - staging ("stage"): JSON output, info level
//   - production ("prod"): JSON output, info level
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
