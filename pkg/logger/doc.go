// Package logger builds log/slog loggers with environment presets and
// request-scoped attributes.
//
// New returns a *slog.Logger whose handler is wrapped by a decorator that runs
// every registered ContextExtractor on each record, so values stored in the
// request context (request id, device flags) show up without passing loggers
// around:
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "swipekit"),
//		logger.WithContextExtractors(requestid.LoggerExtractor(), device.LoggerExtractor()),
//	)
//	log.InfoContext(r.Context(), "profile served", logger.ClientID(id))
//
// Development uses text output at debug level; staging and production use
// JSON at info level.
package logger
