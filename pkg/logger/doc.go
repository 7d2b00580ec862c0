// Package logger builds *slog.Logger values with functional options, shared
// attribute constructors and automatic injection of request-scoped values.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs every registered ContextExtractor
// on each record. Request ids and the deployment environment reach log lines
// that way without being threaded through call sites.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "gstcheck"),
//		logger.WithContextExtractors(
//			requestid.LogExtractor(),
//			environment.LogExtractor(),
//		),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "lookup finished",
//		logger.GSTIN(id),
//		logger.Outcome("success"),
//		logger.Duration(time.Since(start)),
//	)
//
// Attribute helpers (Error, Errors, RequestID, GSTIN) return an empty Attr
// for nil or empty input, so they can be passed unconditionally.
package logger
