// Package httpserver runs an http.Handler with sane timeouts, signal-driven
// graceful shutdown and health probe handlers.
//
// Run binds the listener first, so a bad address fails fast with ErrStart,
// then serves until the context is cancelled, SIGINT or SIGTERM arrives, or
// Shutdown is called. Start hooks receive the bound address, which makes
// ":0" usable in tests.
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithStartHook(func(addr string, l *slog.Logger) {
//			l.Info("listening", slog.String("addr", addr))
//		}),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// LivenessHandler and ReadinessHandler back /health/live and /health/ready;
// readiness runs each Probe with the request context and answers 503 on the
// first failure.
package httpserver
