package web

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/gstcheck/binder"
	"github.com/dmitrymomot/gstcheck/handler"
	"github.com/dmitrymomot/gstcheck/internal/lookup"
	"github.com/dmitrymomot/gstcheck/internal/metrics"
	"github.com/dmitrymomot/gstcheck/internal/web/views"
	"github.com/dmitrymomot/gstcheck/pkg/clientip"
	"github.com/dmitrymomot/gstcheck/pkg/environment"
	"github.com/dmitrymomot/gstcheck/pkg/gstin"
	"github.com/dmitrymomot/gstcheck/pkg/httpserver"
	"github.com/dmitrymomot/gstcheck/pkg/logger"
	"github.com/dmitrymomot/gstcheck/pkg/ratelimiter"
	"github.com/dmitrymomot/gstcheck/pkg/requestid"
)

// Looker runs a lookup. *lookup.Service satisfies it.
type Looker interface {
	Lookup(ctx context.Context, req lookup.Request) lookup.Outcome
}

type options struct {
	log      *slog.Logger
	env      environment.Environment
	gatherer prometheus.Gatherer
	probes   []httpserver.Probe
	limiter  *ratelimiter.Bucket
}

// Option configures the router.
type Option func(*options)

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func WithEnvironment(env environment.Environment) Option {
	return func(o *options) { o.env = env }
}

// WithMetrics serves g at /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(o *options) { o.gatherer = g }
}

// WithProbes adds readiness probes to /health/ready.
func WithProbes(probes ...httpserver.Probe) Option {
	return func(o *options) { o.probes = append(o.probes, probes...) }
}

// WithRateLimit limits lookups per client address. Pages that only render
// forms are not limited.
func WithRateLimit(b *ratelimiter.Bucket) Option {
	return func(o *options) { o.limiter = b }
}

// NewRouter mounts the checker pages, the JSON lookup API and the
// operational endpoints.
func NewRouter(svc Looker, opts ...Option) http.Handler {
	o := &options{log: logger.Discard(), env: environment.Development}
	for _, opt := range opts {
		opt(o)
	}

	h := &handlers{svc: svc, log: o.log.With(logger.Component("web"))}
	errHandler := handler.NewErrorHandler(o.log, handler.ErrorHandlerConfig{
		ErrorPage:  views.ErrorPage,
		ErrorToast: views.Toast,
	})
	jsonErrors := func(ctx handler.Context, err error) {
		if renderErr := handler.JSONError(err).Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			o.log.ErrorContext(ctx, "failed to render json error", logger.Error(renderErr))
		}
	}

	limit := func(next http.Handler) http.Handler { return next }
	if o.limiter != nil {
		limit = ratelimiter.Middleware(o.limiter, clientip.Key, ratelimiter.WithDenied(
			func(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result, err error) {
				herr := handler.ErrTooManyRequests.WithMessage("Too many lookups, please wait a moment")
				if err != nil {
					herr = handler.ErrServiceUnavailable.WithMessage("Lookups are temporarily unavailable")
				}
				ctx := handler.NewContext(w, r)
				if strings.HasPrefix(r.URL.Path, "/api/") {
					jsonErrors(ctx, herr)
					return
				}
				errHandler(ctx, herr)
			},
		))
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(),
		environment.Middleware(o.env),
		requestLogger(o.log),
		middleware.Recoverer,
	)

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(o.log, o.probes...))
	if o.gatherer != nil {
		r.Handle("/metrics", metrics.Handler(o.gatherer))
	}

	r.Route(strings.TrimSuffix(gstin.PathPrefix, "/"), func(r chi.Router) {
		r.Get("/", handler.Wrap(h.searchPage,
			handler.WithErrorHandler[handler.Context, struct{}](errHandler),
		))

		search := handler.Wrap(h.search,
			handler.WithBinders[handler.Context, searchRequest](binder.Query(), binder.Form()),
			handler.WithErrorHandler[handler.Context, searchRequest](errHandler),
		)
		r.Get("/search", search)
		r.Post("/", search)

		result := handler.Wrap(h.result,
			handler.WithBinders[handler.Context, resultRequest](binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, resultRequest](errHandler),
		)
		r.With(limit).Get("/{slug}/", result)
		r.With(limit).Get("/{slug}", result)
	})

	r.With(limit).Get("/api/lookup/{gstin}", handler.Wrap(h.lookupJSON,
		handler.WithBinders[handler.Context, apiRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, apiRequest](jsonErrors),
	))

	r.NotFound(handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrNotFound)
	}, handler.WithErrorHandler[handler.Context, struct{}](errHandler)))

	return r
}
