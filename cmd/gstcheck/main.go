package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/gstcheck/internal/gstapi"
	"github.com/dmitrymomot/gstcheck/internal/lookup"
	"github.com/dmitrymomot/gstcheck/internal/metrics"
	"github.com/dmitrymomot/gstcheck/internal/web"
	"github.com/dmitrymomot/gstcheck/pkg/clientip"
	"github.com/dmitrymomot/gstcheck/pkg/config"
	"github.com/dmitrymomot/gstcheck/pkg/environment"
	"github.com/dmitrymomot/gstcheck/pkg/httpserver"
	"github.com/dmitrymomot/gstcheck/pkg/logger"
	"github.com/dmitrymomot/gstcheck/pkg/ratelimiter"
	"github.com/dmitrymomot/gstcheck/pkg/redis"
	"github.com/dmitrymomot/gstcheck/pkg/requestid"
)

type appConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"gstcheck"`
}

func main() {
	var app appConfig
	config.MustLoad(&app)

	log := logger.New(
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithContextExtractors(requestid.LogExtractor(), clientip.LogExtractor()),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), app, log); err != nil {
		log.Error("gstcheck stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, app appConfig, log *slog.Logger) error {
	var (
		httpCfg   httpserver.Config
		apiCfg    gstapi.Config
		lookupCfg lookup.Config
		limitCfg  ratelimiter.Config
	)
	if err := errors.Join(
		config.Load(&httpCfg),
		config.Load(&apiCfg),
		config.Load(&lookupCfg),
		config.Load(&limitCfg),
	); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	client, err := gstapi.New(apiCfg, gstapi.WithLogger(log), gstapi.WithMetrics(m))
	if err != nil {
		return err
	}

	lookupOpts := []lookup.Option{lookup.WithLogger(log), lookup.WithMetrics(m)}
	var probes []httpserver.Probe

	if lookupCfg.RedisEnabled {
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return err
		}
		rdb, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer rdb.Close()

		store := lookup.NewRedisStore(redis.NewStorage(rdb, redisCfg.KeyPrefix))
		lookupOpts = append(lookupOpts, lookup.WithStore(store))
		probes = append(probes, httpserver.Probe{Name: "redis", Check: redis.Healthcheck(rdb)})
		log.Info("redis lookup cache enabled")
	}

	svc, err := lookup.New(lookupCfg, client, lookupOpts...)
	if err != nil {
		return err
	}

	webOpts := []web.Option{
		web.WithLogger(log),
		web.WithEnvironment(environment.Parse(app.Env)),
		web.WithMetrics(reg),
		web.WithProbes(probes...),
	}
	if limitCfg.Enabled {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()
		bucket, err := ratelimiter.NewBucket(store, limitCfg)
		if err != nil {
			return err
		}
		webOpts = append(webOpts, web.WithRateLimit(bucket))
	}

	router := web.NewRouter(svc, webOpts...)

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(addr string, log *slog.Logger) {
			log.Info("gst return checker listening",
				slog.String("addr", addr),
				slog.String("api", apiCfg.BaseURL),
				slog.Duration("fetch_timeout", lookupCfg.FetchTimeout),
			)
		}),
		httpserver.WithStopHook(func(log *slog.Logger) {
			log.Info("gst return checker stopped")
		}),
	)
	return srv.Run(ctx, router)
}
