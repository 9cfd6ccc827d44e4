package main

import (
	"context"
	"log/slog"
	"os"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/swipekit/internal/api"
	"github.com/dmitrymomot/swipekit/pkg/config"
	"github.com/dmitrymomot/swipekit/pkg/device"
	"github.com/dmitrymomot/swipekit/pkg/environment"
	"github.com/dmitrymomot/swipekit/pkg/httpserver"
	"github.com/dmitrymomot/swipekit/pkg/logger"
	"github.com/dmitrymomot/swipekit/pkg/redis"
	"github.com/dmitrymomot/swipekit/pkg/requestid"
	"github.com/dmitrymomot/swipekit/pkg/signalstore"
)

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	env := environment.Parse(cfg.Env)
	log := logger.New(
		logger.WithEnvironment(env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor(), device.LoggerExtractor()),
	)
	slog.SetDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("swipekit stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	thresholds, err := cfg.thresholds()
	if err != nil {
		return err
	}
	classifier := device.New(
		device.WithThresholds(thresholds),
		device.WithMobileMaxWidth(cfg.MobileMaxWidth),
	)
	log.Info("classifier configured",
		slog.Int("mobile_distance", thresholds.MobileDistance),
		slog.Int("desktop_distance", thresholds.DesktopDistance),
		slog.Float64("mobile_velocity", thresholds.MobileVelocity),
		slog.Float64("desktop_velocity", thresholds.DesktopVelocity),
		slog.Int("mobile_max_width", cfg.MobileMaxWidth),
	)

	var (
		store    signalstore.Store
		checks   []httpserver.Check
		srvOpts  = []httpserver.Option{httpserver.WithLogger(log)}
		rdClient *goredis.Client
	)
	if cfg.Redis.Enabled() {
		rdClient, err = redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		store = signalstore.NewRedisStore(rdClient, cfg.Redis.KeyPrefix, cfg.SignalsTTL)
		checks = append(checks, redis.Healthcheck(rdClient))
		srvOpts = append(srvOpts, httpserver.WithStopHook(func(context.Context) error {
			return rdClient.Close()
		}))
		log.Info("using redis signal store", logger.Component("signalstore"))
	} else {
		store = signalstore.NewMemoryStore(cfg.SignalsCapacity, cfg.SignalsTTL)
		log.Info("using in-memory signal store", logger.Component("signalstore"),
			slog.Int("capacity", cfg.SignalsCapacity))
	}

	h := api.New(classifier, store,
		api.WithLogger(log),
		api.WithCookie(cfg.CookieName, cfg.CookieTTL, cfg.CookieSecure),
		api.WithReadinessChecks(checks...),
	)

	return httpserver.New(cfg.HTTP, srvOpts...).Run(ctx, h.Router())
}
