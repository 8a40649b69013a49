package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"ventureforge/internal/adapter/repo"
	"ventureforge/internal/events"
	"ventureforge/internal/gateway/stripegw"
	"ventureforge/internal/http/handlers"
	"ventureforge/internal/http/httpapi"
	"ventureforge/internal/infra"
	"ventureforge/internal/infra/geoip"
	"ventureforge/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		bootLogger := infra.NewLogger("development")
		bootLogger.Fatal().Err(err).Msg("load config")
	}

	logger := infra.NewLogger(cfg.AppEnv)

	if err := infra.RunMigrations(cfg.MigrationsDir, cfg.DatabaseURL); err != nil {
		logger.Fatal().Err(err).Msg("run migrations")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect database")
	}
	defer pool.Close()

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kp := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaEventsTopic, logger)
		defer kp.Close()
		publisher = kp
	}

	var geoResolver geoip.CountryResolver
	if cfg.GeoIPDBPath != "" {
		resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
		if err != nil {
			logger.Warn().Err(err).Msg("geoip database unavailable, payer country disabled")
		} else {
			defer resolver.Close()
			geoResolver = resolver
		}
	}

	users := repo.NewUserRepository(pool)
	ideas := repo.NewIdeaRepository(pool)
	payments := repo.NewPaymentRepository(pool)
	portfolio := repo.NewPortfolioRepository(pool)

	gateway := stripegw.New(cfg.StripeSecretKey)

	app := &handlers.App{
		Ideas:               service.NewIdeaService(ideas, publisher, logger),
		Payments:            service.NewPaymentService(ideas, payments, gateway, publisher, logger),
		Users:               users,
		Portfolio:           portfolio,
		Geo:                 geoResolver,
		Logger:              logger,
		JWTSecret:           cfg.JWTSecret,
		StripeWebhookSecret: cfg.StripeWebhookSecret,
	}

	srv := infra.NewHTTPServer(cfg, httpapi.NewRouter(app, cfg))

	go func() {
		logger.Info().Str("port", cfg.Port).Str("env", cfg.AppEnv).Msg("server started")
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
