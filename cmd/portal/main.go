package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brightwell-health/portal/internal/config"
	announcementHandler "github.com/brightwell-health/portal/internal/handler/announcement"
	billingHandler "github.com/brightwell-health/portal/internal/handler/billing"
	clearanceHandler "github.com/brightwell-health/portal/internal/handler/clearance"
	credentialingHandler "github.com/brightwell-health/portal/internal/handler/credentialing"
	financialsHandler "github.com/brightwell-health/portal/internal/handler/financials"
	portalHandler "github.com/brightwell-health/portal/internal/handler/portal"
	recordsHandler "github.com/brightwell-health/portal/internal/handler/records"
	roomsHandler "github.com/brightwell-health/portal/internal/handler/rooms"
	sessionHandler "github.com/brightwell-health/portal/internal/handler/session"
	uiHandler "github.com/brightwell-health/portal/internal/handler/ui"
	"github.com/brightwell-health/portal/internal/middleware"
	"github.com/brightwell-health/portal/internal/presenter"
	"github.com/brightwell-health/portal/internal/router"
	"github.com/brightwell-health/portal/internal/service/announcement"
	"github.com/brightwell-health/portal/internal/service/billing"
	"github.com/brightwell-health/portal/internal/service/clearance"
	"github.com/brightwell-health/portal/internal/service/credentialing"
	"github.com/brightwell-health/portal/internal/service/financials"
	"github.com/brightwell-health/portal/internal/service/records"
	"github.com/brightwell-health/portal/internal/service/rooms"
	"github.com/brightwell-health/portal/internal/session"
	"github.com/brightwell-health/portal/internal/store"
	"github.com/brightwell-health/portal/pkg/logger"
	"github.com/brightwell-health/portal/pkg/messaging"
	"github.com/brightwell-health/portal/pkg/messaging/memory"
	redisbroker "github.com/brightwell-health/portal/pkg/messaging/redis"
	"github.com/brightwell-health/portal/pkg/metrics"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	appLog := logger.NewLogger(&logger.Config{
		Level:      level,
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
	})

	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics(cfg.Metrics.Namespace, "core", registry)

	// Broker: in-process by default, Redis when several instances share
	// toast broadcasts and session events.
	var broker messaging.Broker
	switch cfg.Broker.Type {
	case "redis":
		zl := zerolog.New(os.Stdout).With().Timestamp().Logger()
		broker, err = redisbroker.NewBroker(redisbroker.Config{
			URL:          cfg.Broker.Redis.URL,
			MaxRetries:   cfg.Broker.Redis.MaxRetries,
			RetryBackoff: cfg.Broker.Redis.RetryBackoff,
			PoolSize:     cfg.Broker.Redis.PoolSize,
			MinIdleConns: cfg.Broker.Redis.MinIdleConns,
		}, &zl)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis broker")
		}
	default:
		broker = memory.NewBroker()
	}
	defer broker.Close()

	st := store.New(store.DemoSeed(), appLog, m)

	// Idle session lifecycle.
	controller, err := session.NewController(session.ControllerConfig{
		IdleTimeout:   cfg.Session.IdleTimeout,
		WarningWindow: cfg.Session.WarningWindow,
	}, st, broker, appLog, m)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build idle session controller")
	}
	controller.Start()
	defer controller.Stop()

	// Overlay surfaces.
	toastPresenter, err := presenter.NewToastPresenter(st, broker, cfg.Toast.Duration, appLog, m)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build toast presenter")
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := toastPresenter.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to start toast presenter")
	}
	defer toastPresenter.Stop()

	modalPresenter := presenter.NewModalPresenter(st)

	// View services.
	billingSvc := billing.NewService(st, appLog, m)
	clearanceSvc := clearance.NewService(st)
	recordsSvc := records.NewService(st)
	financialsSvc := financials.NewService(st)
	credentialingSvc := credentialing.NewService(st)
	roomsSvc := rooms.NewService(st)
	announcementSvc := announcement.NewService(st, broker, appLog)

	r := router.New(router.Config{
		RateLimit:        rate.Limit(cfg.Rate.RPS),
		RateBurst:        cfg.Rate.Burst,
		CORS:             middleware.DefaultCORSConfig(),
		MetricsNamespace: cfg.Metrics.Namespace,
		ActivitySkipPaths: []string{
			"/api/v1/session",
			"/api/v1/session/stay",
			"/api/v1/ui",
		},
	}, controller, registry,
		portalHandler.NewHandler(st),
		sessionHandler.NewHandler(st, controller),
		uiHandler.NewHandler(st, toastPresenter, modalPresenter, m),
		billingHandler.NewHandler(billingSvc, st),
		clearanceHandler.NewHandler(clearanceSvc, st),
		recordsHandler.NewHandler(recordsSvc, st),
		financialsHandler.NewHandler(financialsSvc, st),
		credentialingHandler.NewHandler(credentialingSvc, st),
		roomsHandler.NewHandler(roomsSvc, st),
		announcementHandler.NewHandler(announcementSvc),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting portal server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down portal server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
