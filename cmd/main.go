package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart_hub/internal/handlers"
	"smart_hub/internal/logger"
	"smart_hub/internal/metrics"
	"smart_hub/internal/models"
	"smart_hub/internal/mqtt"
	"smart_hub/internal/repository"
	"smart_hub/internal/repository/db"
	"smart_hub/internal/schedule"
	"smart_hub/internal/server"
	"smart_hub/internal/service"
	"smart_hub/internal/sunset"

	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

// @title        Simple Smart Hub API
// @version      2.0.0
// @description  Sensor telemetry, light and fan decisions, and schedule settings for a single smart hub.
// @BasePath     /
func main() {
	cfg, cfgErr := loadConfig(viper.GetViper())

	// init logger
	log := logger.Get(cfg.LogLevel)
	if cfgErr != nil {
		log.Fatalw("error reading config", "err", cfgErr)
	}

	database, err := openDB(cfg.DBPath, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	m := metrics.New()
	calc := schedule.NewCalculator(sunset.NewClient(cfg.Sunset, log.Named("sunset"), m), cfg.Location)

	initial, err := initialSettings(context.Background(), calc, cfg)
	if err != nil {
		log.Fatalw("invalid initial settings", "err", err)
	}

	publisher := openPublisher(cfg.MQTT, log)
	defer func() { _ = publisher.Close() }()

	// wire dependencies
	repos := repository.NewRepository(database, initial, cfg.HistoryCapacity)
	services := service.NewService(service.Deps{
		Repos:      repos,
		Calculator: calc,
		Publisher:  publisher,
		Metrics:    m,
		Log:        log,
	})
	apiHandler := handlers.NewHandler(services, log.Named("http"), m, cfg.CORSOrigins)

	log.Infow("settings_initialized",
		"light_on_utc", initial.LightOnUTC.String(),
		"light_off_utc", initial.LightOffUTC.String(),
		"user_temp", initial.UserTempC)

	srv := &server.Server{}
	runHTTPServer(srv, cfg.Server, apiHandler, log)

	waitForShutdown(srv, log)
}

func openDB(path string, log *logger.Logger) (*sql.DB, error) {
	if path == "" {
		log.Infow("db.path not set in config; using in-memory default", "default", db.DefaultPath)
		path = db.DefaultPath
	}
	return db.InitDB(path)
}

// initialSettings resolves the configured startup schedule the same way a
// PUT /settings would.
func initialSettings(ctx context.Context, calc *schedule.Calculator, cfg config) (models.Settings, error) {
	sch, err := calc.Compute(ctx, cfg.InitialLight, cfg.InitialDuration)
	if err != nil {
		return models.Settings{}, fmt.Errorf("settings.user_light=%q settings.light_duration=%q: %w",
			cfg.InitialLight, cfg.InitialDuration, err)
	}
	return models.Settings{
		ID:                 models.SettingsID,
		UserTempC:          cfg.InitialTempC,
		UserLightInput:     cfg.InitialLight,
		LightDurationInput: cfg.InitialDuration,
		LightOnUTC:         sch.On,
		LightOffUTC:        sch.Off,
		UpdatedAt:          time.Now().UTC(),
	}, nil
}

// openPublisher never fails startup: without a reachable broker commands
// are only returned over HTTP.
func openPublisher(cfg mqtt.Config, log *logger.Logger) mqtt.Publisher {
	pub, err := mqtt.NewPublisher(cfg)
	if err != nil {
		log.Warnw("mqtt_unavailable_publishing_disabled", "broker", cfg.Broker, "err", err)
		return mqtt.NoopPublisher{}
	}
	if cfg.Broker != "" {
		log.Infow("mqtt_connected", "broker", cfg.Broker, "topic", cfg.Topic)
	}
	return pub
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, cfg server.Config, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http_server_starting", "port", cfg.Port)
		if err := srv.Run(cfg, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
