package service

import (
	"context"

	"smart_hub/internal/logger"
	"smart_hub/internal/metrics"
	"smart_hub/internal/models"
	"smart_hub/internal/mqtt"
	"smart_hub/internal/repository"
	"smart_hub/internal/schedule"
)

// Settings reads and updates the hub configuration.
type Settings interface {
	Current() models.Settings
	Update(ctx context.Context, p SettingsParams) (models.Settings, error)
}

// Telemetry ingests device readings and serves the reading history.
type Telemetry interface {
	Ingest(ctx context.Context, p ReadingParams) models.ActuatorCommand
	Graph(size int) ([]models.SensorReading, error)
	DebugInfo() DebugInfo
}

// EventLog exposes the audit log with filtering.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.HubEvent, error)
}

// ScheduleCalculator resolves user schedule input into a UTC window.
type ScheduleCalculator interface {
	Compute(ctx context.Context, lightInput, durationInput string) (schedule.Schedule, error)
}

type Service struct {
	Settings
	Telemetry
	EventLog
}

// Deps carries everything the services are built from.
type Deps struct {
	Repos      *repository.Repository
	Calculator ScheduleCalculator
	Publisher  mqtt.Publisher
	Metrics    *metrics.Metrics
	Log        *logger.Logger
}

func NewService(d Deps) *Service {
	if d.Publisher == nil {
		d.Publisher = mqtt.NoopPublisher{}
	}
	engine := NewDecisionEngine(d.Repos.Events, d.Metrics, d.Log.Named("decision"))
	return &Service{
		Settings:  NewSettingsService(d.Repos.Settings, d.Repos.Events, d.Calculator, d.Metrics, d.Log.Named("settings")),
		Telemetry: NewTelemetryService(d.Repos.Settings, d.Repos.History, engine, d.Publisher, d.Metrics, d.Log.Named("telemetry")),
		EventLog:  NewEventLogService(d.Repos.Events),
	}
}
