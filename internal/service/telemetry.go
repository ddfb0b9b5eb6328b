package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"smart_hub/internal/logger"
	"smart_hub/internal/metrics"
	"smart_hub/internal/models"
	"smart_hub/internal/mqtt"
	"smart_hub/internal/repository"
)

const (
	// DefaultGraphSize is used when /graph has no size parameter.
	DefaultGraphSize = 10
	// MaxGraphSize caps /graph even when the history holds more readings.
	MaxGraphSize = 100
)

var ErrInvalidGraphSize = errors.New("invalid graph size")

type TelemetryService struct {
	settings  repository.SettingsStore
	history   repository.HistoryBuffer
	engine    *DecisionEngine
	publisher mqtt.Publisher
	metrics   *metrics.Metrics
	log       *logger.Logger
	now       func() time.Time

	mu          sync.RWMutex
	lastCommand *models.ActuatorCommand
}

func NewTelemetryService(settings repository.SettingsStore, history repository.HistoryBuffer, engine *DecisionEngine,
	publisher mqtt.Publisher, m *metrics.Metrics, log *logger.Logger) *TelemetryService {
	if publisher == nil {
		publisher = mqtt.NoopPublisher{}
	}
	return &TelemetryService{
		settings:  settings,
		history:   history,
		engine:    engine,
		publisher: publisher,
		metrics:   m,
		log:       log,
		now:       time.Now,
	}
}

// Ingest records the reading and returns the command for the device.
func (s *TelemetryService) Ingest(ctx context.Context, p ReadingParams) models.ActuatorCommand {
	reading := models.NewSensorReading(p.TemperatureC, p.Presence, s.now())
	s.history.Append(reading)
	s.metrics.ObserveReading(s.history.Len())

	cmd := s.engine.Decide(ctx, s.settings.Get(), p.TemperatureC, p.Presence)
	s.metrics.ObserveDecision(cmd.LightOn, cmd.FanOn)

	s.mu.Lock()
	s.lastCommand = &cmd
	s.mu.Unlock()

	if err := s.publisher.Publish(cmd); err != nil && s.log != nil {
		s.log.Warnw("command_publish_failed", "err", err)
	}
	if s.log != nil {
		s.log.Infow("device_state_update",
			"temperature", p.TemperatureC, "presence", p.Presence,
			"light_on", cmd.LightOn, "fan_on", cmd.FanOn)
	}
	return cmd
}

// Graph returns the size most recent readings, oldest first.
func (s *TelemetryService) Graph(size int) ([]models.SensorReading, error) {
	if limit := min(s.history.Capacity(), MaxGraphSize); size < 1 || size > limit {
		return nil, fmt.Errorf("%w: size must be between 1 and %d", ErrInvalidGraphSize, limit)
	}
	return s.history.LastN(size), nil
}

func (s *TelemetryService) DebugInfo() DebugInfo {
	info := DebugInfo{
		CurrentSettings: s.settings.Get(),
		CurrentUTCTime:  s.now().UTC().Format(models.ReadingTimeLayout),
		HistoryCount:    s.history.Len(),
	}
	if r, ok := s.history.Latest(); ok {
		info.LatestReading = &r
	}
	s.mu.RLock()
	if s.lastCommand != nil {
		cmd := *s.lastCommand
		info.LastCommand = &cmd
	}
	s.mu.RUnlock()
	return info
}
