package service

import (
	"context"
	"time"

	"smart_hub/internal/logger"
	"smart_hub/internal/metrics"
	"smart_hub/internal/models"
	"smart_hub/internal/repository"
)

// DecisionEngine computes actuator commands from settings and a reading.
type DecisionEngine struct {
	events  repository.EventRepo
	metrics *metrics.Metrics
	log     *logger.Logger
	now     func() time.Time
}

func NewDecisionEngine(events repository.EventRepo, m *metrics.Metrics, log *logger.Logger) *DecisionEngine {
	return &DecisionEngine{events: events, metrics: m, log: log, now: time.Now}
}

// LightWindowContains reports whether now falls in [on, off).
// A window with on > off crosses midnight; on == off is empty.
func LightWindowContains(on, off, now models.TimeOfDay) bool {
	if on.Compare(off) > 0 {
		return now.Compare(on) >= 0 || now.Compare(off) < 0
	}
	return on.Compare(now) <= 0 && now.Compare(off) < 0
}

// Decide never fails. Without presence everything is off; inconsistent
// stored settings also yield all-off and are reported as an anomaly.
// The fan only depends on presence and temperature, not on the light window.
func (e *DecisionEngine) Decide(ctx context.Context, s models.Settings, temperatureC *float64, presence bool) models.ActuatorCommand {
	if !presence {
		return models.ActuatorCommand{}
	}
	if !s.LightOnUTC.Valid() || !s.LightOffUTC.Valid() {
		e.reportAnomaly(ctx, s)
		return models.ActuatorCommand{}
	}

	now := models.TimeOfDayOf(e.now())
	return models.ActuatorCommand{
		LightOn: LightWindowContains(s.LightOnUTC, s.LightOffUTC, now),
		FanOn:   temperatureC != nil && *temperatureC > s.UserTempC,
	}
}

func (e *DecisionEngine) reportAnomaly(ctx context.Context, s models.Settings) {
	e.metrics.ObserveAnomaly()
	if e.log != nil {
		e.log.Errorw("decision_settings_inconsistent",
			"light_on_utc", s.LightOnUTC, "light_off_utc", s.LightOffUTC)
	}
	if e.events == nil {
		return
	}
	err := e.events.Append(ctx, models.HubEvent{
		OccurredAt:  e.now().UTC(),
		Type:        models.EventDecisionAnomaly,
		Description: "Stored light window is invalid; commanded all off",
		Metadata: map[string]any{
			"light_time_on_actual_utc":  s.LightOnUTC,
			"light_time_off_actual_utc": s.LightOffUTC,
		},
	})
	if err != nil && e.log != nil {
		e.log.Warnw("decision_anomaly_event_failed", "err", err)
	}
}
