package service

import (
	"context"
	"time"

	"smart_hub/internal/logger"
	"smart_hub/internal/metrics"
	"smart_hub/internal/models"
	"smart_hub/internal/repository"
	"smart_hub/internal/schedule"
)

type SettingsService struct {
	store   repository.SettingsStore
	events  repository.EventRepo
	calc    ScheduleCalculator
	metrics *metrics.Metrics
	log     *logger.Logger
	now     func() time.Time
}

func NewSettingsService(store repository.SettingsStore, events repository.EventRepo, calc ScheduleCalculator, m *metrics.Metrics, log *logger.Logger) *SettingsService {
	return &SettingsService{store: store, events: events, calc: calc, metrics: m, log: log, now: time.Now}
}

func (s *SettingsService) Current() models.Settings {
	return s.store.Get()
}

// Update resolves the schedule without holding any lock, then replaces the
// stored record in one step. On error the stored record is untouched.
func (s *SettingsService) Update(ctx context.Context, p SettingsParams) (models.Settings, error) {
	sch, err := s.calc.Compute(ctx, p.UserLight, p.LightDuration)
	if err != nil {
		s.metrics.ObserveSettingsUpdate(metrics.ResultInvalid)
		if s.log != nil {
			s.log.Infow("settings_update_rejected", "err", err,
				"user_light", p.UserLight, "light_duration", p.LightDuration)
		}
		return models.Settings{}, err
	}

	now := s.now().UTC()
	next := models.Settings{
		ID:                 models.SettingsID,
		UserTempC:          p.UserTempC,
		UserLightInput:     p.UserLight,
		LightDurationInput: p.LightDuration,
		LightOnUTC:         sch.On,
		LightOffUTC:        sch.Off,
		UpdatedAt:          now,
	}
	s.store.Set(next)

	result := metrics.ResultOK
	if sch.SunsetFallback {
		result = metrics.ResultFallback
		if s.log != nil {
			s.log.Warnw("sunset_fallback_applied", "light_on_utc", sch.On.String())
		}
		s.appendEvent(ctx, models.HubEvent{
			OccurredAt:  now,
			Type:        models.EventSunsetFallback,
			Description: "Sunset lookup failed; using fallback " + schedule.FallbackLightOn.String() + " UTC",
		})
	}
	s.metrics.ObserveSettingsUpdate(result)

	if s.log != nil {
		s.log.Infow("settings_updated",
			"user_temp", next.UserTempC,
			"user_light", next.UserLightInput,
			"light_duration", next.LightDurationInput,
			"light_on_utc", next.LightOnUTC.String(),
			"light_off_utc", next.LightOffUTC.String())
	}
	s.appendEvent(ctx, models.HubEvent{
		OccurredAt:  now,
		Type:        models.EventSettingsUpdate,
		Description: "Settings updated",
		Metadata: map[string]any{
			"user_temp":                 next.UserTempC,
			"user_light_input":          next.UserLightInput,
			"light_duration_input":      next.LightDurationInput,
			"light_time_on_actual_utc":  next.LightOnUTC,
			"light_time_off_actual_utc": next.LightOffUTC,
			"sunset_fallback":           sch.SunsetFallback,
		},
	})
	return next, nil
}

// appendEvent records to the audit log; the settings are already committed,
// so a failure here is only logged.
func (s *SettingsService) appendEvent(ctx context.Context, e models.HubEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Append(ctx, e); err != nil && s.log != nil {
		s.log.Warnw("audit_event_append_failed", "type", e.Type, "err", err)
	}
}
