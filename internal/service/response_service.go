package service

import (
	"time"

	"smart_hub/internal/models"
)

// SettingsParams is a validated-at-the-edge settings update.
type SettingsParams struct {
	UserTempC     float64
	UserLight     string // "HH:MM:SS" | "sunset"
	LightDuration string // e.g. "2h30m"
}

// ReadingParams is one device telemetry message.
type ReadingParams struct {
	TemperatureC *float64 // nil on sensor fault
	Presence     bool
}

// LogFilter supports audit log filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "SETTINGS_UPDATE", "SUNSET_FALLBACK", "DECISION_ANOMALY"
}

// DebugInfo is a point-in-time view of the hub.
type DebugInfo struct {
	CurrentSettings models.Settings         `json:"current_system_settings"`
	CurrentUTCTime  string                  `json:"current_utc_time"`
	HistoryCount    int                     `json:"sensor_history_count"`
	LatestReading   *models.SensorReading   `json:"latest_sensor_reading_for_graph"`
	LastCommand     *models.ActuatorCommand `json:"last_command,omitempty"`
}
