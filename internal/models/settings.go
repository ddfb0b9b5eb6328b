package models

import "time"

// SettingsID is the identifier of the single settings record.
const SettingsID = "default_settings_id_123"

// Settings is the live hub configuration.
type Settings struct {
	ID                 string    `json:"_id"`
	UserTempC          float64   `json:"user_temp"`                 // °C, fan threshold
	UserLightInput     string    `json:"user_light_input"`          // "HH:MM:SS" | "sunset", as typed
	LightDurationInput string    `json:"light_duration_input"`      // e.g. "2h30m", as typed
	LightOnUTC         TimeOfDay `json:"light_time_on_actual_utc"`  // resolved
	LightOffUTC        TimeOfDay `json:"light_time_off_actual_utc"` // resolved
	UpdatedAt          time.Time `json:"updated_at"`
}
