package models

import "time"

// Event types recorded in the audit log.
const (
	EventSettingsUpdate  = "SETTINGS_UPDATE"
	EventSunsetFallback  = "SUNSET_FALLBACK"
	EventDecisionAnomaly = "DECISION_ANOMALY"
)

// HubEvent is a single audit log entry.
type HubEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // SETTINGS_UPDATE | SUNSET_FALLBACK | DECISION_ANOMALY
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
