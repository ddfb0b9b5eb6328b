package repository

import (
	"context"
	"database/sql"
	"time"

	"smart_hub/internal/models"
)

// SettingsStore holds the single live settings record.
type SettingsStore interface {
	Get() models.Settings
	Set(s models.Settings)
}

// HistoryBuffer keeps the most recent sensor readings in arrival order.
type HistoryBuffer interface {
	Append(r models.SensorReading)
	Latest() (models.SensorReading, bool)
	LastN(n int) []models.SensorReading
	Len() int
	Capacity() int
}

// EventRepo is the append-only audit log.
type EventRepo interface {
	Append(ctx context.Context, e models.HubEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.HubEvent, error)
}

type Repository struct {
	Settings SettingsStore
	History  HistoryBuffer
	Events   EventRepo
}

func NewRepository(db *sql.DB, initial models.Settings, historyCapacity int) *Repository {
	return &Repository{
		Settings: NewMemorySettingsStore(initial),
		History:  NewRingHistory(historyCapacity),
		Events:   NewEventSQLite(db),
	}
}
