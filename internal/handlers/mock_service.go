package handlers

import (
	"context"
	"sync"
	"time"

	"smart_hub/internal/models"
	"smart_hub/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockSettings struct {
	current   models.Settings
	updated   models.Settings
	updateErr error

	lastParams  service.SettingsParams
	updateCalls int
}

func (m *mockSettings) Current() models.Settings { return m.current }

func (m *mockSettings) Update(ctx context.Context, p service.SettingsParams) (models.Settings, error) {
	m.updateCalls++
	m.lastParams = p
	return m.updated, m.updateErr
}

type mockTelemetry struct {
	mu sync.Mutex

	cmd      models.ActuatorCommand
	readings []models.SensorReading
	graphErr error
	info     service.DebugInfo

	lastReading service.ReadingParams
	ingestCalls int
	lastSize    int
}

func (m *mockTelemetry) Ingest(ctx context.Context, p service.ReadingParams) models.ActuatorCommand {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ingestCalls++
	m.lastReading = p
	return m.cmd
}

func (m *mockTelemetry) Graph(size int) ([]models.SensorReading, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSize = size
	return m.readings, m.graphErr
}

func (m *mockTelemetry) DebugInfo() service.DebugInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.info
}

type mockEventLog struct {
	resp     []models.HubEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
	calls    int
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.HubEvent, error) {
	m.calls++
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, origins ...string) *gin.Engine {
	h := NewHandler(s, nil, nil, origins)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
