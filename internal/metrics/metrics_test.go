package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMetrics_ExposesHubCounters(t *testing.T) {
	m := New()
	m.ObserveReading(3)
	m.ObserveDecision(true, false)
	m.ObserveAnomaly()
	m.ObserveSettingsUpdate(ResultOK)
	m.ObserveSunsetLookup(ResultFallback)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	body, _ := io.ReadAll(w.Body)
	for _, want := range []string{
		"smart_hub_sensor_readings_total 1",
		`smart_hub_decisions_total{fan_on="false",light_on="true"} 1`,
		"smart_hub_decision_anomalies_total 1",
		`smart_hub_settings_updates_total{result="ok"} 1`,
		`smart_hub_sunset_lookups_total{result="fallback"} 1`,
		"smart_hub_history_readings 3",
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveReading(1)
	m.ObserveDecision(false, false)
	m.ObserveAnomaly()
	m.ObserveSettingsUpdate(ResultError)
	m.ObserveSunsetLookup(ResultOK)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}
