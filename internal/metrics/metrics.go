package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "smart_hub"

// Result labels shared by the counters below.
const (
	ResultOK       = "ok"
	ResultFallback = "fallback"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

// Metrics holds the hub collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	readings        prometheus.Counter
	decisions       *prometheus.CounterVec
	anomalies       prometheus.Counter
	settingsUpdates *prometheus.CounterVec
	sunsetLookups   *prometheus.CounterVec
	historySize     prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		readings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sensor_readings_total",
			Help:      "Device telemetry messages received.",
		}),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decisions_total",
			Help:      "Actuator commands computed, by light and fan state.",
		}, []string{"light_on", "fan_on"}),
		anomalies: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decision_anomalies_total",
			Help:      "Decisions forced to all-off because stored settings were inconsistent.",
		}),
		settingsUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settings_updates_total",
			Help:      "Settings update attempts, by result.",
		}, []string{"result"}),
		sunsetLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sunset_lookups_total",
			Help:      "Sunset provider lookups, by result.",
		}, []string{"result"}),
		historySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "history_readings",
			Help:      "Readings currently held in the history buffer.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.readings,
		m.decisions,
		m.anomalies,
		m.settingsUpdates,
		m.sunsetLookups,
		m.historySize,
	)
	return m
}

// Handler serves the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveReading(historyLen int) {
	if m == nil {
		return
	}
	m.readings.Inc()
	m.historySize.Set(float64(historyLen))
}

func (m *Metrics) ObserveDecision(lightOn, fanOn bool) {
	if m == nil {
		return
	}
	m.decisions.WithLabelValues(boolLabel(lightOn), boolLabel(fanOn)).Inc()
}

func (m *Metrics) ObserveAnomaly() {
	if m == nil {
		return
	}
	m.anomalies.Inc()
}

func (m *Metrics) ObserveSettingsUpdate(result string) {
	if m == nil {
		return
	}
	m.settingsUpdates.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveSunsetLookup(result string) {
	if m == nil {
		return
	}
	m.sunsetLookups.WithLabelValues(result).Inc()
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
