package mqtt

import (
	"testing"
	"time"

	"smart_hub/internal/models"
)

func TestFormatPayload(t *testing.T) {
	at := time.Date(2025, 5, 4, 21, 15, 9, 500, time.UTC)
	b, err := FormatPayload(models.ActuatorCommand{LightOn: true, FanOn: false}, at)
	if err != nil {
		t.Fatalf("FormatPayload: %v", err)
	}
	want := `{"light_on":true,"fan_on":false,"issued_at":"2025-05-04T21:15:09Z"}`
	if string(b) != want {
		t.Fatalf("got %s, want %s", b, want)
	}
}

func TestNewPublisher_NoBrokerIsNoop(t *testing.T) {
	p, err := NewPublisher(Config{})
	if err != nil {
		t.Fatalf("NewPublisher: %v", err)
	}
	if _, ok := p.(NoopPublisher); !ok {
		t.Fatalf("expected NoopPublisher, got %T", p)
	}
	if err := p.Publish(models.ActuatorCommand{LightOn: true}); err != nil {
		t.Fatalf("noop publish: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("noop close: %v", err)
	}
}
