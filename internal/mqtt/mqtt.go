package mqtt

import (
	"encoding/json"
	"time"

	"smart_hub/internal/models"
)

// DefaultTopic carries the latest actuator command for the device.
const DefaultTopic = "smarthub/commands"

// Publisher fans actuator commands out to subscribers.
type Publisher interface {
	Publish(cmd models.ActuatorCommand) error
	Close() error
}

type commandPayload struct {
	LightOn bool   `json:"light_on"`
	FanOn   bool   `json:"fan_on"`
	Issued  string `json:"issued_at"`
}

// FormatPayload renders a command as the JSON document published on the topic.
func FormatPayload(cmd models.ActuatorCommand, at time.Time) ([]byte, error) {
	return json.Marshal(commandPayload{
		LightOn: cmd.LightOn,
		FanOn:   cmd.FanOn,
		Issued:  at.UTC().Format(models.ReadingTimeLayout),
	})
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(models.ActuatorCommand) error { return nil }
func (NoopPublisher) Close() error                         { return nil }
