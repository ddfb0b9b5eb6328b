package mqtt

import (
	"fmt"
	"time"

	"smart_hub/internal/models"

	paho "github.com/eclipse/paho.mqtt.golang"
)

const (
	connectTimeout = 10 * time.Second
	publishTimeout = 5 * time.Second
)

// Config selects the broker. An empty Broker disables publishing.
type Config struct {
	Broker   string
	Topic    string
	ClientID string
}

// RealPublisher publishes to an actual MQTT broker.
type RealPublisher struct {
	client paho.Client
	topic  string
	now    func() time.Time
}

// NewPublisher returns a broker-backed publisher, or a NoopPublisher when no broker is set.
func NewPublisher(cfg Config) (Publisher, error) {
	if cfg.Broker == "" {
		return NoopPublisher{}, nil
	}
	return NewRealPublisher(cfg)
}

func NewRealPublisher(cfg Config) (*RealPublisher, error) {
	if cfg.Topic == "" {
		cfg.Topic = DefaultTopic
	}
	if cfg.ClientID == "" {
		cfg.ClientID = "smart-hub"
	}
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)

	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("connect to %s: timeout", cfg.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Broker, err)
	}
	return &RealPublisher{client: client, topic: cfg.Topic, now: time.Now}, nil
}

// Publish sends the command retained, so a reconnecting device gets the latest one.
func (p *RealPublisher) Publish(cmd models.ActuatorCommand) error {
	payload, err := FormatPayload(cmd, p.now())
	if err != nil {
		return fmt.Errorf("format payload: %w", err)
	}
	token := p.client.Publish(p.topic, 0, true, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publish to %s: timeout", p.topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}
	return nil
}

func (p *RealPublisher) Close() error {
	p.client.Disconnect(1000)
	return nil
}
