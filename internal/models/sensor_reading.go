package models

import (
	"encoding/json"
	"time"
)

// ReadingTimeLayout renders reading timestamps as UTC, second precision, "Z" suffixed.
const ReadingTimeLayout = "2006-01-02T15:04:05Z"

// SensorReading is one telemetry sample from the device.
type SensorReading struct {
	TemperatureC *float64  // nil when the sensor faulted
	Presence     bool
	Datetime     time.Time // UTC, truncated to the second
}

type sensorReadingJSON struct {
	Temperature *float64 `json:"temperature"`
	Presence    bool     `json:"presence"`
	Datetime    string   `json:"datetime"`
}

// NewSensorReading stamps a reading with at, normalized to UTC seconds.
func NewSensorReading(temperature *float64, presence bool, at time.Time) SensorReading {
	return SensorReading{
		TemperatureC: temperature,
		Presence:     presence,
		Datetime:     at.UTC().Truncate(time.Second),
	}
}

func (r SensorReading) MarshalJSON() ([]byte, error) {
	return json.Marshal(sensorReadingJSON{
		Temperature: r.TemperatureC,
		Presence:    r.Presence,
		Datetime:    r.Datetime.UTC().Format(ReadingTimeLayout),
	})
}

func (r *SensorReading) UnmarshalJSON(b []byte) error {
	var raw sensorReadingJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	ts, err := time.Parse(ReadingTimeLayout, raw.Datetime)
	if err != nil {
		return err
	}
	r.TemperatureC = raw.Temperature
	r.Presence = raw.Presence
	r.Datetime = ts.UTC()
	return nil
}

// ActuatorCommand is what the device should do with its light and fan.
type ActuatorCommand struct {
	LightOn bool `json:"light_on"`
	FanOn   bool `json:"fan_on"`
}
