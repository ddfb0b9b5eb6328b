package main

import (
	"errors"
	"strings"
	"time"

	"smart_hub/internal/mqtt"
	"smart_hub/internal/repository"
	"smart_hub/internal/repository/db"
	"smart_hub/internal/schedule"
	"smart_hub/internal/server"
	"smart_hub/internal/sunset"

	"github.com/spf13/viper"
)

const envPrefix = "SMARTHUB"

// config is the resolved process configuration.
type config struct {
	LogLevel string
	Server   server.Config
	Location schedule.Location
	Sunset   sunset.Config
	MQTT     mqtt.Config
	DBPath   string

	HistoryCapacity int
	CORSOrigins     []string

	InitialTempC    float64
	InitialLight    string
	InitialDuration string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", server.DefaultPort)
	v.SetDefault("log.level", "info")

	v.SetDefault("location.latitude", 17.9696)
	v.SetDefault("location.longitude", -76.7936)

	v.SetDefault("sunset.base_url", sunset.DefaultBaseURL)
	v.SetDefault("sunset.timeout", sunset.DefaultTimeout)
	v.SetDefault("sunset.max_retries", 2)
	v.SetDefault("sunset.breaker_failures", 3)
	v.SetDefault("sunset.breaker_open_for", time.Minute)

	v.SetDefault("history.capacity", repository.DefaultHistoryCapacity)

	v.SetDefault("settings.user_temp", 25.0)
	v.SetDefault("settings.user_light", "18:00:00")
	v.SetDefault("settings.light_duration", "2h")

	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetDefault("db.path", db.DefaultPath)

	v.SetDefault("mqtt.broker", "")
	v.SetDefault("mqtt.topic", mqtt.DefaultTopic)
	v.SetDefault("mqtt.client_id", "smart-hub")
}

// loadConfig reads configs/config.yml when present; env vars such as
// SMARTHUB_MQTT_BROKER override file values.
func loadConfig(v *viper.Viper) (config, error) {
	setDefaults(v)
	v.AddConfigPath("configs") // configs/config.yml
	v.SetConfigName("config")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config{}, err
		}
	}

	return config{
		LogLevel: v.GetString("log.level"),
		Server:   server.Config{Port: v.GetString("port")},
		Location: schedule.Location{
			Latitude:  v.GetFloat64("location.latitude"),
			Longitude: v.GetFloat64("location.longitude"),
		},
		Sunset: sunset.Config{
			BaseURL:         v.GetString("sunset.base_url"),
			Timeout:         v.GetDuration("sunset.timeout"),
			MaxRetries:      v.GetInt("sunset.max_retries"),
			BreakerFailures: v.GetUint32("sunset.breaker_failures"),
			BreakerOpenFor:  v.GetDuration("sunset.breaker_open_for"),
		},
		MQTT: mqtt.Config{
			Broker:   v.GetString("mqtt.broker"),
			Topic:    v.GetString("mqtt.topic"),
			ClientID: v.GetString("mqtt.client_id"),
		},
		DBPath:          v.GetString("db.path"),
		HistoryCapacity: v.GetInt("history.capacity"),
		CORSOrigins:     v.GetStringSlice("cors.allowed_origins"),
		InitialTempC:    v.GetFloat64("settings.user_temp"),
		InitialLight:    v.GetString("settings.user_light"),
		InitialDuration: v.GetString("settings.light_duration"),
	}, nil
}
