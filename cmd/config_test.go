package main

import (
	"context"
	"os"
	"testing"
	"time"

	"smart_hub/internal/models"
	"smart_hub/internal/repository/db"
	"smart_hub/internal/schedule"

	"github.com/spf13/viper"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir()) // no configs/config.yml here

	cfg, err := loadConfig(viper.New())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Server.Port != "8080" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected server/log defaults: %+v", cfg)
	}
	if cfg.Location.Latitude != 17.9696 || cfg.Location.Longitude != -76.7936 {
		t.Fatalf("unexpected location %+v", cfg.Location)
	}
	if cfg.Sunset.Timeout != 10*time.Second || cfg.HistoryCapacity != 100 {
		t.Fatalf("unexpected sunset/history defaults: %+v", cfg)
	}
	if cfg.InitialTempC != 25 || cfg.InitialLight != "18:00:00" || cfg.InitialDuration != "2h" {
		t.Fatalf("unexpected initial settings: %+v", cfg)
	}
	if cfg.DBPath != db.DefaultPath || cfg.MQTT.Broker != "" {
		t.Fatalf("unexpected db/mqtt defaults: %+v", cfg)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SMARTHUB_PORT", "9999")
	t.Setenv("SMARTHUB_SETTINGS_USER_LIGHT", "sunset")
	t.Setenv("SMARTHUB_HISTORY_CAPACITY", "5")

	cfg, err := loadConfig(viper.New())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Server.Port != "9999" || cfg.InitialLight != "sunset" || cfg.HistoryCapacity != 5 {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestInitialSettings(t *testing.T) {
	calc := schedule.NewCalculator(nil, schedule.Location{})
	cfg := config{InitialTempC: 25, InitialLight: "18:00:00", InitialDuration: "2h"}

	got, err := initialSettings(context.Background(), calc, cfg)
	if err != nil {
		t.Fatalf("initialSettings: %v", err)
	}
	if got.ID != models.SettingsID || got.LightOnUTC != (models.TimeOfDay{Hour: 18}) || got.LightOffUTC != (models.TimeOfDay{Hour: 20}) {
		t.Fatalf("unexpected settings %+v", got)
	}

	cfg.InitialDuration = "forever"
	if _, err := initialSettings(context.Background(), calc, cfg); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
