package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.NumFloors != NumFloors || cfg.Capacity != Capacity || cfg.StartFloor != StartFloor {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "elevsim.yaml", `
floors: 10
capacity: 4
start_floor: 1
travel_duration: 20ms
poll_interval: 5ms
log:
  level: info
  format: console
`)
	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.NumFloors != 10 || cfg.Capacity != 4 || cfg.StartFloor != 1 {
		t.Errorf("unexpected building settings: %+v", cfg)
	}
	if cfg.TravelDuration != 20*time.Millisecond || cfg.PollInterval != 5*time.Millisecond {
		t.Errorf("unexpected durations: travel %v poll %v", cfg.TravelDuration, cfg.PollInterval)
	}
	if cfg.GenerationInterval != GenerationInterval {
		t.Errorf("GenerationInterval = %v, expected default %v", cfg.GenerationInterval, GenerationInterval)
	}
	if cfg.Log.Format != "console" || cfg.Log.Level != "info" {
		t.Errorf("unexpected log settings: %+v", cfg.Log)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeFile(t, "elevsim.yaml", "floors: 10\ncapacity: 4\n")
	envFile := writeFile(t, ".env", "ELEVSIM_CAPACITY=2\nELEVSIM_FLOORS=7\nELEVSIM_RUN_ID=fromfile\n")
	t.Setenv("ELEVSIM_FLOORS", "8")
	t.Setenv("ELEVSIM_POLL_INTERVAL", "15ms")

	cfg, err := Load(path, envFile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.NumFloors != 8 {
		t.Errorf("process env should win over .env, floors = %d", cfg.NumFloors)
	}
	if cfg.Capacity != 2 {
		t.Errorf(".env should override yaml, capacity = %d", cfg.Capacity)
	}
	if cfg.PollInterval != 15*time.Millisecond {
		t.Errorf("PollInterval = %v", cfg.PollInterval)
	}
	if cfg.RunID != "fromfile" {
		t.Errorf("RunID = %q", cfg.RunID)
	}
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	if _, err := Load("", filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}

func TestLoadBadEnvValue(t *testing.T) {
	t.Setenv("ELEVSIM_CAPACITY", "lots")
	if _, err := Load("", ""); err == nil {
		t.Error("expected error for non-numeric capacity")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"one floor", func(c *Config) { c.NumFloors = 1 }, false},
		{"no capacity", func(c *Config) { c.Capacity = 0 }, false},
		{"start below", func(c *Config) { c.StartFloor = 0 }, false},
		{"start above", func(c *Config) { c.StartFloor = c.NumFloors + 1 }, false},
		{"start at top", func(c *Config) { c.StartFloor = c.NumFloors }, true},
		{"zero poll", func(c *Config) { c.PollInterval = 0 }, false},
		{"zero travel", func(c *Config) { c.TravelDuration = 0 }, true},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}
