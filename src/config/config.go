package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	NumFloors          = 5
	Capacity           = 6
	StartFloor         = 3
	TravelDuration     = 500 * time.Millisecond
	PollInterval       = 100 * time.Millisecond
	GenerationInterval = 1000 * time.Millisecond
	EnvPrefix          = "ELEVSIM_"
)

var ErrInvalid = errors.New("invalid configuration")

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or console
	File   string `yaml:"file"`
}

type Config struct {
	RunID              string        `yaml:"run_id"`
	NumFloors          int           `yaml:"floors"`
	Capacity           int           `yaml:"capacity"`
	StartFloor         int           `yaml:"start_floor"`
	TravelDuration     time.Duration `yaml:"travel_duration"`
	PollInterval       time.Duration `yaml:"poll_interval"`
	GenerationInterval time.Duration `yaml:"generation_interval"`
	StatusInterval     time.Duration `yaml:"status_interval"`
	Seed               uint64        `yaml:"seed"`
	Log                Log           `yaml:"log"`
}

func Default() Config {
	return Config{
		NumFloors:          NumFloors,
		Capacity:           Capacity,
		StartFloor:         StartFloor,
		TravelDuration:     TravelDuration,
		PollInterval:       PollInterval,
		GenerationInterval: GenerationInterval,
		Log:                Log{Level: "debug", Format: "text"},
	}
}

// Load builds a Config from defaults, an optional YAML file and the environment.
// Variables from envFile (if it exists) apply only where the process environment
// has no value of its own.
func Load(path, envFile string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	fileEnv := map[string]string{}
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			fileEnv, err = godotenv.Read(envFile)
			if err != nil {
				return cfg, fmt.Errorf("read env file %s: %w", envFile, err)
			}
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (cfg *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"FLOORS":      &cfg.NumFloors,
		"CAPACITY":    &cfg.Capacity,
		"START_FLOOR": &cfg.StartFloor,
	}
	for key, dst := range ints {
		if v, ok := lookup(EnvPrefix + key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
			}
			*dst = n
		}
	}
	durations := map[string]*time.Duration{
		"TRAVEL_DURATION":     &cfg.TravelDuration,
		"POLL_INTERVAL":       &cfg.PollInterval,
		"GENERATION_INTERVAL": &cfg.GenerationInterval,
		"STATUS_INTERVAL":     &cfg.StatusInterval,
	}
	for key, dst := range durations {
		if v, ok := lookup(EnvPrefix + key); ok {
			d, err := time.ParseDuration(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
			}
			*dst = d
		}
	}
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		cfg.Seed = seed
	}
	strs := map[string]*string{
		"RUN_ID":     &cfg.RunID,
		"LOG_LEVEL":  &cfg.Log.Level,
		"LOG_FORMAT": &cfg.Log.Format,
		"LOG_FILE":   &cfg.Log.File,
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	return nil
}

// Validate checks the bootstrap contract: at least two floors, room for one
// passenger, and a start floor inside the building.
func (cfg Config) Validate() error {
	switch {
	case cfg.NumFloors < 2:
		return fmt.Errorf("%w: floors must be at least 2, got %d", ErrInvalid, cfg.NumFloors)
	case cfg.Capacity < 1:
		return fmt.Errorf("%w: capacity must be at least 1, got %d", ErrInvalid, cfg.Capacity)
	case cfg.StartFloor < 1 || cfg.StartFloor > cfg.NumFloors:
		return fmt.Errorf("%w: start floor %d outside 1..%d", ErrInvalid, cfg.StartFloor, cfg.NumFloors)
	case cfg.TravelDuration < 0 || cfg.PollInterval <= 0 || cfg.GenerationInterval <= 0:
		return fmt.Errorf("%w: durations must be positive", ErrInvalid)
	case cfg.StatusInterval < 0:
		return fmt.Errorf("%w: status interval must not be negative", ErrInvalid)
	}
	switch cfg.Log.Format {
	case "", "text", "console":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, cfg.Log.Format)
	}
	return nil
}
