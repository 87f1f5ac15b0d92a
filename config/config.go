package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port           string        `yaml:"port"`
	GinMode        string        `yaml:"gin_mode"`
	LogLevel       string        `yaml:"log_level"`
	StreamInterval time.Duration `yaml:"stream_interval"`
	SeedData       bool          `yaml:"seed_data"`
	ActivitySize   int           `yaml:"activity_size"`
	RedisURL       string        `yaml:"redis_url"`
	ElasticURL     string        `yaml:"elastic_url"`
	ElasticIndex   string        `yaml:"elastic_index"`
}

func Default() Config {
	return Config{
		Port:           "8080",
		GinMode:        "release",
		LogLevel:       "info",
		StreamInterval: time.Second,
		SeedData:       true,
		ActivitySize:   3,
		ElasticIndex:   "books",
	}
}

// Load builds the configuration from defaults, the YAML file named by
// CONFIG_FILE (if any) and then the environment.
func Load() (Config, error) {
	return LoadFrom(os.LookupEnv)
}

func LoadFrom(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if path, ok := lookup("CONFIG_FILE"); ok && path != "" {
		if err := cfg.readFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (cfg *Config) readFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (cfg *Config) applyEnv(lookup func(string) (string, bool)) error {
	textFields := map[string]*string{
		"PORT":          &cfg.Port,
		"GIN_MODE":      &cfg.GinMode,
		"LOG_LEVEL":     &cfg.LogLevel,
		"REDIS_URL":     &cfg.RedisURL,
		"ELASTIC_URL":   &cfg.ElasticURL,
		"ELASTIC_INDEX": &cfg.ElasticIndex,
	}
	for key, target := range textFields {
		if value, ok := lookup(key); ok {
			*target = value
		}
	}

	if value, ok := lookup("STREAM_INTERVAL"); ok {
		interval, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("config: STREAM_INTERVAL: %w", err)
		}
		cfg.StreamInterval = interval
	}

	if value, ok := lookup("SEED_DATA"); ok {
		seed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config: SEED_DATA: %w", err)
		}
		cfg.SeedData = seed
	}

	if value, ok := lookup("ACTIVITY_SIZE"); ok {
		size, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("config: ACTIVITY_SIZE: %w", err)
		}
		cfg.ActivitySize = size
	}

	return nil
}

func (cfg Config) Validate() error {
	if cfg.Port == "" {
		return fmt.Errorf("config: port is required")
	}
	if cfg.StreamInterval < 0 {
		return fmt.Errorf("config: stream interval must not be negative, got %s", cfg.StreamInterval)
	}
	if cfg.ActivitySize < 1 {
		return fmt.Errorf("config: activity size must be at least 1, got %d", cfg.ActivitySize)
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: unknown gin mode %q", cfg.GinMode)
	}
	return nil
}
