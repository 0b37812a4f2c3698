package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration for the game
type Config struct {
	Width               uint32        `json:"width" yaml:"width"`
	Height              uint32        `json:"height" yaml:"height"`
	FrameRate           time.Duration `json:"frame_rate" yaml:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart" yaml:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	MaxGenerations      int           `json:"max_generations" yaml:"max_generations"` // 0 runs forever
	RandomDensity       float64       `json:"random_density" yaml:"random_density"`
	Seed                int64         `json:"seed" yaml:"seed"` // 0 seeds from the clock
	InjectionCount      int           `json:"injection_count" yaml:"injection_count"`
	Patterns            bool          `json:"patterns" yaml:"patterns"`
	LogLevel            string        `json:"log_level" yaml:"log_level"`
	LogFormat           string        `json:"log_format" yaml:"log_format"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               64,
		Height:              64,
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		MaxGenerations:      1000,
		RandomDensity:       0.5,
		InjectionCount:      3,
		Patterns:            true,
		LogLevel:            "info",
		LogFormat:           "text",
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Fields missing from the file keep their defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, config.Validate()
}

// Validate rejects configurations the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width == 0 || c.Height == 0:
		return errors.Errorf("[Validate] grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random_density must be within [0, 1], got %v", c.RandomDensity)
	case c.FrameRate < 0:
		return errors.Errorf("[Validate] frame_rate must not be negative, got %v", c.FrameRate)
	case c.StagnationThreshold < 0 || c.InjectionCount < 0 || c.MaxGenerations < 0:
		return errors.New("[Validate] counts must not be negative")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "[Validate]")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.Errorf("[Validate] log_format must be 'text' or 'json', got %q", c.LogFormat)
	}
	return nil
}
