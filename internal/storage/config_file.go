package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pomodoro/internal/core/model"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

// ErrUnsupportedFormat indicates a config file extension other than YAML or TOML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// fileConfig uses pointers so an absent key keeps its default while a
// present one, valid or not, reaches Validate.
type fileConfig struct {
	WorkSeconds      *int `yaml:"work_seconds" toml:"work_seconds"`
	BreakSeconds     *int `yaml:"break_seconds" toml:"break_seconds"`
	LongBreakSeconds *int `yaml:"long_break_seconds" toml:"long_break_seconds"`
	LongBreakCycle   *int `yaml:"long_break_cycle" toml:"long_break_cycle"`
	TickIntervalMs   *int `yaml:"tick_interval_ms" toml:"tick_interval_ms"`
}

// DefaultConfigPath returns the per-user config file location for appName.
func DefaultConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, configFileName), nil
}

// LoadConfig reads the clock config from path.
// If the file does not exist, default config is returned.
func LoadConfig(path string) (model.ClockConfig, error) {
	config := model.DefaultClockConfig()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read config file: %w", err)
	}

	var fileData fileConfig
	switch format(path) {
	case "yaml":
		if err := yaml.Unmarshal(rawData, &fileData); err != nil {
			return config, fmt.Errorf("parse config yaml: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(rawData, &fileData); err != nil {
			return config, fmt.Errorf("parse config toml: %w", err)
		}
	default:
		return config, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	applyFileConfig(&config, fileData)
	return config, nil
}

// SaveConfig writes the clock config to path, creating parent directories.
func SaveConfig(path string, config model.ClockConfig) error {
	serialized, err := MarshalConfig(path, config)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// MarshalConfig encodes config in the format implied by path's extension.
// The config must be valid so the millisecond tick field reproduces it exactly.
func MarshalConfig(path string, config model.ClockConfig) ([]byte, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	tickMs := int(config.TickInterval / time.Millisecond)
	fileData := fileConfig{
		WorkSeconds:      &config.WorkSeconds,
		BreakSeconds:     &config.BreakSeconds,
		LongBreakSeconds: &config.LongBreakSeconds,
		LongBreakCycle:   &config.LongBreakCycle,
		TickIntervalMs:   &tickMs,
	}

	switch format(path) {
	case "yaml":
		serialized, err := yaml.Marshal(fileData)
		if err != nil {
			return nil, fmt.Errorf("marshal config yaml: %w", err)
		}
		return serialized, nil
	case "toml":
		serialized, err := toml.Marshal(fileData)
		if err != nil {
			return nil, fmt.Errorf("marshal config toml: %w", err)
		}
		return serialized, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}

func applyFileConfig(config *model.ClockConfig, fileData fileConfig) {
	if fileData.WorkSeconds != nil {
		config.WorkSeconds = *fileData.WorkSeconds
	}
	if fileData.BreakSeconds != nil {
		config.BreakSeconds = *fileData.BreakSeconds
	}
	if fileData.LongBreakSeconds != nil {
		config.LongBreakSeconds = *fileData.LongBreakSeconds
	}
	if fileData.LongBreakCycle != nil {
		config.LongBreakCycle = *fileData.LongBreakCycle
	}
	if fileData.TickIntervalMs != nil {
		config.TickInterval = time.Duration(*fileData.TickIntervalMs) * time.Millisecond
	}
}
