package cli

import (
	"fmt"
	"log/slog"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/scheduler"
	"pomodoro/internal/logging"
	"pomodoro/internal/storage"

	"github.com/spf13/viper"
)

// runtime holds what every front end needs.
type runtime struct {
	config     model.ClockConfig
	configPath string
	logger     *slog.Logger
	scheduler  *scheduler.Scheduler
	closeLog   func() error
}

func newRuntime(v *viper.Viper) (*runtime, error) {
	config, configPath, err := resolveConfig(v)
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.Open(v.GetString(keyLogFile), logging.ParseLevel(v.GetString(keyLogLevel)))
	if err != nil {
		return nil, err
	}

	sched, err := scheduler.New(config, scheduler.Options{Logger: logger})
	if err != nil {
		_ = closeLog()
		return nil, err
	}

	logger.Info("timer ready",
		"config", configPath,
		"work_seconds", config.WorkSeconds,
		"break_seconds", config.BreakSeconds,
		"long_break_seconds", config.LongBreakSeconds,
		"long_break_cycle", config.LongBreakCycle,
		"tick_interval", config.TickInterval,
	)

	return &runtime{
		config:     config,
		configPath: configPath,
		logger:     logger,
		scheduler:  sched,
		closeLog:   closeLog,
	}, nil
}

func (rt *runtime) close() {
	rt.scheduler.Shutdown()
	_ = rt.closeLog()
}

// resolveConfig layers the config file, environment and flags, then validates the result.
func resolveConfig(v *viper.Viper) (model.ClockConfig, string, error) {
	configPath, err := configFilePath(v)
	if err != nil {
		return model.ClockConfig{}, "", err
	}

	config, err := storage.LoadConfig(configPath)
	if err != nil {
		return model.ClockConfig{}, configPath, fmt.Errorf("load config %s: %w", configPath, err)
	}

	if v.IsSet(keyWorkSeconds) {
		config.WorkSeconds = v.GetInt(keyWorkSeconds)
	}
	if v.IsSet(keyBreakSeconds) {
		config.BreakSeconds = v.GetInt(keyBreakSeconds)
	}
	if v.IsSet(keyLongBreakSeconds) {
		config.LongBreakSeconds = v.GetInt(keyLongBreakSeconds)
	}
	if v.IsSet(keyLongBreakCycle) {
		config.LongBreakCycle = v.GetInt(keyLongBreakCycle)
	}
	if v.IsSet(keyTickInterval) {
		config.TickInterval = v.GetDuration(keyTickInterval)
	}

	if err := config.Validate(); err != nil {
		return config, configPath, err
	}
	return config, configPath, nil
}

func configFilePath(v *viper.Viper) (string, error) {
	if path := v.GetString(keyConfig); path != "" {
		return path, nil
	}
	return storage.DefaultConfigPath(appName)
}
