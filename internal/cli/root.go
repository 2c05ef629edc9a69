// Package cli provides the command-line interface for the Pomodoro timer.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName   = "pomodoro"
	appID     = "com.pomodoro.timer"
	envPrefix = "POMODORO"
)

// Config keys shared by flags, environment variables and viper.
const (
	keyConfig           = "config"
	keyLogFile          = "log_file"
	keyLogLevel         = "log_level"
	keyWorkSeconds      = "work_seconds"
	keyBreakSeconds     = "break_seconds"
	keyLongBreakSeconds = "long_break_seconds"
	keyLongBreakCycle   = "long_break_cycle"
	keyTickInterval     = "tick_interval"
)

// launchGUIFunc and launchTUIFunc are variables so tests can replace the front ends.
var (
	launchGUIFunc = launchGUI
	launchTUIFunc = launchTUI
)

// NewRootCommand creates the root command. Without a subcommand it opens the desktop window.
func NewRootCommand(version string) *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   appName,
		Short: "Pomodoro work/break session timer",
		Long: `pomodoro counts down alternating work and break sessions.

Every completed work session is counted; after every long break cycle
(4 by default) a long break replaces the short one. Durations come from
the config file, POMODORO_* environment variables and flags, in
increasing order of precedence.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (main prints them)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launch(cmd, v, launchGUIFunc)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file, .yaml or .toml (default $XDG_CONFIG_HOME/pomodoro/config.yaml)")
	flags.String("log-file", "", "append logs to this file (disabled when empty)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.Int("work", 0, "work session length in seconds")
	flags.Int("break", 0, "short break length in seconds")
	flags.Int("long-break", 0, "long break length in seconds")
	flags.Int("cycle", 0, "completed work sessions per long break")
	flags.Duration("tick", 0, "countdown tick interval")

	bindings := map[string]string{
		keyConfig:           "config",
		keyLogFile:          "log-file",
		keyLogLevel:         "log-level",
		keyWorkSeconds:      "work",
		keyBreakSeconds:     "break",
		keyLongBreakSeconds: "long-break",
		keyLongBreakCycle:   "cycle",
		keyTickInterval:     "tick",
	}
	for key, flag := range bindings {
		// BindPFlag only fails for a nil flag.
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	root.AddCommand(
		newTUICommand(v),
		newConfigCommand(v),
	)
	return root
}

func newTUICommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launch(cmd, v, launchTUIFunc)
		},
	}
}

func launch(cmd *cobra.Command, v *viper.Viper, front func(*cobra.Command, *runtime) error) error {
	rt, err := newRuntime(v)
	if err != nil {
		return err
	}
	defer rt.close()
	return front(cmd, rt)
}
