package cli

import (
	"errors"
	"fmt"
	"os"

	"pomodoro/internal/storage"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrConfigExists indicates config init would overwrite a file.
var ErrConfigExists = errors.New("config file already exists (use --force to overwrite)")

func newConfigCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}
	cmd.AddCommand(newConfigShowCommand(v), newConfigInitCommand(v))
	return cmd
}

func newConfigShowCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective config as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, configPath, err := resolveConfig(v)
			if err != nil {
				return err
			}

			serialized, err := storage.MarshalConfig("config.yaml", config)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "# file: %s\n", configPath)
			_, _ = out.Write(serialized)
			return nil
		},
	}
}

func newConfigInitCommand(v *viper.Viper) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective config to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := configFilePath(v)
			if err != nil {
				return err
			}
			if _, err := os.Stat(configPath); err == nil && !force {
				return fmt.Errorf("%w: %s", ErrConfigExists, configPath)
			}

			config, _, err := resolveConfig(v)
			if err != nil {
				return err
			}
			if err := storage.SaveConfig(configPath, config); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
