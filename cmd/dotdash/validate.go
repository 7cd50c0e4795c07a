package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/dotdash/internal/config"
)

// createValidateCommand creates the validate command.
func createValidateCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long:  "Validate configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := configPathFromCommand(env, cmd)
			if err != nil {
				return err
			}

			exists, err := afero.Exists(env.fs, configPath)
			if err != nil {
				return fmt.Errorf("failed to check config file: %w", err)
			}
			if !exists {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No config file at %s, defaults are in use\n", configPath)
				return nil
			}

			if _, err := config.Load(env.fs, configPath); err != nil {
				return fmt.Errorf("validation error: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid: %s\n", configPath)
			return nil
		},
	}
}
