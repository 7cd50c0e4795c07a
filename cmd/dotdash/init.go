package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/dotdash/internal/config"
)

// createInitCommand creates the command that writes the default config.
func createInitCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if printOnly, _ := cmd.Flags().GetBool("print"); printOnly {
				data, err := config.DefaultConfigYAML()
				if err != nil {
					return err //nolint:wrapcheck // already wrapped
				}
				_, _ = cmd.OutOrStdout().Write(data)
				return nil
			}

			configPath, err := configPathFromCommand(env, cmd)
			if err != nil {
				return err
			}

			force, _ := cmd.Flags().GetBool("force")
			exists, err := afero.Exists(env.fs, configPath)
			if err != nil {
				return fmt.Errorf("failed to check config file: %w", err)
			}
			if exists && !force {
				return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
			}

			if err := config.DefaultConfig().Save(env.fs, configPath); err != nil {
				return err //nolint:wrapcheck // Save errors name the failing step
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
	cmd.Flags().Bool("print", false, "Print the default config to stdout instead of writing it")

	return cmd
}
