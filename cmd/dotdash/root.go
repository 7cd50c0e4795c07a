package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/dotdash/internal/converter"
)

// createNewRootCommand creates the main root command that shows help by default.
func createNewRootCommand(env *environment) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dotdash",
		Short:         "Convert text to and from a shift cipher or Morse code",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when run without subcommands
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file (default is the XDG config file)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level override (trace, debug, info, warn, error)")

	rootCmd.AddCommand(
		createConvertCommand(env, converter.Encode),
		createConvertCommand(env, converter.Decode),
		createHintCommand(env),
		createInteractiveCommand(env),
		createTableCommand(),
		createHistoryCommand(env),
		createInitCommand(env),
		createValidateCommand(env),
	)

	return rootCmd
}

// configPathFromCommand returns the --config value or the default config path.
func configPathFromCommand(env *environment, cmd *cobra.Command) (string, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return "", fmt.Errorf("failed to get config flag: %w", err)
	}
	if configPath == "" {
		configPath = env.storage.GetConfigPath()
	}
	return configPath, nil
}
