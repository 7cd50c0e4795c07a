package main

import (
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/dotdash/internal/session"
)

// createTableCommand creates the Morse table command.
func createTableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Show the Morse code table",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			session.WriteTable(cmd.OutOrStdout())
		},
	}
}
