package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/dotdash/internal/history"
)

// createHistoryCommand creates the history command with its clear subcommand.
func createHistoryCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent conversions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withHistory(env, cmd, func(a *app) error {
				limit, _ := cmd.Flags().GetInt("limit")
				entries, err := a.store.List(a.ctx, limit)
				if err != nil {
					return fmt.Errorf("failed to list history: %w", err)
				}
				_, _ = fmt.Fprint(cmd.OutOrStdout(), history.Format(entries))
				return nil
			})
		},
	}

	cmd.Flags().IntP("limit", "n", 10, "Number of entries to show (0 for all)")

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all stored conversions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withHistory(env, cmd, func(a *app) error {
				n, err := a.store.Clear(a.ctx)
				if err != nil {
					return fmt.Errorf("failed to clear history: %w", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d conversions\n", n)
				return nil
			})
		},
	})

	return cmd
}

// withHistory opens the app with its history store and runs fn, or reports
// that history is turned off in config.
func withHistory(env *environment, cmd *cobra.Command, fn func(*app) error) error {
	a, err := openApp(env, cmd, false)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	if !a.cfg.History.Enabled {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "History is disabled")
		return nil
	}

	if err := a.openHistory(env); err != nil {
		return err
	}
	return fn(a)
}
