package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/dotdash/internal/session"
)

// createInteractiveCommand creates the interactive session command.
func createInteractiveCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Start an interactive encode/decode session",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(env, cmd, true)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			opts := session.Options{
				Mode:  a.defaultMode(),
				Key:   strconv.Itoa(a.cfg.Key),
				Color: env.color,
			}
			if a.store != nil {
				opts.History = a.store
			}

			s := session.New(a.conv, env.newPrompter(), cmd.OutOrStdout(), opts)
			if err := s.Run(a.ctx); err != nil {
				return fmt.Errorf("interactive session failed: %w", err)
			}
			return nil
		},
	}
}
