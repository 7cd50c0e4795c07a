package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/dotdash/internal/assistant"
)

// createHintCommand creates the hint command.
func createHintCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hint [text...]",
		Short: "Ask the assistant for a hint about some text",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(env, cmd, false)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			hinter := a.conv.Hint
			if cmd.Flags().Changed("seed") {
				seed, _ := cmd.Flags().GetUint64("seed")
				seeded := assistant.New(rand.New(rand.NewPCG(seed, seed)),
					assistant.WithHints(a.cfg.Assistant.Hints))
				hinter = seeded.Hint
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), hinter(strings.TrimSpace(text)))
			return nil
		},
	}

	cmd.Flags().Uint64("seed", 0, "Seed for the random hint, for repeatable output")

	return cmd
}
