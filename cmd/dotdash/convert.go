package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/dotdash/internal/converter"
)

// createConvertCommand creates the encode or decode command.
func createConvertCommand(env *environment, direction converter.Direction) *cobra.Command {
	short := "Encode text with a shift cipher or Morse code"
	example := `  dotdash encode -m morse "SOS"
  dotdash encode -k 3 hello
  echo "hello world" | dotdash encode -m morse`
	if direction == converter.Decode {
		short = "Decode shift cipher numbers or Morse code to text"
		example = `  dotdash decode -m morse "... --- ..."
  dotdash decode -k 3 "107 104 111 111 114"
  dotdash decode -m morse -- "-.- ---"`
	}

	cmd := &cobra.Command{
		Use:     string(direction) + " [text...]",
		Short:   short,
		Long:    short + ". Reads stdin when no text is given.",
		Example: example,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(env, cmd, true)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			req, err := buildRequest(cmd, a, direction, args)
			if err != nil {
				return err
			}

			result, err := a.conv.Convert(a.ctx, req)
			if err != nil {
				return fmt.Errorf("failed to %s text: %w", direction, err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Output)

			if showHint, _ := cmd.Flags().GetBool("hint"); showHint {
				hint := color.New(color.FgYellow)
				if !env.color {
					hint.DisableColor()
				}
				_, _ = hint.Fprintln(cmd.ErrOrStderr(), result.Hint)
			}
			return nil
		},
	}

	cmd.Flags().StringP("mode", "m", "", "Conversion mode: shift or morse (default from config)")
	cmd.Flags().StringP("key", "k", "", "Shift key, any integer (default from config)")
	cmd.Flags().Bool("hint", false, "Print the assistant hint to stderr")

	return cmd
}

func buildRequest(cmd *cobra.Command, a *app, direction converter.Direction, args []string) (converter.Request, error) {
	req := converter.Request{
		Mode:      a.defaultMode(),
		Direction: direction,
		Key:       a.cfg.Key,
	}

	if modeFlag, _ := cmd.Flags().GetString("mode"); modeFlag != "" {
		mode, err := converter.ParseMode(modeFlag)
		if err != nil {
			return req, err //nolint:wrapcheck // error names the mode
		}
		req.Mode = mode
	}

	if cmd.Flags().Changed("key") {
		keyFlag, _ := cmd.Flags().GetString("key")
		key, err := converter.ParseKey(keyFlag)
		if err != nil {
			return req, err //nolint:wrapcheck // error names the key
		}
		req.Key = key
	}

	text, err := readText(cmd.InOrStdin(), args)
	if err != nil {
		return req, err
	}
	req.Text = text

	return req, nil
}

// readText joins args with spaces, or reads all of in when there are none.
func readText(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
