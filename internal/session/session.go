// Package session runs the interactive encode/decode loop: pick a mode, set a
// key, type text, read the output and the assistant's hint.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/wizzomafizzo/dotdash/internal/assistant"
	"github.com/wizzomafizzo/dotdash/internal/codec/morse"
	"github.com/wizzomafizzo/dotdash/internal/codec/shift"
	"github.com/wizzomafizzo/dotdash/internal/converter"
	"github.com/wizzomafizzo/dotdash/internal/history"
	"github.com/wizzomafizzo/dotdash/internal/logging"
	"github.com/wizzomafizzo/dotdash/internal/prompt"
)

// Messages shown for rejected input.
const (
	MsgInvalidKey     = "Key must be an integer!"
	MsgUnknownEncode  = "Unknown encoding mode."
	MsgUnknownDecode  = "Unknown decoding mode."
	MsgInvalidNumeric = "Invalid numeric input for shift decoding."
)

const defaultHistoryLimit = 10

// Commands lists the words the session understands, for Tab completion.
var Commands = []string{"encode", "decode", "mode", "key", "clear", "history", "table", "help", "quit", "exit"}

const helpText = `Commands:
  encode <text>     encode text with the current mode
  decode <text>     decode text with the current mode
  mode <shift|morse> switch mode
  key <n>           set the shift key
  clear             reset key and output
  history [n]       show the last n conversions
  table             show the Morse code table
  help              show this help
  quit              leave the session
Any other line is encoded with the current mode. A line starting with a
command word runs that command; use 'encode <text>' to encode such a line.
`

// Lister reads stored conversions. *history.Store implements it.
type Lister interface {
	List(ctx context.Context, limit int) ([]history.Entry, error)
}

type Options struct {
	History Lister
	Mode    converter.Mode
	Key     string
	// Color enables ANSI colours in the output.
	Color bool
}

type Session struct {
	conv       *converter.Converter
	prompter   prompt.Prompter
	out        io.Writer
	history    Lister
	bold       *color.Color
	green      *color.Color
	yellow     *color.Color
	red        *color.Color
	mode       converter.Mode
	key        string
	lastOutput string
	status     string
}

func New(conv *converter.Converter, prompter prompt.Prompter, out io.Writer, opts Options) *Session {
	mode := opts.Mode
	if mode == "" {
		mode = converter.ModeShift
	}
	s := &Session{
		conv:     conv,
		prompter: prompter,
		out:      out,
		history:  opts.History,
		bold:     color.New(color.Bold),
		green:    color.New(color.FgGreen),
		yellow:   color.New(color.FgYellow),
		red:      color.New(color.FgRed),
		mode:     mode,
		key:      opts.Key,
		status:   assistant.ReadyMessage,
	}
	for _, c := range []*color.Color{s.bold, s.green, s.yellow, s.red} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// Mode returns the current mode.
func (s *Session) Mode() converter.Mode { return s.mode }

// Key returns the key as last entered, which may not be a valid integer.
func (s *Session) Key() string { return s.key }

// LastOutput returns the output of the last successful conversion.
func (s *Session) LastOutput() string { return s.lastOutput }

// Status returns the current assistant message.
func (s *Session) Status() string { return s.status }

// Run reads lines until quit, EOF or Ctrl+C. Input errors are reported and
// the loop continues; only prompter failures end it with an error.
func (s *Session) Run(ctx context.Context) error {
	defer func() { _ = s.prompter.Close() }()

	logger := logging.Get(ctx)
	logger.Debug().Str("mode", string(s.mode)).Msg("Session started")

	_, _ = s.bold.Fprintln(s.out, "dotdash: text, shift cipher and Morse code")
	_, _ = fmt.Fprintln(s.out, "Type 'help' for commands.")
	s.printStatus()

	for {
		if err := ctx.Err(); err != nil {
			return err //nolint:wrapcheck // context errors are self-explanatory
		}

		line, err := prompt.TextInputWithPrompter(s.prompter, s.promptText())
		if errors.Is(err, prompt.ErrCancelled) {
			logger.Debug().Msg("Session ended by user")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s.prompter.AppendHistory(line)

		if quit := s.Handle(ctx, line); quit {
			logger.Debug().Msg("Session ended by user")
			return nil
		}
	}
}

// Handle executes one line and reports whether the session should end.
func (s *Session) Handle(ctx context.Context, line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return true
	case "help":
		_, _ = fmt.Fprint(s.out, helpText)
	case "encode":
		s.convert(ctx, converter.Encode, arg)
	case "decode":
		s.convert(ctx, converter.Decode, arg)
	case "mode":
		s.setMode(arg)
	case "key":
		s.key = arg
		_, _ = fmt.Fprintf(s.out, "Key set to %q\n", arg)
	case "clear":
		s.clear()
	case "history":
		s.showHistory(ctx, arg)
	case "table":
		WriteTable(s.out)
	default:
		s.convert(ctx, converter.Encode, line)
	}
	return false
}

func (s *Session) convert(ctx context.Context, direction converter.Direction, text string) {
	req := converter.Request{Mode: s.mode, Direction: direction, Text: text}

	if s.mode == converter.ModeShift {
		key, err := converter.ParseKey(s.key)
		if err != nil {
			s.printError(MsgInvalidKey)
			return
		}
		req.Key = key
	}

	result, err := s.conv.Convert(ctx, req)
	switch {
	case errors.Is(err, shift.ErrInvalidInput):
		// the failed decode still replaces the output with an empty one
		s.printError(MsgInvalidNumeric)
		s.lastOutput = ""
		s.status = s.conv.Hint("")
		s.printStatus()
		return
	case errors.Is(err, converter.ErrUnknownMode):
		if direction == converter.Decode {
			s.printError(MsgUnknownDecode)
		} else {
			s.printError(MsgUnknownEncode)
		}
		return
	case err != nil:
		s.printError(err.Error())
		return
	}

	s.lastOutput = result.Output
	s.status = result.Hint
	_, _ = fmt.Fprintf(s.out, "%s %s\n", s.green.Sprint("Output:"), result.Output)
	s.printStatus()
}

func (s *Session) setMode(arg string) {
	if arg == "" {
		_, _ = fmt.Fprintf(s.out, "Mode: %s\n", s.mode.Label())
		return
	}
	mode, err := converter.ParseMode(arg)
	if err != nil {
		s.printError(MsgUnknownEncode)
		return
	}
	s.mode = mode
	_, _ = fmt.Fprintf(s.out, "Mode: %s\n", mode.Label())
}

func (s *Session) clear() {
	s.key = ""
	s.lastOutput = ""
	s.status = assistant.ReadyMessage
	s.printStatus()
}

func (s *Session) showHistory(ctx context.Context, arg string) {
	if s.history == nil {
		_, _ = fmt.Fprintln(s.out, "History is disabled")
		return
	}

	limit := defaultHistoryLimit
	if arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			s.printError("History limit must be a non-negative integer")
			return
		}
		limit = n
	}

	entries, err := s.history.List(ctx, limit)
	if err != nil {
		logging.Get(ctx).Error().Err(err).Msg("Failed to list history")
		s.printError("Could not read history")
		return
	}
	_, _ = fmt.Fprint(s.out, history.Format(entries))
}

func (s *Session) promptText() string {
	if s.mode == converter.ModeShift {
		key := s.key
		if key == "" {
			key = "-"
		}
		return fmt.Sprintf("[%s key=%s]> ", s.mode, key)
	}
	return fmt.Sprintf("[%s]> ", s.mode)
}

func (s *Session) printStatus() {
	_, _ = s.yellow.Fprintln(s.out, s.status)
}

func (s *Session) printError(msg string) {
	_, _ = s.red.Fprintln(s.out, "Error: "+msg)
}

// WriteTable prints the Morse table in four columns.
func WriteTable(w io.Writer) {
	entries := morse.Table()
	const columns = 4
	for i, e := range entries {
		char := string(e.Char)
		if e.Char == ' ' {
			char = "␣"
		}
		_, _ = fmt.Fprintf(w, "%-2s %-8s", char, e.Code)
		if (i+1)%columns == 0 || i == len(entries)-1 {
			_, _ = fmt.Fprintln(w)
		} else {
			_, _ = fmt.Fprint(w, "  ")
		}
	}
}
