package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// ErrCancelled is returned when the user aborts with Ctrl+C or closes input.
var ErrCancelled = errors.New("cancelled by user")

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(string) (string, error)
	AppendHistory(string)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter. words, if given, are
// offered as Tab completions for the first word of a line.
func NewLinerPrompter(words ...string) Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	if len(words) > 0 {
		line.SetCompleter(func(input string) []string {
			var matches []string
			for _, w := range words {
				if strings.HasPrefix(w, strings.ToLower(input)) {
					matches = append(matches, w)
				}
			}
			return matches
		})
	}
	return &LinerPrompter{State: line}
}

// TextInputWithPrompter reads one line using a cyan prompt. Aborts and EOF
// become ErrCancelled.
func TextInputWithPrompter(prompter Prompter, prompt string) (string, error) {
	result, err := prompter.Prompt(color.CyanString(prompt))
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("text input with prompter failed: %w", err)
	}
	return result, nil
}

// Scripted replays a fixed list of lines, then reports EOF. It records the
// prompts it was shown.
type Scripted struct {
	Prompts []string
	History []string
	lines   []string
	Closed  bool
}

// NewScripted creates a prompter that answers with lines in order.
func NewScripted(lines ...string) *Scripted {
	return &Scripted{lines: lines}
}

func (s *Scripted) Prompt(p string) (string, error) {
	s.Prompts = append(s.Prompts, p)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *Scripted) AppendHistory(item string) {
	s.History = append(s.History, item)
}

func (s *Scripted) Close() error {
	s.Closed = true
	return nil
}
