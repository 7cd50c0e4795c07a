// Package converter ties the codecs and the assistant together the way the
// encode and decode actions of the user interface need them.
package converter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wizzomafizzo/dotdash/internal/assistant"
	"github.com/wizzomafizzo/dotdash/internal/codec/morse"
	"github.com/wizzomafizzo/dotdash/internal/codec/shift"
	"github.com/wizzomafizzo/dotdash/internal/history"
	"github.com/wizzomafizzo/dotdash/internal/logging"
)

var (
	ErrUnknownMode = errors.New("unknown encoding mode")
	ErrInvalidKey  = errors.New("key must be an integer")
)

type Mode string

const (
	ModeShift Mode = "shift"
	ModeMorse Mode = "morse"
)

// ParseMode accepts the short names and the display labels, ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shift", "shift cipher":
		return ModeShift, nil
	case "morse", "morse code":
		return ModeMorse, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Label is the display name of the mode.
func (m Mode) Label() string {
	switch m {
	case ModeShift:
		return "Shift Cipher"
	case ModeMorse:
		return "Morse Code"
	default:
		return string(m)
	}
}

type Direction string

const (
	Encode Direction = "encode"
	Decode Direction = "decode"
)

// ParseKey parses a shift key. Any signed integer is accepted.
func ParseKey(s string) (int, error) {
	key, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	return key, nil
}

type Request struct {
	Mode      Mode
	Direction Direction
	Text      string
	Key       int
}

type Result struct {
	Output string
	Hint   string
}

// Recorder persists completed conversions. *history.Store implements it.
type Recorder interface {
	Record(ctx context.Context, e history.Entry) error
}

type Converter struct {
	assistant *assistant.Assistant
	recorder  Recorder
}

// New creates a converter. recorder may be nil.
func New(a *assistant.Assistant, recorder Recorder) *Converter {
	if a == nil {
		a = assistant.New(nil)
	}
	return &Converter{assistant: a, recorder: recorder}
}

// Convert runs one encode or decode pass. Encoding hints on the input text,
// decoding hints on the decoded output.
func (c *Converter) Convert(ctx context.Context, req Request) (Result, error) {
	logger := logging.Get(ctx)
	text := strings.TrimSpace(req.Text)

	output, err := transform(req.Mode, req.Direction, text, req.Key)
	if err != nil {
		logger.Debug().Err(err).
			Str("mode", string(req.Mode)).
			Str("direction", string(req.Direction)).
			Msg("Conversion failed")
		return Result{}, err
	}

	hintSource := text
	if req.Direction == Decode {
		hintSource = output
	}
	result := Result{Output: output, Hint: c.assistant.Hint(hintSource)}

	logger.Debug().
		Str("mode", string(req.Mode)).
		Str("direction", string(req.Direction)).
		Int("input_len", len(text)).
		Int("output_len", len(output)).
		Msg("Converted text")

	if c.recorder != nil {
		entry := history.Entry{
			Mode:      string(req.Mode),
			Direction: string(req.Direction),
			Input:     text,
			Output:    output,
		}
		if req.Mode == ModeShift {
			entry.Key = req.Key
		}
		if err := c.recorder.Record(ctx, entry); err != nil {
			logger.Warn().Err(err).Msg("Failed to record conversion history")
		}
	}

	return result, nil
}

// Hint exposes the assistant for callers that only want a hint.
func (c *Converter) Hint(text string) string {
	return c.assistant.Hint(text)
}

func transform(mode Mode, direction Direction, text string, key int) (string, error) {
	switch direction {
	case Encode, Decode:
	default:
		return "", fmt.Errorf("unknown direction %q", direction)
	}

	switch mode {
	case ModeShift:
		if direction == Encode {
			return shift.Encode(text, key), nil
		}
		out, err := shift.Decode(text, key)
		if err != nil {
			return "", fmt.Errorf("shift decode failed: %w", err)
		}
		return out, nil
	case ModeMorse:
		if direction == Encode {
			return morse.Encode(text), nil
		}
		return morse.Decode(text), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}
