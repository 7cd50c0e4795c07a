// Package assistant picks a canned hint for a piece of text based on its
// case, digits and punctuation.
package assistant

import (
	"math/rand/v2"
	"strings"
	"time"
	"unicode"
)

const (
	ReadyMessage     = "🤖 AI Assistant ready to help!"
	PromptMessage    = "🤖 Please enter some text first!"
	UppercaseMessage = "🤖 Tip: Your text is in uppercase — ideal for Morse encoding!"
	LowercaseMessage = "🤖 Your text is lowercase — you might want to convert to uppercase for Morse."
	NumericMessage   = "🤖 That looks like numeric data — use Shift Cipher for best results."
	SentenceMessage  = "🤖 This seems like a sentence — consider encoding it in Morse for readability."
)

// DefaultHints is the pool used when no other rule applies.
var DefaultHints = []string{
	"🤖 Try a higher key for more secure encoding!",
	"🤖 Did you know you can mix Morse and Shift Cipher for fun?",
	"🤖 Keep your message short and simple for clean Morse output.",
	"🤖 Add a numeric key to strengthen your cipher encoding.",
}

// Source picks the generic hint. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithHints replaces the generic hint pool. An empty pool is ignored.
func WithHints(hints []string) Option {
	return func(a *Assistant) {
		if len(hints) > 0 {
			a.hints = append([]string(nil), hints...)
		}
	}
}

// Assistant is safe for concurrent use only if its Source is.
type Assistant struct {
	src   Source
	hints []string
}

// New returns an Assistant drawing from src, or from a time-seeded
// generator when src is nil.
func New(src Source, opts ...Option) *Assistant {
	if src == nil {
		seed := uint64(time.Now().UnixNano()) //nolint:gosec // not security sensitive
		src = rand.New(rand.NewPCG(seed, seed>>1))
	}
	a := &Assistant{src: src, hints: append([]string(nil), DefaultHints...)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Hint returns the message for the first rule text matches.
func (a *Assistant) Hint(text string) string {
	switch {
	case strings.TrimSpace(text) == "":
		return PromptMessage
	case isUpper(text):
		return UppercaseMessage
	case isLower(text):
		return LowercaseMessage
	case isDigits(text):
		return NumericMessage
	case strings.ContainsAny(text, ".?!"):
		return SentenceMessage
	default:
		return a.hints[a.src.IntN(len(a.hints))]
	}
}

// Hints returns the generic pool in use.
func (a *Assistant) Hints() []string {
	return append([]string(nil), a.hints...)
}

// isUpper reports whether text has at least one cased rune and no
// lowercase or titlecase ones.
func isUpper(text string) bool {
	cased := false
	for _, r := range text {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}

func isLower(text string) bool {
	cased := false
	for _, r := range text {
		switch {
		case unicode.IsUpper(r), unicode.IsTitle(r):
			return false
		case unicode.IsLower(r):
			cased = true
		}
	}
	return cased
}

func isDigits(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
