// Package shift implements the numeric shift cipher: every rune becomes its
// code point offset by a key, written as space-separated decimal integers.
package shift

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"
)

// ErrInvalidInput is returned when encoded text contains a token that is not
// an integer or that does not shift back into a valid rune.
var ErrInvalidInput = errors.New("invalid numeric input for shift decoding")

// Encode offsets every rune of message by key. Any key is accepted; the sums
// are computed without overflow, so values may exceed the int range.
func Encode(message string, key int) string {
	offset := big.NewInt(int64(key))
	var v big.Int
	var b strings.Builder
	for i, r := range []rune(message) {
		if i > 0 {
			b.WriteByte(' ')
		}
		v.SetInt64(int64(r))
		b.WriteString(v.Add(&v, offset).String())
	}
	return b.String()
}

// Decode reverses Encode. On failure the returned string is always empty.
func Decode(encoded string, key int) (string, error) {
	fields := strings.Fields(encoded)
	runes := make([]rune, 0, len(fields))
	offset := big.NewInt(int64(key))

	var v big.Int
	for _, token := range fields {
		if _, ok := v.SetString(token, 10); !ok {
			return "", fmt.Errorf("%w: %q is not an integer", ErrInvalidInput, token)
		}

		v.Sub(&v, offset)
		if !v.IsInt64() || v.Int64() < 0 || v.Int64() > utf8.MaxRune || !utf8.ValidRune(rune(v.Int64())) {
			return "", fmt.Errorf("%w: %q is not a character for key %d", ErrInvalidInput, token, key)
		}
		runes = append(runes, rune(v.Int64()))
	}

	return string(runes), nil
}
