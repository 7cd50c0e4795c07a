// Package morse converts text to and from International Morse code.
//
// Letters are separated by a single space and words by the "/" token, so
// "HI THERE" encodes to ".... .. / - .... . .-. .". Characters outside the
// table degrade to Placeholder in both directions instead of failing.
package morse

import (
	"sort"
	"strings"
)

const (
	// Placeholder stands in for any character or code missing from the table.
	Placeholder = '?'

	// WordSeparator is the code assigned to the space character.
	WordSeparator = "/"

	wordDelimiter = " " + WordSeparator + " "
)

// Entry is one row of the code table.
type Entry struct {
	Code string
	Char rune
}

var codes = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".", 'F': "..-.",
	'G': "--.", 'H': "....", 'I': "..", 'J': ".---", 'K': "-.-", 'L': ".-..",
	'M': "--", 'N': "-.", 'O': "---", 'P': ".--.", 'Q': "--.-", 'R': ".-.",
	'S': "...", 'T': "-", 'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
	'Y': "-.--", 'Z': "--..",
	'1': ".----", '2': "..---", '3': "...--", '4': "....-", '5': ".....",
	'6': "-....", '7': "--...", '8': "---..", '9': "----.", '0': "-----",
	',': "--..--", '.': ".-.-.-", '?': "..--..", '/': "-..-.",
	'-': "-....-", '(': "-.--.", ')': "-.--.-", ' ': WordSeparator,
}

// chars is the inverse of codes; both are read-only after init.
var chars = func() map[string]rune {
	m := make(map[string]rune, len(codes))
	for r, code := range codes {
		if _, dup := m[code]; dup {
			panic("morse: duplicate code " + code)
		}
		m[code] = r
	}
	return m
}()

// Lookup returns the code for r. Letters must already be uppercase.
func Lookup(r rune) (string, bool) {
	code, ok := codes[r]
	return code, ok
}

// Reverse returns the character for a single code.
func Reverse(code string) (rune, bool) {
	r, ok := chars[code]
	return r, ok
}

// Table returns a copy of the code table sorted by character.
func Table() []Entry {
	entries := make([]Entry, 0, len(codes))
	for r, code := range codes {
		entries = append(entries, Entry{Char: r, Code: code})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Char < entries[j].Char })
	return entries
}

// Encode uppercases message and joins the code of every rune with a space.
func Encode(message string) string {
	upper := []rune(strings.ToUpper(message))
	out := make([]string, len(upper))
	for i, r := range upper {
		code, ok := codes[r]
		if !ok {
			code = string(Placeholder)
		}
		out[i] = code
	}
	return strings.Join(out, " ")
}

// Decode splits encoded into words on " / " and each word into codes on
// whitespace. Decoded words are joined with a single space.
func Decode(encoded string) string {
	words := strings.Split(encoded, wordDelimiter)
	decoded := make([]string, len(words))

	for i, word := range words {
		var b strings.Builder
		for _, code := range strings.Fields(word) {
			r, ok := chars[code]
			if !ok {
				r = Placeholder
			}
			b.WriteRune(r)
		}
		decoded[i] = b.String()
	}

	return strings.Join(decoded, " ")
}
