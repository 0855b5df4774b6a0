// Released under an MIT license. See LICENSE.

// Package reader splits command lines into words.
//
// Words are separated by spaces or tabs. A word may be quoted with '...',
// which is taken literally, or with $'...', which interprets backslash
// escapes. An unquoted # starts a comment that runs to the end of the line.
package reader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/michaelmacinnis/adapted"
)

// ErrUnterminated is returned when a quoted word is missing its closing quote.
var ErrUnterminated = errors.New("unterminated quote")

// Word is a single word from a command line.
type Word struct {
	Text   string
	Quoted bool
}

// String returns the text of w.
func (w Word) String() string {
	return w.Text
}

// Split returns the words in line.
func Split(line string) ([]Word, error) {
	var (
		words []Word
		b     strings.Builder
		in    bool
		quote bool
	)

	flush := func() {
		if in {
			words = append(words, Word{Text: b.String(), Quoted: quote})
		}

		b.Reset()

		in = false
		quote = false
	}

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			flush()

		case c == '#' && !in:
			flush()
			return words, nil

		case c == '\'':
			end := strings.IndexByte(line[i+1:], '\'')
			if end < 0 {
				return nil, fmt.Errorf("%w: %s", ErrUnterminated, line[i:])
			}

			b.WriteString(line[i+1 : i+1+end])

			i += end + 1
			in = true
			quote = true

		case c == '$' && i+1 < len(line) && line[i+1] == '\'':
			end := escaped(line[i+2:])
			if end < 0 {
				return nil, fmt.Errorf("%w: %s", ErrUnterminated, line[i:])
			}

			s, err := adapted.ActualBytes(line[i+2 : i+2+end])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", line[i:i+3+end], err)
			}

			b.WriteString(s)

			i += end + 2
			in = true
			quote = true

		default:
			b.WriteByte(c)

			in = true
		}
	}

	flush()

	return words, nil
}

// Texts returns the text of each word in ws.
func Texts(ws []Word) []string {
	ts := make([]string, len(ws))
	for i, w := range ws {
		ts[i] = w.Text
	}

	return ts
}

// escaped returns the index of the first unescaped single quote in s or -1.
func escaped(s string) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '\'':
			return i
		}
	}

	return -1
}
