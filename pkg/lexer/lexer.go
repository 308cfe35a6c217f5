// Package lexer turns raw source text into statement buffers. It tracks a
// line:column position per character and splits on the statement and block
// separators (';', '{', '}') while respecting comments and quoted spans.
package lexer

import (
	"strings"
	"unicode"

	"github.com/dispa-lang/dispa/pkg/types"
)

// Buffer is one raw statement or block delimiter: the trimmed text (still
// including its terminating separator) plus the position of its first
// character.
type Buffer struct {
	Text string
	Pos  types.Position
}

// Separator reports the buffer's terminating character, or 0 when input ended
// without one.
func (b Buffer) Separator() byte {
	if b.Text == "" {
		return 0
	}
	last := b.Text[len(b.Text)-1]
	if !isSeparator(rune(last)) {
		return 0
	}
	return last
}

// Track converts source text into a TrackedChar stream and returns it with
// the end-of-file position. Positions are 1-based.
func Track(src string) ([]types.TrackedChar, types.Position) {
	chars := make([]types.TrackedChar, 0, len(src))
	pos := types.Position{Line: 1, Column: 1}
	for _, r := range src {
		chars = append(chars, types.TrackedChar{Pos: pos, Char: r})
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return chars, pos
}

// Scanner yields statement buffers from a TrackedChar stream. It is a
// forward-only, single-pass reader: once Next returns false the stream is
// exhausted.
type Scanner struct {
	chars []types.TrackedChar
	idx   int
}

// NewScanner wraps a TrackedChar stream.
func NewScanner(chars []types.TrackedChar) *Scanner {
	return &Scanner{chars: chars}
}

const quote = '\''

func isSeparator(r rune) bool {
	return r == ';' || r == '{' || r == '}'
}

// Next scans the next buffer. It returns false when only whitespace (or
// nothing) remains. A quote span suppresses both comment starts and
// separators, so quoted literals may embed ';' and '#'. An unclosed quote
// absorbs the rest of the input into one buffer, which is intentional.
func (s *Scanner) Next() (Buffer, bool) {
	var b strings.Builder
	var pos types.Position
	started := false
	commented := false
	quoted := false
	escaped := false

	for ; s.idx < len(s.chars); s.idx++ {
		tc := s.chars[s.idx]
		r := tc.Char

		if commented {
			if r == '\n' {
				commented = false
			}
			continue
		}
		if !quoted && r == '#' {
			commented = true
			continue
		}

		if !started {
			if unicode.IsSpace(r) {
				continue
			}
			pos = tc.Pos
			started = true
		}

		if r == quote && !escaped {
			quoted = !quoted
		}
		escaped = quoted && r == '\\' && !escaped

		b.WriteRune(r)
		if !quoted && isSeparator(r) {
			s.idx++
			break
		}
	}

	text := strings.TrimSpace(b.String())
	if text == "" && s.idx >= len(s.chars) {
		return Buffer{}, false
	}
	return Buffer{Text: text, Pos: pos}, true
}
