package types

import "fmt"

// Position is a line:column location in a source file (both 1-based).
type Position struct {
	Line   int
	Column int
}

// Add returns the position shifted right by n columns. Used to point error
// messages at a sub-token inside a statement buffer.
func (p Position) Add(n int) Position {
	return Position{Line: p.Line, Column: p.Column + n}
}

// Sub returns the position shifted left by n columns.
func (p Position) Sub(n int) Position {
	return Position{Line: p.Line, Column: p.Column - n}
}

// String implements Stringer ("line:column").
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// TrackedChar is a single input character with the position it was read at.
// The lexer produces exactly one per source character.
type TrackedChar struct {
	Pos  Position
	Char rune
}
