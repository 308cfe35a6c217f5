package types

import (
	"fmt"
	"strconv"
)

// NumberType distinguishes the two timing numbers a statement can carry.
type NumberType int

const (
	// Delay is the tick offset from animation start, written with an '@' prefix.
	Delay NumberType = iota
	// Duration is the interpolation length in ticks, written with a '%' prefix.
	Duration
)

const (
	// DelayPrefix marks a delay number token.
	DelayPrefix = '@'
	// DurationPrefix marks a duration number token.
	DurationPrefix = '%'
)

// String implements Stringer.
func (t NumberType) String() string {
	switch t {
	case Delay:
		return "delay"
	case Duration:
		return "duration"
	}
	return fmt.Sprintf("NumberType(%d)", int(t))
}

// Number is a parsed timing token such as "@10" or "%20".
type Number struct {
	Type  NumberType
	Value uint32
}

// String re-serializes the number in source form.
func (n Number) String() string {
	prefix := DelayPrefix
	if n.Type == Duration {
		prefix = DurationPrefix
	}
	return fmt.Sprintf("%c%d", prefix, n.Value)
}

// HasNumberPrefix reports whether the token starts with a timing prefix.
func HasNumberPrefix(token string) bool {
	if token == "" {
		return false
	}
	return token[0] == DelayPrefix || token[0] == DurationPrefix
}

// ParseNumber parses a prefixed timing token. The first character selects the
// NumberType and the remainder must be a non-negative integer.
func ParseNumber(token string) (Number, error) {
	if token == "" {
		return Number{}, fmt.Errorf("empty number token")
	}
	var typ NumberType
	switch token[0] {
	case DelayPrefix:
		typ = Delay
	case DurationPrefix:
		typ = Duration
	default:
		return Number{}, fmt.Errorf("number %q has no '%c' or '%c' prefix", token, DelayPrefix, DurationPrefix)
	}
	value, err := strconv.ParseUint(token[1:], 10, 32)
	if err != nil {
		return Number{}, fmt.Errorf("number %q: invalid value %q", token, token[1:])
	}
	return Number{Type: typ, Value: uint32(value)}, nil
}

// NumberSet is a fully populated (delay, duration) pair. Statements and blocks
// without explicit numbers inherit the enclosing block's set, so a partial
// pair never exists.
type NumberSet struct {
	Delay    uint32
	Duration uint32
}

// With returns a copy with the field matching n's type replaced.
func (s NumberSet) With(n Number) NumberSet {
	switch n.Type {
	case Delay:
		s.Delay = n.Value
	case Duration:
		s.Duration = n.Value
	}
	return s
}
