package parser

import (
	"github.com/dispa-lang/dispa/pkg/types"
)

// recognized is the outcome of splitting a statement's leading tokens into
// timing numbers and a keyword.
type recognized struct {
	keyword string
	set     types.NumberSet
	args    []string
	// explicit holds the prefixed numbers found, in source order. Keyword
	// handlers use it to tell an inherited duration from a '%' on the
	// statement itself.
	explicit []types.Number
}

// recognizeNumbers classifies a statement's words against the inherited
// NumberSet. Zero prefixed numbers keep the inherited pair, one overrides the
// matching field only, two replace the pair entirely and must differ in type.
func recognizeNumbers(words []string, inherited types.NumberSet) (recognized, error) {
	if len(words) == 0 || !types.HasNumberPrefix(words[0]) {
		return recognized{keyword: first(words), set: inherited, args: rest(words)}, nil
	}

	n1, err := types.ParseNumber(words[0])
	if err != nil {
		return recognized{}, err
	}
	if len(words) < 2 {
		return recognized{}, types.ErrMissingKeyword
	}
	if !types.HasNumberPrefix(words[1]) {
		return recognized{
			keyword:  words[1],
			set:      inherited.With(n1),
			args:     words[2:],
			explicit: []types.Number{n1},
		}, nil
	}

	n2, err := types.ParseNumber(words[1])
	if err != nil {
		return recognized{}, err
	}
	if n1.Type == n2.Type {
		return recognized{}, &types.DuplicateNumberError{Type: n1.Type}
	}
	if len(words) < 3 {
		return recognized{}, types.ErrMissingKeyword
	}
	return recognized{
		keyword:  words[2],
		set:      types.NumberSet{}.With(n1).With(n2),
		args:     words[3:],
		explicit: []types.Number{n1, n2},
	}, nil
}

func first(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return words[0]
}

func rest(words []string) []string {
	if len(words) <= 1 {
		return nil
	}
	return words[1:]
}
