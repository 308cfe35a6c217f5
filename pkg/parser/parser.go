// Package parser turns statement buffers into a validated Program. It
// resolves block-scoped timing defaults, validates each keyword's arguments,
// and tracks per-entity transform state so '~' relative coordinates can be
// resolved at parse time.
package parser

import (
	"errors"
	"strings"

	"github.com/dispa-lang/dispa/pkg/batch"
	"github.com/dispa-lang/dispa/pkg/lexer"
	"github.com/dispa-lang/dispa/pkg/types"
)

// Parser consumes one file's buffer stream. All state is file-local: a fresh
// Parser is created per source file, so files can be compiled in parallel.
type Parser struct {
	file    types.FileInfo
	scanner *lexer.Scanner

	// scopes is the block-scope stack. The base entry is the (0,0) default
	// and is never popped.
	scopes []types.NumberSet

	// entities maps entity name to its last-known transform, for relative
	// coordinate resolution.
	entities map[string]types.Transformation
}

// New creates a parser over a TrackedChar stream.
func New(file types.FileInfo, chars []types.TrackedChar) *Parser {
	return &Parser{
		file:     file,
		scanner:  lexer.NewScanner(chars),
		scopes:   []types.NumberSet{{}},
		entities: make(map[string]types.Transformation),
	}
}

// ParseString is a convenience that tracks src and parses it in one step.
func ParseString(path, src string) (*types.Program, error) {
	chars, eof := lexer.Track(src)
	return New(types.FileInfo{Path: path, EOF: eof}, chars).Parse()
}

// Parse drives the buffer stream to completion. Statement-level errors are
// collected so siblings still get parsed; structural errors (bracket stack
// underflow, unclosed blocks, a missing ';' or keyword) abort immediately
// since positions after them would be meaningless.
func (p *Parser) Parse() (*types.Program, error) {
	var results []batch.Result[types.Statement]
	sawEnd := false

	for {
		buf, ok := p.scanner.Next()
		if !ok {
			break
		}

		switch buf.Separator() {
		case '{':
			if err := p.pushScope(buf); err != nil {
				results = append(results, batch.Fail[types.Statement](err))
			}
		case '}':
			if buf.Text != "}" {
				return nil, types.NewCompileError(p.file, buf.Pos, types.ErrWrongSeparator)
			}
			if len(p.scopes) == 1 {
				return nil, types.NewCompileError(p.file, buf.Pos, types.ErrUnbalancedBrackets)
			}
			p.scopes = p.scopes[:len(p.scopes)-1]
		default:
			stmt, err := p.parseStatement(buf)
			if err != nil {
				if errors.Is(err, types.ErrMissingKeyword) {
					return nil, err
				}
				results = append(results, batch.Fail[types.Statement](err))
				continue
			}
			if stmt == nil {
				continue
			}
			if _, isEnd := stmt.(types.End); isEnd {
				sawEnd = true
			}
			results = append(results, batch.Ok(stmt))
		}
	}

	if len(p.scopes) > 1 {
		return nil, types.NewCompileError(p.file, p.file.EOF, types.ErrUnclosedBlock)
	}

	statements, err := batch.Collect(results)
	if err != nil {
		return nil, err
	}
	if len(statements) == 0 {
		return nil, types.NewCompileError(p.file, p.file.EOF, types.ErrEmptyFile)
	}
	if !sawEnd {
		return nil, types.NewCompileError(p.file, p.file.EOF, types.ErrMissingEnd)
	}
	return &types.Program{Statements: statements}, nil
}

func (p *Parser) currentScope() types.NumberSet {
	return p.scopes[len(p.scopes)-1]
}

// pushScope opens a block. The block header may carry zero, one, or two
// prefixed numbers; whatever it omits is inherited from the enclosing block.
// On a malformed header the inherited pair is pushed anyway so the bracket
// stack stays balanced, and the error is reported with the statement batch.
func (p *Parser) pushScope(buf lexer.Buffer) error {
	set := p.currentScope()
	defer func() { p.scopes = append(p.scopes, set) }()

	header := strings.TrimSpace(strings.TrimSuffix(buf.Text, "{"))
	words := strings.Fields(header)
	if len(words) > 2 {
		return types.NewCompileError(p.file, buf.Pos,
			&types.ArgumentCountError{Keyword: "block", Want: 2, Got: len(words)})
	}

	var numbers []types.Number
	for _, word := range words {
		n, err := types.ParseNumber(word)
		if err != nil {
			return types.NewCompileError(p.file, buf.Pos, err)
		}
		numbers = append(numbers, n)
	}
	if len(numbers) == 2 && numbers[0].Type == numbers[1].Type {
		return types.NewCompileError(p.file, buf.Pos, &types.DuplicateNumberError{Type: numbers[0].Type})
	}
	for _, n := range numbers {
		set = set.With(n)
	}
	return nil
}
