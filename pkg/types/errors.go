package types

import (
	"errors"
	"fmt"
)

// CompileError is a diagnostic tied to a source location. Every parse and
// generation failure is reported as one of these.
type CompileError struct {
	Path string
	Pos  Position
	Err  error
}

// NewCompileError wraps err with the file and position it occurred at.
func NewCompileError(file FileInfo, pos Position, err error) *CompileError {
	return &CompileError{Path: file.Path, Pos: pos, Err: err}
}

// Error implements error.
func (e *CompileError) Error() string {
	return fmt.Sprintf("%s:%s: %s", e.Path, e.Pos, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// Structural errors abort the rest of a file's parse.
var (
	ErrUnbalancedBrackets = errors.New("unbalanced brackets: '}' without matching '{'")
	ErrUnclosedBlock      = errors.New("unbalanced brackets: block not closed before end of file")
	ErrWrongSeparator     = errors.New("statement not terminated with ';' before '}'")
	ErrMissingEnd         = errors.New("missing end statement")
	ErrEmptyFile          = errors.New("file contains no statements")
	ErrMissingKeyword     = errors.New("statement has timing numbers but no keyword")
)

// ArgumentCountError reports a keyword called with the wrong number of
// arguments.
type ArgumentCountError struct {
	Keyword string
	Want    int
	AtLeast bool
	Got     int
}

func (e *ArgumentCountError) Error() string {
	if e.AtLeast {
		return fmt.Sprintf("%s expects at least %d arguments, found %d", e.Keyword, e.Want, e.Got)
	}
	return fmt.Sprintf("%s expects %d arguments, found %d", e.Keyword, e.Want, e.Got)
}

// InvalidNameError reports a name containing characters outside [A-Za-z0-9_-].
type InvalidNameError struct {
	Kind string
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("%s %q contains invalid characters", e.Kind, e.Name)
}

// InvalidKeywordError reports an unknown statement keyword.
type InvalidKeywordError struct {
	Keyword string
}

func (e *InvalidKeywordError) Error() string {
	return fmt.Sprintf("keyword %q is invalid", e.Keyword)
}

// DuplicateNumberError reports two timing numbers of the same type on one
// statement.
type DuplicateNumberError struct {
	Type NumberType
}

func (e *DuplicateNumberError) Error() string {
	return fmt.Sprintf("both numbers are of type %s", e.Type)
}

// WrongNumberTypeError reports a timing number where the other kind is
// required (end takes a delay, never a duration).
type WrongNumberTypeError struct {
	Keyword string
	Want    NumberType
	Got     NumberType
}

func (e *WrongNumberTypeError) Error() string {
	return fmt.Sprintf("%s requires a %s number, found %s", e.Keyword, e.Want, e.Got)
}

// InvalidIntegerError reports an unparseable integer token.
type InvalidIntegerError struct {
	Token string
}

func (e *InvalidIntegerError) Error() string {
	return fmt.Sprintf("%q is not a valid non-negative integer", e.Token)
}

// InvalidCoordinateError reports an unparseable coordinate token.
type InvalidCoordinateError struct {
	Token string
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("coordinate %q is not a valid number", e.Token)
}

// InvalidAxisError reports an axis argument that is neither x/y/z nor a
// bracketed 3-tuple.
type InvalidAxisError struct {
	Token string
}

func (e *InvalidAxisError) Error() string {
	return fmt.Sprintf("axis %q must be x, y, z, or [a,b,c]", e.Token)
}

// InvalidStateError reports a malformed block state list.
type InvalidStateError struct {
	State string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("block state %q is malformed", e.State)
}

// InvalidEntityTypeError reports a spawn type outside the display-entity set.
type InvalidEntityTypeError struct {
	Type string
}

func (e *InvalidEntityTypeError) Error() string {
	return fmt.Sprintf("entity type %q is not summonable (expected one of %v)", e.Type, EntityTypes)
}

// MissingAnimationNameError reports an object declaration with a ':' but no
// animation name after it.
type MissingAnimationNameError struct {
	Argument string
}

func (e *MissingAnimationNameError) Error() string {
	return fmt.Sprintf("object declaration %q is missing an animation name after ':'", e.Argument)
}
