// Package dispa provides the dispa timeline compiler as a library.
//
// Dispa is a Go port of the dispa animation compiler: it reads a small
// timeline-description language (timed transform statements, nested timing
// blocks) and emits mcfunction command text driven by a per-animation
// scoreboard timer.
//
// # Basic Usage
//
// Create a compiler and compile a source string:
//
//	compiler := dispa.New()
//
//	compiled, err := compiler.CompileString("door.dspa", src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(compiled.Contents)
//
// The returned CompiledFile carries the object and animation names the
// file's scoreboard objective is built from, plus the generated text. The
// trigger line for the shared tick-dispatch function is available via
// Trigger.
package dispa

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dispa-lang/dispa/pkg/emit"
	"github.com/dispa-lang/dispa/pkg/parser"
	"github.com/dispa-lang/dispa/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/dispa-lang/dispa" without subpackages.
type (
	// CompiledFile is one compiled source file.
	CompiledFile = types.CompiledFile

	// CompileError is a diagnostic tied to a source location.
	CompileError = types.CompileError

	// Position is a 1-based line:column source location.
	Position = types.Position

	// Program is a parsed, validated statement sequence.
	Program = types.Program
)

// Compiler compiles dspa timeline sources to mcfunction text.
type Compiler struct {
	config compilerConfig
}

type compilerConfig struct {
	namespace string
}

// Option configures a Compiler.
type Option func(*compilerConfig)

// WithNamespace sets the function namespace used in trigger lines.
// Defaults to "de".
func WithNamespace(ns string) Option {
	return func(c *compilerConfig) {
		c.namespace = ns
	}
}

// New creates a Compiler.
func New(opts ...Option) *Compiler {
	config := compilerConfig{namespace: "de"}
	for _, opt := range opts {
		opt(&config)
	}
	return &Compiler{config: config}
}

// CompileString compiles one source file's text. path is used for
// diagnostics and for the default object name (the file stem) when the
// source has no object declaration.
func (c *Compiler) CompileString(path, src string) (*CompiledFile, error) {
	prog, err := parser.ParseString(path, src)
	if err != nil {
		return nil, err
	}

	object, animation := Names(prog, path)
	return &CompiledFile{
		Path:          path,
		ObjectName:    object,
		AnimationName: animation,
		Contents:      emit.File(prog, object, animation),
	}, nil
}

// CompileFile reads and compiles one source file.
func (c *Compiler) CompileFile(path string) (*CompiledFile, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return c.CompileString(path, string(src))
}

// Trigger renders the compiled file's entry for the shared tick-dispatch
// function. funcPath is the function's namespace-relative path (no
// extension).
func (c *Compiler) Trigger(compiled *CompiledFile, funcPath string) string {
	return emit.TriggerLine(compiled.ObjectName, compiled.AnimationName, c.config.namespace, funcPath)
}

// Names resolves the object/animation pair for a parsed program. An absent
// object declaration falls back to the file stem; an absent animation name
// falls back to the object name.
func Names(prog *types.Program, path string) (object, animation string) {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	object, animation = stem, stem
	for _, stmt := range prog.Statements {
		if name, ok := stmt.(types.ObjectName); ok {
			return name.Object, name.Animation
		}
	}
	return object, animation
}
