// Package parser turns raw source text into structural facts (functions,
// classes, imports) with per-function cyclomatic complexity, using
// tree-sitter grammars behind a per-language capability interface.
package parser

import (
	"context"
	"fmt"
)

// Parser is the per-language parsing capability. Implementations are
// stateless and safe for concurrent use; each Parse call drives its own
// tree-sitter parser instance.
type Parser interface {
	Language() Language
	Parse(ctx context.Context, content []byte) (*ParseResult, error)
}

// ParseResult holds everything extracted from one parse of one file.
// A fresh value is created per call; it carries no identity or cache key.
type ParseResult struct {
	Language  Language       `json:"language"`
	Functions []FunctionInfo `json:"functions"`
	Classes   []ClassInfo    `json:"classes"`
	Imports   []ImportInfo   `json:"imports"`
}

// FunctionInfo describes one extracted function, in document order.
type FunctionInfo struct {
	Name string `json:"name"`
	// Line is the 1-based line of the function node's start.
	Line uint32 `json:"line"`
	// Complexity is the cyclomatic complexity, never below 1.
	Complexity uint32 `json:"complexity"`
}

// ClassInfo describes one class or interface declaration.
type ClassInfo struct {
	Name string `json:"name"`
	Line uint32 `json:"line"`
}

// ImportInfo describes one import with the quote characters stripped from
// the module specifier.
type ImportInfo struct {
	Module string `json:"module"`
	Line   uint32 `json:"line"`
}

// ParseError reports that no syntax tree could be produced, or that parsing
// exceeded its time budget. Partial trees do not raise it.
type ParseError struct {
	Message string
	Line    uint32
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s at line %d", e.Message, e.Line)
}

// ConfigError reports a grammar engine setup failure.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}
