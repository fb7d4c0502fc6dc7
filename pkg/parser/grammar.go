package parser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sitter "github.com/smacker/go-tree-sitter"
)

// Parse time budgets. Richer grammars get a longer budget; pathological
// input degrades to a ParseError instead of hanging the batch.
const (
	defaultParseTimeout    = 5 * time.Second
	typescriptParseTimeout = 7 * time.Second
)

// functionKind controls how a matched function node is named and scored.
type functionKind int

const (
	// kindDeclared requires a "name" field; nodes without one are skipped.
	kindDeclared functionKind = iota
	// kindExpression prefers its own "name" field, falling back to the
	// enclosing binding context.
	kindExpression
	// kindAnonymous always resolves its name from the enclosing binding.
	kindAnonymous
	// kindSignature is a bodiless declaration; complexity is fixed at 1.
	kindSignature
)

// langSpec is the node-kind table that parameterizes the shared traversal
// framework. Grammars differ only in their tables; the walks are shared, so
// near-identical grammars cannot drift apart.
type langSpec struct {
	language Language
	grammar  *sitter.Language
	timeout  time.Duration

	functions map[string]functionKind
	classes   map[string]bool
	// classFilter, when set, vetoes matched class nodes (e.g. Go type
	// declarations that are neither structs nor interfaces).
	classFilter func(node *sitter.Node) bool

	// decisions are node kinds that each add one decision point.
	decisions map[string]bool
	// binaryKinds are expression kinds whose operator token is inspected
	// for short-circuit operators.
	binaryKinds map[string]bool
	// shortCircuit holds the operator tokens that add one decision point.
	shortCircuit map[string]bool

	// bindings maps a parent node kind to the field that names an
	// anonymous function bound beneath it.
	bindings map[string]string
	// bindingWrappers are transparent nodes between a function and its
	// binding context (e.g. Go's expression_list) that the upward walk
	// steps through.
	bindingWrappers map[string]bool

	// importFields maps import-like node kinds to the field carrying the
	// module specifier. A missing field on a matched node (e.g. an export
	// without a source) is silently skipped.
	importFields map[string]string
	// loadCallees are callee identifiers of dynamic module-load calls.
	loadCallees map[string]bool
}

// grammarParser implements Parser for one langSpec. It holds no parse
// state; every Parse call drives a fresh tree-sitter parser.
type grammarParser struct {
	spec langSpec
	log  *slog.Logger
}

func newGrammarParser(spec langSpec) *grammarParser {
	if spec.timeout <= 0 {
		spec.timeout = defaultParseTimeout
	}
	return &grammarParser{
		spec: spec,
		log:  slog.With("language", string(spec.language)),
	}
}

// Language implements Parser.
func (p *grammarParser) Language() Language { return p.spec.language }

// Parse implements Parser. A tree containing error markers is extracted
// best-effort rather than rejected; only the total absence of a tree (or a
// blown time budget) raises a ParseError.
func (p *grammarParser) Parse(ctx context.Context, content []byte) (*ParseResult, error) {
	tree, err := p.parseTree(ctx, content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, &ParseError{Message: "no syntax tree produced", Line: 1}
	}
	if root.HasError() {
		p.log.Debug("parse completed with syntax errors, extracting from partial tree")
	}

	result := &ParseResult{
		Language:  p.spec.language,
		Functions: p.extractFunctions(root, content),
		Classes:   p.extractClasses(root, content),
		Imports:   p.extractImports(root, content),
	}

	p.log.Debug("parse completed",
		"functions", len(result.Functions),
		"classes", len(result.Classes),
		"imports", len(result.Imports))

	return result, nil
}

func (p *grammarParser) parseTree(ctx context.Context, content []byte) (*sitter.Tree, error) {
	// ParseCtx finishes small inputs before it notices cancellation, so an
	// already-done context is rejected up front.
	if err := ctx.Err(); err != nil {
		return nil, &ParseError{Message: err.Error(), Line: 1}
	}

	psr := sitter.NewParser()
	defer psr.Close()
	psr.SetLanguage(p.spec.grammar)

	ctx, cancel := context.WithTimeout(ctx, p.spec.timeout)
	defer cancel()

	tree, err := psr.ParseCtx(ctx, nil, content)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &ParseError{
				Message: fmt.Sprintf("parsing exceeded %s budget", p.spec.timeout),
				Line:    1,
			}
		}
		return nil, &ParseError{Message: err.Error(), Line: 1}
	}
	if tree == nil {
		return nil, &ParseError{Message: "no syntax tree produced", Line: 1}
	}
	return tree, nil
}
