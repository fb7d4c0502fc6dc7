package parser

import (
	"github.com/smacker/go-tree-sitter/rust"
)

// NewRustParser returns the parser for Rust (.rs).
func NewRustParser() Parser {
	return newGrammarParser(langSpec{
		language: LangRust,
		grammar:  rust.GetLanguage(),
		timeout:  defaultParseTimeout,

		functions: map[string]functionKind{
			"function_item":           kindDeclared,
			"closure_expression":      kindAnonymous,
			"function_signature_item": kindSignature,
		},
		// Trait declarations are the structural-interface analogue and are
		// reported uniformly as classes.
		classes: map[string]bool{
			"struct_item": true,
			"trait_item":  true,
		},
		decisions: map[string]bool{
			"if_expression":    true,
			"while_expression": true,
			"loop_expression":  true,
			"for_expression":   true,
			"match_expression": true,
		},
		binaryKinds: map[string]bool{"binary_expression": true},
		shortCircuit: map[string]bool{
			"&&": true,
			"||": true,
		},
		bindings: map[string]string{
			"let_declaration":       "pattern",
			"assignment_expression": "left",
		},
		importFields: map[string]string{
			"use_declaration": "argument",
		},
	})
}
