package parser

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// NewTypeScriptParser returns the parser for TypeScript (.ts).
func NewTypeScriptParser() Parser {
	return newGrammarParser(typescriptSpec(LangTypeScript, typescript.GetLanguage()))
}

// NewTSXParser returns the parser for TSX (.tsx).
func NewTSXParser() Parser {
	return newGrammarParser(typescriptSpec(LangTSX, tsx.GetLanguage()))
}

// typescriptSpec extends the JavaScript tables with the statically-typed
// constructs: method and function signatures, interface declarations, and
// dynamic import() calls. TypeScript sources tend to be heavier to parse,
// so the grammar gets a longer time budget.
func typescriptSpec(lang Language, grammar *sitter.Language) langSpec {
	return langSpec{
		language: lang,
		grammar:  grammar,
		timeout:  typescriptParseTimeout,

		functions: map[string]functionKind{
			"function_declaration":           kindDeclared,
			"method_definition":              kindDeclared,
			"method_signature":               kindDeclared,
			"arrow_function":                 kindAnonymous,
			"function":                       kindExpression,
			"function_expression":            kindExpression,
			"generator_function_declaration": kindDeclared,
			"function_signature":             kindSignature,
		},
		classes: map[string]bool{
			"class_declaration":     true,
			"interface_declaration": true,
		},
		decisions:   jsDecisionKinds(),
		binaryKinds: map[string]bool{"binary_expression": true},
		shortCircuit: map[string]bool{
			"&&": true,
			"||": true,
		},
		bindings: jsBindingFields(),
		importFields: map[string]string{
			"import_statement": "source",
			"export_statement": "source",
		},
		loadCallees: map[string]bool{
			"require": true,
			"import":  true,
		},
	}
}
