package parser

import (
	"github.com/smacker/go-tree-sitter/javascript"
)

// NewJavaScriptParser returns the parser for JavaScript (.js, .jsx, .mjs).
func NewJavaScriptParser() Parser {
	return newGrammarParser(langSpec{
		language: LangJavaScript,
		grammar:  javascript.GetLanguage(),
		timeout:  defaultParseTimeout,

		functions: map[string]functionKind{
			"function_declaration":           kindDeclared,
			"method_definition":              kindDeclared,
			"arrow_function":                 kindAnonymous,
			"function":                       kindExpression,
			"function_expression":            kindExpression,
			"generator_function_declaration": kindDeclared,
		},
		classes: map[string]bool{
			"class_declaration": true,
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
		},
	})
}

// jsDecisionKinds lists the decision-point node kinds shared by the
// JavaScript-family grammars. Both ternary spellings are listed because the
// grammar renamed conditional_expression to ternary_expression.
func jsDecisionKinds() map[string]bool {
	return map[string]bool{
		"if_statement":           true,
		"while_statement":        true,
		"do_statement":           true,
		"for_statement":          true,
		"for_in_statement":       true,
		"for_of_statement":       true,
		"switch_statement":       true,
		"catch_clause":           true,
		"ternary_expression":     true,
		"conditional_expression": true,
	}
}

// jsBindingFields maps enclosing binding contexts to the field that names
// an anonymous function: variable-binding target, assignment left-hand
// side, then object/property key.
func jsBindingFields() map[string]string {
	return map[string]string{
		"variable_declarator":   "name",
		"assignment_expression": "left",
		"pair":                  "key",
		"property":              "key",
	}
}
