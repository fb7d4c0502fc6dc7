package parser

import (
	"github.com/smacker/go-tree-sitter/python"
)

// NewPythonParser returns the parser for Python (.py, .pyi).
func NewPythonParser() Parser {
	return newGrammarParser(langSpec{
		language: LangPython,
		grammar:  python.GetLanguage(),
		timeout:  defaultParseTimeout,

		functions: map[string]functionKind{
			"function_definition": kindDeclared,
			"lambda":              kindAnonymous,
		},
		classes: map[string]bool{
			"class_definition": true,
		},
		decisions: map[string]bool{
			"if_statement":           true,
			"elif_clause":            true,
			"while_statement":        true,
			"for_statement":          true,
			"except_clause":          true,
			"conditional_expression": true,
		},
		binaryKinds: map[string]bool{"boolean_operator": true},
		shortCircuit: map[string]bool{
			"and": true,
			"or":  true,
		},
		bindings: map[string]string{
			"assignment": "left",
		},
		importFields: map[string]string{
			"import_statement":      "name",
			"import_from_statement": "module_name",
		},
	})
}
