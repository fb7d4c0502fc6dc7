package parser

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
)

// NewGoParser returns the parser for Go (.go).
func NewGoParser() Parser {
	return newGrammarParser(langSpec{
		language: LangGo,
		grammar:  golang.GetLanguage(),
		timeout:  defaultParseTimeout,

		functions: map[string]functionKind{
			"function_declaration": kindDeclared,
			"method_declaration":   kindDeclared,
			"func_literal":         kindAnonymous,
		},
		classes: map[string]bool{
			"type_spec": true,
		},
		// Only struct and interface declarations are reported as classes;
		// aliases and other named types are not.
		classFilter: func(node *sitter.Node) bool {
			typeNode := node.ChildByFieldName("type")
			if typeNode == nil {
				return false
			}
			switch typeNode.Type() {
			case "struct_type", "interface_type":
				return true
			}
			return false
		},
		decisions: map[string]bool{
			"if_statement":                true,
			"for_statement":               true,
			"expression_switch_statement": true,
			"type_switch_statement":       true,
			"select_statement":            true,
		},
		binaryKinds: map[string]bool{"binary_expression": true},
		shortCircuit: map[string]bool{
			"&&": true,
			"||": true,
		},
		bindings: map[string]string{
			"short_var_declaration": "left",
			"var_spec":              "name",
			"assignment_statement":  "left",
		},
		bindingWrappers: map[string]bool{
			"expression_list": true,
		},
		importFields: map[string]string{
			"import_spec": "path",
		},
	})
}
