package parser

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// anonymousName is the display name used when no binding context applies.
const anonymousName = "anonymous"

// extractFunctions walks the tree in pre-order collecting every node whose
// kind appears in the function table. Output follows document order.
func (p *grammarParser) extractFunctions(root *sitter.Node, source []byte) []FunctionInfo {
	functions := make([]FunctionInfo, 0)

	WalkTyped(root, source, func(n *sitter.Node, nodeType string, src []byte) bool {
		// Keyword tokens share their type string with the construct they
		// introduce ("function", "lambda"); only named nodes are real
		// function constructs.
		kind, ok := p.spec.functions[nodeType]
		if !ok || !n.IsNamed() {
			return true
		}
		if fn, ok := p.functionInfo(n, kind, src); ok {
			functions = append(functions, fn)
		}
		return true
	})

	return functions
}

func (p *grammarParser) functionInfo(node *sitter.Node, kind functionKind, source []byte) (FunctionInfo, bool) {
	var name string

	switch kind {
	case kindDeclared, kindSignature:
		nameNode := node.ChildByFieldName("name")
		if nameNode == nil {
			return FunctionInfo{}, false
		}
		name = NodeText(nameNode, source)
	case kindExpression:
		if nameNode := node.ChildByFieldName("name"); nameNode != nil {
			name = NodeText(nameNode, source)
		} else {
			name = p.bindingName(node, source)
		}
	case kindAnonymous:
		name = p.bindingName(node, source)
	}

	if name == "" {
		return FunctionInfo{}, false
	}

	fn := FunctionInfo{
		Name: name,
		Line: node.StartPoint().Row + 1,
	}
	if kind == kindSignature {
		fn.Complexity = 1
	} else {
		fn.Complexity = p.complexity(node, source)
	}
	return fn, true
}

// bindingName resolves a display name for an anonymous function from its
// enclosing binding context: variable-binding target, assignment left-hand
// side, or object/property key, whichever the binding table matches.
func (p *grammarParser) bindingName(node *sitter.Node, source []byte) string {
	parent := node.Parent()
	for parent != nil && p.spec.bindingWrappers[parent.Type()] {
		parent = parent.Parent()
	}
	if parent == nil {
		return anonymousName
	}
	field, ok := p.spec.bindings[parent.Type()]
	if !ok {
		return anonymousName
	}
	target := parent.ChildByFieldName(field)
	if target == nil {
		return anonymousName
	}
	if text := NodeText(target, source); text != "" {
		return text
	}
	return anonymousName
}

// extractClasses collects class declarations and, for grammars that have
// them, interface declarations, reported uniformly as classes. Referenced
// types are not recorded and no deduplication is applied.
func (p *grammarParser) extractClasses(root *sitter.Node, source []byte) []ClassInfo {
	classes := make([]ClassInfo, 0)

	WalkTyped(root, source, func(n *sitter.Node, nodeType string, src []byte) bool {
		if !p.spec.classes[nodeType] {
			return true
		}
		if p.spec.classFilter != nil && !p.spec.classFilter(n) {
			return true
		}
		nameNode := n.ChildByFieldName("name")
		if nameNode == nil {
			return true
		}
		name := NodeText(nameNode, src)
		if name == "" {
			return true
		}
		classes = append(classes, ClassInfo{
			Name: name,
			Line: n.StartPoint().Row + 1,
		})
		return true
	})

	return classes
}

// extractImports collects declarative imports, export-from statements, and
// dynamic module-load calls. Non-matching statements and calls are silently
// skipped; that is not an error condition.
func (p *grammarParser) extractImports(root *sitter.Node, source []byte) []ImportInfo {
	imports := make([]ImportInfo, 0)

	WalkTyped(root, source, func(n *sitter.Node, nodeType string, src []byte) bool {
		if field, ok := p.spec.importFields[nodeType]; ok {
			specNode := n.ChildByFieldName(field)
			if specNode == nil {
				return true
			}
			module := trimQuotes(NodeText(specNode, src))
			if module == "" {
				return true
			}
			imports = append(imports, ImportInfo{
				Module: module,
				Line:   n.StartPoint().Row + 1,
			})
			return true
		}

		if nodeType == "call_expression" && len(p.spec.loadCallees) > 0 {
			if imp, ok := p.loadCallImport(n, src); ok {
				imports = append(imports, imp)
			}
		}
		return true
	})

	return imports
}

// loadCallImport matches call expressions whose callee identifier is
// literally one of the configured load names (require, import), taking the
// first string-literal argument as the module specifier.
func (p *grammarParser) loadCallImport(node *sitter.Node, source []byte) (ImportInfo, bool) {
	callee := node.ChildByFieldName("function")
	if callee == nil || !p.spec.loadCallees[NodeText(callee, source)] {
		return ImportInfo{}, false
	}

	args := node.ChildByFieldName("arguments")
	if args == nil {
		return ImportInfo{}, false
	}

	for i := 0; i < int(args.ChildCount()); i++ {
		child := args.Child(i)
		if child.Type() != "string" {
			continue
		}
		module := trimQuotes(NodeText(child, source))
		if module == "" {
			return ImportInfo{}, false
		}
		return ImportInfo{
			Module: module,
			Line:   node.StartPoint().Row + 1,
		}, true
	}

	return ImportInfo{}, false
}

func trimQuotes(s string) string {
	return strings.Trim(s, `"'`)
}
