package parser

import sitter "github.com/smacker/go-tree-sitter"

// complexity computes cyclomatic complexity for one function node: a base
// path of 1, plus one per decision-point node, plus one per short-circuit
// logical operator. The operator is read from the operator token of a
// binary expression node, never by pattern-matching expression text.
//
// The walk covers the function's full subtree and does not stop at nested
// function boundaries, so decision points inside nested functions count
// toward the enclosing function as well as toward the nested function's own
// independent score.
func (p *grammarParser) complexity(node *sitter.Node, source []byte) uint32 {
	complexity := uint32(1)

	WalkTyped(node, source, func(n *sitter.Node, nodeType string, src []byte) bool {
		switch {
		case p.spec.decisions[nodeType]:
			complexity++
		case p.spec.binaryKinds[nodeType]:
			if p.spec.shortCircuit[p.operatorToken(n)] {
				complexity++
			}
		}
		return true
	})

	return complexity
}

// operatorToken returns the operator token type of a binary expression
// node, preferring the grammar's operator field and falling back to a child
// scan for grammars that do not expose one.
func (p *grammarParser) operatorToken(n *sitter.Node) string {
	if op := n.ChildByFieldName("operator"); op != nil {
		return op.Type()
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if t := n.Child(i).Type(); p.spec.shortCircuit[t] {
			return t
		}
	}
	return ""
}
