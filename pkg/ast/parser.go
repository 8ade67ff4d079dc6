/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: parser.go
Description: Parser from the token tree into the legacy semantic tree. Walks the
token nodes recursively, collapsing single-child sequences the way the original
whole-tree path did.
*/

package ast

import (
	"github.com/kleascm/genrex/pkg/tokens"
)

// Parser converts a token list into a legacy semantic tree.
type Parser struct {
	toks []tokens.Token
	pos  int
}

// NewParser creates a parser over a token list.
func NewParser(toks []tokens.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse builds the legacy tree. Returns nil for an empty token list.
func (p *Parser) Parse() Node {
	var nodes []Node
	for p.pos < len(p.toks) {
		nodes = append(nodes, buildNode(p.toks[p.pos]))
		p.pos++
	}
	switch len(nodes) {
	case 0:
		return nil
	case 1:
		return nodes[0]
	default:
		return &Sequence{Nodes: nodes}
	}
}

// buildNode maps one token to its legacy node.
func buildNode(tok tokens.Token) Node {
	switch t := tok.(type) {
	case *tokens.Literal:
		return &Literal{Char: t.Char}
	case *tokens.Class:
		return &Class{Chars: t.Chars}
	case *tokens.NegatedClass:
		return &NegatedClass{}
	case *tokens.Concatenation:
		if n := NewParser(t.Tokens).Parse(); n != nil {
			return n
		}
		return &Sequence{}
	case *tokens.Alternation:
		branches := make([]Node, 0, len(t.Choices))
		for _, c := range t.Choices {
			branches = append(branches, buildNode(c))
		}
		return &Alternation{Branches: branches}
	case *tokens.Quantifier:
		hi := t.Max
		if hi == tokens.Unbounded {
			hi = -1
		}
		return &Repeat{Node: buildNode(t.Token), Min: t.Min, Max: hi, Greedy: t.Greedy}
	case *tokens.Group:
		return &Group{Inner: buildNode(t.Inner)}
	case *tokens.NonCapturingGroup:
		return &NonCapturingGroup{Inner: buildNode(t.Inner)}
	case *tokens.Backreference:
		return &Backreference{}
	case *tokens.AnchorStart:
		return &AnchorStart{}
	case *tokens.AnchorEnd:
		return &AnchorEnd{}
	case *tokens.WordBoundary:
		return &WordBoundary{}
	case *tokens.Wildcard:
		return &Wildcard{}
	default:
		// Unknown token types degrade to an empty literal-free node.
		return &Sequence{}
	}
}
