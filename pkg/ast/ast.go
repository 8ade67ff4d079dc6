/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: ast.go
Description: Superseded whole-tree representation for the Genrex generator. Kept as
the non-retried legacy fallback tactic: a semantic node tree derived from the
token tree, generated in a single pass without capture bookkeeping.
*/

package ast

import (
	"math/rand"
	"strings"

	"github.com/kleascm/genrex/pkg/interfaces"
)

// maxRepeat caps open-ended repetition in the legacy path. The legacy tree
// carries no generation context, so the bound lives here.
const maxRepeat = 32

// Node is a node of the legacy semantic tree.
type Node interface {
	Generate(rng *rand.Rand) (string, error)
}

// Sequence is an ordered run of nodes.
type Sequence struct {
	Nodes []Node
}

func (n *Sequence) Generate(rng *rand.Rand) (string, error) {
	var out strings.Builder
	for _, child := range n.Nodes {
		s, err := child.Generate(rng)
		if err != nil {
			return "", err
		}
		out.WriteString(s)
	}
	return out.String(), nil
}

// Alternation chooses one branch uniformly.
type Alternation struct {
	Branches []Node
}

func (n *Alternation) Generate(rng *rand.Rand) (string, error) {
	if len(n.Branches) == 0 {
		return "", &interfaces.InternalError{Msg: "empty alternation"}
	}
	return n.Branches[rng.Intn(len(n.Branches))].Generate(rng)
}

// Repeat repeats its node between Min and Max times. Max below zero means
// unbounded.
type Repeat struct {
	Node   Node
	Min    int
	Max    int
	Greedy bool
}

func (n *Repeat) Generate(rng *rand.Rand) (string, error) {
	if n.Max >= 0 && n.Min > n.Max {
		return "", &interfaces.InternalError{Msg: "repeat min > max"}
	}
	hi := n.Max
	if hi < 0 {
		hi = n.Min + maxRepeat
	}
	count := n.Min
	if hi > n.Min {
		count = n.Min + rng.Intn(hi-n.Min+1)
	}
	var out strings.Builder
	for i := 0; i < count; i++ {
		s, err := n.Node.Generate(rng)
		if err != nil {
			return "", err
		}
		out.WriteString(s)
	}
	return out.String(), nil
}

// Group wraps a capturing group. The legacy path has no capture table, so
// the group is generation-transparent.
type Group struct {
	Inner Node
}

func (n *Group) Generate(rng *rand.Rand) (string, error) {
	return n.Inner.Generate(rng)
}

// NonCapturingGroup wraps a non-capturing group.
type NonCapturingGroup struct {
	Inner Node
}

func (n *NonCapturingGroup) Generate(rng *rand.Rand) (string, error) {
	return n.Inner.Generate(rng)
}

// Backreference cannot be generated without capture bookkeeping.
type Backreference struct{}

func (n *Backreference) Generate(rng *rand.Rand) (string, error) {
	return "", &interfaces.UnsupportedFeatureError{Feature: "backreference in legacy generation"}
}

// Class chooses one member uniformly.
type Class struct {
	Chars []rune
}

func (n *Class) Generate(rng *rand.Rand) (string, error) {
	if len(n.Chars) == 0 {
		return "", &interfaces.InternalError{Msg: "empty class"}
	}
	return string(n.Chars[rng.Intn(len(n.Chars))]), nil
}

// NegatedClass generation is unsupported in the legacy path too.
type NegatedClass struct{}

func (n *NegatedClass) Generate(rng *rand.Rand) (string, error) {
	return "", &interfaces.UnsupportedFeatureError{Feature: "negated class generation"}
}

// Literal is a fixed character.
type Literal struct {
	Char rune
}

func (n *Literal) Generate(rng *rand.Rand) (string, error) {
	return string(n.Char), nil
}

// AnchorStart generates nothing.
type AnchorStart struct{}

func (n *AnchorStart) Generate(rng *rand.Rand) (string, error) {
	return "", nil
}

// AnchorEnd generates nothing.
type AnchorEnd struct{}

func (n *AnchorEnd) Generate(rng *rand.Rand) (string, error) {
	return "", nil
}

// WordBoundary generates nothing.
type WordBoundary struct{}

func (n *WordBoundary) Generate(rng *rand.Rand) (string, error) {
	return "", nil
}

// Wildcard picks one alphanumeric character.
type Wildcard struct{}

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func (n *Wildcard) Generate(rng *rand.Rand) (string, error) {
	return string(alphabet[rng.Intn(len(alphabet))]), nil
}
