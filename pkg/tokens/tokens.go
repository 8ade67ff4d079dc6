/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: tokens.go
Description: Token tree for the Genrex generator. Each node type knows how to
generate one candidate fragment from a random source and a mutable generation
context, covering literals, classes, groups, quantifiers, backreferences,
anchors, and wildcards.
*/

package tokens

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/kleascm/genrex/pkg/interfaces"
)

// Unbounded marks a quantifier with no upper repetition bound.
const Unbounded = math.MaxInt

// Alphabet is the fixed alphanumeric alphabet used for wildcard generation
// and rejection sampling.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Token is a node of the parsed pattern tree. Nodes are immutable after
// construction; all mutable state lives in the Context.
type Token interface {
	// Generate produces one candidate fragment for this node.
	Generate(rng *rand.Rand, ctx *Context) (string, error)

	// Describe returns a human-readable description of the node.
	Describe() string
}

// Literal generates a single fixed character.
type Literal struct {
	Char rune
}

func (t *Literal) Generate(rng *rand.Rand, ctx *Context) (string, error) {
	return string(t.Char), nil
}

func (t *Literal) Describe() string {
	return fmt.Sprintf("Literal('%c')", t.Char)
}

// Class generates one character chosen uniformly from its members.
type Class struct {
	Chars []rune
}

func (t *Class) Generate(rng *rand.Rand, ctx *Context) (string, error) {
	if len(t.Chars) == 0 {
		return "", &interfaces.InternalError{Msg: "empty class"}
	}
	return string(t.Chars[rng.Intn(len(t.Chars))]), nil
}

func (t *Class) Describe() string {
	return fmt.Sprintf("Class[%s]", string(t.Chars))
}

// NegatedClass excludes its members. Generation is unsupported: producing a
// character outside the class would require full alphabet context.
type NegatedClass struct {
	Chars []rune
}

func (t *NegatedClass) Generate(rng *rand.Rand, ctx *Context) (string, error) {
	return "", &interfaces.UnsupportedFeatureError{Feature: "negated class generation"}
}

func (t *NegatedClass) Describe() string {
	return fmt.Sprintf("NegatedClass[%s]", string(t.Chars))
}

// Concatenation generates its children in order. The output cursor is set to
// the cumulative output length before each child so nested groups and
// backreferences observe their position.
type Concatenation struct {
	Tokens []Token
}

func (t *Concatenation) Generate(rng *rand.Rand, ctx *Context) (string, error) {
	var out strings.Builder
	for _, child := range t.Tokens {
		ctx.SetOutputLen(out.Len())
		s, err := child.Generate(rng, ctx)
		if err != nil {
			return "", err
		}
		out.WriteString(s)
	}
	return out.String(), nil
}

func (t *Concatenation) Describe() string {
	return fmt.Sprintf("Concat(%d)", len(t.Tokens))
}

// Alternation generates one of its branches, chosen uniformly.
type Alternation struct {
	Choices []Token
}

func (t *Alternation) Generate(rng *rand.Rand, ctx *Context) (string, error) {
	if len(t.Choices) == 0 {
		return "", &interfaces.InternalError{Msg: "empty alternation"}
	}
	choice := t.Choices[rng.Intn(len(t.Choices))]
	ctx.SetOutputLen(0)
	return choice.Generate(rng, ctx)
}

func (t *Alternation) Describe() string {
	return fmt.Sprintf("Alt(%d)", len(t.Choices))
}

// Quantifier repeats its wrapped node. Min may equal Max; Max may be
// Unbounded, in which case the context's repetition bound caps the count.
type Quantifier struct {
	Token  Token
	Min    int
	Max    int
	Greedy bool
}

func (t *Quantifier) Generate(rng *rand.Rand, ctx *Context) (string, error) {
	if t.Min > t.Max {
		return "", &interfaces.InternalError{Msg: "quantifier min > max"}
	}
	effectiveMax := t.Max
	if t.Max == Unbounded {
		effectiveMax = t.Min + ctx.MaxRepeat
	}

	var count int
	if t.Min == effectiveMax {
		count = t.Min
	} else {
		// Two independent draws: greedy takes the larger, lazy the
		// smaller. An approximate skew, not a weighted distribution.
		a := randRange(rng, t.Min, effectiveMax)
		b := randRange(rng, t.Min, effectiveMax)
		if t.Greedy {
			count = max(a, b)
		} else {
			count = min(a, b)
		}
	}

	var out strings.Builder
	for i := 0; i < count; i++ {
		ctx.SetOutputLen(out.Len())
		s, err := t.Token.Generate(rng, ctx)
		if err != nil {
			return "", err
		}
		out.WriteString(s)
	}
	return out.String(), nil
}

func (t *Quantifier) Describe() string {
	if t.Max == Unbounded {
		return fmt.Sprintf("Quantifier{%d,}", t.Min)
	}
	return fmt.Sprintf("Quantifier{%d,%d}", t.Min, t.Max)
}

// Group generates its inner node and records the result in the capture table
// under the group's 1-based index, overwriting any prior value.
type Group struct {
	Inner Token
	Index int
}

func (t *Group) Generate(rng *rand.Rand, ctx *Context) (string, error) {
	ctx.SetOutputLen(0)
	s, err := t.Inner.Generate(rng, ctx)
	if err != nil {
		return "", err
	}
	ctx.RecordCapture(t.Index, s)
	return s, nil
}

func (t *Group) Describe() string {
	return fmt.Sprintf("Group(%d)", t.Index)
}

// NonCapturingGroup generates its inner node without touching the capture
// table.
type NonCapturingGroup struct {
	Inner Token
}

func (t *NonCapturingGroup) Generate(rng *rand.Rand, ctx *Context) (string, error) {
	ctx.SetOutputLen(0)
	return t.Inner.Generate(rng, ctx)
}

func (t *NonCapturingGroup) Describe() string {
	return "NonCapturingGroup"
}

// Backreference reproduces the text a capture group generated earlier in the
// same attempt. Backward references resolve exactly; a forward reference is
// recorded as unresolved and yields empty text.
type Backreference struct {
	Index int
}

func (t *Backreference) Generate(rng *rand.Rand, ctx *Context) (string, error) {
	if t.Index == 0 {
		return "", &interfaces.BackreferenceError{Index: 0, Reason: "backreference index 0 is invalid"}
	}
	if t.Index > ctx.GroupCount {
		return "", &interfaces.BackreferenceError{
			Index:  t.Index,
			Reason: fmt.Sprintf("no capture available for backreference \\%d", t.Index),
		}
	}
	if s, ok := ctx.Capture(t.Index); ok {
		return s, nil
	}
	// Forward reference: record the position for a future resolution pass
	// and emit nothing.
	ctx.AddUnresolved(t.Index)
	return "", nil
}

func (t *Backreference) Describe() string {
	return fmt.Sprintf("Backreference(%d)", t.Index)
}

// AnchorStart matches the start of input. Purely informational during
// generation; correctness is delegated to the external validator.
type AnchorStart struct{}

func (t *AnchorStart) Generate(rng *rand.Rand, ctx *Context) (string, error) {
	return "", nil
}

func (t *AnchorStart) Describe() string {
	return "AnchorStart"
}

// AnchorEnd matches the end of input.
type AnchorEnd struct{}

func (t *AnchorEnd) Generate(rng *rand.Rand, ctx *Context) (string, error) {
	return "", nil
}

func (t *AnchorEnd) Describe() string {
	return "AnchorEnd"
}

// WordBoundary matches a word boundary.
type WordBoundary struct{}

func (t *WordBoundary) Generate(rng *rand.Rand, ctx *Context) (string, error) {
	return "", nil
}

func (t *WordBoundary) Describe() string {
	return "WordBoundary"
}

// Wildcard generates one character from the fixed alphanumeric alphabet.
type Wildcard struct{}

func (t *Wildcard) Generate(rng *rand.Rand, ctx *Context) (string, error) {
	return string(Alphabet[rng.Intn(len(Alphabet))]), nil
}

func (t *Wildcard) Describe() string {
	return "Wildcard"
}

// randRange returns a uniform value in [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
