/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: context.go
Description: Per-attempt generation context for the Genrex token tree. Carries the
capture table, unresolved forward-reference bookkeeping, the output cursor, and
the repetition bound for open-ended quantifiers.
*/

package tokens

// DefaultMaxRepeat is the additive cap applied beyond a quantifier's minimum
// when its upper bound is open-ended.
const DefaultMaxRepeat = 32

// UnresolvedRef records a backreference that was encountered before its group
// produced any text. Position is the output cursor at the time the reference
// was generated, so a later resolution pass could splice the capture in.
type UnresolvedRef struct {
	Index    int
	Position int
}

// Context is the mutable state threaded through one generation attempt.
// A fresh Context is created for every attempt and discarded afterwards;
// it is never shared across attempts or goroutines.
type Context struct {
	// MaxRepeat caps how many repeats beyond min an open-ended quantifier
	// may produce.
	MaxRepeat int

	// GroupCount is the number of capture groups in the pattern being
	// generated. A backreference whose index exceeds this can never
	// resolve and fails immediately.
	GroupCount int

	captures   map[int]string
	unresolved []UnresolvedRef
	outputLen  int
}

// NewContext creates a Context with the default repetition bound.
func NewContext() *Context {
	return NewContextWithMaxRepeat(DefaultMaxRepeat)
}

// NewContextWithMaxRepeat creates a Context with a caller-provided
// repetition bound.
func NewContextWithMaxRepeat(maxRepeat int) *Context {
	return &Context{
		MaxRepeat: maxRepeat,
		captures:  make(map[int]string),
	}
}

// SetOutputLen updates the output cursor. Callers set this before descending
// into a child so nested groups observe their position in the output.
func (c *Context) SetOutputLen(n int) {
	c.outputLen = n
}

// OutputLen returns the current output cursor.
func (c *Context) OutputLen() int {
	return c.outputLen
}

// RecordCapture stores the generated text for a capture group. Later
// completions of the same group overwrite earlier ones: last write wins,
// which matters when a group sits inside a repeated quantifier.
func (c *Context) RecordCapture(index int, text string) {
	c.captures[index] = text
}

// Capture returns the most recently recorded text for a group, if any.
func (c *Context) Capture(index int) (string, bool) {
	s, ok := c.captures[index]
	return s, ok
}

// AddUnresolved records a forward reference at the current output cursor.
// No resolution pass consumes these today; forward references resolve to
// empty text. The bookkeeping is kept so a second pass can be added without
// changing the generation walk.
func (c *Context) AddUnresolved(index int) {
	c.unresolved = append(c.unresolved, UnresolvedRef{Index: index, Position: c.outputLen})
}

// Unresolved returns the forward references recorded during this attempt.
func (c *Context) Unresolved() []UnresolvedRef {
	return c.unresolved
}
