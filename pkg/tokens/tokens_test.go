/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: tokens_test.go
Description: Tests for token tree generation. Covers every node type, capture and
backreference semantics, quantifier bounds, and the greedy versus lazy repetition
bias with paired random streams.
*/

package tokens

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/kleascm/genrex/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLiteralToken tests single-character literal generation
func TestLiteralToken(t *testing.T) {
	tok := &Literal{Char: 'x'}
	rng := rand.New(rand.NewSource(1))
	ctx := NewContext()

	s, err := tok.Generate(rng, ctx)
	require.NoError(t, err)
	assert.Equal(t, "x", s)
	assert.Equal(t, "Literal('x')", tok.Describe())
}

// TestClassToken tests uniform member selection from a character class
func TestClassToken(t *testing.T) {
	tok := &Class{Chars: []rune("abc")}
	rng := rand.New(rand.NewSource(2))
	ctx := NewContext()

	s, err := tok.Generate(rng, ctx)
	require.NoError(t, err)
	assert.Contains(t, "abc", s)
	assert.Equal(t, "Class[abc]", tok.Describe())
}

// TestEmptyClassIsFatal tests that an empty class is an internal error
func TestEmptyClassIsFatal(t *testing.T) {
	tok := &Class{}
	rng := rand.New(rand.NewSource(3))

	_, err := tok.Generate(rng, NewContext())
	require.Error(t, err)

	var internal *interfaces.InternalError
	assert.True(t, errors.As(err, &internal))
	assert.True(t, interfaces.IsFatal(err))
}

// TestNegatedClassUnsupported tests that negated classes always fail
// generation regardless of the random source
func TestNegatedClassUnsupported(t *testing.T) {
	tok := &NegatedClass{Chars: []rune("abc")}

	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		_, err := tok.Generate(rng, NewContext())
		require.Error(t, err)

		var unsupported *interfaces.UnsupportedFeatureError
		assert.True(t, errors.As(err, &unsupported))
	}
	assert.Equal(t, "NegatedClass[abc]", tok.Describe())
}

// TestConcatenationToken tests in-order child generation
func TestConcatenationToken(t *testing.T) {
	tok := &Concatenation{Tokens: []Token{
		&Literal{Char: 'a'},
		&Literal{Char: 'b'},
		&Literal{Char: 'c'},
	}}
	rng := rand.New(rand.NewSource(4))

	s, err := tok.Generate(rng, NewContext())
	require.NoError(t, err)
	assert.Equal(t, "abc", s)
	assert.Equal(t, "Concat(3)", tok.Describe())
}

// TestAlternationToken tests uniform branch selection
func TestAlternationToken(t *testing.T) {
	tok := &Alternation{Choices: []Token{
		&Literal{Char: 'x'},
		&Literal{Char: 'y'},
	}}
	rng := rand.New(rand.NewSource(5))

	s, err := tok.Generate(rng, NewContext())
	require.NoError(t, err)
	assert.Contains(t, []string{"x", "y"}, s)
	assert.Equal(t, "Alt(2)", tok.Describe())
}

// TestEmptyAlternationIsFatal tests that an empty alternation is an
// internal error
func TestEmptyAlternationIsFatal(t *testing.T) {
	tok := &Alternation{}
	rng := rand.New(rand.NewSource(6))

	_, err := tok.Generate(rng, NewContext())
	require.Error(t, err)

	var internal *interfaces.InternalError
	assert.True(t, errors.As(err, &internal))
}

// TestQuantifierBounds tests that generation stays within the repetition
// bounds
func TestQuantifierBounds(t *testing.T) {
	tok := &Quantifier{Token: &Literal{Char: 'z'}, Min: 2, Max: 4, Greedy: true}

	for seed := int64(0); seed < 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		s, err := tok.Generate(rng, NewContext())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(s), 2)
		assert.LessOrEqual(t, len(s), 4)
		assert.Equal(t, strings.Repeat("z", len(s)), s)
	}
	assert.Equal(t, "Quantifier{2,4}", tok.Describe())
}

// TestQuantifierExactCount tests that min == max always yields exactly that
// many repetitions
func TestQuantifierExactCount(t *testing.T) {
	tok := &Quantifier{Token: &Literal{Char: 'q'}, Min: 3, Max: 3, Greedy: true}

	for seed := int64(0); seed < 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		s, err := tok.Generate(rng, NewContext())
		require.NoError(t, err)
		assert.Equal(t, "qqq", s)
	}
}

// TestQuantifierInvalidBounds tests that min > max is a fatal internal
// error, never a retryable miss
func TestQuantifierInvalidBounds(t *testing.T) {
	tok := &Quantifier{Token: &Literal{Char: 'z'}, Min: 5, Max: 2, Greedy: true}
	rng := rand.New(rand.NewSource(7))

	_, err := tok.Generate(rng, NewContext())
	require.Error(t, err)

	var internal *interfaces.InternalError
	assert.True(t, errors.As(err, &internal))
	assert.True(t, interfaces.IsFatal(err))
}

// TestQuantifierUnbounded tests that the context's repetition bound caps
// open-ended quantifiers
func TestQuantifierUnbounded(t *testing.T) {
	tok := &Quantifier{Token: &Literal{Char: 'u'}, Min: 1, Max: Unbounded, Greedy: true}

	for seed := int64(0); seed < 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		ctx := NewContextWithMaxRepeat(5)
		s, err := tok.Generate(rng, ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(s), 1)
		assert.LessOrEqual(t, len(s), 6)
	}
	assert.Equal(t, "Quantifier{1,}", tok.Describe())
}

// TestGreedyDominatesLazy tests that with paired random streams a greedy
// quantifier never produces fewer repeats than a lazy one
func TestGreedyDominatesLazy(t *testing.T) {
	greedy := &Quantifier{Token: &Literal{Char: 'g'}, Min: 0, Max: 10, Greedy: true}
	lazy := &Quantifier{Token: &Literal{Char: 'g'}, Min: 0, Max: 10, Greedy: false}

	strictly := 0
	for seed := int64(0); seed < 50; seed++ {
		sg, err := greedy.Generate(rand.New(rand.NewSource(seed)), NewContext())
		require.NoError(t, err)
		sl, err := lazy.Generate(rand.New(rand.NewSource(seed)), NewContext())
		require.NoError(t, err)

		assert.GreaterOrEqual(t, len(sg), len(sl))
		if len(sg) > len(sl) {
			strictly++
		}
	}
	assert.Positive(t, strictly)
}

// TestGroupRecordsCapture tests that a capturing group records its text in
// the capture table
func TestGroupRecordsCapture(t *testing.T) {
	tok := &Group{Inner: &Literal{Char: 'g'}, Index: 1}
	rng := rand.New(rand.NewSource(8))
	ctx := NewContext()
	ctx.GroupCount = 1

	s, err := tok.Generate(rng, ctx)
	require.NoError(t, err)
	assert.Equal(t, "g", s)

	captured, ok := ctx.Capture(1)
	assert.True(t, ok)
	assert.Equal(t, "g", captured)
	assert.Equal(t, "Group(1)", tok.Describe())
}

// TestGroupLastWriteWins tests that a repeated group overwrites earlier
// captures
func TestGroupLastWriteWins(t *testing.T) {
	group := &Group{Inner: &Class{Chars: []rune("ab")}, Index: 1}
	tok := &Quantifier{Token: group, Min: 5, Max: 5, Greedy: true}
	rng := rand.New(rand.NewSource(9))
	ctx := NewContext()
	ctx.GroupCount = 1

	s, err := tok.Generate(rng, ctx)
	require.NoError(t, err)
	require.Len(t, s, 5)

	captured, ok := ctx.Capture(1)
	require.True(t, ok)
	assert.Equal(t, string(s[len(s)-1]), captured)
}

// TestNonCapturingGroupToken tests that non-capturing groups never touch
// the capture table
func TestNonCapturingGroupToken(t *testing.T) {
	tok := &NonCapturingGroup{Inner: &Literal{Char: 'h'}}
	rng := rand.New(rand.NewSource(10))
	ctx := NewContext()
	ctx.GroupCount = 1

	s, err := tok.Generate(rng, ctx)
	require.NoError(t, err)
	assert.Equal(t, "h", s)

	_, ok := ctx.Capture(1)
	assert.False(t, ok)
	assert.Equal(t, "NonCapturingGroup", tok.Describe())
}

// TestBackreferenceZeroIndex tests that index 0 is always invalid
func TestBackreferenceZeroIndex(t *testing.T) {
	tok := &Backreference{Index: 0}
	rng := rand.New(rand.NewSource(11))

	_, err := tok.Generate(rng, NewContext())
	require.Error(t, err)

	var backref *interfaces.BackreferenceError
	assert.True(t, errors.As(err, &backref))
}

// TestBackreferenceWithoutGroups tests that a backreference that no capture
// group can ever resolve fails immediately
func TestBackreferenceWithoutGroups(t *testing.T) {
	tok := &Backreference{Index: 1}
	rng := rand.New(rand.NewSource(12))

	_, err := tok.Generate(rng, NewContext())
	require.Error(t, err)

	var backref *interfaces.BackreferenceError
	assert.True(t, errors.As(err, &backref))
	assert.True(t, interfaces.IsFatal(err))
	assert.Equal(t, "Backreference(1)", tok.Describe())
}

// TestBackwardBackreference tests the exact round-trip of a backward
// reference: (a)\1 always yields "aa"
func TestBackwardBackreference(t *testing.T) {
	tok := &Concatenation{Tokens: []Token{
		&Group{Inner: &Literal{Char: 'a'}, Index: 1},
		&Backreference{Index: 1},
	}}

	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		ctx := NewContext()
		ctx.GroupCount = 1
		s, err := tok.Generate(rng, ctx)
		require.NoError(t, err)
		assert.Equal(t, "aa", s)
	}
}

// TestBackreferenceWithClass tests that ([ab])\1\1 yields three copies of
// one character drawn from the class
func TestBackreferenceWithClass(t *testing.T) {
	tok := &Concatenation{Tokens: []Token{
		&Group{Inner: &Class{Chars: []rune("ab")}, Index: 1},
		&Backreference{Index: 1},
		&Backreference{Index: 1},
	}}

	for seed := int64(0); seed < 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		ctx := NewContext()
		ctx.GroupCount = 1
		s, err := tok.Generate(rng, ctx)
		require.NoError(t, err)
		require.Len(t, s, 3)
		assert.Contains(t, "ab", string(s[0]))
		assert.Equal(t, strings.Repeat(string(s[0]), 3), s)
	}
}

// TestForwardBackreference tests that a forward reference resolves to
// empty text and is recorded for a future resolution pass
func TestForwardBackreference(t *testing.T) {
	tok := &Concatenation{Tokens: []Token{
		&Backreference{Index: 1},
		&Group{Inner: &Literal{Char: 'a'}, Index: 1},
	}}
	rng := rand.New(rand.NewSource(13))
	ctx := NewContext()
	ctx.GroupCount = 1

	s, err := tok.Generate(rng, ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", s)

	unresolved := ctx.Unresolved()
	require.Len(t, unresolved, 1)
	assert.Equal(t, 1, unresolved[0].Index)
	assert.Equal(t, 0, unresolved[0].Position)
}

// TestAnchorTokens tests that anchors and word boundaries generate empty
// text
func TestAnchorTokens(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	ctx := NewContext()

	for _, tok := range []Token{&AnchorStart{}, &AnchorEnd{}, &WordBoundary{}} {
		s, err := tok.Generate(rng, ctx)
		require.NoError(t, err)
		assert.Empty(t, s)
	}
	assert.Equal(t, "AnchorStart", (&AnchorStart{}).Describe())
	assert.Equal(t, "AnchorEnd", (&AnchorEnd{}).Describe())
	assert.Equal(t, "WordBoundary", (&WordBoundary{}).Describe())
}

// TestWildcardToken tests that wildcards draw from the alphanumeric
// alphabet
func TestWildcardToken(t *testing.T) {
	tok := &Wildcard{}

	for seed := int64(0); seed < 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		s, err := tok.Generate(rng, NewContext())
		require.NoError(t, err)
		require.Len(t, s, 1)
		assert.Contains(t, Alphabet, s)
	}
	assert.Equal(t, "Wildcard", tok.Describe())
}
