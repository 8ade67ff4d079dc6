/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: tokenizer.go
Description: Single-pass pattern tokenizer for the Genrex generator. Scans pattern
text left to right into a token tree, assigning capture-group identities in
opening-parenthesis order, with a nesting-depth budget against adversarial input.
*/

package tokenizer

import (
	"fmt"
	"strings"

	"github.com/kleascm/genrex/pkg/interfaces"
	"github.com/kleascm/genrex/pkg/tokens"
)

// MaxNestingDepth bounds recursive descent into groups and alternation
// branches. Patterns nesting deeper than this fail tokenization instead of
// exhausting the call stack.
const MaxNestingDepth = 64

const (
	digitChars = "0123456789"
	wordChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_"
	spaceChars = " \t\n\r\f\v"
)

// Tokenize scans a pattern into its token tree. Returns the top-level token
// list (an implicit concatenation) and the number of capture groups
// assigned. Malformed syntax degrades to literal characters or truncated
// classes; the only error is the nesting-depth budget.
func Tokenize(pattern string) ([]tokens.Token, int, error) {
	nextGroup := 1
	toks, err := scan([]rune(pattern), &nextGroup, 0)
	if err != nil {
		return nil, 0, err
	}
	return toks, nextGroup - 1, nil
}

// scan is the recursive worker. nextGroup is shared across recursive calls
// so nested groups receive distinct, increasing identities regardless of
// which alternation branch they appear in.
func scan(pat []rune, nextGroup *int, depth int) ([]tokens.Token, error) {
	if depth > MaxNestingDepth {
		return nil, &interfaces.InvalidPatternError{
			Pattern: string(pat),
			Cause:   fmt.Errorf("pattern nesting exceeds depth budget of %d", MaxNestingDepth),
		}
	}

	var out []tokens.Token
	i := 0
	for i < len(pat) {
		c := pat[i]
		switch c {
		case '[':
			node, next := scanClass(pat, i)
			out = append(out, node)
			i = next

		case '.':
			out = append(out, &tokens.Wildcard{})
			i++

		case '^':
			out = append(out, &tokens.AnchorStart{})
			i++

		case '$':
			out = append(out, &tokens.AnchorEnd{})
			i++

		case '\\':
			if i+1 >= len(pat) {
				out = append(out, &tokens.Literal{Char: '\\'})
				i++
				break
			}
			out = append(out, escapeToken(pat[i+1]))
			i += 2

		case '(':
			node, next, err := scanGroup(pat, i, nextGroup, depth)
			if err != nil {
				return nil, err
			}
			out = append(out, node)
			i = next

		case '?', '*', '+':
			if len(out) == 0 {
				out = append(out, &tokens.Literal{Char: c})
				i++
				break
			}
			var lo, hi int
			switch c {
			case '?':
				lo, hi = 0, 1
			case '*':
				lo, hi = 0, tokens.Unbounded
			case '+':
				lo, hi = 1, tokens.Unbounded
			}
			i++
			greedy := true
			if i < len(pat) && pat[i] == '?' {
				greedy = false
				i++
			}
			out[len(out)-1] = &tokens.Quantifier{
				Token:  out[len(out)-1],
				Min:    lo,
				Max:    hi,
				Greedy: greedy,
			}

		case '{':
			lo, hi, next, ok := scanBounds(pat, i)
			if !ok || len(out) == 0 {
				out = append(out, &tokens.Literal{Char: '{'})
				i++
				break
			}
			i = next
			greedy := true
			if i < len(pat) && pat[i] == '?' {
				greedy = false
				i++
			}
			out[len(out)-1] = &tokens.Quantifier{
				Token:  out[len(out)-1],
				Min:    lo,
				Max:    hi,
				Greedy: greedy,
			}

		case '|':
			// Two-way split: everything scanned so far becomes the
			// left branch, the rest of the pattern the right. A
			// second '|' in the remainder nests inside the right
			// branch rather than flattening.
			right, err := scan(pat[i+1:], nextGroup, depth+1)
			if err != nil {
				return nil, err
			}
			alt := &tokens.Alternation{Choices: []tokens.Token{
				&tokens.Concatenation{Tokens: out},
				&tokens.Concatenation{Tokens: right},
			}}
			return []tokens.Token{alt}, nil

		default:
			out = append(out, &tokens.Literal{Char: c})
			i++
		}
	}
	return out, nil
}

// scanClass consumes a [...] or [^...] class starting at the opening bracket.
// Members are the literal characters between the brackets; a missing closing
// bracket truncates the class at end of input.
func scanClass(pat []rune, i int) (tokens.Token, int) {
	j := i + 1
	negated := false
	if j < len(pat) && pat[j] == '^' {
		negated = true
		j++
	}
	var members []rune
	for j < len(pat) && pat[j] != ']' {
		members = append(members, pat[j])
		j++
	}
	if j < len(pat) {
		j++ // closing bracket
	}
	if negated {
		return &tokens.NegatedClass{Chars: members}, j
	}
	return &tokens.Class{Chars: members}, j
}

// scanGroup consumes a (...) or (?:...) group starting at the opening
// parenthesis. Capture identities are allocated before the inner scan so
// outer groups number lower than the groups they contain. An unbalanced
// parenthesis degrades to a literal '('.
func scanGroup(pat []rune, i int, nextGroup *int, depth int) (tokens.Token, int, error) {
	end := matchingParen(pat, i)
	if end < 0 {
		return &tokens.Literal{Char: '('}, i + 1, nil
	}

	start := i + 1
	capturing := true
	if strings.HasPrefix(string(pat[start:end]), "?:") {
		capturing = false
		start += 2
	}

	if capturing {
		index := *nextGroup
		*nextGroup++
		inner, err := scan(pat[start:end], nextGroup, depth+1)
		if err != nil {
			return nil, 0, err
		}
		return &tokens.Group{Inner: wrap(inner), Index: index}, end + 1, nil
	}

	inner, err := scan(pat[start:end], nextGroup, depth+1)
	if err != nil {
		return nil, 0, err
	}
	return &tokens.NonCapturingGroup{Inner: wrap(inner)}, end + 1, nil
}

// matchingParen returns the index of the parenthesis closing the one at
// open, skipping escaped characters, or -1 if the pattern is unbalanced.
func matchingParen(pat []rune, open int) int {
	level := 0
	for j := open; j < len(pat); j++ {
		switch pat[j] {
		case '\\':
			j++
		case '(':
			level++
		case ')':
			level--
			if level == 0 {
				return j
			}
		}
	}
	return -1
}

// scanBounds parses {m}, {m,n}, or {m,} starting at the opening brace.
// Returns ok=false when the syntax is malformed, in which case the brace is
// treated as a literal.
func scanBounds(pat []rune, i int) (lo, hi, next int, ok bool) {
	j := i + 1
	lo, j, ok = scanNumber(pat, j)
	if !ok {
		return 0, 0, 0, false
	}
	if j < len(pat) && pat[j] == '}' {
		return lo, lo, j + 1, true
	}
	if j >= len(pat) || pat[j] != ',' {
		return 0, 0, 0, false
	}
	j++
	if j < len(pat) && pat[j] == '}' {
		return lo, tokens.Unbounded, j + 1, true
	}
	hi, j, ok = scanNumber(pat, j)
	if !ok || j >= len(pat) || pat[j] != '}' {
		return 0, 0, 0, false
	}
	return lo, hi, j + 1, true
}

// scanNumber reads a run of decimal digits.
func scanNumber(pat []rune, i int) (value, next int, ok bool) {
	j := i
	for j < len(pat) && pat[j] >= '0' && pat[j] <= '9' {
		value = value*10 + int(pat[j]-'0')
		j++
	}
	return value, j, j > i
}

// escapeToken maps the character after a backslash to its token.
func escapeToken(c rune) tokens.Token {
	switch c {
	case 'b':
		return &tokens.WordBoundary{}
	case 'd':
		return &tokens.Class{Chars: []rune(digitChars)}
	case 'D':
		return &tokens.NegatedClass{Chars: []rune(digitChars)}
	case 'w':
		return &tokens.Class{Chars: []rune(wordChars)}
	case 'W':
		return &tokens.NegatedClass{Chars: []rune(wordChars)}
	case 's':
		return &tokens.Class{Chars: []rune(spaceChars)}
	case 'S':
		return &tokens.NegatedClass{Chars: []rune(spaceChars)}
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return &tokens.Backreference{Index: int(c - '0')}
	default:
		return &tokens.Literal{Char: c}
	}
}

// wrap collapses a scanned token list into a single node.
func wrap(toks []tokens.Token) tokens.Token {
	if len(toks) == 1 {
		return toks[0]
	}
	return &tokens.Concatenation{Tokens: toks}
}
