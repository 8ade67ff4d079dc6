/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine.go
Description: Generation engine for Genrex. Runs the layered retry strategy over
three tactics - token-tree walking, the legacy whole-tree fallback, and rejection
sampling - under shared attempt and wall-clock budgets, with fail-fast handling
of permanent capability errors and structured rejection diagnostics.
*/

package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/genrex/pkg/ast"
	"github.com/kleascm/genrex/pkg/interfaces"
	"github.com/kleascm/genrex/pkg/tokens"
	"github.com/sirupsen/logrus"
)

// Tactic names reported in stats and accepted by GenerateWithStrategy.
const (
	TacticToken     = "token"
	TacticLegacy    = "legacy"
	TacticRejection = "rejection"
	TacticDefault   = "default"
)

// Engine generates strings matching a compiled pattern. It owns its random
// source exclusively and is not safe for concurrent use without external
// synchronization: this is a sequential sampling loop, not a service.
type Engine struct {
	id         string
	pattern    string
	root       tokens.Token // token tree, nil when the pattern is empty
	groupCount int
	legacy     ast.Node // superseded whole-tree fallback
	validator  interfaces.Validator
	rng        *rand.Rand
	config     interfaces.GeneratorConfig
	logger     *logrus.Logger
	stats      interfaces.GenerationStats
}

// GenerateOne produces a single validated string using the first applicable
// tactic: the token tree when one exists, the legacy tree when only that
// exists, and rejection sampling as the last resort.
func (e *Engine) GenerateOne() (string, error) {
	start := time.Now()
	if e.root != nil {
		return e.generateFromTokens(start)
	}
	if e.legacy != nil {
		return e.generateLegacy()
	}
	return e.generateRejection(start)
}

// GenerateN produces n validated strings, stopping at the first error.
func (e *Engine) GenerateN(n int) ([]string, error) {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		s, err := e.GenerateOne()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// GenerateWithStrategy generates using a named tactic. "default" and "token"
// follow the normal ordering; "rejection" forces rejection sampling.
func (e *Engine) GenerateWithStrategy(strategy string) (string, error) {
	switch strategy {
	case TacticDefault, TacticToken:
		return e.GenerateOne()
	case TacticRejection:
		return e.generateRejection(time.Now())
	default:
		return "", &interfaces.UnsupportedFeatureError{Feature: fmt.Sprintf("generation strategy %q", strategy)}
	}
}

// generateFromTokens walks the token tree once per attempt with a fresh
// context. Retryable misses (length out of range, validator mismatch) spend
// an attempt; permanent capability errors abort immediately.
func (e *Engine) generateFromTokens(start time.Time) (string, error) {
	e.stats.LastTactic = TacticToken
	for attempt := 0; attempt < e.config.MaxAttempts; attempt++ {
		if e.deadlineExceeded(start) {
			return "", interfaces.ErrTimeout
		}
		e.stats.Attempts++

		ctx := tokens.NewContext()
		ctx.GroupCount = e.groupCount
		candidate, err := e.root.Generate(e.rng, ctx)
		if err != nil {
			if interfaces.IsFatal(err) {
				return "", err
			}
			continue
		}

		if reason, ok := e.accept(candidate); !ok {
			e.logRejection(attempt, candidate, reason)
			continue
		}
		return e.finish(candidate, attempt)
	}
	return "", interfaces.ErrNoMatch
}

// generateLegacy runs a single, non-retried pass over the legacy tree.
func (e *Engine) generateLegacy() (string, error) {
	e.stats.LastTactic = TacticLegacy
	e.stats.Attempts++
	candidate, err := e.legacy.Generate(e.rng)
	if err != nil {
		return "", err
	}
	if reason, ok := e.accept(candidate); !ok {
		e.logRejection(0, candidate, reason)
		return "", interfaces.ErrNoMatch
	}
	return e.finish(candidate, 0)
}

// generateRejection draws uniformly random alphanumeric candidates of random
// length within bounds until the validator accepts one.
func (e *Engine) generateRejection(start time.Time) (string, error) {
	e.stats.LastTactic = TacticRejection
	for attempt := 0; attempt < e.config.MaxAttempts; attempt++ {
		if e.deadlineExceeded(start) {
			return "", interfaces.ErrTimeout
		}
		e.stats.Attempts++

		length := e.config.MinLen
		if e.config.MaxLen > e.config.MinLen {
			length += e.rng.Intn(e.config.MaxLen - e.config.MinLen + 1)
		}
		var b strings.Builder
		b.Grow(length)
		for i := 0; i < length; i++ {
			b.WriteByte(tokens.Alphabet[e.rng.Intn(len(tokens.Alphabet))])
		}
		candidate := b.String()

		if !e.validator.IsMatch(candidate) {
			e.stats.ValidatorRejections++
			e.logRejection(attempt, candidate, "validator mismatch")
			continue
		}
		return e.finish(candidate, attempt)
	}
	return "", interfaces.ErrNoMatch
}

// accept applies the length bounds and the external validator. Returns the
// rejection reason when the candidate is discarded.
func (e *Engine) accept(candidate string) (string, bool) {
	if len(candidate) < e.config.MinLen || len(candidate) > e.config.MaxLen {
		e.stats.LengthRejections++
		return "length out of range", false
	}
	if !e.validator.IsMatch(candidate) {
		e.stats.ValidatorRejections++
		return "validator mismatch", false
	}
	return "", true
}

// finish records a successful candidate.
func (e *Engine) finish(candidate string, attempt int) (string, error) {
	e.stats.Generated++
	if e.config.Verbose {
		e.logger.WithFields(logrus.Fields{
			"session":   e.id,
			"tactic":    e.stats.LastTactic,
			"attempt":   attempt + 1,
			"candidate": candidate,
		}).Info("Candidate accepted")
	}
	return candidate, nil
}

// logRejection reports a discarded candidate when verbose diagnostics are
// enabled.
func (e *Engine) logRejection(attempt int, candidate, reason string) {
	if !e.config.Verbose {
		return
	}
	e.logger.WithFields(logrus.Fields{
		"session":   e.id,
		"tactic":    e.stats.LastTactic,
		"attempt":   attempt + 1,
		"candidate": candidate,
		"reason":    reason,
	}).Debug("Candidate rejected")
}

// deadlineExceeded checks the coarse per-attempt time budget. A running
// attempt is never interrupted; the budget is only consulted between
// attempts.
func (e *Engine) deadlineExceeded(start time.Time) bool {
	return e.config.Timeout > 0 && time.Since(start) >= e.config.Timeout
}

// ID returns the engine's generation-session identifier.
func (e *Engine) ID() string {
	return e.id
}

// Pattern returns the pattern text the engine was built from.
func (e *Engine) Pattern() string {
	return e.pattern
}

// GroupCount returns the number of capture groups in the pattern.
func (e *Engine) GroupCount() int {
	return e.groupCount
}

// Describe returns a structural description of the compiled token tree, or
// an empty string for an empty pattern.
func (e *Engine) Describe() string {
	if e.root == nil {
		return ""
	}
	return e.root.Describe()
}

// Stats returns a snapshot of the engine's generation statistics.
func (e *Engine) Stats() interfaces.GenerationStats {
	return e.stats
}

// IsMultiline reports whether multiline mode is enabled. The flag is carried
// for callers; the core does not enforce it.
func (e *Engine) IsMultiline() bool {
	return e.config.Multiline
}

// SetMinLen updates the minimum candidate length.
func (e *Engine) SetMinLen(min int) {
	e.config.MinLen = min
}

// SetMaxLen updates the maximum candidate length.
func (e *Engine) SetMaxLen(max int) {
	e.config.MaxLen = max
}

// SetMaxAttempts updates the attempt budget.
func (e *Engine) SetMaxAttempts(attempts int) {
	e.config.MaxAttempts = attempts
}

// SetTimeout updates the wall-clock budget. Zero disables it.
func (e *Engine) SetTimeout(timeout time.Duration) {
	e.config.Timeout = timeout
}

// SetMultiline toggles the carried multiline flag.
func (e *Engine) SetMultiline(enabled bool) {
	e.config.Multiline = enabled
}

// Interface conformance.
var (
	_ interfaces.StringGenerator = (*Engine)(nil)
	_ interfaces.Configurable    = (*Engine)(nil)
	_ interfaces.GenerationAgent = (*Engine)(nil)
)

// newSessionID tags an engine instance for log correlation.
func newSessionID() string {
	return uuid.New().String()
}
