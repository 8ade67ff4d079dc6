/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: builder.go
Description: Builder for the Genrex generation engine. Accumulates pattern text,
configuration, an optional deterministic random source, and tolerance flags, then
performs tokenization, legacy-tree derivation, and validator compilation.
*/

package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/kleascm/genrex/pkg/ast"
	"github.com/kleascm/genrex/pkg/interfaces"
	"github.com/kleascm/genrex/pkg/tokenizer"
	"github.com/kleascm/genrex/pkg/tokens"
	"github.com/sirupsen/logrus"
)

// Builder assembles a generation engine step by step.
type Builder struct {
	pattern string
	config  interfaces.GeneratorConfig
	rng     *rand.Rand
	logger  *logrus.Logger
}

// NewBuilder creates a builder for the given pattern with the default
// configuration.
func NewBuilder(pattern string) *Builder {
	return &Builder{
		pattern: pattern,
		config:  interfaces.DefaultConfig(),
	}
}

// Config replaces the whole configuration.
func (b *Builder) Config(config interfaces.GeneratorConfig) *Builder {
	b.config = config
	return b
}

// MinLen sets the minimum candidate length.
func (b *Builder) MinLen(min int) *Builder {
	b.config.MinLen = min
	return b
}

// MaxLen sets the maximum candidate length.
func (b *Builder) MaxLen(max int) *Builder {
	b.config.MaxLen = max
	return b
}

// MaxAttempts sets the attempt budget.
func (b *Builder) MaxAttempts(attempts int) *Builder {
	b.config.MaxAttempts = attempts
	return b
}

// Timeout sets the optional wall-clock budget. Zero disables it.
func (b *Builder) Timeout(timeout time.Duration) *Builder {
	b.config.Timeout = timeout
	return b
}

// Multiline sets the carried multiline flag.
func (b *Builder) Multiline(enabled bool) *Builder {
	b.config.Multiline = enabled
	return b
}

// AllowBackrefs enables validator tolerance: when the pattern uses features
// the validator engine cannot compile, a permissive always-accept validator
// is substituted instead of failing construction.
func (b *Builder) AllowBackrefs() *Builder {
	b.config.AllowBackrefs = true
	return b
}

// Verbose enables per-candidate rejection diagnostics.
func (b *Builder) Verbose(enabled bool) *Builder {
	b.config.Verbose = enabled
	return b
}

// Rng injects a deterministic random source. Absent, the engine seeds one
// from the clock.
func (b *Builder) Rng(rng *rand.Rand) *Builder {
	b.rng = rng
	return b
}

// Seed is a convenience for Rng with a seeded source.
func (b *Builder) Seed(seed int64) *Builder {
	b.rng = rand.New(rand.NewSource(seed))
	return b
}

// Logger injects the logger used for diagnostics.
func (b *Builder) Logger(logger *logrus.Logger) *Builder {
	b.logger = logger
	return b
}

// Build tokenizes the pattern, derives the legacy fallback tree, compiles
// the external validator, and yields a working engine or a construction
// error.
func (b *Builder) Build() (*Engine, error) {
	if err := b.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator configuration: %w", err)
	}

	toks, groupCount, err := tokenizer.Tokenize(b.pattern)
	if err != nil {
		return nil, err
	}

	validator, err := compileValidator(b.pattern, b.config.AllowBackrefs)
	if err != nil {
		return nil, err
	}

	var root tokens.Token
	if len(toks) > 0 {
		root = &tokens.Concatenation{Tokens: toks}
	}

	rng := b.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := b.logger
	if logger == nil {
		logger = logrus.New()
	}

	id := newSessionID()
	return &Engine{
		id:         id,
		pattern:    b.pattern,
		root:       root,
		groupCount: groupCount,
		legacy:     ast.NewParser(toks).Parse(),
		validator:  validator,
		rng:        rng,
		config:     b.config,
		logger:     logger,
		stats: interfaces.GenerationStats{
			SessionID: id,
			StartTime: time.Now(),
		},
	}, nil
}
