/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared interfaces and types for the Genrex generator. Defines the core
interfaces used across all packages to break import cycles and enable proper
modular design.
*/

package interfaces

import (
	"fmt"
	"time"
)

// Validator is the external matching oracle used to confirm that a generated
// candidate belongs to the pattern's language. The generator only ever asks
// for a boolean verdict; it never inspects match spans.
type Validator interface {
	IsMatch(candidate string) bool
}

// StringGenerator produces strings matching a compiled pattern.
type StringGenerator interface {
	// GenerateOne returns a single validated string, or an error if the
	// attempt/time budget is exhausted or generation hits a permanent
	// capability gap.
	GenerateOne() (string, error)

	// GenerateN returns n validated strings, stopping at the first error.
	GenerateN(n int) ([]string, error)

	// IsMultiline reports whether multiline mode is enabled.
	IsMultiline() bool
}

// Configurable allows runtime reconfiguration of an existing generator.
type Configurable interface {
	SetMinLen(min int)
	SetMaxLen(max int)
	SetMaxAttempts(attempts int)
	SetTimeout(timeout time.Duration)
	SetMultiline(enabled bool)
}

// GenerationAgent exposes named generation strategies for callers that want
// to bypass the default tactic ordering.
type GenerationAgent interface {
	GenerateWithStrategy(strategy string) (string, error)
}

// GeneratorConfig represents the configuration for a generator instance.
// Constructed once via the Builder; the engine copies it and applies
// Configurable setters on its own copy.
type GeneratorConfig struct {
	MinLen        int           // Inclusive lower bound on candidate length
	MaxLen        int           // Inclusive upper bound on candidate length
	MaxAttempts   int           // Attempt budget shared across tactics
	Timeout       time.Duration // Optional wall-clock budget, 0 disables
	Multiline     bool          // Carried flag, not enforced by the core
	AllowBackrefs bool          // Substitute a permissive validator when the pattern will not compile
	Verbose       bool          // Log every rejected candidate with its reason
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		MinLen:      0,
		MaxLen:      64,
		MaxAttempts: 10000,
		Timeout:     0,
	}
}

// Validate checks the GeneratorConfig for invalid or missing values.
// Returns an error if the config is invalid, or nil if valid.
func (c *GeneratorConfig) Validate() error {
	if c.MinLen < 0 {
		return fmt.Errorf("min_len must not be negative")
	}
	if c.MaxLen < c.MinLen {
		return fmt.Errorf("max_len must be >= min_len")
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("max_attempts must be positive")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

// GenerationStats tracks what happened during a generator's lifetime.
type GenerationStats struct {
	SessionID           string
	StartTime           time.Time
	Attempts            int64
	LengthRejections    int64
	ValidatorRejections int64
	Generated           int64
	LastTactic          string
}
