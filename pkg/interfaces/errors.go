/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Error taxonomy for the Genrex generator. Distinguishes recoverable
sampling misses from permanent capability gaps and internal invariant violations
so the retry loop can fail fast where retrying cannot help.
*/

package interfaces

import (
	"errors"
	"fmt"
)

// ErrNoMatch is returned when the attempt budget is exhausted without a
// validated candidate. Recoverable: the caller may retry with a looser config.
var ErrNoMatch = errors.New("no match found within constraints")

// ErrTimeout is returned when the wall-clock budget expires before a
// validated candidate is found. The budget is checked once per attempt.
var ErrTimeout = errors.New("timeout reached during generation")

// InvalidPatternError indicates the validator rejected the pattern at compile
// time. Fatal to construction unless backreference tolerance is enabled.
type InvalidPatternError struct {
	Pattern string
	Cause   error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid regex pattern: %v", e.Cause)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Cause
}

// UnsupportedFeatureError indicates a structural capability gap, such as
// negated-class generation. Retrying will not help.
type UnsupportedFeatureError struct {
	Feature string
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("unsupported regex feature: %s", e.Feature)
}

// BackreferenceError indicates an invalid backreference: index zero, or a
// reference that no capture group in the pattern can ever resolve.
type BackreferenceError struct {
	Index  int
	Reason string
}

func (e *BackreferenceError) Error() string {
	return fmt.Sprintf("backreference or group error: %s", e.Reason)
}

// InternalError indicates an invariant violation (malformed quantifier
// bounds, empty class or alternation reaching the generator). These point at
// a tokenizer or construction bug and must never be retried.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Msg)
}

// IsFatal reports whether err is a permanent generation failure. The retry
// loop aborts immediately on fatal errors instead of exhausting the attempt
// budget on a condition that cannot change between attempts.
func IsFatal(err error) bool {
	var unsupported *UnsupportedFeatureError
	var backref *BackreferenceError
	var internal *InternalError
	return errors.As(err, &unsupported) || errors.As(err, &backref) || errors.As(err, &internal)
}
