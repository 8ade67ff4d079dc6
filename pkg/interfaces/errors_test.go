/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors_test.go
Description: Tests for the error taxonomy. Covers error messages, unwrapping,
and the fatal/retryable classification used by the generation retry loop.
*/

package interfaces

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrorMessages tests the formatted message of each error type
func TestErrorMessages(t *testing.T) {
	cause := errors.New("missing closing )")
	invalid := &InvalidPatternError{Pattern: "(", Cause: cause}
	assert.Equal(t, "invalid regex pattern: missing closing )", invalid.Error())

	unsupported := &UnsupportedFeatureError{Feature: "negated character class"}
	assert.Equal(t, "unsupported regex feature: negated character class", unsupported.Error())

	backref := &BackreferenceError{Index: 3, Reason: "reference to group 3 but only 1 group exists"}
	assert.Equal(t, "backreference or group error: reference to group 3 but only 1 group exists", backref.Error())

	internal := &InternalError{Msg: "quantifier min 5 exceeds max 2"}
	assert.Equal(t, "internal error: quantifier min 5 exceeds max 2", internal.Error())
}

// TestInvalidPatternUnwrap tests that the compile cause is reachable through
// the error chain
func TestInvalidPatternUnwrap(t *testing.T) {
	cause := errors.New("bad escape")
	invalid := &InvalidPatternError{Pattern: `\q`, Cause: cause}

	assert.ErrorIs(t, invalid, cause)

	wrapped := fmt.Errorf("build failed: %w", invalid)
	var target *InvalidPatternError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, `\q`, target.Pattern)
}

// TestIsFatal tests the fatal/retryable split
func TestIsFatal(t *testing.T) {
	assert.True(t, IsFatal(&UnsupportedFeatureError{Feature: "x"}))
	assert.True(t, IsFatal(&BackreferenceError{Index: 0, Reason: "zero index"}))
	assert.True(t, IsFatal(&InternalError{Msg: "x"}))

	assert.False(t, IsFatal(ErrNoMatch))
	assert.False(t, IsFatal(ErrTimeout))
	assert.False(t, IsFatal(&InvalidPatternError{Pattern: "(", Cause: errors.New("x")}))
	assert.False(t, IsFatal(nil))
	assert.False(t, IsFatal(errors.New("some sampling miss")))
}

// TestIsFatalThroughWrapping tests that classification survives error wrapping
func TestIsFatalThroughWrapping(t *testing.T) {
	err := fmt.Errorf("attempt 3: %w", &InternalError{Msg: "empty class"})
	assert.True(t, IsFatal(err))
}

// TestConfigValidate tests the generator configuration constraints
func TestConfigValidate(t *testing.T) {
	config := DefaultConfig()
	assert.NoError(t, config.Validate())

	config = DefaultConfig()
	config.MinLen = -1
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.MinLen = 10
	config.MaxLen = 5
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.MaxAttempts = 0
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.Timeout = -1
	assert.Error(t, config.Validate())
}
