/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: validator.go
Description: Validator adapters for the Genrex generator. Wraps the standard regexp
engine as the boolean matching oracle, with a permissive always-accept substitute
for patterns the engine cannot compile when backreference tolerance is enabled.
*/

package generator

import (
	"regexp"

	"github.com/kleascm/genrex/pkg/interfaces"
)

// regexpValidator adapts the standard regexp engine to the Validator
// contract.
type regexpValidator struct {
	re *regexp.Regexp
}

func (v *regexpValidator) IsMatch(candidate string) bool {
	return v.re.MatchString(candidate)
}

// permissiveValidator accepts every candidate. Used when the pattern relies
// on features the validator engine cannot compile (backreferences) and the
// tolerance flag is set; generation-side correctness is all that remains.
type permissiveValidator struct{}

func (permissiveValidator) IsMatch(candidate string) bool {
	return true
}

// compileValidator compiles the pattern into a matching oracle. On a compile
// failure the permissive validator is substituted when tolerance is enabled;
// otherwise the failure is fatal to construction.
func compileValidator(pattern string, allowBackrefs bool) (interfaces.Validator, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		if allowBackrefs {
			return permissiveValidator{}, nil
		}
		return nil, &interfaces.InvalidPatternError{Pattern: pattern, Cause: err}
	}
	return &regexpValidator{re: re}, nil
}
