// Package errortest provides test assertions on errors defined in commonerrors.
package errortest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ARM-software/golang-numeric/commonerrors"
)

// AssertError asserts that err matches one of `expectedErrors` (see commonerrors.Any).
func AssertError(t *testing.T, err error, expectedErrors ...error) bool {
	t.Helper()
	return check(t, commonerrors.Any(err, expectedErrors...), "error", err, expectedErrors)
}

// AssertErrorDescription asserts that the description of err contains one of `expectedErrorDescriptions` (see commonerrors.CorrespondTo).
func AssertErrorDescription(t *testing.T, err error, expectedErrorDescriptions ...string) bool {
	t.Helper()
	return check(t, commonerrors.CorrespondTo(err, expectedErrorDescriptions...), "error description", err, expectedErrorDescriptions)
}

// AssertErrorReason asserts that err is a commonerror carrying exactly `expectedReason`.
func AssertErrorReason(t *testing.T, err error, expectedReason string) bool {
	t.Helper()
	reason, subErr := commonerrors.GetCommonErrorReason(err)
	return check(t, subErr == nil && reason == expectedReason, "error reason", err, expectedReason)
}

// RequireError is similar to AssertError but stops the test on failure.
func RequireError(t *testing.T, err error, expectedErrors ...error) {
	t.Helper()
	if !AssertError(t, err, expectedErrors...) {
		t.FailNow()
	}
}

// RequireErrorDescription is similar to AssertErrorDescription but stops the test on failure.
func RequireErrorDescription(t *testing.T, err error, expectedErrorDescriptions ...string) {
	t.Helper()
	if !AssertErrorDescription(t, err, expectedErrorDescriptions...) {
		t.FailNow()
	}
}

func check(t *testing.T, ok bool, what string, actual error, expected any) bool {
	t.Helper()
	if ok {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Failed %v assertion:\n actual: %v\n expected: %+v", what, actual, expected))
}
