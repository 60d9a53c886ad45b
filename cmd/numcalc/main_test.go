package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/commonerrors/errortest"
	"github.com/ARM-software/golang-numeric/numeric"
)

func runNumcalc(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, strings.TrimSpace(out.String()), errOut.String()
}

func TestRun(t *testing.T) {
	defer goleak.VerifyNone(t)
	tests := []struct {
		args     []string
		expected string
		code     int
	}{
		{args: []string{"2", "+", "3"}, expected: "5", code: exitOK},
		{args: []string{"--kind", "Float32", "10.5", "+", "35"}, expected: "45.5", code: exitOK},
		{args: []string{"--kind", "Int32", "100", "-", "30"}, expected: "70", code: exitOK},
		{args: []string{"--kind", "Float64", "35.7", "-", "10"}, expected: "25.7", code: exitOK},
		{args: []string{"54", "*", "32"}, expected: "1728", code: exitOK},
		{args: []string{"35", "x", "5"}, expected: "175", code: exitOK},
		{args: []string{"--kind", "Int32", "150", "/", "3"}, expected: "50", code: exitOK},
		{args: []string{"7", "/", "2"}, expected: "3.5", code: exitOK},
		{args: []string{"--kind", "Int64", "7", "/", "2"}, expected: "3", code: exitOK},
		{args: []string{"--", "-7", "/", "2", "*", "2"}, expected: "-7", code: exitOK},
		{args: []string{"--division-precision", "2", "2", "/", "3"}, expected: "0.67", code: exitOK},
		{args: []string{"--kind", "Byte", "560"}, expected: numeric.EmptyText, code: exitEmpty},
		{args: []string{"--log-level", "ERROR", "5", "/", "0"}, expected: numeric.EmptyText, code: exitEmpty},
		{args: []string{"--log-level", "ERROR", "abc"}, expected: numeric.EmptyText, code: exitEmpty},
		{args: []string{}, code: exitUsage},
		{args: []string{"1", "+"}, code: exitUsage},
		{args: []string{"1", "%", "2"}, code: exitUsage},
		{args: []string{"--kind", "decimal", "1"}, code: exitUsage},
		{args: []string{"--log-level", "LOUD", "1"}, code: exitUsage},
		{args: []string{"--log-format", "xml", "1"}, code: exitUsage},
		{args: []string{"--division-precision", "-1", "1"}, code: exitUsage},
		{args: []string{"--" + faker.Word(), "1"}, code: exitUsage},
		{args: []string{"--help"}, code: exitOK},
	}
	for i := range tests {
		test := tests[i]
		t.Run(strings.Join(test.args, " "), func(t *testing.T) {
			code, stdout, _ := runNumcalc(t, test.args...)
			assert.Equal(t, test.code, code)
			assert.Equal(t, test.expected, stdout)
		})
	}
}

func TestRunLogging(t *testing.T) {
	code, stdout, stderr := runNumcalc(t, "--log-format", "text", "--log-level", "TRACE", "5", "/", "0")
	assert.Equal(t, exitEmpty, code)
	assert.Equal(t, numeric.EmptyText, stdout)
	assert.Contains(t, stderr, "[ERROR]")
	assert.Contains(t, stderr, "division of 5 by zero")
	assert.Contains(t, stderr, "[DEBUG]")
	assert.Contains(t, stderr, "expression evaluated")

	_, _, stderr = runNumcalc(t, "--log-format", "text", "--log-level", "ERROR", "1", "+", "2")
	assert.Empty(t, stderr)
}

func TestRunEnvironment(t *testing.T) {
	t.Setenv("NUMERIC_DIVISION_PRECISION", "3")
	code, stdout, _ := runNumcalc(t, "2", "/", "3")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "0.667", stdout)

	_, stdout, _ = runNumcalc(t, "--division-precision", "1", "2", "/", "3")
	assert.Equal(t, "0.7", stdout)

	t.Setenv("NUMERIC_LOGGING_LEVEL", "info")
	code, _, stderr := runNumcalc(t, "1")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "NUMERIC_LOGGING")
}

func TestEvaluate(t *testing.T) {
	f := numeric.NewFactory()
	result, err := evaluate(f, []string{"1", "+", "2", "*", "3", "/", "4"})
	require.NoError(t, err)
	assert.Equal(t, "2.25", result.String())

	result, err = evaluate(f, []string{"1", "+", "abc", "-", "3"})
	require.NoError(t, err)
	assert.Equal(t, "-2", result.String())

	_, err = evaluate(f, nil)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	_, err = evaluate(f, []string{"1", "^", "2"})
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	_, err = evaluate(f, []string{"1", "%", "2", "+", "3", "^", "4", "%", "5"})
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	errortest.AssertErrorReason(t, err, `unknown operators ["%" "^"]`)
}
