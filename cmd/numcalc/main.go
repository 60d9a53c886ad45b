/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// numcalc evaluates an arithmetic expression from left to right and prints the result as a numeric kind.
//
//	numcalc [--kind K] [--division-precision N] [--log-level L] [--log-format F] [--] <value> [<op> <value>]...
//
// Operators are `+`, `-`, `*` (or `x`) and `/`. Use `--` before an expression starting with a negative number.
// Flags can also be set using the environment variables NUMERIC_DIVISION_PRECISION, NUMERIC_LOGGING_LEVEL and NUMERIC_LOGGING_FORMAT.
// The exit code is 0 if a value is printed, 1 if the result is empty and 2 on usage errors.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/config"
	"github.com/ARM-software/golang-numeric/logs"
	"github.com/ARM-software/golang-numeric/numeric"
	"github.com/ARM-software/golang-numeric/safeparse"
)

const (
	exitOK    = 0
	exitEmpty = 1
	exitUsage = 2

	flagKind              = "kind"
	flagDivisionPrecision = "division-precision"
	flagLogLevel          = "log-level"
	flagLogFormat         = "log-format"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("numcalc", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	defaults := numeric.DefaultConfiguration()
	kindName := flags.String(flagKind, numeric.Decimal.String(), fmt.Sprintf("kind of the printed result (%v)", strings.Join(numeric.KindStrings(), ", ")))
	flags.Int32(flagDivisionPrecision, defaults.DivisionPrecision, "number of fractional digits kept by divisions")
	flags.String(flagLogLevel, defaults.Logging.Level, fmt.Sprintf("logging threshold (%v)", strings.Join(logs.LogLevelStrings(), ", ")))
	flags.String(flagLogFormat, defaults.Logging.Format, fmt.Sprintf("logging format (%v)", strings.Join(logs.FormatStrings(), ", ")))
	flags.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "usage: numcalc [flags] [--] <value> [<op> <value>]...")
		flags.PrintDefaults()
	}
	err := flags.Parse(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	session := viper.New()
	err = config.BindFlagSetToEnv(session, numeric.EnvVarPrefix, flags, map[string]string{
		flagDivisionPrecision: "NUMERIC_DIVISION_PRECISION",
		flagLogLevel:          "NUMERIC_LOGGING_LEVEL",
		flagLogFormat:         "NUMERIC_LOGGING_FORMAT",
	})
	if err != nil {
		return usageError(stderr, err)
	}
	cfg := &numeric.Configuration{}
	err = config.LoadFromViper(session, numeric.EnvVarPrefix, cfg, defaults)
	if err != nil {
		return usageError(stderr, err)
	}
	kind, err := safeparse.ParseEnum(kindName, numeric.KindValues())
	if err != nil {
		return usageError(stderr, err)
	}

	logger, closeLogger, err := cfg.Logging.NewLogger(stderr, "numcalc")
	if err != nil {
		return usageError(stderr, err)
	}
	defer func() { _ = closeLogger() }()
	factory, err := numeric.NewFactoryFromConfiguration(cfg, logger)
	if err != nil {
		return usageError(stderr, err)
	}

	result, err := evaluate(factory, flags.Args())
	if err != nil {
		return usageError(stderr, err)
	}
	logs.Debug(logger, "expression evaluated", "result", result.String(), numeric.KeyKind, kind.String())
	text, ok := result.As(kind)
	if !ok {
		_, _ = fmt.Fprintln(stdout, numeric.EmptyText)
		return exitEmpty
	}
	_, _ = fmt.Fprintln(stdout, text)
	return exitOK
}

var operators = mapset.NewSet("+", "-", "*", "x", "/")

// checkOperators reports every unknown operator of `expression` at once.
func checkOperators(expression []string) error {
	used := mapset.NewSet[string]()
	for i := 1; i < len(expression); i += 2 {
		used.Add(expression[i])
	}
	unknown := used.Difference(operators).ToSlice()
	if len(unknown) == 0 {
		return nil
	}
	slices.Sort(unknown)
	return commonerrors.Newf(commonerrors.ErrInvalid, "unknown operators %q", unknown)
}

// evaluate folds `expression` from left to right.
func evaluate(f *numeric.Factory, expression []string) (result numeric.Value, err error) {
	if len(expression)%2 == 0 {
		err = commonerrors.New(commonerrors.ErrInvalid, "expected <value> [<op> <value>]...")
		return
	}
	err = checkOperators(expression)
	if err != nil {
		return
	}
	result = f.FromString(&expression[0])
	for i := 1; i < len(expression); i += 2 {
		operand := f.FromString(&expression[i+1])
		switch expression[i] {
		case "+":
			result = result.Add(operand)
		case "-":
			result = result.Subtract(operand)
		case "*", "x":
			result = result.Multiply(operand)
		case "/":
			result = result.Divide(operand)
		}
	}
	return
}

func usageError(stderr io.Writer, err error) int {
	_, _ = fmt.Fprintf(stderr, "numcalc: %v\n", err)
	return exitUsage
}
