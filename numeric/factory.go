/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package numeric holds numbers of heterogeneous kinds (see Kind) as immutable arbitrary-precision decimals.
//
// A Value is created by a Factory, which carries the logger failures are reported to and the arithmetic policy.
// Nothing in this package panics or returns an error across its optional API: malformed, out of range or unsupported
// inputs produce an empty Value, and the reason is logged. Empty values propagate through accessors and arithmetic.
package numeric

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/logs"
	"github.com/ARM-software/golang-numeric/safeparse"
)

const (
	// DefaultDivisionPrecision is the number of fractional digits kept by divisions unless configured otherwise.
	DefaultDivisionPrecision int32 = 16
	// MaxDivisionPrecision bounds the configurable division precision.
	MaxDivisionPrecision int32 = 1000

	KeyRaw       = "raw"
	KeyKind      = safeparse.KeyKind
	KeyOperation = safeparse.KeyOperation
	KeyOperand   = "operand"
)

// Factory creates values. It is immutable and safe for concurrent use.
type Factory struct {
	logger            logr.Logger
	parser            *safeparse.Parser
	divisionPrecision int32
}

// Option configures a Factory.
type Option func(*Factory)

// WithLogger sets the logger failures are reported to. By default, nothing is logged.
func WithLogger(logger logr.Logger) Option {
	return func(f *Factory) {
		f.logger = logger
	}
}

// WithDivisionPrecision sets the number of fractional digits kept by Value.Divide. Negative values are ignored.
func WithDivisionPrecision(precision int32) Option {
	return func(f *Factory) {
		if precision >= 0 {
			f.divisionPrecision = precision
		}
	}
}

// NewFactory returns a factory configured with `opts`.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		logger:            logr.Discard(),
		divisionPrecision: DefaultDivisionPrecision,
	}
	for i := range opts {
		if opts[i] != nil {
			opts[i](f)
		}
	}
	f.parser = safeparse.NewParser(f.logger)
	f.logger = f.logger.WithName("numeric")
	return f
}

// NewFactoryFromConfiguration returns a factory applying the arithmetic policy of `cfg`.
func NewFactoryFromConfiguration(cfg *Configuration, logger logr.Logger) (f *Factory, err error) {
	if cfg == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "missing configuration")
		return
	}
	err = cfg.Validate()
	if err != nil {
		return
	}
	f = NewFactory(WithLogger(logger), WithDivisionPrecision(cfg.DivisionPrecision))
	return
}

// DivisionPrecision returns the number of fractional digits kept by divisions.
func (f *Factory) DivisionPrecision() int32 {
	return f.source().divisionPrecision
}

// Empty returns a value holding nothing.
func (f *Factory) Empty() Value {
	return Value{factory: f.source()}
}

// New boxes `raw` declared as being of kind `kind`.
// `raw` may be a Value, a *Value, an int8, int16, int32, int64, int, float32, float64, decimal.Decimal or *decimal.Decimal
// whose value belongs to the domain of `kind` e.g. New(3.5, Int32) fails but New(3.5, Float32) does not.
// On failure, an empty value is returned together with the reason.
func (f *Factory) New(raw any, kind Kind) (Value, error) {
	f = f.source()
	if !kind.IsAKind() {
		return f.Empty(), commonerrors.Newf(commonerrors.ErrUnsupported, "%v is not a supported kind", kind)
	}
	d, err := f.toDecimal(raw, kind)
	if err != nil {
		return f.Empty(), err
	}
	return f.wrap(d, kind), nil
}

// Of is similar to New but the reason of a failure is logged instead of returned.
func (f *Factory) Of(raw any, kind Kind) Value {
	f = f.source()
	v, err := f.New(raw, kind)
	if err != nil {
		f.report(err, "could not create numeric value", KeyRaw, describe(raw), KeyKind, kind.String())
	}
	return v
}

// FromString parses decimal text. Absent or malformed text gives an empty value.
func (f *Factory) FromString(text *string) Value {
	f = f.source()
	d := f.parser.DecimalFromString(text)
	if d == nil {
		return f.Empty()
	}
	return f.wrap(*d, Decimal)
}

func (f *Factory) wrap(d decimal.Decimal, kind Kind) Value {
	return Value{
		inner:   decimal.NullDecimal{Decimal: d, Valid: true},
		kind:    kind,
		factory: f,
	}
}

// box creates a value from `raw` using the kind of its Go type.
// Present values are used as they are: their decimal is canonical whatever the kind they are tagged with.
func (f *Factory) box(raw any) (Value, error) {
	switch v := raw.(type) {
	case Value:
		return f.rebox(v)
	case *Value:
		if v != nil {
			return f.rebox(*v)
		}
	}
	kind, err := kindOf(raw)
	if err != nil {
		return f.Empty(), err
	}
	return f.New(raw, kind)
}

func (f *Factory) rebox(v Value) (Value, error) {
	if !v.IsPresent() {
		return f.Empty(), commonerrors.New(commonerrors.ErrUndefined, "empty value")
	}
	return f.wrap(v.inner.Decimal, v.kind), nil
}

func (f *Factory) toDecimal(raw any, kind Kind) (d decimal.Decimal, err error) {
	switch v := raw.(type) {
	case nil:
		err = commonerrors.New(commonerrors.ErrUndefined, "no value")
		return
	case Value:
		if !v.IsPresent() {
			err = commonerrors.New(commonerrors.ErrUndefined, "empty value")
			return
		}
		d = v.inner.Decimal
		err = checkDecimal(kind, d)
		return
	case *Value:
		if v == nil {
			err = commonerrors.New(commonerrors.ErrUndefined, "no value")
			return
		}
		return f.toDecimal(*v, kind)
	case decimal.Decimal:
		d = v
		err = checkDecimal(kind, d)
		return
	case *decimal.Decimal:
		if v == nil {
			err = commonerrors.New(commonerrors.ErrUndefined, "no decimal")
			return
		}
		return f.toDecimal(*v, kind)
	case int8:
		err = checkNumber(kind, v)
	case int16:
		err = checkNumber(kind, v)
	case int32:
		err = checkNumber(kind, v)
	case int64:
		err = checkNumber(kind, v)
	case int:
		err = checkNumber(kind, v)
	case float32:
		err = checkNumber(kind, v)
	case float64:
		err = checkNumber(kind, v)
	default:
		err = commonerrors.Newf(commonerrors.ErrUnsupported, "values of type %T cannot be used as numbers", raw)
	}
	if err != nil {
		return
	}
	text, err := cast.ToStringE(raw)
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrUnsupported, err, "could not convert %T to text", raw)
		return
	}
	return safeparse.ParseDecimal(&text)
}

func kindOf(raw any) (Kind, error) {
	switch v := raw.(type) {
	case nil:
		return Decimal, commonerrors.New(commonerrors.ErrUndefined, "no value")
	case Value:
		return v.kind, nil
	case *Value:
		if v == nil {
			return Decimal, commonerrors.New(commonerrors.ErrUndefined, "no value")
		}
		return v.kind, nil
	case int8:
		return Byte, nil
	case int16:
		return Short, nil
	case int32:
		return Int32, nil
	case int64, int:
		return Int64, nil
	case float32:
		return Float32, nil
	case float64:
		return Float64, nil
	case decimal.Decimal, *decimal.Decimal:
		return Decimal, nil
	default:
		return Decimal, commonerrors.Newf(commonerrors.ErrUnsupported, "values of type %T cannot be used as numbers", raw)
	}
}

// report logs absent inputs as warnings and any other failure as an error.
func (f *Factory) report(err error, msg string, keysAndValues ...any) {
	if commonerrors.Any(err, commonerrors.ErrUndefined) {
		logs.Warn(f.logger, msg, append(keysAndValues, "reason", err.Error())...)
		return
	}
	f.logger.Error(err, msg, keysAndValues...)
}

func (f *Factory) source() *Factory {
	if f == nil {
		return defaultFactory
	}
	return f
}

func describe(raw any) string {
	if raw == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v (%T)", raw, raw)
}

var defaultFactory = NewFactory()

// Of boxes `raw` using a factory which does not log. See Factory.Of.
func Of(raw any, kind Kind) Value {
	return defaultFactory.Of(raw, kind)
}

// New boxes `raw` using a factory which does not log. See Factory.New.
func New(raw any, kind Kind) (Value, error) {
	return defaultFactory.New(raw, kind)
}

// FromString parses decimal text using a factory which does not log. See Factory.FromString.
func FromString(text *string) Value {
	return defaultFactory.FromString(text)
}

// Empty returns a value holding nothing.
func Empty() Value {
	return defaultFactory.Empty()
}
