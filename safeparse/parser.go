/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package safeparse converts text into numeric values and enumeration members without ever panicking.
//
// Every conversion exists in two forms:
//   - an error form (e.g. ParseInt32) returning the reason of the failure (commonerrors.ErrUndefined, commonerrors.ErrInvalid or commonerrors.ErrOutOfRange);
//   - an optional form (e.g. Int32FromString) returning nil on failure after logging the reason.
//
// Integral conversions drop any fractional part by truncating the text at its first '.', they never round.
// Text is never trimmed.
package safeparse

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/shopspring/decimal"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/logs"
)

const (
	decimalSeparator = "."

	// MaxDecimalExponent bounds the magnitude of the exponent of decimals e.g. 1e10000 and 1e-10000 are valid but 1e10001 is not.
	// Decimals are printed without exponent so their text stays within this many digits of their significand.
	MaxDecimalExponent = 10000

	KeyText      = "text"
	KeyKind      = "kind"
	KeyOperation = "operation"
)

// Parser performs safe conversions from text. It is immutable and safe for concurrent use.
// A nil Parser is valid and does not log anything.
type Parser struct {
	logger logr.Logger
}

// NewParser returns a parser reporting failures to `logger`.
func NewParser(logger logr.Logger) *Parser {
	return &Parser{logger: logger.WithName("safeparse")}
}

func (p *Parser) log() logr.Logger {
	if p == nil {
		return logr.Discard()
	}
	return p.logger
}

// Logger returns the logger the parser reports to.
func (p *Parser) Logger() logr.Logger {
	return p.log()
}

// ParseByte parses text into a byte (signed 8-bit integer).
func ParseByte(text *string) (int8, error) {
	return parseInteger[int8](text, 8)
}

// ParseShort parses text into a signed 16-bit integer.
func ParseShort(text *string) (int16, error) {
	return parseInteger[int16](text, 16)
}

// ParseInt32 parses text into a signed 32-bit integer.
func ParseInt32(text *string) (int32, error) {
	return parseInteger[int32](text, 32)
}

// ParseInt64 parses text into a signed 64-bit integer.
func ParseInt64(text *string) (int64, error) {
	return parseInteger[int64](text, 64)
}

// ParseFloat32 parses text into a 32-bit float. Values which cannot be represented by a float32 are rejected.
func ParseFloat32(text *string) (f float32, err error) {
	v, err := parseFloat(text, 32)
	if err != nil {
		return
	}
	f = float32(v)
	return
}

// ParseFloat64 parses text into a 64-bit float.
func ParseFloat64(text *string) (float64, error) {
	return parseFloat(text, 64)
}

// ParseDecimal parses text into an arbitrary-precision decimal.
func ParseDecimal(text *string) (d decimal.Decimal, err error) {
	if text == nil {
		err = commonerrors.ErrUndefined
		return
	}
	d, err = decimal.NewFromString(*text)
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "%q is not a decimal", *text)
		return
	}
	err = CheckDecimalExponent(d)
	if err != nil {
		d = decimal.Zero
	}
	return
}

// CheckDecimalExponent returns commonerrors.ErrOutOfRange if the exponent of `d` exceeds MaxDecimalExponent in magnitude.
// It never expands `d`.
func CheckDecimalExponent(d decimal.Decimal) error {
	exponent := d.Exponent()
	if exponent > MaxDecimalExponent || exponent < -MaxDecimalExponent {
		return commonerrors.Newf(commonerrors.ErrOutOfRange, "decimal exponent %v exceeds %v in magnitude", exponent, MaxDecimalExponent)
	}
	return nil
}

// TruncateDecimals returns the text preceding the first '.', or the whole text if there is none.
func TruncateDecimals(text string) string {
	head, _, _ := strings.Cut(text, decimalSeparator)
	return head
}

func parseInteger[T int8 | int16 | int32 | int64](text *string, bitSize int) (i T, err error) {
	if text == nil {
		err = commonerrors.ErrUndefined
		return
	}
	v, err := strconv.ParseInt(TruncateDecimals(*text), 10, bitSize)
	if err != nil {
		err = convertNumError(err, *text, bitSize)
		return
	}
	i = T(v)
	return
}

func parseFloat(text *string, bitSize int) (f float64, err error) {
	if text == nil {
		err = commonerrors.ErrUndefined
		return
	}
	f, err = strconv.ParseFloat(*text, bitSize)
	if err != nil {
		f = 0
		err = convertNumError(err, *text, bitSize)
	}
	return
}

func convertNumError(err error, text string, bitSize int) error {
	if errors.Is(err, strconv.ErrRange) {
		return commonerrors.WrapErrorf(commonerrors.ErrOutOfRange, err, "%q does not fit in %v bits", text, bitSize)
	}
	return commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "%q is not a number", text)
}

func optional[T any](p *Parser, operation, kind string, text *string, value T, err error) *T {
	if err == nil {
		return &value
	}
	logger := p.log()
	if commonerrors.Any(err, commonerrors.ErrUndefined) {
		logs.Warn(logger, "null text provided", KeyOperation, operation, KeyKind, kind)
		return nil
	}
	logger.Error(err, "failed to convert text", KeyText, *text, KeyKind, kind, KeyOperation, operation)
	return nil
}

// ByteFromString is the optional form of ParseByte.
func (p *Parser) ByteFromString(text *string) *int8 {
	v, err := ParseByte(text)
	return optional(p, "ByteFromString", "Byte", text, v, err)
}

// ShortFromString is the optional form of ParseShort.
func (p *Parser) ShortFromString(text *string) *int16 {
	v, err := ParseShort(text)
	return optional(p, "ShortFromString", "Short", text, v, err)
}

// Int32FromString is the optional form of ParseInt32.
func (p *Parser) Int32FromString(text *string) *int32 {
	v, err := ParseInt32(text)
	return optional(p, "Int32FromString", "Int32", text, v, err)
}

// Int64FromString is the optional form of ParseInt64.
func (p *Parser) Int64FromString(text *string) *int64 {
	v, err := ParseInt64(text)
	return optional(p, "Int64FromString", "Int64", text, v, err)
}

// Float32FromString is the optional form of ParseFloat32.
func (p *Parser) Float32FromString(text *string) *float32 {
	v, err := ParseFloat32(text)
	return optional(p, "Float32FromString", "Float32", text, v, err)
}

// Float64FromString is the optional form of ParseFloat64.
func (p *Parser) Float64FromString(text *string) *float64 {
	v, err := ParseFloat64(text)
	return optional(p, "Float64FromString", "Float64", text, v, err)
}

// DecimalFromString is the optional form of ParseDecimal.
func (p *Parser) DecimalFromString(text *string) *decimal.Decimal {
	v, err := ParseDecimal(text)
	return optional(p, "DecimalFromString", "Decimal", text, v, err)
}
