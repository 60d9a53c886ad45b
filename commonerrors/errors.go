/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the error taxonomy shared by all packages of this module.
// Errors are sentinels which can be matched using errors.Is or Any/None; reasons are attached by wrapping.
package commonerrors

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// TypeReasonErrorSeparator separates the error type from its reason in an error description.
	TypeReasonErrorSeparator = ':'
)

var (
	// ErrUndefined is returned when a required input is missing (i.e. a nil value or text).
	ErrUndefined = errors.New("undefined")
	// ErrInvalid is returned when an input is malformed.
	ErrInvalid = errors.New("invalid")
	// ErrOutOfRange is returned when a value is well-formed but does not fit the requested representation.
	ErrOutOfRange = errors.New("out of range")
	// ErrUnsupported is returned when a value's type or kind is not handled.
	ErrUnsupported = errors.New("unsupported")
	// ErrArithmetic is returned when an arithmetic operation cannot produce a result e.g. division by zero.
	ErrArithmetic = errors.New("arithmetic failure")

	ErrEmpty          = errors.New("empty")
	ErrNotFound       = errors.New("not found")
	ErrUnexpected     = errors.New("unexpected")
	ErrCondition      = errors.New("failed condition")
	ErrUnknown        = errors.New("unknown")
	ErrMarshalling    = errors.New("unserialisable")
	ErrNoLogger       = errors.New("missing logger")
	ErrNoLoggerSource = errors.New("missing logger source")
	ErrNoLogSource    = errors.New("missing log source")
)

var commonErrors = []error{
	ErrUndefined,
	ErrInvalid,
	ErrOutOfRange,
	ErrUnsupported,
	ErrArithmetic,
	ErrEmpty,
	ErrNotFound,
	ErrUnexpected,
	ErrCondition,
	ErrUnknown,
	ErrMarshalling,
	ErrNoLogger,
	ErrNoLoggerSource,
	ErrNoLogSource,
}

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error is of none of the types of the errors `err`
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo determines whether a `target` error corresponds to a specific error described by `description`
// It will check whether the error contains the string in its description. It is not case-sensitive.
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for _, d := range description {
		if strings.Contains(desc, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

// IsCommonError returns whether an error is a commonerror
func IsCommonError(target error) bool {
	return Any(target, commonErrors...)
}

// New creates a new error of type `errorType` with a reason.
func New(errorType error, message string) error {
	if errorType == nil {
		return errors.New(message)
	}
	if strings.TrimSpace(message) == "" {
		return errorType
	}
	return fmt.Errorf("%w%v %v", errorType, string(TypeReasonErrorSeparator), message)
}

// Newf is similar to New but allows to format the message.
func Newf(errorType error, format string, args ...any) error {
	return New(errorType, fmt.Sprintf(format, args...))
}

// WrapError wraps an error `cause` into an error of type `targetError` with a reason.
// Both the target error and the cause can be matched using errors.Is.
func WrapError(targetError, cause error, message string) error {
	if cause == nil {
		return New(targetError, message)
	}
	if targetError == nil {
		targetError = ErrUnknown
	}
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w%v %w", targetError, string(TypeReasonErrorSeparator), cause)
	}
	return fmt.Errorf("%w%v %v%v %w", targetError, string(TypeReasonErrorSeparator), message, string(TypeReasonErrorSeparator), cause)
}

// WrapErrorf is similar to WrapError but allows to format the message.
func WrapErrorf(targetError, cause error, format string, args ...any) error {
	return WrapError(targetError, cause, fmt.Sprintf(format, args...))
}

// GetCommonErrorReason returns the reason attached to an error created using New or WrapError.
// If the error is not a commonerror, ErrUnknown is returned.
func GetCommonErrorReason(err error) (reason string, subErr error) {
	if err == nil {
		return
	}
	found, _ := deserialiseCommonError(err.Error())
	if !found {
		subErr = ErrUnknown
		return
	}
	_, reason, _ = strings.Cut(err.Error(), string(TypeReasonErrorSeparator))
	reason = strings.TrimSpace(reason)
	return
}

// Ignore returns nil if `target` error matches one of the ignored errors.
func Ignore(target error, ignore ...error) error {
	if Any(target, ignore...) {
		return nil
	}
	return target
}

func deserialiseCommonError(errStr string) (bool, error) {
	errStr = strings.TrimSpace(errStr)
	head, _, _ := strings.Cut(errStr, string(TypeReasonErrorSeparator))
	head = strings.TrimSpace(head)
	for i := range commonErrors {
		if strings.EqualFold(head, commonErrors[i].Error()) {
			return true, commonErrors[i]
		}
	}
	return false, nil
}
