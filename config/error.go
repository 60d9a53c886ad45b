/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/field"
	"github.com/ARM-software/golang-numeric/reflection"
)

const (
	treeSeparator         = "->"
	environmentSeparator  = EnvVarSeparator
	invalidEnvVarSymbol   = "-"
	validationFailureDesc = "configuration failed validation"
)

// IValidationError describes the failed validation of a configuration entry.
// It records both the path of the entry in the Go structure and the name of the environment variable which sets it.
type IValidationError interface {
	error
	fmt.Stringer
	Unwrap() error
	// GetReason returns why the entry is invalid.
	GetReason() string
	// GetTree returns the Go field names leading to the entry.
	GetTree() []string
	// GetTreePath returns GetTree joined by `->`.
	GetTreePath() string
	// GetMapStructureTree returns the mapstructure keys leading to the entry.
	GetMapStructureTree() []string
	GetMapStructurePrefix() *string
	// GetMapStructurePath returns the environment variable setting the entry e.g. NUMERIC_LOGGING_LEVEL.
	GetMapStructurePath() string
	RecordField(fieldName string, mapStructureFieldName *string, mapStructurePrefix *string)
	RecordPrefix(mapStructurePrefix string)
}

// WrapFieldValidationError records that the validation of field `fieldName` failed with `err`.
// It returns nil if `err` is nil.
func WrapFieldValidationError(fieldName string, mapStructure, prefix *string, err error) IValidationError {
	vErr := toValidationError(err)
	if vErr == nil {
		return nil
	}
	vErr.RecordField(fieldName, mapStructure, prefix)
	return vErr
}

// WrapValidationError records that the validation of a configuration using the environment prefix `prefix` failed with `err`.
// It returns nil if `err` is nil.
func WrapValidationError(prefix *string, err error) IValidationError {
	vErr := toValidationError(err)
	if vErr == nil {
		return nil
	}
	if !reflection.IsEmpty(prefix) {
		vErr.RecordPrefix(*prefix)
	}
	return vErr
}

type validationError struct {
	reason             string
	tree               []string
	mapStructureTree   []string
	mapStructurePrefix *string
}

func (v *validationError) GetReason() string {
	return v.reason
}

func (v *validationError) GetTree() []string {
	return v.tree
}

func (v *validationError) GetMapStructureTree() []string {
	return v.mapStructureTree
}

func (v *validationError) GetMapStructurePrefix() *string {
	return v.mapStructurePrefix
}

func (v *validationError) RecordField(fieldName string, mapStructureFieldName *string, mapStructurePrefix *string) {
	v.tree = slices.Insert(slices.Clone(v.tree), 0, strings.TrimSpace(fieldName))
	if mapStructureFieldName != nil {
		v.mapStructureTree = slices.Insert(slices.Clone(v.mapStructureTree), 0, strings.ToUpper(strings.TrimSpace(*mapStructureFieldName)))
	}
	v.mapStructurePrefix = mapStructurePrefix
}

func (v *validationError) RecordPrefix(mapStructurePrefix string) {
	v.mapStructurePrefix = field.ToOptionalString(mapStructurePrefix)
}

func (v *validationError) GetTreePath() string {
	return strings.Join(v.tree, treeSeparator)
}

func (v *validationError) GetMapStructurePath() string {
	if len(v.mapStructureTree) == 0 {
		return ""
	}
	path := strings.ReplaceAll(strings.Join(v.mapStructureTree, environmentSeparator), invalidEnvVarSymbol, environmentSeparator)
	if v.mapStructurePrefix == nil {
		return path
	}
	return strings.ToUpper(strings.TrimSpace(*v.mapStructurePrefix)) + environmentSeparator + path
}

func (v *validationError) Error() string {
	var b strings.Builder
	b.WriteString(validationFailureDesc)
	if tree := v.GetTreePath(); tree != "" {
		_, _ = fmt.Fprintf(&b, " (%v)", tree)
	}
	if env := v.GetMapStructurePath(); env != "" {
		_, _ = fmt.Fprintf(&b, " [%v]", env)
	}
	if v.reason != "" {
		b.WriteString(": ")
		b.WriteString(v.reason)
	}
	return commonerrors.New(v.Unwrap(), b.String()).Error()
}

func (v *validationError) String() string {
	return v.Error()
}

// Unwrap makes any validation error match commonerrors.ErrInvalid.
func (v *validationError) Unwrap() error {
	return commonerrors.ErrInvalid
}

func toValidationError(err error) *validationError {
	if err == nil {
		return nil
	}
	var vErr *validationError
	if errors.As(err, &vErr) {
		return vErr
	}
	var iErr IValidationError
	if errors.As(err, &iErr) {
		return &validationError{
			reason:             iErr.GetReason(),
			tree:               iErr.GetTree(),
			mapStructureTree:   iErr.GetMapStructureTree(),
			mapStructurePrefix: iErr.GetMapStructurePrefix(),
		}
	}
	var oErrs validation.Errors
	if errors.As(err, &oErrs) {
		return fromOzzoErrors(oErrs)
	}
	var oErr validation.Error
	if errors.As(err, &oErr) {
		return fromOzzoError(oErr)
	}
	reason, subErr := commonerrors.GetCommonErrorReason(err)
	if subErr != nil || reason == "" {
		reason = err.Error()
	}
	return &validationError{reason: reason}
}

// fromOzzoErrors only keeps the first failing field in alphabetical order.
func fromOzzoErrors(errs validation.Errors) *validationError {
	if len(errs) == 0 {
		return &validationError{reason: errs.Error()}
	}
	name := slices.Sorted(maps.Keys(errs))[0]
	vErr := toValidationError(errs[name])
	vErr.RecordField(name, nil, nil)
	return vErr
}

func fromOzzoError(err validation.Error) *validationError {
	return &validationError{reason: err.Error()}
}
