/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package validation provides ozzo-validation rules for configuration entries holding numbers or enumeration members as text.
package validation

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/cast"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/safeparse"
)

var (
	ErrNotEnumMember = validation.NewError("validation_not_enum_member", "must be one of {{.members}}")
	ErrNotNumeric    = validation.NewError("validation_not_numeric", "must be a valid number")
)

// IsEnumMember checks that a value is the exact name of one of `members` (see safeparse.ParseEnum).
// Empty values are valid; use validation.Required to reject them.
func IsEnumMember[E fmt.Stringer](members ...E) validation.Rule {
	names := make([]string, 0, len(members))
	for i := range members {
		names = append(names, members[i].String())
	}
	return validation.By(func(vRaw any) error {
		text, empty, err := toText(vRaw)
		if err != nil || empty {
			return err
		}
		_, err = safeparse.ParseEnum(&text, members)
		if err != nil {
			return ErrNotEnumMember.SetParams(map[string]any{"members": strings.Join(names, ", ")})
		}
		return nil
	})
}

// IsNumericText checks that a value is text which `parse` accepts e.g. safeparse.ParseInt32.
// Empty values are valid; use validation.Required to reject them.
func IsNumericText[T any](parse func(*string) (T, error)) validation.Rule {
	return validation.By(func(vRaw any) error {
		text, empty, err := toText(vRaw)
		if err != nil || empty {
			return err
		}
		_, err = parse(&text)
		if err == nil {
			return nil
		}
		if reason, subErr := commonerrors.GetCommonErrorReason(err); subErr == nil && reason != "" {
			return ErrNotNumeric.SetMessage(fmt.Sprintf("must be a valid number (%v)", reason))
		}
		return ErrNotNumeric
	})
}

func toText(vRaw any) (text string, empty bool, err error) {
	value, isNil := validation.Indirect(vRaw)
	if isNil || validation.IsEmpty(value) {
		empty = true
		return
	}
	text, err = cast.ToStringE(value)
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrMarshalling, err, "unsupported type for text validation: %T", vRaw)
	}
	return
}
