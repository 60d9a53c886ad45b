/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package safeparse

import (
	"fmt"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/logs"
)

// ParseEnum returns the member whose name is exactly `text`. The match is case-sensitive.
func ParseEnum[E fmt.Stringer](text *string, members []E) (member E, err error) {
	if text == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "no text")
		return
	}
	if len(members) == 0 {
		err = commonerrors.New(commonerrors.ErrUndefined, "no enumeration members")
		return
	}
	for i := range members {
		if members[i].String() == *text {
			member = members[i]
			return
		}
	}
	err = commonerrors.Newf(commonerrors.ErrInvalid, "%q is not a %T", *text, member)
	return
}

// EnumFromString is the optional form of ParseEnum.
func EnumFromString[E fmt.Stringer](p *Parser, text *string, members []E) *E {
	member, err := ParseEnum(text, members)
	if err == nil {
		return &member
	}
	logger := p.log()
	if commonerrors.Any(err, commonerrors.ErrUndefined) {
		logs.Warn(logger, "null value or enumeration provided", KeyText, text, "members", len(members))
		return nil
	}
	logger.Error(err, "failed to convert text to an enumeration member", KeyText, *text, KeyKind, fmt.Sprintf("%T", member))
	return nil
}
