/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package field provides utilities to handle optional values. An optional value is represented by a pointer: nil means absent.
// It was inspired by the kubernetes package https://pkg.go.dev/k8s.io/utils/pointer.
package field

// ToOptional returns a pointer to a copy of v.
func ToOptional[T any](v T) *T {
	return &v
}

// Optional returns the value of an optional field or else returns defaultValue.
func Optional[T any](ptr *T, defaultValue T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}

// IsPresent states whether an optional field holds a value.
func IsPresent[T any](ptr *T) bool {
	return ptr != nil
}

// ToOptionalInt8 returns a pointer to an int8.
func ToOptionalInt8(i int8) *int8 {
	return ToOptional(i)
}

// OptionalInt8 returns the value of an optional field or else returns defaultValue.
func OptionalInt8(ptr *int8, defaultValue int8) int8 {
	return Optional(ptr, defaultValue)
}

// ToOptionalInt16 returns a pointer to an int16.
func ToOptionalInt16(i int16) *int16 {
	return ToOptional(i)
}

// OptionalInt16 returns the value of an optional field or else returns defaultValue.
func OptionalInt16(ptr *int16, defaultValue int16) int16 {
	return Optional(ptr, defaultValue)
}

// ToOptionalInt32 returns a pointer to an int32.
func ToOptionalInt32(i int32) *int32 {
	return ToOptional(i)
}

// OptionalInt32 returns the value of an optional field or else
// returns defaultValue.
func OptionalInt32(ptr *int32, defaultValue int32) int32 {
	return Optional(ptr, defaultValue)
}

// ToOptionalInt64 returns a pointer to an int64.
func ToOptionalInt64(i int64) *int64 {
	return ToOptional(i)
}

// OptionalInt64 returns the value of an optional field or else returns defaultValue.
func OptionalInt64(ptr *int64, defaultValue int64) int64 {
	return Optional(ptr, defaultValue)
}

// ToOptionalFloat32 returns a pointer to a float32.
func ToOptionalFloat32(f float32) *float32 {
	return ToOptional(f)
}

// OptionalFloat32 returns the value of an optional field or else returns defaultValue.
func OptionalFloat32(ptr *float32, defaultValue float32) float32 {
	return Optional(ptr, defaultValue)
}

// ToOptionalFloat64 returns a pointer to a float64.
func ToOptionalFloat64(f float64) *float64 {
	return ToOptional(f)
}

// OptionalFloat64 returns the value of an optional field or else returns defaultValue.
func OptionalFloat64(ptr *float64, defaultValue float64) float64 {
	return Optional(ptr, defaultValue)
}

// ToOptionalString returns a pointer to a string.
func ToOptionalString(s string) *string {
	return ToOptional(s)
}

// OptionalString returns the value of an optional field or else returns defaultValue.
func OptionalString(ptr *string, defaultValue string) string {
	return Optional(ptr, defaultValue)
}
