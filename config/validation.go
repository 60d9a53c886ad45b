/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"reflect"
	"strings"
)

const (
	mapStructureTag        = "mapstructure"
	mapStructureIgnore     = "-"
	mapStructureTagOptions = ","
)

// ValidateEmbedded uses reflection to find embedded or nested configuration structures and validate them.
// The first failure is returned as an IValidationError recording the field path.
func ValidateEmbedded(cfg IServiceConfiguration) error {
	r := reflect.ValueOf(cfg)
	if r.Kind() != reflect.Pointer || r.IsNil() {
		return nil
	}
	r = r.Elem()
	if r.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < r.NumField(); i++ {
		f := r.Field(i)
		if f.Kind() != reflect.Struct || !f.CanAddr() || !r.Type().Field(i).IsExported() {
			continue
		}
		validator, ok := f.Addr().Interface().(IServiceConfiguration)
		if !ok {
			continue
		}
		err := wrapFieldValidationError(r.Type().Field(i), validator.Validate())
		if err != nil {
			return err
		}
	}
	return nil
}

func wrapFieldValidationError(field reflect.StructField, err error) error {
	if err == nil {
		return nil
	}
	var mapStructure *string
	if tag, hasTag := field.Tag.Lookup(mapStructureTag); hasTag {
		processed := processMapStructureString(tag)
		if processed != "" {
			mapStructure = &processed
		}
	}
	return WrapFieldValidationError(field.Name, mapStructure, nil, err)
}

// processMapStructureString returns the key name defined by a mapstructure tag, without its options.
func processMapStructureString(tag string) string {
	name, _, _ := strings.Cut(tag, mapStructureTagOptions)
	name = strings.TrimSpace(name)
	if name == mapStructureIgnore {
		return ""
	}
	return name
}
