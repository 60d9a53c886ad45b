/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config loads configuration structures from the environment, `.env` files and command line flags, and validates them.
package config

//go:generate go tool mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/golang-numeric/$GOPACKAGE IServiceConfiguration

// IServiceConfiguration describes a configuration structure which can be loaded using Load.
type IServiceConfiguration interface {
	// Validate checks configuration entries.
	Validate() error
}
