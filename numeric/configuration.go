/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package numeric

import (
	"io"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-logr/logr"

	"github.com/ARM-software/golang-numeric/config"
	configvalidation "github.com/ARM-software/golang-numeric/config/validation"
	"github.com/ARM-software/golang-numeric/logs"
	"github.com/ARM-software/golang-numeric/safeparse"
)

// EnvVarPrefix is the prefix of the environment variables setting a Configuration e.g. NUMERIC_DIVISION_PRECISION.
const EnvVarPrefix = "numeric"

// Configuration describes the arithmetic policy of a Factory and how its failures are logged.
type Configuration struct {
	DivisionPrecision int32                `mapstructure:"division_precision"`
	Logging           LoggingConfiguration `mapstructure:"logging"`
}

func (cfg *Configuration) Validate() error {
	err := config.ValidateEmbedded(cfg)
	if err != nil {
		return err
	}
	vErr := config.WrapValidationError(nil, validation.ValidateStruct(cfg,
		validation.Field(&cfg.DivisionPrecision, validation.Min(int32(0)), validation.Max(MaxDivisionPrecision)),
	))
	if vErr != nil {
		return vErr
	}
	return nil
}

// LoggingConfiguration selects the backend and the threshold of the logger.
// Level is a logs.LogLevel name (e.g. `WARN`) and Format a logs.Format name (e.g. `zap`); both are case-sensitive.
type LoggingConfiguration struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func (cfg *LoggingConfiguration) Validate() error {
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Level, validation.Required, configvalidation.IsEnumMember(logs.LogLevelValues()...)),
		validation.Field(&cfg.Format, validation.Required, configvalidation.IsEnumMember(logs.FormatValues()...)),
	)
}

// NewLogger creates the logger described by the configuration.
// closeFunc must be called once the logger is no longer needed.
func (cfg *LoggingConfiguration) NewLogger(writer io.Writer, source string) (logger logr.Logger, closeFunc func() error, err error) {
	level, err := safeparse.ParseEnum(&cfg.Level, logs.LogLevelValues())
	if err != nil {
		return
	}
	format, err := safeparse.ParseEnum(&cfg.Format, logs.FormatValues())
	if err != nil {
		return
	}
	return logs.NewLogger(format, writer, level, source)
}

// DefaultConfiguration returns the default configuration: 16 fractional digits for divisions and INFO zap logging.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		DivisionPrecision: DefaultDivisionPrecision,
		Logging: LoggingConfiguration{
			Level:  logs.LevelInfo.String(),
			Format: logs.FormatZap.String(),
		},
	}
}
