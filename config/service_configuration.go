/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/field"
	"github.com/ARM-software/golang-numeric/reflection"
)

const (
	EnvVarSeparator    = "_"
	DotEnvFile         = ".env"
	configKeySeparator = "."
	flagKeyPrefix      = "uniqueprefixforprivateflagbindingkeys123" // Has to be lower case and hopefully unique
)

// Load loads the configuration from the environment (i.e. .env file, environment variables) into configurationToSet.
// Entries not found in the environment come from defaultConfiguration.
// `envVarPrefix` is the prefix of environment variables e.g. with "numeric", `division_precision` is read from NUMERIC_DIVISION_PRECISION.
// mapstructure tags of configurationToSet should only use `[_0-9a-zA-Z]` characters.
func Load(envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) error {
	return LoadFromViper(viper.New(), envVarPrefix, configurationToSet, defaultConfiguration)
}

// LoadFromViper is the same as `Load` but instead of creating a new viper session, reuse the one provided.
// Important note:
// Viper's precedence order is maintained:
//  1. values set using explicit calls to `Set`
//  2. flags
//  3. environment (variables or `.env`)
//  4. configuration file
//  5. key/value store
//  6. default values (set via flag default values, or calls to `SetDefault` or via `defaultConfiguration` argument provided)
//
// Defaults from `defaultConfiguration` take precedence over defaults set via `SetDefault` or flags unless they are empty according to `reflection.IsEmpty`.
// Validation failures are returned as IValidationError.
func LoadFromViper(viperSession *viper.Viper, envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) (err error) {
	if viperSession == nil || reflection.IsNil(configurationToSet) {
		err = commonerrors.New(commonerrors.ErrUndefined, "missing configuration or viper session")
		return
	}
	if !reflection.IsNil(defaultConfiguration) {
		var defaults map[string]any
		err = mapstructure.Decode(defaultConfiguration, &defaults)
		if err != nil {
			err = commonerrors.WrapError(commonerrors.ErrMarshalling, err, "could not decode default configuration")
			return
		}
		err = viperSession.MergeConfigMap(defaults)
		if err != nil {
			return
		}
	}

	// a missing .env file is not an error.
	_ = godotenv.Load(DotEnvFile)
	setEnvOptions(viperSession, envVarPrefix)
	linkFlagKeysToStructureKeys(viperSession, envVarPrefix)

	err = viperSession.Unmarshal(configurationToSet)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrMarshalling, err, "unable to decode configuration into structure")
		return
	}
	vErr := WrapValidationError(field.ToOptionalString(envVarPrefix), configurationToSet.Validate())
	if vErr != nil {
		err = vErr
	}
	return
}

// BindFlagToEnv binds a flag to an environment variable so that both set the same configuration entry.
// `envVar` may or may not start with envVarPrefix e.g. NUMERIC_DIVISION_PRECISION and DIVISION_PRECISION are equivalent for the prefix "numeric".
func BindFlagToEnv(viperSession *viper.Viper, envVarPrefix string, envVar string, flag *pflag.Flag) (err error) {
	setEnvOptions(viperSession, envVarPrefix)
	flagKey, cleansedEnvVar := bindingKeys(envVar, envVarPrefix)
	err = viperSession.BindPFlag(flagKey, flag)
	if err != nil {
		return
	}
	err = viperSession.BindEnv(flagKey, cleansedEnvVar)
	return
}

// BindFlagSetToEnv binds the flags of `flagSet` to environment variables using BindFlagToEnv.
// `envVars` maps flag names to environment variables; a flag missing from `flagSet` is an error.
func BindFlagSetToEnv(viperSession *viper.Viper, envVarPrefix string, flagSet *pflag.FlagSet, envVars map[string]string) error {
	if flagSet == nil {
		return commonerrors.New(commonerrors.ErrUndefined, "missing flag set")
	}
	for name, envVar := range envVars {
		flag := flagSet.Lookup(name)
		if flag == nil {
			return commonerrors.Newf(commonerrors.ErrNotFound, "flag --%v is not defined", name)
		}
		err := BindFlagToEnv(viperSession, envVarPrefix, envVar, flag)
		if err != nil {
			return err
		}
	}
	return nil
}

// bindingKeys returns the viper key a flag bound to `envVar` is stored under, and the environment variable it is read from.
// Flag keys live under flagKeyPrefix so that they never clash with configuration keys.
func bindingKeys(envVar, envVarPrefix string) (flagKey string, cleansedEnvVar string) {
	short := strings.ToLower(envVar)
	if prefix := strings.ToLower(envVarPrefix); strings.HasPrefix(short, prefix) {
		short = strings.TrimPrefix(strings.TrimPrefix(short, prefix), EnvVarSeparator)
	}
	flagKey = flagKeyPrefix + configKeySeparator + strings.ReplaceAll(short, EnvVarSeparator, configKeySeparator)
	cleansedEnvVar = strings.ToUpper(strings.ReplaceAll(envVarPrefix+EnvVarSeparator+short, configKeySeparator, EnvVarSeparator))
	return
}

func setEnvOptions(viperSession *viper.Viper, envVarPrefix string) {
	viperSession.SetEnvPrefix(envVarPrefix)
	viperSession.AllowEmptyEnv(false)
	viperSession.AutomaticEnv()
	viperSession.SetEnvKeyReplacer(strings.NewReplacer(configKeySeparator, EnvVarSeparator))
}

// linkFlagKeysToStructureKeys copies flag values onto the configuration keys they correspond to.
// Viper aliases and BindEnv do not handle nested keys, hence the manual linking.
func linkFlagKeysToStructureKeys(viperSession *viper.Viper, envVarPrefix string) {
	for _, key := range viperSession.AllKeys() {
		if strings.HasPrefix(key, flagKeyPrefix) {
			continue
		}
		flagKey, _ := bindingKeys(key, envVarPrefix)
		linkFlagKey(viperSession, key, flagKey)
		viperSession.RegisterAlias(flagKey, key)
	}
}

// linkFlagKey gives precedence to a flag which was set. Otherwise, the flag default only fills empty configuration values.
func linkFlagKey(viperSession *viper.Viper, key, flagKey string) {
	flagValue := viperSession.Get(flagKey)
	switch {
	case viperSession.IsSet(flagKey):
		viperSession.Set(key, flagValue)
	case reflection.IsEmpty(flagValue):
	default:
		viperSession.SetDefault(key, flagValue)
		if reflection.IsEmpty(viperSession.Get(key)) {
			viperSession.Set(key, flagValue)
		}
	}
}
