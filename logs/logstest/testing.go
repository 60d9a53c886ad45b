// Package logstest provides loggers to use in tests.
package logstest

import (
	"testing"

	"github.com/bombsimon/logrusr/v4"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/sirupsen/logrus"
	logrusTest "github.com/sirupsen/logrus/hooks/test"

	"github.com/ARM-software/golang-numeric/logs"
	"github.com/ARM-software/golang-numeric/logs/logrimp"
)

// NewNullTestLogger returns a logger to nothing
func NewNullTestLogger() logr.Logger {
	internalLogger, _ := logrusTest.NewNullLogger()
	return logrusr.New(internalLogger)
}

// NewStdTestLogger returns a test logger to standard output.
func NewStdTestLogger() logr.Logger {
	return logrimp.NewStdOutLogr()
}

// NewTestLogger returns a logger to use in tests
func NewTestLogger(t *testing.T) logr.Logger {
	return testr.NewWithOptions(t, testr.Options{Verbosity: logs.LevelTrace.Verbosity()})
}

// NewRecordingTestLogger returns a logger whose entries are recorded by the returned hook.
func NewRecordingTestLogger() (logr.Logger, *logrusTest.Hook) {
	internalLogger, hook := logrusTest.NewNullLogger()
	internalLogger.SetLevel(logrus.TraceLevel)
	return logrusr.New(internalLogger), hook
}

// Severities returns the severity of every entry recorded by a hook, taking the severity flag of WARN entries into account.
func Severities(hook *logrusTest.Hook) (severities []logs.LogLevel) {
	for _, entry := range hook.AllEntries() {
		severities = append(severities, severity(entry))
	}
	return
}

// Count returns the number of entries of a given severity recorded by a hook.
func Count(hook *logrusTest.Hook, level logs.LogLevel) (count int) {
	for _, s := range Severities(hook) {
		if s == level {
			count++
		}
	}
	return
}

func severity(entry *logrus.Entry) logs.LogLevel {
	if s, ok := entry.Data[logs.KeySeverity].(string); ok {
		if level, err := logs.LogLevelString(s); err == nil {
			return level
		}
	}
	switch entry.Level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return logs.LevelError
	case logrus.WarnLevel:
		return logs.LevelWarn
	case logrus.InfoLevel:
		return logs.LevelInfo
	case logrus.DebugLevel:
		return logs.LevelDebug
	default:
		return logs.LevelTrace
	}
}
