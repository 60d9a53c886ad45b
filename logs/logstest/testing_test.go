package logstest

import (
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/logs"
)

func TestNewNullTestLogger(t *testing.T) {
	logger := NewNullTestLogger()
	logger.WithValues("foo", "bar").Info(faker.Sentence())
	logger.Error(commonerrors.ErrUnexpected, faker.Sentence(), faker.Word(), faker.Name())
}

func TestNewTestLogger(t *testing.T) {
	logger := NewTestLogger(t)
	logger.Info(faker.Sentence())
	logger.Info(faker.Sentence(), "foo", "bar")
	logger.Error(commonerrors.ErrUnexpected, faker.Sentence(), faker.Word(), faker.Name())
}

func TestNewStdTestLogger(t *testing.T) {
	logger := NewStdTestLogger()
	logger.WithValues("foo", "bar").Info(faker.Sentence())
	logger.Error(commonerrors.ErrUnexpected, faker.Sentence(), faker.Word(), faker.Name())
}

func TestNewRecordingTestLogger(t *testing.T) {
	logger, hook := NewRecordingTestLogger()
	logger.Info(faker.Sentence())
	logs.Warn(logger, faker.Sentence(), "input", faker.Word())
	logs.Debug(logger, faker.Sentence())
	logger.Error(commonerrors.ErrArithmetic, faker.Sentence())
	assert.Equal(t, []logs.LogLevel{logs.LevelInfo, logs.LevelWarn, logs.LevelDebug, logs.LevelError}, Severities(hook))
	assert.Equal(t, 1, Count(hook, logs.LevelWarn))
	assert.Zero(t, Count(hook, logs.LevelTrace))
	hook.Reset()
	assert.Empty(t, Severities(hook))
}
