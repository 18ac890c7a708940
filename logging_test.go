package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func unsetLogEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}

func TestNewLogger_JSONWhenNotTerminal(t *testing.T) {
	unsetLogEnv(t)
	var buf bytes.Buffer
	log := newLogger(&buf, slog.LevelInfo)
	log.Info("hello", slog.String("k", "v"))
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}

func TestNewLogger_Level(t *testing.T) {
	unsetLogEnv(t)
	var buf bytes.Buffer
	log := newLogger(&buf, slog.LevelWarn)
	log.Info("hidden")
	assert.Empty(t, buf.String())
	assert.True(t, log.Enabled(context.Background(), slog.LevelWarn))
}

func TestNewLogger_EnvOverrides(t *testing.T) {
	unsetLogEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")

	var buf bytes.Buffer
	log := newLogger(&buf, slog.LevelWarn)
	log.Debug("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}
