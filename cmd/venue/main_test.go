package main

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/venue-sim/internal/common"
)

func captureDefaultLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger, err := common.NewLogger(&buf, slog.LevelDebug, "console")
	require.NoError(t, err)

	prev := slog.Default()
	slog.SetDefault(logger)
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestReportError_PrintsUserMessage(t *testing.T) {
	logs := captureDefaultLog(t)

	_, err := executeSimulate(t, "--days", "0")
	require.Error(t, err)

	var out bytes.Buffer
	reportError(&out, simulateCmd(), err)

	assert.Contains(t, out.String(), "--days must be positive")
	assert.NotContains(t, out.String(), common.ErrInvalidConfig.Error())

	assert.Contains(t, logs.String(), "command failed")
	assert.Contains(t, logs.String(), common.ErrInvalidConfig.Error())
	assert.Contains(t, logs.String(), "command=simulate")
}

func TestReportError_PlainError(t *testing.T) {
	captureDefaultLog(t)

	var out bytes.Buffer
	reportError(&out, nil, errors.New("unknown command \"dance\""))

	assert.Contains(t, out.String(), `unknown command "dance"`)
}
