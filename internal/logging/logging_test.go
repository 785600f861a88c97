package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestSetupLogger_ConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn := SetupLogger(Options{Level: slog.LevelInfo, Output: &buf})
	defer closeFn()

	logger.Debug("hidden")
	logger.Info("table loaded", "table", "survey")

	out := buf.String()
	assert.Assert(t, !strings.Contains(out, "hidden"))
	assert.Assert(t, strings.Contains(out, "table loaded"))
	assert.Assert(t, strings.Contains(out, "table=survey"))
}

func TestMultiHandler_FansOut(t *testing.T) {
	var debugBuf, warnBuf bytes.Buffer
	multi := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}}
	logger := slog.New(multi).With("run", "r1")

	assert.Assert(t, multi.Enabled(context.Background(), slog.LevelDebug))

	logger.Info("op_start")
	logger.Warn("skipping column")

	assert.Assert(t, strings.Contains(debugBuf.String(), "op_start"))
	assert.Assert(t, strings.Contains(debugBuf.String(), "run=r1"))
	assert.Assert(t, !strings.Contains(warnBuf.String(), "op_start"))
	assert.Assert(t, strings.Contains(warnBuf.String(), "skipping column"))
}
