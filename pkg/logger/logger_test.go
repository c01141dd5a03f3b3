package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferLogger(level LogLevel) (*bytes.Buffer, Logger) {
	var buf bytes.Buffer
	return &buf, NewStandardLogger(log.New(&buf, "", 0), level, "[mpns]")
}

func TestStandardLoggerLevelFiltering(t *testing.T) {
	buf, l := newBufferLogger(Warn)

	l.Debug("debug message")
	l.Info("info message")
	assert.Empty(t, buf.String())

	l.Warn("warn message")
	l.Error("error message")
	out := buf.String()
	assert.Contains(t, out, "[WARN] warn message")
	assert.Contains(t, out, "[ERROR] error message")
}

func TestStandardLoggerKeyValues(t *testing.T) {
	buf, l := newBufferLogger(Debug)

	l.Info("push classified", "uri", "http://example.com", "status", 200)
	assert.Contains(t, buf.String(), "uri=http://example.com")
	assert.Contains(t, buf.String(), "status=200")
}

func TestLogModeReturnsNewInstance(t *testing.T) {
	buf, l := newBufferLogger(Silent)

	l.Error("suppressed")
	assert.Empty(t, buf.String())

	verbose := l.LogMode(Debug)
	verbose.Debug("visible")
	assert.Contains(t, buf.String(), "visible")

	// The original logger keeps its level.
	buf.Reset()
	l.Error("still suppressed")
	assert.Empty(t, buf.String())
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard.Info("ignored")
		Discard.Error("ignored", "k", "v")
		Discard.LogMode(Debug).Debug("ignored")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Silent, ParseLevel("silent"))
	assert.Equal(t, Error, ParseLevel("error"))
	assert.Equal(t, Warn, ParseLevel("warn"))
	assert.Equal(t, Info, ParseLevel("INFO"))
	assert.Equal(t, Debug, ParseLevel("Debug"))
	assert.Equal(t, Warn, ParseLevel("unknown"))
	assert.Equal(t, Warn, ParseLevel(""))
}
