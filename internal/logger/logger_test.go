package logger

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureOutput redirects logs to a buffer and restores defaults afterwards.
func captureOutput(t *testing.T, verbose bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verbose)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	buf := captureOutput(t, false)

	SetVerbose(true)
	Debug("shown")
	SetVerbose(false)
	Debug("hidden")

	assert.Contains(t, buf.String(), "shown")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestDebug_WhenVerbose(t *testing.T) {
	buf := captureOutput(t, true)

	Debug("test message %s", "arg")

	assert.Equal(t, "level=DEBUG msg=\"test message arg\"\n", buf.String())
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	buf := captureOutput(t, false)

	Debug("test message")
	Info("info message")

	assert.Zero(t, buf.Len())
}

func TestInfo(t *testing.T) {
	buf := captureOutput(t, true)

	Info("info message %d", 42)

	assert.Equal(t, "level=INFO msg=\"info message 42\"\n", buf.String())
}

func TestWarn_AlwaysPrinted(t *testing.T) {
	buf := captureOutput(t, false)

	Warn("Zero or more than one bug found with id: %s", "1234")

	assert.Equal(t, "level=WARN msg=\"Zero or more than one bug found with id: 1234\"\n", buf.String())
}

func TestError_AlwaysPrinted(t *testing.T) {
	buf := captureOutput(t, false)

	Error("failed")

	assert.Equal(t, "level=ERROR msg=failed\n", buf.String())
}

func TestLog_Attributes(t *testing.T) {
	buf := captureOutput(t, true)

	Log(slog.LevelDebug, "invoke", "method", "Bug.get", "id", "abc")

	assert.Equal(t, "level=DEBUG msg=invoke method=Bug.get id=abc\n", buf.String())
}

func TestSection(t *testing.T) {
	buf := captureOutput(t, true)

	Section("Test Section")

	assert.Equal(t, "\n=== Test Section ===\n", buf.String())
}

func TestSection_WhenNotVerbose(t *testing.T) {
	buf := captureOutput(t, false)

	Section("Hidden")

	assert.Zero(t, buf.Len())
}
