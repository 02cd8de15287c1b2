package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(ConsoleLoggerParams{Writer: &buf, Prefix: "kgctl"})

	l.Debug("hidden")
	l.Info("graph loaded", "nodes", 12)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "graph loaded")
	assert.Contains(t, out, "nodes=12")
	assert.Contains(t, out, "kgctl")
}

func TestConsoleLoggerDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(ConsoleLoggerParams{Writer: &buf, Debug: true})

	l.Debug("skipped record", "domain", "medical")
	assert.Contains(t, buf.String(), "skipped record")
}
