package logger

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.WarnLevel, ParseLevel(""))
	assert.Equal(t, log.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, log.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, log.WarnLevel, ParseLevel("loud"))
}

func TestNewWithConfigRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithConfig(&buf, "md", log.WarnLevel, false, false, log.TextFormatter)

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "md")
}
