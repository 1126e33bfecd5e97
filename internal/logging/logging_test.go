package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNew_DefaultLevelDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Debug("hidden")
	logger.Info("also hidden")
	logger.Warn("skipped user", zap.Int("user_id", 3))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "skipped user")
	assert.Contains(t, out, "user_id")
}

func TestNew_Debug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)

	logger.Debug("http request", zap.String("url", "http://example.com/users/1"))

	assert.Contains(t, buf.String(), "http request")
	assert.Contains(t, buf.String(), "http://example.com/users/1")
}
