package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TheDarkDnKTv/mclib-extractor/internal/logging"
)

func TestNew_InfoLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, false)

	logger.Debug("loaded version descriptor", "version", "1.20.1")
	logger.Warn("library not found in cache", "artifact", "org.lib:core")

	out := buf.String()
	assert.NotContains(t, out, "loaded version descriptor")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="library not found in cache"`)
	assert.Contains(t, out, "artifact=org.lib:core")
}

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, true)

	logger.Debug("loaded version descriptor", "version", "1.20.1")

	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestDiscard(t *testing.T) {
	logger := logging.Discard()

	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
