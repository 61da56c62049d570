package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/nikbrunner/domsel/internal/logging"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, "info")
	assert.NilError(t, err)

	logger.Debug("hidden")
	logger.Info("sync started", "id", 2)

	out := buf.String()
	assert.Assert(t, !bytes.Contains(buf.Bytes(), []byte("hidden")))
	assert.Assert(t, is.Contains(out, "sync started"))
	assert.Assert(t, is.Contains(out, "id=2"))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logging.New(&bytes.Buffer{}, "loud")
	assert.ErrorContains(t, err, "loud")
}

func TestOpen_WritesToFile(t *testing.T) {
	t.Setenv(logging.EnvLogFile, "")
	path := filepath.Join(t.TempDir(), "logs", "domsel.log")

	logger, closeFn, err := logging.Open(path, "debug")
	assert.NilError(t, err)
	logger.Debug("entry added", "url", "a.com")
	assert.NilError(t, closeFn())

	data, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(string(data), "entry added"))
}

func TestOpen_EmptyPathDiscards(t *testing.T) {
	t.Setenv(logging.EnvLogFile, "")

	logger, closeFn, err := logging.Open("", "info")
	assert.NilError(t, err)
	logger.Info("nowhere")
	assert.NilError(t, closeFn())
}
