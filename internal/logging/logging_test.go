package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, slog.LevelWarn)

	logger.Info("ignored")
	logger.Warn("kept", "phase", "work")

	var entry map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "work", entry["phase"])
}

func TestSetupWritesFile(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	path := filepath.Join(t.TempDir(), "log", "pomo.log")

	closer, err := Setup(path, slog.LevelDebug)
	require.NoError(t, err)

	slog.Debug("hello")

	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"hello"`)
}

func TestSetupWithoutPathDiscards(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	closer, err := Setup("", slog.LevelDebug)
	require.NoError(t, err)

	assert.NoError(t, closer.Close())
}

func TestDump(t *testing.T) {
	assert.Contains(t, Dump(struct{ Work int }{1500}), "Work: (int) 1500")
}
