package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesJSONToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missions.log")
	log, err := NewLogger(Options{Level: "info", File: path})
	require.NoError(t, err)

	log.Debug("hidden", "id", "1")
	log.With("request_id", "abc").Info("Mission created", "id", "665f1c2e9b1e8a0012345678")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Mission created", entry["msg"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, "665f1c2e9b1e8a0012345678", entry["id"])
	assert.Contains(t, entry, "timestamp")
	assert.Contains(t, entry["caller"], "logger_test.go")
}

func TestNewLogger_RejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := NewLogger(Options{Level: "chatty"})
	assert.Error(t, err)
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	var log Logger = NewNopLogger()
	log.Info("ignored", "key", "value")
	log.With("a", 1).Error("ignored")
}
