package bootstrap

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BakeWatt_Go/internal/config"
)

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, base.Add(time.Duration(i)*time.Hour).Format(LogFileTimestampFormat))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, LogFilePermission))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, LogFilePermission))

	cleanupLogs(dir, 5)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, 6, "five logs plus the unrelated file")
	assert.Contains(t, names, "notes.txt")
	assert.Contains(t, names, "session_2026-01-01_11-00-00.log", "newest log survives")
	assert.NotContains(t, names, "session_2026-01-01_00-00-00.log", "oldest log is removed")
}

func TestSetupLogger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	cfg := &config.Config{
		LogDir:      dir,
		LogLevel:    "info",
		LogFormat:   "text",
		ServiceName: "bakewatt",
		Environment: "test",
		Version:     "v0.0.0",
	}

	var stdout bytes.Buffer
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	logFile, err := setupLogger(cfg, &stdout, now)
	require.NoError(t, err)
	defer logFile.Close()

	assert.Equal(t, filepath.Join(dir, "session_2026-03-04_05-06-07.log"), logFile.Name())
	assert.Contains(t, stdout.String(), LogMsgStartingBakeWatt)
	assert.Contains(t, stdout.String(), "service=bakewatt")

	written, err := os.ReadFile(logFile.Name())
	require.NoError(t, err)
	assert.Equal(t, stdout.String(), string(written), "file and stdout receive the same records")
}
