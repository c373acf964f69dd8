package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLogger(t *testing.T) {
	t.Helper()
	prev := L
	t.Cleanup(func() { L = prev })
}

func TestInit_DisabledDiscards(t *testing.T) {
	resetLogger(t)
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Enabled: false, Stderr: &buf}))
	Info("should not appear")
	assert.Empty(t, buf.String())
}

func TestInit_Stderr(t *testing.T) {
	resetLogger(t)
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Stderr: &buf, Level: slog.LevelDebug}))

	Debug("commit", "ops", 3)
	assert.Contains(t, buf.String(), "msg=commit")
	assert.Contains(t, buf.String(), "ops=3")
}

func TestInit_LogDirWritesJSON(t *testing.T) {
	resetLogger(t)
	dir := t.TempDir()
	require.NoError(t, Init(Options{Enabled: true, LogDir: dir}))

	Warn("named plan replaced", "name", "fade")

	name := logPrefix + time.Now().Format("2006-01-02") + logSuffix
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{"))
	assert.Contains(t, string(data), `"name":"fade"`)
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, logPrefix+"2000-01-01"+logSuffix)
	keep := filepath.Join(dir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
	other := filepath.Join(dir, "unrelated.txt")
	for _, p := range []string{old, keep, other} {
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}

	cleanOldLogs(dir)

	_, err := os.Stat(old)
	assert.True(t, os.IsNotExist(err))
	assert.FileExists(t, keep)
	assert.FileExists(t, other)
}
