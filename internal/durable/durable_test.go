package durable

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_Modes(t *testing.T) {
	for _, mode := range []Mode{SyncAuto, SyncNone, SyncFull} {
		t.Run(mode.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "patch.json")
			require.NoError(t, WriteFile(context.Background(), path, []byte(`{"operations":[]}`), 0o644, mode))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.JSONEq(t, `{"operations":[]}`, string(got))
		})
	}
}

func TestWriteFile_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patch.json")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, WriteFile(context.Background(), path, []byte("new"), 0o644, SyncAuto))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestWriteFile_NoTempLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patch.json")
	require.NoError(t, WriteFile(context.Background(), path, []byte("x"), 0o644, SyncNone))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "patch.json", entries[0].Name())
}

func TestWriteFile_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "patch.json")
	err := WriteFile(ctx, path, []byte("x"), 0o644, SyncAuto)
	require.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", SyncAuto, false},
		{"auto", SyncAuto, false},
		{"none", SyncNone, false},
		{"full", SyncFull, false},
		{"paranoid", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}
