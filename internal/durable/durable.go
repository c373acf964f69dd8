// Package durable writes files so that a successful return means the bytes
// reached stable storage.
//
// Write protocol:
//  1. Write data to a temp file in the destination directory
//  2. Sync the temp file according to Mode
//  3. Rename the temp file over the destination
//
// A crash before step 3 leaves the previous file untouched.
package durable

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Mode controls durability guarantees for writes.
type Mode int

const (
	// SyncAuto calls fdatasync (fsync on macOS) before rename.
	SyncAuto Mode = iota

	// SyncNone skips syncing entirely. The caller accepts that a crash may
	// lose the write.
	SyncNone

	// SyncFull uses the strongest primitive available: F_FULLFSYNC on macOS,
	// fdatasync elsewhere.
	SyncFull
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case SyncAuto:
		return "auto"
	case SyncNone:
		return "none"
	case SyncFull:
		return "full"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name back to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "auto":
		return SyncAuto, nil
	case "none":
		return SyncNone, nil
	case "full":
		return SyncFull, nil
	default:
		return 0, fmt.Errorf("unknown sync mode: %s", s)
	}
}

// WriteFile atomically replaces path with data.
//
// The context is checked before the write starts and again before rename.
func WriteFile(ctx context.Context, path string, data []byte, perm os.FileMode, mode Mode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}

	if mode != SyncNone {
		if err := fdatasync(tmp, mode == SyncFull); err != nil {
			tmp.Close()
			return fmt.Errorf("sync temp file: %w", err)
		}
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	committed = true
	return nil
}
