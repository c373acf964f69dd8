//go:build darwin

package durable

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync performs file descriptor sync.
//
// On macOS, if fullfsync is true, use F_FULLFSYNC so data reaches the
// physical disk, not just the drive cache. Otherwise, use regular fsync.
func fdatasync(f *os.File, fullfsync bool) error {
	if fullfsync {
		_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
		return err
	}
	// macOS doesn't have fdatasync
	return unix.Fsync(int(f.Fd()))
}
