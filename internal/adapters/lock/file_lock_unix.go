//go:build unix

package lock

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"

	"github.com/renato0307/despertar/internal/domain"
)

// tryLockFile acquires an exclusive lock on the file without blocking (Unix implementation)
func tryLockFile(file *os.File) error {
	err := unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
	if errors.Is(err, unix.EWOULDBLOCK) {
		return domain.ErrSchedulerLocked
	}
	return err
}

// unlockFile releases the lock on the file (Unix implementation)
func unlockFile(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_UN)
}
