package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/renato0307/despertar/internal/ports"
)

// FileLock is an exclusive advisory lock on a file, held for the life of the process
type FileLock struct {
	file *os.File
	mu   sync.Mutex
	path string
}

// Verify interface compliance at compile time
var _ ports.InstanceLock = (*FileLock)(nil)

// NewFileLock creates a lock on path. Nothing is acquired until TryLock.
func NewFileLock(path string) *FileLock {
	return &FileLock{path: path}
}

// TryLock implements InstanceLock.TryLock
func (l *FileLock) TryLock() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := tryLockFile(file); err != nil {
		file.Close()
		return err
	}

	// Record the owner for humans looking at the file
	_ = file.Truncate(0)
	_, _ = file.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0)

	l.file = file
	return nil
}

// Unlock implements InstanceLock.Unlock
func (l *FileLock) Unlock() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}

	err := unlockFile(l.file)
	if closeErr := l.file.Close(); err == nil {
		err = closeErr
	}
	l.file = nil
	return err
}
