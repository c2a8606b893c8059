//go:build unix

package lock

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/despertar/internal/domain"
)

func TestFileLock_Exclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scheduler.lock")
	first := NewFileLock(path)
	second := NewFileLock(path)

	require.NoError(t, first.TryLock())
	require.NoError(t, first.TryLock(), "re-locking from the holder is a no-op")

	// flock locks belong to the open file description, so a second open conflicts
	assert.ErrorIs(t, second.TryLock(), domain.ErrSchedulerLocked)

	require.NoError(t, first.Unlock())
	require.NoError(t, second.TryLock())
	require.NoError(t, second.Unlock())
	require.NoError(t, second.Unlock(), "unlock is idempotent")
}

func TestFileLock_WritesPID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheduler.lock")
	l := NewFileLock(path)
	require.NoError(t, l.TryLock())
	defer l.Unlock()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), strings.TrimSpace(string(data)))
}
