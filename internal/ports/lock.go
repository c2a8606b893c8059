package ports

// InstanceLock guarantees a single scheduler across processes
type InstanceLock interface {
	// TryLock acquires the lock without blocking.
	// Returns domain.ErrSchedulerLocked when another process holds it.
	TryLock() error
	Unlock() error
}
