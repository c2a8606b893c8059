package sound

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/renato0307/despertar/internal/logging"
	"github.com/renato0307/despertar/internal/ports"
)

// loopGap is the pause between two runs of the player command while looping
const loopGap = 200 * time.Millisecond

// CommandBackend plays sound files with the platform's command line player.
// Platform-specific commands are in command_*.go files with build tags.
type CommandBackend struct {
	command   func(path string) (*exec.Cmd, error)
	soundsDir string
}

// Verify interface compliance at compile time
var _ ports.AudioBackend = (*CommandBackend)(nil)

// NewCommandBackend creates a backend reading sound files from soundsDir
func NewCommandBackend(soundsDir string) *CommandBackend {
	return &CommandBackend{command: playerCommand, soundsDir: soundsDir}
}

// Play implements AudioBackend.Play
func (b *CommandBackend) Play(resource string, loop bool) (ports.Playback, error) {
	path := filepath.Join(b.soundsDir, resource)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("sound file unavailable: %w", err)
	}

	cmd, err := b.command(path)
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", cmd.Path, err)
	}

	p := &commandPlayback{
		cmd:  cmd,
		done: make(chan struct{}),
		stop: make(chan struct{}),
	}
	go p.run(func() (*exec.Cmd, error) { return b.command(path) }, loop)
	return p, nil
}

type commandPlayback struct {
	cmd  *exec.Cmd
	done chan struct{}
	mu   sync.Mutex
	once sync.Once
	stop chan struct{}
}

func (p *commandPlayback) run(next func() (*exec.Cmd, error), loop bool) {
	defer close(p.done)

	for {
		p.mu.Lock()
		cmd := p.cmd
		p.mu.Unlock()

		if err := cmd.Wait(); err != nil {
			logging.Logger.Debug("Sound command exited", "error", err)
		}
		if !loop {
			return
		}

		select {
		case <-p.stop:
			return
		case <-time.After(loopGap):
		}

		p.mu.Lock()
		select {
		case <-p.stop:
			p.mu.Unlock()
			return
		default:
		}
		cmd, err := next()
		if err == nil {
			err = cmd.Start()
		}
		if err != nil {
			p.mu.Unlock()
			logging.Logger.Warn("Failed to restart sound command", "error", err)
			return
		}
		p.cmd = cmd
		p.mu.Unlock()
	}
}

// Stop implements Playback.Stop, killing the running player process
func (p *commandPlayback) Stop() {
	p.once.Do(func() {
		p.mu.Lock()
		close(p.stop)
		if p.cmd != nil && p.cmd.Process != nil {
			_ = p.cmd.Process.Kill()
		}
		p.mu.Unlock()
	})
	<-p.done
}

// Done implements Playback.Done
func (p *commandPlayback) Done() <-chan struct{} {
	return p.done
}
