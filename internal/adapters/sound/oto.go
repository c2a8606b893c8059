package sound

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/renato0307/despertar/internal/logging"
	"github.com/renato0307/despertar/internal/ports"
)

// OtoBackend plays WAV files from a sounds directory through the shared oto context
type OtoBackend struct {
	soundsDir string
}

// Verify interface compliance at compile time
var _ ports.AudioBackend = (*OtoBackend)(nil)

// NewOtoBackend creates a backend reading sound files from soundsDir
func NewOtoBackend(soundsDir string) *OtoBackend {
	return &OtoBackend{soundsDir: soundsDir}
}

// Play implements AudioBackend.Play
func (b *OtoBackend) Play(resource string, loop bool) (ports.Playback, error) {
	path := filepath.Join(b.soundsDir, resource)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound %s: %w", path, err)
	}

	format, audio, err := parseWAV(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	pcm, err := toContextPCM(format, audio)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	ctx, err := audioContext()
	if err != nil {
		return nil, err
	}

	logging.Logger.Debug("Playing sound file", "path", path, "loop", loop)
	return startOtoPlayback(ctx, pcm, loop), nil
}

// otoPlayback plays a PCM buffer, once or until stopped
type otoPlayback struct {
	done     chan struct{}
	stopChan chan struct{}
	stopOnce sync.Once
}

func startOtoPlayback(ctx *oto.Context, pcm []byte, loop bool) *otoPlayback {
	p := &otoPlayback{
		done:     make(chan struct{}),
		stopChan: make(chan struct{}),
	}
	go p.playLoop(ctx, pcm, loop)
	return p
}

func (p *otoPlayback) playLoop(ctx *oto.Context, pcm []byte, loop bool) {
	defer close(p.done)

	for {
		// Create a new player for each loop iteration
		player := ctx.NewPlayer(bytes.NewReader(pcm))
		player.Play()

		// Wait for the sound to finish playing or stop signal
		for player.IsPlaying() {
			select {
			case <-p.stopChan:
				player.Pause()
				_ = player.Close()
				return
			case <-time.After(10 * time.Millisecond):
			}
		}

		if err := player.Close(); err != nil {
			logging.Logger.Warn("Failed to close audio player", "error", err)
		}

		if !loop {
			return
		}

		// Check if stop was requested between loops
		select {
		case <-p.stopChan:
			return
		default:
		}
	}
}

// Stop implements Playback.Stop. It returns once the player has been released.
func (p *otoPlayback) Stop() {
	p.stopOnce.Do(func() { close(p.stopChan) })
	<-p.done
}

// Done implements Playback.Done
func (p *otoPlayback) Done() <-chan struct{} {
	return p.done
}
