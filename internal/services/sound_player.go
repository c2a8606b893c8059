package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/logging"
	"github.com/renato0307/despertar/internal/ports"
)

// ErrNoAudio is returned when neither the primary backend nor any fallback could play
var ErrNoAudio = errors.New("no audio output available")

type activeSound struct {
	playback ports.Playback
	soundID  string
}

// SoundPlayer owns at most one playing tone. Starting a new one fully stops the previous.
type SoundPlayer struct {
	active    *activeSound
	fallbacks []ports.ToneBackend
	mu        sync.Mutex
	primary   ports.AudioBackend
}

// NewSoundPlayer creates a player that tries primary first, then each fallback in order
func NewSoundPlayer(primary ports.AudioBackend, fallbacks ...ports.ToneBackend) *SoundPlayer {
	return &SoundPlayer{
		fallbacks: fallbacks,
		primary:   primary,
	}
}

// Start plays the sound in a loop until Stop or the next Start
func (p *SoundPlayer) Start(soundID string) error {
	return p.play(soundID, true)
}

// Preview plays the sound once, replacing whatever is playing
func (p *SoundPlayer) Preview(soundID string) error {
	return p.play(soundID, false)
}

// Stop stops the active tone, if any. Safe to call repeatedly.
func (p *SoundPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

// Active returns the id of the sound occupying the slot
func (p *SoundPlayer) Active() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active == nil {
		return "", false
	}
	return p.active.soundID, true
}

// Close releases the active tone
func (p *SoundPlayer) Close() {
	p.Stop()
}

func (p *SoundPlayer) play(soundID string, loop bool) error {
	sound := domain.ResolveSound(soundID)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	playback, err := p.open(sound, loop)
	if err != nil {
		return err
	}

	active := &activeSound{playback: playback, soundID: sound.ID}
	p.active = active
	if !loop {
		go p.releaseWhenDone(active)
	}
	return nil
}

// releaseWhenDone frees the slot once a single-shot sound ends on its own
func (p *SoundPlayer) releaseWhenDone(active *activeSound) {
	<-active.playback.Done()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active == active {
		logging.Logger.Debug("Sound finished", "id", active.soundID)
		p.active = nil
	}
}

func (p *SoundPlayer) open(sound domain.Sound, loop bool) (ports.Playback, error) {
	var errs []error

	if p.primary != nil {
		playback, err := p.primary.Play(sound.File, loop)
		if err == nil {
			logging.Logger.Debug("Playing sound", "id", sound.ID, "loop", loop)
			return playback, nil
		}
		logging.Logger.Warn("Sound unavailable, using fallback tone", "id", sound.ID, "error", err)
		errs = append(errs, err)
	}

	for _, fallback := range p.fallbacks {
		playback, err := fallback.PlayTone(loop)
		if err == nil {
			return playback, nil
		}
		logging.Logger.Warn("Fallback tone failed", "error", err)
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil, ErrNoAudio
	}
	return nil, fmt.Errorf("%w: %w", ErrNoAudio, errors.Join(errs...))
}

func (p *SoundPlayer) stopLocked() {
	if p.active == nil {
		return
	}
	p.active.playback.Stop()
	logging.Logger.Debug("Sound stopped", "id", p.active.soundID)
	p.active = nil
}
