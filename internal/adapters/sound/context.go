package sound

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// All PCM handed to the shared context is 16-bit little endian stereo at this rate
const (
	sampleRate     = 44100
	channelCount   = 2
	bytesPerSample = 2
)

// Global audio context singleton. oto allows one context per process.
var (
	globalAudioCtx     *oto.Context
	globalAudioCtxErr  error
	globalAudioCtxOnce sync.Once
)

// audioContext initializes the shared audio context once and returns it
func audioContext() (*oto.Context, error) {
	globalAudioCtxOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			globalAudioCtxErr = fmt.Errorf("failed to initialize audio context: %w", err)
			return
		}

		// Wait for the hardware audio devices to be ready
		<-ready
		globalAudioCtx = ctx
	})
	return globalAudioCtx, globalAudioCtxErr
}
