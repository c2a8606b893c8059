package sound

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/renato0307/despertar/internal/ports"
)

// Fallback beep: 800 Hz sine for 300 ms, repeated once a second while looping
const (
	toneFrequency = 800.0
	toneDuration  = 300 * time.Millisecond
	tonePeriod    = time.Second
	toneVolume    = 0.3
)

// ToneBackend synthesizes a sine beep and plays it through the shared oto context
type ToneBackend struct{}

// Verify interface compliance at compile time
var _ ports.ToneBackend = (*ToneBackend)(nil)

// NewToneBackend creates a synthesized tone backend
func NewToneBackend() *ToneBackend {
	return &ToneBackend{}
}

// PlayTone implements ToneBackend.PlayTone
func (t *ToneBackend) PlayTone(loop bool) (ports.Playback, error) {
	ctx, err := audioContext()
	if err != nil {
		return nil, err
	}

	pcm := generateBeep(sampleRate, toneFrequency, toneDuration, toneVolume)
	if loop {
		pcm = append(pcm, silence(sampleRate, tonePeriod-toneDuration)...)
	}
	return startOtoPlayback(ctx, pcm, loop), nil
}

// generateBeep returns interleaved stereo 16-bit PCM of a sine wave.
// A short fade in and out avoids clicks at the edges.
func generateBeep(rate int, freq float64, duration time.Duration, volume float64) []byte {
	n := int(float64(rate) * duration.Seconds())
	fade := rate / 200 // 5 ms
	buf := make([]byte, n*channelCount*bytesPerSample)

	for i := 0; i < n; i++ {
		envelope := 1.0
		if i < fade {
			envelope = float64(i) / float64(fade)
		} else if n-i < fade {
			envelope = float64(n-i) / float64(fade)
		}

		t := float64(i) / float64(rate)
		s := uint16(int16(math.Sin(2*math.Pi*freq*t) * 32767 * volume * envelope))
		binary.LittleEndian.PutUint16(buf[i*4:], s)   // left
		binary.LittleEndian.PutUint16(buf[i*4+2:], s) // right
	}
	return buf
}

func silence(rate int, d time.Duration) []byte {
	if d <= 0 {
		return nil
	}
	return make([]byte, int(float64(rate)*d.Seconds())*channelCount*bytesPerSample)
}
