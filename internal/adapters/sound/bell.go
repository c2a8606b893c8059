package sound

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/renato0307/despertar/internal/ports"
)

const bellInterval = 2 * time.Second

// Bell rings the terminal bell. It is the last resort when no audio device works.
type Bell struct {
	interval time.Duration
	out      io.Writer
}

// Verify interface compliance at compile time
var _ ports.ToneBackend = (*Bell)(nil)

// NewBell creates a bell writing to out (stdout when nil)
func NewBell(out io.Writer) *Bell {
	if out == nil {
		out = os.Stdout
	}
	return &Bell{interval: bellInterval, out: out}
}

// PlayTone implements ToneBackend.PlayTone
func (b *Bell) PlayTone(loop bool) (ports.Playback, error) {
	if _, err := fmt.Fprint(b.out, "\a"); err != nil {
		return nil, err
	}

	p := &bellPlayback{stop: make(chan struct{}), done: make(chan struct{})}
	if !loop {
		close(p.done)
		return p, nil
	}

	go func() {
		defer close(p.done)
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()
		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				fmt.Fprint(b.out, "\a")
			}
		}
	}()
	return p, nil
}

type bellPlayback struct {
	done chan struct{}
	once sync.Once
	stop chan struct{}
}

func (p *bellPlayback) Stop() {
	p.once.Do(func() { close(p.stop) })
	<-p.done
}

// Done implements Playback.Done
func (p *bellPlayback) Done() <-chan struct{} {
	return p.done
}
