package ports

// Playback is a running sound. Stop halts it and releases every resource it
// holds; calling Stop more than once is safe. Done is closed once the sound
// has ended, either on its own or through Stop.
type Playback interface {
	Done() <-chan struct{}
	Stop()
}

// AudioBackend plays a sound resource (a file path)
type AudioBackend interface {
	Play(resource string, loop bool) (Playback, error)
}

// ToneBackend plays a synthesized tone, used when file playback fails
type ToneBackend interface {
	PlayTone(loop bool) (Playback, error)
}
