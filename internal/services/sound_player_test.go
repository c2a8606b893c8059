package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portsmocks "github.com/renato0307/despertar/internal/ports/mocks"
)

func TestSoundPlayer_StartReplacesActive(t *testing.T) {
	backend := portsmocks.NewMockAudioBackend(t)
	first := portsmocks.NewMockPlayback(t)
	second := portsmocks.NewMockPlayback(t)

	backend.EXPECT().Play("bell-alarm.wav", true).Return(first, nil).Once()
	backend.EXPECT().Play("chime-alarm.wav", true).Return(second, nil).Once()
	first.EXPECT().Stop().Return().Once()
	second.EXPECT().Stop().Return().Once()

	player := NewSoundPlayer(backend)

	require.NoError(t, player.Start("bell"))
	require.NoError(t, player.Start("chime"))

	id, ok := player.Active()
	assert.True(t, ok)
	assert.Equal(t, "chime", id)

	player.Stop()
	_, ok = player.Active()
	assert.False(t, ok)

	player.Stop()
}

func TestSoundPlayer_UnknownSoundUsesDefault(t *testing.T) {
	backend := portsmocks.NewMockAudioBackend(t)
	playback := portsmocks.NewMockPlayback(t)
	playback.EXPECT().Done().Return(make(chan struct{})).Maybe()
	backend.EXPECT().Play("alarm-clock.wav", false).Return(playback, nil)

	player := NewSoundPlayer(backend)

	require.NoError(t, player.Preview("does-not-exist"))
	id, _ := player.Active()
	assert.Equal(t, "default", id)
}

func TestSoundPlayer_FallsBackToTone(t *testing.T) {
	backend := portsmocks.NewMockAudioBackend(t)
	broken := portsmocks.NewMockToneBackend(t)
	tone := portsmocks.NewMockToneBackend(t)
	playback := portsmocks.NewMockPlayback(t)

	backend.EXPECT().Play(mock.Anything, true).Return(nil, errors.New("missing file"))
	broken.EXPECT().PlayTone(true).Return(nil, errors.New("no device"))
	tone.EXPECT().PlayTone(true).Return(playback, nil)

	player := NewSoundPlayer(backend, broken, tone)

	require.NoError(t, player.Start("nature"))
	id, ok := player.Active()
	assert.True(t, ok)
	assert.Equal(t, "nature", id)
}

func TestSoundPlayer_NoAudio(t *testing.T) {
	backend := portsmocks.NewMockAudioBackend(t)
	backend.EXPECT().Play(mock.Anything, true).Return(nil, errors.New("missing file"))

	player := NewSoundPlayer(backend)

	err := player.Start("bell")
	assert.ErrorIs(t, err, ErrNoAudio)
	assert.ErrorContains(t, err, "missing file")

	_, ok := player.Active()
	assert.False(t, ok)

	assert.ErrorIs(t, NewSoundPlayer(nil).Start("bell"), ErrNoAudio)
}

func TestSoundPlayer_FailedStartStillStopsPrevious(t *testing.T) {
	backend := portsmocks.NewMockAudioBackend(t)
	playback := portsmocks.NewMockPlayback(t)

	backend.EXPECT().Play("bell-alarm.wav", true).Return(playback, nil).Once()
	backend.EXPECT().Play("chime-alarm.wav", true).Return(nil, errors.New("gone")).Once()
	playback.EXPECT().Stop().Return().Once()

	player := NewSoundPlayer(backend)
	require.NoError(t, player.Start("bell"))
	require.Error(t, player.Start("chime"))

	_, ok := player.Active()
	assert.False(t, ok)
}

func TestSoundPlayer_PreviewReleasesSlotWhenFinished(t *testing.T) {
	backend := portsmocks.NewMockAudioBackend(t)
	playback := portsmocks.NewMockPlayback(t)
	finished := make(chan struct{})
	playback.EXPECT().Done().Return(finished).Once()
	backend.EXPECT().Play("bell-alarm.wav", false).Return(playback, nil).Once()

	player := NewSoundPlayer(backend)
	require.NoError(t, player.Preview("bell"))

	id, ok := player.Active()
	require.True(t, ok)
	assert.Equal(t, "bell", id)

	close(finished)
	assert.Eventually(t, func() bool {
		_, ok := player.Active()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestSoundPlayer_FinishedPreviewKeepsNewerSound(t *testing.T) {
	backend := portsmocks.NewMockAudioBackend(t)
	preview := portsmocks.NewMockPlayback(t)
	alarm := portsmocks.NewMockPlayback(t)
	finished := make(chan struct{})
	preview.EXPECT().Done().Return(finished).Once()
	preview.EXPECT().Stop().Return().Once()
	backend.EXPECT().Play("bell-alarm.wav", false).Return(preview, nil).Once()
	backend.EXPECT().Play("chime-alarm.wav", true).Return(alarm, nil).Once()

	player := NewSoundPlayer(backend)
	require.NoError(t, player.Preview("bell"))
	require.NoError(t, player.Start("chime"))

	close(finished)
	assert.Never(t, func() bool {
		_, ok := player.Active()
		return !ok
	}, 100*time.Millisecond, 5*time.Millisecond)

	id, _ := player.Active()
	assert.Equal(t, "chime", id)
}
