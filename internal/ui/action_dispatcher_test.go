package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/despertar/internal/config"
	"github.com/renato0307/despertar/internal/domain"
)

func TestActionDispatcher_AlarmAwareActions(t *testing.T) {
	alarm := domain.Alarm{ID: "a1", SoundID: "bell"}
	dispatcher := NewActionDispatcher(&alarm)

	tests := []struct {
		name     string
		expected any
	}{
		{"toggle", ToggleAlarmMsg{AlarmID: "a1"}},
		{"delete", DeleteAlarmMsg{AlarmID: "a1"}},
		{"edit", EditAlarmMsg{AlarmID: "a1"}},
		{"preview", PreviewSoundMsg{SoundID: "bell"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := GetKeyDefinition(tt.name)
			require.NotNil(t, def)
			assert.Equal(t, tt.expected, dispatcher.Dispatch(*def))
		})
	}
}

func TestActionDispatcher_NoSelection(t *testing.T) {
	dispatcher := NewActionDispatcher(nil)

	toggle := GetKeyDefinition("toggle")
	require.NotNil(t, toggle)
	assert.Nil(t, dispatcher.Dispatch(*toggle))

	newAlarm := GetKeyDefinition("new")
	require.NotNil(t, newAlarm)
	assert.Equal(t, NewAlarmMsg{}, dispatcher.Dispatch(*newAlarm))
}

func TestActionDispatcher_NoMessage(t *testing.T) {
	assert.Nil(t, NewActionDispatcher(nil).Dispatch(KeyDefinition{Name: "up"}))
}

func TestKeyMap_TipsFollowCustomKeys(t *testing.T) {
	keys := NewKeyMap(config.KeyBindingsConfig{"new": {"+"}})

	var found bool
	for _, tip := range keys.Tips() {
		if tip.Format == GetKeyDefinition("new").TipFormat {
			found = true
			assert.Equal(t, "+", tip.Key)
			assert.Equal(t, "press + to set a new alarm", tip.String())
		}
	}
	assert.True(t, found)

	// Building a second map must not duplicate tips
	assert.Len(t, NewKeyMap(nil).Tips(), len(keys.Tips()))
}

func TestTip_RenderHighlightsKey(t *testing.T) {
	rendered := Tip{Format: "press %s to stop", Key: "s"}.Render()
	assert.Contains(t, rendered, "press ")
	assert.Contains(t, rendered, "s")
	assert.Contains(t, rendered, " to stop")
}
