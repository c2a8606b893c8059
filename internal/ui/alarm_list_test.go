package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/despertar/internal/domain"
)

func TestFormatUntil(t *testing.T) {
	tests := []struct {
		in       time.Duration
		expected string
	}{
		{30 * time.Second, "1m"},
		{time.Minute, "1m"},
		{59*time.Minute + time.Second, "1h00m"},
		{9*time.Hour + 12*time.Minute, "9h12m"},
		{26 * time.Hour, "1d2h"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatUntil(tt.in))
		})
	}
}

func TestFormatNextTrigger(t *testing.T) {
	// 2024-01-01 is a Monday
	now := time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)

	assert.Equal(t, "next Tue 07:30 (in 9h30m)", formatNextTrigger(now.Add(9*time.Hour+30*time.Minute), now))
	assert.Equal(t, "ringing now", formatNextTrigger(now, now))
	assert.Equal(t, "ringing now", formatNextTrigger(now.Add(-time.Minute), now))
}

func TestRenderAlarmLine(t *testing.T) {
	now := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)
	alarm := domain.Alarm{
		Days:        []domain.Weekday{domain.Monday, domain.Friday},
		Enabled:     true,
		ID:          "a",
		Label:       "Gym",
		NextTrigger: now.Add(30 * time.Minute),
		Time:        domain.TimeOfDay{Hour: 6, Minute: 30},
	}

	line := renderAlarmLine(AlarmItem{Alarm: alarm}, 0, true, now)
	assert.Contains(t, line, "01.")
	assert.Contains(t, line, symbolEnabled)
	assert.Contains(t, line, "06:30")
	assert.Contains(t, line, "Gym")
	assert.Contains(t, line, "Mon,Fri")
	assert.Contains(t, line, "in 30m")

	alarm.Enabled = false
	line = renderAlarmLine(AlarmItem{Alarm: alarm}, 1, false, now)
	assert.Contains(t, line, symbolDisabled)
	assert.NotContains(t, line, "next", "disabled alarms show no countdown")

	line = renderAlarmLine(AlarmItem{Alarm: alarm, Ringing: true}, 1, false, now)
	assert.Contains(t, line, symbolRinging)
}

func TestAlarmList_KeysEmitActions(t *testing.T) {
	alarms, created := newTestAlarms(t,
		domain.AlarmDraft{Time: domain.TimeOfDay{Hour: 7}, SoundID: "chime"},
		domain.AlarmDraft{Time: domain.TimeOfDay{Hour: 8}},
	)
	al := NewAlarmList(alarms, NewKeyMap(nil), false)
	al.SetSize(80, 10)

	tests := []struct {
		name     string
		key      tea.KeyMsg
		expected tea.Msg
	}{
		{"toggle", runeKey('t'), ToggleAlarmMsg{AlarmID: created[0].ID}},
		{"toggle with space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ToggleAlarmMsg{AlarmID: created[0].ID}},
		{"delete", runeKey('d'), DeleteAlarmMsg{AlarmID: created[0].ID}},
		{"edit", runeKey('e'), EditAlarmMsg{AlarmID: created[0].ID}},
		{"preview", runeKey('p'), PreviewSoundMsg{SoundID: "chime"}},
		{"new", runeKey('n'), NewAlarmMsg{}},
		{"stop", runeKey('s'), StopSoundMsg{}},
		{"help", runeKey('?'), ShowHelpMsg{}},
		{"palette", runeKey('P'), ShowCommandPaletteMsg{}},
		{"quit", runeKey('q'), QuitMsg{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cmd := al.Update(tt.key)
			require.NotNil(t, cmd)
			assert.Equal(t, tt.expected, cmd())
		})
	}
}

func TestAlarmList_SelectionAwareKeysNeedAnAlarm(t *testing.T) {
	alarms, _ := newTestAlarms(t)
	al := NewAlarmList(alarms, NewKeyMap(nil), false)

	_, cmd := al.Update(runeKey('t'))
	assert.Nil(t, cmd)
	assert.Contains(t, al.View(), "No alarms")
}

func TestAlarmList_SelectIDAndRinging(t *testing.T) {
	alarms, created := newTestAlarms(t,
		domain.AlarmDraft{Time: domain.TimeOfDay{Hour: 7}},
		domain.AlarmDraft{Time: domain.TimeOfDay{Hour: 8}},
	)
	al := NewAlarmList(alarms, NewKeyMap(nil), false)
	al.SetSize(80, 10)

	al.SelectID(created[1].ID)
	selected, ok := al.Selected()
	require.True(t, ok)
	assert.Equal(t, created[1].ID, selected.ID)

	al.SetRinging(created[1].ID)
	assert.Contains(t, al.View(), symbolRinging)
}

func TestAlarmList_PollReschedulesOnce(t *testing.T) {
	alarms, _ := newTestAlarms(t)
	al := NewAlarmList(alarms, NewKeyMap(nil), false)

	_, cmd := al.Update(checkStateMsg{})
	assert.NotNil(t, cmd)
}
