package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func TestNextTrigger_NoDays(t *testing.T) {
	tests := []struct {
		name     string
		time     TimeOfDay
		from     time.Time
		expected time.Time
	}{
		{"later today", TimeOfDay{8, 0}, at(2024, 1, 1, 7, 30), at(2024, 1, 1, 8, 0)},
		{"already passed", TimeOfDay{8, 0}, at(2024, 1, 1, 9, 0), at(2024, 1, 2, 8, 0)},
		{"exactly now", TimeOfDay{8, 0}, at(2024, 1, 1, 8, 0), at(2024, 1, 2, 8, 0)},
		{"end of month", TimeOfDay{6, 15}, at(2024, 1, 31, 23, 0), at(2024, 2, 1, 6, 15)},
		{"end of year", TimeOfDay{0, 0}, at(2024, 12, 31, 0, 1), at(2025, 1, 1, 0, 0)},
		{"leap day", TimeOfDay{7, 0}, at(2024, 2, 28, 8, 0), at(2024, 2, 29, 7, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NextTrigger(tt.time, nil, tt.from)
			assert.Equal(t, tt.expected, result)
			assert.True(t, result.After(tt.from))
		})
	}
}

func TestNextTrigger_WithDays(t *testing.T) {
	// 2024-01-01 is a Monday
	tests := []struct {
		name     string
		time     TimeOfDay
		days     []Weekday
		from     time.Time
		expected time.Time
	}{
		{"upcoming wednesday", TimeOfDay{7, 0}, []Weekday{Wednesday}, at(2024, 1, 1, 10, 0), at(2024, 1, 3, 7, 0)},
		{"today still ahead", TimeOfDay{11, 0}, []Weekday{Monday}, at(2024, 1, 1, 10, 0), at(2024, 1, 1, 11, 0)},
		{"today passed wraps a week", TimeOfDay{7, 0}, []Weekday{Monday}, at(2024, 1, 1, 10, 0), at(2024, 1, 8, 7, 0)},
		{"today not selected", TimeOfDay{11, 0}, []Weekday{Tuesday, Sunday}, at(2024, 1, 1, 10, 0), at(2024, 1, 2, 11, 0)},
		{"weekend from friday", TimeOfDay{9, 30}, []Weekday{Saturday, Sunday}, at(2024, 1, 5, 12, 0), at(2024, 1, 6, 9, 30)},
		{"sunday wraps to monday", TimeOfDay{6, 0}, []Weekday{Monday}, at(2024, 1, 7, 22, 0), at(2024, 1, 8, 6, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NextTrigger(tt.time, tt.days, tt.from)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNextTrigger_WithDaysProperties(t *testing.T) {
	from := at(2024, 3, 4, 0, 0)
	for hour := 0; hour < 24; hour += 5 {
		for _, day := range Week {
			for step := 0; step < 7*24; step += 7 {
				now := from.Add(time.Duration(step) * time.Hour)
				tod := TimeOfDay{Hour: hour, Minute: 30}
				result := NextTrigger(tod, []Weekday{day}, now)

				require.True(t, result.After(now), "result must be after %s", now)
				require.LessOrEqual(t, result.Sub(now), 7*24*time.Hour)
				require.Equal(t, day, WeekdayOf(result))
				require.Equal(t, hour, result.Hour())
				require.Equal(t, 30, result.Minute())

				// No earlier qualifying instant exists
				for earlier := result.AddDate(0, 0, -1); earlier.After(now); earlier = earlier.AddDate(0, 0, -1) {
					require.NotEqual(t, day, WeekdayOf(earlier))
				}
			}
		}
	}
}

func TestNextTrigger_KeepsWallClockAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Lisbon")
	if err != nil {
		t.Skip("timezone data not available")
	}

	// Clocks move forward on 2024-03-31 at 01:00
	from := time.Date(2024, 3, 30, 9, 0, 0, 0, loc)
	result := NextTrigger(TimeOfDay{8, 0}, nil, from)

	assert.Equal(t, time.Date(2024, 3, 31, 8, 0, 0, 0, loc), result)
	assert.Equal(t, 8, result.Hour())
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input    string
		expected TimeOfDay
		wantErr  bool
	}{
		{"08:00", TimeOfDay{8, 0}, false},
		{"23:59", TimeOfDay{23, 59}, false},
		{" 7:05 ", TimeOfDay{7, 5}, false},
		{"24:00", TimeOfDay{}, true},
		{"12:60", TimeOfDay{}, true},
		{"noon", TimeOfDay{}, true},
		{"12", TimeOfDay{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidAlarm))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, tt.expected.String(), result.String())
		})
	}
}

func TestAlarmDraft_Validate(t *testing.T) {
	tests := []struct {
		name    string
		draft   AlarmDraft
		wantErr bool
	}{
		{"valid daily", AlarmDraft{Time: TimeOfDay{8, 0}}, false},
		{"valid with days", AlarmDraft{Time: TimeOfDay{8, 0}, Days: []Weekday{Monday, Friday}}, false},
		{"bad hour", AlarmDraft{Time: TimeOfDay{25, 0}}, true},
		{"duplicate day", AlarmDraft{Time: TimeOfDay{8, 0}, Days: []Weekday{Monday, Monday}}, true},
		{"unknown day", AlarmDraft{Time: TimeOfDay{8, 0}, Days: []Weekday{"Funday"}}, true},
		{"label too long", AlarmDraft{Time: TimeOfDay{8, 0}, Label: string(make([]rune, MaxLabelLength+1))}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAlarm)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAlarm_IsDue(t *testing.T) {
	now := at(2024, 1, 1, 8, 0)

	tests := []struct {
		name     string
		alarm    Alarm
		expected bool
	}{
		{"equal instant fires", Alarm{Enabled: true, NextTrigger: now}, true},
		{"past instant fires", Alarm{Enabled: true, NextTrigger: now.Add(-time.Minute)}, true},
		{"future instant waits", Alarm{Enabled: true, NextTrigger: now.Add(time.Second)}, false},
		{"disabled never fires", Alarm{Enabled: false, NextTrigger: now.Add(-time.Hour)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.alarm.IsDue(now))
		})
	}
}

func TestAlarm_ApplyNormalizesDraft(t *testing.T) {
	var alarm Alarm
	alarm.Apply(AlarmDraft{
		Days:    []Weekday{Friday, Monday},
		Label:   "  Gym  ",
		SoundID: "nope",
		Time:    TimeOfDay{6, 30},
	}, at(2024, 1, 1, 7, 0))

	assert.Equal(t, []Weekday{Monday, Friday}, alarm.Days)
	assert.Equal(t, "Gym", alarm.Label)
	assert.Equal(t, DefaultSoundID, alarm.SoundID)
	assert.Equal(t, at(2024, 1, 5, 6, 30), alarm.NextTrigger)
}

func TestAlarm_CloneIsIndependent(t *testing.T) {
	original := Alarm{ID: "a", Days: []Weekday{Monday}}
	clone := original.Clone()
	clone.Days[0] = Sunday

	assert.Equal(t, Monday, original.Days[0])
}

func TestResolveSound_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, "bell", ResolveSound("bell").ID)
	assert.Equal(t, DefaultSoundID, ResolveSound("").ID)
	assert.Equal(t, DefaultSoundID, ResolveSound("missing").ID)
}
