package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		input    string
		expected []Weekday
	}{
		{"", nil},
		{"daily", nil},
		{"Mon,Wed,Fri", []Weekday{Monday, Wednesday, Friday}},
		{"monday, tuesday", []Weekday{Monday, Tuesday}},
		{"MO,SU", []Weekday{Monday, Sunday}},
		{"weekdays", []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}},
		{"weekends", []Weekday{Saturday, Sunday}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseWeekdays(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseWeekdays_Unknown(t *testing.T) {
	_, err := ParseWeekdays("Mon,Xyz")
	assert.ErrorIs(t, err, ErrInvalidAlarm)
}

func TestParseWeekday_OnlyPrefixesOfDayNames(t *testing.T) {
	accepted := map[string]Weekday{
		"mo": Monday, "Mon": Monday, "monday": Monday,
		"tues": Tuesday, "th": Thursday, "SAT": Saturday, "sunday": Sunday,
	}
	for input, expected := range accepted {
		day, err := ParseWeekday(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, day, input)
	}

	for _, input := range []string{"monkey", "sundays", "friday!", "t", "mondayy"} {
		_, err := ParseWeekday(input)
		assert.ErrorIs(t, err, ErrInvalidAlarm, input)
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2024-01-01 is a Monday
	start := at(2024, 1, 1, 12, 0)
	for i, expected := range Week {
		assert.Equal(t, expected, WeekdayOf(start.AddDate(0, 0, i)))
		assert.Equal(t, start.AddDate(0, 0, i).Weekday(), expected.TimeWeekday())
	}
}

func TestSortDaysAndFormat(t *testing.T) {
	days := []Weekday{Sunday, Wednesday, Monday}
	assert.Equal(t, []Weekday{Monday, Wednesday, Sunday}, SortDays(days))
	assert.Equal(t, []Weekday{Sunday, Wednesday, Monday}, days, "input must not be modified")
	assert.Equal(t, "Mon,Wed,Sun", FormatDays(days))
	assert.Equal(t, "Every day", FormatDays(nil))
	assert.Nil(t, SortDays(nil))
}

func TestFireEvent_Message(t *testing.T) {
	withLabel := FireEvent{Alarm: Alarm{Label: "Wake up", Time: TimeOfDay{7, 0}}, FiredAt: time.Now()}
	withoutLabel := FireEvent{Alarm: Alarm{Time: TimeOfDay{7, 0}}}

	assert.Equal(t, "Alarm! Wake up", withLabel.Message())
	assert.Equal(t, "Alarm! 07:00", withoutLabel.Message())
}
