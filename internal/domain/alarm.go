package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxLabelLength is the maximum number of characters in an alarm label
const MaxLabelLength = 64

// TimeOfDay is a wall-clock time without a date or zone
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" (24h) into a TimeOfDay
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hourStr, minuteStr, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("%w: time %q must be HH:MM", ErrInvalidAlarm, s)
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: invalid hour in %q", ErrInvalidAlarm, s)
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: invalid minute in %q", ErrInvalidAlarm, s)
	}

	t := TimeOfDay{Hour: hour, Minute: minute}
	if err := t.Validate(); err != nil {
		return TimeOfDay{}, err
	}
	return t, nil
}

// Validate checks the hour and minute ranges
func (t TimeOfDay) Validate() error {
	if t.Hour < 0 || t.Hour > 23 {
		return fmt.Errorf("%w: hour %d out of range 0-23", ErrInvalidAlarm, t.Hour)
	}
	if t.Minute < 0 || t.Minute > 59 {
		return fmt.Errorf("%w: minute %d out of range 0-59", ErrInvalidAlarm, t.Minute)
	}
	return nil
}

// String formats the time as "HH:MM"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// On returns the instant at this time of day on the date of day, in day's location
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

// Alarm represents a user-configured alarm (domain entity)
type Alarm struct {
	Days        []Weekday
	Enabled     bool
	ID          string
	Label       string
	NextTrigger time.Time
	SoundID     string
	Time        TimeOfDay
}

// AlarmDraft holds the user-editable fields of an alarm
type AlarmDraft struct {
	Days    []Weekday
	Label   string
	SoundID string
	Time    TimeOfDay
}

// Validate checks a draft before it is allowed into the store.
// Empty Days is valid and means the alarm fires every day.
func (d AlarmDraft) Validate() error {
	if err := d.Time.Validate(); err != nil {
		return err
	}
	if utf8.RuneCountInString(d.Label) > MaxLabelLength {
		return fmt.Errorf("%w: label longer than %d characters", ErrInvalidAlarm, MaxLabelLength)
	}

	seen := make(map[Weekday]bool, len(d.Days))
	for _, day := range d.Days {
		if !day.Valid() {
			return fmt.Errorf("%w: unknown day %q", ErrInvalidAlarm, day)
		}
		if seen[day] {
			return fmt.Errorf("%w: day %s selected twice", ErrInvalidAlarm, day)
		}
		seen[day] = true
	}
	return nil
}

// Draft returns the user-editable fields of the alarm
func (a Alarm) Draft() AlarmDraft {
	return AlarmDraft{
		Days:    append([]Weekday(nil), a.Days...),
		Label:   a.Label,
		SoundID: a.SoundID,
		Time:    a.Time,
	}
}

// Apply replaces the user-editable fields with the draft and recomputes NextTrigger from now
func (a *Alarm) Apply(d AlarmDraft, now time.Time) {
	a.Days = SortDays(d.Days)
	a.Label = strings.TrimSpace(d.Label)
	a.SoundID = ResolveSound(d.SoundID).ID
	a.Time = d.Time
	a.NextTrigger = NextTrigger(a.Time, a.Days, now)
}

// IsDue reports whether the alarm must fire at now
func (a Alarm) IsDue(now time.Time) bool {
	return a.Enabled && !a.NextTrigger.After(now)
}

// DisplayName returns the label, or the time when there is no label
func (a Alarm) DisplayName() string {
	if a.Label != "" {
		return a.Label
	}
	return a.Time.String()
}

// Clone returns a deep copy of the alarm
func (a Alarm) Clone() Alarm {
	a.Days = append([]Weekday(nil), a.Days...)
	return a
}

// NextTrigger computes the next instant, strictly after from, at which an alarm
// with time of day t and repeat days must fire. Empty days means every day.
// The result is in from's location.
func NextTrigger(t TimeOfDay, days []Weekday, from time.Time) time.Time {
	candidate := t.On(from)

	if len(days) == 0 {
		if !candidate.After(from) {
			candidate = t.On(from.AddDate(0, 0, 1))
		}
		return candidate
	}

	// Offset 7 covers "today's weekday, but the time already passed"
	for offset := 0; offset <= 7; offset++ {
		day := t.On(from.AddDate(0, 0, offset))
		if day.After(from) && ContainsDay(days, WeekdayOf(day)) {
			return day
		}
	}

	// Unreachable for validated days
	return t.On(from.AddDate(0, 0, 1))
}
