package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Weekday is a day tag used in alarm repeat sets
type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

// Week lists the day tags in display order
var Week = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var fromTimeWeekday = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// Valid reports whether d is one of the seven day tags
func (d Weekday) Valid() bool {
	return d.index() >= 0
}

// TimeWeekday converts the tag to a time.Weekday
func (d Weekday) TimeWeekday() time.Weekday {
	for wd, tag := range fromTimeWeekday {
		if tag == d {
			return wd
		}
	}
	return time.Sunday
}

func (d Weekday) index() int {
	for i, w := range Week {
		if w == d {
			return i
		}
	}
	return -1
}

// WeekdayOf returns the day tag of t in t's location
func WeekdayOf(t time.Time) Weekday {
	return fromTimeWeekday[t.Weekday()]
}

// ContainsDay reports whether days includes day
func ContainsDay(days []Weekday, day Weekday) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

// SortDays returns a copy of days in week order
func SortDays(days []Weekday) []Weekday {
	if len(days) == 0 {
		return nil
	}
	sorted := append([]Weekday(nil), days...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].index() < sorted[j].index()
	})
	return sorted
}

// ParseWeekday accepts "Mon", "monday", "MO" and similar spellings
func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) >= 2 {
		for _, d := range Week {
			// "mo", "mon", "tues" and "monday" all name a day; "monkey" does not
			if strings.HasPrefix(strings.ToLower(d.TimeWeekday().String()), s) {
				return d, nil
			}
		}
	}
	return "", fmt.Errorf("%w: unknown day %q", ErrInvalidAlarm, s)
}

// ParseWeekdays parses a comma-separated day list ("Mon,Wed,Fri").
// The shortcuts "weekdays", "weekends" and "daily" are also accepted.
func ParseWeekdays(s string) ([]Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "daily", "everyday":
		return nil, nil
	case "weekdays":
		return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}, nil
	case "weekends":
		return []Weekday{Saturday, Sunday}, nil
	}

	var days []Weekday
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		day, err := ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

// FormatDays renders days for display ("Every day" when empty)
func FormatDays(days []Weekday) string {
	if len(days) == 0 {
		return "Every day"
	}
	parts := make([]string, len(days))
	for i, d := range SortDays(days) {
		parts[i] = string(d)
	}
	return strings.Join(parts, ",")
}
