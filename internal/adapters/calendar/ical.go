package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/logging"
)

const (
	prodID = "-//despertar//alarms//EN"

	propEnabled = "X-DESPERTAR-ENABLED"
	propSound   = "X-DESPERTAR-SOUND"

	floatingLayout = "20060102T150405"
)

// ImportedAlarm is an alarm read back from a calendar file
type ImportedAlarm struct {
	Draft   domain.AlarmDraft
	Enabled bool
	UID     string
}

var rruleDays = []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU}

// Export writes the alarms as a VCALENDAR with one recurring VEVENT per alarm
func Export(w io.Writer, alarms []domain.Alarm, now time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, prodID)
	cal.Props.SetText(ical.PropVersion, "2.0")

	for _, alarm := range alarms {
		cal.Children = append(cal.Children, alarmToEvent(alarm, now))
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}

func alarmToEvent(alarm domain.Alarm, now time.Time) *ical.Component {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, alarm.ID+"@despertar")
	event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	event.Props.SetText(ical.PropSummary, alarm.DisplayName())

	start := alarm.NextTrigger
	if start.IsZero() {
		start = domain.NextTrigger(alarm.Time, alarm.Days, now)
	}
	// Floating time: the alarm rings at the same wall clock wherever the user is
	dtstart := ical.NewProp(ical.PropDateTimeStart)
	dtstart.Value = start.Format(floatingLayout)
	event.Props.Set(dtstart)

	rule := &rrule.ROption{Freq: rrule.DAILY}
	if len(alarm.Days) > 0 {
		rule.Freq = rrule.WEEKLY
		for _, day := range domain.SortDays(alarm.Days) {
			rule.Byweekday = append(rule.Byweekday, toRRuleDay(day))
		}
	}
	event.Props.SetRecurrenceRule(rule)

	event.Props.SetText(propSound, alarm.SoundID)
	enabled := "TRUE"
	if !alarm.Enabled {
		enabled = "FALSE"
	}
	event.Props.SetText(propEnabled, enabled)

	valarm := ical.NewComponent(ical.CompAlarm)
	valarm.Props.SetText(ical.PropAction, "AUDIO")
	trigger := ical.NewProp(ical.PropTrigger)
	trigger.Value = "PT0S"
	valarm.Props.Set(trigger)
	event.Children = append(event.Children, valarm)

	return event.Component
}

// Import reads VEVENTs from a calendar stream. Events that cannot be expressed as
// a daily or weekly alarm are skipped.
func Import(r io.Reader) ([]ImportedAlarm, error) {
	decoder := ical.NewDecoder(r)
	var result []ImportedAlarm

	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode calendar: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}

			imported, err := eventToAlarm(comp)
			if err != nil {
				logging.Logger.Warn("Skipping calendar event", "error", err)
				continue
			}
			result = append(result, imported)
		}
	}

	return result, nil
}

func eventToAlarm(comp *ical.Component) (ImportedAlarm, error) {
	startProp := comp.Props.Get(ical.PropDateTimeStart)
	if startProp == nil {
		return ImportedAlarm{}, fmt.Errorf("event has no DTSTART")
	}
	start, err := parseDateTimeProperty(startProp)
	if err != nil {
		return ImportedAlarm{}, err
	}

	tod := domain.TimeOfDay{Hour: start.Hour(), Minute: start.Minute()}
	imported := ImportedAlarm{
		Draft:   domain.AlarmDraft{Time: tod},
		Enabled: true,
	}

	if uid, err := comp.Props.Text(ical.PropUID); err == nil {
		imported.UID = strings.TrimSuffix(uid, "@despertar")
	}
	if summary, err := comp.Props.Text(ical.PropSummary); err == nil && summary != tod.String() {
		imported.Draft.Label = truncateLabel(summary)
	}
	if sound, err := comp.Props.Text(propSound); err == nil {
		imported.Draft.SoundID = sound
	}
	if enabled, err := comp.Props.Text(propEnabled); err == nil {
		imported.Enabled = !strings.EqualFold(enabled, "FALSE")
	}

	rule, err := comp.Props.RecurrenceRule()
	if err != nil {
		return ImportedAlarm{}, fmt.Errorf("invalid RRULE: %w", err)
	}

	switch {
	case rule == nil:
		imported.Draft.Days = []domain.Weekday{domain.WeekdayOf(start)}
	case rule.Freq == rrule.DAILY:
		imported.Draft.Days = nil
	case rule.Freq == rrule.WEEKLY:
		if len(rule.Byweekday) == 0 {
			imported.Draft.Days = []domain.Weekday{domain.WeekdayOf(start)}
			break
		}
		for _, wd := range rule.Byweekday {
			day := fromRRuleDay(wd)
			if !domain.ContainsDay(imported.Draft.Days, day) {
				imported.Draft.Days = append(imported.Draft.Days, day)
			}
		}
		imported.Draft.Days = domain.SortDays(imported.Draft.Days)
	default:
		return ImportedAlarm{}, fmt.Errorf("unsupported recurrence %s", rule.Freq)
	}

	if err := imported.Draft.Validate(); err != nil {
		return ImportedAlarm{}, err
	}
	return imported, nil
}

// parseDateTimeProperty attempts to parse a datetime property with multiple strategies
func parseDateTimeProperty(prop *ical.Prop) (time.Time, error) {
	if t, err := prop.DateTime(time.Local); err == nil {
		return t.In(time.Local), nil
	}

	formats := []string{
		floatingLayout,
		"20060102T150405Z",
		time.RFC3339,
		"2006-01-02T15:04:05",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, prop.Value, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse datetime value: %s", prop.Value)
}

func toRRuleDay(day domain.Weekday) rrule.Weekday {
	for i, d := range domain.Week {
		if d == day {
			return rruleDays[i]
		}
	}
	return rrule.MO
}

func fromRRuleDay(wd rrule.Weekday) domain.Weekday {
	return domain.Week[wd.Day()%7]
}

func truncateLabel(s string) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) > domain.MaxLabelLength {
		runes = runes[:domain.MaxLabelLength]
	}
	return string(runes)
}
