package remote

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/logging"
)

// alarmRecord is the JSON shape of one alarm in the per-user remote record
type alarmRecord struct {
	Days        []string   `json:"days"`
	Enabled     bool       `json:"enabled"`
	ID          string     `json:"id"`
	Label       string     `json:"label,omitempty"`
	NextRing    *time.Time `json:"nextRing,omitempty"` // legacy key, read only
	NextTrigger *time.Time `json:"nextTrigger,omitempty"`
	SoundID     string     `json:"soundId,omitempty"`
	Time        string     `json:"time"`
}

func toRecord(a domain.Alarm) alarmRecord {
	days := make([]string, len(a.Days))
	for i, d := range a.Days {
		days[i] = string(d)
	}

	rec := alarmRecord{
		Days:    days,
		Enabled: a.Enabled,
		ID:      a.ID,
		Label:   a.Label,
		SoundID: a.SoundID,
		Time:    a.Time.String(),
	}
	if !a.NextTrigger.IsZero() {
		next := a.NextTrigger.UTC()
		rec.NextTrigger = &next
	}
	return rec
}

func (r alarmRecord) toDomain(now time.Time) (domain.Alarm, error) {
	tod, err := domain.ParseTimeOfDay(r.Time)
	if err != nil {
		return domain.Alarm{}, err
	}

	days := make([]domain.Weekday, 0, len(r.Days))
	for _, d := range r.Days {
		day, err := domain.ParseWeekday(d)
		if err != nil {
			return domain.Alarm{}, err
		}
		if domain.ContainsDay(days, day) {
			logging.Logger.Warn("Dropping repeated day in remote alarm", "id", r.ID, "day", day)
			continue
		}
		days = append(days, day)
	}

	alarm := domain.Alarm{
		Days:    domain.SortDays(days),
		Enabled: r.Enabled,
		ID:      r.ID,
		Label:   r.Label,
		SoundID: domain.ResolveSound(r.SoundID).ID,
		Time:    tod,
	}

	switch {
	case r.NextTrigger != nil:
		alarm.NextTrigger = r.NextTrigger.Local()
	case r.NextRing != nil:
		alarm.NextTrigger = r.NextRing.Local()
	default:
		alarm.NextTrigger = domain.NextTrigger(tod, alarm.Days, now)
	}
	return alarm, nil
}

// EncodeAlarms serializes alarms into the remote record payload
func EncodeAlarms(alarms []domain.Alarm) ([]byte, error) {
	records := make([]alarmRecord, len(alarms))
	for i, a := range alarms {
		records[i] = toRecord(a)
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode alarms: %w", err)
	}
	return data, nil
}

// DecodeAlarms parses a remote record payload. Unreadable entries, entries
// without an id and repeated ids after the first are skipped.
func DecodeAlarms(data []byte) ([]domain.Alarm, error) {
	var records []alarmRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode alarms: %w", err)
	}

	now := time.Now()
	alarms := make([]domain.Alarm, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if r.ID == "" || seen[r.ID] {
			logging.Logger.Warn("Skipping remote alarm with missing or repeated id", "id", r.ID, "time", r.Time)
			continue
		}
		seen[r.ID] = true

		alarm, err := r.toDomain(now)
		if err != nil {
			logging.Logger.Warn("Skipping unreadable remote alarm", "id", r.ID, "error", err)
			continue
		}
		alarms = append(alarms, alarm)
	}
	return alarms, nil
}
