package storage

import (
	"fmt"
	"strings"

	"github.com/renato0307/despertar/internal/domain"
)

// alarmModelToDomain converts an AlarmModel (GORM) to domain.Alarm
func alarmModelToDomain(m AlarmModel) (domain.Alarm, error) {
	tod, err := domain.ParseTimeOfDay(m.TimeOfDay)
	if err != nil {
		return domain.Alarm{}, fmt.Errorf("alarm %s: %w", m.ID, err)
	}

	return domain.Alarm{
		Days:        splitDays(m.Days),
		Enabled:     m.Enabled,
		ID:          m.ID,
		Label:       m.Label,
		NextTrigger: m.NextTrigger.Local(),
		SoundID:     m.SoundID,
		Time:        tod,
	}, nil
}

// domainToAlarmModel converts a domain.Alarm to AlarmModel (GORM)
func domainToAlarmModel(a domain.Alarm) AlarmModel {
	return AlarmModel{
		Days:        joinDays(a.Days),
		Enabled:     a.Enabled,
		ID:          a.ID,
		Label:       a.Label,
		NextTrigger: a.NextTrigger.UTC(),
		SoundID:     a.SoundID,
		TimeOfDay:   a.Time.String(),
	}
}

func joinDays(days []domain.Weekday) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = string(d)
	}
	return strings.Join(parts, ",")
}

func splitDays(s string) []domain.Weekday {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	days := make([]domain.Weekday, len(parts))
	for i, p := range parts {
		days[i] = domain.Weekday(p)
	}
	return days
}
