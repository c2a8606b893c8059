package calendar

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/despertar/internal/domain"
)

func TestExport(t *testing.T) {
	now := time.Date(2024, 1, 1, 6, 0, 0, 0, time.Local)
	alarms := []domain.Alarm{
		{
			Days:        []domain.Weekday{domain.Monday, domain.Friday},
			Enabled:     true,
			ID:          "a1",
			Label:       "Gym",
			NextTrigger: time.Date(2024, 1, 1, 6, 30, 0, 0, time.Local),
			SoundID:     "bell",
			Time:        domain.TimeOfDay{Hour: 6, Minute: 30},
		},
		{
			Enabled: false,
			ID:      "a2",
			SoundID: "default",
			Time:    domain.TimeOfDay{Hour: 22},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, alarms, now))
	out := buf.String()

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "UID:a1@despertar")
	assert.Contains(t, out, "DTSTART:20240101T063000")
	assert.Contains(t, out, "BYDAY=MO,FR")
	assert.Contains(t, out, "FREQ=DAILY")
	assert.Contains(t, out, "SUMMARY:22:00")
	assert.Contains(t, out, "X-DESPERTAR-ENABLED:FALSE")
	assert.Contains(t, out, "ACTION:AUDIO")
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
}

func TestExportImportRoundTrip(t *testing.T) {
	now := time.Date(2024, 1, 1, 6, 0, 0, 0, time.Local)
	alarms := []domain.Alarm{
		{
			Days:    []domain.Weekday{domain.Saturday, domain.Sunday},
			Enabled: true,
			ID:      "weekend",
			Label:   "Sleep in",
			SoundID: "gentle",
			Time:    domain.TimeOfDay{Hour: 9, Minute: 15},
		},
		{
			Enabled: false,
			ID:      "daily",
			SoundID: "beep",
			Time:    domain.TimeOfDay{Hour: 7},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, alarms, now))

	imported, err := Import(&buf)
	require.NoError(t, err)
	require.Len(t, imported, 2)

	assert.Equal(t, "weekend", imported[0].UID)
	assert.Equal(t, "Sleep in", imported[0].Draft.Label)
	assert.Equal(t, domain.TimeOfDay{Hour: 9, Minute: 15}, imported[0].Draft.Time)
	assert.Equal(t, []domain.Weekday{domain.Saturday, domain.Sunday}, imported[0].Draft.Days)
	assert.Equal(t, "gentle", imported[0].Draft.SoundID)
	assert.True(t, imported[0].Enabled)

	assert.Empty(t, imported[1].Draft.Label, "time-only summary is not a label")
	assert.Nil(t, imported[1].Draft.Days)
	assert.False(t, imported[1].Enabled)
}

func TestImport_ForeignCalendar(t *testing.T) {
	ics := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//other//EN",
		"BEGIN:VEVENT",
		"UID:one-off",
		"DTSTAMP:20240101T000000Z",
		"DTSTART:20240103T071500",
		"SUMMARY:Dentist",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:monthly",
		"DTSTAMP:20240101T000000Z",
		"DTSTART:20240103T080000",
		"RRULE:FREQ=MONTHLY",
		"SUMMARY:Rent",
		"END:VEVENT",
		"BEGIN:VTODO",
		"UID:todo",
		"DTSTAMP:20240101T000000Z",
		"END:VTODO",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	imported, err := Import(strings.NewReader(ics))
	require.NoError(t, err)
	require.Len(t, imported, 1, "monthly events and todos are skipped")

	assert.Equal(t, "Dentist", imported[0].Draft.Label)
	assert.Equal(t, []domain.Weekday{domain.Wednesday}, imported[0].Draft.Days)
	assert.Equal(t, domain.TimeOfDay{Hour: 7, Minute: 15}, imported[0].Draft.Time)
	assert.True(t, imported[0].Enabled)
}

func TestImport_Malformed(t *testing.T) {
	_, err := Import(strings.NewReader("BEGIN:VCALENDAR\r\nBROKEN"))
	assert.Error(t, err)
}
