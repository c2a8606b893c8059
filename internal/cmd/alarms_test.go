package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/despertar/internal/domain"
)

func TestFindAlarm(t *testing.T) {
	alarms := []domain.Alarm{{ID: "abc123"}, {ID: "abd456"}, {ID: "ab"}}

	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr bool
	}{
		{"exact id wins over prefix", "ab", "ab", false},
		{"unique prefix", "abc", "abc123", false},
		{"ambiguous prefix", "abX", "", true},
		{"unknown", "zzz", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := findAlarm(alarms, tt.ref)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ID)
		})
	}
}

func TestFindAlarm_AmbiguousPrefix(t *testing.T) {
	_, err := findAlarm([]domain.Alarm{{ID: "abc1"}, {ID: "abc2"}}, "abc")
	assert.ErrorContains(t, err, "matches 2 alarms")
}

func TestFindAlarm_NotFoundIsSentinel(t *testing.T) {
	_, err := findAlarm(nil, "nope")
	assert.ErrorIs(t, err, domain.ErrAlarmNotFound)
}

func TestBuildDraft(t *testing.T) {
	draft, err := buildDraft("06:30", "weekdays", "Work", "bell")
	require.NoError(t, err)
	assert.Equal(t, domain.TimeOfDay{Hour: 6, Minute: 30}, draft.Time)
	assert.Len(t, draft.Days, 5)
	assert.Equal(t, "Work", draft.Label)
	assert.Equal(t, "bell", draft.SoundID)

	daily, err := buildDraft("7:00", "", "", "")
	require.NoError(t, err)
	assert.Empty(t, daily.Days)
	assert.Empty(t, daily.SoundID)
}

func TestBuildDraft_Rejects(t *testing.T) {
	_, err := buildDraft("25:00", "", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidAlarm)

	_, err = buildDraft("07:00", "Mon,Funday", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidAlarm)

	_, err = buildDraft("07:00", "", "", "kazoo")
	assert.ErrorContains(t, err, "unknown sound")
}

func TestToAlarmOutput_DailyHasEmptyDays(t *testing.T) {
	out := toAlarmOutput(domain.Alarm{ID: "a", Time: domain.TimeOfDay{Hour: 8}})
	assert.NotNil(t, out.Days)
	assert.Equal(t, "08:00", out.Time)
}
