package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/despertar/internal/domain"
	portsmocks "github.com/renato0307/despertar/internal/ports/mocks"
	"github.com/renato0307/despertar/internal/services"
)

// newTestAlarms returns a service over a permissive repository mock holding
// one alarm per draft, in order
func newTestAlarms(t *testing.T, drafts ...domain.AlarmDraft) (*services.AlarmService, []domain.Alarm) {
	t.Helper()

	repo := portsmocks.NewMockAlarmRepository(t)
	repo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil).Maybe()
	repo.EXPECT().Delete(mock.Anything, mock.Anything).Return(nil).Maybe()

	svc := services.NewAlarmService(repo, nil, nil)
	created := make([]domain.Alarm, 0, len(drafts))
	for _, d := range drafts {
		alarm, err := svc.Create(context.Background(), d)
		require.NoError(t, err)
		created = append(created, alarm)
	}
	return svc, created
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// execCmd runs cmd and returns its message, or nil
func execCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
