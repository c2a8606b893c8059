package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/logging"
	"github.com/renato0307/despertar/internal/services"
)

// AlarmFormResult contains the result of the add/edit form
type AlarmFormResult struct {
	Alarm     domain.Alarm
	Cancelled bool
	Created   bool
	Error     error
}

// AlarmForm is a Bubble Tea component for creating and editing alarms
type AlarmForm struct {
	Completed bool

	alarms  *services.AlarmService
	days    []domain.Weekday
	editID  string // Empty when creating
	form    *huh.Form
	label   string
	result  AlarmFormResult
	soundID string
	timeStr string
}

// NewAlarmForm creates a form. Pass a nil existing alarm to create a new one.
func NewAlarmForm(alarms *services.AlarmService, existing *domain.Alarm, defaultSound string) *AlarmForm {
	af := &AlarmForm{
		alarms:  alarms,
		soundID: domain.ResolveSound(defaultSound).ID,
	}
	if existing != nil {
		af.days = append([]domain.Weekday(nil), existing.Days...)
		af.editID = existing.ID
		af.label = existing.Label
		af.soundID = existing.SoundID
		af.timeStr = existing.Time.String()
	}

	dayOptions := make([]huh.Option[domain.Weekday], len(domain.Week))
	for i, day := range domain.Week {
		dayOptions[i] = huh.NewOption(string(day), day).Selected(domain.ContainsDay(af.days, day))
	}

	soundOptions := make([]huh.Option[string], len(domain.Sounds))
	for i, sound := range domain.Sounds {
		soundOptions[i] = huh.NewOption(sound.Name, sound.ID)
	}

	af.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Time").
				Description("24-hour clock, HH:MM").
				Placeholder("07:30").
				Value(&af.timeStr).
				Validate(func(s string) error {
					_, err := domain.ParseTimeOfDay(s)
					return err
				}),
			huh.NewInput().
				Title("Label (optional)").
				CharLimit(domain.MaxLabelLength).
				Value(&af.label),
			huh.NewMultiSelect[domain.Weekday]().
				Title("Repeat on").
				Description("Leave empty to ring every day").
				Options(dayOptions...).
				Value(&af.days),
			huh.NewSelect[string]().
				Title("Sound").
				Options(soundOptions...).
				Value(&af.soundID),
		),
	)

	return af
}

// IsEdit reports whether the form edits an existing alarm
func (af *AlarmForm) IsEdit() bool {
	return af.editID != ""
}

func (af *AlarmForm) Init() tea.Cmd {
	return af.form.Init()
}

func (af *AlarmForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			af.result.Cancelled = true
			af.Completed = true
			return af, nil
		}
	}

	form, cmd := af.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		af.form = f
	}

	if af.form.State == huh.StateCompleted {
		af.Completed = true
		if err := af.save(); err != nil {
			logging.Logger.Error("Failed to save alarm from form", "error", err)
			af.result.Error = err
		}
		return af, nil
	}

	return af, cmd
}

func (af *AlarmForm) View() string {
	return af.form.View()
}

// Result returns the form result
func (af *AlarmForm) Result() AlarmFormResult {
	return af.result
}

// Draft builds the alarm draft from the current field values
func (af *AlarmForm) Draft() (domain.AlarmDraft, error) {
	tod, err := domain.ParseTimeOfDay(af.timeStr)
	if err != nil {
		return domain.AlarmDraft{}, err
	}
	return domain.AlarmDraft{
		Days:    af.days,
		Label:   strings.TrimSpace(af.label),
		SoundID: af.soundID,
		Time:    tod,
	}, nil
}

func (af *AlarmForm) save() error {
	draft, err := af.Draft()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if af.IsEdit() {
		alarm, err := af.alarms.Edit(ctx, af.editID, draft)
		if err != nil {
			return fmt.Errorf("failed to update alarm: %w", err)
		}
		af.result.Alarm = alarm
		return nil
	}

	alarm, err := af.alarms.Create(ctx, draft)
	if err != nil {
		return fmt.Errorf("failed to create alarm: %w", err)
	}
	af.result.Alarm = alarm
	af.result.Created = true
	return nil
}
