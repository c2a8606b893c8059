package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/logging"
)

// AlarmsAddCmd adds a new alarm
type AlarmsAddCmd struct {
	Days  string `help:"Days to repeat on (e.g. Mon,Wed,Fri, weekdays, weekends). Empty means every day" short:"D"`
	Label string `help:"Label shown when the alarm rings" short:"l"`
	Sound string `help:"Sound id (see 'despertar sounds list')" short:"s"`
	Time  string `help:"Time of day in 24h HH:MM" short:"t" required:""`
}

// Run executes the add command
func (a *AlarmsAddCmd) Run(cli *CLI) error {
	draft, err := buildDraft(a.Time, a.Days, a.Label, a.Sound)
	if err != nil {
		return err
	}
	if draft.SoundID == "" {
		draft.SoundID = cli.settings.DefaultSound
	}

	ctx := context.Background()
	container, err := loadContainer(ctx, cli)
	if err != nil {
		return err
	}

	logging.Logger.Info("Executing alarms add command", "time", a.Time, "days", a.Days)
	alarm, err := container.Alarms.Create(ctx, draft)
	if err != nil {
		return fmt.Errorf("failed to add alarm: %w", err)
	}
	if err := flushMirror(ctx, container); err != nil {
		return err
	}

	fmt.Printf("Alarm %s set for %s (%s)\n", alarm.ID, alarm.Time, domain.FormatDays(alarm.Days))
	return nil
}

// AlarmsEditCmd edits an existing alarm. Omitted flags keep their current value.
type AlarmsEditCmd struct {
	Days  *string `help:"Days to repeat on; pass an empty string for every day" short:"D"`
	ID    string  `arg:"" help:"ID (or unique ID prefix) of the alarm"`
	Label *string `help:"Label shown when the alarm rings" short:"l"`
	Sound *string `help:"Sound id" short:"s"`
	Time  *string `help:"Time of day in 24h HH:MM" short:"t"`
}

// Run executes the edit command
func (a *AlarmsEditCmd) Run(cli *CLI) error {
	ctx := context.Background()
	container, err := loadContainer(ctx, cli)
	if err != nil {
		return err
	}

	existing, err := findAlarm(container.Alarms.List(), a.ID)
	if err != nil {
		return err
	}

	draft := existing.Draft()
	if a.Time != nil {
		if draft.Time, err = domain.ParseTimeOfDay(*a.Time); err != nil {
			return err
		}
	}
	if a.Days != nil {
		if draft.Days, err = domain.ParseWeekdays(*a.Days); err != nil {
			return err
		}
	}
	if a.Label != nil {
		draft.Label = *a.Label
	}
	if a.Sound != nil {
		if draft.SoundID, err = validateSoundID(*a.Sound); err != nil {
			return err
		}
	}

	logging.Logger.Info("Executing alarms edit command", "id", existing.ID)
	alarm, err := container.Alarms.Edit(ctx, existing.ID, draft)
	if err != nil {
		return fmt.Errorf("failed to edit alarm: %w", err)
	}
	if err := flushMirror(ctx, container); err != nil {
		return err
	}

	fmt.Printf("Alarm %s updated\n\n", alarm.ID)
	printAlarm(alarm)
	return nil
}

// buildDraft parses the user-facing flag values into a validated draft
func buildDraft(timeStr, days, label, sound string) (domain.AlarmDraft, error) {
	tod, err := domain.ParseTimeOfDay(timeStr)
	if err != nil {
		return domain.AlarmDraft{}, err
	}
	weekdays, err := domain.ParseWeekdays(days)
	if err != nil {
		return domain.AlarmDraft{}, err
	}
	soundID, err := validateSoundID(sound)
	if err != nil {
		return domain.AlarmDraft{}, err
	}

	draft := domain.AlarmDraft{Days: weekdays, Label: label, SoundID: soundID, Time: tod}
	return draft, draft.Validate()
}

// validateSoundID rejects ids outside the catalog. Empty is allowed.
func validateSoundID(id string) (string, error) {
	if id == "" {
		return "", nil
	}
	if domain.ResolveSound(id).ID != id {
		return "", fmt.Errorf("unknown sound '%s'. See 'despertar sounds list'", id)
	}
	return id, nil
}
