package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/despertar/internal/logging"
)

// AlarmsToggleCmd switches an alarm on or off
type AlarmsToggleCmd struct {
	ID string `arg:"" help:"ID (or unique ID prefix) of the alarm"`
}

// Run executes the toggle command
func (a *AlarmsToggleCmd) Run(cli *CLI) error {
	ctx := context.Background()
	container, err := loadContainer(ctx, cli)
	if err != nil {
		return err
	}

	existing, err := findAlarm(container.Alarms.List(), a.ID)
	if err != nil {
		return err
	}

	alarm, ok := container.Alarms.Toggle(ctx, existing.ID)
	if !ok {
		return fmt.Errorf("alarm %s disappeared while toggling", existing.ID)
	}
	if err := flushMirror(ctx, container); err != nil {
		return err
	}

	logging.Logger.Info("Alarm toggled via CLI", "id", alarm.ID, "enabled", alarm.Enabled)
	if alarm.Enabled {
		fmt.Printf("Alarm %s is on (%s)\n", alarm.ID, alarm.Time)
	} else {
		fmt.Printf("Alarm %s is off\n", alarm.ID)
	}
	return nil
}
