package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/logging"
)

// AlarmsDelCmd deletes an alarm
type AlarmsDelCmd struct {
	Force bool   `help:"Delete without confirmation" short:"f"`
	ID    string `arg:"" help:"ID (or unique ID prefix) of the alarm"`
}

// Run executes the del command
func (a *AlarmsDelCmd) Run(cli *CLI) error {
	ctx := context.Background()
	container, err := loadContainer(ctx, cli)
	if err != nil {
		return err
	}

	alarm, err := findAlarm(container.Alarms.List(), a.ID)
	if err != nil {
		return err
	}

	if !a.Force && !a.confirmDeletion(alarm) {
		return nil
	}

	if !container.Alarms.Delete(ctx, alarm.ID) {
		return fmt.Errorf("%w: %s", domain.ErrAlarmNotFound, alarm.ID)
	}
	if err := flushMirror(ctx, container); err != nil {
		return err
	}

	logging.Logger.Info("Alarm deleted via CLI", "id", alarm.ID)
	fmt.Printf("Alarm '%s' deleted\n", alarm.DisplayName())
	return nil
}

func (a *AlarmsDelCmd) confirmDeletion(alarm domain.Alarm) bool {
	fmt.Printf("Delete alarm '%s' (%s, %s)? (y/N): ", alarm.DisplayName(), alarm.Time, domain.FormatDays(alarm.Days))
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		logging.Logger.Info("User cancelled alarm deletion", "id", alarm.ID)
		fmt.Println("Cancelled")
		return false
	}
	return true
}
