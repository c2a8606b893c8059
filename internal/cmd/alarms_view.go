package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/despertar/internal/domain"
)

// AlarmsViewCmd views a specific alarm
type AlarmsViewCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	ID     string `arg:"" help:"ID (or unique ID prefix) of the alarm"`
}

// Run executes the view command
func (a *AlarmsViewCmd) Run(cli *CLI) error {
	ctx := context.Background()
	container, err := loadContainer(ctx, cli)
	if err != nil {
		return err
	}

	alarm, err := findAlarm(container.Alarms.List(), a.ID)
	if err != nil {
		return err
	}

	if a.Format == "json" {
		return printJSON(toAlarmOutput(alarm))
	}
	printAlarm(alarm)
	return nil
}

func printAlarm(alarm domain.Alarm) {
	fmt.Printf("Alarm: %s\n", alarm.ID)
	fmt.Printf("Time: %s\n", alarm.Time)
	fmt.Printf("Days: %s\n", domain.FormatDays(alarm.Days))
	fmt.Printf("Label: %s\n", orDash(alarm.Label))
	fmt.Printf("Sound: %s\n", domain.ResolveSound(alarm.SoundID).Name)
	fmt.Printf("Enabled: %t\n", alarm.Enabled)
	fmt.Printf("Next Trigger: %s\n", alarm.NextTrigger.Local().Format("2006-01-02 15:04:05"))
}
