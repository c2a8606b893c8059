package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/logging"
)

// AlarmsCmd manages alarms
type AlarmsCmd struct {
	Add    AlarmsAddCmd    `cmd:"add" help:"Add a new alarm"`
	Del    AlarmsDelCmd    `cmd:"del" aliases:"rm" help:"Delete an alarm"`
	Edit   AlarmsEditCmd   `cmd:"edit" help:"Edit an alarm"`
	List   AlarmsListCmd   `cmd:"list" aliases:"ls" help:"List all alarms" default:"1"`
	Toggle AlarmsToggleCmd `cmd:"toggle" help:"Switch an alarm on or off"`
	View   AlarmsViewCmd   `cmd:"view" help:"View a specific alarm"`
}

// AlarmsListCmd lists all alarms
type AlarmsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// alarmOutput is the JSON shape of an alarm
type alarmOutput struct {
	Days        []domain.Weekday `json:"days"`
	Enabled     bool             `json:"enabled"`
	ID          string           `json:"id"`
	Label       string           `json:"label,omitempty"`
	NextTrigger time.Time        `json:"next_trigger"`
	Sound       string           `json:"sound"`
	Time        string           `json:"time"`
}

func toAlarmOutput(alarm domain.Alarm) alarmOutput {
	days := alarm.Days
	if days == nil {
		days = []domain.Weekday{}
	}
	return alarmOutput{
		Days:        days,
		Enabled:     alarm.Enabled,
		ID:          alarm.ID,
		Label:       alarm.Label,
		NextTrigger: alarm.NextTrigger,
		Sound:       alarm.SoundID,
		Time:        alarm.Time.String(),
	}
}

// Run executes the list command
func (a *AlarmsListCmd) Run(cli *CLI) error {
	ctx := context.Background()
	container, err := loadContainer(ctx, cli)
	if err != nil {
		return err
	}

	alarms := container.Alarms.List()
	logging.Logger.Debug("Listing alarms", "count", len(alarms))

	if a.Format == "json" {
		output := make([]alarmOutput, 0, len(alarms))
		for _, alarm := range alarms {
			output = append(output, toAlarmOutput(alarm))
		}
		return printJSON(output)
	}

	if len(alarms) == 0 {
		fmt.Println("No alarms. Use 'despertar alarms add --time 07:30' to create one.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tDAYS\tLABEL\tSOUND\tSTATE\tNEXT")
	for _, alarm := range alarms {
		state, next := "off", "-"
		if alarm.Enabled {
			state = "on"
			next = alarm.NextTrigger.Local().Format("Mon Jan 2 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			alarm.ID,
			alarm.Time,
			domain.FormatDays(alarm.Days),
			orDash(alarm.Label),
			domain.ResolveSound(alarm.SoundID).Name,
			state,
			next,
		)
	}
	return w.Flush()
}

// loadContainer returns the container with alarms loaded from the local and remote stores
func loadContainer(ctx context.Context, cli *CLI) (*Container, error) {
	container, err := cli.Container(ctx)
	if err != nil {
		return nil, err
	}
	if container.RemoteErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", container.RemoteErr)
	}
	if err := container.Alarms.Load(ctx); err != nil {
		return nil, err
	}
	return container, nil
}

// flushMirror waits for pending remote writes before the process exits
func flushMirror(ctx context.Context, container *Container) error {
	if err := container.Mirror.Flush(ctx); err != nil {
		return fmt.Errorf("saved locally but failed to save to remote: %w", err)
	}
	return nil
}

// findAlarm resolves an exact id or a unique id prefix
func findAlarm(alarms []domain.Alarm, ref string) (domain.Alarm, error) {
	ref = strings.TrimSpace(ref)
	var matches []domain.Alarm
	for _, alarm := range alarms {
		if alarm.ID == ref {
			return alarm, nil
		}
		if ref != "" && strings.HasPrefix(alarm.ID, ref) {
			matches = append(matches, alarm)
		}
	}

	switch len(matches) {
	case 0:
		return domain.Alarm{}, fmt.Errorf("%w: %s", domain.ErrAlarmNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return domain.Alarm{}, fmt.Errorf("id prefix '%s' matches %d alarms", ref, len(matches))
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
