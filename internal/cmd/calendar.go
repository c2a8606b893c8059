package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/renato0307/despertar/internal/adapters/calendar"
	"github.com/renato0307/despertar/internal/logging"
)

// ExportCmd writes alarms as an iCalendar file
type ExportCmd struct {
	Output string `help:"File to write (default: stdout)" short:"o" type:"path"`
}

// Run executes the export command
func (e *ExportCmd) Run(cli *CLI) error {
	ctx := context.Background()
	container, err := loadContainer(ctx, cli)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if e.Output != "" {
		f, err := os.Create(e.Output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", e.Output, err)
		}
		defer f.Close()
		w = f
	}

	alarms := container.Alarms.List()
	if err := calendar.Export(w, alarms, time.Now()); err != nil {
		return fmt.Errorf("failed to export alarms: %w", err)
	}

	logging.Logger.Info("Alarms exported", "count", len(alarms), "output", e.Output)
	if e.Output != "" {
		fmt.Printf("Exported %d alarm(s) to %s\n", len(alarms), e.Output)
	}
	return nil
}

// ImportCmd adds alarms from an iCalendar file
type ImportCmd struct {
	File    string `arg:"" help:"iCalendar file to read (- for stdin)"`
	Replace bool   `help:"Replace all existing alarms instead of adding"`
}

// Run executes the import command
func (i *ImportCmd) Run(cli *CLI) error {
	var r io.Reader = os.Stdin
	if i.File != "-" {
		f, err := os.Open(i.File)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", i.File, err)
		}
		defer f.Close()
		r = f
	}

	imported, err := calendar.Import(r)
	if err != nil {
		return fmt.Errorf("failed to import alarms: %w", err)
	}

	ctx := context.Background()
	container, err := loadContainer(ctx, cli)
	if err != nil {
		return err
	}

	if i.Replace {
		if err := container.Alarms.Replace(ctx, nil); err != nil {
			return err
		}
	}

	for _, item := range imported {
		alarm, err := container.Alarms.Create(ctx, item.Draft)
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", item.UID, err)
		}
		if !item.Enabled {
			container.Alarms.Toggle(ctx, alarm.ID)
		}
		logging.Logger.Debug("Alarm imported", "uid", item.UID, "id", alarm.ID)
	}

	if err := flushMirror(ctx, container); err != nil {
		return err
	}

	fmt.Printf("Imported %d alarm(s)\n", len(imported))
	return nil
}
