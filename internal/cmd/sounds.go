package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/logging"
)

// SoundsCmd lists and previews sounds
type SoundsCmd struct {
	List    SoundsListCmd    `cmd:"list" aliases:"ls" help:"List available sounds" default:"1"`
	Preview SoundsPreviewCmd `cmd:"preview" help:"Play a sound once"`
}

// SoundsListCmd lists the sound catalog
type SoundsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type soundOutput struct {
	File      string `json:"file"`
	ID        string `json:"id"`
	Installed bool   `json:"installed"`
	Name      string `json:"name"`
}

// Run executes the list command
func (s *SoundsListCmd) Run(cli *CLI) error {
	dir := cli.settings.SoundsDir()

	output := make([]soundOutput, 0, len(domain.Sounds))
	for _, sound := range domain.Sounds {
		_, err := os.Stat(filepath.Join(dir, sound.File))
		output = append(output, soundOutput{
			File:      sound.File,
			ID:        sound.ID,
			Installed: err == nil,
			Name:      sound.Name,
		})
	}

	if s.Format == "json" {
		return printJSON(output)
	}

	fmt.Printf("Sounds directory: %s\n\n", dir)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tFILE\tINSTALLED")
	for _, sound := range output {
		installed := "no (synthesized tone)"
		if sound.Installed {
			installed = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", sound.ID, sound.Name, sound.File, installed)
	}
	return w.Flush()
}

// SoundsPreviewCmd plays a sound once
type SoundsPreviewCmd struct {
	Duration time.Duration `help:"Maximum time to play" default:"5s"`
	ID       string        `arg:"" help:"Sound id" default:"default"`
}

// Run executes the preview command
func (s *SoundsPreviewCmd) Run(cli *CLI) error {
	if _, err := validateSoundID(s.ID); err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	container, err := cli.Container(ctx)
	if err != nil {
		return err
	}

	logging.Logger.Info("Previewing sound", "id", s.ID)
	if err := container.Player.Preview(s.ID); err != nil {
		return fmt.Errorf("failed to preview sound: %w", err)
	}
	defer container.Player.Stop()

	fmt.Printf("Playing %s...\n", domain.ResolveSound(s.ID).Name)
	return sleepContext(ctx, s.Duration)
}

// sleepContext waits for d or until ctx is done. Cancellation is not an error.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
	return nil
}
