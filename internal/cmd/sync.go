package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/despertar/internal/logging"
)

// SyncCmd moves alarms between this machine and the remote backend
type SyncCmd struct {
	Pull SyncPullCmd `cmd:"pull" help:"Replace local alarms with the remote record"`
	Push SyncPushCmd `cmd:"push" help:"Save local alarms to the remote backend" default:"1"`
}

var errMirrorDisabled = errors.New("remote backend not configured: set user_id and remote.backend in settings.json")

// SyncPushCmd saves local alarms remotely
type SyncPushCmd struct{}

// Run executes the push command
func (s *SyncPushCmd) Run(cli *CLI) error {
	ctx := context.Background()
	container, err := cli.Container(ctx)
	if err != nil {
		return err
	}
	if container.RemoteErr != nil {
		return container.RemoteErr
	}
	if !container.Mirror.Enabled() {
		return errMirrorDisabled
	}

	// Local only: loading would let the remote record overwrite what we push
	if err := container.Alarms.Refresh(ctx); err != nil {
		return err
	}

	alarms := container.Alarms.List()
	container.Mirror.Push(alarms)
	if err := container.Mirror.Flush(ctx); err != nil {
		return fmt.Errorf("failed to push alarms: %w", err)
	}

	logging.Logger.Info("Alarms pushed", "count", len(alarms))
	fmt.Printf("Pushed %d alarm(s)\n", len(alarms))
	return nil
}

// SyncPullCmd replaces local alarms with the remote record
type SyncPullCmd struct{}

// Run executes the pull command
func (s *SyncPullCmd) Run(cli *CLI) error {
	ctx := context.Background()
	container, err := cli.Container(ctx)
	if err != nil {
		return err
	}
	if container.RemoteErr != nil {
		return container.RemoteErr
	}
	if !container.Mirror.Enabled() {
		return errMirrorDisabled
	}

	alarms, found, err := container.Mirror.Pull(ctx)
	if err != nil {
		return fmt.Errorf("failed to pull alarms: %w", err)
	}
	if !found {
		fmt.Println("No remote alarms for this user yet")
		return nil
	}

	if err := container.Alarms.Replace(ctx, alarms); err != nil {
		return err
	}
	// Replace queued a push of what we just pulled
	if err := container.Mirror.Flush(ctx); err != nil {
		return err
	}

	logging.Logger.Info("Alarms pulled", "count", len(alarms))
	fmt.Printf("Pulled %d alarm(s)\n", len(alarms))
	return nil
}
