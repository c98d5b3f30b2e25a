package commands

import (
	"fmt"
	"time"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/mcph/mcph/internal/client"
	"github.com/mcph/mcph/internal/errors"
	"github.com/mcph/mcph/internal/history"
)

func init() {
	rootCmd.AddCommand(rollbackCmd)
}

var rollbackCmd = &cobra.Command{
	Use:   "rollback [<server>]",
	Short: "Restore a server's previous configuration",
	Long: `Restore a server's previous configuration.

Every snapshot carries a copy of the config it replaced; rolling a
snapshot back writes that copy to the client and records the restore as
a new snapshot. Rolling back twice therefore returns to the state
before the first rollback.

With a server argument, the latest change for that server is undone.
Without one, an interactive picker lists the full history so any
recorded snapshot can be rolled back.

Examples:
  mcph rollback github
  mcph rollback github --client cursor
  mcph rollback`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRollback,
}

// runRollback implements the rollback command logic.
func runRollback(_ *cobra.Command, args []string) error {
	registry, err := newRegistry()
	if err != nil {
		return err
	}
	manager := newHistoryManager()

	if len(args) == 0 {
		c, target, err := pickSnapshot(registry, manager)
		if err != nil || c == nil {
			return err
		}
		fmt.Printf("Rolling back '%s' on %s... ", target.ServerName, c.Name())
		snap, err := manager.Rollback(c, target)
		return reportRollback(snap, err)
	}

	serverName := args[0]
	targets, err := targetClients(registry)
	if err != nil {
		return err
	}
	for _, c := range targets {
		fmt.Printf("Rolling back '%s' on %s... ", serverName, c.Name())
		snap, err := manager.RollbackLatest(c, serverName)
		if err := reportRollback(snap, err); err != nil {
			return err
		}
	}
	return nil
}

// reportRollback finishes the progress line and maps rollback errors to
// user errors with suggestions.
func reportRollback(snap *history.Snapshot, err error) error {
	if err != nil {
		fmt.Println("failed")
		switch {
		case errors.Is(err, errors.ErrNoPreviousConfig):
			return errors.NewUserError(err,
				"This is the first recorded config; there is nothing older to restore")
		case errors.Is(err, errors.ErrNotFound):
			return errors.NewUserError(err,
				"Run 'mcph history' to see recorded servers")
		}
		return err
	}

	fmt.Println("done")
	if snap.PreviousConfig != nil {
		printConfigDiff(*snap.PreviousConfig, snap.Config)
	}
	return nil
}

// pickSnapshot lets the user choose a rollback target from the full
// recorded history, newest first. Returns nil without error when the user
// aborts or no history exists.
func pickSnapshot(registry *client.Registry, manager *history.Manager) (client.Client, *history.Snapshot, error) {
	snaps, err := manager.GetHistory("", "")
	if err != nil {
		return nil, nil, err
	}
	if len(snaps) == 0 {
		fmt.Println("No history recorded.")
		return nil, nil, nil
	}

	idx, err := fuzzyfinder.Find(
		snaps,
		func(i int) string {
			return fmt.Sprintf("%s/%s (%s) %s", snaps[i].ClientName, snaps[i].ServerName,
				snaps[i].Timestamp.Local().Format(time.RFC3339), snaps[i].Description)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			snap := snaps[i]
			preview := fmt.Sprintf("Client: %s\nServer: %s\nWhen: %s\n\nRecorded config:\n  %s\n",
				snap.ClientName, snap.ServerName,
				snap.Timestamp.Local().Format(time.RFC3339),
				formatCommand(snap.Config))
			if snap.PreviousConfig != nil {
				preview += fmt.Sprintf("\nRolls back to:\n  %s\n", formatCommand(*snap.PreviousConfig))
			} else {
				preview += "\nNo previous config; cannot roll back.\n"
			}
			return preview
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil, nil
		}
		return nil, nil, errors.Wrap(err, "interactive selection failed")
	}

	chosen := snaps[idx]
	c, err := registry.ByName(chosen.ClientName)
	if err != nil {
		return nil, nil, err
	}
	return c, &chosen, nil
}
