package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcph/mcph/internal/errors"
	"github.com/mcph/mcph/internal/mcp"
)

func init() {
	rootCmd.AddCommand(diffCmd)
}

var diffCmd = &cobra.Command{
	Use:   "diff <server>",
	Short: "Show what the latest change to a server modified",
	Long: `Show the difference between a server's previous and current
configuration, as recorded by the latest snapshot.

Examples:
  mcph diff github
  mcph diff github --client cursor`,
	Args: cobra.ExactArgs(1),
	RunE: runDiff,
}

// runDiff implements the diff command logic.
func runDiff(_ *cobra.Command, args []string) error {
	serverName := args[0]

	clientFilter := ""
	if len(clientFlag) == 1 {
		clientFilter = clientFlag[0]
	}

	snaps, err := newHistoryManager().GetHistory(clientFilter, serverName)
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrNotFound, "no history for server %q", serverName),
			"Run 'mcph history' to see recorded servers")
	}

	snap := snaps[0]
	fmt.Printf("%s/%s at %s\n", snap.ClientName, snap.ServerName,
		snap.Timestamp.Local().Format(time.RFC3339))

	if snap.PreviousConfig == nil {
		fmt.Printf("Initial configuration: %s\n", formatCommand(snap.Config))
		return nil
	}

	lines := mcp.Diff(*snap.PreviousConfig, snap.Config)
	if len(lines) == 0 {
		fmt.Println("No changes.")
		return nil
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}
