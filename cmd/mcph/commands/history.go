package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mcph/mcph/internal/errors"
	"github.com/mcph/mcph/internal/history"
)

// Package-level flag variables for the history command.
var (
	historyServer string
	historyOutput string
	historyKeep   int
)

func init() {
	historyCmd.Flags().StringVarP(&historyServer, "server", "s", "",
		"only show history for this server")
	historyCmd.Flags().StringVarP(&historyOutput, "output", "o", "text",
		"output format: text, json, yaml")

	historyPruneCmd.Flags().IntVar(&historyKeep, "keep", 50,
		"number of snapshots to keep")

	historyCmd.AddCommand(historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show configuration change history",
	Long: `Show recorded configuration snapshots, newest first.

Each snapshot records the applied config, the config it replaced, and a
timestamp. History is append-only: applying and rolling back both add
snapshots, and nothing is discarded unless 'history prune' is run.

Examples:
  mcph history
  mcph history --server github --client cursor
  mcph history -o yaml`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

// runHistory implements the history command logic.
func runHistory(_ *cobra.Command, _ []string) error {
	clientFilter := ""
	if len(clientFlag) == 1 {
		clientFilter = clientFlag[0]
	}

	snaps, err := newHistoryManager().GetHistory(clientFilter, historyServer)
	if err != nil {
		return err
	}

	switch historyOutput {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snaps)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(snaps)
	case "text":
		printHistoryText(snaps)
		return nil
	default:
		return errors.NewUserError(
			errors.Newf("invalid output format %q", historyOutput),
			"Use one of: text, json, yaml")
	}
}

func printHistoryText(snaps []history.Snapshot) {
	if len(snaps) == 0 {
		fmt.Println("No history recorded.")
		return
	}

	for _, snap := range snaps {
		fmt.Printf("%s  %s/%s\n",
			snap.Timestamp.Local().Format(time.RFC3339), snap.ClientName, snap.ServerName)
		if snap.Description != "" {
			fmt.Printf("  %s\n", snap.Description)
		}
		fmt.Printf("  command: %s\n", formatCommand(snap.Config))
		if snap.PreviousConfig != nil {
			printConfigDiff(*snap.PreviousConfig, snap.Config)
		}
	}
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Discard old history snapshots",
	Long: `Discard all but the newest snapshots.

This is the only operation that removes history. Rollback depth is
limited to what remains afterwards.

Examples:
  mcph history prune
  mcph history prune --keep 100`,
	Args: cobra.NoArgs,
	RunE: runHistoryPrune,
}

// runHistoryPrune implements the history prune command logic.
func runHistoryPrune(_ *cobra.Command, _ []string) error {
	var opts []history.StoreOption
	if loadedConfig != nil && loadedConfig.HistoryDir != "" {
		opts = append(opts, history.WithDir(loadedConfig.HistoryDir))
	}
	store := history.NewStore(opts...)

	before, err := store.Len()
	if err != nil {
		return err
	}
	if err := store.Prune(historyKeep); err != nil {
		return err
	}
	after, err := store.Len()
	if err != nil {
		return err
	}

	fmt.Printf("Pruned %d snapshots, %d kept\n", before-after, after)
	return nil
}
