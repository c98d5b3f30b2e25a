package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(clientsCmd)
}

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Show supported MCP clients and their config paths",
	Args:  cobra.NoArgs,
	RunE:  runClients,
}

// runClients implements the clients command logic.
func runClients(_ *cobra.Command, _ []string) error {
	registry, err := newRegistry()
	if err != nil {
		return err
	}

	for _, c := range registry.All() {
		status := "not detected"
		if c.IsInstalled() {
			status = "detected"
		}
		fmt.Printf("%-16s %-13s %s\n", c.Name(), status, c.ConfigPath())
	}

	return nil
}
