package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove an MCP server configuration",
	Long: `Remove an MCP server entry from the targeted client(s).

Removing a server that is not configured is not an error. The client's
config file is backed up before it is rewritten.

Examples:
  mcph remove github
  mcph remove github --client cursor`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

// runRemove implements the remove command logic.
func runRemove(_ *cobra.Command, args []string) error {
	name := args[0]

	registry, err := newRegistry()
	if err != nil {
		return err
	}
	targets, err := targetClients(registry)
	if err != nil {
		return err
	}

	for _, c := range targets {
		fmt.Printf("Removing '%s' from %s... ", name, c.Name())
		if err := c.RemoveServer(name); err != nil {
			fmt.Println("failed")
			return err
		}
		fmt.Println("done")
	}

	return nil
}
