package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured MCP servers per client",
	Long: `List the MCP servers configured on the targeted client(s).

Examples:
  mcph list
  mcph list --client cursor`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// runList implements the list command logic.
func runList(_ *cobra.Command, _ []string) error {
	registry, err := newRegistry()
	if err != nil {
		return err
	}
	targets, err := targetClients(registry)
	if err != nil {
		return err
	}

	for _, c := range targets {
		servers, err := c.ListServers()
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n", c.Name(), c.ConfigPath())
		if len(servers) == 0 {
			fmt.Println("  no servers configured")
			continue
		}

		names := make([]string, 0, len(servers))
		for name := range servers {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			fmt.Printf("  %s: %s\n", name, formatCommand(servers[name]))
		}
	}

	return nil
}
