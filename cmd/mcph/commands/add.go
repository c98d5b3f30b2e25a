package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcph/mcph/internal/logging"
	"github.com/mcph/mcph/internal/mcp"
)

// Package-level flag variables for the add command.
var addEnv []string

func init() {
	addCmd.Flags().StringSliceVar(&addEnv, "env", nil,
		"environment variables in KEY=VALUE format (repeatable)")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <name> <command> [args...]",
	Short: "Add or update an MCP server configuration",
	Long: `Add an MCP server configuration to the targeted client(s).

The server is registered under <name> with the given launch command.
Each client's config file is backed up before it is overwritten, and the
change is recorded in history so it can be rolled back later.

Environment variables can be set with --env (repeatable):
  mcph add github npx --env GITHUB_TOKEN=ghp_xxx -- -y @modelcontextprotocol/server-github

Examples:
  mcph add github npx -- -y @modelcontextprotocol/server-github
  mcph add db-tools ./db-mcp --env DB_HOST=localhost --env DB_PORT=5432
  mcph add local-fs /usr/local/bin/fs-mcp --client cursor`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAdd,
}

// runAdd implements the add command logic.
func runAdd(cmd *cobra.Command, args []string) error {
	name := args[0]
	command := args[1]
	cmdArgs := args[2:]

	envMap, err := parseKeyValueSlice(addEnv, "--env")
	if err != nil {
		return err
	}

	cfg := mcp.ServerConfig{
		Command: command,
		Args:    cmdArgs,
		Env:     envMap,
	}

	registry, err := newRegistry()
	if err != nil {
		return err
	}
	targets, err := targetClients(registry)
	if err != nil {
		return err
	}

	manager := newHistoryManager()
	log := logging.FromContext(cmd.Context())

	for _, c := range targets {
		fmt.Printf("Adding '%s' to %s... ", name, c.Name())

		snap, err := manager.ApplyConfig(c, name, cfg)
		if err != nil {
			fmt.Println("failed")
			return err
		}
		fmt.Println("done")

		if snap.PreviousConfig != nil {
			printConfigDiff(*snap.PreviousConfig, snap.Config)
		}
		log.Debug("applied server config",
			"client", c.Name(), "server", name, "path", c.ConfigPath())
	}

	serverWord := "client"
	if len(targets) != 1 {
		serverWord = "clients"
	}
	fmt.Printf("MCP server '%s' configured on %d %s\n", name, len(targets), serverWord)

	return nil
}
