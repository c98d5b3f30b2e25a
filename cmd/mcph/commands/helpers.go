package commands

import (
	"fmt"
	"strings"

	"github.com/mcph/mcph/internal/backup"
	"github.com/mcph/mcph/internal/client"
	"github.com/mcph/mcph/internal/errors"
	"github.com/mcph/mcph/internal/history"
	"github.com/mcph/mcph/internal/mcp"
	"github.com/mcph/mcph/internal/paths"
)

// newRegistry builds the client registry using the loaded configuration
// for backup placement and retention.
func newRegistry() (*client.Registry, error) {
	home, err := paths.ResolveHome()
	if err != nil {
		return nil, errors.NewSystemError(err, "ensure HOME is set")
	}

	var opts []backup.Option
	if loadedConfig != nil {
		if loadedConfig.BackupDir != "" {
			opts = append(opts, backup.WithBackupDir(loadedConfig.BackupDir))
		}
		if loadedConfig.BackupRetention > 0 {
			opts = append(opts, backup.WithRetention(loadedConfig.BackupRetention))
		}
	}

	return client.DetectClients(home, backup.NewManager(opts...)), nil
}

// targetClients resolves which clients a command should act on: the
// --client flag if given, otherwise the configured defaults, otherwise
// every installed client.
func targetClients(registry *client.Registry) ([]client.Client, error) {
	names := clientFlag
	if len(names) == 0 && loadedConfig != nil {
		names = loadedConfig.DefaultClients
	}

	if len(names) == 0 {
		installed := registry.Installed()
		if len(installed) == 0 {
			return nil, errors.NewUserError(
				errors.New("no MCP clients detected"),
				"Run 'mcph clients' to see supported clients, or pass --client explicitly")
		}
		return installed, nil
	}

	out := make([]client.Client, 0, len(names))
	for _, name := range names {
		c, err := registry.ByName(name)
		if err != nil {
			return nil, errors.NewUserError(err, "Run 'mcph clients' to see valid clients")
		}
		out = append(out, c)
	}
	return out, nil
}

// newHistoryManager builds the snapshot store and manager, honoring a
// configured history directory override.
func newHistoryManager() *history.Manager {
	var opts []history.StoreOption
	if loadedConfig != nil && loadedConfig.HistoryDir != "" {
		opts = append(opts, history.WithDir(loadedConfig.HistoryDir))
	}
	return history.NewManager(history.NewStore(opts...))
}

// parseKeyValueSlice parses a slice of KEY=VALUE strings into a map.
// Returns an error if any entry is malformed.
func parseKeyValueSlice(entries []string, flagName string) (map[string]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	result := make(map[string]string, len(entries))
	for _, entry := range entries {
		key, value, found := strings.Cut(entry, "=")
		if !found || key == "" {
			return nil, errors.Newf("invalid %s format %q: expected KEY=VALUE", flagName, entry)
		}
		result[key] = value
	}
	return result, nil
}

// printConfigDiff prints the changes between two configs, indented one
// level. Prints nothing when the configs are identical.
func printConfigDiff(old, updated mcp.ServerConfig) {
	for _, line := range mcp.Diff(old, updated) {
		fmt.Printf("  %s\n", line)
	}
}

// formatCommand renders a config's launch command on one line.
func formatCommand(cfg mcp.ServerConfig) string {
	if len(cfg.Args) == 0 {
		return cfg.Command
	}
	return cfg.Command + " " + strings.Join(cfg.Args, " ")
}
