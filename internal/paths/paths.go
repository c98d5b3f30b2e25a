package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// Client identifiers for supported MCP clients.
const (
	ClientClaudeDesktop = "claude-desktop"
	ClientClaudeCode    = "claude-code"
	ClientCursor        = "cursor"
	ClientVSCode        = "vscode"
	ClientWindsurf      = "windsurf"
	ClientCodex         = "codex"
)

// AppName is used for mcph's own data directories.
const AppName = "mcph"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrUnknownClient indicates the client name is not recognized.
	ErrUnknownClient = errors.New("unknown client")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// clientConfigResolvers maps client names to functions computing their MCP
// config file path from a home directory. Resolution is a pure function of
// the injected home so tests never touch real user state.
var clientConfigResolvers = map[string]func(home string) string{
	ClientClaudeDesktop: claudeDesktopConfigPath,
	ClientClaudeCode: func(home string) string {
		return filepath.Join(home, ".claude.json")
	},
	ClientCursor: func(home string) string {
		return filepath.Join(home, ".cursor", "mcp.json")
	},
	ClientVSCode: func(home string) string {
		return filepath.Join(home, ".vscode", "mcp.json")
	},
	ClientWindsurf: func(home string) string {
		return filepath.Join(home, ".codeium", "windsurf", "mcp_config.json")
	},
	ClientCodex: func(home string) string {
		return filepath.Join(home, ".codex", "config.toml")
	},
}

// claudeDesktopConfigPath follows Claude Desktop's platform conventions:
// macOS keeps it under Library/Application Support, Windows under the
// roaming AppData tree, everything else under ~/.config.
func claudeDesktopConfigPath(home string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Claude",
			"claude_desktop_config.json")
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "Claude",
			"claude_desktop_config.json")
	default:
		return filepath.Join(home, ".config", "Claude", "claude_desktop_config.json")
	}
}

// Clients returns all supported client identifiers in deterministic order.
func Clients() []string {
	return []string{
		ClientClaudeDesktop,
		ClientClaudeCode,
		ClientCursor,
		ClientVSCode,
		ClientWindsurf,
		ClientCodex,
	}
}

// ValidClient returns true if the client name is recognized.
func ValidClient(client string) bool {
	_, ok := clientConfigResolvers[client]
	return ok
}

// ClientConfigPath returns the MCP config file path for a client, rooted at
// the given home directory. Returns an empty string for unknown clients or
// an empty home.
func ClientConfigPath(client, home string) string {
	if home == "" {
		return ""
	}
	resolve, ok := clientConfigResolvers[client]
	if !ok {
		return ""
	}
	return resolve(home)
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// Home returns the user's home directory, or an empty string on error.
// Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
// On Linux: ~/.local/share
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func DataHome() string {
	return xdg.DataHome
}

// HistoryDir returns the directory holding the configuration history file.
// Returns: <DataHome>/mcph/config-history/
func HistoryDir() string {
	return filepath.Join(DataHome(), AppName, "config-history")
}

// BackupDir returns the root directory for client config file backups.
// Returns: <DataHome>/mcph/backups/
func BackupDir() string {
	return filepath.Join(DataHome(), AppName, "backups")
}

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}
