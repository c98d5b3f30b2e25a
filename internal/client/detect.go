package client

import (
	"github.com/mcph/mcph/internal/backup"
	"github.com/mcph/mcph/internal/client/claudecode"
	"github.com/mcph/mcph/internal/client/claudedesktop"
	"github.com/mcph/mcph/internal/client/codex"
	"github.com/mcph/mcph/internal/client/cursor"
	"github.com/mcph/mcph/internal/client/vscode"
	"github.com/mcph/mcph/internal/client/windsurf"
)

// DetectClients builds a registry of all supported client adapters rooted
// at the given home directory. The backup manager is shared so retention
// applies across all clients; pass nil to use defaults.
func DetectClients(home string, backups *backup.Manager) *Registry {
	if backups == nil {
		backups = backup.NewManager()
	}

	r := NewRegistry()
	r.Register(claudedesktop.New(home, claudedesktop.WithBackups(backups)))
	r.Register(claudecode.New(home, claudecode.WithBackups(backups)))
	r.Register(cursor.New(home, cursor.WithBackups(backups)))
	r.Register(vscode.New(home, vscode.WithBackups(backups)))
	r.Register(windsurf.New(home, windsurf.WithBackups(backups)))
	r.Register(codex.New(home, codex.WithBackups(backups)))
	return r
}
