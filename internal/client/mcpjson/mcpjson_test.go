package mcpjson

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mcph/mcph/internal/backup"
	"github.com/mcph/mcph/internal/mcp"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	backups := backup.NewManager(backup.WithBackupDir(t.TempDir()))
	return NewStore("test-client", path, "mcpServers", WithBackups(backups)), path
}

func TestStore_MissingFileIsEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	servers, err := store.ListServers()
	if err != nil {
		t.Fatalf("ListServers() error: %v", err)
	}
	if len(servers) != 0 {
		t.Errorf("expected empty map, got %v", servers)
	}
}

func TestStore_SetAndList(t *testing.T) {
	store, _ := newTestStore(t)

	cfg := mcp.ServerConfig{
		Command: "npx",
		Args:    []string{"-y", "@modelcontextprotocol/server-github"},
		Env:     map[string]string{"GITHUB_TOKEN": "abc"},
	}
	if err := store.SetServer("github", cfg); err != nil {
		t.Fatalf("SetServer() error: %v", err)
	}

	servers, err := store.ListServers()
	if err != nil {
		t.Fatal(err)
	}
	got, ok := servers["github"]
	if !ok {
		t.Fatalf("server missing from %v", servers)
	}
	if !got.Equal(cfg) {
		t.Errorf("round-tripped config = %+v, want %+v", got, cfg)
	}
}

func TestStore_SetIsUpsert(t *testing.T) {
	store, _ := newTestStore(t)

	first := mcp.ServerConfig{Command: "node", Args: []string{"v1.js"}}
	second := mcp.ServerConfig{Command: "node", Args: []string{"v2.js"}}

	if err := store.SetServer("srv", first); err != nil {
		t.Fatal(err)
	}
	if err := store.SetServer("srv", second); err != nil {
		t.Fatal(err)
	}

	servers, _ := store.ListServers()
	if len(servers) != 1 {
		t.Fatalf("expected 1 server, got %d", len(servers))
	}
	if servers["srv"].Args[0] != "v2.js" {
		t.Errorf("upsert did not replace entry: %+v", servers["srv"])
	}
}

func TestStore_PreservesUnknownFields(t *testing.T) {
	store, path := newTestStore(t)

	initial := `{
  "theme": "dark",
  "projects": {"/home/dev/proj": {"mcpServers": {"local": {"command": "node"}}}},
  "mcpServers": {"existing": {"command": "npx", "args": ["-y", "pkg"]}}
}`
	if err := os.WriteFile(path, []byte(initial), 0600); err != nil {
		t.Fatal(err)
	}

	if err := store.SetServer("added", mcp.ServerConfig{Command: "deno"}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}

	if doc["theme"] != "dark" {
		t.Error("top-level sibling field lost")
	}
	projects, ok := doc["projects"].(map[string]any)
	if !ok {
		t.Fatal("projects field lost")
	}
	proj := projects["/home/dev/proj"].(map[string]any)
	nested := proj["mcpServers"].(map[string]any)
	if _, ok := nested["local"]; !ok {
		t.Error("project-scoped server map was touched")
	}

	servers := doc["mcpServers"].(map[string]any)
	if _, ok := servers["existing"]; !ok {
		t.Error("sibling server entry lost")
	}
	if _, ok := servers["added"]; !ok {
		t.Error("new server entry missing")
	}
}

func TestStore_RemoveServer(t *testing.T) {
	store, _ := newTestStore(t)

	if err := store.SetServer("srv", mcp.ServerConfig{Command: "node"}); err != nil {
		t.Fatal(err)
	}
	if err := store.RemoveServer("srv"); err != nil {
		t.Fatalf("RemoveServer() error: %v", err)
	}

	servers, _ := store.ListServers()
	if len(servers) != 0 {
		t.Errorf("expected empty map after removal, got %v", servers)
	}

	// Removing again is a no-op.
	if err := store.RemoveServer("srv"); err != nil {
		t.Errorf("removing absent server should not error: %v", err)
	}
}

func TestStore_BackupBeforeOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	backups := backup.NewManager(backup.WithBackupDir(t.TempDir()))
	store := NewStore("test-client", path, "mcpServers", WithBackups(backups))

	if err := store.SetServer("a", mcp.ServerConfig{Command: "node"}); err != nil {
		t.Fatal(err)
	}
	// First write: no prior file, no backup expected.
	got, _ := backups.List("test-client")
	if len(got) != 0 {
		t.Errorf("expected no backup on first write, got %d", len(got))
	}

	if err := store.SetServer("b", mcp.ServerConfig{Command: "deno"}); err != nil {
		t.Fatal(err)
	}
	got, _ = backups.List("test-client")
	if len(got) != 1 {
		t.Errorf("expected 1 backup after overwrite, got %d", len(got))
	}
}

func TestStore_MalformedFile(t *testing.T) {
	store, path := newTestStore(t)
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := store.ListServers(); err == nil {
		t.Error("expected error for malformed config file")
	}
	if err := store.SetServer("x", mcp.ServerConfig{Command: "node"}); err == nil {
		t.Error("SetServer should refuse to clobber a malformed file")
	}
}
