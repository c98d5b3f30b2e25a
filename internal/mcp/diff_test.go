package mcp

import (
	"strings"
	"testing"
)

func TestDiff_NoChanges(t *testing.T) {
	cfg := ServerConfig{
		Command: "node",
		Args:    []string{"server.js"},
		Env:     map[string]string{"PORT": "3000"},
	}

	if got := Diff(cfg, cfg); len(got) != 0 {
		t.Errorf("Diff(x, x) = %v, want empty", got)
	}
}

func TestDiff_Command(t *testing.T) {
	old := ServerConfig{Command: "node"}
	new := ServerConfig{Command: "deno"}

	got := Diff(old, new)
	if len(got) != 1 {
		t.Fatalf("expected 1 change, got %v", got)
	}
	if got[0] != "Command: node → deno" {
		t.Errorf("unexpected entry: %q", got[0])
	}
}

func TestDiff_Arguments(t *testing.T) {
	old := ServerConfig{Command: "node", Args: []string{"server.js"}}
	new := ServerConfig{Command: "node", Args: []string{"server.js", "--port=3000"}}

	got := Diff(old, new)
	if len(got) != 1 {
		t.Fatalf("expected 1 change, got %v", got)
	}
	if !strings.HasPrefix(got[0], "Arguments: ") {
		t.Errorf("unexpected entry: %q", got[0])
	}
	if !strings.Contains(got[0], "--port=3000") {
		t.Errorf("entry should show new args: %q", got[0])
	}
}

func TestDiff_EnvCategories(t *testing.T) {
	old := ServerConfig{
		Command: "node",
		Env:     map[string]string{"PORT": "3000", "DEBUG": "false"},
	}
	new := ServerConfig{
		Command: "node",
		Env:     map[string]string{"PORT": "4000", "PRODUCTION": "true"},
	}

	got := Diff(old, new)
	want := []string{
		"Modified env var PORT: 3000 → 4000",
		"Added env var: PRODUCTION=true",
		"Removed env var: DEBUG",
	}

	if len(got) != len(want) {
		t.Fatalf("Diff() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDiff_Ordering(t *testing.T) {
	old := ServerConfig{
		Command: "node",
		Args:    []string{"a.js"},
		Env:     map[string]string{"B": "1", "A": "1", "Z": "old"},
	}
	new := ServerConfig{
		Command: "deno",
		Args:    []string{"b.js"},
		Env:     map[string]string{"Z": "new", "C": "1", "D": "1"},
	}

	got := Diff(old, new)
	want := []string{
		"Command: node → deno",
		"Arguments: [a.js] → [b.js]",
		"Modified env var Z: old → new",
		"Added env var: C=1",
		"Added env var: D=1",
		"Removed env var: A",
		"Removed env var: B",
	}

	if len(got) != len(want) {
		t.Fatalf("Diff() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDiff_Deterministic(t *testing.T) {
	old := ServerConfig{Env: map[string]string{"A": "1", "B": "2", "C": "3"}}
	new := ServerConfig{Env: map[string]string{"D": "4", "E": "5", "F": "6"}}

	first := Diff(old, new)
	for n := 0; n < 20; n++ {
		again := Diff(old, new)
		for i := range first {
			if first[i] != again[i] {
				t.Fatalf("Diff output not deterministic: %v vs %v", first, again)
			}
		}
	}
}
