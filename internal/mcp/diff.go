package mcp

import (
	"fmt"
	"sort"
	"strings"
)

// Diff computes a human-readable change list between two server configs.
// Entries are emitted in a fixed order so output is reproducible: command
// first, then arguments, then environment changes grouped as modified,
// added, removed with keys sorted lexicographically within each group.
// Identical configs produce an empty (nil) result.
//
// Diff is a pure function: it has no side effects and consults no stored
// history.
func Diff(old, new ServerConfig) []string {
	var changes []string

	if old.Command != new.Command {
		changes = append(changes, fmt.Sprintf("Command: %s → %s", old.Command, new.Command))
	}

	if !argsEqual(old.Args, new.Args) {
		changes = append(changes, fmt.Sprintf("Arguments: [%s] → [%s]",
			strings.Join(old.Args, " "), strings.Join(new.Args, " ")))
	}

	var modified, added, removed []string
	for key := range old.Env {
		newVal, ok := new.Env[key]
		switch {
		case !ok:
			removed = append(removed, key)
		case newVal != old.Env[key]:
			modified = append(modified, key)
		}
	}
	for key := range new.Env {
		if _, ok := old.Env[key]; !ok {
			added = append(added, key)
		}
	}

	sort.Strings(modified)
	sort.Strings(added)
	sort.Strings(removed)

	for _, key := range modified {
		changes = append(changes, fmt.Sprintf("Modified env var %s: %s → %s",
			key, old.Env[key], new.Env[key]))
	}
	for _, key := range added {
		changes = append(changes, fmt.Sprintf("Added env var: %s=%s", key, new.Env[key]))
	}
	for _, key := range removed {
		changes = append(changes, fmt.Sprintf("Removed env var: %s", key))
	}

	return changes
}

func argsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
