package deps

import (
	"context"
	"os/exec"
	"strings"
	"time"
	"unicode"
)

// probeTimeout caps how long a single version probe may run. Probed tools
// answer --version in milliseconds; anything slower is effectively broken.
const probeTimeout = 5 * time.Second

// runner executes probe commands. The default shells out; tests substitute
// canned output.
type runner interface {
	run(ctx context.Context, name string, args ...string) (string, error)
}

type execRunner struct{}

func (execRunner) run(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// commandVersion runs a command and returns its trimmed output, or ok=false
// when the command is missing or fails.
func commandVersion(ctx context.Context, r runner, name string, args ...string) (string, bool) {
	out, err := r.run(ctx, name, args...)
	if err != nil {
		return "", false
	}
	return out, true
}

// commandAvailable reports whether running the command succeeds.
func commandAvailable(ctx context.Context, r runner, name string, args ...string) bool {
	_, err := r.run(ctx, name, args...)
	return err == nil
}

// extractVersion pulls the first dotted version number out of free-form
// tool output like "Docker version 27.1.1, build 123" or "Python 3.12.4".
func extractVersion(output string) string {
	for _, field := range strings.Fields(output) {
		if !strings.Contains(field, ".") {
			continue
		}
		cleaned := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsDigit(r) && r != '.'
		})
		if cleaned == "" || !unicode.IsDigit(rune(cleaned[0])) {
			continue
		}
		return cleaned
	}
	return ""
}
