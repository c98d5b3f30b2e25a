package deps

import (
	"context"
	"strings"
	"testing"

	"github.com/mcph/mcph/internal/errors"
)

// fakeRunner maps "command args..." to canned output. Missing entries
// behave like a command that is not installed.
type fakeRunner map[string]string

func (f fakeRunner) run(_ context.Context, name string, args ...string) (string, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	out, ok := f[key]
	if !ok {
		return "", errors.Newf("command not found: %s", key)
	}
	return out, nil
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"Python 3.12.4", "3.12.4"},
		{"Docker version 27.1.1, build 123abc", "27.1.1"},
		{"git version 2.45.2", "2.45.2"},
		{"v22.1.0", "22.1.0"},
		{"no version here", ""},
	}
	for _, tt := range tests {
		if got := extractVersion(tt.output); got != tt.want {
			t.Errorf("extractVersion(%q) = %q, want %q", tt.output, got, tt.want)
		}
	}
}

func TestNodeChecker(t *testing.T) {
	ctx := context.Background()

	t.Run("installed with npx", func(t *testing.T) {
		c := NewNodeChecker("")
		c.r = fakeRunner{
			"node --version": "v22.1.0",
			"npx --version":  "10.5.0",
		}
		check := c.Check(ctx)
		if check.Status != StatusInstalled || check.Version != "22.1.0" {
			t.Errorf("check = %+v", check)
		}
		if len(check.Instructions) != 0 {
			t.Error("healthy check should carry no install instructions")
		}
	})

	t.Run("missing", func(t *testing.T) {
		c := NewNodeChecker("")
		c.r = fakeRunner{}
		check := c.Check(ctx)
		if check.Status != StatusMissing {
			t.Errorf("status = %s, want missing", check.Status)
		}
		if len(check.Instructions) == 0 {
			t.Error("missing dependency should carry install instructions")
		}
	})

	t.Run("version mismatch", func(t *testing.T) {
		c := NewNodeChecker("18.0.0")
		c.r = fakeRunner{"node --version": "v16.14.0"}
		check := c.Check(ctx)
		if check.Status != StatusVersionMismatch {
			t.Fatalf("status = %s, want version-mismatch", check.Status)
		}
		if check.Version != "16.14.0" || check.Required != "18.0.0" {
			t.Errorf("check = %+v", check)
		}
	})

	t.Run("npx missing", func(t *testing.T) {
		c := NewNodeChecker("")
		c.r = fakeRunner{"node --version": "v22.1.0"}
		check := c.Check(ctx)
		if check.Status != StatusNeedsConfig {
			t.Errorf("status = %s, want configuration-required", check.Status)
		}
	})
}

func TestPythonChecker(t *testing.T) {
	ctx := context.Background()

	t.Run("python3 preferred", func(t *testing.T) {
		c := NewPythonChecker("")
		c.r = fakeRunner{
			"python3 --version": "Python 3.12.4",
			"python --version":  "Python 2.7.18",
		}
		check := c.Check(ctx)
		if check.Status != StatusInstalled || check.Version != "3.12.4" {
			t.Errorf("check = %+v", check)
		}
	})

	t.Run("falls back to python", func(t *testing.T) {
		c := NewPythonChecker("")
		c.r = fakeRunner{"python --version": "Python 3.11.0"}
		check := c.Check(ctx)
		if check.Status != StatusInstalled || check.Version != "3.11.0" {
			t.Errorf("check = %+v", check)
		}
	})

	t.Run("missing", func(t *testing.T) {
		c := NewPythonChecker("")
		c.r = fakeRunner{}
		check := c.Check(ctx)
		if check.Status != StatusMissing {
			t.Errorf("status = %s", check.Status)
		}
	})
}

func TestDockerChecker(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy", func(t *testing.T) {
		c := NewDockerChecker("", false)
		c.r = fakeRunner{
			"docker --version": "Docker version 27.1.1, build 123abc",
			"docker info":      "ok",
		}
		check := c.Check(ctx)
		if check.Status != StatusInstalled || check.Version != "27.1.1" {
			t.Errorf("check = %+v", check)
		}
	})

	t.Run("daemon not running", func(t *testing.T) {
		c := NewDockerChecker("", false)
		c.r = fakeRunner{"docker --version": "Docker version 27.1.1, build 123abc"}
		check := c.Check(ctx)
		if check.Status != StatusNeedsConfig {
			t.Errorf("status = %s, want configuration-required", check.Status)
		}
	})

	t.Run("compose required and missing", func(t *testing.T) {
		c := NewDockerChecker("", true)
		c.r = fakeRunner{
			"docker --version": "Docker version 27.1.1, build 123abc",
			"docker info":      "ok",
		}
		check := c.Check(ctx)
		if check.Status != StatusNeedsConfig {
			t.Errorf("status = %s, want configuration-required", check.Status)
		}
	})

	t.Run("legacy compose accepted", func(t *testing.T) {
		c := NewDockerChecker("", true)
		c.r = fakeRunner{
			"docker --version":         "Docker version 27.1.1, build 123abc",
			"docker info":              "ok",
			"docker-compose --version": "docker-compose version 1.29.2, build 123",
		}
		check := c.Check(ctx)
		if check.Status != StatusInstalled {
			t.Errorf("status = %s, want installed", check.Status)
		}
	})
}

func TestGitChecker(t *testing.T) {
	ctx := context.Background()

	c := NewGitChecker()
	c.r = fakeRunner{"git --version": "git version 2.45.2"}
	check := c.Check(ctx)
	if check.Status != StatusInstalled || check.Version != "2.45.2" {
		t.Errorf("check = %+v", check)
	}

	c.r = fakeRunner{}
	check = c.Check(ctx)
	if check.Status != StatusMissing {
		t.Errorf("status = %s, want missing", check.Status)
	}
}

func TestCheckSummary(t *testing.T) {
	tests := []struct {
		check Check
		want  string
	}{
		{Check{Status: StatusInstalled, Version: "1.2.3"}, "Installed (1.2.3)"},
		{Check{Status: StatusInstalled}, "Installed"},
		{Check{Status: StatusMissing}, "Not installed"},
		{Check{Status: StatusVersionMismatch, Version: "1.0.0", Required: "2.0.0"},
			"Version mismatch (installed: 1.0.0, required: 2.0.0)"},
		{Check{Status: StatusNeedsConfig, Detail: "daemon down"},
			"Configuration required: daemon down"},
	}
	for _, tt := range tests {
		if got := tt.check.Summary(); got != tt.want {
			t.Errorf("Summary() = %q, want %q", got, tt.want)
		}
	}
}
