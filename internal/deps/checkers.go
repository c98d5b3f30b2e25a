package deps

import (
	"context"
	"strings"
)

// statusAgainstMinimum compares an installed version string against an
// optional minimum. Unparseable versions count as installed; probing is
// best-effort and a weird version string should not fail the whole check.
func statusAgainstMinimum(installed, minVersion string) (Status, string) {
	if minVersion == "" {
		return StatusInstalled, ""
	}
	ok, err := Satisfies(installed, ">="+minVersion)
	if err != nil || ok {
		return StatusInstalled, ""
	}
	return StatusVersionMismatch, minVersion
}

// NodeChecker probes the Node.js runtime and the npx launcher.
type NodeChecker struct {
	MinVersion string
	r          runner
}

func NewNodeChecker(minVersion string) *NodeChecker {
	return &NodeChecker{MinVersion: minVersion, r: execRunner{}}
}

func (c *NodeChecker) Check(ctx context.Context) Check {
	check := Check{Name: "Node.js"}

	out, ok := commandVersion(ctx, c.r, "node", "--version")
	if !ok {
		check.Status = StatusMissing
		check.Instructions = nodeInstalls.forPlatform()
		return check
	}

	// node prints "v22.1.0"
	check.Version = strings.TrimPrefix(out, "v")
	check.Status, check.Required = statusAgainstMinimum(check.Version, c.MinVersion)
	if check.Status != StatusInstalled {
		check.Instructions = nodeInstalls.forPlatform()
		return check
	}

	if !commandAvailable(ctx, c.r, "npx", "--version") {
		check.Status = StatusNeedsConfig
		check.Detail = "node is installed but npx is not on PATH"
		check.Instructions = nodeInstalls.forPlatform()
	}
	return check
}

// PythonChecker probes for a Python 3 interpreter, trying the common
// executable names in order.
type PythonChecker struct {
	MinVersion string
	r          runner
}

func NewPythonChecker(minVersion string) *PythonChecker {
	return &PythonChecker{MinVersion: minVersion, r: execRunner{}}
}

func (c *PythonChecker) Check(ctx context.Context) Check {
	check := Check{Name: "Python"}

	for _, cmd := range []string{"python3", "python", "py"} {
		out, ok := commandVersion(ctx, c.r, cmd, "--version")
		if !ok {
			continue
		}
		// "Python 3.12.4"
		check.Version = extractVersion(out)
		check.Status, check.Required = statusAgainstMinimum(check.Version, c.MinVersion)
		if check.Status != StatusInstalled {
			check.Instructions = pythonInstalls.forPlatform()
		}
		return check
	}

	check.Status = StatusMissing
	check.Instructions = pythonInstalls.forPlatform()
	return check
}

// DockerChecker probes the docker CLI, the daemon, and optionally compose.
type DockerChecker struct {
	MinVersion     string
	RequireCompose bool
	r              runner
}

func NewDockerChecker(minVersion string, requireCompose bool) *DockerChecker {
	return &DockerChecker{MinVersion: minVersion, RequireCompose: requireCompose, r: execRunner{}}
}

func (c *DockerChecker) Check(ctx context.Context) Check {
	check := Check{Name: "Docker"}

	out, ok := commandVersion(ctx, c.r, "docker", "--version")
	if !ok {
		check.Status = StatusMissing
		check.Instructions = dockerInstalls.forPlatform()
		return check
	}

	// "Docker version 27.1.1, build 123abc"
	check.Version = extractVersion(out)
	check.Status, check.Required = statusAgainstMinimum(check.Version, c.MinVersion)
	if check.Status != StatusInstalled {
		check.Instructions = dockerInstalls.forPlatform()
		return check
	}

	if !commandAvailable(ctx, c.r, "docker", "info") {
		check.Status = StatusNeedsConfig
		check.Detail = "docker is installed but the daemon is not running"
		return check
	}

	if c.RequireCompose {
		if !commandAvailable(ctx, c.r, "docker", "compose", "version") &&
			!commandAvailable(ctx, c.r, "docker-compose", "--version") {
			check.Status = StatusNeedsConfig
			check.Detail = "docker compose is not available"
			check.Instructions = dockerInstalls.forPlatform()
		}
	}
	return check
}

// GitChecker probes the git CLI.
type GitChecker struct {
	r runner
}

func NewGitChecker() *GitChecker {
	return &GitChecker{r: execRunner{}}
}

func (c *GitChecker) Check(ctx context.Context) Check {
	check := Check{Name: "Git"}

	out, ok := commandVersion(ctx, c.r, "git", "--version")
	if !ok {
		check.Status = StatusMissing
		check.Instructions = gitInstalls.forPlatform()
		return check
	}

	// "git version 2.45.2"
	check.Version = extractVersion(out)
	check.Status = StatusInstalled
	return check
}
