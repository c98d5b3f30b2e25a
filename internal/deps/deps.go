package deps

import (
	"context"
	"fmt"
	"runtime"
)

// Status classifies the result of a dependency check.
type Status string

const (
	StatusInstalled       Status = "installed"
	StatusMissing         Status = "missing"
	StatusVersionMismatch Status = "version-mismatch"
	// StatusNeedsConfig means the dependency is present but not usable yet,
	// e.g. the docker daemon is not running.
	StatusNeedsConfig Status = "configuration-required"
)

// Check is the outcome of probing one dependency.
type Check struct {
	// Name is the human-readable dependency name, e.g. "Node.js".
	Name string `json:"name" yaml:"name"`

	Status Status `json:"status" yaml:"status"`

	// Version is the installed version when one could be determined.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Required is the unmet requirement when Status is version-mismatch.
	Required string `json:"required,omitempty" yaml:"required,omitempty"`

	// Detail elaborates on StatusNeedsConfig.
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`

	// Instructions lists install methods for the current platform. Empty
	// when the dependency is healthy.
	Instructions []InstallMethod `json:"instructions,omitempty" yaml:"instructions,omitempty"`
}

// Summary renders the check as a one-line status string.
func (c Check) Summary() string {
	switch c.Status {
	case StatusInstalled:
		if c.Version != "" {
			return fmt.Sprintf("Installed (%s)", c.Version)
		}
		return "Installed"
	case StatusMissing:
		return "Not installed"
	case StatusVersionMismatch:
		return fmt.Sprintf("Version mismatch (installed: %s, required: %s)", c.Version, c.Required)
	case StatusNeedsConfig:
		return fmt.Sprintf("Configuration required: %s", c.Detail)
	}
	return string(c.Status)
}

// Healthy reports whether the dependency is usable as-is.
func (c Check) Healthy() bool {
	return c.Status == StatusInstalled
}

// InstallMethod is one way to install a dependency on some platform.
type InstallMethod struct {
	Name        string `json:"name" yaml:"name"`
	Command     string `json:"command" yaml:"command"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Checker probes one external dependency.
type Checker interface {
	Check(ctx context.Context) Check
}

// installMatrix maps GOOS values to install methods.
type installMatrix map[string][]InstallMethod

// forPlatform returns the methods for the current OS, or nil for platforms
// the matrix does not cover.
func (m installMatrix) forPlatform() []InstallMethod {
	return m[runtime.GOOS]
}

var nodeInstalls = installMatrix{
	"windows": {
		{Name: "winget", Command: "winget install OpenJS.NodeJS", Description: "Windows Package Manager"},
		{Name: "chocolatey", Command: "choco install nodejs", Description: "Chocolatey package manager"},
		{Name: "download", Command: "https://nodejs.org/en/download/", Description: "Direct download from nodejs.org"},
	},
	"darwin": {
		{Name: "homebrew", Command: "brew install node", Description: "Homebrew package manager"},
		{Name: "download", Command: "https://nodejs.org/en/download/", Description: "Direct download from nodejs.org"},
	},
	"linux": {
		{Name: "apt", Command: "sudo apt update && sudo apt install nodejs npm", Description: "Debian/Ubuntu"},
		{Name: "dnf", Command: "sudo dnf install nodejs npm", Description: "Fedora/RHEL"},
		{Name: "nvm", Command: "curl -o- https://raw.githubusercontent.com/nvm-sh/nvm/v0.39.0/install.sh | bash", Description: "Node Version Manager"},
	},
}

var pythonInstalls = installMatrix{
	"windows": {
		{Name: "winget", Command: "winget install Python.Python.3.12", Description: "Windows Package Manager"},
		{Name: "chocolatey", Command: "choco install python", Description: "Chocolatey package manager"},
	},
	"darwin": {
		{Name: "homebrew", Command: "brew install python@3.12", Description: "Homebrew package manager"},
		{Name: "pyenv", Command: "pyenv install 3.12", Description: "Python version manager"},
	},
	"linux": {
		{Name: "apt", Command: "sudo apt update && sudo apt install python3 python3-pip", Description: "Debian/Ubuntu"},
		{Name: "dnf", Command: "sudo dnf install python3 python3-pip", Description: "Fedora/RHEL"},
	},
}

var dockerInstalls = installMatrix{
	"windows": {
		{Name: "docker-desktop", Command: "https://www.docker.com/products/docker-desktop/", Description: "Docker Desktop for Windows"},
		{Name: "winget", Command: "winget install Docker.DockerDesktop", Description: "Windows Package Manager"},
	},
	"darwin": {
		{Name: "docker-desktop", Command: "https://www.docker.com/products/docker-desktop/", Description: "Docker Desktop for Mac"},
		{Name: "homebrew", Command: "brew install --cask docker", Description: "Homebrew"},
	},
	"linux": {
		{Name: "docker-ce", Command: "https://docs.docker.com/engine/install/", Description: "Docker Community Edition"},
		{Name: "snap", Command: "sudo snap install docker", Description: "Snap package"},
	},
}

var gitInstalls = installMatrix{
	"windows": {
		{Name: "winget", Command: "winget install Git.Git", Description: "Windows Package Manager"},
		{Name: "download", Command: "https://git-scm.com/download/win", Description: "Direct download from git-scm.com"},
	},
	"darwin": {
		{Name: "xcode", Command: "xcode-select --install", Description: "Xcode Command Line Tools"},
		{Name: "homebrew", Command: "brew install git", Description: "Homebrew package manager"},
	},
	"linux": {
		{Name: "apt", Command: "sudo apt update && sudo apt install git", Description: "Debian/Ubuntu"},
		{Name: "dnf", Command: "sudo dnf install git", Description: "Fedora/RHEL"},
	},
}
