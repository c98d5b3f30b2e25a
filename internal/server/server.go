// Package server classifies MCP server package specs and derives the
// launch command and dependency checks for each kind.
package server

import (
	"strings"

	"github.com/mcph/mcph/internal/deps"
	"github.com/mcph/mcph/internal/mcp"
)

// Type identifies how an MCP server is distributed and launched.
type Type string

const (
	TypeNPM    Type = "npm"
	TypeBinary Type = "binary"
	TypePython Type = "python"
	TypeDocker Type = "docker"
)

// Spec is a parsed server package specifier.
type Spec struct {
	Type Type

	// Package is the npm package, python package or script path, docker
	// image, or binary URL, depending on Type.
	Package string

	// Version is the npm version or docker tag, when one was given.
	Version string
}

// Detect classifies a raw package specifier:
//
//	docker:image[:tag]       docker image
//	http(s)://...            binary download
//	*.py                     python script
//	everything else          npm package, optionally pkg@version
func Detect(input string) Spec {
	switch {
	case strings.HasPrefix(input, "docker:"):
		rest := strings.TrimPrefix(input, "docker:")
		image, tag, ok := strings.Cut(rest, ":")
		if !ok {
			tag = "latest"
		}
		return Spec{Type: TypeDocker, Package: image, Version: tag}

	case strings.HasPrefix(input, "https://"), strings.HasPrefix(input, "http://"):
		return Spec{Type: TypeBinary, Package: input}

	case strings.HasSuffix(input, ".py"):
		return Spec{Type: TypePython, Package: input}

	default:
		pkg, version := ParseNPMPackage(input)
		return Spec{Type: TypeNPM, Package: pkg, Version: version}
	}
}

// ParseNPMPackage splits an npm specifier into package and version. The
// scope separator in "@scope/pkg" is not a version marker; only an "@"
// after the scope counts.
func ParseNPMPackage(input string) (pkg, version string) {
	search := input
	if strings.HasPrefix(input, "@") {
		search = input[1:]
	}
	at := strings.LastIndex(search, "@")
	if at < 0 {
		return input, ""
	}
	if strings.HasPrefix(input, "@") {
		at++
	}
	return input[:at], input[at+1:]
}

// Command returns the launch configuration for the server.
func (s Spec) Command() mcp.ServerConfig {
	switch s.Type {
	case TypeNPM:
		pkg := s.Package
		if s.Version != "" {
			pkg += "@" + s.Version
		}
		return mcp.ServerConfig{Command: "npx", Args: []string{"--yes", pkg}}

	case TypeDocker:
		image := s.Package
		if s.Version != "" {
			image += ":" + s.Version
		}
		return mcp.ServerConfig{Command: "docker", Args: []string{"run", "--rm", "-i", image}}

	case TypePython:
		if strings.HasSuffix(s.Package, ".py") {
			return mcp.ServerConfig{Command: "python3", Args: []string{s.Package}}
		}
		return mcp.ServerConfig{Command: "python3", Args: []string{"-m", s.Package}}

	default:
		return mcp.ServerConfig{Command: s.Package}
	}
}

// Checker returns the dependency checker this server type needs, or nil
// for binaries, which bring their own runtime.
func (s Spec) Checker() deps.Checker {
	switch s.Type {
	case TypeNPM:
		return deps.NewNodeChecker("")
	case TypePython:
		return deps.NewPythonChecker("")
	case TypeDocker:
		return deps.NewDockerChecker("", false)
	}
	return nil
}

// String renders the spec back to a canonical specifier.
func (s Spec) String() string {
	switch s.Type {
	case TypeDocker:
		if s.Version != "" {
			return "docker:" + s.Package + ":" + s.Version
		}
		return "docker:" + s.Package
	case TypeNPM:
		if s.Version != "" {
			return s.Package + "@" + s.Version
		}
	}
	return s.Package
}
