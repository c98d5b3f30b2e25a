package mcp

import "maps"

// ServerConfig describes how an MCP server is launched: the executable, its
// arguments, and the environment variables set for the process. It is a
// value type compared structurally; treat instances as immutable once
// constructed and use Clone when a copy must not share state.
type ServerConfig struct {
	// Command is the executable or launcher (e.g., "npx", "python", "docker").
	Command string `json:"command" yaml:"command"`

	// Args are command-line arguments passed to Command, in order.
	Args []string `json:"args" yaml:"args"`

	// Env contains environment variables set when running the server.
	Env map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
}

// Equal reports whether two configs are structurally identical.
func (c ServerConfig) Equal(other ServerConfig) bool {
	if c.Command != other.Command {
		return false
	}
	if len(c.Args) != len(other.Args) {
		return false
	}
	for i := range c.Args {
		if c.Args[i] != other.Args[i] {
			return false
		}
	}
	return maps.Equal(c.Env, other.Env)
}

// Clone returns a deep copy of the config.
func (c ServerConfig) Clone() ServerConfig {
	out := ServerConfig{Command: c.Command}
	if c.Args != nil {
		out.Args = make([]string, len(c.Args))
		copy(out.Args, c.Args)
	}
	if c.Env != nil {
		out.Env = maps.Clone(c.Env)
	}
	return out
}
