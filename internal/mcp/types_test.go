package mcp

import "testing"

func TestServerConfig_Equal(t *testing.T) {
	base := ServerConfig{
		Command: "npx",
		Args:    []string{"-y", "@modelcontextprotocol/server-github"},
		Env:     map[string]string{"GITHUB_TOKEN": "abc"},
	}

	tests := []struct {
		name  string
		other ServerConfig
		want  bool
	}{
		{
			name:  "identical",
			other: base.Clone(),
			want:  true,
		},
		{
			name: "different command",
			other: ServerConfig{
				Command: "node",
				Args:    []string{"-y", "@modelcontextprotocol/server-github"},
				Env:     map[string]string{"GITHUB_TOKEN": "abc"},
			},
			want: false,
		},
		{
			name: "different arg order",
			other: ServerConfig{
				Command: "npx",
				Args:    []string{"@modelcontextprotocol/server-github", "-y"},
				Env:     map[string]string{"GITHUB_TOKEN": "abc"},
			},
			want: false,
		},
		{
			name: "different env value",
			other: ServerConfig{
				Command: "npx",
				Args:    []string{"-y", "@modelcontextprotocol/server-github"},
				Env:     map[string]string{"GITHUB_TOKEN": "xyz"},
			},
			want: false,
		},
		{
			name: "missing env key",
			other: ServerConfig{
				Command: "npx",
				Args:    []string{"-y", "@modelcontextprotocol/server-github"},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestServerConfig_Equal_EmptyVsNil(t *testing.T) {
	a := ServerConfig{Command: "node", Args: []string{}, Env: map[string]string{}}
	b := ServerConfig{Command: "node"}

	if !a.Equal(b) {
		t.Error("empty slices/maps should compare equal to nil ones")
	}
}

func TestServerConfig_Clone_Independent(t *testing.T) {
	orig := ServerConfig{
		Command: "node",
		Args:    []string{"server.js"},
		Env:     map[string]string{"PORT": "3000"},
	}

	clone := orig.Clone()
	clone.Args[0] = "other.js"
	clone.Env["PORT"] = "4000"

	if orig.Args[0] != "server.js" {
		t.Error("mutating the clone's args changed the original")
	}
	if orig.Env["PORT"] != "3000" {
		t.Error("mutating the clone's env changed the original")
	}
}
