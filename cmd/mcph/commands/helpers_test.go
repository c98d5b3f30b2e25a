package commands

import (
	"testing"

	"github.com/mcph/mcph/internal/server"
)

func TestParseKeyValueSlice(t *testing.T) {
	tests := []struct {
		name     string
		entries  []string
		flagName string
		want     map[string]string
		wantErr  bool
	}{
		{
			name:     "nil entries",
			entries:  nil,
			flagName: "--env",
			want:     nil,
		},
		{
			name:     "valid single entry",
			entries:  []string{"KEY=value"},
			flagName: "--env",
			want:     map[string]string{"KEY": "value"},
		},
		{
			name:     "valid multiple entries",
			entries:  []string{"KEY1=value1", "KEY2=value2"},
			flagName: "--env",
			want:     map[string]string{"KEY1": "value1", "KEY2": "value2"},
		},
		{
			name:     "empty value",
			entries:  []string{"KEY="},
			flagName: "--env",
			want:     map[string]string{"KEY": ""},
		},
		{
			name:     "equals in value",
			entries:  []string{"KEY=val=ue"},
			flagName: "--env",
			want:     map[string]string{"KEY": "val=ue"},
		},
		{
			name:     "missing equals",
			entries:  []string{"KEYvalue"},
			flagName: "--env",
			wantErr:  true,
		},
		{
			name:     "empty key",
			entries:  []string{"=value"},
			flagName: "--env",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseKeyValueSlice(tt.entries, tt.flagName)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseKeyValueSlice() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseKeyValueSlice() len = %d, want %d", len(got), len(tt.want))
			}
			for k, wantV := range tt.want {
				if got[k] != wantV {
					t.Errorf("parseKeyValueSlice()[%q] = %q, want %q", k, got[k], wantV)
				}
			}
		})
	}
}

func TestDefaultServerName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"@modelcontextprotocol/server-filesystem", "server-filesystem"},
		{"server-github@2.0.0", "server-github"},
		{"docker:ghcr.io/example/mcp:latest", "mcp"},
		{"./tools/server.py", "server"},
		{"plain-name", "plain-name"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := defaultServerName(server.Detect(tt.input)); got != tt.want {
				t.Errorf("defaultServerName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
