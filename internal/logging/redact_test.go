package logging

import "testing"

func TestShouldMask(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"GITHUB_TOKEN", true},
		{"api_key", true},
		{"DB_PASSWORD", true},
		{"AUTH_HEADER", true},
		{"PORT", false},
		{"DEBUG", false},
	}

	for _, tt := range tests {
		if got := ShouldMask(tt.key); got != tt.want {
			t.Errorf("ShouldMask(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestMaskValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc", "****"},
		{"ghp_abcdef", "ghp_******"},
	}

	for _, tt := range tests {
		if got := MaskValue(tt.in); got != tt.want {
			t.Errorf("MaskValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContainsTokenPrefix(t *testing.T) {
	if !ContainsTokenPrefix("sk-123456") {
		t.Error("sk- prefix should be detected")
	}
	if ContainsTokenPrefix("node server.js") {
		t.Error("plain command should not be detected")
	}
}
