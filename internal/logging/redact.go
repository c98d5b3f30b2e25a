package logging

import "strings"

// sensitiveKeyParts are substrings of attribute or env var keys whose values
// must never be logged in the clear.
var sensitiveKeyParts = []string{
	"token",
	"secret",
	"password",
	"passwd",
	"api_key",
	"apikey",
	"credential",
	"auth",
}

// tokenPrefixes are value prefixes used by common credential formats.
var tokenPrefixes = []string{
	"ghp_",    // GitHub personal access token
	"gho_",    // GitHub OAuth token
	"github_", // GitHub fine-grained token
	"sk-",     // OpenAI / Anthropic style secret key
	"xoxb-",   // Slack bot token
	"xoxp-",   // Slack user token
	"glpat-",  // GitLab personal access token
	"Bearer ",
}

// ShouldMask reports whether values for the given key must be masked.
func ShouldMask(key string) bool {
	lower := strings.ToLower(key)
	for _, part := range sensitiveKeyParts {
		if strings.Contains(lower, part) {
			return true
		}
	}
	return false
}

// ContainsTokenPrefix reports whether the value looks like a credential.
func ContainsTokenPrefix(value string) bool {
	for _, prefix := range tokenPrefixes {
		if strings.Contains(value, prefix) {
			return true
		}
	}
	return false
}

// MaskValue replaces all but the first four characters of a value with
// asterisks. Short values are masked entirely.
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "****"
	}
	return value[:4] + strings.Repeat("*", len(value)-4)
}
