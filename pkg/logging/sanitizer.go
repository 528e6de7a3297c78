package logging

import (
	"regexp"
)

// RedactedText is the replacement text for sensitive data.
const RedactedText = "[REDACTED]"

var (
	// Pattern to match API keys in query strings.
	// Matches: api_key=xxx, apikey=xxx, key=xxx (until next delimiter)
	apiKeyPattern = regexp.MustCompile(`(?i)(api[_-]?key|apikey|key)=[^&\s]+`)

	// Pattern to match potential passwords in connection strings.
	passwordPattern = regexp.MustCompile(`(?i)(password|pwd|pass)=[^;&\s]+`)

	// Pattern to match connection string credentials (user:pass@host format).
	connStringPattern = regexp.MustCompile(`://[^:/\s]+:[^@\s]+@[^/\s]+`)
)

// SanitizeURL removes API keys from an upstream URL before logging.
// Every upstream fetch log line must pass through this: congress.gov,
// FEC, and OpenSecrets all carry the key as a query parameter.
func SanitizeURL(url string) string {
	if url == "" {
		return ""
	}
	return apiKeyPattern.ReplaceAllString(url, "${1}="+RedactedText)
}

// SanitizeError sanitizes error messages that might embed a URL or
// connection string containing credentials.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	sanitized := apiKeyPattern.ReplaceAllString(err.Error(), "${1}="+RedactedText)
	sanitized = passwordPattern.ReplaceAllString(sanitized, "${1}="+RedactedText)
	sanitized = connStringPattern.ReplaceAllString(sanitized, "://"+RedactedText+"@"+RedactedText)
	return sanitized
}
