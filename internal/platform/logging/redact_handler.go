package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// sensitiveHeaders are lowercase header names whose values never reach the
// logs. Both the masq attribute filter and the HTTP header dump read it.
var sensitiveHeaders = []string{
	"authorization",
	"proxy-authorization",
	"x-api-key",
	"cookie",
	"set-cookie",
}

// IsSensitiveHeader reports whether the named HTTP header carries
// credentials. The comparison ignores case.
func IsSensitiveHeader(name string) bool {
	name = strings.ToLower(name)
	for _, h := range sensitiveHeaders {
		if h == name {
			return true
		}
	}
	return false
}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// At least 10 characters per segment so dotted version strings pass.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// newRedactAttr returns the masq ReplaceAttr used by every handler built by
// New. Fields are redacted by name, by prefix, and by value pattern.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
	}
	for _, h := range sensitiveHeaders {
		opts = append(opts, masq.WithFieldName(h))
	}
	return masq.New(opts...)
}
