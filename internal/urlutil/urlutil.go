package urlutil

import (
	"net/url"
	"strings"
)

const redacted = "REDACTED"

// RedactQuery replaces the values of the named query parameters.
// Unparseable input is returned unchanged.
func RedactQuery(raw string, params ...string) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	query := parsed.Query()
	changed := false
	for _, name := range params {
		if _, ok := query[name]; ok {
			query.Set(name, redacted)
			changed = true
		}
	}
	if !changed {
		return raw
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// RedactSecret removes every occurrence of secret, raw or query-escaped, from s.
func RedactSecret(s, secret string) string {
	if secret == "" {
		return s
	}
	s = strings.ReplaceAll(s, secret, redacted)
	if escaped := url.QueryEscape(secret); escaped != secret {
		s = strings.ReplaceAll(s, escaped, redacted)
	}
	return s
}
