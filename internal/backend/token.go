package backend

import (
	"regexp"
	"strings"
)

var bearerRegex = regexp.MustCompile(`(?i)^bearer$`)

// NormalizeToken reduces a stored token value to the bare token. Accepts a
// raw token, "Bearer <token>", an accidental "Bearer Bearer <token>", and
// one layer of surrounding quotes (seen when values are copied around or
// URL-decoded). Anything else comes back trimmed but otherwise unchanged.
func NormalizeToken(input string) string {
	token := strings.TrimSpace(input)
	if token == "" {
		return ""
	}

	if len(token) >= 2 {
		if (strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`)) ||
			(strings.HasPrefix(token, "'") && strings.HasSuffix(token, "'")) {
			token = strings.TrimSpace(token[1 : len(token)-1])
		}
	}

	fields := strings.Fields(token)
	switch {
	case len(fields) == 1:
		return fields[0]
	case len(fields) == 2 && bearerRegex.MatchString(fields[0]):
		return fields[1]
	case len(fields) == 3 && bearerRegex.MatchString(fields[0]) && bearerRegex.MatchString(fields[1]):
		return fields[2]
	}

	return token
}
