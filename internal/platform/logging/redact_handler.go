package logging

import (
	"log/slog"
	"maps"
	"regexp"
	"slices"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders are lowercase header names whose values never reach the
// logs. The HTTP middleware redacts the same set when it logs headers.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

var (
	// redactedFields covers secrets and lead contact details. Capitalized
	// forms match struct fields logged through slog.Any.
	redactedFields = []string{
		"password", "secret", "token",
		"email", "Email", "phone", "Phone",
	}

	redactedPrefixes = []string{"secret_", "api_key"}

	redactedValues = []*regexp.Regexp{
		regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
		// JWTs; ten characters per segment keeps version strings out.
		regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
		regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	}
)

// newRedactAttr returns the masq ReplaceAttr used by every handler New
// builds. Fields are matched by name or prefix and raw values by pattern.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for _, name := range slices.Concat(slices.Sorted(maps.Keys(SensitiveHeaders)), redactedFields) {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range redactedPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range redactedValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
