// internal/logging/sanitize.go
package logging

import (
	"regexp"
	"strings"
)

// Redacted replaces sensitive values.
const Redacted = "[REDACTED]"

// sensitiveKeywords are matched as case-insensitive substrings of map keys,
// and as "<keyword>: value" / "<keyword>=value" assignments inside strings.
var sensitiveKeywords = []string{"token", "password", "secret", "key"}

// stringRule redacts one keyword's assignments inside free text.
type stringRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// spaceClass is the body of a character class matching ASCII and Unicode
// whitespace, including no-break spaces and the byte order mark.
const spaceClass = `\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var stringRules = newStringRules(sensitiveKeywords)

func newStringRules(keywords []string) []stringRule {
	rules := make([]stringRule, 0, len(keywords))
	for _, kw := range keywords {
		rules = append(rules, stringRule{
			pattern:     regexp.MustCompile(`(?i)` + regexp.QuoteMeta(kw) + `["` + spaceClass + `]*[:=]["` + spaceClass + `]*([^"` + spaceClass + `,}]+)`),
			replacement: kw + `: "` + Redacted + `"`,
		})
	}
	return rules
}

// apply replaces every match whose value is not already redacted.
func (r stringRule) apply(s string) string {
	matches := r.pattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		if s[m[2]:m[3]] == Redacted {
			continue
		}
		b.WriteString(s[last:m[0]])
		b.WriteString(r.replacement)
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// IsSensitiveKey reports whether a map key names sensitive data.
func IsSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, kw := range sensitiveKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// SanitizeString redacts token, password, secret and key assignments in s.
func SanitizeString(s string) string {
	if s == "" {
		return s
	}
	for _, rule := range stringRules {
		s = rule.apply(s)
	}
	return s
}

// Sanitize returns a redacted copy of v. The input is never modified.
//
// Map entries under sensitive keys become "[REDACTED]" whatever their type;
// other entries and list elements are sanitized recursively; strings go
// through SanitizeString. Sanitize is idempotent. It does not detect cycles.
func Sanitize(v Value) Value {
	switch x := v.(type) {
	case nil:
		return nil
	case Null, Bool, Number:
		return x
	case String:
		return String(SanitizeString(string(x)))
	case List:
		if x == nil {
			return x
		}
		out := make(List, len(x))
		for i, e := range x {
			out[i] = Sanitize(e)
		}
		return out
	case Map:
		if x == nil {
			return x
		}
		out := make(Map, len(x))
		for k, e := range x {
			if IsSensitiveKey(k) {
				out[k] = String(Redacted)
				continue
			}
			out[k] = Sanitize(e)
		}
		return out
	}
	return v
}
