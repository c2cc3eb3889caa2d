package extract

import (
	"strings"
	"unicode"

	"github.com/cvlens/cvlens/internal/vocab"
)

// Certifications extracts certification lines. Inside a dedicated section a
// line qualifies when it carries a certification keyword, names a known
// issuer, or — as a last resort — is longer than 10 characters and starts
// with a capital letter. On the full-document fallback only the keyword
// rule applies, so a skills line naming a cloud vendor is not mistaken for
// a certification.
func Certifications(sectionText, fullText string) []string {
	text, fromSection := fallbackText(sectionText, fullText)
	out := []string{}
	seen := map[string]struct{}{}
	for _, raw := range strings.Split(text, "\n") {
		line := stripBullet(strings.TrimSpace(raw))
		if line == "" {
			continue
		}
		ok := containsAny(line, vocab.CertificationKeywords) ||
			(fromSection && containsAny(line, vocab.CertificationIssuers))
		if !ok && fromSection && len([]rune(line)) > 10 && startsUpper(line) {
			ok = true
		}
		if !ok {
			continue
		}
		key := strings.ToLower(line)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, line)
	}
	return out
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
