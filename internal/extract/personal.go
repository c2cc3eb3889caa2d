package extract

import (
	"regexp"
	"strings"

	"github.com/cvlens/cvlens/internal/domain"
	"github.com/cvlens/cvlens/internal/vocab"
	"github.com/cvlens/cvlens/pkg/textx"
)

var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/(?:in|company)/[A-Za-z0-9_%-]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[A-Za-z0-9_-]+`)
	urlRe      = regexp.MustCompile(`(?i)(?:https?://|www\.)[^\s,;]+`)
)

// phonePatterns is the ordered regional pattern list: Turkish mobile first,
// then generic international, then generic local. First match with a valid
// digit count wins.
var phonePatterns = []struct {
	re       *regexp.Regexp
	min, max int
}{
	{regexp.MustCompile(`(?:\+90|0090|0)?[\s.-]?5\d{2}[\s.-]?\d{3}[\s.-]?\d{2}[\s.-]?\d{2}`), 10, 12},
	{regexp.MustCompile(`\+\d{1,3}[\s.-]?\(?\d{1,4}\)?(?:[\s.-]?\d{2,4}){2,4}`), 10, 14},
	{regexp.MustCompile(`\(?\d{3,4}\)?[\s.-]\d{3}[\s.-]?\d{2}[\s.-]?\d{2}`), 9, 11},
}

// socialDomains are excluded from website detection.
var socialDomains = []string{
	"linkedin.com", "github.com", "twitter.com", "x.com", "facebook.com",
	"instagram.com", "youtube.com", "medium.com",
}

// Personal extracts contact details. The name is taken from the first lines
// of the full document rather than the personal section, since names precede
// section headers; everything else is matched over the full text so contact
// lines misfiled into other sections are still found.
func Personal(sectionText, fullText string) domain.PersonalInfo {
	info := domain.NewPersonalInfo()
	text, _ := fallbackText(sectionText, fullText)

	if name := findName(fullText); name != "" {
		info.Name = name
	}
	if m := emailRe.FindString(fullText); m != "" {
		info.Email = m
	}
	if phone := findPhone(fullText); phone != "" {
		info.Phone = phone
	}
	if m := linkedinRe.FindString(fullText); m != "" {
		info.LinkedIn = m
	}
	if m := githubRe.FindString(fullText); m != "" {
		info.GitHub = m
	}
	if site := findWebsite(fullText); site != "" {
		info.Website = site
	}
	if loc := findLocation(text); loc != "" {
		info.Location = loc
	}
	return info
}

// findName returns the first of the document's first three lines that is
// not numeric, not an email, not a URL, and not a generic document title.
func findName(fullText string) string {
	lines := strings.Split(fullText, "\n")
	for i := 0; i < len(lines) && i < 3; i++ {
		line := stripBullet(strings.TrimSpace(lines[i]))
		if line == "" || len([]rune(line)) > 60 {
			continue
		}
		if strings.ContainsAny(line, "0123456789@") {
			continue
		}
		low := textx.Fold(line)
		if strings.Contains(low, "http") || strings.Contains(low, "www.") {
			continue
		}
		if isDeniedTitle(low) {
			continue
		}
		return line
	}
	return ""
}

func isDeniedTitle(low string) bool {
	low = strings.TrimSpace(strings.TrimSuffix(low, ":"))
	for _, t := range vocab.TitleDenyList {
		if low == t {
			return true
		}
	}
	return false
}

// findPhone tries the regional patterns in order and canonicalizes the first
// hit whose digit count is in range. Leading + is preserved.
func findPhone(text string) string {
	for _, p := range phonePatterns {
		for _, m := range p.re.FindAllString(text, -1) {
			digits := keepDigits(m)
			if len(digits) >= p.min && len(digits) <= p.max {
				if strings.HasPrefix(strings.TrimSpace(m), "+") {
					return "+" + digits
				}
				return digits
			}
		}
	}
	return ""
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// findWebsite returns the first URL that is not a known social network.
func findWebsite(text string) string {
	for _, m := range urlRe.FindAllString(text, -1) {
		low := strings.ToLower(m)
		social := false
		for _, d := range socialDomains {
			if strings.Contains(low, d) {
				social = true
				break
			}
		}
		if !social {
			return strings.TrimRight(m, ".,;)")
		}
	}
	return ""
}

// findLocation looks for a labeled location line first, then for a known
// city name anywhere in the scanned text.
func findLocation(text string) string {
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		low := textx.Fold(line)
		for _, label := range []string{"address:", "adres:", "location:", "konum:", "şehir:", "city:"} {
			if strings.HasPrefix(low, label) {
				if i := strings.Index(line, ":"); i >= 0 {
					if v := strings.TrimSpace(line[i+1:]); v != "" {
						return v
					}
				}
			}
		}
	}
	low := textx.Fold(text)
	for _, city := range vocab.KnownCities {
		if vocab.ContainsWord(low, textx.Fold(city)) {
			return city
		}
	}
	return ""
}
