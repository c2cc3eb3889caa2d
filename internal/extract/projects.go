package extract

import (
	"strings"

	"github.com/cvlens/cvlens/internal/domain"
)

// Projects extracts project entries from a dedicated projects section:
// blocks split on blank lines or bullets, first line is the name, the rest
// is the description, technologies come from a vocabulary scan of the block.
// Without a projects section the result is empty; the full-document
// fallback is deliberately not applied here since free prose yields no
// usable project boundaries.
func Projects(sectionText string) []domain.Project {
	out := []domain.Project{}
	if len(strings.TrimSpace(sectionText)) < minSectionLen {
		return out
	}
	for _, block := range splitBlocks(sectionText, true) {
		name := stripBullet(block[0])
		if name == "" {
			continue
		}
		if i := strings.Index(name, ":"); i > 0 {
			rest := strings.TrimSpace(name[i+1:])
			name = strings.TrimSpace(name[:i])
			if rest != "" {
				block = append([]string{name, rest}, block[1:]...)
			}
		}
		desc := ""
		if len(block) > 1 {
			desc = strings.Join(block[1:], " ")
		}
		out = append(out, domain.Project{
			Name:         name,
			Description:  desc,
			Technologies: scanTechnologies(strings.Join(block, "\n")),
		})
	}
	return out
}
