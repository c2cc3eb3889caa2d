package extract

import (
	"strings"
	"unicode"

	"github.com/cvlens/cvlens/internal/domain"
	"github.com/cvlens/cvlens/internal/vocab"
	"github.com/cvlens/cvlens/pkg/textx"
)

// delimiters is the priority-ordered set a skills line is split on; the
// first one present in the line wins.
var delimiters = []string{",", ";", "•", "|", "/", ":"}

// Skills extracts the four skill buckets. With a dedicated section, lines
// are delimiter-split into tokens; without one, the full text is scanned
// against the vocabularies on word boundaries. Results are deduplicated
// case-insensitively and title-cased unless the vocabulary provides a
// canonical casing.
func Skills(sectionText, fullText string) domain.SkillSet {
	set := domain.NewSkillSet()
	dedupe := map[string]struct{}{}
	text, fromSection := fallbackText(sectionText, fullText)
	if fromSection {
		for _, raw := range strings.Split(text, "\n") {
			for _, tok := range tokenizeSkillLine(stripBullet(strings.TrimSpace(raw))) {
				classify(&set, dedupe, tok)
			}
		}
		if set.Count() > 0 {
			return set
		}
	}
	scanVocabulary(&set, dedupe, fullText)
	return set
}

// tokenizeSkillLine splits one skills line into candidate tokens. A leading
// "Category:" label is stripped first; with no delimiter at all, single
// whitespace tokens pass when capitalized or vocabulary-known.
func tokenizeSkillLine(line string) []string {
	if line == "" {
		return nil
	}
	if i := strings.Index(line, ":"); i >= 0 && i < len(line)-1 && !strings.ContainsAny(line[:i], ",;|") {
		line = strings.TrimSpace(line[i+1:])
	}
	for _, d := range delimiters {
		if strings.Contains(line, d) {
			var out []string
			for _, t := range strings.Split(line, d) {
				if t = strings.TrimSpace(t); t != "" {
					out = append(out, t)
				}
			}
			return out
		}
	}
	var out []string
	for _, t := range strings.Fields(line) {
		if isCapitalized(t) || isKnownTechnology(t) {
			out = append(out, t)
		}
	}
	return out
}

func isCapitalized(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

func isKnownTechnology(tok string) bool {
	low := expandAbbreviations(textx.Fold(tok))
	for _, t := range vocab.ProgrammingLanguages {
		if low == textx.Fold(t) {
			return true
		}
	}
	for _, t := range vocab.Technologies {
		if low == textx.Fold(t) {
			return true
		}
	}
	return false
}

// classify places one token into its bucket. Programming languages win over
// the generic technology list for overlapping terms; unknown tokens land in
// technical skills title-cased.
func classify(set *domain.SkillSet, dedupe map[string]struct{}, tok string) {
	low := expandAbbreviations(textx.Fold(tok))
	if canonical, ok := matchTerm(low, vocab.ProgrammingLanguages); ok {
		addSkill(&set.ProgrammingLanguages, dedupe, canonical)
		return
	}
	if lang, ok := vocab.LookupWord(vocab.SpokenLanguages, tok); ok {
		addSkill(&set.SpokenLanguages, dedupe, lang)
		return
	}
	if canonical, ok := matchTerm(low, vocab.SoftSkills); ok {
		addSkill(&set.SoftSkills, dedupe, canonical)
		return
	}
	if canonical, ok := matchTerm(low, vocab.Technologies); ok {
		addSkill(&set.TechnicalSkills, dedupe, canonical)
		return
	}
	if len([]rune(tok)) < 2 || len([]rune(tok)) > 40 {
		return
	}
	addSkill(&set.TechnicalSkills, dedupe, textx.TitleCase(tok))
}

// matchTerm returns the canonical casing when low equals a vocabulary term.
func matchTerm(low string, terms []string) (string, bool) {
	for _, t := range terms {
		if low == textx.Fold(t) {
			return t, true
		}
	}
	return "", false
}

func addSkill(bucket *[]string, dedupe map[string]struct{}, skill string) {
	key := textx.Fold(skill)
	if _, ok := dedupe[key]; ok {
		return
	}
	dedupe[key] = struct{}{}
	*bucket = append(*bucket, skill)
}

// scanVocabulary is the no-section path: exact word-boundary matches over
// the whole document. Office sub-products roll up into a single generic
// entry unless a specific product already made it in on its own.
func scanVocabulary(set *domain.SkillSet, dedupe map[string]struct{}, fullText string) {
	low := expandAbbreviations(textx.Fold(fullText))
	for _, t := range vocab.ProgrammingLanguages {
		if vocab.ContainsWord(low, textx.Fold(t)) {
			addSkill(&set.ProgrammingLanguages, dedupe, t)
		}
	}
	for _, t := range vocab.Technologies {
		if vocab.ContainsWord(low, textx.Fold(t)) {
			addSkill(&set.TechnicalSkills, dedupe, t)
		}
	}
	for _, t := range vocab.SoftSkills {
		if vocab.ContainsWord(low, textx.Fold(t)) {
			addSkill(&set.SoftSkills, dedupe, t)
		}
	}
	office := false
	for _, p := range vocab.OfficeProducts {
		if _, already := dedupe[textx.Fold(p)]; already {
			office = false
			break
		}
		if vocab.ContainsWord(low, textx.Fold(p)) {
			office = true
		}
	}
	if office {
		addSkill(&set.TechnicalSkills, dedupe, vocab.OfficeGeneric)
	}
}
