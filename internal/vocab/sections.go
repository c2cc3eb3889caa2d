package vocab

// Canonical section names. These are the keys of the section map produced by
// the segmenter; headers with no synonym below keep their literal text.
const (
	SectionPersonal       = "personal"
	SectionSummary        = "summary"
	SectionEducation      = "education"
	SectionExperience     = "experience"
	SectionSkills         = "skills"
	SectionLanguages      = "languages"
	SectionCertifications = "certifications"
	SectionProjects       = "projects"
	SectionReferences     = "references"
)

// Sections maps header synonyms (Turkish and English) to canonical section
// names. Order matters: more specific phrases come before generic ones so
// that e.g. "work experience" resolves before a bare "work".
var Sections = Table[string]{
	{Keywords: []string{"work experience", "iş deneyimi", "professional experience", "employment history", "iş tecrübesi", "deneyim", "tecrübe", "experience"}, Value: SectionExperience},
	{Keywords: []string{"educational background", "eğitim bilgileri", "academic background", "education", "eğitim", "egitim", "öğrenim", "academic"}, Value: SectionEducation},
	{Keywords: []string{"technical skills", "teknik beceriler", "core competencies", "skills", "beceriler", "yetenekler", "yetkinlikler"}, Value: SectionSkills},
	{Keywords: []string{"foreign languages", "yabancı diller", "language skills", "languages", "diller"}, Value: SectionLanguages},
	{Keywords: []string{"certifications", "certificates", "sertifikalar", "sertifika", "licenses", "courses", "kurslar"}, Value: SectionCertifications},
	{Keywords: []string{"projects", "projeler", "proje", "portfolio", "portfolyo"}, Value: SectionProjects},
	{Keywords: []string{"personal information", "kişisel bilgiler", "contact information", "iletişim bilgileri", "contact", "iletişim"}, Value: SectionPersonal},
	{Keywords: []string{"professional summary", "yetenek özeti", "about me", "hakkımda", "summary", "objective", "profile", "profil", "özet", "özgeçmiş özeti"}, Value: SectionSummary},
	{Keywords: []string{"references", "referanslar", "referans"}, Value: SectionReferences},
}

// HeaderKeywords is the flat list of every known header synonym, used by the
// normalizer to surface inline headers onto their own line.
func HeaderKeywords() []string {
	var out []string
	for _, e := range Sections {
		out = append(out, e.Keywords...)
	}
	return out
}
