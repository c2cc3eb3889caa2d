package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvlens/cvlens/internal/domain"
)

const sampleFull = "Ahmet Yılmaz\nahmet@x.com\n+90 555 123 4567\n\nEDUCATION\nBoğaziçi University, Computer Engineering, 2015-2019\n\nSKILLS\nPython, Docker, AWS"

func TestPersonal_Sample(t *testing.T) {
	t.Parallel()
	got := Personal("", sampleFull)

	assert.Equal(t, "Ahmet Yılmaz", got.Name)
	assert.Equal(t, "ahmet@x.com", got.Email)
	assert.Equal(t, "+905551234567", got.Phone)
	assert.Equal(t, domain.Unspecified, got.LinkedIn)
	assert.Equal(t, domain.Unspecified, got.Website)
}

func TestPersonal_DenyListSkipsDocumentTitle(t *testing.T) {
	t.Parallel()
	got := Personal("", "Curriculum Vitae\nAyşe Demir\nayse@example.com")
	assert.Equal(t, "Ayşe Demir", got.Name)
}

func TestPersonal_Links(t *testing.T) {
	t.Parallel()
	full := "Can Öz\nlinkedin.com/in/canoz\ngithub.com/canoz\nhttps://canoz.dev"
	got := Personal("", full)

	assert.Equal(t, "linkedin.com/in/canoz", got.LinkedIn)
	assert.Equal(t, "github.com/canoz", got.GitHub)
	assert.Equal(t, "https://canoz.dev", got.Website)
}

func TestPersonal_WebsiteExcludesSocialNetworks(t *testing.T) {
	t.Parallel()
	got := Personal("", "Can Öz\nhttps://linkedin.com/in/canoz")
	assert.Equal(t, domain.Unspecified, got.Website)
}

func TestPersonal_Empty(t *testing.T) {
	t.Parallel()
	got := Personal("", "")
	assert.Equal(t, domain.NewPersonalInfo(), got)
}

func TestEducation_Sample(t *testing.T) {
	t.Parallel()
	got := Education("Boğaziçi University, Computer Engineering, 2015-2019", sampleFull)

	require.Len(t, got, 1)
	assert.Equal(t, "Boğaziçi University", got[0].Institution)
	assert.Equal(t, "Computer Engineering", got[0].Field)
	require.NotNil(t, got[0].StartYear)
	require.NotNil(t, got[0].EndYear)
	assert.Equal(t, 2015, *got[0].StartYear)
	assert.Equal(t, 2019, *got[0].EndYear)
}

func TestEducation_DegreePriority(t *testing.T) {
	t.Parallel()
	got := Education("ODTÜ Üniversitesi\nYüksek Lisans, Bilgisayar Mühendisliği\n2019-2021", "")

	require.Len(t, got, 1)
	assert.Equal(t, domain.DegreeMaster, got[0].Degree)
}

func TestEducation_OngoingAndGraduation(t *testing.T) {
	t.Parallel()
	ongoing := Education("İstanbul University, 2021-present", "")
	require.Len(t, ongoing, 1)
	require.NotNil(t, ongoing[0].StartYear)
	assert.Equal(t, 2021, *ongoing[0].StartYear)
	assert.Nil(t, ongoing[0].EndYear)

	grad := Education("Ankara University, Mezuniyet 2018", "")
	require.Len(t, grad, 1)
	assert.Nil(t, grad[0].StartYear)
	require.NotNil(t, grad[0].EndYear)
	assert.Equal(t, 2018, *grad[0].EndYear)
}

func TestEducation_IgnoresBlocksWithoutInstitution(t *testing.T) {
	t.Parallel()
	got := Education("random text about learning things in 2019", "")
	assert.Empty(t, got)
}

func TestExperience_Basic(t *testing.T) {
	t.Parallel()
	section := "Acme Teknoloji A.Ş.\nSoftware Engineer\n2019-2022\n• Built billing pipeline\n• Led migration to Kubernetes"
	got := Experience(section, "")

	require.Len(t, got, 1)
	assert.Equal(t, "Acme Teknoloji A.Ş.", got[0].Company)
	assert.Equal(t, "Software Engineer", got[0].Title)
	require.NotNil(t, got[0].StartYear)
	assert.Equal(t, 2019, *got[0].StartYear)
	require.NotNil(t, got[0].EndYear)
	assert.Equal(t, 2022, *got[0].EndYear)
	assert.Equal(t, []string{"Built billing pipeline", "Led migration to Kubernetes"}, got[0].Responsibilities)
	assert.Contains(t, got[0].SkillsUsed, "Kubernetes")
}

func TestExperience_MonthYearRangeAndOngoing(t *testing.T) {
	t.Parallel()
	section := "Globex Inc\nBackend Developer\nMarch 2020 - Present"
	got := Experience(section, "")

	require.Len(t, got, 1)
	require.NotNil(t, got[0].StartYear)
	assert.Equal(t, 2020, *got[0].StartYear)
	assert.Nil(t, got[0].EndYear)
}

func TestExperience_CompanyDashTitle(t *testing.T) {
	t.Parallel()
	got := Experience("Initech - Data Analyst\n2018-2020", "")

	require.Len(t, got, 1)
	assert.Equal(t, "Initech", got[0].Company)
	assert.Equal(t, "Data Analyst", got[0].Title)
}

func TestExperience_SortedMostRecentFirst(t *testing.T) {
	t.Parallel()
	section := "Oldco Ltd\nEngineer\n2010-2012\n\nNewco Inc\nEngineer\n2020-2022\n\nNodate GmbH\nEngineer"
	got := Experience(section, "")

	require.Len(t, got, 3)
	assert.Equal(t, "Newco Inc", got[0].Company)
	assert.Equal(t, "Oldco Ltd", got[1].Company)
	assert.Equal(t, "Nodate GmbH", got[2].Company)
}

func TestExperience_AbbreviationExpansionInSkillsUsed(t *testing.T) {
	t.Parallel()
	got := Experience("Acme Inc\nDevops Engineer\n2021-2022\n• Ran k8s clusters and js tooling", "")

	require.Len(t, got, 1)
	assert.Contains(t, got[0].SkillsUsed, "Kubernetes")
	assert.Contains(t, got[0].SkillsUsed, "JavaScript")
}

func TestSkills_Sample(t *testing.T) {
	t.Parallel()
	got := Skills("Python, Docker, AWS", sampleFull)

	assert.Equal(t, []string{"Python"}, got.ProgrammingLanguages)
	assert.Contains(t, got.TechnicalSkills, "Docker")
	assert.Contains(t, got.TechnicalSkills, "AWS")
}

func TestSkills_CategoryLabelStripped(t *testing.T) {
	t.Parallel()
	got := Skills("Programming Languages: Python, Java\nSoft Skills: Leadership", "")

	assert.ElementsMatch(t, []string{"Python", "Java"}, got.ProgrammingLanguages)
	assert.Contains(t, got.SoftSkills, "Leadership")
}

func TestSkills_FullTextFallbackWordBoundary(t *testing.T) {
	t.Parallel()
	full := "Built services in Go and Python, deployed with Docker on AWS. Strong communication."
	got := Skills("", full)

	assert.Contains(t, got.ProgrammingLanguages, "Go")
	assert.Contains(t, got.ProgrammingLanguages, "Python")
	assert.Contains(t, got.TechnicalSkills, "Docker")
	assert.Contains(t, got.SoftSkills, "Communication")
	// "R" must not fire inside ordinary words
	assert.NotContains(t, got.ProgrammingLanguages, "R")
}

func TestSkills_DedupeCaseInsensitive(t *testing.T) {
	t.Parallel()
	got := Skills("python, PYTHON, Python", "")
	assert.Equal(t, []string{"Python"}, got.ProgrammingLanguages)
}

func TestSkills_OfficeRollup(t *testing.T) {
	t.Parallel()
	got := Skills("", "Proficient with Excel and PowerPoint reporting")
	assert.Contains(t, got.TechnicalSkills, "Microsoft Office")
}

func TestLanguages_WithProficiency(t *testing.T) {
	t.Parallel()
	got := Languages("İngilizce (B2), Almanca başlangıç", "")
	assert.Equal(t, []string{"English (B2)", "German (Beginner)"}, got)
}

func TestLanguages_LevelBeforeLanguage(t *testing.T) {
	t.Parallel()
	got := Languages("Fluent English, native Turkish", "")
	assert.Equal(t, []string{"English (Fluent)", "Turkish (Native)"}, got)
}

func TestLanguages_PlainWhenNoLevel(t *testing.T) {
	t.Parallel()
	got := Languages("English, German", "")
	assert.Equal(t, []string{"English", "German"}, got)
}

func TestCertifications_SectionRules(t *testing.T) {
	t.Parallel()
	section := "AWS Certified Solutions Architect\nGoogle Cloud fundamentals\nSome Long Training Course\nok"
	got := Certifications(section, "")

	assert.Contains(t, got, "AWS Certified Solutions Architect")
	assert.Contains(t, got, "Google Cloud fundamentals")
	assert.Contains(t, got, "Some Long Training Course")
	assert.NotContains(t, got, "ok")
}

func TestCertifications_FallbackNeedsKeyword(t *testing.T) {
	t.Parallel()
	got := Certifications("", "Skills: Python, Docker, AWS\nScrum Master sertifikası 2021")

	require.Len(t, got, 1)
	assert.Contains(t, got[0], "sertifikası")
}

func TestProjects_Section(t *testing.T) {
	t.Parallel()
	section := "Invoice Robot: automated invoice parsing with Python and Docker\n\nChat Service\nRealtime chat built on Go and Redis"
	got := Projects(section)

	require.Len(t, got, 2)
	assert.Equal(t, "Invoice Robot", got[0].Name)
	assert.Contains(t, got[0].Technologies, "Python")
	assert.Equal(t, "Chat Service", got[1].Name)
	assert.Contains(t, got[1].Technologies, "Go")
	assert.Contains(t, got[1].Technologies, "Redis")
}

func TestProjects_NoSection(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Projects(""))
}
