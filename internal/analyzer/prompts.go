package analyzer

import "fmt"

// schemaExample is embedded literally in the primary prompt so the model
// mirrors the exact output contract.
const schemaExample = `{
  "personal_info": {"name": "", "email": "", "phone": "", "location": "", "linkedin": "", "website": "", "github": ""},
  "education": [{"institution": "", "degree": "bachelor", "field": "", "start_year": 2015, "end_year": 2019, "grade": null}],
  "experience": [{"company": "", "title": "", "start_year": 2019, "end_year": null, "location": "", "responsibilities": [], "skills_used": []}],
  "skills": {"technical_skills": [], "programming_languages": [], "spoken_languages": [], "soft_skills": []},
  "projects": [{"name": "", "description": "", "technologies": []}],
  "certifications": [],
  "summary": "",
  "score": {"total_score": 0, "education_score": 0, "experience_score": 0, "skills_score": 0, "projects_score": 0}
}`

const primaryTemplate = `You are a CV analysis engine. Read the CV below and answer with a single JSON object, nothing else. The CV may be in Turkish or English.

Use exactly this structure, with these keys:
%s

Rules:
- Every key must be present. Use "unspecified" for text you cannot determine and empty arrays for missing lists.
- "degree" is one of: none, high_school, bachelor, master, doctorate, other.
- Years are 4-digit integers; use null for an ongoing end_year.
- Do not wrap the JSON in markdown fences and do not add commentary.

CV:
%s`

const simplifiedTemplate = `Extract from this CV as JSON with keys personal_info (name, email, phone), skills (technical_skills, programming_languages), education, experience, summary. JSON only, no other text.

CV:
%s`

func primaryPrompt(cvText string) string {
	return fmt.Sprintf(primaryTemplate, schemaExample, cvText)
}

func simplifiedPrompt(cvText string) string {
	return fmt.Sprintf(simplifiedTemplate, cvText)
}
