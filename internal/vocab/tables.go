package vocab

import "github.com/cvlens/cvlens/internal/domain"

// Degrees classifies free text into a degree level. Priority order is
// doctorate > master > bachelor > high school, so a line mentioning both a
// master's and a bachelor's resolves to the higher level.
var Degrees = Table[domain.DegreeLevel]{
	{Keywords: []string{"doktora", "phd", "ph.d", "doctorate", "doctoral"}, Value: domain.DegreeDoctorate},
	{Keywords: []string{"yüksek lisans", "master", "m.sc", "msc", "m.s.", "mba", "graduate degree"}, Value: domain.DegreeMaster},
	{Keywords: []string{"lisans", "bachelor", "b.sc", "bsc", "b.s.", "b.a.", "undergraduate"}, Value: domain.DegreeBachelor},
	{Keywords: []string{"lise", "high school", "lisesi"}, Value: domain.DegreeHighSchool},
}

// InstitutionKeywords qualifies a text block as an education entry.
var InstitutionKeywords = []string{
	"üniversitesi", "üniversite", "university", "college", "school",
	"institute", "institut", "academy", "akademi", "lisesi", "high school",
	"fakülte", "faculty", "yüksekokul",
}

// CompanySuffixes marks a line as a company name.
var CompanySuffixes = []string{
	"inc", "ltd", "llc", "limited", "a.ş", "a.s.", "gmbh", "corp",
	"corporation", "holding", "teknoloji", "yazılım", "software",
	"technologies", "bilişim", "consulting", "danışmanlık", "şti",
}

// RoleTitles marks a line as a job title.
var RoleTitles = []string{
	"engineer", "developer", "manager", "director", "consultant",
	"specialist", "scientist", "analyst", "architect", "lead", "intern",
	"designer", "administrator", "mühendis", "geliştirici", "yönetici",
	"uzman", "danışman", "analist", "stajyer", "bilimci",
}

// OngoingWords map an end date to "still in progress".
var OngoingWords = []string{
	"present", "current", "now", "ongoing", "günümüz", "devam", "halen", "süren",
}

// GraduationWords mark a lone year as an end (graduation) year.
var GraduationWords = []string{"mezuniyet", "graduation", "graduated", "mezun"}

// Months resolves English and Turkish month names to their number.
var Months = Table[int]{
	{Keywords: []string{"january", "ocak", "jan"}, Value: 1},
	{Keywords: []string{"february", "şubat", "feb"}, Value: 2},
	{Keywords: []string{"march", "mart", "mar"}, Value: 3},
	{Keywords: []string{"april", "nisan", "apr"}, Value: 4},
	{Keywords: []string{"mayıs", "may"}, Value: 5},
	{Keywords: []string{"june", "haziran", "jun"}, Value: 6},
	{Keywords: []string{"july", "temmuz", "jul"}, Value: 7},
	{Keywords: []string{"august", "ağustos", "aug"}, Value: 8},
	{Keywords: []string{"september", "eylül", "sep"}, Value: 9},
	{Keywords: []string{"october", "ekim", "oct"}, Value: 10},
	{Keywords: []string{"november", "kasım", "nov"}, Value: 11},
	{Keywords: []string{"december", "aralık", "dec"}, Value: 12},
}

// ProgrammingLanguages carries canonical casing; matching is word-bounded
// and case-insensitive. This bucket takes priority over Technologies for
// overlapping terms.
var ProgrammingLanguages = []string{
	"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "C", "Go",
	"Rust", "PHP", "Ruby", "Swift", "Kotlin", "Scala", "Perl", "R",
	"MATLAB", "Dart", "SQL", "HTML", "CSS", "Bash", "PowerShell",
	"Haskell", "Julia", "Fortran", "COBOL", "Lua", "Assembly",
}

// Technologies covers frameworks, tooling, cloud, data stores, and AI/ML
// terms, with canonical casing.
var Technologies = []string{
	"Django", "Flask", "FastAPI", "Spring", "React", "Angular", "Vue",
	"Laravel", "ASP.NET", "Express", "Node.js", "Next.js", "jQuery",
	"Bootstrap", "Redux", "Rails", "Symfony", "Flutter", "React Native",
	"TensorFlow", "PyTorch", "Keras", "Pandas", "NumPy", "scikit-learn",
	"OpenCV", "Docker", "Kubernetes", "AWS", "Azure", "GCP", "Git",
	"Jenkins", "Terraform", "Ansible", "REST", "GraphQL", "gRPC",
	"Microservices", "CI/CD", "MongoDB", "MySQL", "PostgreSQL", "SQLite",
	"Oracle", "Firebase", "Redis", "Elasticsearch", "Kafka", "RabbitMQ",
	"WebSocket", "OAuth", "JWT", "Linux", "Machine Learning",
	"Deep Learning", "Computer Vision", "NLP", "Natural Language Processing",
	"Data Science", "Big Data", "Data Mining", "ETL", "Data Visualization",
	"Neural Networks", "Reinforcement Learning", "Time Series Analysis",
	"Recommender Systems", "Statistical Analysis",
}

// OfficeProducts are rolled up into a generic "Microsoft Office" entry when
// no specific product was found on its own.
var OfficeProducts = []string{"Excel", "Word", "PowerPoint", "Outlook", "Access"}

// OfficeGeneric is the roll-up skill name for OfficeProducts.
const OfficeGeneric = "Microsoft Office"

// SoftSkills in canonical English/Turkish casing.
var SoftSkills = []string{
	"Communication", "İletişim", "Teamwork", "Takım Çalışması",
	"Leadership", "Liderlik", "Problem Solving", "Problem Çözme",
	"Analytical Thinking", "Analitik Düşünme", "Creativity", "Yaratıcılık",
	"Adaptability", "Time Management", "Zaman Yönetimi",
	"Critical Thinking", "Negotiation", "Presentation", "Sunum",
	"Project Management", "Proje Yönetimi", "Decision Making",
	"Strategic Thinking", "Detail-Oriented",
}

// SpokenLanguages resolves native and English names to a canonical label.
var SpokenLanguages = Table[string]{
	{Keywords: []string{"english", "ingilizce", "i̇ngilizce"}, Value: "English"},
	{Keywords: []string{"german", "almanca", "deutsch"}, Value: "German"},
	{Keywords: []string{"french", "fransızca", "français"}, Value: "French"},
	{Keywords: []string{"spanish", "ispanyolca", "español"}, Value: "Spanish"},
	{Keywords: []string{"italian", "italyanca", "italiano"}, Value: "Italian"},
	{Keywords: []string{"russian", "rusça"}, Value: "Russian"},
	{Keywords: []string{"arabic", "arapça"}, Value: "Arabic"},
	{Keywords: []string{"japanese", "japonca"}, Value: "Japanese"},
	{Keywords: []string{"chinese", "çince", "mandarin"}, Value: "Chinese"},
	{Keywords: []string{"korean", "korece"}, Value: "Korean"},
	{Keywords: []string{"portuguese", "portekizce"}, Value: "Portuguese"},
	{Keywords: []string{"dutch", "felemenkçe", "hollandaca"}, Value: "Dutch"},
	{Keywords: []string{"polish", "lehçe"}, Value: "Polish"},
	{Keywords: []string{"hindi", "hintçe"}, Value: "Hindi"},
	{Keywords: []string{"turkish", "türkçe"}, Value: "Turkish"},
}

// ProficiencyLevels resolves level tokens (either order around the language
// mention) to a canonical label. CEFR codes first so "B2" never falls
// through to a word match.
var ProficiencyLevels = Table[string]{
	{Keywords: []string{"a1"}, Value: "A1"},
	{Keywords: []string{"a2"}, Value: "A2"},
	{Keywords: []string{"b1"}, Value: "B1"},
	{Keywords: []string{"b2"}, Value: "B2"},
	{Keywords: []string{"c1"}, Value: "C1"},
	{Keywords: []string{"c2"}, Value: "C2"},
	{Keywords: []string{"native", "anadil", "ana dil", "mother tongue"}, Value: "Native"},
	{Keywords: []string{"fluent", "akıcı"}, Value: "Fluent"},
	{Keywords: []string{"advanced", "ileri"}, Value: "Advanced"},
	{Keywords: []string{"intermediate", "orta"}, Value: "Intermediate"},
	{Keywords: []string{"beginner", "başlangıç", "elementary", "basic"}, Value: "Beginner"},
}

// Abbreviations expands shorthand before technology matching.
var Abbreviations = map[string]string{
	"js":   "javascript",
	"ts":   "typescript",
	"k8s":  "kubernetes",
	"tf":   "tensorflow",
	"ml":   "machine learning",
	"dl":   "deep learning",
	"cv":   "computer vision",
	"pg":   "postgresql",
	"py":   "python",
	"aws":  "aws",
	"gcp":  "gcp",
	"db":   "database",
	"oop":  "object oriented programming",
	"cicd": "ci/cd",
}

// CertificationKeywords qualifies a line as a certification.
var CertificationKeywords = []string{
	"certificate", "certification", "certified", "sertifika", "sertifikası",
	"specialization", "nanodegree", "diploma", "belgesi",
}

// CertificationIssuers are well-known issuers; a line naming one qualifies
// even without a certification keyword.
var CertificationIssuers = []string{
	"microsoft", "aws", "amazon", "google", "cisco", "pmi", "oracle",
	"coursera", "udemy", "udacity", "comptia", "scrum", "linux foundation",
	"red hat", "ibm", "salesforce", "nvidia",
}

// TitleDenyList filters generic document titles out of name detection.
var TitleDenyList = []string{
	"curriculum vitae", "resume", "cv", "özgeçmiş", "profile", "profil",
	"personal information", "kişisel bilgiler", "contact", "iletişim",
}

// KnownCities backs location detection when no labeled location line exists.
var KnownCities = []string{
	"İstanbul", "Istanbul", "Ankara", "İzmir", "Izmir", "Bursa", "Antalya",
	"Adana", "Kocaeli", "Türkiye", "Turkey", "London", "Berlin", "Munich",
	"Amsterdam", "Paris", "New York", "San Francisco", "Germany",
	"Netherlands", "United States", "USA", "England", "UK", "France",
}

// Stopwords filters keyword extraction (bilingual).
var Stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"ve", "veya", "ile", "ya", "the", "a", "an", "and", "or", "in",
		"on", "at", "to", "of", "for", "bu", "şu", "bir", "i", "you", "he",
		"she", "it", "we", "they", "my", "your", "his", "her", "our",
		"their", "am", "is", "are", "was", "were", "be", "been", "being",
		"have", "has", "had", "do", "does", "did", "will", "would",
		"should", "may", "might", "must", "can", "could", "from", "by",
		"as", "about", "between", "into", "through", "during", "before",
		"after", "above", "over", "below", "under", "ben", "sen", "biz",
		"siz", "onlar", "için", "gibi", "kadar", "daha", "çok", "ama",
		"fakat", "ancak", "de", "da", "ki", "mi",
	} {
		Stopwords[w] = struct{}{}
	}
}
