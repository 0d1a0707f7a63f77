package extractor

// Static bilingual (DE/EN) vocabulary tables. These are read-only after
// process start and safe to share across concurrent pipeline invocations.

// seniorityCue maps a cue token onto the closed seniority vocabulary
// {Junior, Mid, Senior, Lead}. More specific cues come first.
type seniorityCue struct {
	pattern string
	label   string
}

var seniorityCues = []seniorityCue{
	{`\bprincipal\b`, "Lead"},
	{`\bteamleiter(?:in)?\b`, "Lead"},
	{`\bleitung\b`, "Lead"},
	{`\blead\b`, "Lead"},
	{`\bsenior\b`, "Senior"},
	{`\bmedior\b`, "Mid"},
	{`\bmid[- ]level\b`, "Mid"},
	{`\bmid\b`, "Mid"},
	{`\bjunior\b`, "Junior"},
	{`\bjr\.?\b`, "Junior"},
}

// titleKeywords are role nouns that anchor a job-title phrase. Matching is
// by token equality or suffix so that German compounds like
// "Softwareentwickler" still hit "entwickler".
var titleKeywords = []string{
	"engineer",
	"entwickler",
	"entwicklerin",
	"developer",
	"manager",
	"managerin",
	"analyst",
	"analystin",
	"consultant",
	"scientist",
	"architect",
	"architekt",
	"specialist",
	"spezialist",
	"designer",
	"owner",
	"leiter",
	"leiterin",
	"administrator",
	"berater",
	"beraterin",
}

// cue is a lowercase substring mapped to a normalized label. Lookup picks
// the cue with the earliest occurrence in the text.
type cue struct {
	token string
	label string
}

var employmentCues = []cue{
	{"vollzeit", "Full-time"},
	{"full-time", "Full-time"},
	{"full time", "Full-time"},
	{"teilzeit", "Part-time"},
	{"part-time", "Part-time"},
	{"part time", "Part-time"},
	{"werkstudent", "Working Student"},
	{"working student", "Working Student"},
	{"praktik", "Internship"},
	{"internship", "Internship"},
	{"freelanc", "Freelance"},
	{"contractor", "Contractor"},
}

var contractCues = []cue{
	{"unbefrist", "Permanent"},
	{"permanent", "Permanent"},
	{"festanstellung", "Permanent"},
	{"befrist", "Fixed-term"},
	{"fixed-term", "Fixed-term"},
	{"fixed term", "Fixed-term"},
	{"zeitvertrag", "Fixed-term"},
}

// cityEntry maps the aliases a city appears under (DE/EN spellings) onto
// one canonical name shared with the enricher's region tables.
type cityEntry struct {
	canonical string
	aliases   []string
}

var knownCities = []cityEntry{
	{"Berlin", []string{"berlin"}},
	{"Munich", []string{"munich", "münchen", "muenchen"}},
	{"Hamburg", []string{"hamburg"}},
	{"Frankfurt", []string{"frankfurt"}},
	{"Cologne", []string{"cologne", "köln", "koeln"}},
	{"Stuttgart", []string{"stuttgart"}},
	{"Düsseldorf", []string{"düsseldorf", "duesseldorf"}},
	{"Leipzig", []string{"leipzig"}},
	{"Dresden", []string{"dresden"}},
	{"Nuremberg", []string{"nuremberg", "nürnberg", "nuernberg"}},
	{"Vienna", []string{"vienna", "wien"}},
	{"Zurich", []string{"zurich", "zürich", "zuerich"}},
	{"London", []string{"london"}},
	{"Paris", []string{"paris"}},
	{"Amsterdam", []string{"amsterdam"}},
	{"New York", []string{"new york"}},
	{"Sofia", []string{"sofia"}},
	{"Krakow", []string{"krakow", "kraków", "krakau"}},
	{"Warsaw", []string{"warsaw", "warschau", "warszawa"}},
}

// languageEntry maps DE/EN spellings of a required language onto its
// canonical English name.
type languageEntry struct {
	canonical string
	aliases   []string
}

var knownLanguages = []languageEntry{
	{"German", []string{"german", "deutsch"}},
	{"English", []string{"english", "englisch"}},
	{"French", []string{"french", "französisch", "franzoesisch"}},
	{"Spanish", []string{"spanish", "spanisch"}},
	{"Italian", []string{"italian", "italienisch"}},
	{"Dutch", []string{"dutch", "niederländisch", "niederlaendisch"}},
	{"Polish", []string{"polish", "polnisch"}},
	{"Portuguese", []string{"portuguese", "portugiesisch"}},
	{"Russian", []string{"russian", "russisch"}},
	{"Mandarin", []string{"mandarin", "chinese", "chinesisch"}},
}

// responsibilityHeadings mark the start of a tasks section (lowercase
// prefixes).
var responsibilityHeadings = []string{
	"aufgaben",
	"deine aufgaben",
	"ihre aufgaben",
	"was dich erwartet",
	"responsibilities",
	"your responsibilities",
	"your tasks",
	"tasks",
	"what you will do",
	"what you'll do",
}

// sectionHeadings end a running tasks section when they start a line.
var sectionHeadings = []string{
	"anforderungen",
	"dein profil",
	"ihr profil",
	"profil",
	"qualifikation",
	"requirements",
	"qualifications",
	"your profile",
	"benefits",
	"wir bieten",
	"what we offer",
	"about us",
	"über uns",
	"kontakt",
	"contact",
}

// skillVocabulary is the static bilingual skill table. Canonical casing is
// preserved in the output; matching is case-insensitive with manual word
// boundaries so entries like "C++" and "C#" still match.
var skillVocabulary = []string{
	"Python",
	"Pandas",
	"NumPy",
	"SQL",
	"PostgreSQL",
	"MySQL",
	"MongoDB",
	"Redis",
	"Java",
	"Kotlin",
	"JavaScript",
	"TypeScript",
	"React",
	"Angular",
	"Vue",
	"Node.js",
	"C++",
	"C#",
	"Golang",
	"Rust",
	"PHP",
	"Ruby",
	"Scala",
	"Docker",
	"Kubernetes",
	"Terraform",
	"Ansible",
	"AWS",
	"Azure",
	"GCP",
	"Linux",
	"Git",
	"Kafka",
	"Spark",
	"Hadoop",
	"Airflow",
	"Tableau",
	"Power BI",
	"Excel",
	"SAP",
	"Salesforce",
	"Jira",
	"Scrum",
	"Kanban",
	"Machine Learning",
	"Deep Learning",
	"NLP",
	"Projektmanagement",
	"Project Management",
}
