package jobs

// Fixed vocabulary tables for requirement inference. Kept as data, not
// control flow, so extending them never touches the matching logic.

// matchStopWords filters common English words that add noise to keyword matching.
var matchStopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true, "he": true,
	"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
	"that": true, "the": true, "to": true, "was": true, "were": true,
	"will": true, "with": true, "this": true, "but": true, "they": true,
	"have": true, "had": true, "what": true, "when": true, "where": true,
	"who": true, "which": true, "why": true, "can": true, "cannot": true,
	"could": true, "should": true, "would": true, "may": true, "might": true,
	"must": true, "shall": true, "into": true, "if": true, "then": true,
	"else": true, "than": true, "too": true, "very": true,
}

// singleWordSkills is the single-token technical-term vocabulary matched
// against tokenized job descriptions.
var singleWordSkills = map[string]bool{
	"python": true, "java": true, "javascript": true, "react": true,
	"angular": true, "vue": true, "node": true,
	"sql": true, "mongodb": true, "postgresql": true, "mysql": true,
	"aws": true, "azure": true, "gcp": true,
	"docker": true, "kubernetes": true, "git": true, "rest": true,
	"api": true, "microservices": true,
	"html": true, "css": true, "typescript": true, "ruby": true, "php": true,
	"scala": true, "hadoop": true,
	"spark": true, "tensorflow": true, "pytorch": true, "ml": true,
	"ai": true, "devops": true, "agile": true,
	"scrum": true, "jira": true, "linux": true, "unix": true,
	"windows": true, "networking": true, "numpy": true,
	"pandas": true, "keras": true, "opencv": true, "nlp": true,
	"tableau": true, "statistics": true,
	"mathematics": true, "algorithms": true, "backend": true,
	"frontend": true, "fullstack": true,
	"ios": true, "android": true, "flutter": true, "swift": true, "kotlin": true,
}

// multiWordSkills are phrases looked up as substrings of the lowercased
// description (tokenization would tear them apart).
var multiWordSkills = []string{
	"machine learning", "deep learning", "data science", "data analysis",
	"data visualization", "data engineering", "power bi", "ci/cd",
	"web development", "mobile development", "react native",
	"artificial intelligence", "business intelligence", "cloud computing",
	"system design", "software architecture", "test automation",
	"database management", "data structures", "computer vision",
	"natural language processing", "time series analysis",
	"statistical analysis", "data modeling", "data warehousing",
	"etl processes", "version control", "agile methodology",
	"software development", "full stack", "front end", "back end",
}

// levelKeywords maps each experience level to the phrases that vote for it.
var levelKeywords = map[ExperienceLevel][]string{
	LevelEntry:     {"entry level", "junior", "graduate", "0-2 years", "fresh graduate"},
	LevelAssociate: {"associate", "1-3 years", "2-3 years"},
	LevelMid:       {"mid level", "intermediate", "3-5 years", "4-6 years"},
	LevelSenior:    {"senior", "lead", "5+ years", "6+ years", "principal"},
	LevelIntern:    {"intern", "internship", "trainee"},
}

// experienceBands maps levels to inclusive month ranges; senior is unbounded above.
var experienceBands = map[ExperienceLevel]ExperienceBand{
	LevelEntry:     {MinMonths: 0, MaxMonths: 24},
	LevelAssociate: {MinMonths: 12, MaxMonths: 36},
	LevelMid:       {MinMonths: 36, MaxMonths: 72},
	LevelSenior:    {MinMonths: 60, MaxMonths: -1},
	LevelIntern:    {MinMonths: 0, MaxMonths: 12},
}
