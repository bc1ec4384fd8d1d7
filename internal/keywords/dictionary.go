package keywords

// Static dictionaries used for whole-word matching. Loaded once at package
// init and treated as immutable for the lifetime of the process.

// Skill categories recognized by the extractor.
const (
	CategoryProgramming   = "programming"
	CategoryFrameworks    = "frameworks"
	CategoryDatabases     = "databases"
	CategoryCloud         = "cloud"
	CategoryDataScience   = "dataScience"
	CategoryTools         = "tools"
	CategoryMethodologies = "methodologies"
)

var skillDictionary = map[string][]string{
	CategoryProgramming: {
		"python", "java", "javascript", "typescript", "go", "golang", "rust",
		"c++", "c#", "ruby", "php", "swift", "kotlin", "scala", "r", "perl",
		"sql", "html", "css", "bash", "shell",
	},
	CategoryFrameworks: {
		"react", "angular", "vue", "django", "flask", "spring", "express",
		"rails", "laravel", "node.js", "nodejs", ".net", "fastapi", "gin",
		"next.js", "svelte", "bootstrap", "tailwind",
	},
	CategoryDatabases: {
		"mysql", "postgresql", "postgres", "mongodb", "redis", "elasticsearch",
		"cassandra", "dynamodb", "sqlite", "oracle", "sql server", "mariadb",
		"snowflake", "bigquery",
	},
	CategoryCloud: {
		"aws", "azure", "gcp", "google cloud", "docker", "kubernetes",
		"terraform", "ansible", "jenkins", "cloudformation", "lambda",
		"ec2", "s3", "heroku", "serverless",
	},
	CategoryDataScience: {
		"machine learning", "deep learning", "data analysis", "data science",
		"nlp", "natural language processing", "computer vision", "tensorflow",
		"pytorch", "scikit-learn", "pandas", "numpy", "tableau", "power bi",
		"statistics", "data visualization", "etl", "big data", "spark", "hadoop",
	},
	CategoryTools: {
		"git", "github", "gitlab", "jira", "confluence", "slack", "figma",
		"postman", "linux", "excel", "vscode", "intellij", "grafana",
		"prometheus", "kafka", "rabbitmq", "nginx", "graphql", "rest api",
	},
	CategoryMethodologies: {
		"agile", "scrum", "kanban", "devops", "ci/cd", "tdd", "microservices",
		"waterfall", "lean", "pair programming", "code review",
		"continuous integration", "continuous deployment",
	},
}

// actionVerbs is the fixed verb list matched whole-word against resume text.
var actionVerbs = []string{
	"achieved", "managed", "led", "developed", "created", "implemented",
	"designed", "launched", "improved", "increased", "decreased", "reduced",
	"negotiated", "coordinated", "supervised", "trained", "mentored",
	"analyzed", "built", "delivered", "established", "executed", "generated",
	"initiated", "optimized", "organized", "planned", "resolved", "streamlined",
}

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"from": {}, "up": {}, "about": {}, "into": {}, "through": {}, "during": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {},
	"did": {}, "will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "can": {}, "shall": {}, "must": {}, "this": {}, "that": {},
	"these": {}, "those": {}, "i": {}, "you": {}, "he": {}, "she": {},
	"it": {}, "we": {}, "they": {}, "them": {}, "their": {}, "there": {},
	"then": {}, "than": {}, "also": {}, "as": {}, "if": {}, "so": {},
	"not": {}, "no": {}, "all": {}, "any": {}, "each": {}, "our": {},
	"your": {}, "my": {}, "his": {}, "her": {}, "its": {}, "who": {},
	"what": {}, "which": {}, "when": {}, "where": {}, "how": {}, "why": {},
	"more": {}, "most": {}, "other": {}, "some": {}, "such": {}, "only": {},
	"own": {}, "same": {}, "too": {}, "very": {}, "just": {}, "both": {},
	"between": {}, "after": {}, "before": {}, "above": {}, "below": {},
	"over": {}, "under": {}, "out": {}, "off": {}, "again": {}, "further": {},
	"once": {}, "here": {}, "now": {}, "including": {}, "etc": {},
}

// Degree ranks form a fixed total order used by the education scorer.
const (
	DegreeNone       = ""
	DegreeAssociates = "associates"
	DegreeBachelors  = "bachelors"
	DegreeMasters    = "masters"
	DegreePhD        = "phd"
)

var degreeRanks = map[string]int{
	DegreeNone:       0,
	DegreeAssociates: 1,
	DegreeBachelors:  2,
	DegreeMasters:    3,
	DegreePhD:        4,
}

// DegreeRank returns the rank of a degree tag; unknown tags rank 0.
func DegreeRank(degree string) int {
	return degreeRanks[degree]
}

var fieldsOfStudy = []string{
	"computer science", "software engineering", "information technology",
	"information systems", "data science", "electrical engineering",
	"mechanical engineering", "civil engineering", "engineering",
	"mathematics", "statistics", "physics", "chemistry", "biology",
	"business administration", "business", "finance", "accounting",
	"economics", "marketing", "communications", "psychology", "design",
}

// IsStopWord reports whether the lowercase token is in the stop-word set.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}

// SkillCategories returns the category names in a fixed order.
func SkillCategories() []string {
	return []string{
		CategoryProgramming,
		CategoryFrameworks,
		CategoryDatabases,
		CategoryCloud,
		CategoryDataScience,
		CategoryTools,
		CategoryMethodologies,
	}
}
