// Package extraction derives a structured CV profile from raw résumé text.
package extraction

import (
	"regexp"
	"strings"
)

// skillDictionaries holds the fixed keyword dictionary for each of the six
// skill categories. Matching is case-insensitive with word boundaries.
var skillDictionaries = map[string][]string{
	"programming": {
		"javascript", "typescript", "python", "java", "php", "c++", "c#",
		"golang", "ruby", "swift", "kotlin", "rust", "scala", "perl",
		"dart", "sql", "html", "css", "elixir",
	},
	"database": {
		"mysql", "postgresql", "mongodb", "redis", "oracle", "sqlite",
		"elasticsearch", "cassandra", "mariadb", "dynamodb", "firebase",
		"neo4j", "couchdb", "influxdb", "memcached",
	},
	"framework": {
		"react", "angular", "vue", "laravel", "django", "flask", "spring",
		"express", "node.js", "next.js", "nuxt", "rails", "fastapi",
		"svelte", "flutter", ".net", "bootstrap", "tailwind",
	},
	"tools": {
		"git", "docker", "kubernetes", "jenkins", "jira", "figma",
		"postman", "webpack", "terraform", "ansible", "grafana", "excel",
		"power bi", "tableau", "linux", "bash",
	},
	"cloud": {
		"aws", "azure", "gcp", "google cloud", "heroku", "digitalocean",
		"vercel", "netlify", "cloudflare", "lambda", "s3", "ec2",
		"amazon web services", "openstack",
	},
	"soft_skills": {
		"leadership", "communication", "teamwork", "problem solving",
		"time management", "adaptability", "creativity", "critical thinking",
		"collaboration", "presentation", "mentoring", "negotiation",
		"public speaking", "decision making", "attention to detail",
	},
}

// stopwords excluded from free-text keyword counting
var stopwords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true, "in": true,
	"on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true,
}

// jobTitleKeywords are scanned near date ranges to guess a position title
var jobTitleKeywords = []string{
	"developer", "engineer", "programmer", "analyst", "manager",
	"director", "coordinator", "specialist", "consultant", "designer",
	"architect",
}

// educationKeywords mark a line as an education mention
var educationKeywords = []string{
	"university", "college", "institute", "school", "bachelor", "master",
	"phd", "diploma", "degree", "certification", "course",
}

// typeKeywordFamilies drive CV classification for the non-technical types.
// Technical classification comes from the five technical skill categories.
var typeKeywordFamilies = map[string][]string{
	"business": {
		"management", "strategy", "operations", "sales", "negotiation",
		"stakeholder", "procurement", "logistics", "budgeting", "consulting",
	},
	"marketing": {
		"marketing", "seo", "campaign", "branding", "advertising",
		"copywriting", "social media", "engagement", "content strategy",
		"influencer",
	},
	"finance": {
		"accounting", "finance", "audit", "tax", "payroll",
		"reconciliation", "bookkeeping", "treasury", "financial reporting",
		"forecasting",
	},
}

// keywordPattern compiles a case-insensitive literal pattern with word
// boundaries. Boundaries are only attached where the keyword starts or ends
// with a word character, so entries like "c++" or ".net" still match.
func keywordPattern(keyword string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(keyword)
	isWord := func(b byte) bool {
		return b == '_' ||
			(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
			(b >= '0' && b <= '9')
	}
	var sb strings.Builder
	sb.WriteString("(?i)")
	if isWord(keyword[0]) {
		sb.WriteString(`\b`)
	}
	sb.WriteString(quoted)
	if isWord(keyword[len(keyword)-1]) {
		sb.WriteString(`\b`)
	}
	return regexp.MustCompile(sb.String())
}

// compiled per-keyword patterns, built once at startup and never mutated
var (
	skillPatterns  = map[string]map[string]*regexp.Regexp{}
	familyPatterns = map[string]map[string]*regexp.Regexp{}
)

func init() {
	for category, keywords := range skillDictionaries {
		skillPatterns[category] = make(map[string]*regexp.Regexp, len(keywords))
		for _, kw := range keywords {
			skillPatterns[category][kw] = keywordPattern(kw)
		}
	}
	for family, keywords := range typeKeywordFamilies {
		familyPatterns[family] = make(map[string]*regexp.Regexp, len(keywords))
		for _, kw := range keywords {
			familyPatterns[family][kw] = keywordPattern(kw)
		}
	}
}
