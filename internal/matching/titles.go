// Package matching scores and ranks job listings against a CV profile.
package matching

import "github.com/jonathan/cv-job-matcher/internal/types"

// titleMap holds the job titles most strongly associated with a CV type.
// Primary titles are the canonical roles; secondary titles are adjacent ones.
type titleMap struct {
	Primary   []string
	Secondary []string
}

// typeTitles maps each CV type to its primary and secondary job titles.
// Title comparison is a case-insensitive substring check in either direction.
var typeTitles = map[types.CVType]titleMap{
	types.CVTypeTechnical: {
		Primary: []string{
			"software engineer", "software developer", "backend developer",
			"frontend developer", "full stack developer", "web developer",
		},
		Secondary: []string{
			"devops engineer", "data engineer", "mobile developer",
			"qa engineer", "it support",
		},
	},
	types.CVTypeBusiness: {
		Primary: []string{
			"business analyst", "product manager", "project manager",
			"operations manager", "account manager",
		},
		Secondary: []string{
			"sales executive", "business development", "hr generalist",
			"management consultant",
		},
	},
	types.CVTypeMarketing: {
		Primary: []string{
			"digital marketing specialist", "marketing manager",
			"content writer", "seo specialist", "social media specialist",
		},
		Secondary: []string{
			"brand manager", "copywriter", "growth marketer",
			"public relations officer",
		},
	},
	types.CVTypeFinance: {
		Primary: []string{
			"accountant", "financial analyst", "finance manager",
			"auditor", "tax specialist",
		},
		Secondary: []string{
			"bookkeeper", "treasury analyst", "credit analyst",
			"payroll specialist",
		},
	},
}

// genericTypeWords back up the title tables: when no mapped title matches,
// the job title is scanned for these per-type words.
var genericTypeWords = map[types.CVType][]string{
	types.CVTypeTechnical: {
		"developer", "engineer", "programmer", "software", "technical",
		"devops", "data", "infrastructure",
	},
	types.CVTypeBusiness: {
		"manager", "analyst", "consultant", "operations", "sales",
		"business", "product", "strategy",
	},
	types.CVTypeMarketing: {
		"marketing", "brand", "content", "seo", "social", "campaign",
		"growth", "communications",
	},
	types.CVTypeFinance: {
		"finance", "accounting", "accountant", "audit", "tax", "treasury",
		"payroll", "financial",
	},
}
