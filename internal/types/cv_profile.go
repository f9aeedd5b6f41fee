// Package types provides type definitions for structured data used throughout the cv-job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CVType classifies a résumé by its dominant keyword family
type CVType string

// Supported CV classifications
const (
	CVTypeTechnical CVType = "technical"
	CVTypeBusiness  CVType = "business"
	CVTypeMarketing CVType = "marketing"
	CVTypeFinance   CVType = "finance"
	CVTypeUnknown   CVType = "unknown"
)

// SkillCategories lists the fixed skill dictionary categories.
// Every CVProfile carries all of these keys, empty or not.
var SkillCategories = []string{
	"programming",
	"database",
	"framework",
	"tools",
	"cloud",
	"soft_skills",
}

// SkillHit records a dictionary skill found in résumé text and how often it occurred
type SkillHit struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// KeywordCount records a free-text keyword and its frequency
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// ExperienceEntry represents one detected work-experience period
type ExperienceEntry struct {
	Period         string  `json:"period"`          // matched date-range text
	Title          string  `json:"title"`           // job-title keyword found near the period
	EstimatedYears float64 `json:"estimated_years"` // end year minus start year, minimum 0
}

// EducationEntry represents one detected education line
type EducationEntry struct {
	Text  string `json:"text"`
	Level string `json:"level"` // bachelor, master, phd, diploma, or other
}

// CVProfile is the derived profile of a résumé, immutable once built
type CVProfile struct {
	RawText          string                `json:"raw_text"`
	SkillsByCategory map[string][]SkillHit `json:"skills_by_category"`
	SkillsFound      []string              `json:"skills_found"`
	ExperienceList   []ExperienceEntry     `json:"experience_list"`
	ExperienceYears  float64               `json:"experience_years"` // capped at 20
	CVType           CVType                `json:"cv_type"`
	SkillScore       float64               `json:"skill_score"` // 0-100
	Education        []EducationEntry      `json:"education"`
	Keywords         []KeywordCount        `json:"keywords"` // top 20 by frequency
}

// TotalSkillHits sums the occurrence counts across all categories
func (p *CVProfile) TotalSkillHits() int {
	total := 0
	for _, hits := range p.SkillsByCategory {
		for _, h := range hits {
			total += h.Count
		}
	}
	return total
}

// DistinctSkillCount returns the number of matched dictionary entries across all categories
func (p *CVProfile) DistinctSkillCount() int {
	count := 0
	for _, hits := range p.SkillsByCategory {
		count += len(hits)
	}
	return count
}

// HasSkills reports whether any dictionary skill matched
func (p *CVProfile) HasSkills() bool {
	return p.DistinctSkillCount() > 0
}
