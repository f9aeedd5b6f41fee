package extraction

import (
	"github.com/jonathan/cv-job-matcher/internal/types"
)

const (
	maxSkillScore      = 100.0
	maxExperienceYears = 20.0
)

// technicalCategories are the skill categories that signal a technical CV
var technicalCategories = []string{"programming", "database", "framework", "tools", "cloud"}

// BuildProfile runs every extractor over the text and aggregates the results
// into a CVProfile. It never fails: empty or unrecognizable text yields a
// valid zeroed profile so the matching pipeline always has an input.
func (e *Extractor) BuildProfile(text string) *types.CVProfile {
	profile := &types.CVProfile{
		RawText:          text,
		SkillsByCategory: e.Skills(text),
		ExperienceList:   e.Experience(text),
		Education:        e.Education(text),
		Keywords:         e.Keywords(text),
		SkillsFound:      []string{},
	}

	totalHits := 0
	distinct := 0
	for _, category := range types.SkillCategories {
		for _, hit := range profile.SkillsByCategory[category] {
			profile.SkillsFound = append(profile.SkillsFound, hit.Skill)
			totalHits += hit.Count
			distinct++
		}
	}

	if distinct > 0 {
		score := float64(totalHits) / float64(distinct) * 10
		if score > maxSkillScore {
			score = maxSkillScore
		}
		profile.SkillScore = score
	}

	years := 0.0
	for _, entry := range profile.ExperienceList {
		years += entry.EstimatedYears
	}
	if years > maxExperienceYears {
		years = maxExperienceYears
	}
	if years < 0 {
		years = 0
	}
	profile.ExperienceYears = years

	profile.CVType = e.classifyCVType(text, profile.SkillsByCategory)

	return profile
}

// classifyCVType picks the CV type with the plurality of keyword hits.
// Technical hits come from the five technical skill categories; business,
// marketing, and finance hits come from their keyword families scanned over
// the raw text. Unknown means nothing matched at all.
func (e *Extractor) classifyCVType(text string, skills map[string][]types.SkillHit) types.CVType {
	scores := map[types.CVType]int{}

	for _, category := range technicalCategories {
		for _, hit := range skills[category] {
			scores[types.CVTypeTechnical] += hit.Count
		}
	}

	// Soft skills alone do not make a CV technical; profiles dominated by
	// them read as managerial, so they count toward business.
	for _, hit := range skills["soft_skills"] {
		scores[types.CVTypeBusiness] += hit.Count
	}

	for family, patterns := range familyPatterns {
		total := 0
		for _, p := range patterns {
			total += len(p.FindAllStringIndex(text, -1))
		}
		scores[types.CVType(family)] += total
	}

	// Plurality wins; ties resolve in a fixed order so classification
	// stays deterministic.
	order := []types.CVType{
		types.CVTypeTechnical,
		types.CVTypeBusiness,
		types.CVTypeMarketing,
		types.CVTypeFinance,
	}
	best := types.CVTypeUnknown
	bestScore := 0
	for _, t := range order {
		if scores[t] > bestScore {
			best = t
			bestScore = scores[t]
		}
	}
	return best
}
