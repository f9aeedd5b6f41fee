package accuracy

import "github.com/jonathan/cv-job-matcher/internal/types"

// Per-dimension thresholds below which a recommendation is emitted
const (
	cvTypeThreshold     = 80.0
	jobMatchThreshold   = 70.0
	skillScoreThreshold = 75.0
	experienceThreshold = 80.0
)

// recommendations derives improvement suggestions from the per-dimension
// accuracy figures.
func recommendations(dims types.DimensionAccuracy) []string {
	recs := []string{}
	if dims.CVType < cvTypeThreshold {
		recs = append(recs, "CV type classification is below target: review the type keyword families and category-to-type mapping.")
	}
	if dims.JobMatch < jobMatchThreshold {
		recs = append(recs, "Top-job matching is below target: revisit the title tables and component weights in the scorer.")
	}
	if dims.SkillScoreRange < skillScoreThreshold {
		recs = append(recs, "Skill scores are drifting out of their labeled ranges: check the skill dictionaries for missing or overly common entries.")
	}
	if dims.ExperienceLevel < experienceThreshold {
		recs = append(recs, "Experience level detection is below target: review the date-range patterns and duration estimates.")
	}
	if len(recs) == 0 {
		recs = append(recs, "All dimensions are performing well; no tuning needed.")
	}
	return recs
}
