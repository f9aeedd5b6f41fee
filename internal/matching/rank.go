package matching

import (
	"sort"

	"github.com/jonathan/cv-job-matcher/internal/types"
)

const (
	// MinMatchScore is the score a job must reach to appear in results.
	MinMatchScore = 25
	// MaxResults caps how many matches a ranking run returns.
	MaxResults = 5
)

// RankJobs scores every job against the profile, sorts descending by score,
// filters out scores below MinMatchScore, and returns at most MaxResults
// matches. The ordering is deterministic: ties keep catalog order.
func (m *Matcher) RankJobs(profile *types.CVProfile, jobs []types.JobListing) []types.MatchResult {
	results := make([]types.MatchResult, 0, len(jobs))
	for _, job := range jobs {
		score, reasons := m.ScoreJob(profile, job)
		if score < MinMatchScore {
			continue
		}
		results = append(results, types.MatchResult{
			Job:          job,
			MatchScore:   score,
			MatchReasons: reasons,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}
