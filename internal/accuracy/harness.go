package accuracy

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/cv-job-matcher/internal/types"
)

// ProfileFunc builds a CV profile from raw résumé text
type ProfileFunc func(text string) *types.CVProfile

// RankFunc ranks a job catalog against a profile
type RankFunc func(profile *types.CVProfile, jobs []types.JobListing) []types.MatchResult

// passThreshold is the minimum per-sample score (mean of the four dimension
// scores) for a sample to count as passed.
const passThreshold = 0.25

// Harness runs the full pipeline over a labeled dataset. The extractor and
// scorer are injected so the harness never reaches into their internals.
type Harness struct {
	profile ProfileFunc
	rank    RankFunc
	dataset []Sample
	catalog []types.JobListing
	now     func() time.Time
}

// Option configures a Harness
type Option func(*Harness)

// WithDataset replaces the default labeled dataset
func WithDataset(samples []Sample) Option {
	return func(h *Harness) { h.dataset = samples }
}

// WithCatalog replaces the default job catalog
func WithCatalog(jobs []types.JobListing) Option {
	return func(h *Harness) { h.catalog = jobs }
}

// WithClock overrides the report timestamp clock
func WithClock(now func() time.Time) Option {
	return func(h *Harness) { h.now = now }
}

// NewHarness creates a Harness around the given pipeline functions
func NewHarness(profile ProfileFunc, rank RankFunc, opts ...Option) *Harness {
	h := &Harness{
		profile: profile,
		rank:    rank,
		dataset: DefaultDataset(),
		catalog: DefaultCatalog(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// dimensionScores holds the four per-sample dimension scores, each 0..1
type dimensionScores struct {
	cvType     float64
	jobMatch   float64
	skillScore float64
	experience float64
}

func (d dimensionScores) overall() float64 {
	return (d.cvType + d.jobMatch + d.skillScore + d.experience) / 4
}

// Run executes every sample and aggregates the report. A failure inside one
// sample is recorded on that sample and the run continues.
func (h *Harness) Run() *types.AccuracyReport {
	start := h.now()
	report := &types.AccuracyReport{
		Results: make([]types.TestCaseResult, 0, len(h.dataset)),
	}

	var dims dimensionScores
	for _, sample := range h.dataset {
		result, scores := h.runSample(sample)
		report.Results = append(report.Results, result)
		if result.Passed {
			report.Summary.PassedTests++
		} else {
			report.Summary.FailedTests++
		}
		dims.cvType += scores.cvType
		dims.jobMatch += scores.jobMatch
		dims.skillScore += scores.skillScore
		dims.experience += scores.experience
	}

	total := len(h.dataset)
	report.Summary.TotalTests = total
	if total > 0 {
		report.Summary.OverallAccuracy = float64(report.Summary.PassedTests) / float64(total) * 100
		report.Dimensions = types.DimensionAccuracy{
			CVType:          dims.cvType / float64(total) * 100,
			JobMatch:        dims.jobMatch / float64(total) * 100,
			SkillScoreRange: dims.skillScore / float64(total) * 100,
			ExperienceLevel: dims.experience / float64(total) * 100,
		}
	}
	report.Summary.Timestamp = start
	report.Summary.DurationMs = h.now().Sub(start).Milliseconds()
	report.Recommendations = recommendations(report.Dimensions)

	return report
}

// runSample runs the pipeline for one sample and compares it to the label.
// Panics are converted into a failed result so one bad fixture cannot take
// down the whole run.
func (h *Harness) runSample(sample Sample) (result types.TestCaseResult, scores dimensionScores) {
	result = types.TestCaseResult{
		TestID:   sample.ID,
		Expected: sample.Expected,
	}

	defer func() {
		if r := recover(); r != nil {
			result.Passed = false
			result.OverallScore = 0
			result.Actual = types.TestObservation{Error: fmt.Sprintf("sample panicked: %v", r)}
			scores = dimensionScores{}
		}
	}()

	profile := h.profile(sample.CVText)
	matches := h.rank(profile, h.catalog)

	topTitle := ""
	if len(matches) > 0 {
		topTitle = matches[0].Job.Title
	}

	result.Actual = types.TestObservation{
		CVType:          profile.CVType,
		TopJobTitle:     topTitle,
		SkillScore:      profile.SkillScore,
		ExperienceLevel: levelFromYears(profile.ExperienceYears),
	}

	if result.Actual.CVType == sample.Expected.CVType {
		scores.cvType = 1
	}
	if titlesMatch(topTitle, sample.Expected.TopJobTitle) {
		scores.jobMatch = 1
	}
	if inWidenedRange(profile.SkillScore, sample.Expected.SkillScoreMin, sample.Expected.SkillScoreMax) {
		scores.skillScore = 1
	}
	scores.experience = experienceLevelScore(result.Actual.ExperienceLevel, sample.Expected.ExperienceLevel)

	result.OverallScore = scores.overall()
	result.Passed = result.OverallScore >= passThreshold
	return result, scores
}

// titlesMatch compares job titles loosely: exact, substring in either
// direction, or at least 60% word overlap.
func titlesMatch(actual, expected string) bool {
	a := strings.ToLower(strings.TrimSpace(actual))
	e := strings.ToLower(strings.TrimSpace(expected))
	if a == "" || e == "" {
		return false
	}
	if a == e || strings.Contains(a, e) || strings.Contains(e, a) {
		return true
	}
	return wordOverlapRatio(a, e) >= 0.6
}

// wordOverlapRatio is the fraction of expected-title words present in the
// actual title.
func wordOverlapRatio(actual, expected string) float64 {
	expWords := strings.Fields(expected)
	if len(expWords) == 0 {
		return 0
	}
	actWords := map[string]bool{}
	for _, w := range strings.Fields(actual) {
		actWords[w] = true
	}
	matched := 0
	for _, w := range expWords {
		if actWords[w] {
			matched++
		}
	}
	return float64(matched) / float64(len(expWords))
}

// inWidenedRange checks a skill score against the labeled range with the
// tolerance widened: 70% of the minimum up to 120% of the maximum.
func inWidenedRange(score, min, max float64) bool {
	return score >= min*0.7 && score <= max*1.2
}

// experienceLevels in ascending order, used for adjacency credit
var experienceLevels = []string{"junior", "mid-level", "senior"}

// levelFromYears buckets experience years into the labeled levels
func levelFromYears(years float64) string {
	switch {
	case years < 2:
		return "junior"
	case years <= 5:
		return "mid-level"
	default:
		return "senior"
	}
}

// experienceLevelScore gives full credit for an exact level match and half
// credit for an adjacent level.
func experienceLevelScore(actual, expected string) float64 {
	if actual == expected {
		return 1
	}
	ai, ei := -1, -1
	for i, level := range experienceLevels {
		if level == actual {
			ai = i
		}
		if level == expected {
			ei = i
		}
	}
	if ai >= 0 && ei >= 0 && abs(ai-ei) == 1 {
		return 0.5
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
