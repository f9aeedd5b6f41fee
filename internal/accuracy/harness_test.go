package accuracy

import (
	"strings"
	"testing"
	"time"

	"github.com/jonathan/cv-job-matcher/internal/extraction"
	"github.com/jonathan/cv-job-matcher/internal/matching"
	"github.com/jonathan/cv-job-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func newPipelineHarness(opts ...Option) *Harness {
	ex := extraction.NewExtractor(extraction.WithClock(fixedClock))
	m := matching.NewMatcher()
	opts = append(opts, WithClock(fixedClock))
	return NewHarness(ex.BuildProfile, m.RankJobs, opts...)
}

func TestRun_DefaultDataset(t *testing.T) {
	h := newPipelineHarness()
	report := h.Run()

	require.NotNil(t, report)
	assert.Equal(t, len(DefaultDataset()), report.Summary.TotalTests)
	assert.Equal(t, report.Summary.TotalTests,
		report.Summary.PassedTests+report.Summary.FailedTests)
	assert.Len(t, report.Results, report.Summary.TotalTests)
	assert.NotEmpty(t, report.Recommendations)

	// The labeled dataset was built against this pipeline; every sample
	// should clear the pass threshold.
	for _, r := range report.Results {
		assert.True(t, r.Passed, "sample %s failed: %+v", r.TestID, r.Actual)
	}
	assert.Equal(t, 100.0, report.Summary.OverallAccuracy)
}

func TestRun_RepeatedRunsAreIdentical(t *testing.T) {
	h := newPipelineHarness()

	first := h.Run()
	second := h.Run()

	assert.Equal(t, first.Summary.OverallAccuracy, second.Summary.OverallAccuracy)
	assert.Equal(t, first.Dimensions, second.Dimensions)
	assert.Equal(t, first.Results, second.Results)
}

func TestRun_PanickingSampleIsRecordedNotFatal(t *testing.T) {
	panicOn := "boom"
	profileFn := func(text string) *types.CVProfile {
		if strings.Contains(text, panicOn) {
			panic("extractor exploded")
		}
		return &types.CVProfile{CVType: types.CVTypeTechnical}
	}
	rankFn := func(_ *types.CVProfile, _ []types.JobListing) []types.MatchResult {
		return nil
	}

	samples := []Sample{
		{ID: "bad", CVText: "boom", Expected: types.TestExpectation{CVType: types.CVTypeTechnical}},
		{ID: "good", CVText: "fine", Expected: types.TestExpectation{
			CVType:          types.CVTypeTechnical,
			ExperienceLevel: "junior",
		}},
	}

	h := NewHarness(profileFn, rankFn, WithDataset(samples), WithClock(fixedClock))
	report := h.Run()

	require.Len(t, report.Results, 2)
	bad := report.Results[0]
	assert.False(t, bad.Passed)
	assert.Equal(t, 0.0, bad.OverallScore)
	assert.Contains(t, bad.Actual.Error, "extractor exploded")

	good := report.Results[1]
	assert.True(t, good.Passed)
}

func TestRun_EmptyDataset(t *testing.T) {
	h := newPipelineHarness(WithDataset(nil))
	report := h.Run()

	assert.Equal(t, 0, report.Summary.TotalTests)
	assert.Equal(t, 0.0, report.Summary.OverallAccuracy)
	assert.Empty(t, report.Results)
}

func TestTitlesMatch(t *testing.T) {
	assert.True(t, titlesMatch("Backend Developer", "Backend Developer"))
	assert.True(t, titlesMatch("Senior Backend Developer", "Backend Developer"))
	assert.True(t, titlesMatch("Backend Developer", "Senior Backend Developer"))
	// 2 of 3 expected words present
	assert.True(t, titlesMatch("junior fullstack web developer", "senior web developer"))
	assert.False(t, titlesMatch("Accountant", "Backend Developer"))
	assert.False(t, titlesMatch("", "Backend Developer"))
}

func TestInWidenedRange(t *testing.T) {
	assert.True(t, inWidenedRange(7, 10, 30))  // 70% of min
	assert.True(t, inWidenedRange(36, 10, 30)) // 120% of max
	assert.False(t, inWidenedRange(6.9, 10, 30))
	assert.False(t, inWidenedRange(36.1, 10, 30))
	assert.True(t, inWidenedRange(0, 0, 15))
}

func TestLevelFromYears(t *testing.T) {
	assert.Equal(t, "junior", levelFromYears(0))
	assert.Equal(t, "junior", levelFromYears(1.5))
	assert.Equal(t, "mid-level", levelFromYears(2))
	assert.Equal(t, "mid-level", levelFromYears(5))
	assert.Equal(t, "senior", levelFromYears(6))
}

func TestExperienceLevelScore_AdjacencyCredit(t *testing.T) {
	assert.Equal(t, 1.0, experienceLevelScore("junior", "junior"))
	assert.Equal(t, 0.5, experienceLevelScore("junior", "mid-level"))
	assert.Equal(t, 0.5, experienceLevelScore("senior", "mid-level"))
	assert.Equal(t, 0.0, experienceLevelScore("junior", "senior"))
	assert.Equal(t, 0.0, experienceLevelScore("", "junior"))
}

func TestRecommendations_ThresholdRules(t *testing.T) {
	recs := recommendations(types.DimensionAccuracy{
		CVType:          50,
		JobMatch:        50,
		SkillScoreRange: 50,
		ExperienceLevel: 50,
	})
	assert.Len(t, recs, 4)

	recs = recommendations(types.DimensionAccuracy{
		CVType:          100,
		JobMatch:        100,
		SkillScoreRange: 100,
		ExperienceLevel: 100,
	})
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "performing well")
}

func TestPrintReport_RendersSections(t *testing.T) {
	h := newPipelineHarness()
	report := h.Run()

	var sb strings.Builder
	NewPrinter(&sb).PrintReport(report)
	out := sb.String()

	assert.Contains(t, out, "ACCURACY REPORT")
	assert.Contains(t, out, "PER-TEST RESULTS")
	assert.Contains(t, out, "RECOMMENDATIONS")
}
