package matching

import (
	"testing"

	"github.com/jonathan/cv-job-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReasons_ScoreBands(t *testing.T) {
	m := NewMatcher()
	profile := &types.CVProfile{}
	job := types.JobListing{Title: "Backend Developer"}

	reasons := m.buildReasons(profile, job, 85, nil)
	require.NotEmpty(t, reasons)
	assert.Equal(t, "Excellent match for your profile", reasons[0])

	reasons = m.buildReasons(profile, job, 70, nil)
	require.NotEmpty(t, reasons)
	assert.Equal(t, "Good match for your profile", reasons[0])

	reasons = m.buildReasons(profile, job, 40, nil)
	assert.Empty(t, reasons)
}

func TestBuildReasons_ExperienceMentionFromText(t *testing.T) {
	m := NewMatcher()
	profile := &types.CVProfile{
		RawText: "I worked as data analyst at a bank.",
	}

	reasons := m.buildReasons(profile, types.JobListing{Title: "Clerk"}, 40, nil)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "data analyst")
}

func TestBuildReasons_IndonesianExperiencePattern(t *testing.T) {
	m := NewMatcher()
	profile := &types.CVProfile{
		RawText: "Memiliki pengalaman sebagai akuntan senior.",
	}

	reasons := m.buildReasons(profile, types.JobListing{Title: "Clerk"}, 40, nil)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "akuntan senior")
}

func TestBuildReasons_SkillListCappedAtThree(t *testing.T) {
	m := NewMatcher()
	profile := &types.CVProfile{}
	matched := []string{"python", "django", "aws", "docker", "redis"}

	reasons := m.buildReasons(profile, types.JobListing{Title: "Backend Developer"}, 40, matched)
	require.Len(t, reasons, 1)
	assert.Equal(t, "Matching skills: python, django, aws", reasons[0])
}

func TestBuildReasons_CombinedSentence(t *testing.T) {
	m := NewMatcher()
	profile := &types.CVProfile{
		RawText: "Worked as backend developer.",
		Education: []types.EducationEntry{
			{Text: "Bachelor of Computer Science", Level: "bachelor"},
		},
	}

	reasons := m.buildReasons(profile, types.JobListing{Title: "Backend Developer"}, 85, []string{"python"})
	assert.LessOrEqual(t, len(reasons), 4)

	var combined bool
	for _, r := range reasons {
		if len(r) > 10 && r[:10] == "Background" {
			combined = true
		}
	}
	assert.True(t, combined, "expected a combined experience+education reason, got %v", reasons)
}

func TestBuildReasons_NeverMoreThanFour(t *testing.T) {
	m := NewMatcher()
	profile := &types.CVProfile{
		RawText: "Worked as backend developer for years.",
		Education: []types.EducationEntry{
			{Text: "Diploma in Accounting", Level: "diploma"},
		},
		ExperienceList: []types.ExperienceEntry{
			{Period: "2018 - 2023", Title: "developer", EstimatedYears: 5},
		},
	}

	reasons := m.buildReasons(profile, types.JobListing{Title: "Backend Developer"}, 90, []string{"python", "aws"})
	assert.LessOrEqual(t, len(reasons), 4)
}
