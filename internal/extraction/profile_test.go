package extraction

import (
	"testing"

	"github.com/jonathan/cv-job-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProfile_TechnicalCV(t *testing.T) {
	ex := newTestExtractor()

	text := "JANE DOE Backend Developer Python Django Node.js MongoDB AWS 5 years senior backend API"
	profile := ex.BuildProfile(text)

	assert.Equal(t, types.CVTypeTechnical, profile.CVType)
	assert.Contains(t, profile.SkillsFound, "python")
	assert.Contains(t, profile.SkillsFound, "django")
	assert.Contains(t, profile.SkillsFound, "node.js")
	assert.Contains(t, profile.SkillsFound, "mongodb")
	assert.Contains(t, profile.SkillsFound, "aws")
	assert.Equal(t, 5.0, profile.ExperienceYears)
	assert.Greater(t, profile.SkillScore, 0.0)
	assert.LessOrEqual(t, profile.SkillScore, 100.0)
}

func TestBuildProfile_EmptyTextReturnsZeroedProfile(t *testing.T) {
	ex := newTestExtractor()

	profile := ex.BuildProfile("")

	require.NotNil(t, profile)
	assert.Equal(t, 0.0, profile.SkillScore)
	assert.Equal(t, 0.0, profile.ExperienceYears)
	assert.Empty(t, profile.SkillsFound)
	assert.Empty(t, profile.ExperienceList)
	assert.Empty(t, profile.Education)
	assert.Empty(t, profile.Keywords)
	assert.Equal(t, types.CVTypeUnknown, profile.CVType)
	for _, category := range types.SkillCategories {
		_, ok := profile.SkillsByCategory[category]
		assert.True(t, ok, "missing category %s", category)
	}
}

func TestBuildProfile_SkillScoreFormula(t *testing.T) {
	ex := newTestExtractor()

	// Two skills, three total hits: average 1.5, scaled to 15
	profile := ex.BuildProfile("python python django")
	assert.InDelta(t, 15.0, profile.SkillScore, 0.001)
}

func TestBuildProfile_SkillScoreCappedAt100(t *testing.T) {
	ex := newTestExtractor()

	var sb string
	for i := 0; i < 15; i++ {
		sb += "python "
	}
	profile := ex.BuildProfile(sb)
	assert.Equal(t, 100.0, profile.SkillScore)
}

func TestBuildProfile_ExperienceYearsCappedAt20(t *testing.T) {
	ex := newTestExtractor()

	text := "Software Engineer\n1990 - 2020\nEngineer again\n1985 - 2000"
	profile := ex.BuildProfile(text)
	assert.Equal(t, 20.0, profile.ExperienceYears)
}

func TestBuildProfile_MarketingCV(t *testing.T) {
	ex := newTestExtractor()

	text := "Led SEO strategy and paid campaign execution. Branding, advertising, and social media campaign planning."
	profile := ex.BuildProfile(text)
	assert.Equal(t, types.CVTypeMarketing, profile.CVType)
}

func TestBuildProfile_FinanceCV(t *testing.T) {
	ex := newTestExtractor()

	text := "Accounting lead. Managed audit cycles, tax filings, payroll, and monthly reconciliation."
	profile := ex.BuildProfile(text)
	assert.Equal(t, types.CVTypeFinance, profile.CVType)
}

func TestBuildProfile_SoftSkillsOnlyLeansBusiness(t *testing.T) {
	ex := newTestExtractor()

	text := "Leadership, communication, teamwork, mentoring"
	profile := ex.BuildProfile(text)
	assert.Equal(t, types.CVTypeBusiness, profile.CVType)
	assert.NotEmpty(t, profile.SkillsFound)
}

func TestBuildProfile_Deterministic(t *testing.T) {
	ex := newTestExtractor()

	text := "Python developer, AWS, Docker, 2019 - 2023, Bachelor of Science"
	a := ex.BuildProfile(text)
	b := ex.BuildProfile(text)
	assert.Equal(t, a, b)
}
