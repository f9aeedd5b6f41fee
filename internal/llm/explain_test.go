package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-job-matcher/internal/types"
)

// stubClient is a Client returning canned responses for tests.
type stubClient struct {
	response string
	err      error
	prompt   string
}

func (c *stubClient) GenerateContent(_ context.Context, prompt string, _ ModelTier) (string, error) {
	c.prompt = prompt
	return c.response, c.err
}

func (c *stubClient) GenerateJSON(_ context.Context, prompt string, _ ModelTier) (string, error) {
	c.prompt = prompt
	return c.response, c.err
}

func (c *stubClient) GetModel(_ ModelTier) string { return "stub-model" }

func (c *stubClient) Close() error { return nil }

func testProfile() *types.CVProfile {
	return &types.CVProfile{
		CVType:          types.CVTypeTechnical,
		ExperienceYears: 5,
		SkillsFound:     []string{"python", "django", "postgresql"},
	}
}

func testResult() types.MatchResult {
	return types.MatchResult{
		Job: types.JobListing{
			Title:        "Backend Developer",
			Company:      "Acme",
			Requirements: []string{"python", "postgresql"},
			Experience:   "3-5 years",
		},
		MatchScore:   84,
		MatchReasons: []string{"Excellent match for your profile"},
	}
}

func TestExplainMatch_Success(t *testing.T) {
	client := &stubClient{response: "  Your Python background fits this role well.  "}
	explainer := NewExplainer(client)

	explanation, err := explainer.ExplainMatch(context.Background(), testProfile(), testResult())
	require.NoError(t, err)
	assert.Equal(t, "Your Python background fits this role well.", explanation)
}

func TestExplainMatch_PromptContents(t *testing.T) {
	client := &stubClient{response: "ok"}
	explainer := NewExplainer(client)

	_, err := explainer.ExplainMatch(context.Background(), testProfile(), testResult())
	require.NoError(t, err)

	assert.Contains(t, client.prompt, "84 out of 100")
	assert.Contains(t, client.prompt, "Backend Developer")
	assert.Contains(t, client.prompt, "python, django, postgresql")
	assert.Contains(t, client.prompt, "technical")
	assert.Contains(t, client.prompt, "Excellent match for your profile")
}

func TestExplainMatch_ClientError(t *testing.T) {
	client := &stubClient{err: errors.New("quota exceeded")}
	explainer := NewExplainer(client)

	_, err := explainer.ExplainMatch(context.Background(), testProfile(), testResult())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to explain match")
}

func TestBuildExplainPrompt_SkillCap(t *testing.T) {
	profile := testProfile()
	for i := 0; i < 30; i++ {
		profile.SkillsFound = append(profile.SkillsFound, "skill")
	}

	prompt := buildExplainPrompt(profile, testResult())
	assert.NotEmpty(t, prompt)
	// Prompt stays bounded even with many extracted skills
	assert.Less(t, len(prompt), 2000)
}
