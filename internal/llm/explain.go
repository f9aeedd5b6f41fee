// Package llm - explain.go generates natural-language match explanations.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/cv-job-matcher/internal/types"
)

// maxExplainSkills limits how many extracted skills go into the prompt.
const maxExplainSkills = 15

// Explainer produces short natural-language explanations of match results.
type Explainer struct {
	client Client
}

// NewExplainer creates an explainer backed by the given LLM client.
func NewExplainer(client Client) *Explainer {
	return &Explainer{client: client}
}

// ExplainMatch generates a short explanation of why a job matched a profile.
// The deterministic scorer stays authoritative; this only narrates the result.
func (e *Explainer) ExplainMatch(ctx context.Context, profile *types.CVProfile, result types.MatchResult) (string, error) {
	prompt := buildExplainPrompt(profile, result)

	text, err := e.client.GenerateContent(ctx, prompt, TierLite)
	if err != nil {
		return "", fmt.Errorf("failed to explain match: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func buildExplainPrompt(profile *types.CVProfile, result types.MatchResult) string {
	var sb strings.Builder

	sb.WriteString("You are a career advisor. In 2-3 sentences, explain to the candidate why the job below scored ")
	sb.WriteString(fmt.Sprintf("%d out of 100 against their CV. Be specific and encouraging, plain text only.\n\n", result.MatchScore))

	sb.WriteString("Candidate profile:\n")
	sb.WriteString(fmt.Sprintf("- CV type: %s\n", profile.CVType))
	sb.WriteString(fmt.Sprintf("- Years of experience: %.1f\n", profile.ExperienceYears))

	skills := profile.SkillsFound
	if len(skills) > maxExplainSkills {
		skills = skills[:maxExplainSkills]
	}
	if len(skills) > 0 {
		sb.WriteString(fmt.Sprintf("- Skills: %s\n", strings.Join(skills, ", ")))
	}

	sb.WriteString("\nJob:\n")
	sb.WriteString(fmt.Sprintf("- Title: %s\n", result.Job.Title))
	if result.Job.Company != "" {
		sb.WriteString(fmt.Sprintf("- Company: %s\n", result.Job.Company))
	}
	if len(result.Job.Requirements) > 0 {
		sb.WriteString(fmt.Sprintf("- Requirements: %s\n", strings.Join(result.Job.Requirements, ", ")))
	}
	if result.Job.Experience != "" {
		sb.WriteString(fmt.Sprintf("- Experience: %s\n", result.Job.Experience))
	}
	if len(result.MatchReasons) > 0 {
		sb.WriteString(fmt.Sprintf("\nScorer notes: %s\n", strings.Join(result.MatchReasons, "; ")))
	}

	return sb.String()
}
