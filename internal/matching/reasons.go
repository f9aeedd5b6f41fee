package matching

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/cv-job-matcher/internal/types"
)

// maxReasons caps the number of reasons attached to a match
const maxReasons = 4

// Work-experience mention patterns, English and Indonesian
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bworked as ([a-z][a-z ]{2,40})`),
	regexp.MustCompile(`(?i)\bexperience as ([a-z][a-z ]{2,40})`),
	regexp.MustCompile(`(?i)\bpengalaman sebagai ([a-z][a-z ]{2,40})`),
	regexp.MustCompile(`(?i)\bsebagai ([a-z][a-z ]{2,40})`),
}

// buildReasons assembles up to four human-readable reasons for a match:
// a score band, a work-experience mention, an education mention, the
// contributing skills, and a combined sentence when experience and education
// both relate to the job title.
func (m *Matcher) buildReasons(profile *types.CVProfile, job types.JobListing, score int, matchedSkills []string) []string {
	reasons := []string{}

	switch {
	case score >= 80:
		reasons = append(reasons, "Excellent match for your profile")
	case score >= 65:
		reasons = append(reasons, "Good match for your profile")
	}

	experience := experienceMention(profile)
	education := educationMention(profile)

	title := strings.ToLower(job.Title)
	if experience != "" && education != "" && sharesWordWith(title, experience, education) {
		reasons = append(reasons, fmt.Sprintf("Background as %s with %s fits this role", experience, education))
	} else {
		if experience != "" {
			reasons = append(reasons, "Has experience as "+experience)
		}
		if education != "" {
			reasons = append(reasons, "Education: "+education)
		}
	}

	if len(matchedSkills) > 0 {
		shown := matchedSkills
		if len(shown) > 3 {
			shown = shown[:3]
		}
		reasons = append(reasons, "Matching skills: "+strings.Join(shown, ", "))
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}

// experienceMention finds a stated role in the raw text, falling back to the
// first extracted experience entry.
func experienceMention(profile *types.CVProfile) string {
	for _, p := range experiencePatterns {
		if m := p.FindStringSubmatch(profile.RawText); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	if len(profile.ExperienceList) > 0 && profile.ExperienceList[0].Title != "" {
		return profile.ExperienceList[0].Title
	}
	return ""
}

// educationMention returns the first education line, if any
func educationMention(profile *types.CVProfile) string {
	if len(profile.Education) == 0 {
		return ""
	}
	return profile.Education[0].Text
}

// sharesWordWith reports whether any word longer than three characters from
// the candidate strings appears in the job title.
func sharesWordWith(title string, candidates ...string) bool {
	for _, c := range candidates {
		for _, word := range strings.Fields(strings.ToLower(c)) {
			if len(word) > 3 && strings.Contains(title, word) {
				return true
			}
		}
	}
	return false
}
