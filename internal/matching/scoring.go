package matching

import (
	"math"
	"strings"

	"github.com/jonathan/cv-job-matcher/internal/types"
)

// Component weights for the composite match score
const (
	typeWeight       = 0.45
	skillsWeight     = 0.30
	experienceWeight = 0.20
	keywordWeight    = 0.05
)

const (
	pointsPerRequirement = 10.0
	exactMatchPoints     = 10.0
	partialMatchPoints   = 7.0
	relatedMatchPoints   = 4.0
)

// Matcher scores job listings against CV profiles. All of its rule tables
// are package-level constants, so a single Matcher is safe for concurrent use.
type Matcher struct{}

// NewMatcher creates a Matcher
func NewMatcher() *Matcher {
	return &Matcher{}
}

// ScoreJob computes the weighted composite score for one job and the
// human-readable reasons behind it. Missing optional job fields degrade to
// documented defaults; this never fails.
func (m *Matcher) ScoreJob(profile *types.CVProfile, job types.JobListing) (int, []string) {
	typeScore := m.typeMatchScore(profile.CVType, job.Title)
	skillsScore, matchedSkills := m.skillsMatchScore(profile, job)
	experienceScore := m.experienceMatchScore(profile.ExperienceYears, job.Experience)
	keywordScore := m.keywordMatchScore(profile.Keywords, job)

	final := typeScore*typeWeight +
		skillsScore*skillsWeight +
		experienceScore*experienceWeight +
		keywordScore*keywordWeight

	// Quality boost for strong, experienced profiles
	if profile.SkillScore > 80 && profile.ExperienceYears >= 3 {
		final *= 1.1
	}

	if final > 100 {
		final = 100
	}
	if final < 0 {
		final = 0
	}

	score := int(math.Round(final))
	return score, m.buildReasons(profile, job, score, matchedSkills)
}

// typeMatchScore scores how well the job title fits the CV type.
func (m *Matcher) typeMatchScore(cvType types.CVType, jobTitle string) float64 {
	titles, ok := typeTitles[cvType]
	if !ok {
		return 60 // unknown CV type gets a neutral default
	}

	title := strings.ToLower(strings.TrimSpace(jobTitle))
	if title == "" {
		return 60
	}

	for _, primary := range titles.Primary {
		if strings.Contains(title, primary) || strings.Contains(primary, title) {
			return 95
		}
	}
	for _, secondary := range titles.Secondary {
		if strings.Contains(title, secondary) || strings.Contains(secondary, title) {
			return 80
		}
	}

	// Partial credit for individual title words
	partial := 0.0
	for _, mapped := range append(append([]string{}, titles.Primary...), titles.Secondary...) {
		for _, word := range strings.Fields(mapped) {
			if len(word) > 3 && strings.Contains(title, word) {
				partial += 15
			}
		}
	}
	if partial > 75 {
		partial = 75
	}
	if partial > 0 {
		return partial
	}

	// Generic keyword-family overlap as the last resort
	matches := 0
	for _, word := range genericTypeWords[cvType] {
		if strings.Contains(title, word) {
			matches++
		}
	}
	score := float64(matches) * 15
	if score > 70 {
		score = 70
	}
	if score < 30 {
		score = 30
	}
	return score
}

// skillsMatchScore scores job requirements against the CV skills and returns
// the CV skills that contributed.
func (m *Matcher) skillsMatchScore(profile *types.CVProfile, job types.JobListing) (float64, []string) {
	if len(job.Requirements) == 0 {
		score := profile.SkillScore
		if score > 90 {
			score = 90
		}
		if score < 50 {
			score = 50
		}
		return score, nil
	}
	if len(profile.SkillsFound) == 0 {
		return 45, nil
	}

	earned := 0.0
	matched := []string{}
	seen := map[string]bool{}
	for _, req := range job.Requirements {
		points, skill := matchRequirement(req, profile.SkillsFound)
		earned += points
		if skill != "" && !seen[skill] {
			seen[skill] = true
			matched = append(matched, skill)
		}
	}

	score := earned / (pointsPerRequirement * float64(len(job.Requirements))) * 100

	// Bonus for breadth and overall skill strength
	bonus := float64(len(profile.SkillsFound)) * 1.5
	if bonus > 20 {
		bonus = 20
	}
	score += bonus
	if profile.SkillScore > 70 {
		score += 10
	}
	if score > 100 {
		score = 100
	}
	return score, matched
}

// matchRequirement scores a single job requirement against the CV skills.
// Exact or substring matches earn full points, word-overlap matches earn
// partial points, and synonym-table hits earn a small amount.
func matchRequirement(requirement string, cvSkills []string) (float64, string) {
	req := strings.ToLower(strings.TrimSpace(requirement))
	if req == "" {
		return 0, ""
	}

	for _, skill := range cvSkills {
		s := strings.ToLower(strings.TrimSpace(skill))
		if s == "" {
			continue
		}
		if s == req || strings.Contains(req, s) || strings.Contains(s, req) {
			return exactMatchPoints, skill
		}
	}
	for _, skill := range cvSkills {
		if wordsOverlap(req, strings.ToLower(skill)) {
			return partialMatchPoints, skill
		}
	}
	for _, skill := range cvSkills {
		if isRelatedSkill(req, skill) {
			return relatedMatchPoints, skill
		}
	}
	return 0, ""
}

// wordsOverlap splits both strings on whitespace, hyphens, and underscores
// and reports whether any word longer than two characters from one side is a
// substring of a word on the other side.
func wordsOverlap(a, b string) bool {
	splitter := func(r rune) bool {
		return r == ' ' || r == '\t' || r == '-' || r == '_'
	}
	wordsA := strings.FieldsFunc(a, splitter)
	wordsB := strings.FieldsFunc(b, splitter)
	for _, wa := range wordsA {
		for _, wb := range wordsB {
			if len(wa) > 2 && strings.Contains(wb, wa) {
				return true
			}
			if len(wb) > 2 && strings.Contains(wa, wb) {
				return true
			}
		}
	}
	return false
}

// experienceMatchScore compares profile experience years against the job's
// free-text experience descriptor.
func (m *Matcher) experienceMatchScore(years float64, jobExperience string) float64 {
	descriptor := strings.ToLower(strings.TrimSpace(jobExperience))
	if descriptor == "" {
		return 60
	}

	required := requiredYears(descriptor)
	diff := years - required
	if diff >= 0 {
		switch {
		case diff <= 2:
			return 100
		case diff <= 5:
			return 90
		default:
			return 75 // heavily overqualified
		}
	}
	shortfall := -diff
	switch {
	case shortfall <= 1:
		return 80
	case shortfall <= 2:
		return 60
	default:
		return 30
	}
}

// requiredYears parses a free-text experience descriptor into a year estimate
func requiredYears(descriptor string) float64 {
	switch {
	case strings.Contains(descriptor, "fresh") || strings.Contains(descriptor, "entry"):
		return 0
	case strings.Contains(descriptor, "1-2") || strings.Contains(descriptor, "junior"):
		return 1
	case strings.Contains(descriptor, "2-3") || strings.Contains(descriptor, "3-5"):
		return 3
	case strings.Contains(descriptor, "5+") || strings.Contains(descriptor, "senior"):
		return 5
	case strings.Contains(descriptor, "lead") || strings.Contains(descriptor, "manager"):
		return 7
	default:
		return 0
	}
}

// keywordMatchScore scores how many profile keywords appear in the job text
func (m *Matcher) keywordMatchScore(keywords []types.KeywordCount, job types.JobListing) float64 {
	if len(keywords) == 0 {
		return 50
	}
	text := strings.ToLower(job.Title + " " + job.Description)
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw.Word) {
			matches++
		}
	}
	score := float64(matches)/float64(len(keywords))*100 + 20
	if score > 100 {
		score = 100
	}
	return score
}
