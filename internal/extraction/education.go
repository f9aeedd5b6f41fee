package extraction

import (
	"strings"

	"github.com/jonathan/cv-job-matcher/internal/types"
)

// Education returns every line mentioning an education keyword, classified
// by degree level.
func (e *Extractor) Education(text string) []types.EducationEntry {
	entries := []types.EducationEntry{}
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		for _, kw := range educationKeywords {
			if strings.Contains(lower, kw) {
				entries = append(entries, types.EducationEntry{
					Text:  trimmed,
					Level: classifyDegreeLevel(lower),
				})
				break
			}
		}
	}
	return entries
}

// classifyDegreeLevel maps an education line to a degree level. Rules are
// checked in order and the first hit wins; S1/S2/S3 are the Indonesian
// degree abbreviations.
func classifyDegreeLevel(lower string) string {
	switch {
	case strings.Contains(lower, "bachelor") || containsWord(lower, "s1"):
		return "bachelor"
	case strings.Contains(lower, "master") || containsWord(lower, "s2"):
		return "master"
	case strings.Contains(lower, "phd") || containsWord(lower, "s3"):
		return "phd"
	case strings.Contains(lower, "diploma"):
		return "diploma"
	default:
		return "other"
	}
}

// containsWord reports whether the word appears delimited by non-alphanumerics
func containsWord(s, word string) bool {
	idx := 0
	for {
		i := strings.Index(s[idx:], word)
		if i < 0 {
			return false
		}
		i += idx
		beforeOK := i == 0 || !isAlnum(s[i-1])
		afterOK := i+len(word) >= len(s) || !isAlnum(s[i+len(word)])
		if beforeOK && afterOK {
			return true
		}
		idx = i + len(word)
	}
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
