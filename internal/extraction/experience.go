package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/cv-job-matcher/internal/types"
)

const monthNames = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?`

// Date-range patterns tried in order per line. The first match wins.
var datePatterns = []*regexp.Regexp{
	// 2019 - 2023, 2019 - present
	regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\s*[-–]\s*(?:(?:19|20)\d{2}|present|now)\b`),
	// Jan 2019 - Mar 2023, January 2019 - present
	regexp.MustCompile(`(?i)\b` + monthNames + `\s+(?:19|20)\d{2}\s*[-–]\s*(?:` + monthNames + `\s+(?:19|20)\d{2}|present|now)\b`),
	// bare Month Year
	regexp.MustCompile(`(?i)\b` + monthNames + `\s+(?:19|20)\d{2}\b`),
}

var (
	yearPattern         = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	presentPattern      = regexp.MustCompile(`(?i)\b(?:present|now)\b`)
	yearsMentionPattern = regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*(?:years?|tahun)\b`)
)

// Experience detects work-experience entries from date ranges in the text.
// Each date match is paired with a job-title keyword found within two lines
// of it. When no dated entries exist but the text states a duration outright
// ("5 years", "5+ tahun"), that statement becomes a single entry so the
// profile still reflects the claimed experience.
func (e *Extractor) Experience(text string) []types.ExperienceEntry {
	lines := strings.Split(text, "\n")
	entries := []types.ExperienceEntry{}

	for i, line := range lines {
		period := matchDateRange(line)
		if period == "" {
			continue
		}
		title := titleNearLine(lines, i)
		if title == "" {
			continue
		}
		entries = append(entries, types.ExperienceEntry{
			Period:         period,
			Title:          title,
			EstimatedYears: e.estimateYears(period),
		})
	}

	if len(entries) == 0 {
		if years, mention := explicitYears(text); years > 0 {
			entries = append(entries, types.ExperienceEntry{
				Period:         mention,
				Title:          firstTitleKeyword(text),
				EstimatedYears: years,
			})
		}
	}

	return entries
}

// matchDateRange returns the first date-range match in the line, if any
func matchDateRange(line string) string {
	for _, p := range datePatterns {
		if m := p.FindString(line); m != "" {
			return m
		}
	}
	return ""
}

// titleNearLine scans a window of two lines before and after for a job-title keyword
func titleNearLine(lines []string, idx int) string {
	start := idx - 2
	if start < 0 {
		start = 0
	}
	end := idx + 2
	if end > len(lines)-1 {
		end = len(lines) - 1
	}
	for i := start; i <= end; i++ {
		if t := firstTitleKeyword(lines[i]); t != "" {
			return t
		}
	}
	return ""
}

func firstTitleKeyword(s string) string {
	lower := strings.ToLower(s)
	for _, kw := range jobTitleKeywords {
		if strings.Contains(lower, kw) {
			return kw
		}
	}
	return ""
}

// estimateYears derives a duration from a matched period string. Two years
// give their difference, an open range ends at the current year, and
// anything unparseable defaults to 1.
func (e *Extractor) estimateYears(period string) float64 {
	years := yearPattern.FindAllString(period, -1)
	open := presentPattern.MatchString(period)

	switch {
	case len(years) >= 2:
		start, err1 := strconv.Atoi(years[0])
		end, err2 := strconv.Atoi(years[1])
		if err1 != nil || err2 != nil {
			return 1
		}
		if end < start {
			return 0
		}
		return float64(end - start)
	case len(years) == 1 && open:
		start, err := strconv.Atoi(years[0])
		if err != nil {
			return 1
		}
		diff := e.now().Year() - start
		if diff < 0 {
			return 0
		}
		return float64(diff)
	default:
		return 1
	}
}

// explicitYears finds the largest "N years" style statement in the text
func explicitYears(text string) (float64, string) {
	best := 0
	mention := ""
	for _, m := range yearsMentionPattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > best {
			best = n
			mention = strings.TrimSpace(m[0])
		}
	}
	return float64(best), mention
}
