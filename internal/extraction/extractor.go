// Package extraction derives a structured CV profile from raw résumé text.
package extraction

import (
	"sort"
	"time"

	"github.com/jonathan/cv-job-matcher/internal/types"
)

// Extractor runs the text extractors over résumé text. It holds no state
// besides an injectable clock used to resolve "present" in date ranges.
type Extractor struct {
	now func() time.Time
}

// Option configures an Extractor
type Option func(*Extractor)

// WithClock overrides the clock used to resolve open-ended date ranges.
// Tests use this to keep duration estimates reproducible.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// NewExtractor creates an Extractor with the given options
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Skills scans text against the category dictionaries and returns hits per
// category. All six category keys are always present in the result.
func (e *Extractor) Skills(text string) map[string][]types.SkillHit {
	result := make(map[string][]types.SkillHit, len(skillDictionaries))
	for _, category := range types.SkillCategories {
		hits := []types.SkillHit{}
		for _, keyword := range skillDictionaries[category] {
			count := len(skillPatterns[category][keyword].FindAllStringIndex(text, -1))
			if count >= 1 {
				hits = append(hits, types.SkillHit{Skill: keyword, Count: count})
			}
		}
		result[category] = hits
	}
	return result
}

// Keywords returns the top 20 free-text keywords by frequency. Stopwords and
// words shorter than 4 characters are dropped; ties keep first-occurrence order.
func (e *Extractor) Keywords(text string) []types.KeywordCount {
	words := tokenize(text)

	counts := map[string]int{}
	firstSeen := map[string]int{}
	for i, w := range words {
		if len(w) <= 3 || stopwords[w] {
			continue
		}
		if _, ok := counts[w]; !ok {
			firstSeen[w] = i
		}
		counts[w]++
	}

	keywords := make([]types.KeywordCount, 0, len(counts))
	for w, c := range counts {
		keywords = append(keywords, types.KeywordCount{Word: w, Count: c})
	}
	sort.SliceStable(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return firstSeen[keywords[i].Word] < firstSeen[keywords[j].Word]
	})

	if len(keywords) > 20 {
		keywords = keywords[:20]
	}
	return keywords
}
