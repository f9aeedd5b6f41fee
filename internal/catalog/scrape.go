package catalog

import (
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/cv-job-matcher/internal/fetch"
	"github.com/jonathan/cv-job-matcher/internal/types"
)

var experienceHintPattern = regexp.MustCompile(`(?i)\b\d{1,2}\s*[-+]?\s*\d{0,2}\s*(?:years?|tahun)\b`)

// ScrapeSource extracts a job listing from a job board posting page.
// Platform-specific selectors are used for known boards (Greenhouse, Lever,
// Workday); a headless browser renders JavaScript-heavy pages when enabled.
type ScrapeSource struct {
	URL        string
	UseBrowser bool
	Log        *zap.Logger
}

// Name identifies the source in logs and errors.
func (s *ScrapeSource) Name() string {
	return "scrape:" + s.URL
}

// Load fetches the posting page and converts it into a single job listing.
func (s *ScrapeSource) Load(ctx context.Context) ([]types.JobListing, error) {
	log := s.Log
	if log == nil {
		log = zap.NewNop()
	}

	result, err := fetch.URL(ctx, s.URL, nil)
	if err != nil {
		return nil, err
	}

	platform := fetch.DetectPlatform(s.URL)
	html := result.HTML

	text, err := fetch.ExtractMainText(html,
		fetch.PlatformContentSelectors(platform),
		fetch.PlatformNoiseSelectors(platform)...)
	if err != nil {
		return nil, err
	}

	// JavaScript-rendered boards return nearly empty HTML on plain fetch
	if s.UseBrowser && fetch.ShouldUseBrowser(text) {
		log.Info("content too short, rendering with headless browser",
			zap.String("url", s.URL))
		rendered, err := fetch.BrowserSimple(ctx, s.URL, log)
		if err != nil {
			return nil, err
		}
		html = rendered
		text, err = fetch.ExtractMainText(html,
			fetch.PlatformContentSelectors(platform),
			fetch.PlatformNoiseSelectors(platform)...)
		if err != nil {
			return nil, err
		}
	}

	job := listingFromPage(s.URL, html, text)
	log.Debug("scraped job listing",
		zap.String("title", job.Title),
		zap.Int("requirements", len(job.Requirements)))

	return []types.JobListing{job}, nil
}

// listingFromPage builds a job listing from rendered HTML and extracted text.
func listingFromPage(url, html, text string) types.JobListing {
	job := types.JobListing{
		// Stable ID so re-scraping the same posting updates rather than duplicates
		ID:          "scrape-" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(url)).String(),
		Title:       pageTitle(html),
		Description: text,
	}

	if job.Title == "" {
		// First non-empty text line is usually the role name
		for _, line := range strings.Split(text, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				job.Title = line
				break
			}
		}
	}

	job.Requirements = requirementLines(text)

	if m := experienceHintPattern.FindString(text); m != "" {
		job.Experience = strings.TrimSpace(m)
	}

	return job
}

func pageTitle(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	// Strip common " - Company" / " | Board" suffixes
	for _, sep := range []string{" | ", " - ", " – "} {
		if idx := strings.Index(title, sep); idx > 0 {
			title = title[:idx]
			break
		}
	}
	return strings.TrimSpace(title)
}

// requirementLines collects bullet lines that follow a requirements-style
// heading until the next heading-looking line.
func requirementLines(text string) []string {
	var reqs []string
	inSection := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		if strings.Contains(lower, "requirement") || strings.Contains(lower, "qualification") ||
			strings.Contains(lower, "what you'll need") {
			inSection = true
			continue
		}

		if !inSection {
			continue
		}

		if bullet, ok := strings.CutPrefix(line, "- "); ok {
			reqs = append(reqs, strings.TrimSpace(bullet))
			continue
		}
		if bullet, ok := strings.CutPrefix(line, "• "); ok {
			reqs = append(reqs, strings.TrimSpace(bullet))
			continue
		}
		if bullet, ok := strings.CutPrefix(line, "* "); ok {
			reqs = append(reqs, strings.TrimSpace(bullet))
			continue
		}

		// A non-bullet line ends the section
		inSection = false
	}

	return reqs
}
