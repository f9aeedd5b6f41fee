// Package fetch - platform.go recognizes job board platforms and carries
// per-board CSS selector profiles for the catalog scraper.
package fetch

import (
	"net/url"
	"strings"
)

// Platform identifies the job board a catalog URL points at.
type Platform string

const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformIndeed     Platform = "indeed"
	PlatformLinkedIn   Platform = "linkedin"
	PlatformUnknown    Platform = "unknown"
)

// platformProfile bundles what the scraper knows about one board: the host
// names that identify it, where the posting body lives, and board-specific
// page chrome to discard before text extraction.
type platformProfile struct {
	hosts            []string
	contentSelectors []string
	noiseSelectors   []string
}

var platformProfiles = map[Platform]platformProfile{
	PlatformGreenhouse: {
		hosts: []string{"greenhouse.io"},
		contentSelectors: []string{
			".job__description.body",
			".job__description",
			".job-description__content",
			"#content",
			".job-post-container",
		},
		noiseSelectors: []string{
			".application--wrapper",
			".voluntary-self-id",
			".voluntary-self-id-wrapper",
			"#usa_self_id_section",
			".post-apply",
		},
	},
	PlatformLever: {
		hosts: []string{"lever.co"},
		contentSelectors: []string{
			".posting-page",
			".section-wrapper.page-full-width",
			".posting-description",
			".content",
		},
		noiseSelectors: []string{
			".apply-section",
			".lever-application-form",
			".posting-apply",
		},
	},
	PlatformWorkday: {
		hosts: []string{"workday.com", "myworkdayjobs.com"},
		contentSelectors: []string{
			"[data-automation-id='jobDescription']",
			".WDXK",
			".gwt-HTML",
			".job-description",
		},
		noiseSelectors: []string{
			"[data-automation-id='applyButton']",
			".application-section",
			".WDAF",
		},
	},
	PlatformIndeed: {
		hosts: []string{"indeed.com"},
		contentSelectors: []string{
			"#jobDescriptionText",
			".jobsearch-JobComponent-description",
			".jobsearch-jobDescriptionText",
		},
		noiseSelectors: []string{
			"#applyButtonLinkContainer",
			".jobsearch-CompanyReview",
			".ia-JobActions",
		},
	},
	PlatformLinkedIn: {
		hosts: []string{"linkedin.com"},
		contentSelectors: []string{
			".show-more-less-html__markup",
			".description__text",
			".jobs-description__content",
		},
		noiseSelectors: []string{
			".top-card-layout__cta-container",
			".similar-jobs",
			".sign-in-modal",
		},
	},
}

// commonNoiseSelectors are stripped for every board: application forms, legal
// boilerplate, share widgets, and cookie banners carry no signal for matching.
var commonNoiseSelectors = []string{
	"form",
	"#application-form",
	".application-form",
	".application--container",
	".apply-button-container",
	"[data-testid='application-form']",

	".voluntary-disclosure",
	".eeo-statement",
	".eeo-section",
	"[data-testid='eeo']",
	".legal-disclosure",
	".self-identification",

	".social-share",
	".share-buttons",
	".social-links",

	".cookie-banner",
	".cookie-consent",
	".gdpr-notice",
}

// DetectPlatform identifies the job board platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	for platform, profile := range platformProfiles {
		for _, h := range profile.hosts {
			if host == h || strings.HasSuffix(host, "."+h) {
				return platform
			}
		}
	}

	return PlatformUnknown
}

// PlatformContentSelectors returns the posting-body selectors for a board,
// falling back to the generic posting selectors for unrecognized boards.
func PlatformContentSelectors(platform Platform) []string {
	if profile, ok := platformProfiles[platform]; ok {
		return profile.contentSelectors
	}
	return JobListingSelectors()
}

// PlatformNoiseSelectors returns the noise exclusion selectors for a board,
// always including the common set.
func PlatformNoiseSelectors(platform Platform) []string {
	selectors := make([]string, 0, len(commonNoiseSelectors)+4)
	selectors = append(selectors, commonNoiseSelectors...)
	if profile, ok := platformProfiles[platform]; ok {
		selectors = append(selectors, profile.noiseSelectors...)
	}
	return selectors
}
