package accuracy

import "github.com/jonathan/cv-job-matcher/internal/types"

// DefaultCatalog returns the fixed job catalog the accuracy harness ranks
// against. The dataset labels assume exactly these listings.
func DefaultCatalog() []types.JobListing {
	return []types.JobListing{
		{
			ID:           "cat-001",
			Title:        "Backend Developer",
			Company:      "Nimbus Labs",
			Location:     "Jakarta",
			Requirements: []string{"Python", "Node.js", "MongoDB"},
			Experience:   "3-5 years",
			Description:  "Design REST APIs with Python and Django, operate PostgreSQL and Redis, ship with Docker on AWS.",
		},
		{
			ID:           "cat-002",
			Title:        "Frontend Developer",
			Company:      "Pixel Works",
			Location:     "Bandung",
			Requirements: []string{"React", "JavaScript", "CSS"},
			Experience:   "1-2 years",
			Description:  "Build component libraries with React and JavaScript, styling with CSS and HTML.",
		},
		{
			ID:           "cat-003",
			Title:        "Full Stack Developer",
			Company:      "Archipelago Apps",
			Location:     "Remote",
			Requirements: []string{"JavaScript", "Node.js", "React"},
			Experience:   "2-3 years",
			Description:  "Own features end to end with JavaScript, React, and Node.js services.",
		},
		{
			ID:           "cat-004",
			Title:        "DevOps Engineer",
			Company:      "Cloudline",
			Location:     "Jakarta",
			Requirements: []string{"Docker", "Kubernetes", "AWS"},
			Experience:   "3-5 years",
			Description:  "Run Kubernetes clusters, build CI pipelines, manage AWS infrastructure with Terraform.",
		},
		{
			ID:           "cat-005",
			Title:        "Data Analyst",
			Company:      "Insight Partners",
			Location:     "Surabaya",
			Requirements: []string{"SQL", "Excel", "Tableau"},
			Experience:   "1-2 years",
			Description:  "Build dashboards in Tableau, query warehouses with SQL, model in Excel.",
		},
		{
			ID:           "cat-006",
			Title:        "Product Manager",
			Company:      "Garuda Commerce",
			Location:     "Jakarta",
			Requirements: []string{"Leadership", "Communication", "Negotiation"},
			Experience:   "5+ years",
			Description:  "Drive product strategy, stakeholder management, and roadmap planning with delivery teams.",
		},
		{
			ID:           "cat-007",
			Title:        "Digital Marketing Specialist",
			Company:      "Komodo Media",
			Location:     "Denpasar",
			Requirements: []string{"SEO", "Content Marketing", "Social Media"},
			Experience:   "2-3 years",
			Description:  "Plan SEO, campaign, branding, and social media programs for consumer brands.",
		},
		{
			ID:           "cat-008",
			Title:        "Accountant",
			Company:      "Sriwijaya Group",
			Location:     "Palembang",
			Requirements: []string{"Accounting", "Excel", "Tax"},
			Experience:   "5+ years",
			Description:  "Prepare tax filings, payroll, and monthly reconciliation with full financial reporting in Excel.",
		},
		{
			ID:           "cat-009",
			Title:        "Finance Manager",
			Company:      "Mahakam Holdings",
			Location:     "Balikpapan",
			Requirements: []string{"Budgeting", "Financial Reporting", "Excel"},
			Experience:   "5+ years",
			Description:  "Own budgeting, forecasting, and treasury oversight for the holding group.",
		},
		{
			ID:           "cat-010",
			Title:        "Mobile Developer",
			Company:      "Langit Apps",
			Location:     "Yogyakarta",
			Requirements: []string{"Flutter", "Kotlin", "Swift"},
			Experience:   "2-3 years",
			Description:  "Build cross-platform apps with Flutter, native modules in Kotlin and Swift.",
		},
	}
}
