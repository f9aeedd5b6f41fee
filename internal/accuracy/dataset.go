// Package accuracy runs the extraction and matching pipeline against a
// labeled dataset and reports how well it performs per dimension.
package accuracy

import "github.com/jonathan/cv-job-matcher/internal/types"

// Sample is one labeled ground-truth CV with its expected outcomes
type Sample struct {
	ID       string
	CVText   string
	Expected types.TestExpectation
}

// DefaultDataset returns the labeled CV samples used for accuracy runs.
// The texts are fixed fixtures; their labels were produced by hand against
// the catalog in DefaultCatalog.
func DefaultDataset() []Sample {
	return []Sample{
		{
			ID: "backend-senior",
			CVText: `ANDI PRATAMA
Senior Backend Developer

EXPERIENCE
Software Engineer at Nusantara Tech
2015 - 2022
Built REST APIs with Python and Django backed by PostgreSQL, MongoDB,
and Redis. Node.js services deployed with Docker on AWS.

EDUCATION
Bachelor of Computer Science, Gadjah Mada University`,
			Expected: types.TestExpectation{
				CVType:          types.CVTypeTechnical,
				TopJobTitle:     "Backend Developer",
				SkillScoreMin:   10,
				SkillScoreMax:   30,
				ExperienceLevel: "senior",
			},
		},
		{
			ID: "frontend-junior",
			CVText: `SARI WIJAYA
Frontend Developer

EXPERIENCE
Junior Frontend Developer
Jun 2023
Building interfaces with React and JavaScript, styling with CSS and HTML.

EDUCATION
Diploma in Informatics`,
			Expected: types.TestExpectation{
				CVType:          types.CVTypeTechnical,
				TopJobTitle:     "Frontend Developer",
				SkillScoreMin:   10,
				SkillScoreMax:   30,
				ExperienceLevel: "junior",
			},
		},
		{
			ID: "product-manager",
			CVText: `BUDI SANTOSO
Product leadership and communication across delivery teams.

EXPERIENCE
Project Manager at Garuda Retail
2016 - 2022
Owned product strategy, stakeholder management, and operations planning.
Led roadmap negotiation with commercial teams.

EDUCATION
Master of Business Administration`,
			Expected: types.TestExpectation{
				CVType:          types.CVTypeBusiness,
				TopJobTitle:     "Product Manager",
				SkillScoreMin:   5,
				SkillScoreMax:   25,
				ExperienceLevel: "senior",
			},
		},
		{
			ID: "marketing-mid",
			CVText: `DEWI LESTARI
Pengalaman sebagai digital marketing specialist.

EXPERIENCE
Marketing Specialist at Komodo Media
2019 - 2023
Ran SEO programs, paid campaign execution, branding, and social media
planning for consumer brands.

EDUCATION
Bachelor of Communication Science`,
			Expected: types.TestExpectation{
				CVType:          types.CVTypeMarketing,
				TopJobTitle:     "Digital Marketing Specialist",
				SkillScoreMin:   0,
				SkillScoreMax:   15,
				ExperienceLevel: "mid-level",
			},
		},
		{
			ID: "finance-senior",
			CVText: `RINA HARTONO
Accounting professional.

EXPERIENCE
Finance Analyst at Sriwijaya Group
2015 - 2022
Managed audit cycles, tax filings, payroll, and monthly reconciliation.
Produced financial reporting packs in Excel.

EDUCATION
Bachelor of Accounting, Airlangga University`,
			Expected: types.TestExpectation{
				CVType:          types.CVTypeFinance,
				TopJobTitle:     "Accountant",
				SkillScoreMin:   5,
				SkillScoreMax:   25,
				ExperienceLevel: "senior",
			},
		},
		{
			ID: "fullstack-mid",
			CVText: `JOKO SUSILO
Full Stack Developer

EXPERIENCE
Full Stack Developer at Borneo Digital
2021 - 2024
Shipped features with JavaScript, React on the front end and Node.js
services behind them.

EDUCATION
Bachelor of Information Systems`,
			Expected: types.TestExpectation{
				CVType:          types.CVTypeTechnical,
				TopJobTitle:     "Full Stack Developer",
				SkillScoreMin:   10,
				SkillScoreMax:   30,
				ExperienceLevel: "mid-level",
			},
		},
	}
}
