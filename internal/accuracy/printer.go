package accuracy

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-job-matcher/internal/types"
)

// boxWidth is the width of formatted report boxes
const boxWidth = 60

// Printer renders an accuracy report for terminal output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a bordered box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReport renders the summary, per-dimension accuracy, per-test results,
// and recommendations.
func (p *Printer) PrintReport(report *types.AccuracyReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tests:     %d passed, %d failed of %d\n",
		report.Summary.PassedTests, report.Summary.FailedTests, report.Summary.TotalTests))
	sb.WriteString(fmt.Sprintf("Accuracy:  %.1f%%\n", report.Summary.OverallAccuracy))
	sb.WriteString(fmt.Sprintf("Duration:  %dms\n", report.Summary.DurationMs))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("CV type:          %.1f%%\n", report.Dimensions.CVType))
	sb.WriteString(fmt.Sprintf("Job match:        %.1f%%\n", report.Dimensions.JobMatch))
	sb.WriteString(fmt.Sprintf("Skill score:      %.1f%%\n", report.Dimensions.SkillScoreRange))
	sb.WriteString(fmt.Sprintf("Experience level: %.1f%%", report.Dimensions.ExperienceLevel))
	p.printBox("ACCURACY REPORT", sb.String())

	var results strings.Builder
	for i, r := range report.Results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		results.WriteString(fmt.Sprintf("%s  %s (%.2f)", status, r.TestID, r.OverallScore))
		if r.Actual.Error != "" {
			results.WriteString("  " + r.Actual.Error)
		}
		if i < len(report.Results)-1 {
			results.WriteString("\n")
		}
	}
	if results.Len() > 0 {
		p.printBox("PER-TEST RESULTS", results.String())
	}

	if len(report.Recommendations) > 0 {
		p.printBox("RECOMMENDATIONS", strings.Join(report.Recommendations, "\n"))
	}
}
