// Package observability provides formatted report output for the cv-bank CLIs.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-bank/internal/validation"
)

const (
	// detailedRuleWidth is the width of the rule under the detailed report header
	detailedRuleWidth = 50
	// fullRuleWidth is the width of the rule under the full report header
	fullRuleWidth = 60
)

// commonIssues lists the usual causes of a schema failure
var commonIssues = []string{
	"Missing required fields (e.g., 'area' in education)",
	"Incorrect data types",
	"Invalid date formats",
	"Missing section headers",
}

// Printer handles formatted output for validation and render reports
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Printf writes a formatted line fragment
//
//nolint:errcheck // report output; write errors are not recoverable
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// PrintQuickResult outputs the one-line quick mode verdict
func (p *Printer) PrintQuickResult(err error) {
	if err != nil {
		p.Printf("❌ Invalid: %v\n", err)
		return
	}
	p.Printf("✅ Valid\n")
}

// PrintDetailedHeader outputs the header of a detailed report
func (p *Printer) PrintDetailedHeader(path string) {
	p.Printf("📄 Validating file: %s\n", path)
	p.Printf("%s\n", strings.Repeat("=", detailedRuleWidth))
}

// PrintDetailedReport outputs the section breakdown of a valid CV
func (p *Printer) PrintDetailedReport(a *validation.Analysis) {
	p.Printf("✅ Schema validation PASSED!\n\n")

	p.Printf("📋 CV Information:\n")
	p.Printf("   Name: %s\n\n", displayName(a.Name))

	p.Printf("📚 Sections found:\n")
	for _, s := range a.Sections {
		p.Printf("   ✅ %s: %d %s\n", s.Title, s.Count, s.Unit)
		for _, line := range s.Lines {
			p.Printf("      %s\n", line)
		}
	}
	p.printOther(a)

	p.Printf("\n🎉 All validations passed! Your CV is ready for rendering.\n")
}

// PrintDetailedFailure outputs the failure block of a detailed report
func (p *Printer) PrintDetailedFailure(err error) {
	p.Printf("❌ Schema validation FAILED!\n")
	p.Printf("Error: %v\n\n", err)
	p.Printf("💡 Common issues:\n")
	for _, issue := range commonIssues {
		p.Printf("   - %s\n", issue)
	}
}

// PrintFullHeader outputs the header of a full report
func (p *Printer) PrintFullHeader(path string) {
	p.Printf("🔍 Full validation of: %s\n", path)
	p.Printf("%s\n", strings.Repeat("=", fullRuleWidth))
}

// PrintStage outputs a numbered stage label. Completed stages get a check mark.
func (p *Printer) PrintStage(n int, label string, done bool) {
	if done {
		p.Printf("%d. %s... ✅\n", n, label)
		return
	}
	p.Printf("%d. %s...\n", n, label)
}

// PrintFullReport outputs the content analysis of a valid CV
func (p *Printer) PrintFullReport(a *validation.Analysis) {
	p.Printf("   ✅ Schema validation PASSED!\n")

	p.PrintStage(3, "Content analysis", false)
	p.Printf("   CV Name: %s\n", displayName(a.Name))

	for _, s := range a.Sections {
		p.Printf("   ✅ %s section: %d %s\n", s.Title, s.Count, s.Unit)
		for _, w := range s.Warnings {
			p.Printf("   ⚠️  %s\n", w)
		}
	}
	p.printOther(a)
	p.Printf("   Total sections: %d\n", a.SectionCount())

	if a.HasDesign {
		p.PrintStage(4, "Design settings", true)
	}

	p.Printf("\n🎉 Full validation completed successfully!\n")
	p.Printf("📄 Your CV is ready for rendering with: rendercv render <file.yaml>\n")
}

// PrintFullFailure outputs the failure block of a full report
func (p *Printer) PrintFullFailure(err error) {
	p.Printf("❌ Validation FAILED!\n")
	p.Printf("Error: %v\n", err)
}

func (p *Printer) printOther(a *validation.Analysis) {
	if len(a.Other) == 0 {
		return
	}
	parts := make([]string, 0, len(a.Other))
	for _, s := range a.Other {
		parts = append(parts, fmt.Sprintf("%s (%d)", s.Key, s.Count))
	}
	p.Printf("   ➕ Other sections: %s\n", strings.Join(parts, ", "))
}

func displayName(name string) string {
	if name == "" {
		return "(not set)"
	}
	return name
}
