package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/wahlandcase/relcheck/internal/report"
)

const (
	commitWidth = 10
	statusWidth = 20
)

// Printer writes reports as fixed-width text
type Printer struct {
	out    io.Writer
	styles Styles
}

// NewPrinter creates a Printer whose color profile is detected from w.
// Non-terminals and NO_COLOR get plain text.
func NewPrinter(w io.Writer) *Printer {
	return NewPrinterWithProfile(w, termenv.NewOutput(w).EnvColorProfile())
}

// NewPrinterWithProfile creates a Printer with a fixed color profile
func NewPrinterWithProfile(w io.Writer, profile termenv.Profile) *Printer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &Printer{out: w, styles: NewStyles(r)}
}

// Print writes both report sections followed by the summary counts
func (p *Printer) Print(r *report.Report) error {
	var b strings.Builder

	b.WriteString(p.styles.Rule.Render(SectionRule("In release", RuleWidth)) + "\n")
	for _, row := range r.InRelease {
		b.WriteString(p.row(row, p.styles.Key) + "\n")
	}

	b.WriteString(p.styles.Rule.Render(SectionRule("Out of release", RuleWidth)) + "\n")
	for _, row := range r.OutOfRelease {
		b.WriteString(p.row(row, p.styles.ForeignKey) + "\n")
	}

	b.WriteString(p.styles.Rule.Render(strings.Repeat("-", RuleWidth)) + "\n")
	b.WriteString(p.summary("Tasks in Jira:", r.ReleaseIssues))
	b.WriteString(p.summary("Tasks in git:", r.CommitKeys))
	b.WriteString(p.summary("Tasks without commit:", r.WithoutCommit))
	b.WriteString(p.summary("Tasks out of release:", r.OutOfReleaseCount))

	_, err := io.WriteString(p.out, b.String())
	return err
}

// row pads on plain text first so styling never shifts the columns
func (p *Printer) row(row report.Row, keyStyle lipgloss.Style) string {
	commitStyle := p.styles.Commit
	if !row.HasCommit() {
		commitStyle = p.styles.NoCommit
	}

	return strings.Join([]string{
		keyStyle.Render(row.Key),
		commitStyle.Render(padRight(row.CommitID, commitWidth)),
		p.styles.Status(row.Status).Render(padRight(row.Status, statusWidth)),
		p.styles.Link.Render(row.Link),
	}, " ")
}

func (p *Printer) summary(name string, n int) string {
	return fmt.Sprintf("%s %s\n", p.styles.SummaryName.Render(name), p.styles.SummaryNum.Render(fmt.Sprint(n)))
}
