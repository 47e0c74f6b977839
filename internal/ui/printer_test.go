package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/relcheck/internal/report"
)

func TestSectionRule(t *testing.T) {
	in := SectionRule("In release", RuleWidth)
	out := SectionRule("Out of release", RuleWidth)

	assert.Len(t, in, RuleWidth)
	assert.Equal(t, strings.Repeat("-", 39)+" In release "+strings.Repeat("-", 39), in)
	assert.Equal(t, strings.Repeat("-", 37)+" Out of release "+strings.Repeat("-", 37), out)
}

func TestSectionRule_OddRemainderGoesRight(t *testing.T) {
	assert.Equal(t, "- ab --", SectionRule("ab", 7))
}

func TestCenterText_TooLong(t *testing.T) {
	assert.Equal(t, "abcdef", centerText("abcdef", 3, "-"))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "abc       ", padRight("abc", 10))
	assert.Equal(t, "abcdefghijkl", padRight("abcdefghijkl", 10))
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, ColorGreen, StatusColor("Done"))
	assert.Equal(t, ColorYellow, StatusColor("In Progress"))
	assert.Equal(t, ColorRed, StatusColor("?"))
	assert.Equal(t, ColorWhite, StatusColor("Open"))
}

func TestPrinter_PlainOutput(t *testing.T) {
	r := &report.Report{
		InRelease: []report.Row{
			{Key: "MYPROJ-12", CommitID: "c1c1c1c", Status: "Done", Link: "https://jira/browse/MYPROJ-12"},
			{Key: "MYPROJ-13", CommitID: report.NoCommit, Status: "Open", Link: "https://jira/browse/MYPROJ-13"},
		},
		OutOfRelease: []report.Row{
			{Key: "MYPROJ-14", CommitID: "c2c2c2c", Status: "In Progress", Link: "https://jira/browse/MYPROJ-14"},
		},
		ReleaseIssues:     2,
		CommitKeys:        2,
		WithoutCommit:     1,
		OutOfReleaseCount: 1,
	}

	var buf bytes.Buffer
	require.NoError(t, NewPrinterWithProfile(&buf, termenv.Ascii).Print(r))

	want := strings.Join([]string{
		strings.Repeat("-", 39) + " In release " + strings.Repeat("-", 39),
		"MYPROJ-12 c1c1c1c    Done                 https://jira/browse/MYPROJ-12",
		"MYPROJ-13 --------   Open                 https://jira/browse/MYPROJ-13",
		strings.Repeat("-", 37) + " Out of release " + strings.Repeat("-", 37),
		"MYPROJ-14 c2c2c2c    In Progress          https://jira/browse/MYPROJ-14",
		strings.Repeat("-", 90),
		"Tasks in Jira: 2",
		"Tasks in git: 2",
		"Tasks without commit: 1",
		"Tasks out of release: 1",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestPrinter_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinterWithProfile(&buf, termenv.Ascii).Print(&report.Report{}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], " In release ")
	assert.Contains(t, lines[1], " Out of release ")
	assert.Equal(t, "Tasks out of release: 0", lines[6])
}

func TestNewPrinter_NonTerminalIsPlain(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "0")

	var buf bytes.Buffer
	r := &report.Report{InRelease: []report.Row{{Key: "P-1", CommitID: report.NoCommit, Status: "Done", Link: "l"}}}

	require.NoError(t, NewPrinter(&buf).Print(r))

	assert.NotContains(t, buf.String(), "\x1b[")
}
