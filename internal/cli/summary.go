package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/renesugar/gircheck/internal/exclude"
	"github.com/renesugar/gircheck/internal/services"
	"github.com/renesugar/gircheck/internal/tui"
	"github.com/renesugar/gircheck/pkg/gircheck"
)

type summaryLine struct {
	label string
	value string
}

func summaryLines(s *services.Summary) []summaryLine {
	lines := []summaryLine{{"Mode", s.Mode.String()}}

	if s.Mode == gircheck.ModeMerge {
		lines = append(lines,
			summaryLine{"Tables", fmt.Sprintf("%d", len(s.MergeInputs))},
			summaryLine{"Records", fmt.Sprintf("%d", s.Rows)},
			summaryLine{"Keys excluded", fmt.Sprintf("%d", len(s.MergeExcluded))},
		)
	} else {
		lines = append(lines,
			summaryLine{"Documents", fmt.Sprintf("%d processed, %d failed", s.Succeeded(), s.Failed)},
			summaryLine{"Excluded", formatExcluded(s.Excluded)},
			summaryLine{"Warnings", fmt.Sprintf("%d", s.Warnings)},
		)
		if s.Mode.IsInfo() {
			lines = append(lines, summaryLine{"Rows", fmt.Sprintf("%d", s.Rows)})
		}
	}

	lines = append(lines,
		summaryLine{"Artifacts", fmt.Sprintf("%d in %s", len(s.Artifacts), s.Output)},
		summaryLine{"Duration", s.Duration.Round(time.Millisecond).String()},
	)
	return lines
}

func formatExcluded(stats exclude.Stats) string {
	parts := make([]string, 0, len(exclude.Reasons))
	for _, reason := range exclude.Reasons {
		parts = append(parts, fmt.Sprintf("%s %d", reason, stats[reason]))
	}
	return fmt.Sprintf("%d (%s)", stats.Total(), strings.Join(parts, ", "))
}

// printSummary writes the end-of-run summary, styled when stdout is a terminal.
func printSummary(w io.Writer, s *services.Summary, runErr error, styled bool) {
	lines := summaryLines(s)

	if !styled {
		for _, l := range lines {
			fmt.Fprintf(w, "%-14s %s\n", l.label+":", l.value)
		}
		fmt.Fprintf(w, "%-14s %s\n", "Status:", statusText(runErr))
		return
	}

	rows := make([]string, 0, len(lines)+2)
	rows = append(rows, tui.TitleStyle.Render("gircheck"))
	for _, l := range lines {
		rows = append(rows, tui.LabelStyle.Render(l.label)+l.value)
	}
	rows = append(rows, tui.LabelStyle.Render("Status")+styledStatus(runErr))
	fmt.Fprintln(w, tui.BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
}

func statusText(err error) string {
	switch {
	case err == nil:
		return "ok"
	case services.IsDocumentFailure(err):
		return "completed with failed documents"
	default:
		return "failed"
	}
}

func styledStatus(err error) string {
	switch {
	case err == nil:
		return tui.SuccessStyle.Render(tui.SymbolCheck + " " + statusText(err))
	case services.IsDocumentFailure(err):
		return tui.WarningStyle.Render(tui.SymbolWarn + " " + statusText(err))
	default:
		return tui.ErrorStyle.Render(tui.SymbolCross + " " + statusText(err))
	}
}
