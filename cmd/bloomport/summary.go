package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/aweller/bloomport/internal/stats"
)

var (
	styleSummaryApp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	styleSummaryCount = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))
)

// printSummary writes the per-app tally. The plain form is the summary's
// canonical "<app>: <n> entry|entries" rendering; the styled form aligns
// the counts into a column for terminal display.
func printSummary(w io.Writer, summary stats.Summary, styled bool) {
	if !styled {
		fmt.Fprint(w, summary.String())
		return
	}

	width := 0
	for _, ac := range summary {
		if aw := runewidth.StringWidth(ac.App); aw > width {
			width = aw
		}
	}

	for _, ac := range summary {
		noun := "entries"
		if ac.Count == 1 {
			noun = "entry"
		}
		pad := strings.Repeat(" ", width-runewidth.StringWidth(ac.App))
		fmt.Fprintf(w, "%s%s  %s\n",
			styleSummaryApp.Render(ac.App),
			pad,
			styleSummaryCount.Render(fmt.Sprintf("%d %s", ac.Count, noun)),
		)
	}
}
