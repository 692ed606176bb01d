package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aweller/bloomport/internal/bloom"
)

// AppCount is one app's session count.
type AppCount struct {
	App   string
	Count int
}

// Summary is per-app session counts sorted ascending by count. Apps with
// equal counts keep the order they first appeared in the export.
type Summary []AppCount

// Tally counts sessions per app. Every record counts, including
// zero-duration ones the exporter later drops.
func Tally(records []bloom.Record) Summary {
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		if _, seen := counts[r.AppName]; !seen {
			order = append(order, r.AppName)
		}
		counts[r.AppName]++
	}

	summary := make(Summary, 0, len(order))
	for _, app := range order {
		summary = append(summary, AppCount{App: app, Count: counts[app]})
	}
	sort.SliceStable(summary, func(i, j int) bool {
		return summary[i].Count < summary[j].Count
	})
	return summary
}

// String renders one "<app>: <n> entry|entries" line per app,
// newline-terminated.
func (s Summary) String() string {
	var b strings.Builder
	for _, ac := range s {
		noun := "entries"
		if ac.Count == 1 {
			noun = "entry"
		}
		fmt.Fprintf(&b, "%s: %d %s\n", ac.App, ac.Count, noun)
	}
	return b.String()
}
