// Package filter narrows a survey table to a platform / frequency selection.
package filter

import (
	"fmt"
	"strings"

	"payment-insights-go/internal/dataset"
	"payment-insights-go/internal/types"
)

// All disables a selector.
const All = "ALL"

// Selection is the pair of cross-filters the dashboard exposes.
type Selection struct {
	Platform  string `json:"platform" validate:"platform"`
	Frequency string `json:"frequency" validate:"frequency"`
}

// Everything selects the whole table.
var Everything = Selection{Platform: All, Frequency: All}

// Normalized maps empty selectors to All.
func (s Selection) Normalized() Selection {
	if strings.TrimSpace(s.Platform) == "" {
		s.Platform = All
	}
	if strings.TrimSpace(s.Frequency) == "" {
		s.Frequency = All
	}
	return s
}

// Key is a stable cache key for the selection.
func (s Selection) Key() string {
	n := s.Normalized()
	return n.Platform + "|" + n.Frequency
}

// Apply returns the rows of t matching both selectors.
//
// The platform selector matches primary_wallet by case-sensitive substring,
// since that answer is free text ("Easypaisa Wallet"). This also matches
// values such as "NotEasypaisa". The frequency selector is a closed category
// and matches exactly.
func Apply(t *dataset.Table, s Selection) *dataset.Table {
	s = s.Normalized()
	return t.Derive(func(r types.Response) bool {
		if s.Platform != All && !strings.Contains(r.PrimaryWallet, s.Platform) {
			return false
		}
		if s.Frequency != All && r.UsageFrequency != s.Frequency {
			return false
		}
		return true
	})
}

// Summary renders the filter-info line shown above the charts.
func (s Selection) Summary(matched, total int) string {
	if matched == 0 {
		return "No data available for selected filters"
	}
	n := s.Normalized()
	return fmt.Sprintf("Platform: %s | Frequency: %s | Showing %d of %d responses",
		display(n.Platform), display(n.Frequency), matched, total)
}

func display(v string) string {
	if v == All {
		return "All"
	}
	return v
}
