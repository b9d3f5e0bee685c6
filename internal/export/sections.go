// Package export serialises a dashboard as tabular sections: CSV, an xlsx
// workbook with one sheet per section, or rows for the markdown report.
package export

import (
	"strconv"

	"payment-insights-go/internal/types"
)

// Section is one titled table. Numeric marks the columns that hold counts or
// scores; every other column is free text even when it looks like a number.
type Section struct {
	Name    string
	Header  []string
	Numeric []bool
	Rows    [][]string
}

// IsNumeric reports whether column col holds numbers.
func (s Section) IsNumeric(col int) bool {
	return col < len(s.Numeric) && s.Numeric[col]
}

// Sections lays out every part of d in display order.
func Sections(d types.Dashboard) []Section {
	c := d.Charts
	out := []Section{
		{
			Name:    "Filters",
			Header:  []string{"Field", "Value"},
			Numeric: []bool{false, false},
			Rows: [][]string{
				{"Platform", d.Filters.Platform},
				{"Frequency", d.Filters.Frequency},
				{"Summary", d.Filters.Summary},
			},
		},
		{
			Name:    "KPI",
			Header:  []string{"Metric", "Value"},
			Numeric: []bool{false, true},
			Rows: [][]string{
				{"Total Responses", strconv.Itoa(d.KPI.TotalResponses)},
				{"Platforms Tracked", strconv.Itoa(d.KPI.PlatformsTracked)},
				{"Satisfaction Rate (%)", strconv.Itoa(d.KPI.SatisfactionRate)},
				{"Daily Users (%)", strconv.Itoa(d.KPI.DailyUsersRate)},
			},
		},
		counts("Platform Usage", "Platform", c.PlatformUsage),
		counts("Satisfaction", "Level", c.Satisfaction),
		counts("Usage Frequency", "Frequency", c.Frequency),
		ranked("Most Trusted for Security", "Platform", c.TrustedSecurity),
		crossTab("Ease of Use by Wallet", "Wallet", "Ease of Use", c.EaseByPlatform),
		counts("PayPal Preference", "Answer", c.PayPalPreference),
		matrix("Perception Heatmap", "Platform", c.Heatmap),
		{
			Name:    "Recommendation",
			Header:  []string{"Metric", "Value"},
			Numeric: []bool{false, true},
			Rows: [][]string{
				{"Would Recommend (%)", formatFloat(c.RecommendGauge.Value)},
				{"Reference (%)", formatFloat(c.RecommendGauge.Reference)},
				{"Delta", formatFloat(c.RecommendGauge.Delta)},
				{"Answered", strconv.Itoa(c.RecommendGauge.Answered)},
			},
		},
		counts("PayPal Reasons", "Reason", c.PayPalReasons),
		counts("Features to Adopt", "Feature", c.FeaturesToAdopt),
	}

	insights := Section{
		Name:    "Insights",
		Header:  []string{"Insight", "Action", "Impact"},
		Numeric: []bool{false, false, false},
	}
	for _, card := range d.Insights {
		insights.Rows = append(insights.Rows, []string{card.Insight, card.Action, card.Impact})
	}
	return append(out, insights)
}

func counts(name, label string, list types.CountList) Section {
	s := Section{Name: name, Header: []string{label, "Count"}, Numeric: []bool{false, true}}
	for _, cc := range list {
		s.Rows = append(s.Rows, []string{cc.Label, strconv.Itoa(cc.Count)})
	}
	return s
}

func ranked(name, label string, list types.RankedList) Section {
	s := Section{Name: name, Header: []string{"Rank", label, "Count"}, Numeric: []bool{true, false, true}}
	for _, ri := range list {
		s.Rows = append(s.Rows, []string{strconv.Itoa(ri.Rank), ri.Label, strconv.Itoa(ri.Count)})
	}
	return s
}

func crossTab(name, rowLabel, colLabel string, ct types.CrossTab) Section {
	s := Section{Name: name, Header: []string{rowLabel, colLabel, "Count"}, Numeric: []bool{false, false, true}}
	for _, cell := range ct.Cells {
		s.Rows = append(s.Rows, []string{cell.Row, cell.Col, strconv.Itoa(cell.Count)})
	}
	return s
}

func matrix(name, rowLabel string, m types.Matrix) Section {
	s := Section{Name: name, Header: append([]string{rowLabel}, m.Cols...)}
	s.Numeric = make([]bool, len(s.Header))
	for i := 1; i < len(s.Numeric); i++ {
		s.Numeric[i] = true
	}
	for i, row := range m.Rows {
		rec := []string{row}
		for _, v := range m.Values[i] {
			rec = append(rec, formatFloat(v))
		}
		s.Rows = append(s.Rows, rec)
	}
	return s
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
