package actionable

import (
	"fmt"

	"payment-insights-go/internal/types"
)

const (
	weakScore         = 3.0
	satisfactionFloor = 50
)

// Generate derives headline cards from a built dashboard. It always returns at
// least one card.
func Generate(d types.Dashboard) []types.ActionCard {
	if d.Filters.Empty || d.KPI.TotalResponses == 0 {
		return []types.ActionCard{{
			Insight: "No data for the selected filters",
			Action:  "Widen the platform or frequency selection",
			Impact:  "None until responses match",
		}}
	}

	var cards []types.ActionCard
	g := d.Charts.RecommendGauge
	if g.Answered > 0 && g.Value < g.Reference {
		cards = append(cards, types.ActionCard{
			Insight: fmt.Sprintf("Only %.0f%% would recommend their wallet (target %.0f%%)", g.Value, g.Reference),
			Action:  "Follow up with detractors on the top PayPal-style features they asked for",
			Impact:  "Lift word-of-mouth adoption",
		})
	}
	if row, col, v, ok := weakestCell(d.Charts.Heatmap); ok && v < weakScore {
		cards = append(cards, types.ActionCard{
			Insight: fmt.Sprintf("%s scores %.1f/5 on %s", row, v, col),
			Action:  fmt.Sprintf("Review the %s experience for %s users", col, row),
			Impact:  "Close the weakest perception gap",
		})
	}
	if d.KPI.SatisfactionRate < satisfactionFloor {
		cards = append(cards, types.ActionCard{
			Insight: fmt.Sprintf("Satisfaction is %d%% across %d responses", d.KPI.SatisfactionRate, d.KPI.TotalResponses),
			Action:  "Prioritise the most requested features and reliability fixes",
			Impact:  "Reduce churn to competing wallets",
		})
	}
	if len(cards) == 0 {
		cards = append(cards, types.ActionCard{
			Insight: "No strong pattern detected",
			Action:  "Monitor and collect more responses",
			Impact:  "Low immediate intervention",
		})
	}
	return cards
}

// weakestCell finds the lowest non-zero mean. Zero cells have no data.
func weakestCell(m types.Matrix) (string, string, float64, bool) {
	var (
		row, col string
		low      float64
		found    bool
	)
	for i, vals := range m.Values {
		for j, v := range vals {
			if v == 0 {
				continue
			}
			if !found || v < low {
				row, col, low, found = m.Rows[i], m.Cols[j], v, true
			}
		}
	}
	return row, col, low, found
}
