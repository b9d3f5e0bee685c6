package aggregator

import (
	"strings"

	"payment-insights-go/internal/dataset"
	"payment-insights-go/internal/multivalue"
	"payment-insights-go/internal/types"
)

// Metric is one heatmap column: an ordinal field scored 1..5.
type Metric struct {
	Name  string
	Field types.Field
}

// DefaultMetrics are the heatmap columns of the dashboard.
var DefaultMetrics = []Metric{
	{Name: "Satisfaction", Field: types.FieldSatisfaction},
	{Name: "Security Trust", Field: types.FieldDataProtectionConfidence},
	{Name: "Ease of Use", Field: types.FieldEaseOfUse},
}

// GroupedMeans builds a platforms × metrics matrix of mean ordinal scores.
// A platform's rows are those whose primary_wallet contains it. Values
// outside a metric's domain are skipped; a cell with nothing to average is
// 0.
func GroupedMeans(view *dataset.Table, platforms []string, metrics []Metric) types.Matrix {
	m := types.Matrix{
		Rows:   append([]string{}, platforms...),
		Cols:   make([]string, len(metrics)),
		Values: make([][]float64, len(platforms)),
	}
	for j, metric := range metrics {
		m.Cols[j] = metric.Name
	}
	for i, p := range platforms {
		sums := make([]int, len(metrics))
		ns := make([]int, len(metrics))
		view.Each(func(_ int, r types.Response) {
			if !strings.Contains(r.PrimaryWallet, p) {
				return
			}
			for j, metric := range metrics {
				if s, ok := types.OrdinalScore(metric.Field, r.Value(metric.Field)); ok {
					sums[j] += s
					ns[j]++
				}
			}
		})
		row := make([]float64, len(metrics))
		for j := range metrics {
			if ns[j] > 0 {
				row[j] = float64(sums[j]) / float64(ns[j])
			}
		}
		m.Values[i] = row
	}
	return m
}

// CrossTab counts rows per observed (rowField, colField) pair. Rows are in
// first-seen order; columns follow the ordinal order when colField has one.
// Rows with either value blank are left out.
func CrossTab(view *dataset.Table, rowField, colField types.Field) types.CrossTab {
	ct := types.CrossTab{
		RowField: rowField.String(),
		ColField: colField.String(),
		Rows:     []string{},
		Cols:     []string{},
		Cells:    []types.CrossTabCell{},
	}
	type pair struct{ row, col string }
	idx := map[pair]int{}
	seenRow := map[string]bool{}
	var cols []string
	view.Each(func(_ int, r types.Response) {
		rv, cv := r.Value(rowField), r.Value(colField)
		if multivalue.IsBlank(rv) || multivalue.IsBlank(cv) {
			return
		}
		if !seenRow[rv] {
			seenRow[rv] = true
			ct.Rows = append(ct.Rows, rv)
		}
		cols = append(cols, cv)
		k := pair{rv, cv}
		if i, ok := idx[k]; ok {
			ct.Cells[i].Count++
			return
		}
		idx[k] = len(ct.Cells)
		ct.Cells = append(ct.Cells, types.CrossTabCell{Row: rv, Col: cv, Count: 1})
	})
	colCounts := countLabels(cols)
	var ordered types.CountList
	if order := types.OrdinalOrder(colField); order != nil {
		ordered = ordinalSort(colCounts, order)
	} else {
		ordered = toCountList(colCounts)
	}
	for _, c := range ordered {
		ct.Cols = append(ct.Cols, c.Label)
	}
	return ct
}
