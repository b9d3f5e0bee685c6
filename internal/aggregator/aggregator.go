// Package aggregator turns a (filtered) survey table into chart-ready
// summaries. Every function is pure and returns a well-formed empty or zero
// result for an empty table.
package aggregator

import (
	"math"
	"sort"

	"payment-insights-go/internal/dataset"
	"payment-insights-go/internal/multivalue"
	"payment-insights-go/internal/types"
)

// CategoryCounts groups the non-blank values of field. Ordinal fields come
// back in their declared order, unknown values after it in first-seen order;
// other fields are sorted by count, ties in first-seen order.
func CategoryCounts(view *dataset.Table, field types.Field) types.CountList {
	var labels []string
	view.Each(func(_ int, r types.Response) {
		if v := r.Value(field); !multivalue.IsBlank(v) {
			labels = append(labels, v)
		}
	})
	counts := countLabels(labels)
	if order := types.OrdinalOrder(field); order != nil {
		return ordinalSort(counts, order)
	}
	return countSort(counts)
}

// FlattenedCounts parses field with p on every row and counts the combined
// multiset of labels.
func FlattenedCounts(view *dataset.Table, field types.Field, p multivalue.Parser) types.CountList {
	var labels []string
	view.Each(func(_ int, r types.Response) {
		labels = append(labels, p.Parse(r.Value(field))...)
	})
	return countSort(countLabels(labels))
}

// KPIPercent is the share of rows whose field is one of targets, as a whole
// percentage over every row of view. An empty view gives 0.
func KPIPercent(view *dataset.Table, field types.Field, targets ...string) int {
	total := view.Len()
	if total == 0 {
		return 0
	}
	hits := 0
	view.Each(func(_ int, r types.Response) {
		if contains(targets, r.Value(field)) {
			hits++
		}
	})
	return int(math.RoundToEven(float64(hits) / float64(total) * 100))
}

// AnsweredPercent is the share of answered rows whose field is one of
// targets. Rows with a blank field are left out of the denominator. It also
// returns the number of answered rows.
func AnsweredPercent(view *dataset.Table, field types.Field, targets ...string) (float64, int) {
	answered, hits := 0, 0
	view.Each(func(_ int, r types.Response) {
		v := r.Value(field)
		if multivalue.IsBlank(v) {
			return
		}
		answered++
		if contains(targets, v) {
			hits++
		}
	})
	if answered == 0 {
		return 0, 0
	}
	return float64(hits) / float64(answered) * 100, answered
}

// TopN ranks the values of field by count, drops the excluded labels and
// keeps the first n. Ties keep the order the values first appear in.
func TopN(view *dataset.Table, field types.Field, n int, exclude ...string) types.RankedList {
	out := types.RankedList{}
	if n <= 0 {
		return out
	}
	for _, cc := range countSort(countLabels(nonBlank(view, field))) {
		if contains(exclude, cc.Label) {
			continue
		}
		if len(out) == n {
			break
		}
		out = append(out, types.RankedItem{Rank: len(out) + 1, Label: cc.Label, Count: cc.Count})
	}
	return out
}

type labelCount struct {
	label string
	count int
}

// countLabels counts labels keeping first-seen order.
func countLabels(labels []string) []labelCount {
	idx := map[string]int{}
	var out []labelCount
	for _, l := range labels {
		if i, ok := idx[l]; ok {
			out[i].count++
			continue
		}
		idx[l] = len(out)
		out = append(out, labelCount{label: l, count: 1})
	}
	return out
}

func countSort(counts []labelCount) types.CountList {
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].count > counts[j].count })
	return toCountList(counts)
}

func ordinalSort(counts []labelCount, order []string) types.CountList {
	rank := make(map[string]int, len(order))
	for i, o := range order {
		rank[o] = i
	}
	pos := func(l string) int {
		if r, ok := rank[l]; ok {
			return r
		}
		return len(order)
	}
	sort.SliceStable(counts, func(i, j int) bool { return pos(counts[i].label) < pos(counts[j].label) })
	return toCountList(counts)
}

func toCountList(counts []labelCount) types.CountList {
	out := make(types.CountList, 0, len(counts))
	for _, c := range counts {
		out = append(out, types.CategoryCount{Label: c.label, Count: c.count})
	}
	return out
}

func nonBlank(view *dataset.Table, field types.Field) []string {
	var out []string
	for _, v := range view.Values(field) {
		if !multivalue.IsBlank(v) {
			out = append(out, v)
		}
	}
	return out
}

func contains(list []string, v string) bool {
	for _, l := range list {
		if l == v {
			return true
		}
	}
	return false
}
