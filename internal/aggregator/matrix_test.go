package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-insights-go/internal/dataset"
	"payment-insights-go/internal/filter"
	"payment-insights-go/internal/types"
)

func TestGroupedMeans(t *testing.T) {
	m := GroupedMeans(sample(), types.Platforms(), DefaultMetrics)
	require.Equal(t, []string{"Easypaisa", "JazzCash", "NayaPay"}, m.Rows)
	require.Equal(t, []string{"Satisfaction", "Security Trust", "Ease of Use"}, m.Cols)

	// Easypaisa: "Easypaisa" (5,4,5) and "Easypaisa Wallet" (2,1,2)
	v, _ := m.At("Easypaisa", "Satisfaction")
	assert.InDelta(t, 3.5, v, 1e-9)
	v, _ = m.At("Easypaisa", "Security Trust")
	assert.InDelta(t, 2.5, v, 1e-9)
	v, _ = m.At("Easypaisa", "Ease of Use")
	assert.InDelta(t, 3.5, v, 1e-9)

	// JazzCash: "JazzCash" (4,3,4) and "JazzCash App" (4,5,4)
	v, _ = m.At("JazzCash", "Security Trust")
	assert.InDelta(t, 4.0, v, 1e-9)

	v, _ = m.At("NayaPay", "Ease of Use")
	assert.InDelta(t, 3.0, v, 1e-9)
}

func TestGroupedMeansZeroFill(t *testing.T) {
	view := filter.Apply(sample(), filter.Selection{Frequency: "Daily"})
	m := GroupedMeans(view, types.Platforms(), DefaultMetrics)
	assert.Equal(t, []float64{0, 0, 0}, m.Values[2])

	m = GroupedMeans(empty(), types.Platforms(), DefaultMetrics)
	require.Len(t, m.Values, 3)
	for _, row := range m.Values {
		assert.Equal(t, []float64{0, 0, 0}, row)
	}
}

func TestGroupedMeansRange(t *testing.T) {
	table := sample()
	for _, p := range filter.PlatformOptions() {
		for _, f := range filter.FrequencyOptions() {
			view := filter.Apply(table, filter.Selection{Platform: p, Frequency: f})
			m := GroupedMeans(view, types.Platforms(), DefaultMetrics)
			for _, row := range m.Values {
				for _, v := range row {
					if v != 0 {
						assert.GreaterOrEqual(t, v, 1.0)
						assert.LessOrEqual(t, v, 5.0)
					}
				}
			}
		}
	}
}

func TestGroupedMeansSkipsUnmappedValues(t *testing.T) {
	table := dataset.NewTable("mem", []types.Response{
		{PrimaryWallet: "NayaPay", Satisfaction: "Satisfied"},
		{PrimaryWallet: "NayaPay", Satisfaction: "Unsure"},
	})
	m := GroupedMeans(table, []string{"NayaPay"}, DefaultMetrics)
	assert.Equal(t, []float64{4, 0, 0}, m.Values[0])
}

func TestCrossTab(t *testing.T) {
	ct := CrossTab(sample(), types.FieldPrimaryWallet, types.FieldEaseOfUse)
	assert.Equal(t, "primary_wallet", ct.RowField)
	assert.Equal(t, "ease_of_use", ct.ColField)
	assert.Equal(t, []string{"Easypaisa", "JazzCash", "NayaPay", "Easypaisa Wallet", "JazzCash App"}, ct.Rows)
	assert.Equal(t, []string{"Difficult to use", "Average", "Easy to use", "Very easy to use"}, ct.Cols)
	assert.Len(t, ct.Cells, 5)

	total := 0
	for _, c := range ct.Cells {
		total += c.Count
	}
	assert.Equal(t, 5, total)
}

func TestCrossTabGroupsPairs(t *testing.T) {
	table := dataset.NewTable("mem", []types.Response{
		{PrimaryWallet: "JazzCash", EaseOfUse: "Easy to use"},
		{PrimaryWallet: "JazzCash", EaseOfUse: "Easy to use"},
		{PrimaryWallet: "JazzCash", EaseOfUse: "Average"},
		{PrimaryWallet: "", EaseOfUse: "Average"},
	})
	ct := CrossTab(table, types.FieldPrimaryWallet, types.FieldEaseOfUse)
	assert.Equal(t, []types.CrossTabCell{
		{Row: "JazzCash", Col: "Easy to use", Count: 2},
		{Row: "JazzCash", Col: "Average", Count: 1},
	}, ct.Cells)
	assert.Equal(t, []string{"Average", "Easy to use"}, ct.Cols)
}

func TestCrossTabEmpty(t *testing.T) {
	ct := CrossTab(empty(), types.FieldPrimaryWallet, types.FieldEaseOfUse)
	assert.NotNil(t, ct.Cells)
	assert.Empty(t, ct.Cells)
	assert.Empty(t, ct.Rows)
}
