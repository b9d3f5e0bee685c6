package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-insights-go/internal/dataset"
	"payment-insights-go/internal/surveytest"
	"payment-insights-go/internal/types"
)

func TestApplyAllReturnsWholeTable(t *testing.T) {
	table := dataset.NewTable("mem", surveytest.Sample())
	view := Apply(table, Everything)
	assert.Equal(t, table.Rows(), view.Rows())

	view = Apply(table, Selection{})
	assert.Equal(t, table.Len(), view.Len())
}

func TestApplyIsSubset(t *testing.T) {
	table := dataset.NewTable("mem", surveytest.Sample())
	all := table.Rows()
	for _, p := range PlatformOptions() {
		for _, f := range FrequencyOptions() {
			view := Apply(table, Selection{Platform: p, Frequency: f})
			assert.LessOrEqual(t, view.Len(), table.Len())
			for _, r := range view.Rows() {
				assert.Contains(t, all, r)
			}
		}
	}
}

func TestApplyFrequencyExact(t *testing.T) {
	table := dataset.NewTable("mem", []types.Response{
		{UsageFrequency: "Daily"},
		{UsageFrequency: "Daily"},
		{UsageFrequency: "Rarely"},
		{UsageFrequency: "Occasionally"},
	})
	view := Apply(table, Selection{Platform: All, Frequency: "Daily"})
	require.Equal(t, 2, view.Len())

	view = Apply(table, Selection{Platform: All, Frequency: "Dai"})
	assert.Equal(t, 0, view.Len())
}

func TestApplyPlatformSubstring(t *testing.T) {
	table := dataset.NewTable("mem", []types.Response{
		{PrimaryWallet: "Easypaisa Wallet"},
		{PrimaryWallet: "JazzCash App"},
	})
	view := Apply(table, Selection{Platform: "Easypaisa", Frequency: All})
	require.Equal(t, 1, view.Len())
	assert.Equal(t, "Easypaisa Wallet", view.At(0).PrimaryWallet)

	view = Apply(table, Selection{Platform: "easypaisa", Frequency: All})
	assert.Equal(t, 0, view.Len())
}

func TestApplyComposesWithAnd(t *testing.T) {
	table := dataset.NewTable("mem", surveytest.Sample())
	view := Apply(table, Selection{Platform: "JazzCash", Frequency: "Daily"})
	require.Equal(t, 1, view.Len())
	assert.Equal(t, "b@example.com", view.At(0).Username)
}

func TestApplyEmptyResult(t *testing.T) {
	table := dataset.NewTable("mem", surveytest.Sample())
	view := Apply(table, Selection{Platform: "NayaPay", Frequency: "Daily"})
	assert.Equal(t, 0, view.Len())
	assert.Equal(t, 5, table.Len())
}

func TestSummary(t *testing.T) {
	s := Selection{Platform: "Easypaisa"}
	assert.Equal(t, "Platform: Easypaisa | Frequency: All | Showing 2 of 5 responses", s.Summary(2, 5))
	assert.Equal(t, "No data available for selected filters", s.Summary(0, 5))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Everything.Validate())
	assert.NoError(t, Selection{}.Validate())
	assert.NoError(t, Selection{Platform: "NayaPay", Frequency: "Several times a week"}.Validate())

	err := Selection{Platform: "PayPal", Frequency: "Hourly"}.Validate()
	require.ErrorIs(t, err, ErrInvalidSelection)
	assert.Contains(t, err.Error(), `platform "PayPal"`)
	assert.Contains(t, err.Error(), `frequency "Hourly"`)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "ALL|ALL", Selection{}.Key())
	assert.Equal(t, "JazzCash|Daily", Selection{Platform: "JazzCash", Frequency: "Daily"}.Key())
}
