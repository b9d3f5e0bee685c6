package dataset

import (
	"payment-insights-go/internal/multivalue"
	"payment-insights-go/internal/types"
)

type FieldFill struct {
	Field    string `json:"field"`
	Answered int    `json:"answered"`
	Missing  int    `json:"missing"`
}

// DatasetSummary describes a loaded table for logs and the /api/dataset endpoint.
type DatasetSummary struct {
	Source         string      `json:"source"`
	Fingerprint    string      `json:"fingerprint"`
	TotalResponses int         `json:"total_responses"`
	PrimaryWallets []string    `json:"primary_wallets"`
	Frequencies    []string    `json:"frequencies"`
	Fill           []FieldFill `json:"fill"`
}

// Describe counts answered/missing cells per field and lists the distinct
// primary wallets and frequencies in first-seen order.
func Describe(t *Table) DatasetSummary {
	ds := DatasetSummary{
		Source:         t.Source(),
		Fingerprint:    t.Fingerprint(),
		TotalResponses: t.Len(),
		PrimaryWallets: []string{},
		Frequencies:    []string{},
	}
	answered := make([]int, types.FieldCount)
	wallets := map[string]bool{}
	freqs := map[string]bool{}
	t.Each(func(_ int, r types.Response) {
		for _, f := range types.Fields() {
			if !multivalue.IsBlank(r.Value(f)) {
				answered[f]++
			}
		}
		if w := r.PrimaryWallet; w != "" && !wallets[w] {
			wallets[w] = true
			ds.PrimaryWallets = append(ds.PrimaryWallets, w)
		}
		if f := r.UsageFrequency; f != "" && !freqs[f] {
			freqs[f] = true
			ds.Frequencies = append(ds.Frequencies, f)
		}
	})
	for _, f := range types.Fields() {
		ds.Fill = append(ds.Fill, FieldFill{
			Field:    f.String(),
			Answered: answered[f],
			Missing:  t.Len() - answered[f],
		})
	}
	return ds
}
