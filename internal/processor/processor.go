// internal/processor/processor.go
package processor

import (
	"time"

	"payment-insights-go/internal/actionable"
	"payment-insights-go/internal/aggregator"
	"payment-insights-go/internal/config"
	"payment-insights-go/internal/dataset"
	"payment-insights-go/internal/filter"
	"payment-insights-go/internal/multivalue"
	"payment-insights-go/internal/types"
)

// Build runs one filter + aggregate cycle over table and assembles the full
// dashboard for sel. An empty selection result still yields every chart slot.
func Build(table *dataset.Table, sel filter.Selection, cat config.Catalog) types.Dashboard {
	start := time.Now()
	sel = sel.Normalized()
	view := filter.Apply(table, sel)

	platforms := multivalue.Parser{
		Known:    cat.Platforms,
		Sentinel: cat.PlatformSentinel,
		Fallback: multivalue.Platforms.Fallback,
	}

	d := types.Dashboard{
		Dataset: table.Source(),
		Filters: types.FilterInfo{
			Platform:  sel.Platform,
			Frequency: sel.Frequency,
			Matched:   view.Len(),
			Total:     table.Len(),
			Empty:     view.Len() == 0,
			Summary:   sel.Summary(view.Len(), table.Len()),
		},
	}

	// 1) charts
	d.Charts = types.Charts{
		PlatformUsage:    aggregator.FlattenedCounts(view, types.FieldPlatformsUsed, platforms),
		Satisfaction:     aggregator.CategoryCounts(view, types.FieldSatisfaction),
		Frequency:        aggregator.CategoryCounts(view, types.FieldUsageFrequency),
		TrustedSecurity:  aggregator.TopN(view, types.FieldMostTrustedSecurity, cat.TopN, cat.TrustExclude...),
		EaseByPlatform:   aggregator.CrossTab(view, types.FieldPrimaryWallet, types.FieldEaseOfUse),
		PayPalPreference: aggregator.CategoryCounts(view, types.FieldPreferPayPal),
		Heatmap:          aggregator.GroupedMeans(view, cat.HeatmapPlatforms, aggregator.DefaultMetrics),
		RecommendGauge:   gauge(view, cat),
		PayPalReasons:    aggregator.CategoryCounts(view, types.FieldPayPalReason),
		FeaturesToAdopt:  aggregator.FlattenedCounts(view, types.FieldPayPalFeaturesToAdopt, multivalue.Freeform),
	}

	// 2) KPI cards
	d.KPI = types.KPICards{
		TotalResponses:   view.Len(),
		PlatformsTracked: len(d.Charts.PlatformUsage),
		SatisfactionRate: aggregator.KPIPercent(view, types.FieldSatisfaction, cat.SatisfiedValues...),
		DailyUsersRate:   aggregator.KPIPercent(view, types.FieldUsageFrequency, cat.DailyValues...),
	}

	// 3) insight cards
	d.Insights = actionable.Generate(d)
	d.DurationMs = time.Since(start).Milliseconds()
	return d
}

func gauge(view *dataset.Table, cat config.Catalog) types.Gauge {
	pct, answered := aggregator.AnsweredPercent(view, types.FieldWouldRecommend, cat.RecommendYes...)
	return types.Gauge{
		Value:     pct,
		Reference: cat.RecommendReference,
		Delta:     pct - cat.RecommendReference,
		Answered:  answered,
	}
}
