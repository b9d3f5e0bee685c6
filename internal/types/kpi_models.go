// internal/types/kpi_models.go
package types

// --------------------------------------------
// Aggregation shapes, one per chart kind
// --------------------------------------------

// CategoryCount is one bar / slice of a category chart.
type CategoryCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CountList is an ordered category-count list. An empty list means no data.
type CountList []CategoryCount

// Total sums every count in the list.
func (c CountList) Total() int {
	n := 0
	for _, cc := range c {
		n += cc.Count
	}
	return n
}

// Get returns the count for label, 0 when absent.
func (c CountList) Get(label string) int {
	for _, cc := range c {
		if cc.Label == label {
			return cc.Count
		}
	}
	return 0
}

// RankedItem is one entry of a top-N ranking.
type RankedItem struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// RankedList is a count-descending ranking.
type RankedList []RankedItem

// Matrix is a numeric grid, Values[row][col]. Rows and Cols carry the labels.
type Matrix struct {
	Rows   []string    `json:"rows"`
	Cols   []string    `json:"cols"`
	Values [][]float64 `json:"values"`
}

// At returns the cell for a row/col label pair.
func (m Matrix) At(row, col string) (float64, bool) {
	for i, r := range m.Rows {
		if r != row {
			continue
		}
		for j, c := range m.Cols {
			if c == col {
				return m.Values[i][j], true
			}
		}
	}
	return 0, false
}

// CrossTabCell is the count for one observed (row, col) combination.
type CrossTabCell struct {
	Row   string `json:"row"`
	Col   string `json:"col"`
	Count int    `json:"count"`
}

// CrossTab holds grouped counts for a pair of fields.
type CrossTab struct {
	RowField string         `json:"row_field"`
	ColField string         `json:"col_field"`
	Rows     []string       `json:"rows"`
	Cols     []string       `json:"cols"`
	Cells    []CrossTabCell `json:"cells"`
}

// Gauge is a percentage against a reference value.
type Gauge struct {
	Value     float64 `json:"value"`
	Reference float64 `json:"reference"`
	Delta     float64 `json:"delta"`
	Answered  int     `json:"answered"`
}

// --------------------------------------------
// KPI cards
// --------------------------------------------
type KPICards struct {
	TotalResponses   int `json:"total_responses"`
	PlatformsTracked int `json:"platforms_tracked"`
	SatisfactionRate int `json:"satisfaction_rate"`
	DailyUsersRate   int `json:"daily_users_rate"`
}

// --------------------------------------------
// Filter echo + human readable summary
// --------------------------------------------
type FilterInfo struct {
	Platform  string `json:"platform"`
	Frequency string `json:"frequency"`
	Matched   int    `json:"matched"`
	Total     int    `json:"total"`
	Empty     bool   `json:"empty"`
	Summary   string `json:"summary"`
}

// --------------------------------------------
// The ten chart slots
// --------------------------------------------
type Charts struct {
	PlatformUsage    CountList  `json:"platform_usage"`
	Satisfaction     CountList  `json:"satisfaction"`
	Frequency        CountList  `json:"frequency"`
	TrustedSecurity  RankedList `json:"trusted_security"`
	EaseByPlatform   CrossTab   `json:"ease_by_platform"`
	PayPalPreference CountList  `json:"paypal_preference"`
	Heatmap          Matrix     `json:"heatmap"`
	RecommendGauge   Gauge      `json:"recommend_gauge"`
	PayPalReasons    CountList  `json:"paypal_reasons"`
	FeaturesToAdopt  CountList  `json:"features_to_adopt"`
}

// ActionCard is a headline insight derived from a dashboard.
type ActionCard struct {
	Insight string `json:"insight"`
	Action  string `json:"action"`
	Impact  string `json:"impact"`
}

// --------------------------------------------
// FINAL output delivered to the presentation layer
// --------------------------------------------
type Dashboard struct {
	Dataset    string       `json:"dataset"`
	Filters    FilterInfo   `json:"filters"`
	KPI        KPICards     `json:"kpi"`
	Charts     Charts       `json:"charts"`
	Insights   []ActionCard `json:"insights"`
	DurationMs int64        `json:"duration_ms"`
}
