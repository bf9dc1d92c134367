package models

// KPIEntry is a single headline metric shown on a dashboard card.
// Change is the period-over-period delta of the displayed value.
type KPIEntry struct {
	ID             string    `json:"id"`
	Dashboard      string    `json:"dashboard"`
	Title          string    `json:"title"`
	Value          string    `json:"value"`
	Change         string    `json:"change"`
	Trend          string    `json:"trend"` // up, down
	Target         string    `json:"target,omitempty"`
	TargetProgress int       `json:"target_progress,omitempty"` // percent of target reached
	Sparkline      []float64 `json:"sparkline,omitempty"`
	Threshold      string    `json:"threshold,omitempty"` // good, warning, critical
}

// LocationPerformance summarizes one store for the executive dashboard.
type LocationPerformance struct {
	Location   string  `json:"location"`
	Efficiency float64 `json:"efficiency"` // percent
	Turnover   float64 `json:"turnover"`   // times per year
	Waste      float64 `json:"waste"`      // percent
	Revenue    float64 `json:"revenue"`
}

// TrendPoint is one month of the executive trend analysis series.
type TrendPoint struct {
	Month      string  `json:"month"`
	Efficiency float64 `json:"efficiency"`
	Turnover   float64 `json:"turnover"`
	Investment float64 `json:"investment"` // millions
}
