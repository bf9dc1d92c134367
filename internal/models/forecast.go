package models

// ForecastPoint is one period of the demand forecast series.
// Historical and Actual are nil for future periods. The confidence
// band always satisfies ConfidenceLower <= Forecast <= ConfidenceUpper.
type ForecastPoint struct {
	Period          string   `json:"period"`
	Historical      *float64 `json:"historical"`
	Forecast        float64  `json:"forecast"`
	ConfidenceUpper float64  `json:"confidence_upper"`
	ConfidenceLower float64  `json:"confidence_lower"`
	Actual          *float64 `json:"actual"`
}

// DemandSupply is a per-category demand/supply pair. Gap and Status are
// derived by the aggregator: positive gap = shortage, negative = surplus.
type DemandSupply struct {
	Category string  `json:"category"`
	Demand   float64 `json:"demand"`
	Supply   float64 `json:"supply"`
}

// SeasonalIndex holds the weekly demand indices of one month,
// normalized to a 100 baseline.
type SeasonalIndex struct {
	Month string     `json:"month"`
	Weeks [4]float64 `json:"weeks"`
}

// ProductTrend is one row of the growth/decline product ranking.
// ChangePct is signed: positive = growth, negative = decline.
type ProductTrend struct {
	ID        string  `json:"id"`
	Product   string  `json:"product"`
	Category  string  `json:"category"`
	ChangePct float64 `json:"change_pct"`
}
