package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/filter"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/models"
)

// SupplierMetrics is the KPI strip above the supplier dashboard.
type SupplierMetrics struct {
	SupplierCount   int     `json:"supplier_count"`
	AvgDeliveryTime Summary `json:"avg_delivery_time"`
	AvgOnTimePct    Summary `json:"avg_on_time_pct"`
	AvgCostVariance Summary `json:"avg_cost_variance"`
}

// MatrixRow is one supplier in the comparison matrix with its
// delivery grade against the session's threshold.
type MatrixRow struct {
	models.Supplier
	DeliveryGrade   Severity `json:"delivery_grade"`
	QualityGrade    Severity `json:"quality_grade"`
	ComplianceGrade Severity `json:"compliance_grade"`
}

// SupplierView is the full view model of the supplier dashboard.
type SupplierView struct {
	Metrics        SupplierMetrics             `json:"metrics"`
	Leaderboard    []models.Supplier           `json:"leaderboard"`
	Matrix         []MatrixRow                 `json:"matrix"`
	BelowThreshold int                         `json:"below_threshold"`
	Trend          []models.SupplierTrendPoint `json:"trend"`
}

// BuildSupplier filters suppliers by the session's supplier and
// category dimensions and derives the supplier performance view.
func BuildSupplier(
	suppliers []models.Supplier,
	trend []models.SupplierTrendPoint,
	st *filter.State,
	cls *Classifier,
) SupplierView {
	var filtered []models.Supplier
	for _, s := range suppliers {
		if st.Matches(filter.DimSupplier, s.ID) && st.Matches(filter.DimCategory, s.Category) {
			filtered = append(filtered, s)
		}
	}

	threshold := st.Settings.DeliveryThreshold

	deliveryTimes := make([]float64, len(filtered))
	onTime := make([]float64, len(filtered))
	costVar := make([]float64, len(filtered))
	for i, s := range filtered {
		deliveryTimes[i] = s.DeliveryTimeDays
		onTime[i] = s.OnTimeDeliveryPct
		costVar[i] = s.CostVariancePct
	}

	leaderboard := RankBy(filtered,
		func(s models.Supplier) float64 { f, _ := s.PerformanceScore.Float64(); return f },
		func(s models.Supplier) string { return s.ID },
		true)

	matrix := make([]MatrixRow, len(leaderboard))
	below := 0
	for i, s := range leaderboard {
		matrix[i] = MatrixRow{
			Supplier:        s,
			DeliveryGrade:   cls.ClassifyDelivery(s.OnTimeDeliveryPct, threshold),
			QualityGrade:    cls.Classify(MetricQualityScore, s.QualityScore),
			ComplianceGrade: cls.Classify(MetricContractCompliance, s.ContractCompliance),
		}
		if s.OnTimeDeliveryPct < threshold {
			below++
		}
	}

	return SupplierView{
		Metrics: SupplierMetrics{
			SupplierCount:   len(filtered),
			AvgDeliveryTime: Summarize(deliveryTimes),
			AvgOnTimePct:    Summarize(onTime),
			AvgCostVariance: Summarize(costVar),
		},
		Leaderboard:    leaderboard,
		Matrix:         matrix,
		BelowThreshold: below,
		Trend:          trend,
	}
}

// Performance score weights. The composite is monotone in every
// constituent: better delivery, quality, compliance, speed or cost
// control can only raise the score.
var (
	weightOnTime     = decimal.NewFromFloat(0.30)
	weightQuality    = decimal.NewFromFloat(0.25)
	weightCompliance = decimal.NewFromFloat(0.20)
	weightSpeed      = decimal.NewFromFloat(0.15)
	weightCost       = decimal.NewFromFloat(0.10)
)

// ComputePerformanceScore derives the 0-100 composite for suppliers
// whose upstream feed does not provide one. Quality (0-5) is rescaled
// to 0-100; delivery time loses 15 points per day beyond the first;
// cost variance loses 10 points per percent of drift in either
// direction.
func ComputePerformanceScore(s models.Supplier) decimal.Decimal {
	quality := decimal.NewFromFloat(s.QualityScore * 20)
	speed := decimal.NewFromFloat(clampScore(100 - (s.DeliveryTimeDays-1)*15))
	cost := decimal.NewFromFloat(clampScore(100 - abs(s.CostVariancePct)*10))

	score := decimal.NewFromFloat(s.OnTimeDeliveryPct).Mul(weightOnTime).
		Add(quality.Mul(weightQuality)).
		Add(decimal.NewFromFloat(s.ContractCompliance).Mul(weightCompliance)).
		Add(speed.Mul(weightSpeed)).
		Add(cost.Mul(weightCost))
	return score.Round(1)
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
