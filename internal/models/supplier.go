package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier holds the delivery and quality track record of a vendor.
type Supplier struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Category           string          `json:"category"`
	DeliveryTimeDays   float64         `json:"delivery_time_days"`
	OnTimeDeliveryPct  float64         `json:"on_time_delivery_pct"`
	QualityScore       float64         `json:"quality_score"`        // 0-5
	CostVariancePct    float64         `json:"cost_variance_pct"`    // signed, positive = overrun
	ReliabilityRating  string          `json:"reliability_rating"`   // A+, A, B+, ...
	ContractCompliance float64         `json:"contract_compliance"`  // 0-100
	TotalOrders        int             `json:"total_orders"`
	PerformanceScore   decimal.Decimal `json:"performance_score"` // 0-100 weighted composite
	CostTrend          string          `json:"cost_trend"`        // increasing, stable, decreasing
	LastDelivery       time.Time       `json:"last_delivery"`
}

// SupplierTrendPoint is one day of fleet-wide supplier performance.
type SupplierTrendPoint struct {
	Date                time.Time `json:"date"`
	DeliveryPerformance float64   `json:"delivery_performance"`
	CostIndex           float64   `json:"cost_index"`
	AvgDeliveryTime     float64   `json:"avg_delivery_time"`
}
