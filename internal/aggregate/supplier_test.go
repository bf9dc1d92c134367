package aggregate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/filter"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/models"
)

func testSuppliers() []models.Supplier {
	return []models.Supplier{
		{
			ID: "SUP001", Name: "FreshDirect Wholesale", Category: "produce",
			DeliveryTimeDays: 1.2, OnTimeDeliveryPct: 97.5, QualityScore: 4.8,
			CostVariancePct: -1.5, ContractCompliance: 98,
			PerformanceScore: decimal.NewFromFloat(95.4),
		},
		{
			ID: "SUP002", Name: "Metro Dairy Co", Category: "dairy",
			DeliveryTimeDays: 2.8, OnTimeDeliveryPct: 88.3, QualityScore: 4.1,
			CostVariancePct: 3.2, ContractCompliance: 91,
			PerformanceScore: decimal.NewFromFloat(82.7),
		},
	}
}

func TestBuildSupplierBelowThresholdCount(t *testing.T) {
	st := filter.NewSupplierState() // threshold defaults to 95

	view := BuildSupplier(testSuppliers(), nil, st, NewClassifier(testThresholds()))

	// 97.5 clears the threshold, 88.3 does not.
	if view.BelowThreshold != 1 {
		t.Fatalf("below-threshold count = %d, want 1", view.BelowThreshold)
	}
}

func TestBuildSupplierLeaderboardOrder(t *testing.T) {
	st := filter.NewSupplierState()
	view := BuildSupplier(testSuppliers(), nil, st, NewClassifier(testThresholds()))

	if len(view.Leaderboard) != 2 {
		t.Fatalf("leaderboard has %d rows, want 2", len(view.Leaderboard))
	}
	if view.Leaderboard[0].ID != "SUP001" {
		t.Errorf("best supplier should lead, got %s", view.Leaderboard[0].ID)
	}
}

func TestBuildSupplierMetrics(t *testing.T) {
	st := filter.NewSupplierState()
	view := BuildSupplier(testSuppliers(), nil, st, NewClassifier(testThresholds()))

	assert.Equal(t, 2, view.Metrics.SupplierCount)
	assert.InDelta(t, 2.0, view.Metrics.AvgDeliveryTime.Mean, 0.001)
	assert.InDelta(t, 92.9, view.Metrics.AvgOnTimePct.Mean, 0.001)
	assert.True(t, view.Metrics.AvgCostVariance.HasData)
}

func TestBuildSupplierFilterByID(t *testing.T) {
	st := filter.NewSupplierState()
	st.Toggle(filter.DimSupplier, "SUP002")

	view := BuildSupplier(testSuppliers(), nil, st, NewClassifier(testThresholds()))

	if len(view.Leaderboard) != 1 || view.Leaderboard[0].ID != "SUP002" {
		t.Fatalf("expected only SUP002, got %+v", view.Leaderboard)
	}
	if !view.Metrics.AvgOnTimePct.HasData {
		t.Error("metrics over one supplier should have data")
	}
}

func TestBuildSupplierEmptySelectionHasNoData(t *testing.T) {
	st := filter.NewSupplierState()
	st.Toggle(filter.DimSupplier, "SUP999")

	view := BuildSupplier(testSuppliers(), nil, st, NewClassifier(testThresholds()))

	if view.Metrics.AvgDeliveryTime.HasData {
		t.Error("mean over an empty selection must report no data")
	}
	if view.BelowThreshold != 0 {
		t.Errorf("below-threshold count = %d, want 0", view.BelowThreshold)
	}
}

func TestBuildSupplierMatrixGrades(t *testing.T) {
	st := filter.NewSupplierState()
	view := BuildSupplier(testSuppliers(), nil, st, NewClassifier(testThresholds()))

	byID := map[string]MatrixRow{}
	for _, row := range view.Matrix {
		byID[row.ID] = row
	}

	assert.Equal(t, SeverityGood, byID["SUP001"].DeliveryGrade)
	assert.Equal(t, SeverityGood, byID["SUP001"].QualityGrade)
	assert.Equal(t, SeverityCritical, byID["SUP002"].DeliveryGrade)
	assert.Equal(t, SeverityWarning, byID["SUP002"].QualityGrade)
	assert.Equal(t, SeverityWarning, byID["SUP002"].ComplianceGrade)
}

func TestComputePerformanceScoreMonotone(t *testing.T) {
	base := models.Supplier{
		DeliveryTimeDays: 2, OnTimeDeliveryPct: 90, QualityScore: 4.0,
		CostVariancePct: 2, ContractCompliance: 92,
	}

	better := base
	better.OnTimeDeliveryPct = 95
	if !ComputePerformanceScore(better).GreaterThan(ComputePerformanceScore(base)) {
		t.Error("better on-time delivery must raise the score")
	}

	better = base
	better.QualityScore = 4.8
	if !ComputePerformanceScore(better).GreaterThan(ComputePerformanceScore(base)) {
		t.Error("better quality must raise the score")
	}

	better = base
	better.DeliveryTimeDays = 1
	if !ComputePerformanceScore(better).GreaterThan(ComputePerformanceScore(base)) {
		t.Error("faster delivery must raise the score")
	}

	better = base
	better.CostVariancePct = 0
	if !ComputePerformanceScore(better).GreaterThan(ComputePerformanceScore(base)) {
		t.Error("tighter cost control must raise the score")
	}

	worse := base
	worse.CostVariancePct = -8 // drift in either direction is penalized
	if !ComputePerformanceScore(worse).LessThan(ComputePerformanceScore(base)) {
		t.Error("large negative cost variance must lower the score")
	}
}

func TestComputePerformanceScoreBounds(t *testing.T) {
	perfect := models.Supplier{
		DeliveryTimeDays: 1, OnTimeDeliveryPct: 100, QualityScore: 5,
		CostVariancePct: 0, ContractCompliance: 100,
	}
	got := ComputePerformanceScore(perfect)
	if !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("perfect supplier scores %s, want 100", got)
	}

	awful := models.Supplier{
		DeliveryTimeDays: 30, OnTimeDeliveryPct: 0, QualityScore: 0,
		CostVariancePct: 50, ContractCompliance: 0,
	}
	if ComputePerformanceScore(awful).IsNegative() {
		t.Error("score must never go below zero")
	}
}
