package models

import "testing"

func TestClassifyStock(t *testing.T) {
	cases := []struct {
		name         string
		currentStock int
		reorderPoint int
		want         StockStatus
	}{
		{"at reorder point", 100, 100, StatusCritical},
		{"below reorder point", 40, 100, StatusCritical},
		{"inside warning band", 140, 100, StatusWarning},
		{"at warning edge", 150, 100, StatusWarning},
		{"above warning band", 151, 100, StatusGood},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyStock(tc.currentStock, tc.reorderPoint); got != tc.want {
				t.Errorf("ClassifyStock(%d, %d) = %q, want %q", tc.currentStock, tc.reorderPoint, got, tc.want)
			}
		})
	}
}

func TestSetStockWarnFactor(t *testing.T) {
	t.Cleanup(func() { stockWarnFactor = 1.5 })

	SetStockWarnFactor(2)
	if got := ClassifyStock(180, 100); got != StatusWarning {
		t.Errorf("with a 2x band, 180/100 = %q, want %q", got, StatusWarning)
	}
	if got := ClassifyStock(220, 100); got != StatusGood {
		t.Errorf("with a 2x band, 220/100 = %q, want %q", got, StatusGood)
	}

	// A band at or below the reorder point is meaningless and ignored.
	SetStockWarnFactor(0.5)
	if stockWarnFactor != 2 {
		t.Errorf("factor 0.5 should be ignored, got %v", stockWarnFactor)
	}
}
