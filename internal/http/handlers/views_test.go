package handlers

import (
	"testing"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/aggregate"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/models"
)

func TestExecutiveSheetsLocationColumns(t *testing.T) {
	v := aggregate.ExecutiveView{
		Locations: []aggregate.LocationRow{{
			LocationPerformance: models.LocationPerformance{
				Location:   "downtown",
				Efficiency: 94.2,
				Turnover:   12.4,
				Waste:      2.1,
				Revenue:    125000,
			},
			Grade:        aggregate.SeverityGood,
			RevenueShare: 100,
		}},
	}

	sheets := executiveSheets(v)
	if len(sheets) != 2 || sheets[1].Name != "Locations" {
		t.Fatalf("expected KPIs and Locations sheets, got %+v", sheets)
	}

	row := sheets[1].Rows[0]
	for _, key := range []string{"location", "revenue", "revenue_share", "turnover", "waste", "efficiency", "grade"} {
		if _, ok := row.Get(key); !ok {
			t.Errorf("locations row is missing the %s column", key)
		}
	}
	if got, _ := row.Get("turnover"); got != "12.4" {
		t.Errorf("turnover = %q, want 12.4", got)
	}
	if got, _ := row.Get("waste"); got != "2.1" {
		t.Errorf("waste = %q, want 2.1", got)
	}
}
