package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/aggregate"
	api "github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/http"
)

func TestGetDashboardHandler_AllDashboards(t *testing.T) {
	t.Cleanup(resetSessions)
	r := api.NewRouter()

	for _, dashboard := range []string{"operations", "executive", "supplier", "forecast"} {
		w := doGet(r, "/dashboards/"+dashboard)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200 OK, got %d: %s", dashboard, w.Code, w.Body.String())
		}
	}
}

func TestGetDashboardHandler_Unknown(t *testing.T) {
	r := api.NewRouter()

	w := doGet(r, "/dashboards/payroll")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestGetDashboardHandler_OperationsShape(t *testing.T) {
	t.Cleanup(resetSessions)
	r := api.NewRouter()

	w := doGet(r, "/dashboards/operations")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var view aggregate.OperationsView
	if err := json.NewDecoder(w.Body).Decode(&view); err != nil {
		t.Fatalf("error decoding view: %v", err)
	}
	if len(view.Products) == 0 {
		t.Error("seeded operations view has no products")
	}
	if len(view.Alerts) == 0 {
		t.Error("seeded operations view has no alerts")
	}
	if !view.Totals.HasData {
		t.Error("seeded operations view reports no data")
	}
}

func TestGetDashboardHandler_FilterNarrowsProducts(t *testing.T) {
	t.Cleanup(resetSessions)
	r := api.NewRouter()

	w := doGet(r, "/dashboards/operations")
	var unfiltered aggregate.OperationsView
	json.NewDecoder(w.Body).Decode(&unfiltered)

	location := unfiltered.Products[0].Location
	if w := toggleFilter(r, "operations", "location", location); w.Code != http.StatusOK {
		t.Fatalf("toggle failed: %d: %s", w.Code, w.Body.String())
	}

	w = doGet(r, "/dashboards/operations")
	var filtered aggregate.OperationsView
	json.NewDecoder(w.Body).Decode(&filtered)

	if len(filtered.Products) == 0 || len(filtered.Products) >= len(unfiltered.Products) {
		t.Fatalf("filtered %d of %d products, expected a strict subset",
			len(filtered.Products), len(unfiltered.Products))
	}
	for _, p := range filtered.Products {
		if p.Location != location {
			t.Errorf("product %s at %s leaked through the %s filter", p.ID, p.Location, location)
		}
	}
}

func TestGetDashboardHandler_SupplierBelowThreshold(t *testing.T) {
	t.Cleanup(resetSessions)
	r := api.NewRouter()

	w := doGet(r, "/dashboards/supplier")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var view aggregate.SupplierView
	if err := json.NewDecoder(w.Body).Decode(&view); err != nil {
		t.Fatalf("error decoding view: %v", err)
	}
	if view.Metrics.SupplierCount == 0 {
		t.Fatal("seeded supplier view has no suppliers")
	}

	below := 0
	for _, s := range view.Leaderboard {
		if s.OnTimeDeliveryPct < 95 {
			below++
		}
	}
	if view.BelowThreshold != below {
		t.Errorf("below-threshold count = %d, recomputed %d", view.BelowThreshold, below)
	}
}

func TestGetDashboardHandler_ForecastBands(t *testing.T) {
	t.Cleanup(resetSessions)
	r := api.NewRouter()

	w := doGet(r, "/dashboards/forecast")
	var view aggregate.ForecastView
	if err := json.NewDecoder(w.Body).Decode(&view); err != nil {
		t.Fatalf("error decoding view: %v", err)
	}

	for _, p := range view.Series {
		if p.ConfidenceLower > p.Forecast || p.ConfidenceUpper < p.Forecast {
			t.Errorf("period %s violates the confidence band invariant", p.Period)
		}
	}
}

func TestGetDashboardHandler_SortParams(t *testing.T) {
	t.Cleanup(resetSessions)
	r := api.NewRouter()

	w := doGet(r, "/dashboards/operations?sort=value&order=desc")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var view aggregate.OperationsView
	json.NewDecoder(w.Body).Decode(&view)
	for i := 1; i < len(view.Products); i++ {
		if view.Products[i].Value.GreaterThan(view.Products[i-1].Value) {
			t.Fatalf("products not sorted by value descending at index %d", i)
		}
	}
}
