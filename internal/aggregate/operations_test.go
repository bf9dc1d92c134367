package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/filter"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/models"
)

func testItems() []models.InventoryItem {
	items := []models.InventoryItem{
		{ID: "A1", Name: "Bananas", Category: "produce", Location: "downtown", CurrentStock: 20, ReorderPoint: 30, Value: decimal.NewFromInt(50)},
		{ID: "A2", Name: "Milk", Category: "dairy", Location: "downtown", CurrentStock: 80, ReorderPoint: 40, Value: decimal.NewFromInt(120)},
		{ID: "A3", Name: "Bread", Category: "bakery", Location: "suburb", CurrentStock: 55, ReorderPoint: 40, Value: decimal.NewFromInt(90)},
	}
	for i := range items {
		items[i].LastMovement = time.Now()
		items[i].Reclassify()
	}
	return items
}

func testAlerts() []models.Alert {
	return []models.Alert{
		{ID: "al1", Severity: models.SeverityCritical, Category: models.AlertStockLevel, Message: "bananas below reorder point", ItemID: "A1"},
		{ID: "al2", Severity: models.SeverityInfo, Category: models.AlertReorder, Message: "bread reorder placed", ItemID: "A3"},
		{ID: "al3", Severity: models.SeverityWarning, Category: models.AlertEnvironment, Message: "fridge temperature drifting"},
	}
}

func TestBuildOperationsUnrestrictedEqualsInput(t *testing.T) {
	items := testItems()
	st := filter.NewOperationsState()

	view := BuildOperations(items, testAlerts(), nil, st, Sort{})

	if len(view.Products) != len(items) {
		t.Fatalf("unrestricted view has %d products, want %d", len(view.Products), len(items))
	}
	if len(view.Alerts) != 3 {
		t.Fatalf("unrestricted view has %d alerts, want 3", len(view.Alerts))
	}
	if !view.Totals.HasData {
		t.Error("totals over a non-empty selection must report data")
	}
}

func TestBuildOperationsFilteredIsSubset(t *testing.T) {
	items := testItems()
	st := filter.NewOperationsState()
	st.Toggle(filter.DimLocation, "downtown")

	view := BuildOperations(items, testAlerts(), nil, st, Sort{})

	byID := map[string]bool{}
	for _, it := range items {
		byID[it.ID] = true
	}
	for _, it := range view.Products {
		if !byID[it.ID] {
			t.Fatalf("filtered view contains %s which is not in the input", it.ID)
		}
		if it.Location != "downtown" {
			t.Errorf("item %s has location %s, want downtown", it.ID, it.Location)
		}
	}
	if len(view.Products) != 2 {
		t.Errorf("expected 2 downtown products, got %d", len(view.Products))
	}
}

func TestBuildOperationsSeverityFilter(t *testing.T) {
	st := filter.NewOperationsState()
	st.Toggle(filter.DimSeverity, "critical")

	view := BuildOperations(testItems(), testAlerts(), nil, st, Sort{})

	if len(view.Alerts) != 1 || view.Alerts[0].ID != "al1" {
		t.Fatalf("expected only the critical alert, got %+v", view.Alerts)
	}
}

func TestBuildOperationsCategoryFilterCascadesToAlerts(t *testing.T) {
	st := filter.NewOperationsState()
	st.Toggle(filter.DimCategory, "bakery")

	view := BuildOperations(testItems(), testAlerts(), nil, st, Sort{})

	// al1 references a produce item and must disappear; al3 references
	// no item and stays visible.
	for _, a := range view.Alerts {
		if a.ID == "al1" {
			t.Error("alert for a filtered-out item is still visible")
		}
	}
	found := false
	for _, a := range view.Alerts {
		if a.ID == "al3" {
			found = true
		}
	}
	if !found {
		t.Error("item-less alert should pass a category filter")
	}
}

func TestBuildOperationsEmptySelection(t *testing.T) {
	st := filter.NewOperationsState()
	st.Toggle(filter.DimLocation, "nowhere")

	view := BuildOperations(testItems(), testAlerts(), nil, st, Sort{})

	if len(view.Products) != 0 {
		t.Fatalf("expected no products, got %d", len(view.Products))
	}
	if view.Totals.HasData {
		t.Error("an empty selection must report no data, not zeros")
	}
}

func TestBuildOperationsSortByValue(t *testing.T) {
	st := filter.NewOperationsState()
	view := BuildOperations(testItems(), nil, nil, st, Sort{Key: "value", Descending: true})

	if view.Products[0].ID != "A2" {
		t.Errorf("expected most valuable product first, got %s", view.Products[0].ID)
	}
}

func TestBuildOperationsHeatmapWorstStatus(t *testing.T) {
	st := filter.NewOperationsState()
	view := BuildOperations(testItems(), testAlerts(), nil, st, Sort{})

	var produce *HeatmapCell
	for i := range view.Heatmap {
		if view.Heatmap[i].Category == "produce" {
			produce = &view.Heatmap[i]
		}
	}
	if produce == nil {
		t.Fatal("heatmap is missing the produce cell")
	}
	if produce.Status != models.StatusCritical {
		t.Errorf("produce cell status = %s, want critical", produce.Status)
	}
	if produce.Alerts != 1 {
		t.Errorf("produce cell alerts = %d, want 1", produce.Alerts)
	}
}
