package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/filter"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/models"
)

// HeatmapCell is one category tile of the operations heatmap.
type HeatmapCell struct {
	Category string             `json:"category"`
	Status   models.StockStatus `json:"status"` // worst status in the category
	Products int                `json:"products"`
	Alerts   int                `json:"alerts"`
	StockPct float64            `json:"stock_pct"` // mean stock depth vs reorder point, capped at 100
}

// OperationsTotals are the headline numbers above the products table.
type OperationsTotals struct {
	TotalValue    decimal.Decimal `json:"total_value"`
	LowStockCount int             `json:"low_stock_count"`
	CriticalCount int             `json:"critical_count"`
	HasData       bool            `json:"has_data"`
}

// OperationsView is the full view model of the operations dashboard.
type OperationsView struct {
	KPIs     []models.KPIEntry      `json:"kpis"`
	Heatmap  []HeatmapCell          `json:"heatmap"`
	Alerts   []models.Alert         `json:"alerts"`
	Products []models.InventoryItem `json:"products"`
	Totals   OperationsTotals       `json:"totals"`
}

// BuildOperations filters the record store by the session's location,
// category and severity dimensions and derives the operations view.
func BuildOperations(
	items []models.InventoryItem,
	alerts []models.Alert,
	kpis []models.KPIEntry,
	st *filter.State,
	sortReq Sort,
) OperationsView {
	var filtered []models.InventoryItem
	for _, it := range items {
		if st.Matches(filter.DimLocation, it.Location) && st.Matches(filter.DimCategory, it.Category) {
			filtered = append(filtered, it)
		}
	}

	// Alerts pass on their own severity plus the category of the item
	// they reference, when they reference one.
	categoryByItem := make(map[string]string, len(items))
	for _, it := range items {
		categoryByItem[it.ID] = it.Category
	}
	var visibleAlerts []models.Alert
	for _, a := range alerts {
		if !st.Matches(filter.DimSeverity, string(a.Severity)) {
			continue
		}
		if a.ItemID != "" {
			if cat, ok := categoryByItem[a.ItemID]; ok && !st.Matches(filter.DimCategory, cat) {
				continue
			}
		}
		visibleAlerts = append(visibleAlerts, a)
	}

	view := OperationsView{
		KPIs:     kpis,
		Heatmap:  buildHeatmap(filtered, visibleAlerts, categoryByItem),
		Alerts:   visibleAlerts,
		Products: rankProducts(filtered, sortReq),
		Totals:   operationsTotals(filtered),
	}
	return view
}

func rankProducts(items []models.InventoryItem, sortReq Sort) []models.InventoryItem {
	id := func(it models.InventoryItem) string { return it.ID }
	switch sortReq.Key {
	case "stock":
		return RankBy(items, func(it models.InventoryItem) float64 { return float64(it.CurrentStock) }, id, sortReq.Descending)
	case "value":
		return RankBy(items, func(it models.InventoryItem) float64 { v, _ := it.Value.Float64(); return v }, id, sortReq.Descending)
	default:
		// Default order is by id, independent of seed order.
		return RankBy(items, func(models.InventoryItem) float64 { return 0 }, id, false)
	}
}

func buildHeatmap(items []models.InventoryItem, alerts []models.Alert, categoryByItem map[string]string) []HeatmapCell {
	type acc struct {
		count  int
		alerts int
		worst  models.StockStatus
		depth  float64
	}
	cells := map[string]*acc{}
	for _, it := range items {
		c, ok := cells[it.Category]
		if !ok {
			c = &acc{worst: models.StatusGood}
			cells[it.Category] = c
		}
		c.count++
		c.depth += stockDepth(it)
		if worse(it.Status, c.worst) {
			c.worst = it.Status
		}
	}
	for _, a := range alerts {
		if a.ItemID == "" {
			continue
		}
		if cat, ok := categoryByItem[a.ItemID]; ok {
			if c, ok := cells[cat]; ok {
				c.alerts++
			}
		}
	}

	out := make([]HeatmapCell, 0, len(cells))
	for cat, c := range cells {
		out = append(out, HeatmapCell{
			Category: cat,
			Status:   c.worst,
			Products: c.count,
			Alerts:   c.alerts,
			StockPct: round1(c.depth / float64(c.count)),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// stockDepth expresses stock as a percentage of twice the reorder
// point, capped at 100, so a tile's color tracks how far above the
// reorder line a category sits.
func stockDepth(it models.InventoryItem) float64 {
	if it.ReorderPoint <= 0 {
		return 100
	}
	pct := float64(it.CurrentStock) / (2 * float64(it.ReorderPoint)) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

func worse(a, b models.StockStatus) bool {
	rank := map[models.StockStatus]int{
		models.StatusGood:     0,
		models.StatusWarning:  1,
		models.StatusCritical: 2,
	}
	return rank[a] > rank[b]
}

func operationsTotals(items []models.InventoryItem) OperationsTotals {
	t := OperationsTotals{TotalValue: decimal.Zero}
	for _, it := range items {
		t.TotalValue = t.TotalValue.Add(it.Value)
		switch it.Status {
		case models.StatusCritical:
			t.CriticalCount++
			t.LowStockCount++
		case models.StatusWarning:
			t.LowStockCount++
		}
	}
	t.HasData = len(items) > 0
	return t
}
