package handlers

import (
	"fmt"
	"strconv"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/aggregate"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/export"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/filter"
)

// buildView aggregates the record store into the named dashboard's
// view model under the given filter state. The state is a snapshot:
// aggregation never mutates it.
func buildView(dashboard string, st *filter.State, sortReq aggregate.Sort) (any, error) {
	switch dashboard {
	case DashboardOperations:
		items, err := inventoryRepo.GetAll()
		if err != nil {
			return nil, err
		}
		alerts, err := alertRepo.GetAll()
		if err != nil {
			return nil, err
		}
		kpis, err := kpiRepo.ByDashboard(DashboardOperations)
		if err != nil {
			return nil, err
		}
		return aggregate.BuildOperations(items, alerts, kpis, st, sortReq), nil

	case DashboardExecutive:
		kpis, err := kpiRepo.ByDashboard(DashboardExecutive)
		if err != nil {
			return nil, err
		}
		locations, err := kpiRepo.Locations()
		if err != nil {
			return nil, err
		}
		trend, err := kpiRepo.TrendPoints()
		if err != nil {
			return nil, err
		}
		return aggregate.BuildExecutive(kpis, locations, trend, st, classifier), nil

	case DashboardSupplier:
		suppliers, err := supplierRepo.GetAll()
		if err != nil {
			return nil, err
		}
		trend, err := supplierRepo.Trend()
		if err != nil {
			return nil, err
		}
		return aggregate.BuildSupplier(suppliers, trend, st, classifier), nil

	case DashboardForecast:
		points, err := forecastRepo.Points()
		if err != nil {
			return nil, err
		}
		demandSupply, err := forecastRepo.DemandSupply()
		if err != nil {
			return nil, err
		}
		seasonal, err := forecastRepo.Seasonal()
		if err != nil {
			return nil, err
		}
		trends, err := forecastRepo.Trends()
		if err != nil {
			return nil, err
		}
		return aggregate.BuildForecast(points, demandSupply, seasonal, trends, st), nil
	}
	return nil, errUnknownDashboard
}

// buildSheets renders the dashboard's view model as flat export
// sections, one sheet per dashboard panel.
func buildSheets(dashboard string, st *filter.State) ([]export.Sheet, error) {
	view, err := buildView(dashboard, st, aggregate.Sort{})
	if err != nil {
		return nil, err
	}

	switch v := view.(type) {
	case aggregate.OperationsView:
		return operationsSheets(v), nil
	case aggregate.ExecutiveView:
		return executiveSheets(v), nil
	case aggregate.SupplierView:
		return supplierSheets(v), nil
	case aggregate.ForecastView:
		return forecastSheets(v), nil
	}
	return nil, errUnknownDashboard
}

func operationsSheets(v aggregate.OperationsView) []export.Sheet {
	products := make([]export.Row, 0, len(v.Products))
	for _, it := range v.Products {
		products = append(products, export.Row{
			{Key: "id", Value: it.ID},
			{Key: "name", Value: it.Name},
			{Key: "category", Value: it.Category},
			{Key: "location", Value: it.Location},
			{Key: "current_stock", Value: strconv.Itoa(it.CurrentStock)},
			{Key: "reorder_point", Value: strconv.Itoa(it.ReorderPoint)},
			{Key: "status", Value: string(it.Status)},
			{Key: "value", Value: it.Value.StringFixed(2)},
		})
	}

	alerts := make([]export.Row, 0, len(v.Alerts))
	for _, a := range v.Alerts {
		alerts = append(alerts, export.Row{
			{Key: "id", Value: a.ID},
			{Key: "severity", Value: string(a.Severity)},
			{Key: "category", Value: string(a.Category)},
			{Key: "message", Value: a.Message},
			{Key: "item_id", Value: a.ItemID},
		})
	}

	heatmap := make([]export.Row, 0, len(v.Heatmap))
	for _, c := range v.Heatmap {
		heatmap = append(heatmap, export.Row{
			{Key: "category", Value: c.Category},
			{Key: "products", Value: strconv.Itoa(c.Products)},
			{Key: "alerts", Value: strconv.Itoa(c.Alerts)},
			{Key: "status", Value: string(c.Status)},
			{Key: "stock_pct", Value: formatFloat(c.StockPct)},
		})
	}

	return []export.Sheet{
		{Name: "Products", Rows: products},
		{Name: "Alerts", Rows: alerts},
		{Name: "Heatmap", Rows: heatmap},
	}
}

func executiveSheets(v aggregate.ExecutiveView) []export.Sheet {
	kpis := make([]export.Row, 0, len(v.KPIs))
	for _, k := range v.KPIs {
		kpis = append(kpis, export.Row{
			{Key: "title", Value: k.Title},
			{Key: "value", Value: k.Value},
			{Key: "change", Value: k.Change},
			{Key: "trend", Value: k.Trend},
			{Key: "target_progress", Value: strconv.Itoa(k.TargetProgress)},
		})
	}

	locations := make([]export.Row, 0, len(v.Locations))
	for _, l := range v.Locations {
		locations = append(locations, export.Row{
			{Key: "location", Value: l.Location},
			{Key: "revenue", Value: formatFloat(l.Revenue)},
			{Key: "revenue_share", Value: formatFloat(l.RevenueShare)},
			{Key: "turnover", Value: formatFloat(l.Turnover)},
			{Key: "waste", Value: formatFloat(l.Waste)},
			{Key: "efficiency", Value: formatFloat(l.Efficiency)},
			{Key: "grade", Value: string(l.Grade)},
		})
	}

	return []export.Sheet{
		{Name: "KPIs", Rows: kpis},
		{Name: "Locations", Rows: locations},
	}
}

func supplierSheets(v aggregate.SupplierView) []export.Sheet {
	leaderboard := make([]export.Row, 0, len(v.Leaderboard))
	for _, s := range v.Leaderboard {
		leaderboard = append(leaderboard, export.Row{
			{Key: "id", Value: s.ID},
			{Key: "name", Value: s.Name},
			{Key: "performance_score", Value: s.PerformanceScore.StringFixed(1)},
			{Key: "on_time_pct", Value: formatFloat(s.OnTimeDeliveryPct)},
			{Key: "quality_score", Value: formatFloat(s.QualityScore)},
			{Key: "delivery_days", Value: formatFloat(s.DeliveryTimeDays)},
		})
	}

	matrix := make([]export.Row, 0, len(v.Matrix))
	for _, m := range v.Matrix {
		matrix = append(matrix, export.Row{
			{Key: "id", Value: m.ID},
			{Key: "name", Value: m.Name},
			{Key: "delivery_grade", Value: string(m.DeliveryGrade)},
			{Key: "quality_grade", Value: string(m.QualityGrade)},
			{Key: "compliance_grade", Value: string(m.ComplianceGrade)},
			{Key: "cost_variance_pct", Value: formatFloat(m.CostVariancePct)},
		})
	}

	return []export.Sheet{
		{Name: "Leaderboard", Rows: leaderboard},
		{Name: "Matrix", Rows: matrix},
	}
}

func forecastSheets(v aggregate.ForecastView) []export.Sheet {
	series := make([]export.Row, 0, len(v.Series))
	for _, p := range v.Series {
		row := export.Row{
			{Key: "period", Value: p.Period},
			{Key: "forecast", Value: formatFloat(p.Forecast)},
			{Key: "confidence_lower", Value: formatFloat(p.ConfidenceLower)},
			{Key: "confidence_upper", Value: formatFloat(p.ConfidenceUpper)},
		}
		if p.Actual != nil {
			row = append(row, export.Field{Key: "actual", Value: formatFloat(*p.Actual)})
		} else {
			row = append(row, export.Field{Key: "actual", Value: ""})
		}
		series = append(series, row)
	}

	gaps := make([]export.Row, 0, len(v.Gaps))
	for _, g := range v.Gaps {
		gaps = append(gaps, export.Row{
			{Key: "category", Value: g.Category},
			{Key: "demand", Value: formatFloat(g.Demand)},
			{Key: "supply", Value: formatFloat(g.Supply)},
			{Key: "gap", Value: formatFloat(g.Gap)},
			{Key: "status", Value: g.Status},
		})
	}

	return []export.Sheet{
		{Name: "Forecast", Rows: series},
		{Name: "Gaps", Rows: gaps},
	}
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
