package repo

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/models"
)

// Sample dataset standing in for the real warehouse feed. Seeded once
// at startup; the poller re-seeds it on every refresh tick until a
// Postgres-backed source is configured.

func SampleInventory(now time.Time) []models.InventoryItem {
	items := []models.InventoryItem{
		{
			ID: "ORG-BAN-001", Name: "Organic Bananas", Category: "fresh-produce",
			Location: "store-001", CurrentStock: 12, ReorderPoint: 50,
			Velocity: models.VelocityHigh, LastMovement: now.Add(-2 * time.Hour),
			Value: decimal.NewFromFloat(156.80),
		},
		{
			ID: "DAI-YOG-003", Name: "Greek Yogurt", Category: "dairy",
			Location: "store-001", CurrentStock: 45, ReorderPoint: 30,
			Velocity: models.VelocityMedium, LastMovement: now.Add(-4 * time.Hour),
			Value: decimal.NewFromFloat(337.50),
		},
		{
			ID: "BEV-COF-012", Name: "Premium Coffee Beans", Category: "beverages",
			Location: "store-002", CurrentStock: 78, ReorderPoint: 25,
			Velocity: models.VelocityHigh, LastMovement: now.Add(-1 * time.Hour),
			Value: decimal.NewFromFloat(1247.00),
		},
		{
			ID: "SNK-PRO-008", Name: "Protein Bars", Category: "snacks",
			Location: "store-002", CurrentStock: 156, ReorderPoint: 75,
			Velocity: models.VelocityVeryHigh, LastMovement: now.Add(-30 * time.Minute),
			Value: decimal.NewFromFloat(624.00),
		},
		{
			ID: "FRZ-ICE-015", Name: "Premium Ice Cream", Category: "frozen",
			Location: "store-003", CurrentStock: 89, ReorderPoint: 40,
			Velocity: models.VelocityMedium, LastMovement: now.Add(-3 * time.Hour),
			Value: decimal.NewFromFloat(534.00),
		},
	}
	for i := range items {
		items[i].Reclassify()
	}
	return items
}

func SampleAlerts(now time.Time) []models.Alert {
	return []models.Alert{
		{
			ID: "ALR-001", Severity: models.SeverityCritical, Category: models.AlertStockLevel,
			Title: "Critical Stock Level", Message: "Organic Bananas - Only 12 units remaining",
			Timestamp: now.Add(-5 * time.Minute), ItemID: "ORG-BAN-001",
		},
		{
			ID: "ALR-002", Severity: models.SeverityWarning, Category: models.AlertExpiration,
			Title: "Expiration Alert", Message: "Greek Yogurt expires in 2 days - 45 units",
			Timestamp: now.Add(-10 * time.Minute), ItemID: "DAI-YOG-003",
		},
		{
			ID: "ALR-003", Severity: models.SeverityInfo, Category: models.AlertReorder,
			Title: "Reorder Triggered", Message: "Automatic reorder placed for Premium Coffee Beans",
			Timestamp: now.Add(-15 * time.Minute), ItemID: "BEV-COF-012",
		},
		{
			ID: "ALR-004", Severity: models.SeverityWarning, Category: models.AlertDemand,
			Title: "High Demand Detected", Message: "Protein Bars showing 300% increase in velocity",
			Timestamp: now.Add(-20 * time.Minute), ItemID: "SNK-PRO-008",
		},
		{
			ID: "ALR-005", Severity: models.SeverityCritical, Category: models.AlertEnvironment,
			Title: "Temperature Alert", Message: "Frozen section temperature above threshold",
			Timestamp: now.Add(-25 * time.Minute),
		},
	}
}

func SampleSuppliers() []models.Supplier {
	lastDelivery := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	return []models.Supplier{
		{
			ID: "SUP001", Name: "FreshProduce Co.", Category: "fresh-produce",
			DeliveryTimeDays: 2.3, OnTimeDeliveryPct: 97.5, QualityScore: 4.8,
			CostVariancePct: -2.1, ReliabilityRating: "A+", ContractCompliance: 98.2,
			TotalOrders: 245, PerformanceScore: decimal.NewFromFloat(94.7),
			CostTrend: "decreasing", LastDelivery: lastDelivery,
		},
		{
			ID: "SUP002", Name: "Dairy Excellence Ltd.", Category: "dairy",
			DeliveryTimeDays: 1.8, OnTimeDeliveryPct: 99.2, QualityScore: 4.9,
			CostVariancePct: 1.5, ReliabilityRating: "A+", ContractCompliance: 99.1,
			TotalOrders: 189, PerformanceScore: decimal.NewFromFloat(96.8),
			CostTrend: "stable", LastDelivery: lastDelivery.Add(-105 * time.Minute),
		},
		{
			ID: "SUP003", Name: "Frozen Foods Direct", Category: "frozen",
			DeliveryTimeDays: 3.1, OnTimeDeliveryPct: 92.8, QualityScore: 4.6,
			CostVariancePct: -0.8, ReliabilityRating: "A", ContractCompliance: 95.7,
			TotalOrders: 167, PerformanceScore: decimal.NewFromFloat(89.3),
			CostTrend: "increasing", LastDelivery: lastDelivery.Add(230 * time.Minute),
		},
		{
			ID: "SUP004", Name: "Beverage Solutions Inc.", Category: "beverages",
			DeliveryTimeDays: 2.7, OnTimeDeliveryPct: 94.6, QualityScore: 4.7,
			CostVariancePct: 0.3, ReliabilityRating: "A", ContractCompliance: 96.8,
			TotalOrders: 203, PerformanceScore: decimal.NewFromFloat(91.2),
			CostTrend: "stable", LastDelivery: lastDelivery.Add(45 * time.Minute),
		},
		{
			ID: "SUP005", Name: "Snack World Distributors", Category: "snacks",
			DeliveryTimeDays: 4.2, OnTimeDeliveryPct: 88.3, QualityScore: 4.3,
			CostVariancePct: 3.2, ReliabilityRating: "B+", ContractCompliance: 91.4,
			TotalOrders: 134, PerformanceScore: decimal.NewFromFloat(83.7),
			CostTrend: "increasing", LastDelivery: lastDelivery.Add(6 * time.Hour),
		},
		{
			ID: "SUP006", Name: "Organic Harvest Co.", Category: "fresh-produce",
			DeliveryTimeDays: 2.9, OnTimeDeliveryPct: 96.1, QualityScore: 4.9,
			CostVariancePct: 2.8, ReliabilityRating: "A", ContractCompliance: 97.3,
			TotalOrders: 156, PerformanceScore: decimal.NewFromFloat(92.6),
			CostTrend: "stable", LastDelivery: lastDelivery.Add(-70 * time.Minute),
		},
	}
}

func SampleSupplierTrend() []models.SupplierTrendPoint {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	return []models.SupplierTrendPoint{
		{Date: day(1), DeliveryPerformance: 94.2, CostIndex: 100, AvgDeliveryTime: 2.8},
		{Date: day(2), DeliveryPerformance: 95.1, CostIndex: 99.8, AvgDeliveryTime: 2.7},
		{Date: day(3), DeliveryPerformance: 93.8, CostIndex: 100.2, AvgDeliveryTime: 2.9},
		{Date: day(4), DeliveryPerformance: 96.3, CostIndex: 99.5, AvgDeliveryTime: 2.6},
		{Date: day(5), DeliveryPerformance: 94.7, CostIndex: 100.1, AvgDeliveryTime: 2.8},
		{Date: day(6), DeliveryPerformance: 95.9, CostIndex: 99.7, AvgDeliveryTime: 2.5},
		{Date: day(7), DeliveryPerformance: 97.2, CostIndex: 99.3, AvgDeliveryTime: 2.4},
		{Date: day(8), DeliveryPerformance: 94.5, CostIndex: 100.4, AvgDeliveryTime: 2.9},
		{Date: day(9), DeliveryPerformance: 96.8, CostIndex: 99.6, AvgDeliveryTime: 2.6},
		{Date: day(10), DeliveryPerformance: 95.4, CostIndex: 100.0, AvgDeliveryTime: 2.7},
		{Date: day(11), DeliveryPerformance: 97.1, CostIndex: 99.4, AvgDeliveryTime: 2.5},
		{Date: day(12), DeliveryPerformance: 94.9, CostIndex: 100.3, AvgDeliveryTime: 2.8},
		{Date: day(13), DeliveryPerformance: 96.2, CostIndex: 99.8, AvgDeliveryTime: 2.6},
		{Date: day(14), DeliveryPerformance: 95.7, CostIndex: 99.9, AvgDeliveryTime: 2.7},
		{Date: day(15), DeliveryPerformance: 96.5, CostIndex: 99.6, AvgDeliveryTime: 2.6},
	}
}

func SampleForecast() []models.ForecastPoint {
	f := func(v float64) *float64 { return &v }
	return []models.ForecastPoint{
		{Period: "Week 1", Historical: f(2400), Forecast: 2380, ConfidenceUpper: 2450, ConfidenceLower: 2310, Actual: f(2420)},
		{Period: "Week 2", Historical: f(2210), Forecast: 2290, ConfidenceUpper: 2360, ConfidenceLower: 2220, Actual: f(2250)},
		{Period: "Week 3", Historical: f(2290), Forecast: 2340, ConfidenceUpper: 2410, ConfidenceLower: 2270, Actual: f(2320)},
		{Period: "Week 4", Historical: f(2000), Forecast: 2180, ConfidenceUpper: 2250, ConfidenceLower: 2110, Actual: f(2150)},
		{Period: "Week 5", Historical: f(2181), Forecast: 2280, ConfidenceUpper: 2350, ConfidenceLower: 2210},
		{Period: "Week 6", Historical: f(2500), Forecast: 2420, ConfidenceUpper: 2490, ConfidenceLower: 2350},
		{Period: "Week 7", Historical: f(2100), Forecast: 2250, ConfidenceUpper: 2320, ConfidenceLower: 2180},
		{Period: "Week 8", Forecast: 2380, ConfidenceUpper: 2450, ConfidenceLower: 2310},
		{Period: "Week 9", Forecast: 2450, ConfidenceUpper: 2520, ConfidenceLower: 2380},
		{Period: "Week 10", Forecast: 2520, ConfidenceUpper: 2590, ConfidenceLower: 2450},
		{Period: "Week 11", Forecast: 2600, ConfidenceUpper: 2670, ConfidenceLower: 2530},
		{Period: "Week 12", Forecast: 2680, ConfidenceUpper: 2750, ConfidenceLower: 2610},
	}
}

func SampleDemandSupply() []models.DemandSupply {
	return []models.DemandSupply{
		{Category: "fresh-produce", Demand: 2400, Supply: 2200},
		{Category: "dairy", Demand: 1800, Supply: 1850},
		{Category: "meat-poultry", Demand: 1600, Supply: 1580},
		{Category: "bakery", Demand: 1200, Supply: 1250},
		{Category: "beverages", Demand: 2000, Supply: 1950},
		{Category: "frozen", Demand: 1400, Supply: 1420},
	}
}

func SampleSeasonal() []models.SeasonalIndex {
	return []models.SeasonalIndex{
		{Month: "Jan", Weeks: [4]float64{85, 90, 88, 92}},
		{Month: "Feb", Weeks: [4]float64{88, 85, 90, 95}},
		{Month: "Mar", Weeks: [4]float64{92, 95, 98, 100}},
		{Month: "Apr", Weeks: [4]float64{95, 98, 100, 105}},
		{Month: "May", Weeks: [4]float64{100, 105, 108, 110}},
		{Month: "Jun", Weeks: [4]float64{105, 110, 115, 118}},
		{Month: "Jul", Weeks: [4]float64{110, 115, 120, 125}},
		{Month: "Aug", Weeks: [4]float64{115, 120, 118, 115}},
		{Month: "Sep", Weeks: [4]float64{110, 108, 105, 100}},
		{Month: "Oct", Weeks: [4]float64{105, 100, 95, 90}},
		{Month: "Nov", Weeks: [4]float64{95, 90, 88, 85}},
		{Month: "Dec", Weeks: [4]float64{90, 88, 85, 82}},
	}
}

func SampleProductTrends() []models.ProductTrend {
	return []models.ProductTrend{
		{ID: "TRD-001", Product: "Organic Spinach", Category: "fresh-produce", ChangePct: 45.2},
		{ID: "TRD-002", Product: "Plant-Based Milk", Category: "dairy", ChangePct: 38.7},
		{ID: "TRD-003", Product: "Quinoa Salad", Category: "prepared-foods", ChangePct: 32.1},
		{ID: "TRD-004", Product: "Kombucha", Category: "beverages", ChangePct: 28.9},
		{ID: "TRD-005", Product: "Protein Bars", Category: "snacks", ChangePct: 24.5},
		{ID: "TRD-006", Product: "White Bread", Category: "bakery", ChangePct: -22.3},
		{ID: "TRD-007", Product: "Sugary Cereals", Category: "breakfast", ChangePct: -18.7},
		{ID: "TRD-008", Product: "Soda Drinks", Category: "beverages", ChangePct: -15.2},
		{ID: "TRD-009", Product: "Processed Meat", Category: "deli", ChangePct: -12.8},
		{ID: "TRD-010", Product: "Candy Bars", Category: "confectionery", ChangePct: -10.4},
	}
}

func SampleKPIs() []models.KPIEntry {
	return []models.KPIEntry{
		{
			ID: "inventory-value", Dashboard: "operations", Title: "Total Inventory Value",
			Value: "$2,847,392", Change: "+5.2%", Trend: "up",
			Sparkline: []float64{2650000, 2720000, 2680000, 2750000, 2800000, 2847392},
			Threshold: "good",
		},
		{
			ID: "low-stock-alerts", Dashboard: "operations", Title: "Low Stock Alerts",
			Value: "23", Change: "-12.5%", Trend: "down",
			Sparkline: []float64{35, 32, 28, 26, 25, 23},
			Threshold: "warning",
		},
		{
			ID: "fulfillment-rate", Dashboard: "operations", Title: "Fulfillment Rate",
			Value: "98.7%", Change: "+1.3%", Trend: "up",
			Sparkline: []float64{96.2, 97.1, 97.8, 98.1, 98.4, 98.7},
			Threshold: "good",
		},
		{
			ID: "stock-turnover", Dashboard: "operations", Title: "Stock Turnover Rate",
			Value: "4.2x", Change: "+0.8x", Trend: "up",
			Sparkline: []float64{3.1, 3.4, 3.7, 3.9, 4.0, 4.2},
			Threshold: "good",
		},
		{
			ID: "inventory-investment", Dashboard: "executive", Title: "Total Inventory Investment",
			Value: "$2.4M", Change: "+8.2%", Trend: "up", Target: "$2.5M", TargetProgress: 96,
		},
		{
			ID: "turnover-rate", Dashboard: "executive", Title: "Inventory Turnover Rate",
			Value: "12.4x", Change: "+15.3%", Trend: "up", Target: "12.0x", TargetProgress: 103,
		},
		{
			ID: "waste-reduction", Dashboard: "executive", Title: "Waste Reduction",
			Value: "18.7%", Change: "-2.1%", Trend: "down", Target: "20.0%", TargetProgress: 94,
		},
		{
			ID: "revenue-impact", Dashboard: "executive", Title: "Revenue Impact",
			Value: "+$340K", Change: "+22.8%", Trend: "up", Target: "+$300K", TargetProgress: 113,
		},
	}
}

func SampleLocations() []models.LocationPerformance {
	return []models.LocationPerformance{
		{Location: "store-001", Efficiency: 94, Turnover: 13.2, Waste: 2.1, Revenue: 145000},
		{Location: "store-002", Efficiency: 87, Turnover: 11.8, Waste: 3.4, Revenue: 132000},
		{Location: "store-003", Efficiency: 91, Turnover: 12.5, Waste: 2.8, Revenue: 138000},
		{Location: "store-004", Efficiency: 89, Turnover: 12.1, Waste: 3.1, Revenue: 135000},
		{Location: "store-005", Efficiency: 96, Turnover: 14.1, Waste: 1.8, Revenue: 152000},
		{Location: "store-006", Efficiency: 85, Turnover: 11.3, Waste: 3.7, Revenue: 128000},
	}
}

func SampleTrend() []models.TrendPoint {
	return []models.TrendPoint{
		{Month: "Jan", Efficiency: 82, Turnover: 10.5, Investment: 2.1},
		{Month: "Feb", Efficiency: 84, Turnover: 11.2, Investment: 2.2},
		{Month: "Mar", Efficiency: 86, Turnover: 11.8, Investment: 2.3},
		{Month: "Apr", Efficiency: 88, Turnover: 12.1, Investment: 2.3},
		{Month: "May", Efficiency: 90, Turnover: 12.4, Investment: 2.4},
		{Month: "Jun", Efficiency: 92, Turnover: 12.8, Investment: 2.4},
	}
}

// SeedAll loads the sample dataset into the given in-memory stores.
func SeedAll(
	inv *InMemoryInventoryRepository,
	alerts *InMemoryAlertRepository,
	suppliers *InMemorySupplierRepository,
	forecast *InMemoryForecastRepository,
	kpis *InMemoryKPIRepository,
) {
	now := time.Now().UTC()
	inv.Replace(SampleInventory(now))
	alerts.Replace(SampleAlerts(now))
	suppliers.Replace(SampleSuppliers())
	suppliers.SetTrend(SampleSupplierTrend())
	forecast.Seed(SampleForecast(), SampleDemandSupply(), SampleSeasonal(), SampleProductTrends())
	kpis.Seed(SampleKPIs(), SampleLocations(), SampleTrend())
}
