package repo

import "github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/models"

// The record store: one read-only repository per record family, seeded
// once at startup. Replace exists for the refresh poller, which swaps
// a whole collection without ever touching filter state.

// InventoryRepository is the data source for the operations dashboard's
// product table and heatmap.
type InventoryRepository interface {
	GetAll() ([]models.InventoryItem, error)
	Replace(items []models.InventoryItem) error
}

// AlertRepository serves the operations alert feed.
type AlertRepository interface {
	GetAll() ([]models.Alert, error)
	Replace(alerts []models.Alert) error
}

// SupplierRepository serves the supplier performance dashboard.
type SupplierRepository interface {
	GetAll() ([]models.Supplier, error)
	Trend() ([]models.SupplierTrendPoint, error)
	Replace(suppliers []models.Supplier) error
}

// ForecastRepository serves the demand forecasting dashboard.
type ForecastRepository interface {
	Points() ([]models.ForecastPoint, error)
	DemandSupply() ([]models.DemandSupply, error)
	Seasonal() ([]models.SeasonalIndex, error)
	Trends() ([]models.ProductTrend, error)
}

// KPIRepository serves headline cards plus the executive dashboard's
// location and trend series.
type KPIRepository interface {
	ByDashboard(dashboard string) ([]models.KPIEntry, error)
	Locations() ([]models.LocationPerformance, error)
	TrendPoints() ([]models.TrendPoint, error)
}
