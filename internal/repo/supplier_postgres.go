package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/models"
)

// PostgresSupplierRepository reads supplier performance from Postgres.
type PostgresSupplierRepository struct {
	db *sql.DB
}

func NewPostgresSupplierRepository(db *sql.DB) *PostgresSupplierRepository {
	return &PostgresSupplierRepository{db: db}
}

func (r *PostgresSupplierRepository) GetAll() ([]models.Supplier, error) {
	query := `SELECT id, name, category, delivery_time_days, on_time_delivery_pct,
		quality_score, cost_variance_pct, reliability_rating, contract_compliance,
		total_orders, performance_score, cost_trend, last_delivery
		FROM suppliers ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []models.Supplier
	for rows.Next() {
		var s models.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.DeliveryTimeDays,
			&s.OnTimeDeliveryPct, &s.QualityScore, &s.CostVariancePct, &s.ReliabilityRating,
			&s.ContractCompliance, &s.TotalOrders, &s.PerformanceScore, &s.CostTrend,
			&s.LastDelivery); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func (r *PostgresSupplierRepository) Trend() ([]models.SupplierTrendPoint, error) {
	query := `SELECT date, delivery_performance, cost_index, avg_delivery_time
		FROM supplier_trend ORDER BY date`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []models.SupplierTrendPoint
	for rows.Next() {
		var p models.SupplierTrendPoint
		if err := rows.Scan(&p.Date, &p.DeliveryPerformance, &p.CostIndex, &p.AvgDeliveryTime); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// Replace is a no-op: Postgres is the upstream feed.
func (r *PostgresSupplierRepository) Replace(suppliers []models.Supplier) error {
	return nil
}
