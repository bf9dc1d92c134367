package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/models"
)

// PostgresInventoryRepository reads inventory from Postgres so a real
// warehouse feed can replace the seeded sample data.
type PostgresInventoryRepository struct {
	db *sql.DB
}

func NewPostgresInventoryRepository(db *sql.DB) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{db: db}
}

func (r *PostgresInventoryRepository) GetAll() ([]models.InventoryItem, error) {
	query := `SELECT id, name, category, location, current_stock, reorder_point,
		velocity, last_movement, value FROM inventory_items ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		var it models.InventoryItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Location,
			&it.CurrentStock, &it.ReorderPoint, &it.Velocity, &it.LastMovement, &it.Value); err != nil {
			return nil, err
		}
		it.Reclassify()
		items = append(items, it)
	}
	return items, rows.Err()
}

// Replace is a no-op for the Postgres source: the database is the
// upstream feed, so the poller has nothing to push into it.
func (r *PostgresInventoryRepository) Replace(items []models.InventoryItem) error {
	return nil
}
