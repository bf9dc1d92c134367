package repo

import (
	"sync"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/models"
)

// InMemorySupplierRepository is an in-memory implementation of
// SupplierRepository.
type InMemorySupplierRepository struct {
	mu        sync.RWMutex
	suppliers []models.Supplier
	trend     []models.SupplierTrendPoint
}

func NewInMemorySupplierRepository() *InMemorySupplierRepository {
	return &InMemorySupplierRepository{}
}

func (r *InMemorySupplierRepository) GetAll() ([]models.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Supplier, len(r.suppliers))
	copy(out, r.suppliers)
	return out, nil
}

func (r *InMemorySupplierRepository) Trend() ([]models.SupplierTrendPoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.SupplierTrendPoint, len(r.trend))
	copy(out, r.trend)
	return out, nil
}

func (r *InMemorySupplierRepository) Replace(suppliers []models.Supplier) error {
	next := make([]models.Supplier, len(suppliers))
	copy(next, suppliers)

	r.mu.Lock()
	r.suppliers = next
	r.mu.Unlock()
	return nil
}

// SetTrend seeds the fleet-wide performance series.
func (r *InMemorySupplierRepository) SetTrend(points []models.SupplierTrendPoint) {
	next := make([]models.SupplierTrendPoint, len(points))
	copy(next, points)

	r.mu.Lock()
	r.trend = next
	r.mu.Unlock()
}
