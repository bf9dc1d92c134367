package repo

import (
	"sync"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/models"
)

// InMemoryKPIRepository is an in-memory implementation of KPIRepository.
type InMemoryKPIRepository struct {
	mu        sync.RWMutex
	entries   []models.KPIEntry
	locations []models.LocationPerformance
	trend     []models.TrendPoint
}

func NewInMemoryKPIRepository() *InMemoryKPIRepository {
	return &InMemoryKPIRepository{}
}

func (r *InMemoryKPIRepository) ByDashboard(dashboard string) ([]models.KPIEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.KPIEntry
	for _, e := range r.entries {
		if e.Dashboard == dashboard {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *InMemoryKPIRepository) Locations() ([]models.LocationPerformance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.LocationPerformance, len(r.locations))
	copy(out, r.locations)
	return out, nil
}

func (r *InMemoryKPIRepository) TrendPoints() ([]models.TrendPoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.TrendPoint, len(r.trend))
	copy(out, r.trend)
	return out, nil
}

// Seed loads all executive series in one shot.
func (r *InMemoryKPIRepository) Seed(
	entries []models.KPIEntry,
	locations []models.LocationPerformance,
	trend []models.TrendPoint,
) {
	r.mu.Lock()
	r.entries = entries
	r.locations = locations
	r.trend = trend
	r.mu.Unlock()
}
