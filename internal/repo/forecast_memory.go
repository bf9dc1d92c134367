package repo

import (
	"sync"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/models"
)

// InMemoryForecastRepository is an in-memory implementation of
// ForecastRepository.
type InMemoryForecastRepository struct {
	mu           sync.RWMutex
	points       []models.ForecastPoint
	demandSupply []models.DemandSupply
	seasonal     []models.SeasonalIndex
	trends       []models.ProductTrend
}

func NewInMemoryForecastRepository() *InMemoryForecastRepository {
	return &InMemoryForecastRepository{}
}

func (r *InMemoryForecastRepository) Points() ([]models.ForecastPoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.ForecastPoint, len(r.points))
	copy(out, r.points)
	return out, nil
}

func (r *InMemoryForecastRepository) DemandSupply() ([]models.DemandSupply, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.DemandSupply, len(r.demandSupply))
	copy(out, r.demandSupply)
	return out, nil
}

func (r *InMemoryForecastRepository) Seasonal() ([]models.SeasonalIndex, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.SeasonalIndex, len(r.seasonal))
	copy(out, r.seasonal)
	return out, nil
}

func (r *InMemoryForecastRepository) Trends() ([]models.ProductTrend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.ProductTrend, len(r.trends))
	copy(out, r.trends)
	return out, nil
}

// Seed loads the full forecast dataset in one shot.
func (r *InMemoryForecastRepository) Seed(
	points []models.ForecastPoint,
	demandSupply []models.DemandSupply,
	seasonal []models.SeasonalIndex,
	trends []models.ProductTrend,
) {
	r.mu.Lock()
	r.points = points
	r.demandSupply = demandSupply
	r.seasonal = seasonal
	r.trends = trends
	r.mu.Unlock()
}
