package repo

import (
	"sync"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/models"
)

// InMemoryAlertRepository is an in-memory implementation of AlertRepository.
type InMemoryAlertRepository struct {
	mu     sync.RWMutex
	alerts []models.Alert
}

func NewInMemoryAlertRepository() *InMemoryAlertRepository {
	return &InMemoryAlertRepository{}
}

func (r *InMemoryAlertRepository) GetAll() ([]models.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Alert, len(r.alerts))
	copy(out, r.alerts)
	return out, nil
}

func (r *InMemoryAlertRepository) Replace(alerts []models.Alert) error {
	next := make([]models.Alert, len(alerts))
	copy(next, alerts)

	r.mu.Lock()
	r.alerts = next
	r.mu.Unlock()
	return nil
}
