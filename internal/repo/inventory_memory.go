package repo

import (
	"sync"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/models"
)

// InMemoryInventoryRepository is an in-memory implementation of
// InventoryRepository. The refresh poller is the only writer, so a
// RWMutex around the slice swap is all the coordination needed.
type InMemoryInventoryRepository struct {
	mu    sync.RWMutex
	items []models.InventoryItem
}

// NewInMemoryInventoryRepository creates an empty repository.
func NewInMemoryInventoryRepository() *InMemoryInventoryRepository {
	return &InMemoryInventoryRepository{}
}

func (r *InMemoryInventoryRepository) GetAll() ([]models.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.InventoryItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

// Replace swaps the full collection, recomputing each item's derived
// status so the classification contract holds on every write path.
func (r *InMemoryInventoryRepository) Replace(items []models.InventoryItem) error {
	next := make([]models.InventoryItem, len(items))
	copy(next, items)
	for i := range next {
		next[i].Reclassify()
	}

	r.mu.Lock()
	r.items = next
	r.mu.Unlock()
	return nil
}
