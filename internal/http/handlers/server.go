package handlers

import (
	"sync"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/aggregate"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/cache"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/export"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/filter"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/refresh"
	repo "github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/repo"
)

const (
	DashboardOperations = "operations"
	DashboardExecutive  = "executive"
	DashboardSupplier   = "supplier"
	DashboardForecast   = "forecast"
)

var (
	inventoryRepo repo.InventoryRepository
	alertRepo     repo.AlertRepository
	supplierRepo  repo.SupplierRepository
	forecastRepo  repo.ForecastRepository
	kpiRepo       repo.KPIRepository
	userRepo      repo.UserRepository

	exportSvc  *export.Service
	classifier *aggregate.Classifier
	snapshots  *cache.SnapshotCache
	poller     *refresh.Poller

	sessions  = newSessionStore()
	bookmarks = newBookmarkStores()
)

func SetInventoryRepo(r repo.InventoryRepository) {
	inventoryRepo = r
}

func SetAlertRepo(r repo.AlertRepository) {
	alertRepo = r
}

func SetSupplierRepo(r repo.SupplierRepository) {
	supplierRepo = r
}

func SetForecastRepo(r repo.ForecastRepository) {
	forecastRepo = r
}

func SetKPIRepo(r repo.KPIRepository) {
	kpiRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetExportService(s *export.Service) {
	exportSvc = s
}

func SetClassifier(c *aggregate.Classifier) {
	classifier = c
}

func SetSnapshotCache(c *cache.SnapshotCache) {
	snapshots = c
}

func SetPoller(p *refresh.Poller) {
	poller = p
}

// ResetSessions restores every dashboard to its default filter state.
// Used by tests and by the poller wiring at startup.
func ResetSessions() {
	sessions = newSessionStore()
	bookmarks = newBookmarkStores()
}

// sessionStore holds the active filter state of each dashboard. One
// session per dashboard: the suite models a single operator screen,
// not per-user sessions.
type sessionStore struct {
	mu     sync.Mutex
	states map[string]*filter.State
}

func newSessionStore() *sessionStore {
	return &sessionStore{states: map[string]*filter.State{
		DashboardOperations: filter.NewOperationsState(),
		DashboardExecutive:  filter.NewExecutiveState(),
		DashboardSupplier:   filter.NewSupplierState(),
		DashboardForecast:   filter.NewForecastState(),
	}}
}

func (s *sessionStore) get(dashboard string) (*filter.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[dashboard]
	return st, ok
}

// snapshot returns a deep copy safe to read outside the lock.
func (s *sessionStore) snapshot(dashboard string) (*filter.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[dashboard]
	if !ok {
		return nil, false
	}
	return st.Clone(), true
}

func (s *sessionStore) reset(dashboard string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch dashboard {
	case DashboardOperations:
		s.states[dashboard] = filter.NewOperationsState()
	case DashboardExecutive:
		s.states[dashboard] = filter.NewExecutiveState()
	case DashboardSupplier:
		s.states[dashboard] = filter.NewSupplierState()
	case DashboardForecast:
		s.states[dashboard] = filter.NewForecastState()
	default:
		return false
	}
	return true
}

func (s *sessionStore) mutate(dashboard string, fn func(*filter.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[dashboard]
	if !ok {
		return errUnknownDashboard
	}
	return fn(st)
}

func newBookmarkStores() map[string]*filter.BookmarkStore {
	return map[string]*filter.BookmarkStore{
		DashboardOperations: filter.NewBookmarkStore(),
		DashboardExecutive:  filter.NewBookmarkStore(),
		DashboardSupplier:   filter.NewBookmarkStore(),
		DashboardForecast:   filter.NewBookmarkStore(),
	}
}
