package filter

import (
	"strings"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/domain"
)

// Dimension names shared across dashboards.
const (
	DimLocation = "location"
	DimCategory = "category"
	DimSupplier = "supplier"
	DimSeverity = "severity"
)

// Settings are the non-dimension knobs of a dashboard: enums,
// numeric thresholds and boolean toggles. Dashboards only surface the
// fields they need; the rest stay at their zero value.
type Settings struct {
	Period             string  `json:"period,omitempty"`     // 7d, 30d, 90d, monthly, quarterly
	TimeRange          string  `json:"time_range,omitempty"` // 24h, 7d, 12weeks, ...
	ForecastHorizon    int     `json:"forecast_horizon,omitempty"`
	ConfidenceInterval int     `json:"confidence_interval,omitempty"`
	DeliveryThreshold  float64 `json:"delivery_threshold,omitempty"`
	AutoRefresh        bool    `json:"auto_refresh,omitempty"`
	RefreshSeconds     int     `json:"refresh_seconds,omitempty"`
	CostAnalysis       bool    `json:"cost_analysis,omitempty"`
	Benchmarking       bool    `json:"benchmarking,omitempty"`
	SeasonalComparison bool    `json:"seasonal_comparison,omitempty"`
}

// State is the active filter configuration of one dashboard session.
type State struct {
	Dimensions map[string]*Dimension `json:"dimensions"`
	Settings   Settings              `json:"settings"`
}

// NewState builds a State with the given dimensions, all unrestricted.
func NewState(dimensions ...string) *State {
	s := &State{Dimensions: make(map[string]*Dimension, len(dimensions))}
	for _, name := range dimensions {
		s.Dimensions[name] = NewDimension()
	}
	return s
}

// NewOperationsState is the operations dashboard default: every
// location and alert severity visible, 24h window, auto refresh on.
func NewOperationsState() *State {
	s := NewState(DimLocation, DimCategory, DimSeverity)
	s.Settings.TimeRange = "24h"
	s.Settings.AutoRefresh = true
	s.Settings.RefreshSeconds = 30
	return s
}

// NewExecutiveState is the executive dashboard default. Locations are
// its only dimension: every other axis rolls up into the KPI cards.
func NewExecutiveState() *State {
	s := NewState(DimLocation)
	s.Settings.Period = "monthly"
	return s
}

// NewSupplierState is the supplier dashboard default: 30-day window,
// 95% on-time delivery threshold, cost analysis enabled.
func NewSupplierState() *State {
	s := NewState(DimSupplier, DimCategory)
	s.Settings.Period = "30d"
	s.Settings.DeliveryThreshold = 95
	s.Settings.CostAnalysis = true
	return s
}

// NewForecastState is the demand forecasting dashboard default:
// 8-week horizon at 95% confidence over a 12-week range.
func NewForecastState() *State {
	s := NewState(DimCategory)
	s.Settings.TimeRange = "12weeks"
	s.Settings.ForecastHorizon = 8
	s.Settings.ConfidenceInterval = 95
	return s
}

func (s *State) dimension(name string) (*Dimension, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("dimension", "dimension name is required")
	}
	d, ok := s.Dimensions[name]
	if !ok {
		return nil, domain.NewValidationError("dimension", "unknown dimension "+name)
	}
	return d, nil
}

// Toggle flips membership of id on the named dimension. Toggling the
// special value "all" is equivalent to SelectAll. Malformed input is
// rejected before any mutation.
func (s *State) Toggle(dimension, id string) error {
	d, err := s.dimension(dimension)
	if err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return domain.NewValidationError("id", "identifier is required")
	}
	if id == All {
		d.SelectAll()
		return nil
	}
	d.Toggle(id)
	return nil
}

// SelectAll clears any restriction on the named dimension.
func (s *State) SelectAll(dimension string) error {
	d, err := s.dimension(dimension)
	if err != nil {
		return err
	}
	d.SelectAll()
	return nil
}

// Matches reports whether id passes the named dimension. An absent
// dimension is treated as unrestricted, never as an error.
func (s *State) Matches(dimension, id string) bool {
	d, ok := s.Dimensions[dimension]
	if !ok {
		return true
	}
	return d.Matches(id)
}

// Clone returns a deep copy, so saved snapshots never share state with
// the live configuration.
func (s *State) Clone() *State {
	c := &State{
		Dimensions: make(map[string]*Dimension, len(s.Dimensions)),
		Settings:   s.Settings,
	}
	for name, d := range s.Dimensions {
		c.Dimensions[name] = d.Clone()
	}
	return c
}

// Replace swaps the whole configuration for a deep copy of other.
func (s *State) Replace(other *State) {
	c := other.Clone()
	s.Dimensions = c.Dimensions
	s.Settings = c.Settings
}
