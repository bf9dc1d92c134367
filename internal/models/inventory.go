package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockStatus classifies how close an item is to its reorder point.
type StockStatus string

const (
	StatusGood     StockStatus = "good"
	StatusWarning  StockStatus = "warning"
	StatusCritical StockStatus = "critical"
)

// Velocity describes how fast an item moves off the shelf.
type Velocity string

const (
	VelocityLow      Velocity = "low"
	VelocityMedium   Velocity = "medium"
	VelocityHigh     Velocity = "high"
	VelocityVeryHigh Velocity = "very-high"
)

// InventoryItem represents a stocked product at a dark-store location.
type InventoryItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Location     string          `json:"location"`
	CurrentStock int             `json:"current_stock"`
	ReorderPoint int             `json:"reorder_point"`
	Velocity     Velocity        `json:"velocity"`
	LastMovement time.Time       `json:"last_movement"`
	Value        decimal.Decimal `json:"value"`
	Status       StockStatus     `json:"status"`
}

// Reclassify recomputes Status from CurrentStock and ReorderPoint.
// Must be called on every write path that touches either field.
func (i *InventoryItem) Reclassify() {
	i.Status = ClassifyStock(i.CurrentStock, i.ReorderPoint)
}

// stockWarnFactor is the multiple of the reorder point marking the top
// of the warning band.
var stockWarnFactor = 1.5

// SetStockWarnFactor overrides the warning band multiple. Values at or
// below 1 are ignored: the band must sit above the reorder point.
func SetStockWarnFactor(f float64) {
	if f > 1 {
		stockWarnFactor = f
	}
}

// ClassifyStock derives the stock status: critical at or below the
// reorder point, warning within stockWarnFactor times it, good
// otherwise.
func ClassifyStock(currentStock, reorderPoint int) StockStatus {
	switch {
	case currentStock <= reorderPoint:
		return StatusCritical
	case float64(currentStock) <= stockWarnFactor*float64(reorderPoint):
		return StatusWarning
	default:
		return StatusGood
	}
}
