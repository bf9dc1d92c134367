package models

import "time"

// AlertSeverity is the urgency level of an alert.
type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "critical"
	SeverityWarning  AlertSeverity = "warning"
	SeverityInfo     AlertSeverity = "info"
)

// AlertCategory groups alerts by their origin.
type AlertCategory string

const (
	AlertStockLevel  AlertCategory = "stock-level"
	AlertExpiration  AlertCategory = "expiration"
	AlertReorder     AlertCategory = "reorder"
	AlertDemand      AlertCategory = "demand"
	AlertEnvironment AlertCategory = "environment"
)

// Alert is an operational event surfaced on the operations dashboard.
// Alerts are immutable once created; dismissal is view state only.
type Alert struct {
	ID        string        `json:"id"`
	Severity  AlertSeverity `json:"severity"`
	Category  AlertCategory `json:"category"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	Timestamp time.Time     `json:"timestamp"`
	ItemID    string        `json:"item_id,omitempty"`
}
