package aggregate

import "github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/config"

// Severity is the shared classification scale for metric values.
type Severity string

const (
	SeverityGood     Severity = "good"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Metric names accepted by Classifier.Classify.
const (
	MetricOnTimeDelivery     = "on-time-delivery"
	MetricQualityScore       = "quality-score"
	MetricContractCompliance = "contract-compliance"
	MetricEfficiency         = "efficiency"
)

// Classifier maps metric values onto severities using one central
// threshold table, so every dashboard classifies the same way.
type Classifier struct {
	t config.Thresholds
}

func NewClassifier(t config.Thresholds) *Classifier {
	return &Classifier{t: t}
}

// Classify grades value on the named metric. Unknown metrics grade as
// good: a missing cutoff must never turn a display red.
func (c *Classifier) Classify(metric string, value float64) Severity {
	switch metric {
	case MetricOnTimeDelivery:
		return c.ClassifyDelivery(value, c.t.DeliveryOnTimePct)
	case MetricQualityScore:
		return grade(value, c.t.QualityGood, c.t.QualityWarn)
	case MetricContractCompliance:
		return grade(value, c.t.ComplianceGood, c.t.ComplianceWarn)
	case MetricEfficiency:
		return grade(value, c.t.EfficiencyGood, c.t.EfficiencyWarn)
	default:
		return SeverityGood
	}
}

// ClassifyDelivery grades an on-time percentage against a caller-chosen
// threshold (the supplier dashboard lets users move it); the warning
// band below the threshold comes from configuration.
func (c *Classifier) ClassifyDelivery(value, threshold float64) Severity {
	return grade(value, threshold, threshold-c.t.DeliveryWarnBand)
}

func grade(value, good, warn float64) Severity {
	switch {
	case value >= good:
		return SeverityGood
	case value >= warn:
		return SeverityWarning
	default:
		return SeverityCritical
	}
}
