// Package aggregate turns raw records plus a filter state into
// display-ready view models. Every builder is a pure function:
// identical inputs always produce identical outputs.
package aggregate

import (
	"math"
	"sort"
)

// Summary is a numeric roll-up over a filtered set. HasData
// distinguishes "mean of nothing" from a real zero so empty selections
// render as "no data" instead of a misleading 0.
type Summary struct {
	Count   int     `json:"count"`
	Sum     float64 `json:"sum"`
	Mean    float64 `json:"mean"`
	HasData bool    `json:"has_data"`
}

// Summarize computes count, sum and arithmetic mean.
func Summarize(values []float64) Summary {
	s := Summary{Count: len(values)}
	if s.Count == 0 {
		return s
	}
	for _, v := range values {
		s.Sum += v
	}
	s.Mean = s.Sum / float64(s.Count)
	s.HasData = true
	return s
}

// PercentOfTotal returns part as a percentage of total, or 0 when the
// total is zero.
func PercentOfTotal(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// Sort is an explicit ranking request: key name and direction.
type Sort struct {
	Key        string `json:"key"`
	Descending bool   `json:"descending"`
}

// RankBy sorts items by the given numeric key, breaking ties by id so
// repeated runs over the same data always yield the same order.
func RankBy[T any](items []T, key func(T) float64, id func(T) string, descending bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		ki, kj := key(out[i]), key(out[j])
		if ki != kj {
			if descending {
				return ki > kj
			}
			return ki < kj
		}
		return id(out[i]) < id(out[j])
	})
	return out
}

// Gap statuses. The sign convention is global: positive = shortage or
// overrun, negative = surplus or saving.
const (
	GapShortage = "shortage"
	GapSurplus  = "surplus"
	GapBalanced = "balanced"
)

// Gap returns demand minus supply and its status.
func Gap(demand, supply float64) (float64, string) {
	gap := demand - supply
	switch {
	case gap > 0:
		return gap, GapShortage
	case gap < 0:
		return gap, GapSurplus
	default:
		return 0, GapBalanced
	}
}

// round1 keeps view-model floats at display precision.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
