package aggregate

import (
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/filter"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/models"
)

// LocationRow is one ranked store with its efficiency grade.
type LocationRow struct {
	models.LocationPerformance
	Grade        Severity `json:"grade"`
	RevenueShare float64  `json:"revenue_share"` // percent of filtered revenue
}

// ExecutiveInsights is the automated summary panel: how many KPIs are
// moving the right way and which stores bound the efficiency range.
type ExecutiveInsights struct {
	PositiveKPIs  int     `json:"positive_kpis"`
	NegativeKPIs  int     `json:"negative_kpis"`
	AvgEfficiency Summary `json:"avg_efficiency"`
	TotalRevenue  float64 `json:"total_revenue"`
	BestLocation  string  `json:"best_location"`
	WorstLocation string  `json:"worst_location"`
}

// ExecutiveView is the full view model of the executive dashboard.
type ExecutiveView struct {
	KPIs      []models.KPIEntry  `json:"kpis"`
	Locations []LocationRow      `json:"locations"`
	Trend     []models.TrendPoint `json:"trend"`
	Insights  ExecutiveInsights  `json:"insights"`
}

// BuildExecutive filters locations by the session's location dimension
// and derives the executive view.
func BuildExecutive(
	kpis []models.KPIEntry,
	locations []models.LocationPerformance,
	trend []models.TrendPoint,
	st *filter.State,
	cls *Classifier,
) ExecutiveView {
	var filtered []models.LocationPerformance
	for _, l := range locations {
		if st.Matches(filter.DimLocation, l.Location) {
			filtered = append(filtered, l)
		}
	}

	ranked := RankBy(filtered,
		func(l models.LocationPerformance) float64 { return l.Efficiency },
		func(l models.LocationPerformance) string { return l.Location },
		true)

	var totalRevenue float64
	for _, l := range ranked {
		totalRevenue += l.Revenue
	}

	rows := make([]LocationRow, len(ranked))
	for i, l := range ranked {
		rows[i] = LocationRow{
			LocationPerformance: l,
			Grade:               cls.Classify(MetricEfficiency, l.Efficiency),
			RevenueShare:        round1(PercentOfTotal(l.Revenue, totalRevenue)),
		}
	}

	return ExecutiveView{
		KPIs:      kpis,
		Locations: rows,
		Trend:     trend,
		Insights:  executiveInsights(kpis, ranked, totalRevenue),
	}
}

func executiveInsights(kpis []models.KPIEntry, ranked []models.LocationPerformance, totalRevenue float64) ExecutiveInsights {
	ins := ExecutiveInsights{TotalRevenue: totalRevenue}

	for _, k := range kpis {
		switch k.Trend {
		case "up":
			ins.PositiveKPIs++
		case "down":
			ins.NegativeKPIs++
		}
	}

	effs := make([]float64, len(ranked))
	for i, l := range ranked {
		effs[i] = l.Efficiency
	}
	ins.AvgEfficiency = Summarize(effs)

	if len(ranked) > 0 {
		// ranked is already sorted by efficiency descending.
		ins.BestLocation = ranked[0].Location
		ins.WorstLocation = ranked[len(ranked)-1].Location
	}
	return ins
}
