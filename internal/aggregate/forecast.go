package aggregate

import (
	"math"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/filter"
	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/models"
)

// ForecastMetrics grades the forecast against the periods that already
// have actuals. Bias keeps the global sign convention: positive =
// over-forecast (overrun), negative = under-forecast.
type ForecastMetrics struct {
	Accuracy float64 `json:"accuracy"` // 100 - MAPE
	MAPE     float64 `json:"mape"`
	Bias     float64 `json:"bias"`
	Variance float64 `json:"variance"` // variance of percentage errors
	HasData  bool    `json:"has_data"`
}

// GapRow is one category of the demand/supply gap table.
type GapRow struct {
	Category string  `json:"category"`
	Demand   float64 `json:"demand"`
	Supply   float64 `json:"supply"`
	Gap      float64 `json:"gap"`
	Status   string  `json:"status"`
}

// ForecastView is the full view model of the demand forecasting
// dashboard.
type ForecastView struct {
	Series   []models.ForecastPoint `json:"series"`
	Metrics  ForecastMetrics        `json:"metrics"`
	Gaps     []GapRow               `json:"gaps"`
	Seasonal []models.SeasonalIndex `json:"seasonal,omitempty"`
	Growth   []models.ProductTrend  `json:"growth"`
	Decline  []models.ProductTrend  `json:"decline"`
}

// BuildForecast derives the forecasting view: the series is cut to the
// session's horizon, gap rows and product rankings are filtered by the
// category dimension, and the seasonal matrix is included only when
// seasonal comparison is switched on.
func BuildForecast(
	points []models.ForecastPoint,
	demandSupply []models.DemandSupply,
	seasonal []models.SeasonalIndex,
	trends []models.ProductTrend,
	st *filter.State,
) ForecastView {
	series := clampBands(points)
	if h := st.Settings.ForecastHorizon; h > 0 && h < len(series) {
		series = series[:h]
	}

	var gaps []GapRow
	for _, ds := range demandSupply {
		if !st.Matches(filter.DimCategory, ds.Category) {
			continue
		}
		gap, status := Gap(ds.Demand, ds.Supply)
		gaps = append(gaps, GapRow{
			Category: ds.Category,
			Demand:   ds.Demand,
			Supply:   ds.Supply,
			Gap:      gap,
			Status:   status,
		})
	}

	var growth, decline []models.ProductTrend
	for _, t := range trends {
		if !st.Matches(filter.DimCategory, t.Category) {
			continue
		}
		if t.ChangePct >= 0 {
			growth = append(growth, t)
		} else {
			decline = append(decline, t)
		}
	}
	growth = RankBy(growth,
		func(t models.ProductTrend) float64 { return t.ChangePct },
		func(t models.ProductTrend) string { return t.ID },
		true)
	decline = RankBy(decline,
		func(t models.ProductTrend) float64 { return t.ChangePct },
		func(t models.ProductTrend) string { return t.ID },
		false)

	view := ForecastView{
		Series:  series,
		Metrics: forecastMetrics(points),
		Gaps:    gaps,
		Growth:  growth,
		Decline: decline,
	}
	if st.Settings.SeasonalComparison {
		view.Seasonal = seasonal
	}
	return view
}

// clampBands enforces lower <= forecast <= upper on every point, fixing
// any band an upstream feed delivered inverted.
func clampBands(points []models.ForecastPoint) []models.ForecastPoint {
	out := make([]models.ForecastPoint, len(points))
	copy(out, points)
	for i := range out {
		if out[i].ConfidenceLower > out[i].Forecast {
			out[i].ConfidenceLower = out[i].Forecast
		}
		if out[i].ConfidenceUpper < out[i].Forecast {
			out[i].ConfidenceUpper = out[i].Forecast
		}
	}
	return out
}

func forecastMetrics(points []models.ForecastPoint) ForecastMetrics {
	var pctErrors []float64
	for _, p := range points {
		if p.Actual == nil || *p.Actual == 0 {
			continue
		}
		pctErrors = append(pctErrors, (p.Forecast-*p.Actual) / *p.Actual*100)
	}
	if len(pctErrors) == 0 {
		return ForecastMetrics{}
	}

	var sumAbs, sum float64
	for _, e := range pctErrors {
		sumAbs += math.Abs(e)
		sum += e
	}
	n := float64(len(pctErrors))
	mape := sumAbs / n
	bias := sum / n

	var variance float64
	for _, e := range pctErrors {
		variance += (e - bias) * (e - bias)
	}
	variance /= n

	return ForecastMetrics{
		Accuracy: round1(100 - mape),
		MAPE:     round1(mape),
		Bias:     round1(bias),
		Variance: round1(variance),
		HasData:  true,
	}
}
