// Package forecast projects revenue and profit trends forward from
// historical series. Predictions use a least-squares linear trend rather
// than a full time-series model, which keeps them explainable for the
// report output.
package forecast

import (
	"fmt"
	"math"

	"finsight/pkg/core/metrics"
)

// RevenueForecast is the trend extrapolation for a revenue series.
type RevenueForecast struct {
	Forecasts      []float64 `json:"forecasts"`
	LowerBound     []float64 `json:"lower_bound"`
	UpperBound     []float64 `json:"upper_bound"`
	Trend          float64   `json:"trend"`
	GrowthRate     float64   `json:"growth_rate"`
	TrendDirection string    `json:"trend_direction"`
	CurrentAvg     float64   `json:"current_avg"`
	ForecastAvg    float64   `json:"forecast_avg"`
	Periods        int       `json:"periods"`
	Insight        string    `json:"insight"`
}

// ProfitForecast extrapolates the revenue-minus-cost series.
type ProfitForecast struct {
	Forecasts      []float64 `json:"forecasts"`
	Trend          float64   `json:"trend"`
	GrowthRate     float64   `json:"growth_rate"`
	TrendDirection string    `json:"trend_direction"`
	CurrentAvg     float64   `json:"current_avg"`
	ForecastAvg    float64   `json:"forecast_avg"`
	Periods        int       `json:"periods"`
	Insight        string    `json:"insight"`
}

// BreakevenForecast is the unit-economics break-even point.
type BreakevenForecast struct {
	BreakevenUnits          float64 `json:"breakeven_units"`
	BreakevenRevenue        float64 `json:"breakeven_revenue"`
	ContributionMargin      float64 `json:"contribution_margin"`
	ContributionMarginRatio float64 `json:"contribution_margin_ratio"`
	Insight                 string  `json:"insight"`
	Recommendation          string  `json:"recommendation"`
}

// Seasonality reports whether the series shows a first-half/second-half shift.
type Seasonality struct {
	Seasonal          bool    `json:"seasonal"`
	SeasonalVariation float64 `json:"seasonal_variation,omitempty"`
	FirstHalfAvg      float64 `json:"first_half_avg,omitempty"`
	SecondHalfAvg     float64 `json:"second_half_avg,omitempty"`
	Insight           string  `json:"insight,omitempty"`
	Note              string  `json:"note,omitempty"`
}

// GrowthProjection compounds a starting value forward at a fixed rate.
type GrowthProjection struct {
	Projections  []float64 `json:"projections"`
	CurrentValue float64   `json:"current_value"`
	FinalValue   float64   `json:"final_value"`
	TotalGrowth  float64   `json:"total_growth"`
	GrowthRate   float64   `json:"growth_rate"`
	Periods      int       `json:"periods"`
	Insight      string    `json:"insight"`
}

// linearFit computes the least-squares slope and intercept for a series
// indexed 0..n-1.
func linearFit(series []float64) (slope, intercept float64) {
	n := float64(len(series))
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range series {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

// ForecastRevenue extrapolates the revenue trend over the next periods,
// with a 1.96-sigma confidence band around the residual spread.
func ForecastRevenue(series []float64, periods int) (*RevenueForecast, *metrics.MetricError) {
	if len(series) < 3 {
		return nil, &metrics.MetricError{Kind: metrics.ErrMissingPrerequisite, Reason: "Need at least 3 data points for forecasting"}
	}

	slope, intercept := linearFit(series)

	forecasts := make([]float64, periods)
	for i := range forecasts {
		forecasts[i] = slope*float64(len(series)+i) + intercept
	}

	var sumY float64
	for _, y := range series {
		sumY += y
	}
	currentAvg := sumY / float64(len(series))
	growthRate := 0.0
	if currentAvg != 0 {
		growthRate = (slope / currentAvg) * 100
	}

	// Residual standard deviation around the fitted line.
	var sqErr float64
	for i, y := range series {
		resid := y - (slope*float64(i) + intercept)
		sqErr += resid * resid
	}
	stdErr := math.Sqrt(sqErr / float64(len(series)))

	lower := make([]float64, periods)
	upper := make([]float64, periods)
	var forecastSum float64
	for i, f := range forecasts {
		lower[i] = f - 1.96*stdErr
		upper[i] = f + 1.96*stdErr
		forecastSum += f
	}
	forecastAvg := forecastSum / float64(periods)

	direction := "stable"
	if slope > 0 {
		direction = "increasing"
	} else if slope < 0 {
		direction = "decreasing"
	}

	return &RevenueForecast{
		Forecasts:      forecasts,
		LowerBound:     lower,
		UpperBound:     upper,
		Trend:          slope,
		GrowthRate:     growthRate,
		TrendDirection: direction,
		CurrentAvg:     currentAvg,
		ForecastAvg:    forecastAvg,
		Periods:        periods,
		Insight: fmt.Sprintf("Revenue is %s at %.1f%% per period. Expected average: %.0f",
			direction, math.Abs(growthRate), forecastAvg),
	}, nil
}

// ForecastProfit extrapolates the element-wise revenue-minus-cost series.
// The series are truncated to their common length before differencing.
func ForecastProfit(revenue, cost []float64, periods int) (*ProfitForecast, *metrics.MetricError) {
	if len(revenue) < 3 || len(cost) < 3 {
		return nil, &metrics.MetricError{Kind: metrics.ErrMissingPrerequisite, Reason: "Need at least 3 data points"}
	}

	n := len(revenue)
	if len(cost) < n {
		n = len(cost)
	}
	profit := make([]float64, n)
	for i := range profit {
		profit[i] = revenue[i] - cost[i]
	}

	slope, intercept := linearFit(profit)

	forecasts := make([]float64, periods)
	var forecastSum float64
	for i := range forecasts {
		forecasts[i] = slope*float64(n+i) + intercept
		forecastSum += forecasts[i]
	}
	forecastAvg := forecastSum / float64(periods)

	var sum float64
	for _, p := range profit {
		sum += p
	}
	currentAvg := sum / float64(n)
	growthRate := 0.0
	if currentAvg != 0 {
		growthRate = (slope / currentAvg) * 100
	}

	direction := "stable"
	if slope > 0 {
		direction = "improving"
	} else if slope < 0 {
		direction = "declining"
	}

	return &ProfitForecast{
		Forecasts:      forecasts,
		Trend:          slope,
		GrowthRate:     growthRate,
		TrendDirection: direction,
		CurrentAvg:     currentAvg,
		ForecastAvg:    forecastAvg,
		Periods:        periods,
		Insight: fmt.Sprintf("Profit is %s at %.1f%% per period. Expected average profit: %.0f",
			direction, math.Abs(growthRate), forecastAvg),
	}, nil
}

// CalculateBreakevenForecast derives the break-even point from unit economics.
func CalculateBreakevenForecast(fixedCosts, variableCostPerUnit, pricePerUnit float64) (*BreakevenForecast, *metrics.MetricError) {
	if pricePerUnit <= variableCostPerUnit {
		return nil, &metrics.MetricError{Kind: metrics.ErrDegenerateInput, Reason: "Price must be higher than variable cost"}
	}

	contribution := pricePerUnit - variableCostPerUnit
	units := fixedCosts / contribution
	revenue := units * pricePerUnit

	return &BreakevenForecast{
		BreakevenUnits:          units,
		BreakevenRevenue:        revenue,
		ContributionMargin:      contribution,
		ContributionMarginRatio: (contribution / pricePerUnit) * 100,
		Insight: fmt.Sprintf("You need to sell %.0f units to break even. Break-even revenue: %.0f",
			units, revenue),
		Recommendation: fmt.Sprintf("Each unit sold above break-even contributes %.0f to profit", contribution),
	}, nil
}

// AnalyzeSeasonality compares the first and second half of the series; a
// shift above 10%% is treated as a seasonal pattern. Fewer than 12 periods
// is reported as not seasonal rather than as an error.
func AnalyzeSeasonality(series []float64) (*Seasonality, *metrics.MetricError) {
	if len(series) < 12 {
		return &Seasonality{Seasonal: false, Note: "Need at least 12 periods for seasonality analysis"}, nil
	}

	mid := len(series) / 2
	var firstSum, secondSum float64
	for _, v := range series[:mid] {
		firstSum += v
	}
	for _, v := range series[mid:] {
		secondSum += v
	}
	firstAvg := firstSum / float64(mid)
	secondAvg := secondSum / float64(len(series)-mid)

	if firstAvg == 0 {
		return nil, &metrics.MetricError{Kind: metrics.ErrDegenerateInput, Reason: "First-half average is zero"}
	}

	variation := ((secondAvg - firstAvg) / firstAvg) * 100
	seasonal := math.Abs(variation) > 10

	label := "No significant seasonal"
	if seasonal {
		label = "Seasonal"
	}

	return &Seasonality{
		Seasonal:          seasonal,
		SeasonalVariation: variation,
		FirstHalfAvg:      firstAvg,
		SecondHalfAvg:     secondAvg,
		Insight:           fmt.Sprintf("%s pattern detected. Variation: %.1f%%", label, math.Abs(variation)),
	}, nil
}

// GenerateGrowthProjection compounds currentValue forward at growthRate
// percent per period.
func GenerateGrowthProjection(currentValue, growthRate float64, periods int) (*GrowthProjection, *metrics.MetricError) {
	if currentValue == 0 {
		return nil, &metrics.MetricError{Kind: metrics.ErrDegenerateInput, Reason: "Current value must be non-zero"}
	}
	if periods <= 0 {
		return nil, &metrics.MetricError{Kind: metrics.ErrDegenerateInput, Reason: "Projection periods must be positive"}
	}

	projections := make([]float64, periods)
	for i := range projections {
		projections[i] = currentValue * math.Pow(1+growthRate/100, float64(i+1))
	}
	final := projections[len(projections)-1]
	totalGrowth := ((final - currentValue) / currentValue) * 100

	return &GrowthProjection{
		Projections:  projections,
		CurrentValue: currentValue,
		FinalValue:   final,
		TotalGrowth:  totalGrowth,
		GrowthRate:   growthRate,
		Periods:      periods,
		Insight: fmt.Sprintf("At %.1f%% growth rate, value will reach %.0f in %d periods (total growth: %.1f%%)",
			growthRate, final, periods, totalGrowth),
	}, nil
}
