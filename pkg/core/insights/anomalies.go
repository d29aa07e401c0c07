package insights

import (
	"fmt"
	"math"

	"finsight/pkg/core/extract"
)

// DetectAnomalies scans the extracted aggregates for irregular patterns:
// negative revenue cells, extreme outliers beyond three standard deviations,
// and concerningly low profit margins.
func DetectAnomalies(data *extract.FinancialData) []Anomaly {
	var anomalies []Anomaly

	if data.Revenue != nil {
		for _, v := range data.Revenue.Series {
			if v < 0 {
				anomalies = append(anomalies, Anomaly{
					Type:     "negative_revenue",
					Severity: "high",
					Message:  "Detected negative revenue values - possible data error",
				})
				break
			}
		}

		if std := stdDev(data.Revenue.Series, data.Revenue.Mean); std > 0 {
			outliers := 0
			for _, v := range data.Revenue.Series {
				if math.Abs(v-data.Revenue.Mean) > 3*std {
					outliers++
				}
			}
			if outliers > 0 {
				anomalies = append(anomalies, Anomaly{
					Type:     "revenue_outliers",
					Severity: "medium",
					Message:  fmt.Sprintf("Detected %d extreme revenue outliers", outliers),
				})
			}
		}
	}

	if data.Profit != nil && data.Profit.MarginPct < 5 {
		anomalies = append(anomalies, Anomaly{
			Type:     "low_profitability",
			Severity: "high",
			Message:  fmt.Sprintf("Profit margin of %.2f%% is concerning", data.Profit.MarginPct),
		})
	}

	return anomalies
}

// stdDev is the population standard deviation around the given mean.
func stdDev(series []float64, mean float64) float64 {
	if len(series) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range series {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(series)))
}
