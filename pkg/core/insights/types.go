// Package insights produces narrative commentary for an analysis run: an
// LLM-backed generator when a provider is configured, and a deterministic
// rule-based generator producing the identical record shape as fallback.
package insights

// Insights is the structured commentary record for one analysis run.
type Insights struct {
	KeyInsights      []string `json:"key_insights"`
	Strengths        []string `json:"strengths"`
	Concerns         []string `json:"concerns"`
	Recommendations  []string `json:"recommendations"`
	Anomalies        []string `json:"anomalies"`
	Risks            []string `json:"risks"`
	Opportunities    []string `json:"opportunities"`
	Source           string   `json:"source"`
	SuggestedMetrics []string `json:"suggested_metrics,omitempty"`
}

// Anomaly is a single detected irregularity in the extracted data.
type Anomaly struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}
