// Package report defines the aggregate produced by a full analysis run. It
// lives in its own package so both the pipeline and the store can depend on
// it without a cycle.
package report

import (
	"time"

	"github.com/google/uuid"

	"finsight/pkg/core/dispatch"
	"finsight/pkg/core/extract"
	"finsight/pkg/core/insights"
	"finsight/pkg/core/schema"
)

// Report is the complete analysis output for one dataset.
type Report struct {
	ID               uuid.UUID           `json:"id"`
	DatasetName      string              `json:"dataset_name"`
	BusinessType     schema.BusinessType `json:"business_type"`
	DetectedColumns  schema.RoleMap      `json:"detected_columns"`
	DataQuality      extract.DataQuality `json:"data_quality"`
	AvailableMetrics []string            `json:"available_metrics"`
	Recommendations  []string            `json:"recommendations"`
	Metrics          dispatch.Bundle     `json:"metrics"`
	Insights         *insights.Insights  `json:"insights,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
}

// New constructs a Report with a fresh id and timestamp.
func New(datasetName string) *Report {
	return &Report{
		ID:          uuid.New(),
		DatasetName: datasetName,
		CreatedAt:   time.Now().UTC(),
	}
}
