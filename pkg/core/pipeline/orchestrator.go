// Package pipeline wires the analysis stages end to end: column detection,
// business typing, extraction, metric dispatch, insight generation, and
// optional persistence.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"finsight/pkg/core/dispatch"
	"finsight/pkg/core/extract"
	"finsight/pkg/core/insights"
	"finsight/pkg/core/llm"
	"finsight/pkg/core/report"
	"finsight/pkg/core/schema"
	"finsight/pkg/core/store"
	"finsight/pkg/core/table"
)

// Orchestrator manages the end-to-end analysis flow:
// Detection -> Extraction -> Dispatch -> Insights -> Storage
type Orchestrator struct {
	generator   *insights.Generator
	repo        store.ReportRepository
	assumptions dispatch.Assumptions
}

// NewOrchestrator creates an orchestrator. A nil provider is valid: insight
// generation then runs purely rule-based.
func NewOrchestrator(provider llm.Provider) *Orchestrator {
	return &Orchestrator{
		generator:   &insights.Generator{Provider: provider},
		assumptions: dispatch.DefaultAssumptions(),
	}
}

// SetRepository allows injecting a repository (e.g., for testing). With no
// repository set, reports are returned but not persisted.
func (o *Orchestrator) SetRepository(repo store.ReportRepository) {
	o.repo = repo
}

// SetAssumptions overrides the default rate assumptions.
func (o *Orchestrator) SetAssumptions(a dispatch.Assumptions) {
	o.assumptions = a
}

// Run executes the full analysis for one dataset.
func (o *Orchestrator) Run(ctx context.Context, datasetName string, t *table.Table) (*report.Report, error) {
	if t == nil || t.NumColumns() == 0 {
		return nil, fmt.Errorf("dataset %q has no columns", datasetName)
	}

	fmt.Printf("Starting analysis for %s (%d columns, %d rows)...\n", datasetName, t.NumColumns(), t.NumRows())
	start := time.Now()

	// 1. Detection
	roles := schema.ClassifyColumns(t.ColumnNames())
	businessType := schema.ClassifyBusiness(roles)
	quality := extract.AssessDataQuality(t)
	available := dispatch.AvailableMetrics(roles)

	// 2. Extraction
	data := extract.ExtractFinancialData(t, roles)

	// 3. Metric dispatch
	bundle := dispatch.SelectMetrics(data, o.assumptions)

	// 4. Insights
	ins := o.generator.Generate(ctx, businessType, quality, data, bundle)
	for _, anomaly := range insights.DetectAnomalies(data) {
		ins.Anomalies = append(ins.Anomalies, anomaly.Message)
	}
	ins.SuggestedMetrics = insights.SuggestAdditionalMetrics(businessType)

	rep := report.New(datasetName)
	rep.BusinessType = businessType
	rep.DetectedColumns = roles
	rep.DataQuality = quality
	rep.AvailableMetrics = available
	rep.Recommendations = insights.DetectionRecommendations(businessType, roles, available)
	rep.Metrics = bundle
	rep.Insights = ins

	// 5. Persistence
	if o.repo != nil {
		if err := o.repo.Save(ctx, rep); err != nil {
			return rep, fmt.Errorf("failed to persist report for %s: %w", datasetName, err)
		}
	}

	fmt.Printf("Analysis for %s complete in %s (%d metrics, business type: %s)\n",
		datasetName, time.Since(start).Round(time.Millisecond), len(bundle), businessType)

	return rep, nil
}
