package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"finsight/pkg/core/report"
)

// ReportRepository abstracts report persistence so the pipeline can run
// without a database.
type ReportRepository interface {
	Save(ctx context.Context, rep *report.Report) error
	Load(ctx context.Context, id uuid.UUID) (*report.Report, error)
	ListByDataset(ctx context.Context, datasetName string) ([]*report.Report, error)
}

// ReportRepo persists reports as JSONB blobs keyed by report id.
type ReportRepo struct{}

// NewReportRepo creates a new repository instance.
func NewReportRepo() *ReportRepo {
	return &ReportRepo{}
}

// Save upserts the report keyed by its id.
//
// Schema assumption:
// CREATE TABLE IF NOT EXISTS financial_reports (
//
//	id UUID PRIMARY KEY,
//	dataset_name TEXT,
//	business_type TEXT,
//	report_json JSONB,
//	updated_at TIMESTAMPTZ
//
// );
func (r *ReportRepo) Save(ctx context.Context, rep *report.Report) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	query := `
		INSERT INTO financial_reports (id, dataset_name, business_type, report_json, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id)
		DO UPDATE SET
			dataset_name = EXCLUDED.dataset_name,
			business_type = EXCLUDED.business_type,
			report_json = EXCLUDED.report_json,
			updated_at = EXCLUDED.updated_at;
	`

	_, err = pool.Exec(ctx, query, rep.ID, rep.DatasetName, string(rep.BusinessType), jsonData, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return nil
}

// Load retrieves a single report by id.
func (r *ReportRepo) Load(ctx context.Context, id uuid.UUID) (*report.Report, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT report_json FROM financial_reports WHERE id = $1`

	var jsonData []byte
	err := pool.QueryRow(ctx, query, id).Scan(&jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no report found for id %s", id)
		}
		return nil, fmt.Errorf("failed to load report: %w", err)
	}

	var rep report.Report
	if err := json.Unmarshal(jsonData, &rep); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return &rep, nil
}

// ListByDataset returns all stored reports for a dataset, newest first.
func (r *ReportRepo) ListByDataset(ctx context.Context, datasetName string) ([]*report.Report, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT report_json FROM financial_reports WHERE dataset_name = $1 ORDER BY updated_at DESC`

	rows, err := pool.Query(ctx, query, datasetName)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []*report.Report
	for rows.Next() {
		var jsonData []byte
		if err := rows.Scan(&jsonData); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		var rep report.Report
		if err := json.Unmarshal(jsonData, &rep); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report: %w", err)
		}
		reports = append(reports, &rep)
	}

	return reports, rows.Err()
}
