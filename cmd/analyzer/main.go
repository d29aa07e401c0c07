package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"finsight/pkg/core/llm"
	"finsight/pkg/core/pipeline"
	"finsight/pkg/core/store"
	"finsight/pkg/core/table"
)

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// parseCell coerces one CSV field onto a typed cell. Numbers and dates are
// recognized eagerly; everything else stays text.
func parseCell(field string) table.Value {
	trimmed := strings.TrimSpace(field)
	if trimmed == "" {
		return table.Empty()
	}
	if f, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", ""), 64); err == nil {
		return table.Number(f)
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, trimmed); err == nil {
			return table.Timestamp(ts)
		}
	}
	return table.Text(trimmed)
}

// loadCSV reads a header-first CSV file into a column-ordered table.
func loadCSV(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("CSV file %s is empty", path)
	}

	header := records[0]
	columns := make([]table.Column, len(header))
	for i, name := range header {
		columns[i] = table.Column{Name: strings.TrimSpace(name)}
	}
	for _, row := range records[1:] {
		for i := range columns {
			if i < len(row) {
				columns[i].Cells = append(columns[i].Cells, parseCell(row[i]))
			} else {
				columns[i].Cells = append(columns[i].Cells, table.Empty())
			}
		}
	}

	return table.New(columns), nil
}

func printSection(title string) {
	fmt.Println()
	fmt.Println("=== " + title + " ===")
}

func printList(items []string) {
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: analyzer <dataset.csv>")
		os.Exit(1)
	}
	path := os.Args[1]

	tbl, err := loadCSV(path)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	configData, _ := os.ReadFile("config/models.yaml")
	var llmCfg llm.Config
	yaml.Unmarshal(configData, &llmCfg)
	llmMgr := llm.NewManager(llmCfg)

	orch := pipeline.NewOrchestrator(llmMgr.Active())

	ctx := context.Background()
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(ctx); err != nil {
			fmt.Printf("[WARNING] Database init failed: %v\n", err)
		} else {
			orch.SetRepository(store.NewReportRepo())
			defer store.Close()
		}
	}

	rep, err := orch.Run(ctx, strings.TrimSuffix(path, ".csv"), tbl)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	printSection("DATASET")
	fmt.Printf("  Name:          %s\n", rep.DatasetName)
	fmt.Printf("  Business Type: %s\n", rep.BusinessType)
	fmt.Printf("  Rows:          %d\n", rep.DataQuality.TotalRows)
	fmt.Printf("  Columns:       %d\n", rep.DataQuality.TotalColumns)
	fmt.Printf("  Completeness:  %.1f%%\n", rep.DataQuality.Completeness)

	printSection("DETECTED COLUMNS")
	for role, col := range rep.DetectedColumns {
		fmt.Printf("  %-12s -> %s\n", role, col)
	}

	printSection("RECOMMENDATIONS")
	printList(rep.Recommendations)

	printSection("METRICS")
	names := make([]string, 0, len(rep.Metrics))
	for name := range rep.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		blob, err := json.MarshalIndent(rep.Metrics[name], "  ", "  ")
		if err != nil {
			continue
		}
		fmt.Printf("  %s: %s\n", name, blob)
	}

	if rep.Insights != nil {
		printSection("KEY INSIGHTS (" + rep.Insights.Source + ")")
		printList(rep.Insights.KeyInsights)
		if len(rep.Insights.Strengths) > 0 {
			printSection("STRENGTHS")
			printList(rep.Insights.Strengths)
		}
		if len(rep.Insights.Concerns) > 0 {
			printSection("CONCERNS")
			printList(rep.Insights.Concerns)
		}
		if len(rep.Insights.Anomalies) > 0 {
			printSection("ANOMALIES")
			printList(rep.Insights.Anomalies)
		}
		if len(rep.Insights.SuggestedMetrics) > 0 {
			printSection("SUGGESTED METRICS")
			printList(rep.Insights.SuggestedMetrics)
		}
	}

	fmt.Println()
	fmt.Printf("Report ID: %s\n", rep.ID)
}
