package analysis

import (
	"encoding/json"
	"fmt"
	"net/http"

	"finsight/pkg/core/pipeline"
	"finsight/pkg/core/table"
)

// Handler holds dependencies for the analysis endpoint.
type Handler struct {
	Orchestrator *pipeline.Orchestrator
}

// NewHandler creates a new analysis handler.
func NewHandler(orch *pipeline.Orchestrator) *Handler {
	return &Handler{Orchestrator: orch}
}

// AnalyzeRequest carries one dataset as named columns of raw cell values.
// Cells may be numbers or strings; string cells are coerced downstream.
type AnalyzeRequest struct {
	Name    string `json:"name"`
	Columns []struct {
		Name  string        `json:"name"`
		Cells []interface{} `json:"cells"`
	} `json:"columns"`
}

// HandleAnalyze runs the full pipeline on the posted dataset and returns
// the report.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Columns) == 0 {
		http.Error(w, "Dataset must have at least one column", http.StatusBadRequest)
		return
	}

	columns := make([]table.Column, 0, len(req.Columns))
	for _, c := range req.Columns {
		cells := make([]table.Value, 0, len(c.Cells))
		for _, raw := range c.Cells {
			cells = append(cells, coerceCell(raw))
		}
		columns = append(columns, table.Column{Name: c.Name, Cells: cells})
	}

	rep, err := h.Orchestrator.Run(r.Context(), req.Name, table.New(columns))
	if err != nil {
		http.Error(w, fmt.Sprintf("Analysis failed: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

// coerceCell maps a decoded JSON value onto a table cell. JSON numbers
// arrive as float64; nulls become missing cells.
func coerceCell(raw interface{}) table.Value {
	switch v := raw.(type) {
	case nil:
		return table.Empty()
	case float64:
		return table.Number(v)
	case bool:
		if v {
			return table.Number(1)
		}
		return table.Number(0)
	case string:
		if v == "" {
			return table.Empty()
		}
		return table.Text(v)
	default:
		return table.Text(fmt.Sprintf("%v", v))
	}
}
