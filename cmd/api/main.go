package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"finsight/pkg/api/analysis"
	"finsight/pkg/api/config"
	"finsight/pkg/core/llm"
	"finsight/pkg/core/pipeline"
	"finsight/pkg/core/store"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize LLM manager from config
	configData, _ := os.ReadFile("config/models.yaml")
	var llmCfg llm.Config
	yaml.Unmarshal(configData, &llmCfg)
	llmMgr := llm.NewManager(llmCfg)

	orch := pipeline.NewOrchestrator(llmMgr.Active())

	// Persistence is optional: without DATABASE_URL reports are returned
	// to the caller but not stored.
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(context.Background()); err != nil {
			fmt.Printf("[WARNING] Database init failed: %v\n", err)
		} else {
			orch.SetRepository(store.NewReportRepo())
			defer store.Close()
		}
	}

	// Config endpoints
	configHandler := config.NewHandler(llmMgr)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	// Analysis endpoint
	analysisHandler := analysis.NewHandler(orch)
	http.HandleFunc("/api/analyze", analysisHandler.HandleAnalyze)

	fmt.Println("API server starting on :8080...")
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/config/switch")
	fmt.Println("  - POST /api/analyze")

	if err := http.ListenAndServe(":8080", nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
