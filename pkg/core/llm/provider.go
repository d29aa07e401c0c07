// Package llm wraps the language-model providers used for narrative insight
// generation. The analysis engine works identically with or without a
// provider; a rule-based generator covers the offline path.
package llm

import "context"

// Provider is the interface for all LLM providers.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
}
