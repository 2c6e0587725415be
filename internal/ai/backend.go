// Package ai is the boundary to the language model. The pipeline only
// sees the Backend interface; the concrete client targets the
// Anthropic Messages API.
package ai

import "context"

// PageSummary is the per-page input to summary generation.
type PageSummary struct {
	Number         int
	Classification string
	Analysis       string
	SkippedReason  string
}

// Backend is any language-model service able to analyze page text and
// produce a document summary. All text passed in must already be
// sanitized.
type Backend interface {
	AnalyzePage(ctx context.Context, text string, pageNumber int) (string, error)
	GenerateSummary(ctx context.Context, title string, pages []PageSummary) (string, error)
}
