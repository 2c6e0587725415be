// Package extract turns a document file into per-page text.
package extract

import (
	"context"
	"fmt"
)

// Result is the raw output of text extraction. PageTexts may be
// shorter than PageCount or hold empty entries when per-page
// extraction fails; callers decide whether it is usable.
type Result struct {
	PageCount int
	FullText  string
	PageTexts []string
}

// Extractor converts a document file into text.
type Extractor interface {
	Extract(ctx context.Context, path string) (*Result, error)
}

// ExtractionError wraps an underlying parser failure. Full detail
// stays server-side; clients get a generic message.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
