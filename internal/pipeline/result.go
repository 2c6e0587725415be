package pipeline

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/docsift/docsift/internal/classify"
	"github.com/docsift/docsift/internal/structure"
)

// AnalyzedPage is the orchestrator's output for one page: either a
// model analysis or a placeholder explaining why none was made.
type AnalyzedPage struct {
	Number            int           `json:"page"`
	Classification    classify.Kind `json:"classification"`
	Confidence        float64       `json:"confidence"`
	Analysis          string        `json:"analysis,omitempty"`
	SkippedReason     string        `json:"skipped_reason,omitempty"`
	ExtractedSections []string      `json:"extracted_sections,omitempty"`
	DroppedChars      int           `json:"dropped_chars,omitempty"`
}

// DocumentResult is the final structured output emitted with the
// complete event and cached by content hash.
type DocumentResult struct {
	Title         string         `json:"title"`
	ContentHash   string         `json:"content_hash"`
	PageCount     int            `json:"page_count"`
	Pages         []AnalyzedPage `json:"pages"`
	Structure     *structure.Map `json:"structure"`
	Summary       string         `json:"summary"`
	AnalyzedPages int            `json:"analyzed_pages"`
	SkippedPages  int            `json:"skipped_pages"`
	GeneratedAt   time.Time      `json:"generated_at"`
}

// ContentHashHex is the stable identity of an upload, used for caching
// and logging.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
