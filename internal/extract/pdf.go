package extract

import (
	"context"
	"fmt"
	"os"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PDFExtractor reads per-page plain text from a PDF file. pdfcpu
// supplies the authoritative page count from the document structure;
// ledongthuc/pdf does the text decoding. When the two disagree the
// per-page output comes up short and the caller falls back to line
// segmentation.
type PDFExtractor struct{}

// Extract pulls text page by page. Pages whose text cannot be decoded
// produce empty entries rather than failing the document.
func (PDFExtractor) Extract(ctx context.Context, path string) (*Result, error) {
	pageCount, err := structuralPageCount(path)
	if err != nil {
		return nil, err
	}

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, &ExtractionError{Err: fmt.Errorf("open pdf: %w", err)}
	}
	defer f.Close()

	numPages := reader.NumPage()
	pageTexts := make([]string, 0, numPages)
	var full strings.Builder
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var text string
		page := reader.Page(i)
		if !page.V.IsNull() {
			if t, err := page.GetPlainText(nil); err == nil {
				text = t
			}
		}
		pageTexts = append(pageTexts, text)
		if i > 1 {
			full.WriteString("\n")
		}
		full.WriteString(text)
	}

	return &Result{
		PageCount: pageCount,
		FullText:  full.String(),
		PageTexts: pageTexts,
	}, nil
}

func structuralPageCount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, &ExtractionError{Err: fmt.Errorf("open pdf: %w", err)}
	}
	defer f.Close()

	count, err := api.PageCount(f, nil)
	if err != nil {
		return 0, &ExtractionError{Err: fmt.Errorf("pdf structure: %w", err)}
	}
	return count, nil
}
