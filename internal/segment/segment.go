package segment

import "strings"

// Page is one page of extracted document text. Pages are numbered 1..N
// and never mutated after creation.
type Page struct {
	Number int
	Text   string
}

// EmptyPageMarker is the sentinel text assigned to pages with no
// extractable content, so downstream stages can recognize them without
// re-parsing.
const EmptyPageMarker = "[Página sin texto extraíble]"

// Segment distributes fullText across exactly pageCount pages by line.
// This is the fallback path for extractors that cannot supply per-page
// text; the richer path goes through FromPageTexts.
func Segment(fullText string, pageCount int) []Page {
	if pageCount <= 0 {
		return nil
	}

	pages := make([]Page, pageCount)
	if strings.TrimSpace(fullText) == "" {
		for i := range pages {
			pages[i] = Page{Number: i + 1, Text: EmptyPageMarker}
		}
		return pages
	}

	lines := strings.Split(fullText, "\n")
	linesPerPage := (len(lines) + pageCount - 1) / pageCount
	if linesPerPage < 1 {
		linesPerPage = 1
	}

	for i := range pages {
		start := i * linesPerPage
		end := start + linesPerPage
		if start > len(lines) {
			start = len(lines)
		}
		if end > len(lines) {
			end = len(lines)
		}
		text := strings.TrimSpace(strings.Join(lines[start:end], "\n"))
		if text == "" {
			text = EmptyPageMarker
		}
		pages[i] = Page{Number: i + 1, Text: text}
	}
	return pages
}

// Usable reports whether per-page extractor output covers the full
// document and can be used instead of the line-distribution fallback.
func Usable(pageTexts []string, pageCount int) bool {
	return pageCount > 0 && len(pageTexts) == pageCount
}

// FromPageTexts builds pages from per-page extractor output. Entries
// that trim to empty receive the empty-page marker. The caller must
// have checked Usable first.
func FromPageTexts(pageTexts []string, pageCount int) []Page {
	pages := make([]Page, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		text := strings.TrimSpace(pageTexts[i])
		if text == "" {
			text = EmptyPageMarker
		}
		pages = append(pages, Page{Number: i + 1, Text: text})
	}
	return pages
}
