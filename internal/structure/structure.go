package structure

import (
	"regexp"
	"strings"

	"github.com/docsift/docsift/internal/segment"
)

// Part is a top-level division of a document. A Part owns zero or more
// Chapters.
type Part struct {
	Label     string     `json:"label"`
	Title     string     `json:"title"`
	StartPage int        `json:"start_page"`
	Chapters  []*Chapter `json:"chapters"`
}

// Chapter is a chapter heading detected inside a Part.
type Chapter struct {
	Label     string `json:"label"`
	Title     string `json:"title"`
	StartPage int    `json:"start_page"`
}

// SectionRef records where a canonical article section first appears.
type SectionRef struct {
	StartPage int    `json:"start_page"`
	Title     string `json:"title"`
}

// Map is the structural index of a document. It is built once and
// read-only thereafter.
type Map struct {
	Parts            []*Part               `json:"parts"`
	Chapters         []*Chapter            `json:"chapters"`
	Sections         map[string]SectionRef `json:"sections"`
	IsStandardFormat bool                  `json:"is_standard_format"`
}

// headerScanLines bounds how deep into a page we look for headings.
// Headings past the first screenful are body text, not structure.
const headerScanLines = 20

var (
	partPattern    = regexp.MustCompile(`(?i)^\s*(?:parte|part)\s+(\d+|[IVXLCDM]+)\s*(?:[:.\-]\s*(.+))?$`)
	chapterPattern = regexp.MustCompile(`(?i)^\s*(?:cap[íi]tulo|chapter)\s+(\d+|[IVXLCDM]+)\s*(?:[:.\-]\s*(.+))?$`)
)

// sectionPatterns match IMRyD-style headers in Spanish and English.
// Ordered so detection is deterministic.
var sectionPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"abstract", regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?(resumen|abstract)\s*[:.]?\s*$`)},
	{"introduction", regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?(introducci[óo]n|introduction)\s*[:.]?\s*$`)},
	{"methods", regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?((materiales?\s+y\s+)?m[ée]todos?|(materials?\s+and\s+)?methods?|metodolog[íi]a|methodology)\s*[:.]?\s*$`)},
	{"results", regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?(resultados|results)\s*[:.]?\s*$`)},
	{"discussion", regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?(discusi[óo]n|discussion)\s*[:.]?\s*$`)},
	{"references", regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?(referencias(\s+bibliogr[áa]ficas)?|references|bibliograf[íi]a|bibliography)\s*[:.]?\s*$`)},
}

// imrydCore are the sections that define the standard article format.
var imrydCore = []string{"introduction", "methods", "results", "discussion"}

// Detect scans pages in ascending order and builds the structural map.
// First occurrence wins for every section, so the result is
// deterministic for a given page sequence.
func Detect(pages []segment.Page) *Map {
	m := &Map{
		Sections: make(map[string]SectionRef),
	}

	var currentPart *Part
	for _, page := range pages {
		lines := strings.Split(page.Text, "\n")
		if len(lines) > headerScanLines {
			lines = lines[:headerScanLines]
		}
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			if g := partPattern.FindStringSubmatch(line); g != nil {
				p := &Part{
					Label:     g[1],
					Title:     strings.TrimSpace(g[2]),
					StartPage: page.Number,
				}
				m.Parts = append(m.Parts, p)
				currentPart = p
				continue
			}

			if g := chapterPattern.FindStringSubmatch(line); g != nil {
				ch := &Chapter{
					Label:     g[1],
					Title:     strings.TrimSpace(g[2]),
					StartPage: page.Number,
				}
				m.Chapters = append(m.Chapters, ch)
				if currentPart != nil {
					currentPart.Chapters = append(currentPart.Chapters, ch)
				}
				continue
			}

			for _, sp := range sectionPatterns {
				if _, seen := m.Sections[sp.name]; seen {
					continue
				}
				if sp.pattern.MatchString(line) {
					m.Sections[sp.name] = SectionRef{
						StartPage: page.Number,
						Title:     line,
					}
				}
			}
		}
	}

	found := 0
	for _, name := range imrydCore {
		if _, ok := m.Sections[name]; ok {
			found++
		}
	}
	m.IsStandardFormat = found >= 2

	// Documents without explicit parts get a single synthetic one so
	// consumers can always walk Parts.
	if len(m.Parts) == 0 {
		title := "Documento completo"
		if m.IsStandardFormat {
			title = "Artículo científico"
		}
		p := &Part{
			Label:     "1",
			Title:     title,
			StartPage: 1,
			Chapters:  m.Chapters,
		}
		m.Parts = append(m.Parts, p)
	}

	return m
}
