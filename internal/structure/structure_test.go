package structure

import (
	"testing"

	"github.com/docsift/docsift/internal/segment"
)

func TestDetect_StandardFormatWithThreeCoreSections(t *testing.T) {
	pages := []segment.Page{
		{Number: 1, Text: "Estudio de cohorte\n\nINTRODUCTION\nBackground text here."},
		{Number: 2, Text: "METHODS\nWe enrolled patients."},
		{Number: 3, Text: "RESULTS\nThe primary outcome occurred."},
	}
	m := Detect(pages)

	if !m.IsStandardFormat {
		t.Error("expected standard format with 3 of 4 core sections")
	}
	for _, name := range []string{"introduction", "methods", "results"} {
		ref, ok := m.Sections[name]
		if !ok {
			t.Errorf("expected section %q to be detected", name)
			continue
		}
		want := map[string]int{"introduction": 1, "methods": 2, "results": 3}[name]
		if ref.StartPage != want {
			t.Errorf("section %q: expected page %d, got %d", name, want, ref.StartPage)
		}
	}
}

func TestDetect_OneSectionIsNotStandardFormat(t *testing.T) {
	pages := []segment.Page{
		{Number: 1, Text: "Introducción\nTexto de fondo."},
	}
	m := Detect(pages)
	if m.IsStandardFormat {
		t.Error("one core section must not count as standard format")
	}
}

func TestDetect_PartChapterTree(t *testing.T) {
	pages := []segment.Page{
		{Number: 1, Text: "Parte 1: Fundamentos"},
		{Number: 2, Text: "Capítulo 1: Anatomía"},
		{Number: 3, Text: "Capítulo 2: Fisiología"},
		{Number: 4, Text: "Part 2: Clinical Practice"},
		{Number: 5, Text: "Chapter 3: Diagnosis"},
	}
	m := Detect(pages)

	if len(m.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(m.Parts))
	}
	if len(m.Chapters) != 3 {
		t.Fatalf("expected 3 chapters total, got %d", len(m.Chapters))
	}
	if len(m.Parts[0].Chapters) != 2 {
		t.Errorf("part 1: expected 2 chapters, got %d", len(m.Parts[0].Chapters))
	}
	if len(m.Parts[1].Chapters) != 1 {
		t.Errorf("part 2: expected 1 chapter, got %d", len(m.Parts[1].Chapters))
	}
	if m.Parts[0].Title != "Fundamentos" {
		t.Errorf("part 1 title: expected %q, got %q", "Fundamentos", m.Parts[0].Title)
	}
	if m.Parts[1].StartPage != 4 {
		t.Errorf("part 2: expected start page 4, got %d", m.Parts[1].StartPage)
	}
}

func TestDetect_SynthesizesDefaultPart(t *testing.T) {
	pages := []segment.Page{
		{Number: 1, Text: "Introducción\nTexto."},
		{Number: 2, Text: "Métodos\nTexto."},
		{Number: 3, Text: "Capítulo 1: Algo"},
	}
	m := Detect(pages)

	if len(m.Parts) != 1 {
		t.Fatalf("expected 1 synthetic part, got %d", len(m.Parts))
	}
	p := m.Parts[0]
	if p.StartPage != 1 {
		t.Errorf("synthetic part: expected start page 1, got %d", p.StartPage)
	}
	if p.Title != "Artículo científico" {
		t.Errorf("standard-format doc: expected title %q, got %q", "Artículo científico", p.Title)
	}
	// Orphan chapters attach to the synthetic part.
	if len(p.Chapters) != 1 {
		t.Errorf("expected 1 chapter under synthetic part, got %d", len(p.Chapters))
	}
}

func TestDetect_DefaultPartTitleWithoutStandardFormat(t *testing.T) {
	pages := []segment.Page{{Number: 1, Text: "Texto plano sin secciones."}}
	m := Detect(pages)
	if m.Parts[0].Title != "Documento completo" {
		t.Errorf("expected title %q, got %q", "Documento completo", m.Parts[0].Title)
	}
}

func TestDetect_FirstOccurrenceWins(t *testing.T) {
	pages := []segment.Page{
		{Number: 1, Text: "Resultados\nPrimera aparición."},
		{Number: 4, Text: "Resultados\nSegunda aparición."},
	}
	m := Detect(pages)
	if ref := m.Sections["results"]; ref.StartPage != 1 {
		t.Errorf("expected first occurrence on page 1, got %d", ref.StartPage)
	}
}

func TestDetect_IgnoresHeadersDeepInPage(t *testing.T) {
	// A "Métodos" line past the scan window is body text.
	var text string
	for range 25 {
		text += "línea de relleno\n"
	}
	text += "Métodos"
	m := Detect([]segment.Page{{Number: 1, Text: text}})
	if _, ok := m.Sections["methods"]; ok {
		t.Error("header past the scan window must not be detected")
	}
}
