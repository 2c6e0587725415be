package segment

import (
	"strings"
	"testing"
)

func TestSegment_AlwaysReturnsPageCount(t *testing.T) {
	texts := []string{
		"",
		"una sola línea",
		strings.Repeat("línea\n", 100),
	}
	counts := []int{1, 2, 3, 7, 50}

	for _, text := range texts {
		for _, count := range counts {
			pages := Segment(text, count)
			if len(pages) != count {
				t.Fatalf("Segment(%d chars, %d): got %d pages", len(text), count, len(pages))
			}
			for i, p := range pages {
				if p.Number != i+1 {
					t.Errorf("page %d: expected number %d, got %d", i, i+1, p.Number)
				}
				if p.Text == "" {
					t.Errorf("page %d: empty text, expected content or marker", i+1)
				}
			}
		}
	}
}

func TestSegment_EmptyTextGetsMarker(t *testing.T) {
	pages := Segment("", 3)
	for _, p := range pages {
		if p.Text != EmptyPageMarker {
			t.Errorf("page %d: expected marker, got %q", p.Number, p.Text)
		}
	}
}

func TestSegment_DistributesLinesEvenly(t *testing.T) {
	pages := Segment("a\nb\nc", 2)
	if pages[0].Text != "a\nb" {
		t.Errorf("page 1: expected %q, got %q", "a\nb", pages[0].Text)
	}
	if pages[1].Text != "c" {
		t.Errorf("page 2: expected %q, got %q", "c", pages[1].Text)
	}
}

func TestSegment_PagesBeyondTextGetMarker(t *testing.T) {
	pages := Segment("a\nb", 5)
	if pages[0].Text != "a" || pages[1].Text != "b" {
		t.Fatalf("unexpected leading pages: %q, %q", pages[0].Text, pages[1].Text)
	}
	for _, p := range pages[2:] {
		if p.Text != EmptyPageMarker {
			t.Errorf("page %d: expected marker, got %q", p.Number, p.Text)
		}
	}
}

func TestSegment_ZeroPages(t *testing.T) {
	if pages := Segment("texto", 0); pages != nil {
		t.Errorf("expected nil for zero pages, got %d entries", len(pages))
	}
}

func TestUsable(t *testing.T) {
	cases := []struct {
		name      string
		pageTexts []string
		pageCount int
		want      bool
	}{
		{"exact match", []string{"a", "b"}, 2, true},
		{"too few", []string{"a"}, 2, false},
		{"too many", []string{"a", "b", "c"}, 2, false},
		{"zero count", nil, 0, false},
	}
	for _, tc := range cases {
		if got := Usable(tc.pageTexts, tc.pageCount); got != tc.want {
			t.Errorf("%s: Usable = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFromPageTexts_EmptyEntriesGetMarker(t *testing.T) {
	pages := FromPageTexts([]string{"contenido", "   ", "más"}, 3)
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	if pages[1].Text != EmptyPageMarker {
		t.Errorf("blank entry: expected marker, got %q", pages[1].Text)
	}
	if pages[0].Text != "contenido" || pages[2].Text != "más" {
		t.Errorf("unexpected page texts: %q, %q", pages[0].Text, pages[2].Text)
	}
}
