// Package classify decides, per page, whether text is safe and
// worthwhile to send to the language model. The three-way split keeps
// bibliography-only pages away from the model (summarizing citations
// invites fabrication) without discarding real content that shares a
// page with the reference list.
package classify

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind is the tripartite page classification.
type Kind string

const (
	PureReferences     Kind = "pure_references"
	MixedContent       Kind = "mixed_content"
	SubstantiveContent Kind = "substantive_content"
)

// Section is an always-valuable header found on a page.
type Section struct {
	Name   string `json:"name"`
	Line   int    `json:"line"`
	Offset int    `json:"offset"`
}

// ReferenceStart marks where the bibliography begins within a page.
type ReferenceStart struct {
	Header string `json:"header"`
	Offset int    `json:"offset"`
}

// Result is the classification of a single page.
//
// Invariants: Kind == PureReferences implies ExtractableText == "";
// otherwise ExtractableText is a prefix of the page text ending at or
// before ReferenceStart.Offset.
type Result struct {
	Kind              Kind            `json:"kind"`
	ImportantSections []Section       `json:"important_sections,omitempty"`
	ReferenceStart    *ReferenceStart `json:"reference_start,omitempty"`
	ExtractableText   string          `json:"-"`
	Confidence        float64         `json:"confidence"`
	Reasons           []string        `json:"reasons"`
}

// Config holds the classifier thresholds. The defaults are empirical
// values tuned against real article pages; change them only with a
// labeled dataset in hand.
type Config struct {
	// PureReferenceCutoff is the confidence at or above which a page
	// is treated as bibliography-only.
	PureReferenceCutoff float64
	// MinMixedExtractChars is the minimum extractable prefix for a
	// header-based mixed classification.
	MinMixedExtractChars int
	// MinPrefixChars / StrongPrefixChars bound the headerless mixed
	// path: prefixes under Min are ignored, prefixes at or above
	// Strong earn the higher confidence.
	MinPrefixChars    int
	StrongPrefixChars int
	// MinSubstantiveChars rejects stubs outright in the substantive
	// gate.
	MinSubstantiveChars int
	// MinIndicatorMatches is how many distinct indicator families the
	// substantive gate requires.
	MinIndicatorMatches int
	// LongTextFallbackChars accepts long non-reference text even when
	// indicators are absent.
	LongTextFallbackChars int
}

// DefaultConfig returns the tuned thresholds.
func DefaultConfig() Config {
	return Config{
		PureReferenceCutoff:   0.5,
		MinMixedExtractChars:  100,
		MinPrefixChars:        150,
		StrongPrefixChars:     200,
		MinSubstantiveChars:   100,
		MinIndicatorMatches:   2,
		LongTextFallbackChars: 500,
	}
}

// Classifier evaluates pages against its pattern tables. Safe for
// concurrent use once built; AddPack must not race with Classify.
type Classifier struct {
	cfg        Config
	important  []headerPattern
	refHeaders []*regexp.Regexp
	indicators []*regexp.Regexp
}

// New builds a Classifier with the built-in Spanish/English packs.
func New(cfg Config) *Classifier {
	return &Classifier{
		cfg:        cfg,
		important:  importantHeaders,
		refHeaders: referenceHeaders,
		indicators: substantiveIndicators,
	}
}

// Classify runs the tripartite decision for one page. The same input
// always yields the same result.
//
// Precedence: structural cues (named headers) are stronger evidence
// than statistical scoring, so the header paths run first.
func (c *Classifier) Classify(text string, pageNumber int) Result {
	sections := c.findImportantSections(text)
	refStart := c.findReferenceStart(text)

	// Path 1: valuable header and a bibliography on the same page.
	if len(sections) > 0 && refStart != nil {
		extract := strings.TrimSpace(text[:refStart.Offset])
		if len(extract) >= c.cfg.MinMixedExtractChars {
			return Result{
				Kind:              MixedContent,
				ImportantSections: sections,
				ReferenceStart:    refStart,
				ExtractableText:   extract,
				Confidence:        0.9,
				Reasons: []string{
					fmt.Sprintf("secciones importantes antes de %q", refStart.Header),
					fmt.Sprintf("%d caracteres de contenido extraíble", len(extract)),
				},
			}
		}
	}

	// Path 2: valuable header, no bibliography.
	if len(sections) > 0 && refStart == nil {
		return Result{
			Kind:              SubstantiveContent,
			ImportantSections: sections,
			ExtractableText:   strings.TrimSpace(text),
			Confidence:        0.85,
			Reasons:           []string{fmt.Sprintf("%d secciones importantes sin referencias", len(sections))},
		}
	}

	// Path 3: no named header, but real content precedes the
	// bibliography.
	if refStart != nil {
		prefix := strings.TrimSpace(text[:refStart.Offset])
		if len(prefix) >= c.cfg.MinPrefixChars && c.HasSubstantiveContent(prefix) {
			confidence := 0.75
			if len(prefix) >= c.cfg.StrongPrefixChars {
				confidence = 0.8
			}
			return Result{
				Kind:            MixedContent,
				ReferenceStart:  refStart,
				ExtractableText: prefix,
				Confidence:      confidence,
				Reasons: []string{
					fmt.Sprintf("contenido sustantivo antes de %q", refStart.Header),
				},
			}
		}
	}

	// Path 4: weighted bibliographic signal scoring over the whole
	// page.
	if score, reasons := c.referenceScore(text); score >= c.cfg.PureReferenceCutoff {
		return Result{
			Kind:            PureReferences,
			ReferenceStart:  refStart,
			ExtractableText: "",
			Confidence:      score,
			Reasons:         reasons,
		}
	}

	// Path 5: default.
	return Result{
		Kind:            SubstantiveContent,
		ExtractableText: strings.TrimSpace(text),
		Confidence:      0.8,
		Reasons:         []string{"sin señales bibliográficas dominantes"},
	}
}

// findImportantSections scans line by line for always-valuable headers.
// One entry per matched line, first pattern wins.
func (c *Classifier) findImportantSections(text string) []Section {
	var sections []Section
	offset := 0
	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			for _, hp := range c.important {
				if hp.pattern.MatchString(line) {
					sections = append(sections, Section{Name: hp.name, Line: i, Offset: offset})
					break
				}
			}
		}
		offset += len(line) + 1
	}
	return sections
}

// findReferenceStart locates the first bibliography header and returns
// its byte offset within the page text.
func (c *Classifier) findReferenceStart(text string) *ReferenceStart {
	offset := 0
	for _, line := range strings.Split(text, "\n") {
		for _, re := range c.refHeaders {
			if re.MatchString(line) {
				return &ReferenceStart{
					Header: strings.TrimSpace(line),
					Offset: offset,
				}
			}
		}
		offset += len(line) + 1
	}
	return nil
}

// referenceScore computes a weighted confidence that text is
// bibliography. Each signal family contributes a capped partial score;
// convergent evidence across three or more families earns a flat
// bonus.
func (c *Classifier) referenceScore(text string) (float64, []string) {
	var score float64
	var reasons []string
	families := 0

	hasHeader := c.findReferenceStart(text) != nil
	if hasHeader {
		score += 0.3
		reasons = append(reasons, "encabezado de referencias")
	}

	if n := len(doiPattern.FindAllString(text, -1)); n > 0 {
		score += capped(0.1*float64(n), 0.25)
		families++
		reasons = append(reasons, fmt.Sprintf("%d DOI", n))
	}
	if n := len(pmidPattern.FindAllString(text, -1)); n > 0 {
		score += capped(0.08*float64(n), 0.2)
		families++
		reasons = append(reasons, fmt.Sprintf("%d PMID", n))
	}
	if density := numberedEntryDensity(text); density >= 0.25 {
		score += capped(density*0.5, 0.3)
		families++
		reasons = append(reasons, fmt.Sprintf("densidad de entradas numeradas %.2f", density))
	}
	if n := len(journalCitation.FindAllString(text, -1)); n > 0 {
		score += capped(0.08*float64(n), 0.2)
		families++
		reasons = append(reasons, fmt.Sprintf("%d citas de revista", n))
	}
	if n := len(etAlPattern.FindAllString(text, -1)); n > 0 {
		score += capped(0.05*float64(n), 0.15)
		families++
		reasons = append(reasons, fmt.Sprintf("%d \"et al.\"", n))
	}
	urls := len(pubmedURLPattern.FindAllString(text, -1))
	years := len(yearSemicolon.FindAllString(text, -1))
	if urls+years > 0 {
		score += capped(0.05*float64(urls+years), 0.15)
		families++
		reasons = append(reasons, fmt.Sprintf("%d patrones año/URL", urls+years))
	}

	// A header alone is weak; a header among real citation signals is
	// strong.
	if hasHeader && families > 0 {
		score += 0.1
	}
	if families >= 3 {
		score += 0.15
		reasons = append(reasons, "evidencia convergente")
	}

	if score > 1 {
		score = 1
	}
	return score, reasons
}

// numberedEntryDensity is the share of non-blank lines that look like
// numbered citation entries ("12. García JL, ...").
func numberedEntryDensity(text string) float64 {
	nonBlank := 0
	numbered := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		nonBlank++
		if numberedEntry.MatchString(line) {
			numbered++
		}
	}
	if nonBlank == 0 {
		return 0
	}
	return float64(numbered) / float64(nonBlank)
}

func capped(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}
