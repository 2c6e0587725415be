// Package pipeline drives one document through extraction,
// segmentation, structure detection, per-page classification and model
// analysis, emitting an ordered event stream along the way.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/docsift/docsift/internal/ai"
	"github.com/docsift/docsift/internal/classify"
	"github.com/docsift/docsift/internal/extract"
	"github.com/docsift/docsift/internal/guard"
	"github.com/docsift/docsift/internal/segment"
	"github.com/docsift/docsift/internal/structure"
)

// Placeholder analyses for pages that never reach the model.
const (
	refPlaceholder = "Esta página contiene únicamente referencias bibliográficas y no fue enviada al modelo para evitar análisis inventados."
	errPlaceholder = "El análisis de esta página falló; el resto del documento se procesó con normalidad."
)

// Disclaimer is appended to every generated summary.
const Disclaimer = `---

*Este resumen fue generado automáticamente a partir del texto extraído del documento. Verifique siempre la información contra el documento original antes de tomar decisiones clínicas.*`

// Config bounds the orchestrator's behavior per request.
type Config struct {
	MaxPages        int
	ExtractTimeout  time.Duration
	MinAnalyzeChars int
}

// Request is one document to process.
type Request struct {
	Data     []byte
	Filename string
	Title    string
}

// Orchestrator sequences the pipeline. Stateless across requests; all
// per-request state lives in a Session.
type Orchestrator struct {
	extractor  extract.Extractor
	classifier *classify.Classifier
	backend    ai.Backend
	store      ResultStore
	log        *slog.Logger
	cfg        Config
}

func NewOrchestrator(cfg Config, extractor extract.Extractor, classifier *classify.Classifier, backend ai.Backend, store ResultStore, log *slog.Logger) *Orchestrator {
	if cfg.MinAnalyzeChars <= 0 {
		cfg.MinAnalyzeChars = 100
	}
	return &Orchestrator{
		extractor:  extractor,
		classifier: classifier,
		backend:    backend,
		store:      store,
		log:        log,
		cfg:        cfg,
	}
}

// Process runs one document end to end. It emits events on em and
// terminates with exactly one complete or error event, unless the
// client disconnects first. Temporary artifacts are removed exactly
// once regardless of outcome.
func (o *Orchestrator) Process(ctx context.Context, req Request, em Emitter) {
	sess := NewSession(ctx, em)
	log := o.log.With("request_id", sess.ID, "filename", req.Filename)
	log.Info("processing started", "bytes", len(req.Data))

	hash := ContentHashHex(req.Data)
	if cached, ok := o.store.Get(hash); ok {
		log.Info("cache hit", "content_hash", hash)
		sess.Log("Documento ya procesado anteriormente; devolviendo resultado guardado", "green")
		sess.Progress(100)
		if !sess.Cancelled() {
			em.Emit(CompleteEvent(cached))
		}
		return
	}

	// Validating.
	if err := guard.ValidateMagic(req.Data); err != nil {
		o.fail(sess, log, em, err)
		return
	}
	sess.Log("Documento validado", "blue")

	// The upload artifact lives only for this request.
	tmpPath, err := writeTemp(req.Data)
	if err != nil {
		o.fail(sess, log, em, err)
		return
	}
	defer os.Remove(tmpPath)

	// Extracting.
	sess.Log("Extrayendo texto del documento...", "blue")
	res, err := guard.RunWithTimeout(ctx, "text extraction", o.cfg.ExtractTimeout,
		func(ctx context.Context) (*extract.Result, error) {
			return o.extractor.Extract(ctx, tmpPath)
		})
	if err != nil {
		o.fail(sess, log, em, err)
		return
	}
	if err := guard.ValidatePageCount(res.PageCount, o.cfg.MaxPages); err != nil {
		o.fail(sess, log, em, err)
		return
	}
	sess.Log(fmt.Sprintf("Texto extraído: %d páginas", res.PageCount), "blue")

	// Segmenting: prefer the extractor's per-page output, fall back to
	// line distribution when it is incomplete.
	var pages []segment.Page
	if segment.Usable(res.PageTexts, res.PageCount) {
		pages = segment.FromPageTexts(res.PageTexts, res.PageCount)
	} else {
		log.Warn("per-page extraction incomplete, using fallback segmentation",
			"page_texts", len(res.PageTexts), "page_count", res.PageCount)
		pages = segment.Segment(res.FullText, res.PageCount)
	}

	// Structuring.
	sm := structure.Detect(pages)
	if sm.IsStandardFormat {
		sess.Log("Estructura de artículo científico detectada (IMRyD)", "blue")
	}

	title := req.Title
	if title == "" {
		title = deriveTitle(pages, req.Filename)
	}

	// Analyzing, strictly in page order. A page's failure never aborts
	// the document; cancellation is honored between pages only.
	analyzed := make([]AnalyzedPage, 0, len(pages))
	analyzedCount, skippedCount := 0, 0
	for i, page := range pages {
		if sess.Cancelled() {
			log.Info("client disconnected, stopping", "after_pages", len(analyzed))
			return
		}

		ap, pageErr := o.processOnePage(ctx, sess, page)
		if pageErr != nil {
			log.Error("page analysis failed", "page", page.Number, "error", pageErr)
			ap.Analysis = errPlaceholder
			ap.SkippedReason = "error durante el análisis"
		}
		if ap.SkippedReason != "" {
			skippedCount++
		} else {
			analyzedCount++
		}
		analyzed = append(analyzed, ap)
		sess.Progress((i + 1) * 50 / len(pages))
	}

	// Summarizing.
	if sess.Cancelled() {
		return
	}
	sess.Log("Generando resumen del documento...", "blue")
	sess.Progress(60)

	summary, err := o.backend.GenerateSummary(ctx, title, toPageSummaries(analyzed))
	if err != nil {
		o.fail(sess, log, em, &SummaryError{Err: err})
		return
	}
	sess.Progress(90)

	// Assembling.
	result := &DocumentResult{
		Title:         title,
		ContentHash:   hash,
		PageCount:     res.PageCount,
		Pages:         analyzed,
		Structure:     sm,
		Summary:       summary + "\n\n" + Disclaimer,
		AnalyzedPages: analyzedCount,
		SkippedPages:  skippedCount,
		GeneratedAt:   time.Now(),
	}
	o.store.Set(hash, result)

	log.Info("processing complete",
		"content_hash", hash,
		"pages", res.PageCount,
		"analyzed", analyzedCount,
		"skipped", skippedCount)

	sess.Progress(100)
	if !sess.Cancelled() {
		em.Emit(CompleteEvent(result))
	}
}

// processOnePage classifies a page and, when warranted, sends its
// extractable text to the model. A failure is returned as a value; the
// AnalyzedPage is always usable.
func (o *Orchestrator) processOnePage(ctx context.Context, sess *Session, page segment.Page) (AnalyzedPage, error) {
	cls := o.classifier.Classify(page.Text, page.Number)
	ap := AnalyzedPage{
		Number:         page.Number,
		Classification: cls.Kind,
		Confidence:     cls.Confidence,
	}

	switch cls.Kind {
	case classify.PureReferences:
		ap.Analysis = refPlaceholder
		ap.SkippedReason = "página de referencias bibliográficas"
		sess.Log(fmt.Sprintf("Página %d: solo referencias (confianza %.2f), omitida", page.Number, cls.Confidence), "yellow")
		return ap, nil

	case classify.MixedContent:
		if len(cls.ExtractableText) < o.cfg.MinAnalyzeChars {
			ap.SkippedReason = "contenido extraíble insuficiente"
			sess.Log(fmt.Sprintf("Página %d: contenido mixto con muy poco texto útil, omitida", page.Number), "yellow")
			return ap, nil
		}
		ap.ExtractedSections = sectionNames(cls.ImportantSections)
		ap.DroppedChars = len(strings.TrimSpace(page.Text)) - len(cls.ExtractableText)
		sess.Log(fmt.Sprintf("Página %d: contenido mixto, analizando texto previo a las referencias (%d caracteres descartados)", page.Number, ap.DroppedChars), "blue")

		analysis, err := o.backend.AnalyzePage(ctx, guard.Sanitize(cls.ExtractableText), page.Number)
		if err != nil {
			return ap, &PageError{Page: page.Number, Err: err}
		}
		ap.Analysis = analysis
		return ap, nil

	default: // SubstantiveContent
		if !o.classifier.HasSubstantiveContent(cls.ExtractableText) {
			ap.SkippedReason = "sin contenido sustantivo"
			sess.Log(fmt.Sprintf("Página %d: sin contenido sustantivo, omitida", page.Number), "yellow")
			return ap, nil
		}
		sess.Log(fmt.Sprintf("Página %d: analizando...", page.Number), "blue")

		analysis, err := o.backend.AnalyzePage(ctx, guard.Sanitize(cls.ExtractableText), page.Number)
		if err != nil {
			return ap, &PageError{Page: page.Number, Err: err}
		}
		ap.Analysis = analysis
		return ap, nil
	}
}

// fail logs full detail server-side and sends the sanitized message to
// the client, unless the client is already gone.
func (o *Orchestrator) fail(sess *Session, log *slog.Logger, em Emitter, err error) {
	log.Error("processing failed", "error", err)
	if !sess.Cancelled() {
		em.Emit(ErrorEvent(clientMessage(err)))
	}
}

func writeTemp(data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "docsift-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(path)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return path, nil
}

func toPageSummaries(pages []AnalyzedPage) []ai.PageSummary {
	out := make([]ai.PageSummary, 0, len(pages))
	for _, p := range pages {
		out = append(out, ai.PageSummary{
			Number:         p.Number,
			Classification: string(p.Classification),
			Analysis:       p.Analysis,
			SkippedReason:  p.SkippedReason,
		})
	}
	return out
}

func sectionNames(sections []classify.Section) []string {
	names := make([]string, 0, len(sections))
	for _, s := range sections {
		names = append(names, s.Name)
	}
	return names
}

// deriveTitle takes the first non-empty line of the first page, or
// falls back to the filename.
func deriveTitle(pages []segment.Page, filename string) string {
	if len(pages) > 0 && pages[0].Text != segment.EmptyPageMarker {
		for _, line := range strings.Split(pages[0].Text, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				if len(line) > 200 {
					line = line[:200]
				}
				return line
			}
		}
	}
	name := strings.TrimSuffix(filename, ".pdf")
	if name == "" {
		name = "Documento sin título"
	}
	return name
}
