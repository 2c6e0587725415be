package ai

import (
	"fmt"
	"strings"
)

// AnalysisSystemPrompt frames the per-page call. Output is Spanish
// because that is the system's reader-facing language.
const AnalysisSystemPrompt = `Eres un asistente que resume páginas de artículos y documentos médicos o científicos para profesionales sanitarios.

Reglas:
- Resume únicamente lo que el texto dice; no inventes datos, cifras ni referencias.
- Si el texto menciona resultados numéricos (valores p, intervalos de confianza, OR/RR/HR), consérvalos tal cual.
- No cites bibliografía que no aparezca en el texto proporcionado.
- Responde en español, en formato de puntos breves.`

// SummarySystemPrompt frames the final document-level call.
const SummarySystemPrompt = `Eres un asistente que redacta el resumen ejecutivo de un documento médico o científico a partir de los análisis de sus páginas.

Reglas:
- Integra los análisis en un resumen coherente en Markdown, con secciones claras.
- No añadas información que no figure en los análisis.
- Señala explícitamente las páginas que fueron omitidas y por qué.
- Responde en español.`

// BuildPagePrompt wraps one page's sanitized text for analysis.
func BuildPagePrompt(text string, pageNumber int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Analiza la página %d del documento. Texto de la página:\n\n---\n", pageNumber)
	sb.WriteString(text)
	sb.WriteString("\n---\n\nResume el contenido relevante de esta página.")
	return sb.String()
}

// BuildSummaryPrompt assembles the per-page analyses for the final
// summary call.
func BuildSummaryPrompt(title string, pages []PageSummary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Documento: %q\nPáginas analizadas: %d\n\n", title, len(pages))
	for _, p := range pages {
		fmt.Fprintf(&sb, "## Página %d (%s)\n", p.Number, p.Classification)
		switch {
		case p.SkippedReason != "":
			fmt.Fprintf(&sb, "Omitida: %s\n\n", p.SkippedReason)
		case p.Analysis != "":
			sb.WriteString(p.Analysis)
			sb.WriteString("\n\n")
		default:
			sb.WriteString("Sin análisis disponible.\n\n")
		}
	}
	sb.WriteString("Redacta el resumen ejecutivo del documento completo.")
	return sb.String()
}
