package classify

import "regexp"

// headerPattern is one named, line-anchored header matcher. Pattern
// tables are ordered slices so classification never depends on map
// iteration order.
type headerPattern struct {
	name    string
	pattern *regexp.Regexp
}

// importantHeaders match section headings that always carry value for
// the reader, in Spanish and English. A page holding one of these is
// never discarded wholesale, even when a bibliography follows.
var importantHeaders = []headerPattern{
	{"conclusion", regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?conclusi[óo]n(?:es)?\b`)},
	{"conclusion", regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?conclusions?\b`)},
	{"complications", regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?complica(?:ciones|tions)\b`)},
	{"limitations", regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?limita(?:ciones|tions)\b`)},
	{"discussion", regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?discusi[óo]n\b`)},
	{"discussion", regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?discussion\b`)},
	{"results", regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?resulta(?:dos)?\b`)},
	{"results", regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?results?\b`)},
	{"clinical_implications", regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?implicaciones\s+cl[íi]nicas\b`)},
	{"clinical_implications", regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?clinical\s+implications?\b`)},
	{"future_research", regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?(investigaci[óo]n\s+futura|futuras?\s+l[íi]neas)\b`)},
	{"future_research", regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?future\s+(research|directions?)\b`)},
	{"recommendations", regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?recomenda(?:ciones|tions)\b`)},
	{"key_points", regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?(puntos\s+clave|key\s+points?)\b`)},
}

// referenceHeaders match the start of a bibliography section. The
// trailing anchor keeps prose like "references to prior work" from
// matching.
var referenceHeaders = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?referencias(\s+bibliogr[áa]ficas)?\s*[:.]?\s*$`),
	regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?references?\s*[:.]?\s*$`),
	regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?bibliograf[íi]a\s*[:.]?\s*$`),
	regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?bibliography\s*[:.]?\s*$`),
	regexp.MustCompile(`(?i)^\s*(?:\d+[.)]\s*)?(works\s+cited|literatura\s+citada)\s*[:.]?\s*$`),
}

// Bibliographic signal patterns, one family each. Scored independently
// in referenceScore.
var (
	doiPattern        = regexp.MustCompile(`(?i)(doi:\s*\S+|10\.\d{4,9}/[-._;()/:a-z0-9]+)`)
	pmidPattern       = regexp.MustCompile(`(?i)PMID:?\s*\d{6,9}`)
	numberedEntry     = regexp.MustCompile(`^\s*\d{1,3}[.)]\s+[A-ZÁÉÍÓÚÑ]`)
	journalCitation   = regexp.MustCompile(`\d{4}\s*;\s*\d+\s*(\(\d+\))?\s*:\s*\d+`)
	etAlPattern       = regexp.MustCompile(`(?i)\bet\s+al\b`)
	yearSemicolon     = regexp.MustCompile(`\b(19|20)\d{2}\s*;`)
	pubmedURLPattern  = regexp.MustCompile(`(?i)(pubmed\.ncbi\.nlm\.nih\.gov|ncbi\.nlm\.nih\.gov/pubmed)`)
)

// substantiveIndicators are bilingual word/phrase cues that a block of
// text reports actual study content rather than citations.
var substantiveIndicators = []*regexp.Regexp{
	// Study design terms.
	regexp.MustCompile(`(?i)\b(estudio|cohorte|ensayo\s+cl[íi]nico|muestra|aleatorizado)\b`),
	regexp.MustCompile(`(?i)\b(study|cohort|clinical\s+trial|sample|randomi[sz]ed)\b`),
	regexp.MustCompile(`(?i)\b(pacientes?|participantes?|sujetos?)\b`),
	regexp.MustCompile(`(?i)\b(patients?|participants?|subjects?)\b`),
	// Outcome and intervention terms.
	regexp.MustCompile(`(?i)\b(resultado|desenlace|seguimiento|mortalidad|supervivencia|eficacia)\b`),
	regexp.MustCompile(`(?i)\b(outcome|follow-?up|mortality|survival|efficacy)\b`),
	regexp.MustCompile(`(?i)\b(tratamiento|diagn[óo]stico|intervenci[óo]n|terapia)\b`),
	regexp.MustCompile(`(?i)\b(treatment|diagnosis|intervention|therapy)\b`),
	regexp.MustCompile(`(?i)\b(m[ée]todos?|an[áa]lisis|regresi[óo]n)\b`),
	regexp.MustCompile(`(?i)\b(methods?|analysis|regression)\b`),
	// Statistical notation.
	regexp.MustCompile(`(?i)p\s*[<=>]\s*0?[.,]\d+`),
	regexp.MustCompile(`(?i)(IC\s*95%?|95%\s*CI|CI\s*95)`),
	regexp.MustCompile(`(?i)\b(OR|RR|HR)\s*[:=]?\s*\d`),
}
