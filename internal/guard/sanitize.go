package guard

import (
	"regexp"
	"strings"
)

// Sanitization replaces injection vectors with inert placeholders
// instead of deleting them: the surrounding prose stays readable while
// the control tokens stop working.
const neutralized = "[filtrado]"

var (
	// Chat role markers at line or sentence starts.
	roleMarker = regexp.MustCompile(`(?im)^\s*(system|assistant|user)\s*:`)
	// Instruction-override phrasings, Spanish and English.
	overridePhrase = regexp.MustCompile(
		`(?i)(ignore\s+(all\s+)?(previous|above|prior)\s+instructions?|` +
			`ignora\s+(todas\s+las\s+)?instrucciones\s+(anteriores|previas)|` +
			`disregard\s+(all\s+)?(previous|above)|` +
			`you\s+are\s+now|act\s+as\s+if|pretend\s+to\s+be|` +
			`forget\s+(everything|all)|new\s+instructions?\s*:)`,
	)
	// Bracketed control tokens used by chat templates.
	controlToken = regexp.MustCompile(`(?i)(\[/?(INST|SYSTEM|SYS)\]|<\|[^|>]{1,40}\|>)`)
)

// Sanitize neutralizes prompt-injection vectors in text before it
// reaches the model.
func Sanitize(text string) string {
	text = roleMarker.ReplaceAllString(text, neutralized+":")
	text = overridePhrase.ReplaceAllString(text, neutralized)
	text = controlToken.ReplaceAllString(text, neutralized)
	// Fenced code delimiters could close or open a prompt block.
	text = strings.ReplaceAll(text, "```", "'''")
	return text
}
