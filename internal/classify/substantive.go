package classify

import "strings"

// HasSubstantiveContent is the second-opinion gate applied before any
// text is sent to the model. It requires either enough distinct
// study-content indicators or a long non-bibliographic body.
func (c *Classifier) HasSubstantiveContent(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < c.cfg.MinSubstantiveChars {
		return false
	}

	// Citation titles reuse clinical vocabulary, so a bibliography can
	// trip the indicator check on its own. Reference-dominant text is
	// never substantive.
	if score, _ := c.referenceScore(trimmed); score >= c.cfg.PureReferenceCutoff {
		return false
	}

	matches := 0
	for _, re := range c.indicators {
		if re.MatchString(trimmed) {
			matches++
			if matches >= c.cfg.MinIndicatorMatches {
				return true
			}
		}
	}

	return len(trimmed) > c.cfg.LongTextFallbackChars
}
