package classify

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// LanguagePack is a loadable set of extra patterns for a language the
// built-in tables do not cover. Patterns are standard Go regular
// expressions matched against single lines (headers) or whole pages
// (indicators).
type LanguagePack struct {
	Language              string          `yaml:"language"`
	ImportantHeaders      []packedPattern `yaml:"important_headers"`
	ReferenceHeaders      []string        `yaml:"reference_headers"`
	SubstantiveIndicators []string        `yaml:"substantive_indicators"`
}

type packedPattern struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

// LoadLanguagePack reads a YAML pattern file from disk.
func LoadLanguagePack(path string) (*LanguagePack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read language pack: %w", err)
	}
	var pack LanguagePack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("parse language pack: %w", err)
	}
	if pack.Language == "" {
		return nil, fmt.Errorf("language pack missing language field")
	}
	return &pack, nil
}

// AddPack compiles and appends a pack's patterns to the classifier
// tables. Call during setup, before Classify is in use.
func (c *Classifier) AddPack(pack *LanguagePack) error {
	for _, hp := range pack.ImportantHeaders {
		re, err := regexp.Compile(hp.Pattern)
		if err != nil {
			return fmt.Errorf("important header %q: %w", hp.Name, err)
		}
		c.important = append(c.important, headerPattern{name: hp.Name, pattern: re})
	}
	for _, p := range pack.ReferenceHeaders {
		re, err := regexp.Compile(p)
		if err != nil {
			return fmt.Errorf("reference header %q: %w", p, err)
		}
		c.refHeaders = append(c.refHeaders, re)
	}
	for _, p := range pack.SubstantiveIndicators {
		re, err := regexp.Compile(p)
		if err != nil {
			return fmt.Errorf("substantive indicator %q: %w", p, err)
		}
		c.indicators = append(c.indicators, re)
	}
	return nil
}
