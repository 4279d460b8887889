package cards

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules holds the heuristic thresholds and prefix tables used by the card
// generator. The zero value is not usable; start from DefaultRules.
type Rules struct {
	// DefinitionStarters are the sentence prefixes that mark a candidate
	// definition. Matching is a literal prefix check, no word boundary.
	DefinitionStarters []string `yaml:"definition_starters"`

	// MinDefinitionWords is the word count a definition sentence must
	// exceed (strictly) to produce a basic card.
	MinDefinitionWords int `yaml:"min_definition_words"`

	// KeyPhraseWords is how many leading words form the "Defineix:" key.
	KeyPhraseWords int `yaml:"key_phrase_words"`

	// ClozeMinWords is the minimum word count for a cloze candidate.
	ClozeMinWords int `yaml:"cloze_min_words"`

	// ClozeMinWordLen is the minimum length (in runes) of the longest
	// word for a cloze deletion to fire.
	ClozeMinWordLen int `yaml:"cloze_min_word_len"`

	// DefaultSection labels sentences seen before the first heading.
	DefaultSection string `yaml:"default_section"`
}

// DefaultRules returns the built-in heuristics, tuned for structured
// educational notes in Catalan.
func DefaultRules() Rules {
	return Rules{
		DefinitionStarters: []string{
			"Es denomina",
			"És",
			"Es produeix",
			"La",
			"El",
			"Els",
			"Les",
		},
		MinDefinitionWords: 8,
		KeyPhraseWords:     5,
		ClozeMinWords:      10,
		ClozeMinWordLen:    6,
		DefaultSection:     "General",
	}
}

// LoadRules reads a YAML rules profile. Fields absent from the file keep
// their default values.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("read rules file: %w", err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("parse rules file: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return rules, fmt.Errorf("rules file %s: %w", path, err)
	}
	return rules, nil
}

// Validate rejects thresholds that would make the generator degenerate.
func (r Rules) Validate() error {
	if len(r.DefinitionStarters) == 0 {
		return fmt.Errorf("definition_starters must not be empty")
	}
	if r.MinDefinitionWords < 1 {
		return fmt.Errorf("min_definition_words must be >= 1, got %d", r.MinDefinitionWords)
	}
	if r.KeyPhraseWords < 1 {
		return fmt.Errorf("key_phrase_words must be >= 1, got %d", r.KeyPhraseWords)
	}
	if r.ClozeMinWords < 1 {
		return fmt.Errorf("cloze_min_words must be >= 1, got %d", r.ClozeMinWords)
	}
	if r.ClozeMinWordLen < 1 {
		return fmt.Errorf("cloze_min_word_len must be >= 1, got %d", r.ClozeMinWordLen)
	}
	if r.DefaultSection == "" {
		return fmt.Errorf("default_section must not be empty")
	}
	return nil
}
