// Package pipeline runs the document-to-cards pass: extract text lines, tag
// them with their governing section, apply the card heuristics. One input
// file, one synchronous pass, nothing persisted.
package pipeline

import (
	"log/slog"

	"github.com/jmasdeu/ankigen/internal/cards"
	"github.com/jmasdeu/ankigen/internal/extract"
	"github.com/jmasdeu/ankigen/internal/section"
)

// Result carries the generated cards plus the counts observed along the way.
type Result struct {
	Cards      []cards.Card
	Paragraphs int
	Sentences  int
	Sections   int
}

// Run executes the full pipeline for the document at path.
func Run(path string, rules cards.Rules, log *slog.Logger) (Result, error) {
	paragraphs, err := extract.FromFile(path)
	if err != nil {
		return Result{}, err
	}

	sentences := section.Detect(paragraphs, rules.DefaultSection)

	res := Result{
		Cards:      cards.Generate(sentences, rules),
		Paragraphs: len(paragraphs),
		Sentences:  len(sentences),
		Sections:   countSections(sentences),
	}

	log.Info("pipeline complete",
		"input", path,
		"paragraphs", res.Paragraphs,
		"sentences", res.Sentences,
		"sections", res.Sections,
		"cards", len(res.Cards),
	)

	return res, nil
}

// countSections counts distinct section labels in emission order.
func countSections(sentences []section.Sentence) int {
	seen := make(map[string]bool)
	for _, s := range sentences {
		seen[s.Section] = true
	}
	return len(seen)
}
