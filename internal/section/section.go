// Package section tags extracted paragraphs with the numbered heading that
// governs them. Headings carry no hierarchy here: only the flattened label of
// the most recent heading is tracked.
package section

import "regexp"

// headingPattern matches lines like "2.3. Les reaccions": one or more
// dot-separated integers, a closing period, then the label text. A line that
// merely starts with a number (e.g. "3.5 kg de mostra") also matches; that
// misclassification is a known limit of the heuristic.
var headingPattern = regexp.MustCompile(`^(\d+(?:\.\d+)*)\.\s*(.+)`)

// Sentence is a paragraph paired with its governing section label.
type Sentence struct {
	Section string `json:"section"`
	Text    string `json:"text"`
}

// Detect walks the paragraph sequence in order. Heading paragraphs update the
// active section and are consumed; every other paragraph is emitted with the
// section active at that point. Before the first heading the active section
// is defaultSection.
func Detect(paragraphs []string, defaultSection string) []Sentence {
	current := defaultSection
	var out []Sentence

	for _, p := range paragraphs {
		if m := headingPattern.FindStringSubmatch(p); m != nil {
			current = m[1] + " " + m[2]
			continue
		}
		out = append(out, Sentence{Section: current, Text: p})
	}

	return out
}
