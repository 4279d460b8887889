package cards

import (
	"strings"
	"unicode/utf8"

	"github.com/jmasdeu/ankigen/internal/section"
)

// Generate runs the definition and cloze checks over each sectioned sentence
// and collects the resulting cards in order. Both checks are independent: a
// sentence may yield zero, one, or two cards.
func Generate(sentences []section.Sentence, rules Rules) []Card {
	var out []Card

	for _, s := range sentences {
		if isDefinition(s.Text, rules) {
			front, back := basicCard(s.Text, rules)
			out = append(out, Card{
				Type:     TypeBasic,
				Front:    front,
				Back:     back,
				Section:  s.Section,
				Approved: "no",
			})
		}

		if front, ok := clozeCard(s.Text, rules); ok {
			out = append(out, Card{
				Type:     TypeCloze,
				Front:    front,
				Back:     "",
				Section:  s.Section,
				Approved: "no",
			})
		}
	}

	return out
}

// isDefinition reports whether a sentence looks like a definition: it starts
// with one of the configured prefixes and is long enough to carry content.
func isDefinition(sentence string, rules Rules) bool {
	if len(strings.Fields(sentence)) <= rules.MinDefinitionWords {
		return false
	}
	for _, prefix := range rules.DefinitionStarters {
		if strings.HasPrefix(sentence, prefix) {
			return true
		}
	}
	return false
}

// basicCard builds the front/back pair for a definition sentence. The front
// quotes the opening words as a key phrase; the back is the full sentence.
func basicCard(sentence string, rules Rules) (front, back string) {
	words := strings.Fields(sentence)
	n := rules.KeyPhraseWords
	if n > len(words) {
		n = len(words)
	}
	key := strings.Join(words[:n], " ") + "..."
	return "Defineix: " + key, sentence
}

// clozeCard hides the longest word of a long sentence behind a {{c1::...}}
// marker. Ties on length go to the word seen first; only the first substring
// occurrence is replaced. Returns ok=false when the sentence is too short or
// no word reaches the length threshold.
func clozeCard(sentence string, rules Rules) (string, bool) {
	words := strings.Fields(sentence)
	if len(words) < rules.ClozeMinWords {
		return "", false
	}

	keyWord := ""
	keyLen := 0
	for _, w := range words {
		if n := utf8.RuneCountInString(w); n > keyLen {
			keyWord = w
			keyLen = n
		}
	}
	if keyLen < rules.ClozeMinWordLen {
		return "", false
	}

	return strings.Replace(sentence, keyWord, "{{c1::"+keyWord+"}}", 1), true
}
