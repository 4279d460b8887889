package cards

// Type identifies the flashcard format.
type Type string

const (
	// TypeBasic is a front/back question-answer card.
	TypeBasic Type = "basic"
	// TypeCloze is a fill-in-the-blank card with a {{c1::word}} marker.
	TypeCloze Type = "cloze"
)

// Card is a suggested flashcard. Cards carry no identity beyond their
// position in the output file; the Approved flag is left "no" for a human
// curator to flip before import.
type Card struct {
	Type     Type   `json:"type"`
	Front    string `json:"front"`
	Back     string `json:"back"`
	Section  string `json:"section"`
	Approved string `json:"approved"`
}
