// Package preview renders suggested cards as an HTML page for manual review.
// The page is a reading aid only; the CSV stays the import artifact and the
// approved flag is never touched here.
package preview

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/jmasdeu/ankigen/internal/cards"
)

// Markdown renders the cards as a Markdown report grouped by section, in
// first-appearance order.
func Markdown(list []cards.Card) string {
	var buf strings.Builder
	buf.WriteString("# Suggested cards\n\n")
	buf.WriteString(fmt.Sprintf("%d candidate cards. Review each one and flip `approved` in the CSV before import.\n", len(list)))

	var order []string
	bySection := make(map[string][]cards.Card)
	for _, c := range list {
		if _, ok := bySection[c.Section]; !ok {
			order = append(order, c.Section)
		}
		bySection[c.Section] = append(bySection[c.Section], c)
	}

	for _, sec := range order {
		buf.WriteString("\n## " + sec + "\n\n")
		for _, c := range bySection[sec] {
			switch c.Type {
			case cards.TypeBasic:
				buf.WriteString("- **basic**: " + c.Front + "\n")
				buf.WriteString("  - " + c.Back + "\n")
			case cards.TypeCloze:
				buf.WriteString("- **cloze**: " + c.Front + "\n")
			}
		}
	}

	return buf.String()
}

// HTML converts the Markdown report to a standalone HTML page.
func HTML(list []cards.Card) ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(list)), &body); err != nil {
		return nil, fmt.Errorf("render preview: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Suggested cards</title>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}
