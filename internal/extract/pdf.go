package extract

import (
	"fmt"

	pdflib "github.com/ledongthuc/pdf"
)

// extractPDF walks the pages in order and collects their plain text. Pages
// without a text layer (scanned images) contribute nothing.
func extractPDF(path string) ([]string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var lines []string
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		lines = append(lines, splitLines(text)...)
	}

	return lines, nil
}
