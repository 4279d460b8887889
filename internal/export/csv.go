// Package export serializes suggested cards for import into a
// spaced-repetition tool.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jmasdeu/ankigen/internal/cards"
)

// Header is the fixed CSV column schema, in order.
var Header = []string{"type", "front", "back", "section", "approved"}

// WriteCSV writes the cards to path as UTF-8 CSV with the fixed header,
// preserving generation order. The parent directory is created if missing
// and any existing file is overwritten.
func WriteCSV(path string, list []cards.Card) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := WriteRows(f, list); err != nil {
		return err
	}
	return f.Close()
}

// WriteRows emits the header and one row per card to out. Used directly by
// the HTTP API to stream CSV responses.
func WriteRows(out io.Writer, list []cards.Card) error {
	w := csv.NewWriter(out)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, c := range list {
		row := []string{string(c.Type), c.Front, c.Back, c.Section, c.Approved}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
