package tileset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"
)

// CSVHeader is the fixed header row of the mapping table.
var CSVHeader = []string{"Index", "Name", "Char", "Properties"}

// Record is one row of the mapping table.
type Record struct {
	Index      int
	Name       string
	Char       rune
	Properties string
}

// CSVExporter writes the index -> tile mapping table that level tooling reads.
type CSVExporter struct {
	W io.Writer
}

// Export implements Exporter
func (e *CSVExporter) Export(m *Manifest) error {
	w := csv.NewWriter(e.W)
	if err := w.Write(CSVHeader); err != nil {
		return err
	}
	for _, entry := range m.entries {
		row := []string{
			strconv.Itoa(entry.Index),
			entry.Name,
			string(entry.Char),
			entry.Properties,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteCSV writes the mapping table for `m` to fname
func WriteCSV(fname string, m *Manifest) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := (&CSVExporter{W: f}).Export(m); err != nil {
		return err
	}
	return f.Close()
}

// DecodeCSV reads a mapping table. Indices not in the result are undefined
// & should not be rendered.
func DecodeCSV(r io.Reader) ([]Record, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("mapping table is empty")
	}

	for i, col := range CSVHeader {
		if i >= len(rows[0]) || rows[0][i] != col {
			return nil, fmt.Errorf("unexpected header %v, want %v", rows[0], CSVHeader)
		}
	}

	records := make([]Record, 0, len(rows)-1)
	for n, row := range rows[1:] {
		idx, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad index %q: %w", n+1, row[0], err)
		}
		char, _ := utf8.DecodeRuneInString(row[2])
		records = append(records, Record{Index: idx, Name: row[1], Char: char, Properties: row[3]})
	}
	return records, nil
}
