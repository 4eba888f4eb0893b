package catalogcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tanneryrow/backend/internal/domain"
)

// Loader reads a QuickBooks item list export ("Item" and "Active Status"
// columns; extra columns are ignored).
type Loader struct {
	path string
}

// NewLoader creates a loader for the given CSV file
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// LoadRows reads the export and returns its rows in file order. Rows with an
// empty Item cell are dropped.
func (l *Loader) LoadRows() ([]domain.CatalogRow, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()

	return ParseRows(f)
}

// ParseRows parses a catalog CSV from any reader.
func ParseRows(r io.Reader) ([]domain.CatalogRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading catalog header: %w", err)
	}

	itemCol, activeCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "Item":
			itemCol = i
		case "Active Status":
			activeCol = i
		}
	}
	if itemCol == -1 {
		return nil, fmt.Errorf("catalog CSV has no %q column", "Item")
	}

	var rows []domain.CatalogRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading catalog row: %w", err)
		}
		if itemCol >= len(record) {
			continue
		}
		name := strings.TrimSpace(record[itemCol])
		if name == "" {
			continue
		}
		active := false
		if activeCol >= 0 && activeCol < len(record) {
			active = record[activeCol] == "Active"
		}
		rows = append(rows, domain.CatalogRow{ItemName: name, Active: active})
	}

	return rows, nil
}
