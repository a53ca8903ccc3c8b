package gridio

import (
	"encoding/csv"
	"fmt"
	"os"

	"calibgrid/pkg/contracts/domain"
)

// LoadCSV reads a CSV file into a grid. Rows may be ragged.
func LoadCSV(path string) (domain.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return domain.Grid(records), nil
}

// SaveCSV writes a grid to a CSV file.
func SaveCSV(path string, grid domain.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(grid); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	w.Flush()
	return w.Error()
}
