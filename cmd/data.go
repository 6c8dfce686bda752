package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// loadData reads a CSV file with x, y, e columns. A leading header row is
// skipped; an omitted third column defaults to unit uncertainties.
func loadData(path string) (x, y, e []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to parse data file: %w", err)
	}

	for i, rec := range records {
		if len(rec) < 2 {
			return nil, nil, nil, fmt.Errorf("row %d: need at least x and y columns", i+1)
		}
		xi, errX := strconv.ParseFloat(rec[0], 64)
		yi, errY := strconv.ParseFloat(rec[1], 64)
		if errX != nil || errY != nil {
			if i == 0 {
				continue // header row
			}
			return nil, nil, nil, fmt.Errorf("row %d: non-numeric data", i+1)
		}

		ei := 1.0
		if len(rec) >= 3 {
			if ei, err = strconv.ParseFloat(rec[2], 64); err != nil {
				return nil, nil, nil, fmt.Errorf("row %d: bad uncertainty: %w", i+1, err)
			}
		}

		x = append(x, xi)
		y = append(y, yi)
		e = append(e, ei)
	}

	if len(x) == 0 {
		return nil, nil, nil, fmt.Errorf("no data rows in %s", path)
	}
	return x, y, e, nil
}
