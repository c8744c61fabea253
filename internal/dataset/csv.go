package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
)

// RawRow is a single source row keyed by normalized header name.
type RawRow map[string]string

// ReadCSV reads a CSV stream whose first row contains the headers and
// returns one RawRow per data row, keyed by the normalized header names.
// Short rows are padded with empty values so a ragged file never aborts the
// upload. An empty file or a file with only a header row yields zero rows
// and no error; the caller treats that as the empty-input condition.
func ReadCSV(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	keys := make([]string, len(headers))
	for i, h := range headers {
		keys[i] = NormalizeHeader(h)
	}

	var rows []RawRow
	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("failed to read data row: %w", err)
		}

		data := make(RawRow, len(keys))
		for i, key := range keys {
			if i < len(row) {
				data[key] = row[i]
			} else {
				data[key] = ""
			}
		}
		rows = append(rows, data)
	}
	return rows, nil
}
