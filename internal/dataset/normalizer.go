package dataset

import (
	"errors"
	"fmt"

	"payment-insights-go/internal/multivalue"
	"payment-insights-go/internal/types"
)

var (
	// ErrSchemaMismatch is returned when the header does not carry exactly
	// types.FieldCount columns, or a data row carries more.
	ErrSchemaMismatch = errors.New("dataset: column count does not match schema")
	// ErrNoRows is returned when the input has no header row at all.
	ErrNoRows = errors.New("dataset: no header row")
)

// Normalize maps raw rows onto Responses by column position. The header text
// itself is free (the survey questions are long and change wording); only its
// width is checked.
func Normalize(header []string, rows [][]string, source string) (*Table, error) {
	if header == nil {
		return nil, ErrNoRows
	}
	if len(header) != types.FieldCount {
		return nil, fmt.Errorf("%w: header has %d columns, want %d", ErrSchemaMismatch, len(header), types.FieldCount)
	}
	out := make([]types.Response, 0, len(rows))
	for i, row := range rows {
		row = trimTrailingBlanks(row)
		if len(row) == 0 {
			continue
		}
		if len(row) > types.FieldCount {
			// line numbers are 1-based and the header is line 1
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", ErrSchemaMismatch, i+2, len(row), types.FieldCount)
		}
		cells := make([]string, types.FieldCount)
		for j, c := range row {
			if multivalue.IsBlank(c) {
				continue
			}
			cells[j] = multivalue.Clean(c)
		}
		out = append(out, types.ResponseFromCells(cells))
	}
	return &Table{source: source, rows: out}, nil
}

// HeaderMapping pairs each raw header with the field it is renamed to.
func HeaderMapping(header []string) map[string]string {
	m := make(map[string]string, len(header))
	for i, h := range header {
		if i >= types.FieldCount {
			break
		}
		m[h] = types.Field(i).String()
	}
	return m
}

func trimTrailingBlanks(row []string) []string {
	end := len(row)
	for end > 0 && multivalue.IsBlank(row[end-1]) {
		end--
	}
	return row[:end]
}
