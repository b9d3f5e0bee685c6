package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"payment-insights-go/internal/logger"
)

// Load reads the survey export at path. .xlsx workbooks are read from their
// first sheet, anything else is parsed as CSV.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	return LoadBytes(path, raw)
}

// LoadBytes parses an in-memory export. name is used for format detection
// and as the table source.
func LoadBytes(name string, raw []byte) (*Table, error) {
	log := logger.New().Component("dataset.loader").WithField("source", name)

	var (
		header []string
		rows   [][]string
		err    error
	)
	if isWorkbook(name) {
		header, rows, err = readWorkbook(raw)
	} else {
		header, rows, err = readCSV(raw)
	}
	if err != nil {
		log.WithError(err).Error("read failed")
		return nil, err
	}

	log.WithField("columns", HeaderMapping(header)).Debug("column mapping")
	t, err := Normalize(header, rows, name)
	if err != nil {
		log.WithError(err).Error("normalize failed")
		return nil, err
	}
	t.fingerprint = Fingerprint(raw)
	log.WithField("rows", t.Len()).WithField("fingerprint", t.fingerprint).Info("dataset loaded")
	return t, nil
}

func isWorkbook(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}

func readCSV(raw []byte) ([]string, [][]string, error) {
	// strip a UTF-8 BOM, spreadsheet tools like to add one
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil, ErrNoRows
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}
	var rows [][]string
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		rows = append(rows, rec)
	}
	return header, rows, nil
}

func readWorkbook(raw []byte) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("no sheets")
	}
	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read rows: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, ErrNoRows
	}
	return all[0], all[1:], nil
}
