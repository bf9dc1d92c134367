package export

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/domain"
)

// Field is one key/value pair of a flat export row.
type Field struct {
	Key   string
	Value string
}

// Row is an ordered flat record. Order matters: the first row's keys
// become the CSV header.
type Row []Field

// Get returns the value for key.
func (r Row) Get(key string) (string, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// ToCSV serializes rows into RFC-4180 CSV text. The header is the
// first row's keys; every later row emits exactly those keys in the
// same order. Missing keys become empty fields; extra keys are dropped
// and reported back as warnings, never silently. Zero rows is an
// EmptyDataError: a header-only file helps nobody.
func ToCSV(rows []Row) (string, []string, error) {
	if len(rows) == 0 {
		return "", nil, domain.ErrEmptyData
	}

	header := make([]string, len(rows[0]))
	for i, f := range rows[0] {
		header[i] = f.Key
	}
	known := make(map[string]struct{}, len(header))
	for _, k := range header {
		known[k] = struct{}{}
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(header); err != nil {
		return "", nil, fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
	}

	var warnings []string
	for i, row := range rows {
		record := make([]string, len(header))
		for j, key := range header {
			record[j], _ = row.Get(key)
		}
		for _, f := range row {
			if _, ok := known[f.Key]; !ok {
				warnings = append(warnings, fmt.Sprintf("row %d: field %q not in header, dropped", i+1, f.Key))
			}
		}
		if err := w.Write(record); err != nil {
			return "", nil, fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
	}
	return sb.String(), warnings, nil
}

// ParseCSV reads CSV text back into rows keyed by the header line.
// Inverse of ToCSV for well-formed input; exists mainly so tests can
// verify the round trip.
func ParseCSV(text string) ([]Row, error) {
	r := csv.NewReader(strings.NewReader(text))
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrEmptyData
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, key := range header {
			row[i] = Field{Key: key, Value: record[i]}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
