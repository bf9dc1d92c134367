package export

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/domain"
)

// Sheet is one named section of a report: a title plus flat rows.
// CSV exports concatenate sheets; workbook and PDF exports keep them
// as separate sheets/blocks.
type Sheet struct {
	Name string
	Rows []Row
}

// Service turns flat rows into downloadable artifacts and hands them
// to the sink. Export failures are reported once; there is no retry.
type Service struct {
	sink Sink
	log  zerolog.Logger
	now  func() time.Time
}

func NewService(sink Sink, log zerolog.Logger) *Service {
	return &Service{sink: sink, log: log, now: time.Now}
}

// Filename builds `<report>_<period>_<timestamp>.<ext>`.
func (s *Service) Filename(report, period, ext string) string {
	stamp := s.now().UTC().Format("2006-01-02T15-04-05")
	return fmt.Sprintf("%s_%s_%s.%s", report, period, stamp, ext)
}

// ExportCSV serializes rows and writes the file. It returns the
// filename and any dropped-field warnings.
func (s *Service) ExportCSV(report, period string, rows []Row) (string, []string, error) {
	text, warnings, err := ToCSV(rows)
	if err != nil {
		return "", nil, err
	}
	for _, w := range warnings {
		s.log.Warn().Str("report", report).Msg(w)
	}

	name := s.Filename(report, period, "csv")
	if err := s.sink.WriteFile(name, []byte(text)); err != nil {
		s.log.Error().Err(err).Str("file", name).Msg("csv export failed")
		return "", warnings, fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
	}
	return name, warnings, nil
}

// ExportWorkbook writes the sheets as an xlsx workbook.
func (s *Service) ExportWorkbook(report, period string, sheets []Sheet) (string, error) {
	if totalRows(sheets) == 0 {
		return "", domain.ErrEmptyData
	}
	data, err := buildWorkbook(sheets)
	if err != nil {
		return "", err
	}

	name := s.Filename(report, period, "xlsx")
	if err := s.sink.WriteFile(name, data); err != nil {
		s.log.Error().Err(err).Str("file", name).Msg("workbook export failed")
		return "", fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
	}
	return name, nil
}

// ExportPDF renders the print variant: a light-background, table-only
// PDF of the sheets. The record data itself is never mutated. After a
// successful write the sink's print hook is invoked once.
func (s *Service) ExportPDF(title, report, period string, sheets []Sheet) (string, error) {
	if totalRows(sheets) == 0 {
		return "", domain.ErrEmptyData
	}
	data, err := buildPDF(title, s.now().UTC(), sheets)
	if err != nil {
		return "", err
	}

	name := s.Filename(report, period, "pdf")
	if err := s.sink.WriteFile(name, data); err != nil {
		s.log.Error().Err(err).Str("file", name).Msg("pdf export failed")
		return "", fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
	}
	if err := s.sink.RequestPrint(); err != nil {
		s.log.Warn().Err(err).Msg("print request failed")
	}
	return name, nil
}

func totalRows(sheets []Sheet) int {
	n := 0
	for _, sheet := range sheets {
		n += len(sheet.Rows)
	}
	return n
}

// Flatten concatenates sheets into one row list for CSV export,
// prefixing every row with a section column.
func Flatten(sheets []Sheet) []Row {
	var out []Row
	for _, sheet := range sheets {
		for _, row := range sheet.Rows {
			flat := make(Row, 0, len(row)+1)
			flat = append(flat, Field{Key: "section", Value: sheet.Name})
			flat = append(flat, row...)
			out = append(out, flat)
		}
	}
	return out
}
