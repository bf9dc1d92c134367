package export

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/domain"
)

func testService(sink Sink) *Service {
	s := NewService(sink, zerolog.Nop())
	s.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)
	}
	return s
}

func testRows() []Row {
	return []Row{
		{{Key: "id", Value: "A1"}, {Key: "stock", Value: "20"}},
		{{Key: "id", Value: "A2"}, {Key: "stock", Value: "80"}},
	}
}

func TestFilenamePattern(t *testing.T) {
	s := testService(NewMemorySink())
	got := s.Filename("operations", "30d", "csv")
	if got != "operations_30d_2025-06-01T12-30-45.csv" {
		t.Errorf("filename = %q", got)
	}

	pattern := regexp.MustCompile(`^[a-z]+_[a-z0-9]*_\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2}\.[a-z]+$`)
	if !pattern.MatchString(got) {
		t.Errorf("filename %q does not match the report_period_timestamp pattern", got)
	}
}

func TestExportCSVWritesToSink(t *testing.T) {
	sink := NewMemorySink()
	s := testService(sink)

	name, warnings, err := s.ExportCSV("operations", "30d", testRows())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	data, ok := sink.Files[name]
	if !ok {
		t.Fatalf("sink has no file %q", name)
	}
	if string(data[:9]) != "id,stock\n" {
		t.Errorf("unexpected file head: %q", data[:9])
	}
}

func TestExportCSVEmpty(t *testing.T) {
	s := testService(NewMemorySink())
	_, _, err := s.ExportCSV("operations", "30d", nil)
	if !errors.Is(err, domain.ErrEmptyData) {
		t.Fatalf("expected ErrEmptyData, got %v", err)
	}
}

func TestExportCSVSinkFailure(t *testing.T) {
	s := testService(failingSink{})
	_, _, err := s.ExportCSV("operations", "30d", testRows())
	if !errors.Is(err, domain.ErrExportFailure) {
		t.Fatalf("expected ErrExportFailure, got %v", err)
	}
}

func TestExportWorkbook(t *testing.T) {
	sink := NewMemorySink()
	s := testService(sink)

	sheets := []Sheet{
		{Name: "Products", Rows: testRows()},
		{Name: "Alerts", Rows: testRows()},
	}
	name, err := s.ExportWorkbook("operations", "30d", sheets)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if len(sink.Files[name]) == 0 {
		t.Fatal("workbook file is empty")
	}
}

func TestExportWorkbookEmpty(t *testing.T) {
	s := testService(NewMemorySink())
	_, err := s.ExportWorkbook("operations", "30d", []Sheet{{Name: "Products"}})
	if !errors.Is(err, domain.ErrEmptyData) {
		t.Fatalf("expected ErrEmptyData, got %v", err)
	}
}

func TestExportPDFRequestsPrintOnce(t *testing.T) {
	sink := NewMemorySink()
	s := testService(sink)

	sheets := []Sheet{{Name: "Products", Rows: testRows()}}
	name, err := s.ExportPDF("Inventory Operations Report", "operations", "30d", sheets)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if len(sink.Files[name]) == 0 {
		t.Fatal("pdf file is empty")
	}
	if sink.Prints != 1 {
		t.Errorf("print requested %d times, want exactly 1", sink.Prints)
	}

	// The sheets handed in must come back untouched.
	if len(sheets[0].Rows) != 2 || sheets[0].Rows[0][0].Value != "A1" {
		t.Error("export mutated its input rows")
	}
}

func TestFlattenPrefixesSection(t *testing.T) {
	sheets := []Sheet{
		{Name: "Products", Rows: []Row{{{Key: "id", Value: "A1"}}}},
		{Name: "Alerts", Rows: []Row{{{Key: "id", Value: "al1"}}}},
	}

	flat := Flatten(sheets)
	if len(flat) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(flat))
	}
	if sec, _ := flat[0].Get("section"); sec != "Products" {
		t.Errorf("first row section = %q", sec)
	}
	if sec, _ := flat[1].Get("section"); sec != "Alerts" {
		t.Errorf("second row section = %q", sec)
	}
}

type failingSink struct{}

func (failingSink) WriteFile(string, []byte) error { return errors.New("disk full") }
func (failingSink) RequestPrint() error            { return nil }
