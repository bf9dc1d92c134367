package export

import (
	"errors"
	"strings"
	"testing"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/domain"
)

func TestToCSVRoundTripWithSpecialCharacters(t *testing.T) {
	rows := []Row{
		{
			{Key: "name", Value: `Organic Bananas, 1kg`},
			{Key: "note", Value: "line one\nline two"},
			{Key: "label", Value: `he said "fresh"`},
		},
		{
			{Key: "name", Value: "Milk"},
			{Key: "note", Value: ""},
			{Key: "label", Value: "plain"},
		},
	}

	text, warnings, err := ToCSV(rows)
	if err != nil {
		t.Fatalf("ToCSV failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	back, err := ParseCSV(text)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(back) != len(rows) {
		t.Fatalf("round trip lost rows: got %d, want %d", len(back), len(rows))
	}
	for i, row := range rows {
		for _, f := range row {
			got, ok := back[i].Get(f.Key)
			if !ok || got != f.Value {
				t.Errorf("row %d field %q = %q, want %q", i, f.Key, got, f.Value)
			}
		}
	}
}

func TestToCSVQuoting(t *testing.T) {
	rows := []Row{{
		{Key: "v", Value: `comma, and "quotes"`},
	}}

	text, _, err := ToCSV(rows)
	if err != nil {
		t.Fatalf("ToCSV failed: %v", err)
	}
	if !strings.Contains(text, `"comma, and ""quotes"""`) {
		t.Errorf("value not quoted per RFC 4180:\n%s", text)
	}
}

func TestToCSVEmptyInput(t *testing.T) {
	_, _, err := ToCSV(nil)
	if !errors.Is(err, domain.ErrEmptyData) {
		t.Fatalf("expected ErrEmptyData, got %v", err)
	}
}

func TestToCSVMissingFieldsBecomeEmpty(t *testing.T) {
	rows := []Row{
		{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}},
		{{Key: "a", Value: "3"}},
	}

	text, warnings, err := ToCSV(rows)
	if err != nil {
		t.Fatalf("ToCSV failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("missing fields must not warn, got %v", warnings)
	}

	lines := strings.Split(strings.TrimSpace(text), "\n")
	if lines[2] != "3," {
		t.Errorf("second row = %q, want %q", lines[2], "3,")
	}
}

func TestToCSVExtraFieldsWarn(t *testing.T) {
	rows := []Row{
		{{Key: "a", Value: "1"}},
		{{Key: "a", Value: "2"}, {Key: "rogue", Value: "x"}},
	}

	text, warnings, err := ToCSV(rows)
	if err != nil {
		t.Fatalf("ToCSV failed: %v", err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], `"rogue"`) {
		t.Fatalf("expected one warning naming the dropped field, got %v", warnings)
	}
	if strings.Contains(text, "x") {
		t.Error("dropped field value leaked into the output")
	}
}

func TestToCSVHeaderFromFirstRow(t *testing.T) {
	rows := []Row{
		{{Key: "z", Value: "1"}, {Key: "a", Value: "2"}},
	}

	text, _, err := ToCSV(rows)
	if err != nil {
		t.Fatalf("ToCSV failed: %v", err)
	}
	if !strings.HasPrefix(text, "z,a\n") {
		t.Errorf("header must preserve first-row key order, got %q", strings.SplitN(text, "\n", 2)[0])
	}
}
