package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeEmptyHasNoData(t *testing.T) {
	s := Summarize(nil)
	if s.HasData {
		t.Fatal("summary of nothing must not claim data")
	}
	if s.Count != 0 || s.Sum != 0 || s.Mean != 0 {
		t.Errorf("empty summary should be all zero, got %+v", s)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{2, 4, 6})
	if !s.HasData {
		t.Fatal("expected HasData")
	}
	if s.Count != 3 || s.Sum != 12 || s.Mean != 4 {
		t.Errorf("unexpected summary %+v", s)
	}
}

func TestGapSignConvention(t *testing.T) {
	tests := []struct {
		name       string
		demand     float64
		supply     float64
		wantGap    float64
		wantStatus string
	}{
		{"shortage", 2400, 2200, 200, GapShortage},
		{"surplus", 1800, 1850, -50, GapSurplus},
		{"balanced", 1000, 1000, 0, GapBalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gap, status := Gap(tt.demand, tt.supply)
			assert.Equal(t, tt.wantGap, gap)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestRankByStableOnDuplicateKeys(t *testing.T) {
	type row struct {
		id    string
		score float64
	}
	rows := []row{
		{"c", 90}, {"a", 90}, {"b", 95}, {"d", 90},
	}

	ranked := RankBy(rows,
		func(r row) float64 { return r.score },
		func(r row) string { return r.id },
		true)

	want := []string{"b", "a", "c", "d"}
	for i, r := range ranked {
		if r.id != want[i] {
			t.Fatalf("rank %d = %s, want %s (full order %v)", i, r.id, want[i], ranked)
		}
	}

	// Same input must always produce the same order.
	again := RankBy(rows,
		func(r row) float64 { return r.score },
		func(r row) string { return r.id },
		true)
	assert.Equal(t, ranked, again)
}

func TestRankByDoesNotMutateInput(t *testing.T) {
	type row struct {
		id string
		v  float64
	}
	rows := []row{{"b", 2}, {"a", 1}}
	RankBy(rows, func(r row) float64 { return r.v }, func(r row) string { return r.id }, false)
	if rows[0].id != "b" {
		t.Error("RankBy reordered its input slice")
	}
}

func TestPercentOfTotal(t *testing.T) {
	if got := PercentOfTotal(25, 100); got != 25 {
		t.Errorf("PercentOfTotal(25, 100) = %v", got)
	}
	if got := PercentOfTotal(10, 0); got != 0 {
		t.Errorf("zero total should yield 0, got %v", got)
	}
}
