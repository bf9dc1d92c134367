package filter

import (
	"encoding/json"
	"testing"
)

func TestDimensionToggleTwiceRestoresUnrestricted(t *testing.T) {
	d := NewDimension()
	if !d.Unrestricted() {
		t.Fatal("new dimension should be unrestricted")
	}

	d.Toggle("downtown")
	if d.Unrestricted() {
		t.Fatal("dimension should be restricted after first toggle")
	}
	if !d.Matches("downtown") || d.Matches("suburb") {
		t.Errorf("restricted dimension should match only the toggled id")
	}

	d.Toggle("downtown")
	if !d.Unrestricted() {
		t.Fatal("toggling the same id twice should restore unrestricted")
	}
	if !d.Matches("suburb") {
		t.Error("unrestricted dimension should match everything")
	}
}

func TestDimensionNeverHoldsEmptySet(t *testing.T) {
	d := NewDimension()
	d.Toggle("a")
	d.Toggle("b")
	d.Toggle("a")
	if d.Unrestricted() {
		t.Fatal("removing one of two ids should stay restricted")
	}
	d.Toggle("b")
	// The last id was removed: the dimension must collapse to
	// unrestricted, never to an empty restriction.
	if !d.Unrestricted() {
		t.Fatal("removing the last id should collapse to unrestricted")
	}
}

func TestDimensionSelectAll(t *testing.T) {
	d := NewDimension()
	d.Toggle("a")
	d.Toggle("b")
	d.SelectAll()
	if !d.Unrestricted() {
		t.Fatal("SelectAll should clear every restriction")
	}
}

func TestDimensionIDsSorted(t *testing.T) {
	d := NewDimension()
	d.Toggle("c")
	d.Toggle("a")
	d.Toggle("b")

	ids := d.IDs()
	if len(ids) != 3 || ids[0] != "a" || ids[1] != "b" || ids[2] != "c" {
		t.Errorf("expected sorted ids [a b c], got %v", ids)
	}
}

func TestDimensionJSONRoundTrip(t *testing.T) {
	d := NewDimension()
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `["all"]` {
		t.Errorf(`unrestricted dimension should marshal as ["all"], got %s`, data)
	}

	d.Toggle("a")
	data, _ = json.Marshal(d)

	var back Dimension
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back.Unrestricted() || !back.Matches("a") || back.Matches("b") {
		t.Error("round-tripped dimension lost its restriction")
	}
}

func TestDimensionCloneIsIndependent(t *testing.T) {
	d := NewDimension()
	d.Toggle("a")

	clone := d.Clone()
	clone.Toggle("b")

	if d.Matches("b") {
		t.Error("mutating the clone leaked into the original")
	}
}
