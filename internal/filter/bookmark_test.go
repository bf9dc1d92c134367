package filter

import (
	"errors"
	"testing"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/domain"
)

func TestBookmarkIsolation(t *testing.T) {
	store := NewBookmarkStore()
	st := NewOperationsState()
	st.Toggle(DimLocation, "downtown")

	bm, err := store.Save("morning check", st)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if bm.ID == "" {
		t.Fatal("bookmark should get an id")
	}

	// Mutate the live state after saving; the snapshot must not move.
	st.Toggle(DimLocation, "suburb")
	st.Settings.TimeRange = "7d"

	saved, err := store.Load(bm.ID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if saved.Dimensions[DimLocation].Matches("suburb") {
		t.Error("live filter change leaked into the bookmark")
	}
	if !saved.Dimensions[DimLocation].Matches("downtown") {
		t.Error("bookmark lost the saved restriction")
	}
	if saved.Settings.TimeRange != "24h" {
		t.Errorf("bookmark settings changed, got %q", saved.Settings.TimeRange)
	}
}

func TestBookmarkExactRestore(t *testing.T) {
	store := NewBookmarkStore()
	st := NewSupplierState()
	st.Toggle(DimSupplier, "SUP001")
	st.Toggle(DimSupplier, "SUP003")
	st.Settings.DeliveryThreshold = 90

	bm, _ := store.Save("key suppliers", st)

	live := NewSupplierState()
	saved, err := store.Load(bm.ID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	live.Replace(saved)

	ids := live.Dimensions[DimSupplier].IDs()
	if len(ids) != 2 || ids[0] != "SUP001" || ids[1] != "SUP003" {
		t.Errorf("restored ids = %v, want [SUP001 SUP003]", ids)
	}
	if live.Settings.DeliveryThreshold != 90 {
		t.Errorf("restored threshold = %v, want 90", live.Settings.DeliveryThreshold)
	}
}

func TestBookmarkUnknownID(t *testing.T) {
	store := NewBookmarkStore()
	if _, err := store.Load("no-such-id"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBookmarkEmptyLabelRejected(t *testing.T) {
	store := NewBookmarkStore()
	if _, err := store.Save("", NewOperationsState()); !domain.IsValidation(err) {
		t.Errorf("expected a validation error, got %v", err)
	}
	if len(store.List()) != 0 {
		t.Error("rejected save must not append a bookmark")
	}
}
