package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/http"
	handler "github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/http/handlers"
)

func saveBookmark(t *testing.T, r http.Handler, dashboard, label string) handler.BookmarkResponse {
	t.Helper()
	w := doPost(r, "/dashboards/"+dashboard+"/bookmarks", handler.BookmarkRequest{Label: label})
	if w.Code != http.StatusCreated {
		t.Fatalf("save bookmark failed: %d: %s", w.Code, w.Body.String())
	}
	var resp handler.BookmarkResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding bookmark: %v", err)
	}
	return resp
}

func TestBookmarkSaveAndApplyRestoresState(t *testing.T) {
	t.Cleanup(resetSessions)
	r := api.NewRouter()

	toggleFilter(r, "operations", "location", "downtown")
	bm := saveBookmark(t, r, "operations", "downtown only")

	// Drift the live state away from the snapshot.
	toggleFilter(r, "operations", "location", "all")
	toggleFilter(r, "operations", "severity", "critical")

	w := doPost(r, "/dashboards/operations/bookmarks/"+bm.ID+"/apply", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("apply failed: %d: %s", w.Code, w.Body.String())
	}

	st := decodeState(t, json.NewDecoder(w.Body))
	loc := st.Dimensions["location"]
	if loc.Unrestricted() || !loc.Matches("downtown") || loc.Matches("airport") {
		t.Error("apply did not restore the bookmarked location restriction")
	}
	if !st.Dimensions["severity"].Unrestricted() {
		t.Error("apply did not clear the drifted severity restriction")
	}
}

func TestBookmarkIsABoundSnapshot(t *testing.T) {
	t.Cleanup(resetSessions)
	r := api.NewRouter()

	bm := saveBookmark(t, r, "supplier", "everything")

	// Restrict after saving; the bookmark must still hold the
	// unrestricted state.
	toggleFilter(r, "supplier", "supplier", "SUP001")

	w := doPost(r, "/dashboards/supplier/bookmarks/"+bm.ID+"/apply", nil)
	st := decodeState(t, json.NewDecoder(w.Body))
	if !st.Dimensions["supplier"].Unrestricted() {
		t.Error("later filter changes leaked into the saved bookmark")
	}
}

func TestBookmarkList(t *testing.T) {
	t.Cleanup(resetSessions)
	r := api.NewRouter()

	saveBookmark(t, r, "forecast", "first")
	saveBookmark(t, r, "forecast", "second")

	w := doGet(r, "/dashboards/forecast/bookmarks")
	if w.Code != http.StatusOK {
		t.Fatalf("list failed: %d", w.Code)
	}

	var list []handler.BookmarkResponse
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("error decoding list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 bookmarks, got %d", len(list))
	}
	if list[0].Label != "first" || list[1].Label != "second" {
		t.Error("bookmarks should list in save order")
	}
}

func TestBookmarkApplyUnknownID(t *testing.T) {
	t.Cleanup(resetSessions)
	r := api.NewRouter()

	w := doPost(r, "/dashboards/operations/bookmarks/no-such-id/apply", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestBookmarkEmptyLabel(t *testing.T) {
	t.Cleanup(resetSessions)
	r := api.NewRouter()

	w := doPost(r, "/dashboards/operations/bookmarks", handler.BookmarkRequest{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}
}
