package filter

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/domain"
)

// Bookmark is a named snapshot of a dashboard's filter configuration.
type Bookmark struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
	Snapshot  *State    `json:"snapshot"`
}

// BookmarkStore is an append-only in-memory list of saved filter
// snapshots. Snapshots are stored and returned by value (deep copies),
// so later changes to the live state never leak into a bookmark.
type BookmarkStore struct {
	mu        sync.Mutex
	bookmarks []Bookmark
}

func NewBookmarkStore() *BookmarkStore {
	return &BookmarkStore{}
}

// Save appends a snapshot of state under the given label.
func (b *BookmarkStore) Save(label string, state *State) (Bookmark, error) {
	if label == "" {
		return Bookmark{}, domain.NewValidationError("label", "label is required")
	}

	bm := Bookmark{
		ID:        uuid.NewString(),
		Label:     label,
		CreatedAt: time.Now().UTC(),
		Snapshot:  state.Clone(),
	}

	b.mu.Lock()
	b.bookmarks = append(b.bookmarks, bm)
	b.mu.Unlock()
	return bm, nil
}

// Load returns a deep copy of the snapshot with the given id, or
// domain.ErrNotFound when no such bookmark exists.
func (b *BookmarkStore) Load(id string) (*State, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, bm := range b.bookmarks {
		if bm.ID == id {
			return bm.Snapshot.Clone(), nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns the saved bookmarks in creation order. Snapshots are
// cloned so callers cannot mutate the stored copies.
func (b *BookmarkStore) List() []Bookmark {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Bookmark, len(b.bookmarks))
	for i, bm := range b.bookmarks {
		out[i] = bm
		out[i].Snapshot = bm.Snapshot.Clone()
	}
	return out
}
