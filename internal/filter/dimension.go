package filter

import (
	"encoding/json"
	"sort"
)

// All is the selection value meaning "no restriction" on a dimension.
const All = "all"

// Dimension is one filterable axis of a dashboard (locations,
// categories, suppliers, ...). It is either unrestricted or restricted
// to a non-empty set of identifiers; an emptied restriction collapses
// back to unrestricted, so the selection set is never empty.
type Dimension struct {
	ids map[string]struct{} // nil or empty = unrestricted
}

// NewDimension returns an unrestricted dimension.
func NewDimension() *Dimension {
	return &Dimension{}
}

// Unrestricted reports whether every identifier passes this dimension.
func (d *Dimension) Unrestricted() bool {
	return len(d.ids) == 0
}

// Toggle flips membership of id. From unrestricted it restricts to
// exactly {id}; removing the last member reverts to unrestricted.
func (d *Dimension) Toggle(id string) {
	if d.ids == nil {
		d.ids = map[string]struct{}{}
	}
	if _, ok := d.ids[id]; ok {
		delete(d.ids, id)
		return
	}
	d.ids[id] = struct{}{}
}

// SelectAll discards any restriction.
func (d *Dimension) SelectAll() {
	d.ids = nil
}

// Matches reports whether id passes the dimension.
func (d *Dimension) Matches(id string) bool {
	if d.Unrestricted() {
		return true
	}
	_, ok := d.ids[id]
	return ok
}

// IDs returns the restricted identifiers in sorted order, or nil when
// unrestricted.
func (d *Dimension) IDs() []string {
	if d.Unrestricted() {
		return nil
	}
	out := make([]string, 0, len(d.ids))
	for id := range d.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy.
func (d *Dimension) Clone() *Dimension {
	c := NewDimension()
	if d.Unrestricted() {
		return c
	}
	c.ids = make(map[string]struct{}, len(d.ids))
	for id := range d.ids {
		c.ids[id] = struct{}{}
	}
	return c
}

// MarshalJSON renders the dimension the way the dashboards expect:
// ["all"] when unrestricted, the sorted id list otherwise.
func (d *Dimension) MarshalJSON() ([]byte, error) {
	if d.Unrestricted() {
		return json.Marshal([]string{All})
	}
	return json.Marshal(d.IDs())
}

// UnmarshalJSON accepts the same representation MarshalJSON emits.
func (d *Dimension) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	d.ids = nil
	for _, id := range ids {
		if id == All {
			d.ids = nil
			return nil
		}
		if d.ids == nil {
			d.ids = map[string]struct{}{}
		}
		d.ids[id] = struct{}{}
	}
	return nil
}
