// Package dataset implements Dataset, an ordered collection of Variables
// sharing a global dimension map, with insertion-time edge-coordinate
// detection, erase/extract/merge, slicing, concatenation, rebin, sort, and
// filter.
package dataset

import (
    "fmt"
    "strings"

    "github.com/tawesoft/nxdata/dim"
    "github.com/tawesoft/nxdata/errs"
    "github.com/tawesoft/nxdata/must"
    "github.com/tawesoft/nxdata/tag"
    "github.com/tawesoft/nxdata/variable"
)

// entry is one (tag, name) -> Variable binding.
type entry struct {
    tg   tag.Tag
    name string
    v    variable.Variable
}

func entryKey(tg tag.Tag, name string) string {
    return tg.String() + "\x00" + name
}

// labelState is the bookkeeping a Dataset keeps per dimension label to
// detect edge coordinates: the canonical (non-edge) extent, and - if one
// dimension-coord entry currently stands as this label's edge coordinate -
// which tag that is.
type labelState struct {
    extent int
    known  bool
    // pending is set when the only entry seen so far for this label is a
    // dimension-coord candidate: its extent was taken as canonical
    // provisionally, but a later, shorter non-candidate entry may still
    // retroactively recognise it as an edge coord.
    pending    bool
    pendingTag tag.Tag
    edgeTag    tag.Tag
    hasEdge    bool
}

// Dataset is an ordered, value-semantics collection of Variables, keyed by
// (Tag, name), sharing one global [dim.Dimensions].
type Dataset struct {
    entries []entry
    index   map[string]int
    labels  map[dim.Label]labelState
    order   []dim.Label
    dims    dim.Dimensions
}

// New returns an empty Dataset.
func New() *Dataset {
    return &Dataset{index: map[string]int{}, labels: map[dim.Label]labelState{}}
}

// Dimensions returns the dataset's current global dimension map.
func (d *Dataset) Dimensions() dim.Dimensions { return d.dims }

// Count returns the number of entries.
func (d *Dataset) Count() int { return len(d.entries) }

// Contains reports whether (tg, name) is present.
func (d *Dataset) Contains(tg tag.Tag, name string) bool {
    _, ok := d.index[entryKey(tg, name)]
    return ok
}

// Find returns the Variable stored under (tg, name).
func (d *Dataset) Find(tg tag.Tag, name string) (variable.Variable, bool) {
    i, ok := d.index[entryKey(tg, name)]
    if !ok {
        return variable.Variable{}, false
    }
    return d.entries[i].v, true
}

// Get returns the Variable stored under (tg, name), panicking-free: it
// reports an error rather than a zero value on miss.
func (d *Dataset) Get(tg tag.Tag, name string) (variable.Variable, error) {
    v, ok := d.Find(tg, name)
    if !ok {
        return variable.Variable{}, errs.NewDatasetNotFound(tg.String(), name)
    }
    return v, nil
}

// Entries returns every (tag, name) pair currently stored, in insertion
// order.
func (d *Dataset) Entries() []struct {
    Tag  tag.Tag
    Name string
} {
    out := make([]struct {
        Tag  tag.Tag
        Name string
    }, len(d.entries))
    for i, e := range d.entries {
        out[i].Tag = e.tg
        out[i].Name = e.name
    }
    return out
}

func dimCandidate(tg tag.Tag, label dim.Label) bool {
    bound, ok := tg.DimensionLabel()
    return ok && bound == label
}

// mergeLabel folds one (label, extent) pair contributed by a variable with
// tag tg into the dataset's per-label bookkeeping, applying the
// edge-coordinate rule. It mutates labels/order only on success.
func mergeLabel(labels map[dim.Label]labelState, order []dim.Label, tg tag.Tag, label dim.Label, extent int) ([]dim.Label, error) {
    st, seen := labels[label]
    candidate := dimCandidate(tg, label)

    switch {
    case !seen:
        if candidate {
            labels[label] = labelState{extent: extent, known: true, pending: true, pendingTag: tg}
        } else {
            labels[label] = labelState{extent: extent, known: true}
        }
        order = append(order, label)

    case extent == st.extent:
        // Agrees with the canonical extent. A non-candidate entry of that
        // extent fixes it for good: the candidate can no longer turn out to
        // be an edge coordinate.
        if !candidate && st.pending {
            st.pending = false
            labels[label] = st
        }

    case candidate && extent == st.extent+1:
        if st.hasEdge {
            return nil, errs.NewDatasetEdgeConflict(string(label))
        }
        st.hasEdge = true
        st.edgeTag = tg
        st.pending = false
        labels[label] = st

    case !candidate && st.pending && extent == st.extent-1:
        st.extent = extent
        st.hasEdge = true
        st.edgeTag = st.pendingTag
        st.pending = false
        labels[label] = st

    default:
        return nil, errs.NewDimensionMismatch(fmt.Sprintf("%s:%d", label, st.extent), fmt.Sprintf("%s:%d", label, extent))
    }
    return order, nil
}

// rebuildDims recomputes the global dimension map from d.labels/d.order. A
// dim.New error here would mean d.labels/d.order had already drifted out of
// the invariants mergeLabel maintains - a programmer error, not a runtime
// condition, so it is asserted with must rather than threaded as a return.
func (d *Dataset) rebuildDims() dim.Dimensions {
    extents := make([]int, len(d.order))
    for i, l := range d.order {
        extents[i] = d.labels[l].extent
    }
    return must.Result(dim.New(append([]dim.Label{}, d.order...), extents))
}

// Insert adds v under (v.Tag(), v.Name()), folding its dimensions into the
// global map. Fails with DatasetDuplicate on a colliding key, or
// DimensionMismatch/DatasetEdgeConflict if its dimensions cannot be
// reconciled with the existing global map.
func (d *Dataset) Insert(v variable.Variable) error {
    tg, name := v.Tag(), v.Name()
    k := entryKey(tg, name)
    if _, exists := d.index[k]; exists {
        return errs.NewDatasetDuplicate(tg.String(), name)
    }

    labelsCopy := make(map[dim.Label]labelState, len(d.labels))
    for l, st := range d.labels {
        labelsCopy[l] = st
    }
    order := append([]dim.Label{}, d.order...)

    vd := v.Dims()
    for _, l := range vd.Labels() {
        extent, _ := vd.ExtentAt(l)
        var err error
        order, err = mergeLabel(labelsCopy, order, tg, l, extent)
        if err != nil {
            return err
        }
    }

    d.labels = labelsCopy
    d.order = order
    d.dims = d.rebuildDims()
    d.index[k] = len(d.entries)
    d.entries = append(d.entries, entry{tg: tg, name: name, v: v})
    return nil
}

// Erase removes (tg, name) and rebuilds the global dimension map by
// rescanning the remaining entries in their original order.
func (d *Dataset) Erase(tg tag.Tag, name string) error {
    k := entryKey(tg, name)
    i, ok := d.index[k]
    if !ok {
        return errs.NewDatasetNotFound(tg.String(), name)
    }
    remaining := append(append([]entry{}, d.entries[:i]...), d.entries[i+1:]...)
    return d.reset(remaining)
}

// reset replaces the dataset's contents with entries, recomputing the
// index and global dimension map from scratch, in entries' order.
func (d *Dataset) reset(entries []entry) error {
    nd := New()
    for _, e := range entries {
        if err := nd.Insert(e.v); err != nil {
            return err
        }
    }
    *d = *nd
    return nil
}

// Extract moves every entry named name into a new Dataset, removing them
// from d.
func (d *Dataset) Extract(name string) (*Dataset, error) {
    out := New()
    var remaining []entry
    for _, e := range d.entries {
        if e.name == name {
            if err := out.Insert(e.v); err != nil {
                return nil, err
            }
        } else {
            remaining = append(remaining, e)
        }
    }
    if out.Count() == 0 {
        return nil, errs.NewDatasetNotFound("*", name)
    }
    if err := d.reset(remaining); err != nil {
        return nil, err
    }
    return out, nil
}

// Subset returns a new Dataset holding every entry named name, plus every
// Coord entry, without removing anything from d. The returned entries
// borrow d's storage. Unlike [Dataset.Extract], d is left unchanged.
func (d *Dataset) Subset(name string) (*Dataset, error) {
    out := New()
    found := false
    for _, e := range d.entries {
        if e.name != name && e.tg.Class() != tag.Coord {
            continue
        }
        if e.name == name {
            found = true
        }
        if err := out.Insert(e.v); err != nil {
            return nil, err
        }
    }
    if !found {
        return nil, errs.NewDatasetNotFound("*", name)
    }
    return out, nil
}

// Merge inserts every entry of other into d, failing on the first
// duplicate (tag, name).
func (d *Dataset) Merge(other *Dataset) error {
    for _, e := range other.entries {
        if err := d.Insert(e.v); err != nil {
            return err
        }
    }
    return nil
}

// IsEdge reports whether the dimension coord currently bound to label is
// recognised as an edge coordinate (extent = dataset extent + 1).
func (d *Dataset) IsEdge(label dim.Label) bool {
    st, ok := d.labels[label]
    return ok && st.hasEdge
}

// String renders the dataset's global dimensions and entry list for
// diagnostics.
func (d *Dataset) String() string {
    var b strings.Builder
    fmt.Fprintf(&b, "Dataset(dims=%s, entries=[", d.dims)
    for i, e := range d.entries {
        if i > 0 {
            b.WriteString(", ")
        }
        fmt.Fprintf(&b, "%s[%q]", e.tg, e.name)
    }
    b.WriteString("])")
    return b.String()
}
