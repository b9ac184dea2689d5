// Package mdzip implements MDZipView: a zero-copy cursor that walks one or more Variables of a Dataset
// whose dimension labels form arbitrary subsets of an outer iteration
// space, including bin-edge co-iteration and nested sub-views.
//
// Stepping is delegated entirely to [multiindex.MultiIndex]; this package's
// job is resolving handles against a Dataset, computing the shared
// iteration Dimensions, and validating the write/bin/nesting rules around
// it.
package mdzip

import (
    "math"
    "strconv"

    "github.com/tawesoft/nxdata/dataset"
    "github.com/tawesoft/nxdata/dim"
    "github.com/tawesoft/nxdata/errs"
    "github.com/tawesoft/nxdata/multiindex"
    "github.com/tawesoft/nxdata/tag"
    "github.com/tawesoft/nxdata/variable"
)

// Mode says whether a Handle is read or written through a View.
type Mode int

const (
    Read Mode = iota
    Write
)

// Handle names one (Tag, name) entry a View co-iterates, its access mode,
// and whether it is wrapped as a bin-edge coordinate or a derived,
// read-only computation over that entry.
type Handle struct {
    Tag     tag.Tag
    Name    string
    Mode    Mode
    Bin     bool
    Derived DeriveKind
}

// ReadHandle is a handle a View only reads through.
func ReadHandle(tg tag.Tag, name string) Handle { return Handle{Tag: tg, Name: name, Mode: Read} }

// WriteHandle is a handle a View writes through; its Variable's dimensions
// must equal the View's iteration Dimensions exactly.
func WriteHandle(tg tag.Tag, name string) Handle { return Handle{Tag: tg, Name: name, Mode: Write} }

// BinHandle wraps a dimension-coordinate handle in `Bin<Coord>`: the
// variable may be one element longer than the iteration space along its
// own dimension, and [View.Bin] yields a {left, right} edge pair for it
// rather than a single value.
func BinHandle(tg tag.Tag, name string) Handle {
    return Handle{Tag: tg, Name: name, Mode: Read, Bin: true}
}

// DeriveKind identifies a read-only computation layered over a handle's
// underlying entry, rather than a direct read of it.
type DeriveKind int

const (
    DeriveNone DeriveKind = iota
    // DeriveStdDev exposes sqrt(variance) of a Data::Variance entry.
    DeriveStdDev
)

// StdDevHandle reads name's Data::Variance entry as a standard deviation
// (its square root) rather than as a raw variance.
func StdDevHandle(name string) Handle {
    return Handle{Tag: tag.Variance, Name: name, Mode: Read, Derived: DeriveStdDev}
}

func key(tg tag.Tag, name string, derived DeriveKind) string {
    return tg.String() + "\x00" + name + "\x00" + strconv.Itoa(int(derived))
}

type resolvedHandle struct {
    handle   Handle
    v        variable.Variable
    binLabel dim.Label
}

// View is a cursor over a fixed set of handles resolved against one
// Dataset, co-iterating their shared (non-fixed) dimensions in row-major
// order (inner axis fastest).
type View struct {
    ds      *dataset.Dataset
    dims    dim.Dimensions
    handles []resolvedHandle
    byKey   map[string]int
    mi      *multiindex.MultiIndex
}

// stripFixed returns d with every label in fixed removed.
func stripFixed(d dim.Dimensions, fixed map[dim.Label]bool) dim.Dimensions {
    out := d
    for _, l := range d.Labels() {
        if fixed[l] {
            out, _ = out.Erase(l)
        }
    }
    return out
}

// comparableDims returns the dimension set of rh.v used to validate joint
// iteration against the rest of the handles: fixed labels removed, and -
// for a Bin handle - its own bin label narrowed by one, since a Bin handle
// is allowed to be longer by one there.
func comparableDims(rh resolvedHandle, fixed map[dim.Label]bool) dim.Dimensions {
    d := stripFixed(rh.v.Dims(), fixed)
    if rh.handle.Bin {
        if ext, err := d.ExtentAt(rh.binLabel); err == nil {
            d, _ = d.Resize(rh.binLabel, ext-1)
        }
    }
    return d
}

// Build resolves handles against ds and computes their shared iteration
// space, excluding every label in fixed. Fixed dims are used when embedding
// a View as a nested handle of an outer one: the outer
// iterates them, so the inner view must not.
func Build(ds *dataset.Dataset, fixed []dim.Label, handles ...Handle) (*View, error) {
    fixedSet := make(map[dim.Label]bool, len(fixed))
    for _, f := range fixed {
        fixedSet[f] = true
    }

    resolved := make([]resolvedHandle, len(handles))
    byKey := make(map[string]int, len(handles))
    var best dim.Dimensions
    haveBest := false

    for i, h := range handles {
        v, ok := ds.Find(h.Tag, h.Name)
        if !ok {
            return nil, errs.NewDatasetNotFound(h.Tag.String(), h.Name)
        }
        rh := resolvedHandle{handle: h, v: v}
        if h.Bin {
            label, isDim := h.Tag.DimensionLabel()
            if !isDim {
                return nil, errs.NewRebinNotDimensionCoord(h.Name)
            }
            rh.binLabel = label
        }
        resolved[i] = rh
        byKey[key(h.Tag, h.Name, h.Derived)] = i

        cmp := comparableDims(rh, fixedSet)
        if !haveBest || cmp.NDim() > best.NDim() {
            best = cmp
            haveBest = true
        }
    }

    for _, rh := range resolved {
        cmp := comparableDims(rh, fixedSet)
        if !best.ContainsAll(cmp) {
            return nil, errs.NewDimensionNotJoint(cmp.String(), best.String())
        }
        if rh.handle.Mode == Write {
            full := stripFixed(rh.v.Dims(), fixedSet)
            if !full.Equal(best) {
                return nil, errs.NewDimensionMismatch(full.String(), best.String())
            }
        }
    }

    mi, err := buildMultiIndex(best, resolved)
    if err != nil {
        return nil, err
    }

    return &View{ds: ds, dims: best, handles: resolved, byKey: byKey, mi: mi}, nil
}

// buildMultiIndex translates iter's outer-first label order, and every
// handle's per-label stride, into the axis-0-fastest convention
// [multiindex.MultiIndex] expects.
func buildMultiIndex(iter dim.Dimensions, handles []resolvedHandle) (*multiindex.MultiIndex, error) {
    labels := iter.Labels()
    n := len(labels)
    extents := make([]int, n)
    for i, l := range labels {
        e, _ := iter.ExtentAt(l)
        extents[n-1-i] = e
    }

    strides := make([][]int, len(handles))
    for j, rh := range handles {
        row := make([]int, n)
        for i, l := range labels {
            if s, ok := rh.v.StrideOf(l); ok {
                row[n-1-i] = s
            }
        }
        strides[j] = row
    }

    return multiindex.New(extents, strides)
}

// Len returns the total number of items this View iterates.
func (v *View) Len() int { return v.mi.Volume() }

// Dims returns the View's iteration dimensions.
func (v *View) Dims() dim.Dimensions { return v.dims }

// Reset repositions the cursor at item 0.
func (v *View) Reset() { v.mi.SetIndex(0) }

// Seek repositions the cursor at the i-th item in row-major order.
func (v *View) Seek(i int) { v.mi.SetIndex(i) }

// Next advances the cursor by one item.
func (v *View) Next() { v.mi.Increment() }

// Index returns the cursor's current flat position.
func (v *View) Index() int { return v.mi.Index() }

func (v *View) find(tg tag.Tag, name string) (int, error) {
    return v.findDerived(tg, name, DeriveNone)
}

func (v *View) findDerived(tg tag.Tag, name string, derived DeriveKind) (int, error) {
    i, ok := v.byKey[key(tg, name, derived)]
    if !ok {
        return 0, errs.NewDatasetNotFound(tg.String(), name)
    }
    return i, nil
}

// StdDev returns sqrt of the current value of name's Data::Variance entry,
// resolved through a [StdDevHandle].
func (v *View) StdDev(name string) (float64, error) {
    i, err := v.findDerived(tag.Variance, name, DeriveStdDev)
    if err != nil {
        return 0, err
    }
    rh := v.handles[i]
    raw := rh.v.AtOffset(rh.v.BaseOffset() + v.mi.Offset(i))
    f, ok := raw.(float64)
    if !ok {
        return 0, errs.NewTypeNotArithmetic(rh.v.DType().String())
    }
    return math.Sqrt(f), nil
}

// At returns the current value of the (tg, name) handle.
func (v *View) At(tg tag.Tag, name string) (any, error) {
    i, err := v.find(tg, name)
    if err != nil {
        return nil, err
    }
    rh := v.handles[i]
    return rh.v.AtOffset(rh.v.BaseOffset() + v.mi.Offset(i)), nil
}

// Bin returns the current {left, right} pair of a Bin handle.
func (v *View) Bin(tg tag.Tag, name string) (left, right any, err error) {
    i, ferr := v.find(tg, name)
    if ferr != nil {
        return nil, nil, ferr
    }
    rh := v.handles[i]
    if !rh.handle.Bin {
        return nil, nil, errs.NewRebinNotDimensionCoord(name)
    }
    base := rh.v.BaseOffset() + v.mi.Offset(i)
    stride, _ := rh.v.StrideOf(rh.binLabel)
    return rh.v.AtOffset(base), rh.v.AtOffset(base + stride), nil
}

// Set writes value through a Write handle.
func (v *View) Set(tg tag.Tag, name string, value any) error {
    i, err := v.find(tg, name)
    if err != nil {
        return err
    }
    rh := &v.handles[i]
    if rh.handle.Mode != Write {
        return errs.NewDatasetNotWritable(tg.String(), name)
    }
    rh.v.SetAtOffset(rh.v.BaseOffset()+v.mi.Offset(i), value)
    return nil
}

// Nested builds an inner View over handles, bound to this View's current
// outer coordinate: any inner handle naming the same
// (tag, name) as one of this View's handles has its base offset shifted by
// this View's current offset into that entry, and outerLabels are excluded
// from the inner iteration space so the outer cursor alone drives them.
func (v *View) Nested(outerLabels []dim.Label, handles ...Handle) (*View, error) {
    inner, err := Build(v.ds, outerLabels, handles...)
    if err != nil {
        return nil, err
    }
    for i := range inner.handles {
        h := inner.handles[i].handle
        if outerIdx, ok := v.byKey[key(h.Tag, h.Name, h.Derived)]; ok {
            inner.handles[i].v = inner.handles[i].v.WithOffsetShift(v.mi.Offset(outerIdx))
        }
    }
    mi, err := buildMultiIndex(inner.dims, inner.handles)
    if err != nil {
        return nil, err
    }
    inner.mi = mi
    return inner, nil
}
