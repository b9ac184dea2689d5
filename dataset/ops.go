package dataset

import (
    "sort"

    "github.com/tawesoft/nxdata/dim"
    "github.com/tawesoft/nxdata/dtype"
    "github.com/tawesoft/nxdata/errs"
    "github.com/tawesoft/nxdata/tag"
    "github.com/tawesoft/nxdata/variable"
)

// Slice returns a Dataset restricted to [begin, end) along label - a "range
// slice" that keeps label as a dataset dimension, with extent end-begin.
// Entries not depending on label pass through unchanged. If label is an
// edge coordinate (extent = dataset extent + 1), the slice of the edge
// coord entry itself is widened by one so the result's edge property is
// preserved.
func (d *Dataset) Slice(label dim.Label, begin, end int) (*Dataset, error) {
    extent, err := d.dims.ExtentAt(label)
    if err != nil {
        return nil, err
    }
    if begin < 0 || end < begin || end > extent {
        return nil, errs.NewSliceOutOfRange(string(label), begin, end, extent)
    }

    out := New()
    for _, e := range d.entries {
        v := e.v
        if v.Dims().Contains(label) {
            b, en := begin, end
            if vExtent, _ := v.Dims().ExtentAt(label); vExtent == extent+1 {
                en = end + 1
            }
            sliced, err := v.SliceRange(label, b, en)
            if err != nil {
                return nil, err
            }
            v = sliced
        }
        if err := out.Insert(v); err != nil {
            return nil, err
        }
    }
    return out, nil
}

// SliceAt returns a Dataset fixed at index along label - a "non-range
// slice" that drops label as a dataset dimension from every entry that does
// not represent an edge coordinate on it. An edge-coord entry on label is
// instead narrowed to the single edge at index, since dropping it entirely
// would destroy the bin-boundary information a sibling data entry may still
// need; this leaves it an "unaligned" coordinate of length one, no longer a
// shared dataset dimension (see Open Questions in DESIGN.md).
func (d *Dataset) SliceAt(label dim.Label, index int) (*Dataset, error) {
    extent, err := d.dims.ExtentAt(label)
    if err != nil {
        return nil, err
    }
    if index < 0 || index >= extent {
        return nil, errs.NewSliceOutOfRange(string(label), index, index+1, extent)
    }

    out := New()
    for _, e := range d.entries {
        v := e.v
        if v.Dims().Contains(label) {
            vExtent, _ := v.Dims().ExtentAt(label)
            if vExtent == extent+1 {
                sliced, err := v.SliceRange(label, index, index+1)
                if err != nil {
                    return nil, err
                }
                v = sliced
            } else {
                sliced, err := v.SliceAt(label, index)
                if err != nil {
                    return nil, err
                }
                v = sliced
            }
        }
        if err := out.Insert(v); err != nil {
            return nil, err
        }
    }
    return out, nil
}

// Concatenate returns a new Dataset joining a and b along label,
// entry-by-entry: entries depending on label are concatenated
// ([variable.Concat]); entries that do not must compare equal between a and
// b, or [errs.DatasetError] (CoordMismatch) is returned.
func Concatenate(a, b *Dataset, label dim.Label) (*Dataset, error) {
    out := New()
    for _, ea := range a.entries {
        eb, ok := b.Find(ea.tg, ea.name)
        if !ok {
            return nil, errs.NewDatasetNotFound(ea.tg.String(), ea.name)
        }
        var result variable.Variable
        if ea.v.Dims().Contains(label) {
            r, err := variable.Concat(ea.v, eb, label)
            if err != nil {
                return nil, err
            }
            result = r
        } else {
            if !ea.v.Equal(eb) {
                return nil, errs.NewDatasetCoordMismatch(ea.name)
            }
            result = ea.v
        }
        if err := out.Insert(result); err != nil {
            return nil, err
        }
    }
    return out, nil
}

// Rebin returns a Dataset with every entry depending on label redistributed
// from the dataset's current edge coordinate on label onto newCoord, via
// [variable.Rebin]. label's dimension coordinate entry is replaced by
// newCoord; entries not depending on label pass through unchanged.
func (d *Dataset) Rebin(label dim.Label, newCoord variable.Variable) (*Dataset, error) {
    oldCoordTag, ok := tag.DimensionCoord(label)
    if !ok {
        return nil, errs.NewRebinMissingCoord(string(label))
    }
    oldCoord, ok := d.Find(oldCoordTag, "")
    if !ok {
        return nil, errs.NewRebinMissingCoord(string(label))
    }
    if !d.IsEdge(label) {
        return nil, errs.NewRebinNotEdge(string(label))
    }

    out := New()
    for _, e := range d.entries {
        if e.tg.Equal(oldCoordTag) {
            if err := out.Insert(newCoord); err != nil {
                return nil, err
            }
            continue
        }
        v := e.v
        if v.Dims().Contains(label) {
            rebinned, err := variable.Rebin(v, label, oldCoord, newCoord)
            if err != nil {
                return nil, err
            }
            v = rebinned
        }
        if err := out.Insert(v); err != nil {
            return nil, err
        }
    }
    return out, nil
}

// Sort returns a Dataset with every entry depending on the 1-D axis
// variable (tg, name) permuted into that axis's ascending order.
func (d *Dataset) Sort(tg tag.Tag, name string) (*Dataset, error) {
    axis, err := d.Get(tg, name)
    if err != nil {
        return nil, err
    }
    if axis.Dims().NDim() != 1 {
        return nil, errs.NewDimensionMismatch(axis.Dims().String(), "{1-D}")
    }
    label := axis.Dims().Labels()[0]

    n := axis.Size()
    perm := make([]int, n)
    for i := range perm {
        perm[i] = i
    }
    sort.SliceStable(perm, func(i, j int) bool {
        return variable.Compare(axis, perm[i], perm[j]) < 0
    })

    return d.gatherAll(label, perm)
}

// Filter returns a Dataset keeping only the positions along mask's single
// dimension where mask is true. mask must be a 1-D Bool Variable.
func (d *Dataset) Filter(mask variable.Variable) (*Dataset, error) {
    if mask.DType() != dtype.Bool {
        return nil, errs.NewTypeDTypeMismatch(mask.DType().String(), dtype.Bool.String())
    }
    if mask.Dims().NDim() != 1 {
        return nil, errs.NewDimensionMismatch(mask.Dims().String(), "{1-D}")
    }
    label := mask.Dims().Labels()[0]

    n := mask.Size()
    keep := make([]int, 0, n)
    for i := 0; i < n; i++ {
        if mask.At(i).(bool) {
            keep = append(keep, i)
        }
    }

    return d.gatherAll(label, keep)
}

// gatherAll applies [variable.Gather] with indices along label to every
// entry that depends on it, passing the rest through unchanged.
func (d *Dataset) gatherAll(label dim.Label, indices []int) (*Dataset, error) {
    out := New()
    for _, e := range d.entries {
        v := e.v
        if v.Dims().Contains(label) {
            g, err := variable.Gather(v, label, indices)
            if err != nil {
                return nil, err
            }
            v = g
        }
        if err := out.Insert(v); err != nil {
            return nil, err
        }
    }
    return out, nil
}

// Op identifies one of the four binary arithmetic operators a Dataset
// op-assign combines entries with.
type Op int

const (
    OpAdd Op = iota
    OpSub
    OpMul
    OpDiv
)

func applyOp(op Op, a, b variable.Variable) (variable.Variable, error) {
    switch op {
    case OpAdd:
        return variable.Add(a, b)
    case OpSub:
        return variable.Sub(a, b)
    case OpMul:
        return variable.Mul(a, b)
    case OpDiv:
        return variable.Div(a, b)
    default:
        return variable.Variable{}, errs.NewTypeNotArithmetic("unknown operator")
    }
}

// AddAssign combines other into d in place: d[name] += other[name] for
// every entry of other.
func (d *Dataset) AddAssign(other *Dataset) error { return d.combine(OpAdd, other) }

// SubAssign combines other into d in place, treating any Data::Variance
// entry as additive (variances add under subtraction).
func (d *Dataset) SubAssign(other *Dataset) error { return d.combine(OpSub, other) }

// MulAssign combines other into d in place, propagating variance for any
// name carrying one on both sides: the product's variance is
// v1*e2^2 + e1^2*v2, with e the values and v the variances.
func (d *Dataset) MulAssign(other *Dataset) error { return d.combine(OpMul, other) }

// DivAssign combines other into d in place.
func (d *Dataset) DivAssign(other *Dataset) error { return d.combine(OpDiv, other) }

// combine implements the a op= b contract: Coord entries must
// compare equal, Attr entries combine with op if present on both sides,
// Data entries combine via the Variable arithmetic contract with the
// Data::Variance special cases.
func (d *Dataset) combine(op Op, other *Dataset) error {
    origA := make(map[string]variable.Variable, len(d.entries))
    for _, e := range d.entries {
        origA[entryKey(e.tg, e.name)] = e.v
    }

    for _, eb := range other.entries {
        key := entryKey(eb.tg, eb.name)
        ai, ok := d.index[key]
        if !ok {
            return errs.NewDatasetNotFound(eb.tg.String(), eb.name)
        }
        switch eb.tg.Class() {
        case tag.Coord:
            if !d.entries[ai].v.Equal(eb.v) {
                return errs.NewDatasetCoordMismatch(eb.name)
            }
        case tag.Attr:
            combined, err := applyOp(op, d.entries[ai].v, eb.v)
            if err != nil {
                return err
            }
            d.entries[ai].v = combined
        case tag.Data:
            if eb.tg.Equal(tag.Variance) && op == OpMul {
                continue // handled by propagateMulVariance below
            }
            effectiveOp := op
            if eb.tg.Equal(tag.Variance) && op == OpSub {
                effectiveOp = OpAdd
            }
            combined, err := applyOp(effectiveOp, d.entries[ai].v, eb.v)
            if err != nil {
                return err
            }
            d.entries[ai].v = combined
        }
    }

    if op == OpMul {
        if err := d.propagateMulVariance(other, origA); err != nil {
            return err
        }
    }
    return nil
}

// propagateMulVariance implements the multiplication-specific variance
// rule: for every name carrying a Data::Variance entry in other, both
// operands must carry both a Value and a Variance entry for that name, and
// the result's variance becomes v1*e2^2 + e1^2*v2.
func (d *Dataset) propagateMulVariance(other *Dataset, origA map[string]variable.Variable) error {
    seen := map[string]bool{}
    for _, eb := range other.entries {
        if !eb.tg.Equal(tag.Variance) || seen[eb.name] {
            continue
        }
        seen[eb.name] = true
        name := eb.name

        v1, aHasVar := origA[entryKey(tag.Variance, name)]
        if !aHasVar {
            return errs.NewVarianceUnmatched(name)
        }
        e1, aHasVal := origA[entryKey(tag.Value, name)]
        e2, bHasVal := other.Find(tag.Value, name)
        if !aHasVal || !bHasVal {
            return errs.NewVarianceValueMissing(name)
        }
        v2 := eb.v

        // new variance = v1 * e2^2 + e1^2 * v2, with e the values and v the
        // variances of the two operands.
        e2sq, err := variable.Mul(e2, e2)
        if err != nil {
            return err
        }
        term1, err := variable.Mul(v1, e2sq)
        if err != nil {
            return err
        }
        e1sq, err := variable.Mul(e1, e1)
        if err != nil {
            return err
        }
        term2, err := variable.Mul(e1sq, v2)
        if err != nil {
            return err
        }
        newVar, err := variable.Add(term1, term2)
        if err != nil {
            return err
        }

        vi, ok := d.index[entryKey(tag.Variance, name)]
        if !ok {
            return errs.NewDatasetNotFound(tag.Variance.String(), name)
        }
        d.entries[vi].v = newVar.WithName(name)
    }
    return nil
}
