// Package dim implements labelled, ordered dimension lists shared by
// [variable.Variable] and [dataset.Dataset].
//
// A Dimensions value is a small, fixed-capacity ordered map from a [Label]
// to an extent. Index arithmetic is delegated to
// [github.com/tawesoft/nxdata/ds/matrix/dimensions], with the label order
// reversed before it reaches that package: this library lists the outermost
// (slowest-varying) label first, but dimensions.D treats its first axis as
// the fastest-varying one, so the last label here must land at axis 0 there.
package dim

import (
    "fmt"
    "strings"

    "github.com/tawesoft/nxdata/ds/matrix/dimensions"
    "github.com/tawesoft/nxdata/errs"
)

// MaxRank is the largest number of labels a Dimensions value may hold.
const MaxRank = 6

// Label names one axis of a Variable or Dataset, such as X, Y, Z, or Tof.
//
// The zero value, Invalid, is never a legal label to insert, relabel to, or
// look up.
type Label string

// Invalid is the forbidden zero-value Label.
const Invalid Label = ""

// A handful of labels used throughout neutron-scattering reduction. The
// label set is open: any non-empty string is a legal Label, and tags bind
// to whichever of these (or other) labels fit their physical meaning.
const (
    X        Label = "X"
    Y        Label = "Y"
    Z        Label = "Z"
    Tof      Label = "Tof"
    Spectrum Label = "Spectrum"
    Time     Label = "Time"
    Energy   Label = "Energy"
    Row      Label = "Row"
    Detector Label = "Detector"
)

// Dimensions is an ordered, fixed-capacity (at most [MaxRank]) list of
// (Label, extent) pairs. The first label is outermost (slowest-varying),
// the last is innermost (fastest-varying, offset_of == 1).
//
// The zero value is the 0-dimensional (scalar) Dimensions, with volume 1.
type Dimensions struct {
    labels [MaxRank]Label
    sizes  [MaxRank]int
    n      int
}

// New builds a Dimensions from ordered (label, extent) pairs, outermost
// first. It returns a *errs.DimensionError if ndim exceeds [MaxRank], a
// label is [Invalid] or repeated, or an extent is negative.
func New(labels []Label, extents []int) (Dimensions, error) {
    if len(labels) != len(extents) {
        return Dimensions{}, errs.NewDimensionLength(renderLabels(labels), len(extents))
    }
    var d Dimensions
    for i, l := range labels {
        var err error
        d, err = d.Add(l, extents[i])
        if err != nil {
            return Dimensions{}, err
        }
    }
    return d, nil
}

func renderLabels(ls []Label) string {
    parts := make([]string, len(ls))
    for i, l := range ls {
        parts[i] = string(l)
    }
    return strings.Join(parts, ",")
}

// NDim returns the number of labels.
func (d Dimensions) NDim() int { return d.n }

// Volume returns the product of all extents (1 for a 0-dimensional/scalar
// Dimensions).
func (d Dimensions) Volume() int {
    total := 1
    for i := 0; i < d.n; i++ {
        total *= d.sizes[i]
    }
    return total
}

// Labels returns the ordered labels, outermost first.
func (d Dimensions) Labels() []Label {
    out := make([]Label, d.n)
    copy(out, d.labels[:d.n])
    return out
}

// indexOf returns the slot of label, or -1 if absent.
func (d Dimensions) indexOf(label Label) int {
    for i := 0; i < d.n; i++ {
        if d.labels[i] == label {
            return i
        }
    }
    return -1
}

// IndexOf returns the ordinal position of label (0 = outermost) and true,
// or (0, false) if label is absent.
func (d Dimensions) IndexOf(label Label) (int, bool) {
    i := d.indexOf(label)
    if i < 0 {
        return 0, false
    }
    return i, true
}

// Contains reports whether label is present.
func (d Dimensions) Contains(label Label) bool {
    return d.indexOf(label) >= 0
}

// ContainsAll reports whether d is a superset of other: every label of
// other is present in d with the same extent. Order may differ.
func (d Dimensions) ContainsAll(other Dimensions) bool {
    for i := 0; i < other.n; i++ {
        j := d.indexOf(other.labels[i])
        if j < 0 || d.sizes[j] != other.sizes[i] {
            return false
        }
    }
    return true
}

// ExtentAt returns the extent bound to label. Returns a *errs.DimensionError
// if label is absent.
func (d Dimensions) ExtentAt(label Label) (int, error) {
    i := d.indexOf(label)
    if i < 0 {
        return 0, errs.NewDimensionNotFound(string(label), d.String())
    }
    return d.sizes[i], nil
}

// OffsetOf returns the product of the extents of labels strictly inner to
// label - the row-major stride of that axis. The innermost (last) label
// always has offset 1. Returns a *errs.DimensionError if label is absent.
func (d Dimensions) OffsetOf(label Label) (int, error) {
    i := d.indexOf(label)
    if i < 0 {
        return 0, errs.NewDimensionNotFound(string(label), d.String())
    }
    stride := 1
    for j := i + 1; j < d.n; j++ {
        stride *= d.sizes[j]
    }
    return stride, nil
}

// Add appends label as a new innermost axis with the given extent. Returns
// a *errs.DimensionError if label is Invalid, already present, extent is
// negative, or the rank would exceed [MaxRank].
func (d Dimensions) Add(label Label, extent int) (Dimensions, error) {
    if label == Invalid {
        return Dimensions{}, errs.NewDimensionNotFound(string(label), d.String())
    }
    if d.Contains(label) {
        return Dimensions{}, errs.NewDimensionAlreadyExists(string(label), d.String())
    }
    if extent < 0 {
        return Dimensions{}, errs.NewDimensionLength(string(label), extent)
    }
    if d.n >= MaxRank {
        return Dimensions{}, errs.NewDimensionLength(string(label), extent)
    }
    out := d
    out.labels[out.n] = label
    out.sizes[out.n] = extent
    out.n++
    return out, nil
}

// Erase removes label's slot, shifting later labels outward by one
// position. Returns a *errs.DimensionError if label is absent.
func (d Dimensions) Erase(label Label) (Dimensions, error) {
    i := d.indexOf(label)
    if i < 0 {
        return Dimensions{}, errs.NewDimensionNotFound(string(label), d.String())
    }
    var out Dimensions
    for j := 0; j < d.n; j++ {
        if j == i {
            continue
        }
        out.labels[out.n] = d.labels[j]
        out.sizes[out.n] = d.sizes[j]
        out.n++
    }
    return out, nil
}

// Relabel renames the label at ordinal position i (0 = outermost) to
// newLabel. Returns a *errs.DimensionError if i is out of range, newLabel
// is Invalid, or newLabel already names a different slot.
func (d Dimensions) Relabel(i int, newLabel Label) (Dimensions, error) {
    if i < 0 || i >= d.n {
        return Dimensions{}, errs.NewDimensionNotFound(fmt.Sprintf("index %d", i), d.String())
    }
    if newLabel == Invalid {
        return Dimensions{}, errs.NewDimensionNotFound(string(newLabel), d.String())
    }
    if j := d.indexOf(newLabel); j >= 0 && j != i {
        return Dimensions{}, errs.NewDimensionAlreadyExists(string(newLabel), d.String())
    }
    out := d
    out.labels[i] = newLabel
    return out, nil
}

// Resize changes only the extent bound to label. Returns a
// *errs.DimensionError if label is absent or n is negative.
func (d Dimensions) Resize(label Label, n int) (Dimensions, error) {
    i := d.indexOf(label)
    if i < 0 {
        return Dimensions{}, errs.NewDimensionNotFound(string(label), d.String())
    }
    if n < 0 {
        return Dimensions{}, errs.NewDimensionLength(string(label), n)
    }
    out := d
    out.sizes[i] = n
    return out, nil
}

// Equal reports whether d and other have the same ordered list of
// (label, extent) pairs.
func (d Dimensions) Equal(other Dimensions) bool {
    if d.n != other.n {
        return false
    }
    for i := 0; i < d.n; i++ {
        if d.labels[i] != other.labels[i] || d.sizes[i] != other.sizes[i] {
            return false
        }
    }
    return true
}

// String renders d as "{outer:extent, ..., inner:extent}", e.g.
// "{Z:3, Y:2, X:4}".
func (d Dimensions) String() string {
    parts := make([]string, d.n)
    for i := 0; i < d.n; i++ {
        parts[i] = fmt.Sprintf("%s:%d", d.labels[i], d.sizes[i])
    }
    return "{" + strings.Join(parts, ", ") + "}"
}

// reversedExtents returns the extents in innermost-first order, the
// convention ds/matrix/dimensions.D expects of its first (fastest) axis.
func (d Dimensions) reversedExtents() []int {
    out := make([]int, d.n)
    for i := 0; i < d.n; i++ {
        out[i] = d.sizes[d.n-1-i]
    }
    return out
}

// D returns the underlying row-major index mapping for d, with axis 0
// corresponding to d's innermost (last) label. Index/Offsets on the result
// must not be called when d.Volume() == 0; the scalar Dimensions (NDim()
// == 0) returns a D of Size() == 1 and Dimensionality() == 0.
func (d Dimensions) D() dimensions.D {
    return dimensions.NewUnchecked(d.reversedExtents()...)
}

// Index computes the flat row-major offset for the given per-label
// coordinate, in the same outer-to-inner order as [Dimensions.Labels].
func (d Dimensions) Index(coords ...int) int {
    if d.n == 0 {
        return 0
    }
    rev := make([]int, d.n)
    for i, c := range coords {
        rev[d.n-1-i] = c
    }
    return d.D().Index(rev...)
}

// Coords computes the per-label coordinate, outer-to-inner, for the flat
// row-major index idx.
func (d Dimensions) Coords(idx int) []int {
    if d.n == 0 {
        return nil
    }
    rev := make([]int, d.n)
    d.D().Offsets(rev, idx)
    out := make([]int, d.n)
    for i, c := range rev {
        out[d.n-1-i] = c
    }
    return out
}
