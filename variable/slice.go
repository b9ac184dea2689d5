package variable

import (
    "github.com/tawesoft/nxdata/dim"
    "github.com/tawesoft/nxdata/errs"
)

// SliceRange returns a view of v restricted to [begin, end) along label - a
// "range slice" that keeps the axis, with length end-begin.
func (v Variable) SliceRange(label dim.Label, begin, end int) (Variable, error) {
    pos, ok := v.dims.IndexOf(label)
    if !ok {
        return Variable{}, errs.NewDimensionNotFound(string(label), v.dims.String())
    }
    extent, _ := v.dims.ExtentAt(label)
    if begin < 0 || end < begin || end > extent {
        return Variable{}, errs.NewSliceOutOfRange(string(label), begin, end, extent)
    }
    newDims, err := v.dims.Resize(label, end-begin)
    if err != nil {
        return Variable{}, err
    }
    nv := v.borrow()
    nv.dims = newDims
    nv.offset = v.offset + begin*v.strides[pos]
    return nv, nil
}

// SliceAt returns a view of v fixed at index along label - a "non-range
// slice" that drops the axis entirely.
func (v Variable) SliceAt(label dim.Label, index int) (Variable, error) {
    pos, ok := v.dims.IndexOf(label)
    if !ok {
        return Variable{}, errs.NewDimensionNotFound(string(label), v.dims.String())
    }
    extent, _ := v.dims.ExtentAt(label)
    if index < 0 || index >= extent {
        return Variable{}, errs.NewSliceOutOfRange(string(label), index, index+1, extent)
    }
    newDims, err := v.dims.Erase(label)
    if err != nil {
        return Variable{}, err
    }
    newStrides := make([]int, 0, len(v.strides)-1)
    for i, s := range v.strides {
        if i == pos {
            continue
        }
        newStrides = append(newStrides, s)
    }
    nv := v.borrow()
    nv.dims = newDims
    nv.strides = newStrides
    nv.offset = v.offset + index*v.strides[pos]
    return nv, nil
}

// Reshape returns a Variable with newDims, whose volume must match v's. If
// v is contiguous the result is a cheap relabelling sharing v's storage;
// otherwise v is first materialised into a dense, owned copy.
func (v Variable) Reshape(newDims dim.Dimensions) (Variable, error) {
    base := v
    var h *handle
    if v.IsContiguous() {
        h = v.h.retain()
    } else {
        base = v.Clone()
        h = base.h
    }
    if newDims.Volume() != base.dims.Volume() {
        return Variable{}, errs.NewDimensionMismatch(base.dims.String(), newDims.String())
    }
    return Variable{
        tg: v.tg, un: v.un, name: v.name,
        dims: newDims, strides: naturalStrides(newDims), offset: base.offset, h: h,
    }, nil
}

// Transpose returns a view of v with its labels reordered to order, which
// must be a permutation of v.Dims().Labels(). Iteration through the result
// visits elements in the new label order; no data is moved.
func (v Variable) Transpose(order []dim.Label) (Variable, error) {
    if len(order) != v.dims.NDim() {
        return Variable{}, errs.NewDimensionMismatch(v.dims.String(), renderOrder(order))
    }
    extents := make([]int, len(order))
    strides := make([]int, len(order))
    for i, l := range order {
        pos, ok := v.dims.IndexOf(l)
        if !ok {
            return Variable{}, errs.NewDimensionNotFound(string(l), v.dims.String())
        }
        extents[i], _ = v.dims.ExtentAt(l)
        strides[i] = v.strides[pos]
    }
    newDims, err := dim.New(order, extents)
    if err != nil {
        return Variable{}, err
    }
    nv := v.borrow()
    nv.dims = newDims
    nv.strides = strides
    return nv, nil
}

func renderOrder(order []dim.Label) string {
    d, _ := dim.New(order, make([]int, len(order)))
    return d.String()
}

// Assign copies src's elements into dst element-wise through both strided
// views, broadcasting src along any label it lacks. The whole source is
// read into a temporary buffer before dst is mutated, so overlapping
// source and target storage is safe.
func Assign(dst *Variable, src Variable) error {
    if dst.DType() != src.DType() {
        return errs.NewTypeDTypeMismatch(dst.DType().String(), src.DType().String())
    }
    if !dst.un.Equal(src.un) {
        return errs.NewUnitMismatch(dst.un.String(), src.un.String())
    }
    if !dst.dims.ContainsAll(src.dims) {
        return errs.NewDimensionMismatch(dst.dims.String(), src.dims.String())
    }
    aligned := alignStrides(dst.dims, src)
    n := dst.dims.Volume()
    temp := make([]any, n)
    for flat := 0; flat < n; flat++ {
        coords := dst.dims.Coords(flat)
        temp[flat] = src.h.c.At(src.offset + dot(coords, aligned))
    }
    dst.ensureUnique()
    for flat := 0; flat < n; flat++ {
        dst.h.c.SetAt(dst.flatIndex(dst.dims.Coords(flat)), temp[flat])
    }
    return nil
}

// Reverse returns a view of v with the element order along label flipped.
func (v Variable) Reverse(label dim.Label) (Variable, error) {
    pos, ok := v.dims.IndexOf(label)
    if !ok {
        return Variable{}, errs.NewDimensionNotFound(string(label), v.dims.String())
    }
    extent, _ := v.dims.ExtentAt(label)
    nv := v.borrow()
    nv.strides = append([]int{}, v.strides...)
    nv.strides[pos] = -v.strides[pos]
    nv.offset = v.offset + (extent-1)*v.strides[pos]
    return nv, nil
}
