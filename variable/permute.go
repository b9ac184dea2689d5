package variable

import (
    "github.com/tawesoft/nxdata/dim"
    "github.com/tawesoft/nxdata/errs"
)

// Gather returns a dense copy of v with label's axis reordered (and/or
// resized) to indices: the result's extent on label is len(indices), and
// its element at label-coordinate i is v's element at label-coordinate
// indices[i]. Used to apply a sort permutation or a filter's kept-position
// list to every Variable of a Dataset that depends on the affected label.
func Gather(v Variable, label dim.Label, indices []int) (Variable, error) {
    pos, ok := v.dims.IndexOf(label)
    if !ok {
        return Variable{}, errs.NewDimensionNotFound(string(label), v.dims.String())
    }
    newDims, err := v.dims.Resize(label, len(indices))
    if err != nil {
        return Variable{}, err
    }
    n := newDims.Volume()
    result := growConcept(v.h.c, n)
    for flat := 0; flat < n; flat++ {
        coords := newDims.Coords(flat)
        srcCoords := append([]int{}, coords...)
        srcCoords[pos] = indices[coords[pos]]
        result.SetAt(flat, v.h.c.At(v.flatIndex(srcCoords)))
    }
    return Variable{tg: v.tg, un: v.un, name: v.name, dims: newDims, strides: naturalStrides(newDims), offset: 0, h: newHandle(result)}, nil
}

// Concat returns a new Variable formed by joining a and b along label: the
// result's extent on label is the sum of a's and b's, and every other axis
// must agree between a and b (both in label set and extent).
func Concat(a, b Variable, label dim.Label) (Variable, error) {
    posA, ok := a.dims.IndexOf(label)
    if !ok {
        return Variable{}, errs.NewDimensionNotFound(string(label), a.dims.String())
    }
    if _, ok := b.dims.IndexOf(label); !ok {
        return Variable{}, errs.NewDimensionNotFound(string(label), b.dims.String())
    }
    if a.DType() != b.DType() {
        return Variable{}, errs.NewTypeDTypeMismatch(a.DType().String(), b.DType().String())
    }
    if !a.un.Equal(b.un) {
        return Variable{}, errs.NewUnitMismatch(a.un.String(), b.un.String())
    }
    if a.dims.NDim() != b.dims.NDim() {
        return Variable{}, errs.NewDimensionMismatch(a.dims.String(), b.dims.String())
    }
    extA, _ := a.dims.ExtentAt(label)
    extB, _ := b.dims.ExtentAt(label)
    for _, l := range a.dims.Labels() {
        if l == label {
            continue
        }
        ea, _ := a.dims.ExtentAt(l)
        eb, err := b.dims.ExtentAt(l)
        if err != nil || ea != eb {
            return Variable{}, errs.NewDimensionMismatch(a.dims.String(), b.dims.String())
        }
    }

    newDims, err := a.dims.Resize(label, extA+extB)
    if err != nil {
        return Variable{}, err
    }
    n := newDims.Volume()
    result := growConcept(a.h.c, n)
    for flat := 0; flat < n; flat++ {
        coords := newDims.Coords(flat)
        if coords[posA] < extA {
            result.SetAt(flat, a.h.c.At(a.flatIndex(coords)))
        } else {
            // b may order the same labels differently; map by label, not
            // position.
            bOff := b.offset
            for idx, l := range a.dims.Labels() {
                c := coords[idx]
                if idx == posA {
                    c = coords[posA] - extA
                }
                pb, _ := b.dims.IndexOf(l)
                bOff += c * b.strides[pb]
            }
            result.SetAt(flat, b.h.c.At(bOff))
        }
    }
    return Variable{tg: a.tg, un: a.un, name: a.name, dims: newDims, strides: naturalStrides(newDims), offset: 0, h: newHandle(result)}, nil
}
