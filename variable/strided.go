package variable

import (
    "github.com/tawesoft/nxdata/dim"
    "github.com/tawesoft/nxdata/dtype"
    "github.com/tawesoft/nxdata/errs"
    "github.com/tawesoft/nxdata/operator"
    "github.com/tawesoft/nxdata/tag"
)

func elemSize(dt dtype.DType) int {
    switch dt {
    case dtype.Float64, dtype.Int64:
        return 8
    case dtype.Float32, dtype.Int32:
        return 4
    default:
        return 0
    }
}

// NewFromStrided constructs a Variable from a flat numeric buffer laid out
// with explicit C-style byte strides, one per label of d in order. A layout
// whose strides describe dense row-major order is adopted in a single copy;
// any other layout is gathered block-wise, one contiguous innermost run at
// a time.
//
// Only the numeric element kinds support strided construction; values must
// be a slice matching tg.DType().
func NewFromStrided(tg tag.Tag, name string, d dim.Dimensions, byteStrides []int, values any) (Variable, error) {
    if err := requireName(tg, name); err != nil {
        return Variable{}, err
    }
    if len(byteStrides) != d.NDim() {
        return Variable{}, errs.NewDimensionMismatch(d.String(), "byte strides")
    }
    dt := tg.DType()
    size := elemSize(dt)
    if size == 0 {
        return Variable{}, errs.NewTypeNotArithmetic(dt.String())
    }
    elemStrides := make([]int, len(byteStrides))
    for i, bs := range byteStrides {
        if bs < 0 || bs%size != 0 {
            return Variable{}, errs.NewDimensionLength(d.String(), bs)
        }
        elemStrides[i] = bs / size
    }

    var c concept
    var err error
    switch vs := values.(type) {
    case []float64:
        c, err = gatherStrided[float64](dt, dtype.Float64, d, elemStrides, vs)
    case []float32:
        c, err = gatherStrided[float32](dt, dtype.Float32, d, elemStrides, vs)
    case []int64:
        c, err = gatherStrided[int64](dt, dtype.Int64, d, elemStrides, vs)
    case []int32:
        c, err = gatherStrided[int32](dt, dtype.Int32, d, elemStrides, vs)
    default:
        return Variable{}, errs.NewTypeDTypeMismatch(dt.String(), "unsupported Go value type")
    }
    if err != nil {
        return Variable{}, err
    }
    return newVariable(tg, tg.Unit(), name, d, c), nil
}

// gatherStrided copies data into a fresh dense row-major buffer. The copy
// unit is the longest innermost run of axes whose strides already match the
// dense layout, so a fully dense source collapses to one copy and a source
// with only an outer-axis stride mismatch is still copied a row at a time.
func gatherStrided[T operator.Number](want, got dtype.DType, d dim.Dimensions, elemStrides []int, data []T) (concept, error) {
    if want != got {
        return nil, errs.NewTypeDTypeMismatch(want.String(), got.String())
    }
    n := d.Volume()
    natural := naturalStrides(d)
    labels := d.Labels()

    block := 1
    for i := len(labels) - 1; i >= 0; i-- {
        if elemStrides[i] != natural[i] {
            break
        }
        extent, _ := d.ExtentAt(labels[i])
        block *= extent
    }
    if block == 0 || n == 0 {
        return newTypedStorage[T](want, n), nil
    }

    // The furthest element read is the one at the last coordinate, which
    // ends the final contiguous run.
    last := 0
    for i, l := range labels {
        extent, _ := d.ExtentAt(l)
        last += (extent - 1) * elemStrides[i]
    }
    if last+1 > len(data) {
        return nil, errs.NewDimensionLength(d.String(), len(data))
    }

    out := make([]T, n)
    for flat := 0; flat < n; flat += block {
        src := dot(d.Coords(flat), elemStrides)
        copy(out[flat:flat+block], data[src:src+block])
    }
    return newTypedStorageFrom[T](want, out), nil
}
