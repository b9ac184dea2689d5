package variable

import (
    "math"

    "github.com/tawesoft/nxdata/dim"
    "github.com/tawesoft/nxdata/errs"
)

func extractFloats(v Variable) []float64 {
    n := v.Size()
    out := make([]float64, n)
    for i := 0; i < n; i++ {
        out[i] = toFloat64(v.At(i))
    }
    return out
}

func isMonotonic(xs []float64) bool {
    for i := 1; i < len(xs); i++ {
        if xs[i] <= xs[i-1] {
            return false
        }
    }
    return true
}

func overlap(aLo, aHi, bLo, bHi float64) float64 {
    lo := math.Max(aLo, bLo)
    hi := math.Min(aHi, bHi)
    if hi <= lo {
        return 0
    }
    return hi - lo
}

// Rebin redistributes v's values along label from oldEdges (length
// extent(label)+1) onto newEdges (length m+1), conservatively: each output
// bin accumulates old[i] * overlap / old_bin_width for every old bin i that
// overlaps it. oldEdges and newEdges are both 1-D, monotonically
// increasing, real-valued coordinates along label.
//
// Auxiliary (per-outer-index) edge coordinates are not supported: oldEdges
// and newEdges are shared across every other dimension of v.
func Rebin(v Variable, label dim.Label, oldEdges, newEdges Variable) (Variable, error) {
    pos, ok := v.dims.IndexOf(label)
    if !ok {
        return Variable{}, errs.NewRebinMissingCoord(string(label))
    }
    extent, _ := v.dims.ExtentAt(label)

    if oldEdges.dims.NDim() != 1 || oldEdges.Size() != extent+1 {
        return Variable{}, errs.NewRebinNotEdge(string(label))
    }
    if newEdges.dims.NDim() != 1 {
        return Variable{}, errs.NewRebinNotDimensionCoord(newEdges.name)
    }

    oldVals := extractFloats(oldEdges)
    newVals := extractFloats(newEdges)
    if !isMonotonic(oldVals) || !isMonotonic(newVals) {
        return Variable{}, errs.NewRebinNotContinuous(newEdges.name)
    }

    m := len(newVals) - 1
    newDims, err := v.dims.Resize(label, m)
    if err != nil {
        return Variable{}, err
    }

    n := newDims.Volume()
    result := newArithmeticStorage(v.DType(), n)

    for flat := 0; flat < n; flat++ {
        coords := newDims.Coords(flat)
        j := coords[pos]
        base := v.offset
        for i, c := range coords {
            if i == pos {
                continue
            }
            base += c * v.strides[i]
        }
        lo, hi := newVals[j], newVals[j+1]
        sum := 0.0
        for i := 0; i < extent; i++ {
            oldLo, oldHi := oldVals[i], oldVals[i+1]
            ov := overlap(oldLo, oldHi, lo, hi)
            if ov <= 0 {
                continue
            }
            width := oldHi - oldLo
            x := toFloat64(v.h.c.At(base + i*v.strides[pos]))
            sum += x * ov / width
        }
        result.SetAt(flat, fromFloat64(v.DType(), sum))
    }

    return Variable{tg: v.tg, un: v.un, name: v.name, dims: newDims, strides: naturalStrides(newDims), offset: 0, h: newHandle(result)}, nil
}
