package variable

import (
    "math"

    "github.com/tawesoft/nxdata/dim"
    "github.com/tawesoft/nxdata/dtype"
    "github.com/tawesoft/nxdata/errs"
    "github.com/tawesoft/nxdata/operator"
    "github.com/tawesoft/nxdata/unit"
)

// opKind identifies one of the four binary arithmetic operators.
type opKind int

const (
    opAdd opKind = iota
    opSub
    opMul
    opDiv
)

func (k opKind) apply(a, b float64) float64 {
    switch k {
    case opAdd:
        return operator.Add(a, b)
    case opSub:
        return operator.Sub(a, b)
    case opMul:
        return operator.Mul(a, b)
    case opDiv:
        return operator.Div(a, b)
    default:
        return 0
    }
}

// combineUnits applies the unit rule for k: equality required for +/-, the
// product/quotient unit computed for */÷.
func combineUnits(k opKind, a, b unit.Unit) (unit.Unit, error) {
    switch k {
    case opAdd, opSub:
        if !a.Equal(b) {
            return unit.Unit{}, errs.NewUnitMismatch(a.String(), b.String())
        }
        return a, nil
    case opMul:
        return unit.Mul(a, b)
    case opDiv:
        return unit.Div(a, b)
    default:
        return unit.Unit{}, errs.NewUnitUnsupported(a.String(), b.String())
    }
}

func checkArithmeticPair(a, b Variable) error {
    if a.DType() != b.DType() {
        return errs.NewTypeDTypeMismatch(a.DType().String(), b.DType().String())
    }
    return a.DType().RequireArithmetic()
}

// alignStrides returns, for each label of rd in order, the stride v uses
// for that label, or 0 if v does not have that label (a broadcast axis).
func alignStrides(rd dim.Dimensions, v Variable) []int {
    labels := rd.Labels()
    out := make([]int, len(labels))
    for k, l := range labels {
        if i, ok := v.dims.IndexOf(l); ok {
            out[k] = v.strides[i]
        }
    }
    return out
}

func dot(coords, strides []int) int {
    total := 0
    for i, c := range coords {
        total += c * strides[i]
    }
    return total
}

func fromFloat64(dt dtype.DType, f float64) any {
    switch dt {
    case dtype.Float64:
        return f
    case dtype.Float32:
        return float32(f)
    case dtype.Int64:
        return int64(f)
    case dtype.Int32:
        return int32(f)
    default:
        return f
    }
}

func newArithmeticStorage(dt dtype.DType, n int) concept {
    switch dt {
    case dtype.Float64:
        return newTypedStorage[float64](dt, n)
    case dtype.Float32:
        return newTypedStorage[float32](dt, n)
    case dtype.Int64:
        return newTypedStorage[int64](dt, n)
    case dtype.Int32:
        return newTypedStorage[int32](dt, n)
    default:
        return nil
    }
}

// binary implements Add/Sub/Mul/Div: an out-of-place operation producing a
// fresh Variable whose dims are the union of a's and b's (whichever
// contains the other); the left operand's name is preserved.
func binary(k opKind, a, b Variable) (Variable, error) {
    if err := checkArithmeticPair(a, b); err != nil {
        return Variable{}, err
    }
    u, err := combineUnits(k, a.un, b.un)
    if err != nil {
        return Variable{}, err
    }
    var rd dim.Dimensions
    switch {
    case a.dims.ContainsAll(b.dims):
        rd = a.dims
    case b.dims.ContainsAll(a.dims):
        rd = b.dims
    default:
        return Variable{}, errs.NewDimensionMismatch(a.dims.String(), b.dims.String())
    }

    aAligned := alignStrides(rd, a)
    bAligned := alignStrides(rd, b)
    n := rd.Volume()
    result := newArithmeticStorage(a.DType(), n)

    for flat := 0; flat < n; flat++ {
        coords := rd.Coords(flat)
        av := toFloat64(a.h.c.At(a.offset + dot(coords, aAligned)))
        bv := toFloat64(b.h.c.At(b.offset + dot(coords, bAligned)))
        result.SetAt(flat, fromFloat64(a.DType(), k.apply(av, bv)))
    }

    return Variable{tg: a.tg, un: u, name: a.name, dims: rd, strides: naturalStrides(rd), offset: 0, h: newHandle(result)}, nil
}

// Add returns a + b, broadcasting and transposing as needed.
func Add(a, b Variable) (Variable, error) { return binary(opAdd, a, b) }

// Sub returns a - b.
func Sub(a, b Variable) (Variable, error) { return binary(opSub, a, b) }

// Mul returns a * b.
func Mul(a, b Variable) (Variable, error) { return binary(opMul, a, b) }

// Div returns a / b.
func Div(a, b Variable) (Variable, error) { return binary(opDiv, a, b) }

// assign implements the in-place a ⊕= b family. dst's dims must contain
// rhs's dims. The whole result is computed into a temporary buffer before
// dst is mutated, so self-referential ops such as a += a, or a -= a.slice(...),
// read only the pre-mutation values of dst.
func assign(k opKind, dst *Variable, rhs Variable) error {
    if err := checkArithmeticPair(*dst, rhs); err != nil {
        return err
    }
    if !dst.dims.ContainsAll(rhs.dims) {
        return errs.NewDimensionMismatch(dst.dims.String(), rhs.dims.String())
    }
    u, err := combineUnits(k, dst.un, rhs.un)
    if err != nil {
        return err
    }

    rhsAligned := alignStrides(dst.dims, rhs)
    n := dst.dims.Volume()
    temp := make([]float64, n)
    for flat := 0; flat < n; flat++ {
        coords := dst.dims.Coords(flat)
        av := toFloat64(dst.h.c.At(dst.flatIndex(coords)))
        bv := toFloat64(rhs.h.c.At(rhs.offset + dot(coords, rhsAligned)))
        temp[flat] = k.apply(av, bv)
    }

    dst.ensureUnique()
    for flat := 0; flat < n; flat++ {
        coords := dst.dims.Coords(flat)
        dst.h.c.SetAt(dst.flatIndex(coords), fromFloat64(dst.DType(), temp[flat]))
    }
    dst.un = u
    return nil
}

// AddAssign computes dst += rhs in place.
func AddAssign(dst *Variable, rhs Variable) error { return assign(opAdd, dst, rhs) }

// SubAssign computes dst -= rhs in place.
func SubAssign(dst *Variable, rhs Variable) error { return assign(opSub, dst, rhs) }

// MulAssign computes dst *= rhs in place.
func MulAssign(dst *Variable, rhs Variable) error { return assign(opMul, dst, rhs) }

// DivAssign computes dst /= rhs in place.
func DivAssign(dst *Variable, rhs Variable) error { return assign(opDiv, dst, rhs) }

// Broadcast returns a view of v with dims expanded to target, which must
// contain v's dims. Missing labels are replicated (stride 0).
func Broadcast(v Variable, target dim.Dimensions) (Variable, error) {
    if !target.ContainsAll(v.dims) {
        return Variable{}, errs.NewDimensionMismatch(target.String(), v.dims.String())
    }
    nv := v.view()
    nv.dims = target
    nv.strides = alignStrides(target, v)
    return nv, nil
}

// Sum returns the reduction of v along label, summing every slice.
func Sum(v Variable, label dim.Label) (Variable, error) {
    return reduce(v, label, 0, func(acc, x float64) float64 { return acc + x }, false)
}

// Mean returns the arithmetic mean of v along label.
func Mean(v Variable, label dim.Label) (Variable, error) {
    return reduce(v, label, 0, func(acc, x float64) float64 { return acc + x }, true)
}

func reduce(v Variable, label dim.Label, init float64, step func(acc, x float64) float64, mean bool) (Variable, error) {
    pos, ok := v.dims.IndexOf(label)
    if !ok {
        return Variable{}, errs.NewDimensionNotFound(string(label), v.dims.String())
    }
    extent, _ := v.dims.ExtentAt(label)
    newDims, err := v.dims.Erase(label)
    if err != nil {
        return Variable{}, err
    }
    n := newDims.Volume()
    result := newArithmeticStorage(v.DType(), n)
    reduceStride := v.strides[pos]

    for flat := 0; flat < n; flat++ {
        coords := newDims.Coords(flat)
        base := v.offset
        ci := 0
        for i := range v.strides {
            if i == pos {
                continue
            }
            base += coords[ci] * v.strides[i]
            ci++
        }
        acc := init
        for k := 0; k < extent; k++ {
            acc = step(acc, toFloat64(v.h.c.At(base+k*reduceStride)))
        }
        if mean && extent > 0 {
            acc /= float64(extent)
        }
        result.SetAt(flat, fromFloat64(v.DType(), acc))
    }

    return Variable{tg: v.tg, un: v.un, name: v.name, dims: newDims, strides: naturalStrides(newDims), offset: 0, h: newHandle(result)}, nil
}

// Norm returns the Euclidean norm of v's elements as a scalar Variable.
func Norm(v Variable) (Variable, error) {
    if err := v.DType().RequireArithmetic(); err != nil {
        return Variable{}, err
    }
    n := v.dims.Volume()
    total := 0.0
    for flat := 0; flat < n; flat++ {
        coords := v.dims.Coords(flat)
        x := toFloat64(v.h.c.At(v.flatIndex(coords)))
        total += x * x
    }
    result := newArithmeticStorage(v.DType(), 1)
    result.SetAt(0, fromFloat64(v.DType(), math.Sqrt(total)))
    return Variable{tg: v.tg, un: v.un, name: v.name, dims: dim.Dimensions{}, strides: nil, offset: 0, h: newHandle(result)}, nil
}

// Sqrt returns a new Variable with the element-wise square root of v.
func Sqrt(v Variable) (Variable, error) {
    if err := v.DType().RequireArithmetic(); err != nil {
        return Variable{}, err
    }
    n := v.dims.Volume()
    result := newArithmeticStorage(v.DType(), n)
    for flat := 0; flat < n; flat++ {
        coords := v.dims.Coords(flat)
        x := toFloat64(v.h.c.At(v.flatIndex(coords)))
        result.SetAt(flat, fromFloat64(v.DType(), math.Sqrt(x)))
    }
    return Variable{tg: v.tg, un: v.un, name: v.name, dims: v.dims, strides: naturalStrides(v.dims), offset: 0, h: newHandle(result)}, nil
}
