package variable

import (
    "github.com/tawesoft/nxdata/unit"
)

// Quantity is a scalar magnitude paired with a physical unit, the
// right-hand side of unit-composing arithmetic such as scaling a
// length-valued Variable by a time.
type Quantity struct {
    Value float64
    Unit  unit.Unit
}

// scalarAssign applies k element-wise with a constant right-hand side. When
// compose is false the variable's unit is left unchanged (a plain scalar);
// when true the unit rule of the operator applies against u.
func scalarAssign(k opKind, dst *Variable, s float64, u unit.Unit, compose bool) error {
    if err := dst.DType().RequireArithmetic(); err != nil {
        return err
    }
    nu := dst.un
    if compose {
        var err error
        nu, err = combineUnits(k, dst.un, u)
        if err != nil {
            return err
        }
    }
    dst.ensureUnique()
    n := dst.dims.Volume()
    for flat := 0; flat < n; flat++ {
        i := dst.flatIndex(dst.dims.Coords(flat))
        x := toFloat64(dst.h.c.At(i))
        dst.h.c.SetAt(i, fromFloat64(dst.DType(), k.apply(x, s)))
    }
    dst.un = nu
    return nil
}

func scalarBinary(k opKind, v Variable, s float64, u unit.Unit, compose bool) (Variable, error) {
    out := v.Clone()
    if err := scalarAssign(k, &out, s, u, compose); err != nil {
        return Variable{}, err
    }
    return out, nil
}

// AddScalar returns v with s added to every element. The unit is unchanged.
func AddScalar(v Variable, s float64) (Variable, error) {
    return scalarBinary(opAdd, v, s, unit.Unit{}, false)
}

// SubScalar returns v with s subtracted from every element.
func SubScalar(v Variable, s float64) (Variable, error) {
    return scalarBinary(opSub, v, s, unit.Unit{}, false)
}

// MulScalar returns v scaled by s. The unit is unchanged.
func MulScalar(v Variable, s float64) (Variable, error) {
    return scalarBinary(opMul, v, s, unit.Unit{}, false)
}

// DivScalar returns v divided by s.
func DivScalar(v Variable, s float64) (Variable, error) {
    return scalarBinary(opDiv, v, s, unit.Unit{}, false)
}

// AddScalarAssign adds s to every element of dst in place.
func AddScalarAssign(dst *Variable, s float64) error {
    return scalarAssign(opAdd, dst, s, unit.Unit{}, false)
}

// SubScalarAssign subtracts s from every element of dst in place.
func SubScalarAssign(dst *Variable, s float64) error {
    return scalarAssign(opSub, dst, s, unit.Unit{}, false)
}

// MulScalarAssign scales every element of dst by s in place.
func MulScalarAssign(dst *Variable, s float64) error {
    return scalarAssign(opMul, dst, s, unit.Unit{}, false)
}

// DivScalarAssign divides every element of dst by s in place.
func DivScalarAssign(dst *Variable, s float64) error {
    return scalarAssign(opDiv, dst, s, unit.Unit{}, false)
}

// AddQuantity returns v with q.Value added to every element. q.Unit must
// equal v's unit.
func AddQuantity(v Variable, q Quantity) (Variable, error) {
    return scalarBinary(opAdd, v, q.Value, q.Unit, true)
}

// SubQuantity returns v with q.Value subtracted from every element. q.Unit
// must equal v's unit.
func SubQuantity(v Variable, q Quantity) (Variable, error) {
    return scalarBinary(opSub, v, q.Value, q.Unit, true)
}

// MulQuantity returns v scaled by q. The result's unit is the product of
// v's unit and q.Unit.
func MulQuantity(v Variable, q Quantity) (Variable, error) {
    return scalarBinary(opMul, v, q.Value, q.Unit, true)
}

// DivQuantity returns v divided by q. The result's unit is the quotient of
// v's unit and q.Unit.
func DivQuantity(v Variable, q Quantity) (Variable, error) {
    return scalarBinary(opDiv, v, q.Value, q.Unit, true)
}

// MulQuantityAssign scales dst by q in place, composing units.
func MulQuantityAssign(dst *Variable, q Quantity) error {
    return scalarAssign(opMul, dst, q.Value, q.Unit, true)
}

// DivQuantityAssign divides dst by q in place, composing units.
func DivQuantityAssign(dst *Variable, q Quantity) error {
    return scalarAssign(opDiv, dst, q.Value, q.Unit, true)
}
