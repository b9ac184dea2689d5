// Package unit implements the small sum-type of physical units used to tag
// [Variable] values.
//
// Dimensional bookkeeping is delegated to [github.com/ctessum/unit], which
// already implements the panic-on-mismatch algebra of SI-style dimensions
// (see [extunit.Dimensions]). This package wraps that algebra behind an
// idiomatic, error-returning API and adds the handful of domain-specific
// units (Counts) that the upstream package does not know about.
package unit

import (
    "fmt"

    extunit "github.com/ctessum/unit"

    "github.com/tawesoft/nxdata/errs"
)

// countsDim is a custom SI-orthogonal dimension for neutron/detector counts,
// registered once at package init time via [extunit.NewDimension].
var countsDim = extunit.NewDimension("counts")

// Unit is a tag identifying the physical unit of a Variable's elements.
//
// The zero value is [Dimensionless].
type Unit struct {
    dims extunit.Dimensions
}

func fromDimensions(d extunit.Dimensions) Unit {
    return Unit{dims: d}
}

var (
    Dimensionless = fromDimensions(extunit.Dimless)
    Length        = fromDimensions(extunit.Meter)
    Area          = fromDimensions(extunit.Meter2)
    Time          = fromDimensions(extunit.Second)
    Energy        = fromDimensions(extunit.Joule)
    Counts        = fromDimensions(extunit.Dimensions{countsDim: 1})
)

// String renders the unit using the same deterministic, sorted-atom format
// as [extunit.Dimensions.String].
func (u Unit) String() string {
    s := u.dims.String()
    if s == "" {
        return "1"
    }
    return s
}

// Equal reports whether two units have the same dimensional signature.
func (u Unit) Equal(other Unit) bool {
    return u.dims.Matches(other.dims)
}

// quantity wraps a Unit as a value-1 [extunit.Unit], the representation
// [extunit.Add]/[extunit.Mul]/[extunit.Div] operate on.
func (u Unit) quantity() *extunit.Unit {
    return extunit.New(1, u.dims)
}

// Add returns the unit resulting from adding two values of units a and b,
// which requires a == b.
func Add(a, b Unit) (u Unit, err error) {
    defer func() {
        if r := recover(); r != nil {
            err = errs.NewUnitMismatch(a.String(), b.String())
        }
    }()
    sum := extunit.Add(a.quantity(), b.quantity())
    return fromDimensions(sum.Dimensions()), nil
}

// Mul returns the unit resulting from multiplying values of units a and b.
func Mul(a, b Unit) (u Unit, err error) {
    defer func() {
        if r := recover(); r != nil {
            err = errs.NewUnitUnsupported(a.String(), b.String())
        }
    }()
    prod := extunit.Mul(a.quantity(), b.quantity())
    return fromDimensions(prod.Dimensions()), nil
}

// Div returns the unit resulting from dividing a value of unit a by a value
// of unit b.
func Div(a, b Unit) (u Unit, err error) {
    defer func() {
        if r := recover(); r != nil {
            err = errs.NewUnitUnsupported(a.String(), b.String())
        }
    }()
    quot := extunit.Div(a.quantity(), b.quantity())
    return fromDimensions(quot.Dimensions()), nil
}

// MustAdd panics (via [fmt.Errorf] wrapped in a runtime panic) instead of
// returning an error. Intended for constructing package-level unit tables
// where a mismatch would be a programming error, not a runtime condition.
func MustAdd(a, b Unit) Unit {
    u, err := Add(a, b)
    if err != nil {
        panic(fmt.Errorf("unit.MustAdd: %w", err))
    }
    return u
}
