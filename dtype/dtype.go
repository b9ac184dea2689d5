// Package dtype enumerates the element kinds a [variable.Variable] may
// store, mirroring the small closed type-list a type-erased column library
// must agree on ahead of time.
package dtype

import "github.com/tawesoft/nxdata/errs"

// DType identifies the element kind stored by a Variable's typed storage.
type DType int

const (
    // Invalid is the zero value; never a legal element kind.
    Invalid DType = iota
    Float64
    Float32
    Int64
    Int32
    Bool
    String
    Vec3
    // Dataset marks a Variable whose elements are themselves nested
    // datasets (stored as `any`, asserted back to *dataset.Dataset by
    // callers in that package to avoid an import cycle).
    Dataset
)

func (d DType) String() string {
    switch d {
    case Float64:
        return "float64"
    case Float32:
        return "float32"
    case Int64:
        return "int64"
    case Int32:
        return "int32"
    case Bool:
        return "bool"
    case String:
        return "string"
    case Vec3:
        return "vec3"
    case Dataset:
        return "dataset"
    default:
        return "invalid"
    }
}

// IsArithmetic reports whether values of this DType support +, -, *, /.
func (d DType) IsArithmetic() bool {
    switch d {
    case Float64, Float32, Int64, Int32:
        return true
    default:
        return false
    }
}

// IsFloat reports whether this DType is a floating-point kind, the only
// kinds that may carry propagated variance.
func (d DType) IsFloat() bool {
    return d == Float64 || d == Float32
}

// RequireArithmetic returns a *errs.TypeError if d does not support
// arithmetic.
func (d DType) RequireArithmetic() error {
    if !d.IsArithmetic() {
        return errs.NewTypeNotArithmetic(d.String())
    }
    return nil
}

// Vec3Value is the element type backing the [Vec3] DType: a 3-component
// position or rotation, e.g. DetectorPosition.
type Vec3Value [3]float64
