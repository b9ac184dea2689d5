// Package variable implements Variable, a type-erased, copy-on-write,
// labelled N-dimensional array with a physical unit, supporting strided
// views, broadcasting, transposed arithmetic, and reshape.
package variable

import (
    "fmt"
    "strings"

    "github.com/tawesoft/nxdata/dim"
    "github.com/tawesoft/nxdata/dtype"
    "github.com/tawesoft/nxdata/errs"
    "github.com/tawesoft/nxdata/tag"
    "github.com/tawesoft/nxdata/unit"
)

// DatasetValue is the element type backing the [dtype.Dataset] DType. V
// holds a *dataset.Dataset, typed as any here to avoid an import cycle
// between this package and the dataset package; callers in that package
// assert it back.
//
// Equality between two DatasetValues is reference identity: the nested
// dataset is never deep-compared by Variable.Equal.
type DatasetValue struct {
    V any
}

// Variable is a labelled, unit-tagged, copy-on-write N-dimensional array.
//
// The zero value is not meaningful; construct one with [New].
type Variable struct {
    tg      tag.Tag
    un      unit.Unit
    name    string
    dims    dim.Dimensions
    strides []int
    offset  int
    h       *handle
}

// Tag returns the variable's tag.
func (v Variable) Tag() tag.Tag { return v.tg }

// Unit returns the variable's physical unit.
func (v Variable) Unit() unit.Unit { return v.un }

// Name returns the variable's name (empty for Coord-tagged variables).
func (v Variable) Name() string { return v.name }

// Dims returns the variable's dimensions.
func (v Variable) Dims() dim.Dimensions { return v.dims }

// DType returns the element kind of the variable's storage.
func (v Variable) DType() dtype.DType { return v.h.c.DType() }

// Size returns the number of elements, always equal to Dims().Volume().
func (v Variable) Size() int { return v.dims.Volume() }

// IsContiguous reports whether this variable's elements occupy a
// zero-offset, row-major-contiguous run of its underlying buffer - the fast
// path for bulk operations.
func (v Variable) IsContiguous() bool {
    if v.offset != 0 {
        return false
    }
    want := naturalStrides(v.dims)
    for i := range want {
        if want[i] != v.strides[i] {
            return false
        }
    }
    return v.dims.Volume() == v.h.c.Len() || v.dims.Volume() == 0
}

func naturalStrides(d dim.Dimensions) []int {
    labels := d.Labels()
    out := make([]int, len(labels))
    for i, l := range labels {
        off, _ := d.OffsetOf(l)
        out[i] = off
    }
    return out
}

func newVariable(tg tag.Tag, u unit.Unit, name string, d dim.Dimensions, c concept) Variable {
    return Variable{
        tg:      tg,
        un:      u,
        name:    name,
        dims:    d,
        strides: naturalStrides(d),
        offset:  0,
        h:       newHandle(c),
    }
}

// requireName validates the coord naming rule: Coord tags carry no name.
// Data/Attr tags accept any name, including the empty one.
func requireName(tg tag.Tag, name string) error {
    if tg.Class() == tag.Coord && name != "" {
        return errs.NewDatasetDuplicate(tg.String(), name)
    }
    return nil
}

// New constructs a Variable from a tag, dimensions, and a slice of values
// whose element type must match tg.DType(). The variable's unit defaults to
// tg.Unit(); use [Variable.WithUnit] to override it.
func New(tg tag.Tag, name string, d dim.Dimensions, values any) (Variable, error) {
    if err := requireName(tg, name); err != nil {
        return Variable{}, err
    }
    n := d.Volume()
    c, length, err := buildConcept(tg.DType(), values)
    if err != nil {
        return Variable{}, err
    }
    if length != n {
        return Variable{}, errs.NewDimensionLength(d.String(), length)
    }
    return newVariable(tg, tg.Unit(), name, d, c), nil
}

func buildConcept(dt dtype.DType, values any) (concept, int, error) {
    switch vs := values.(type) {
    case []float64:
        if dt != dtype.Float64 {
            return nil, 0, errs.NewTypeDTypeMismatch(dt.String(), dtype.Float64.String())
        }
        return newTypedStorageFrom[float64](dt, vs), len(vs), nil
    case []float32:
        if dt != dtype.Float32 {
            return nil, 0, errs.NewTypeDTypeMismatch(dt.String(), dtype.Float32.String())
        }
        return newTypedStorageFrom[float32](dt, vs), len(vs), nil
    case []int64:
        if dt != dtype.Int64 {
            return nil, 0, errs.NewTypeDTypeMismatch(dt.String(), dtype.Int64.String())
        }
        return newTypedStorageFrom[int64](dt, vs), len(vs), nil
    case []int32:
        if dt != dtype.Int32 {
            return nil, 0, errs.NewTypeDTypeMismatch(dt.String(), dtype.Int32.String())
        }
        return newTypedStorageFrom[int32](dt, vs), len(vs), nil
    case []bool:
        if dt != dtype.Bool {
            return nil, 0, errs.NewTypeDTypeMismatch(dt.String(), dtype.Bool.String())
        }
        bs := newBoolStorage(len(vs))
        for i, b := range vs {
            bs.store.Set(i, b)
        }
        return bs, len(vs), nil
    case []string:
        if dt != dtype.String {
            return nil, 0, errs.NewTypeDTypeMismatch(dt.String(), dtype.String.String())
        }
        return newGenericStorageFrom[string](dt, vs), len(vs), nil
    case []dtype.Vec3Value:
        if dt != dtype.Vec3 {
            return nil, 0, errs.NewTypeDTypeMismatch(dt.String(), dtype.Vec3.String())
        }
        return newGenericStorageFrom[dtype.Vec3Value](dt, vs), len(vs), nil
    case []DatasetValue:
        if dt != dtype.Dataset {
            return nil, 0, errs.NewTypeDTypeMismatch(dt.String(), dtype.Dataset.String())
        }
        return newGenericStorageFrom[DatasetValue](dt, vs), len(vs), nil
    default:
        return nil, 0, errs.NewTypeDTypeMismatch(dt.String(), "unsupported Go value type")
    }
}

// flatIndex computes this variable's underlying buffer offset for a
// coordinate given in this variable's own (outer-to-inner) label order.
func (v Variable) flatIndex(coords []int) int {
    off := v.offset
    for i, c := range coords {
        off += c * v.strides[i]
    }
    return off
}

// At returns the element at the given coordinate, ordered outer-to-inner
// per Dims().Labels().
func (v Variable) At(coords ...int) any {
    return v.h.c.At(v.flatIndex(coords))
}

// ensureUnique clones v's storage if it is shared with another Variable,
// so the caller may safely mutate it in place.
func (v *Variable) ensureUnique() {
    v.h = v.h.unique()
}

// SetAt writes value at the given coordinate, cloning the underlying
// storage first if it is shared.
func (v *Variable) SetAt(value any, coords ...int) {
    v.ensureUnique()
    v.h.c.SetAt(v.flatIndex(coords), value)
}

// view returns a shallow copy of v that shares its handle, recording one
// more live reference to it: a logical copy, isolated from v by the COW
// gate on first write.
func (v Variable) view() Variable {
    nv := v
    nv.h = v.h.retain()
    return nv
}

// borrow returns a shallow copy of v sharing its handle without recording a
// new reference: a view in the borrowing sense, whose writes land in v's
// own buffer. Slicing, transposing, and reversing all borrow.
func (v Variable) borrow() Variable {
    return v
}

// WithUnit returns a copy of v carrying a different unit, sharing storage.
func (v Variable) WithUnit(u unit.Unit) Variable {
    nv := v.view()
    nv.un = u
    return nv
}

// WithName returns a copy of v carrying a different name, sharing storage.
func (v Variable) WithName(name string) Variable {
    nv := v.view()
    nv.name = name
    return nv
}

// Clone returns a deep, densely-packed copy of v: independent storage, in
// v's current label order, with natural (contiguous) strides.
func (v Variable) Clone() Variable {
    n := v.dims.Volume()
    fresh := growConcept(v.h.c, n)
    for flat := 0; flat < n; flat++ {
        coords := v.dims.Coords(flat)
        fresh.SetAt(flat, v.h.c.At(v.flatIndex(coords)))
    }
    return Variable{tg: v.tg, un: v.un, name: v.name, dims: v.dims, strides: naturalStrides(v.dims), offset: 0, h: newHandle(fresh)}
}

// CloneEmpty returns a single-element placeholder Variable with the same
// tag, unit, name, and element type as v, but scalar (0-dimensional) Dims.
func (v Variable) CloneEmpty() Variable {
    c := v.h.c.CloneEmpty()
    return Variable{tg: v.tg, un: v.un, name: v.name, dims: dim.Dimensions{}, strides: nil, offset: 0, h: newHandle(c)}
}

// growConcept returns storage of the same concrete type as model, sized to
// hold n elements.
func growConcept(model concept, n int) concept {
    switch s := model.(type) {
    case *typedStorage[float64]:
        return newTypedStorage[float64](s.dt, n)
    case *typedStorage[float32]:
        return newTypedStorage[float32](s.dt, n)
    case *typedStorage[int64]:
        return newTypedStorage[int64](s.dt, n)
    case *typedStorage[int32]:
        return newTypedStorage[int32](s.dt, n)
    case *boolStorage:
        return newBoolStorage(n)
    case *genericStorage[string]:
        return newGenericStorage[string](s.dt, n)
    case *genericStorage[dtype.Vec3Value]:
        return newGenericStorage[dtype.Vec3Value](s.dt, n)
    case *genericStorage[DatasetValue]:
        return newGenericStorage[DatasetValue](s.dt, n)
    default:
        panic(fmt.Sprintf("variable: unsupported storage type %T", model))
    }
}

// Equal reports whether v and other have the same tag, unit, name,
// dimensions, dtype, and element-wise contents.
func (v Variable) Equal(other Variable) bool {
    if !v.tg.Equal(other.tg) || !v.un.Equal(other.un) || v.name != other.name {
        return false
    }
    if !v.dims.Equal(other.dims) {
        return false
    }
    if v.h.c.DType() != other.h.c.DType() {
        return false
    }
    n := v.dims.Volume()
    for flat := 0; flat < n; flat++ {
        coords := v.dims.Coords(flat)
        if !v.h.c.EqualAt(v.flatIndex(coords), other.h.c, other.flatIndex(coords)) {
            return false
        }
    }
    return true
}

// String renders v's tag, name, unit, dims, and contents for diagnostics.
func (v Variable) String() string {
    var b strings.Builder
    fmt.Fprintf(&b, "Variable(%s", v.tg)
    if v.name != "" {
        fmt.Fprintf(&b, "[%q]", v.name)
    }
    fmt.Fprintf(&b, ", unit=%s, dims=%s, dtype=%s)", v.un, v.dims, v.h.c.DType())
    return b.String()
}
