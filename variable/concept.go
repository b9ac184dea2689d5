package variable

import (
    "github.com/tawesoft/nxdata/ds/bitseq"
    "github.com/tawesoft/nxdata/ds/matrix"
    "github.com/tawesoft/nxdata/dtype"
    "github.com/tawesoft/nxdata/operator"
)

// concept is the type-erased storage interface every element-type-specific
// backend implements: a flat, row-major buffer of a fixed length, addressed
// only by position. Shape, strides, and the COW gate all live on [Variable];
// concept never sees a [dim.Dimensions].
type concept interface {
    DType() dtype.DType
    Len() int
    Clone() concept
    CloneEmpty() concept
    At(i int) any
    SetAt(i int, v any)
    EqualAt(i int, other concept, j int) bool
}

// typedStorage backs every arithmetic DType (Float64, Float32, Int32,
// Int64) with a [matrix.Grid] flat buffer, grounding element storage on the
// same dense-grid representation the rest of this module's matrix code
// uses.
type typedStorage[T operator.Number] struct {
    dt   dtype.DType
    grid matrix.M[T]
}

func newTypedStorage[T operator.Number](dt dtype.DType, n int) *typedStorage[T] {
    return &typedStorage[T]{dt: dt, grid: matrix.NewSharedGridUnchecked[T]([]int{n}, make([]T, n))}
}

func newTypedStorageFrom[T operator.Number](dt dtype.DType, data []T) *typedStorage[T] {
    return &typedStorage[T]{dt: dt, grid: matrix.NewSharedGridUnchecked[T]([]int{len(data)}, data)}
}

func (s *typedStorage[T]) DType() dtype.DType { return s.dt }
func (s *typedStorage[T]) Len() int           { return s.grid.Size() }

func (s *typedStorage[T]) Clone() concept {
    out := make([]T, s.Len())
    for i := 0; i < s.Len(); i++ {
        out[i] = s.grid.Get(i)
    }
    return &typedStorage[T]{dt: s.dt, grid: matrix.NewSharedGridUnchecked[T]([]int{len(out)}, out)}
}

func (s *typedStorage[T]) CloneEmpty() concept {
    return newTypedStorage[T](s.dt, 1)
}

func (s *typedStorage[T]) At(i int) any { return s.grid.Get(i) }

func (s *typedStorage[T]) SetAt(i int, v any) { s.grid.Set(i, v.(T)) }

func (s *typedStorage[T]) EqualAt(i int, other concept, j int) bool {
    o, ok := other.(*typedStorage[T])
    if !ok {
        return false
    }
    return s.grid.Get(i) == o.grid.Get(j)
}

func toFloat64(v any) float64 {
    switch x := v.(type) {
    case float64:
        return x
    case float32:
        return float64(x)
    case int64:
        return float64(x)
    case int32:
        return float64(x)
    }
    return 0
}

// boolStorage backs the Bool DType using a densely bit-packed sequence of
// bits.
type boolStorage struct {
    store *bitseq.Store
}

func newBoolStorage(n int) *boolStorage {
    s := &bitseq.Store{}
    s.Resize(n)
    return &boolStorage{store: s}
}

func (s *boolStorage) DType() dtype.DType { return dtype.Bool }
func (s *boolStorage) Len() int           { return s.store.Length() }

func (s *boolStorage) Clone() concept {
    out := newBoolStorage(s.Len())
    for i := 0; i < s.Len(); i++ {
        out.store.Set(i, s.store.Get(i))
    }
    return out
}

func (s *boolStorage) CloneEmpty() concept { return newBoolStorage(1) }
func (s *boolStorage) At(i int) any        { return s.store.Get(i) }
func (s *boolStorage) SetAt(i int, v any)  { s.store.Set(i, v.(bool)) }

func (s *boolStorage) EqualAt(i int, other concept, j int) bool {
    o, ok := other.(*boolStorage)
    if !ok {
        return false
    }
    return s.store.Get(i) == o.store.Get(j)
}

// genericStorage backs the non-arithmetic, non-bool DTypes (String, Vec3,
// and Dataset, the latter held as an opaque `any` to avoid importing the
// dataset package from here) behind the same flat [matrix.Grid] layout as
// typedStorage.
type genericStorage[T comparable] struct {
    dt   dtype.DType
    grid matrix.M[T]
}

func newGenericStorage[T comparable](dt dtype.DType, n int) *genericStorage[T] {
    return &genericStorage[T]{dt: dt, grid: matrix.NewSharedGridUnchecked[T]([]int{n}, make([]T, n))}
}

func newGenericStorageFrom[T comparable](dt dtype.DType, data []T) *genericStorage[T] {
    return &genericStorage[T]{dt: dt, grid: matrix.NewSharedGridUnchecked[T]([]int{len(data)}, data)}
}

func (s *genericStorage[T]) DType() dtype.DType { return s.dt }
func (s *genericStorage[T]) Len() int           { return s.grid.Size() }

func (s *genericStorage[T]) Clone() concept {
    out := make([]T, s.Len())
    for i := 0; i < s.Len(); i++ {
        out[i] = s.grid.Get(i)
    }
    return &genericStorage[T]{dt: s.dt, grid: matrix.NewSharedGridUnchecked[T]([]int{len(out)}, out)}
}

func (s *genericStorage[T]) CloneEmpty() concept {
    return newGenericStorage[T](s.dt, 1)
}

func (s *genericStorage[T]) At(i int) any     { return s.grid.Get(i) }
func (s *genericStorage[T]) SetAt(i int, v any) { s.grid.Set(i, v.(T)) }

func (s *genericStorage[T]) EqualAt(i int, other concept, j int) bool {
    o, ok := other.(*genericStorage[T])
    if !ok {
        return false
    }
    return s.grid.Get(i) == o.grid.Get(j)
}
