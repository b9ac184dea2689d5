// Package errs implements the typed error variants produced by the rest of
// this module.
//
// Every error carries a Kind, usable with [errors.Is], and a fully rendered
// message that embeds the names, tags, dimensions, and units relevant to the
// failure, following the same deterministic-formatting philosophy as the
// [must] package's wrapped errors.
package errs

import "fmt"

// DimensionKind enumerates the ways an operation on [dim.Dimensions] can
// fail.
type DimensionKind int

const (
    DimensionNotFound DimensionKind = iota
    DimensionAlreadyExists
    DimensionMismatch
    DimensionLength
    DimensionNotJoint
    DimensionSliceOutOfRange
)

func (k DimensionKind) String() string {
    switch k {
    case DimensionNotFound:
        return "not found"
    case DimensionAlreadyExists:
        return "already exists"
    case DimensionMismatch:
        return "mismatch"
    case DimensionLength:
        return "invalid length"
    case DimensionNotJoint:
        return "not joint"
    case DimensionSliceOutOfRange:
        return "slice out of range"
    default:
        return "unknown"
    }
}

// DimensionError is returned by [dim.Dimensions] and any operation that
// inspects or combines dimensions.
type DimensionError struct {
    Kind    DimensionKind
    Message string
}

func (e *DimensionError) Error() string { return "dimension error: " + e.Kind.String() + ": " + e.Message }

func (e *DimensionError) Is(target error) bool {
    t, ok := target.(*DimensionError)
    if !ok {
        return false
    }
    return t.Kind == e.Kind
}

func NewDimensionNotFound(label, dims string) *DimensionError {
    return &DimensionError{DimensionNotFound, fmt.Sprintf("label %s not present in dimensions %s", label, dims)}
}

func NewDimensionAlreadyExists(label, dims string) *DimensionError {
    return &DimensionError{DimensionAlreadyExists, fmt.Sprintf("label %s already present in dimensions %s", label, dims)}
}

func NewDimensionMismatch(a, b string) *DimensionError {
    return &DimensionError{DimensionMismatch, fmt.Sprintf("dimensions %s and %s are not compatible", a, b)}
}

func NewDimensionLength(label string, length int) *DimensionError {
    return &DimensionError{DimensionLength, fmt.Sprintf("label %s has invalid extent or length %d", label, length)}
}

func NewDimensionNotJoint(label, dims string) *DimensionError {
    return &DimensionError{DimensionNotJoint, fmt.Sprintf("label %s of %s is not a subset of the iteration dimensions", label, dims)}
}

func NewSliceOutOfRange(label string, begin, end, extent int) *DimensionError {
    return &DimensionError{DimensionSliceOutOfRange, fmt.Sprintf("slice [%d, %d) on label %s out of range for extent %d", begin, end, label, extent)}
}

// UnitKind enumerates the ways a [unit.Unit] operation can fail.
type UnitKind int

const (
    UnitMismatch UnitKind = iota
    UnitUnsupported
)

func (k UnitKind) String() string {
    switch k {
    case UnitMismatch:
        return "mismatch"
    case UnitUnsupported:
        return "unsupported"
    default:
        return "unknown"
    }
}

type UnitError struct {
    Kind    UnitKind
    Message string
}

func (e *UnitError) Error() string { return "unit error: " + e.Kind.String() + ": " + e.Message }

func (e *UnitError) Is(target error) bool {
    t, ok := target.(*UnitError)
    if !ok {
        return false
    }
    return t.Kind == e.Kind
}

func NewUnitMismatch(a, b string) *UnitError {
    return &UnitError{UnitMismatch, fmt.Sprintf("cannot combine unit %s with unit %s", a, b)}
}

func NewUnitUnsupported(a, b string) *UnitError {
    return &UnitError{UnitUnsupported, fmt.Sprintf("no rule to combine unit %s with unit %s", a, b)}
}

// TypeKind enumerates the ways an element-type check can fail.
type TypeKind int

const (
    TypeNotArithmetic TypeKind = iota
    TypeDTypeMismatch
)

func (k TypeKind) String() string {
    switch k {
    case TypeNotArithmetic:
        return "not arithmetic"
    case TypeDTypeMismatch:
        return "dtype mismatch"
    default:
        return "unknown"
    }
}

type TypeError struct {
    Kind    TypeKind
    Message string
}

func (e *TypeError) Error() string { return "type error: " + e.Kind.String() + ": " + e.Message }

func (e *TypeError) Is(target error) bool {
    t, ok := target.(*TypeError)
    if !ok {
        return false
    }
    return t.Kind == e.Kind
}

func NewTypeNotArithmetic(dtype string) *TypeError {
    return &TypeError{TypeNotArithmetic, fmt.Sprintf("element type %s does not support arithmetic", dtype)}
}

func NewTypeDTypeMismatch(a, b string) *TypeError {
    return &TypeError{TypeDTypeMismatch, fmt.Sprintf("element type %s does not match %s", a, b)}
}

// DatasetKind enumerates the ways a [dataset.Dataset] operation can fail.
type DatasetKind int

const (
    DatasetDuplicate DatasetKind = iota
    DatasetNotFound
    DatasetCoordMismatch
    DatasetEdgeConflict
    DatasetNotWritable
)

func (k DatasetKind) String() string {
    switch k {
    case DatasetDuplicate:
        return "duplicate"
    case DatasetNotFound:
        return "not found"
    case DatasetCoordMismatch:
        return "coord mismatch"
    case DatasetEdgeConflict:
        return "edge conflict"
    case DatasetNotWritable:
        return "not writable"
    default:
        return "unknown"
    }
}

type DatasetError struct {
    Kind    DatasetKind
    Message string
}

func (e *DatasetError) Error() string { return "dataset error: " + e.Kind.String() + ": " + e.Message }

func (e *DatasetError) Is(target error) bool {
    t, ok := target.(*DatasetError)
    if !ok {
        return false
    }
    return t.Kind == e.Kind
}

func NewDatasetDuplicate(tag, name string) *DatasetError {
    return &DatasetError{DatasetDuplicate, fmt.Sprintf("entry (%s, %q) already exists", tag, name)}
}

func NewDatasetNotFound(tag, name string) *DatasetError {
    return &DatasetError{DatasetNotFound, fmt.Sprintf("no entry (%s, %q)", tag, name)}
}

func NewDatasetCoordMismatch(name string) *DatasetError {
    return &DatasetError{DatasetCoordMismatch, fmt.Sprintf("coord %q differs between operands", name)}
}

func NewDatasetEdgeConflict(label string) *DatasetError {
    return &DatasetError{DatasetEdgeConflict, fmt.Sprintf("label %s already has an edge coord", label)}
}

func NewDatasetNotWritable(tag, name string) *DatasetError {
    return &DatasetError{DatasetNotWritable, fmt.Sprintf("entry (%s, %q) is not a write handle", tag, name)}
}

// RebinKind enumerates the ways a rebin operation can fail.
type RebinKind int

const (
    RebinNotEdge RebinKind = iota
    RebinNotContinuous
    RebinMissingCoord
    RebinNotDimensionCoord
    RebinAuxSizeMismatch
)

func (k RebinKind) String() string {
    switch k {
    case RebinNotEdge:
        return "not edge"
    case RebinNotContinuous:
        return "not continuous"
    case RebinMissingCoord:
        return "missing coord"
    case RebinNotDimensionCoord:
        return "not dimension coord"
    case RebinAuxSizeMismatch:
        return "aux size mismatch"
    default:
        return "unknown"
    }
}

type RebinError struct {
    Kind    RebinKind
    Message string
}

func (e *RebinError) Error() string { return "rebin error: " + e.Kind.String() + ": " + e.Message }

func (e *RebinError) Is(target error) bool {
    t, ok := target.(*RebinError)
    if !ok {
        return false
    }
    return t.Kind == e.Kind
}

func NewRebinNotEdge(label string) *RebinError {
    return &RebinError{RebinNotEdge, fmt.Sprintf("old coord on label %s is not an edge coord", label)}
}

func NewRebinNotContinuous(name string) *RebinError {
    return &RebinError{RebinNotContinuous, fmt.Sprintf("new coord %q is not a continuous real-valued coord", name)}
}

func NewRebinMissingCoord(label string) *RebinError {
    return &RebinError{RebinMissingCoord, fmt.Sprintf("no dimension coord bound to label %s", label)}
}

func NewRebinNotDimensionCoord(name string) *RebinError {
    return &RebinError{RebinNotDimensionCoord, fmt.Sprintf("coord %q is not a dimension coord", name)}
}

func NewRebinAuxSizeMismatch(label string) *RebinError {
    return &RebinError{RebinAuxSizeMismatch, fmt.Sprintf("auxiliary dimension %s of the new coord does not match the variable", label)}
}

// VarianceKind enumerates the ways propagating a Data::Variance entry
// through dataset arithmetic can fail.
type VarianceKind int

const (
    VarianceUnmatched VarianceKind = iota
    VarianceValueMissing
)

func (k VarianceKind) String() string {
    switch k {
    case VarianceUnmatched:
        return "unmatched"
    case VarianceValueMissing:
        return "value missing"
    default:
        return "unknown"
    }
}

type VarianceError struct {
    Kind    VarianceKind
    Message string
}

func (e *VarianceError) Error() string { return "variance error: " + e.Kind.String() + ": " + e.Message }

func (e *VarianceError) Is(target error) bool {
    t, ok := target.(*VarianceError)
    if !ok {
        return false
    }
    return t.Kind == e.Kind
}

func NewVarianceUnmatched(name string) *VarianceError {
    return &VarianceError{VarianceUnmatched, fmt.Sprintf("variance for %q is present on only one operand", name)}
}

func NewVarianceValueMissing(name string) *VarianceError {
    return &VarianceError{VarianceValueMissing, fmt.Sprintf("variance for %q has no matching value entry", name)}
}
