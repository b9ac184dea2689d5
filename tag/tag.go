// Package tag implements the fixed enumeration of column identities a
// [variable.Variable] may be inserted into a [dataset.Dataset] under,
// partitioned into the Coord, Data, and Attr ranges.
package tag

import (
    "github.com/tawesoft/nxdata/dim"
    "github.com/tawesoft/nxdata/dtype"
    "github.com/tawesoft/nxdata/unit"
)

// Class identifies which of the three non-overlapping tag ranges a Tag
// belongs to.
type Class int

const (
    Coord Class = iota
    Data
    Attr
)

func (c Class) String() string {
    switch c {
    case Coord:
        return "Coord"
    case Data:
        return "Data"
    case Attr:
        return "Attr"
    default:
        return "unknown"
    }
}

// Tag identifies the physical meaning of a Variable entry in a Dataset.
// Coord tags allow at most one unnamed entry per Dataset; Data and Attr
// tags allow multiple entries distinguished by name.
type Tag struct {
    id    int
    name  string
    class Class
    dtype dtype.DType
    unit  unit.Unit
    // dimLabel is non-empty iff this Coord tag is a dimension coordinate
    // permanently bound to that dimension label.
    dimLabel dim.Label
}

// String returns the tag's identifying name, e.g. "X" or "Value".
func (t Tag) String() string { return t.name }

// Class returns which of Coord, Data, or Attr this tag belongs to.
func (t Tag) Class() Class { return t.class }

// DType returns the default element kind values of this tag are stored as.
func (t Tag) DType() dtype.DType { return t.dtype }

// Unit returns the default physical unit of this tag.
func (t Tag) Unit() unit.Unit { return t.unit }

// IsDimensionCoord reports whether this tag is a Coord permanently bound to
// one dimension label (e.g. X is bound to the X label).
func (t Tag) IsDimensionCoord() bool {
    return t.class == Coord && t.dimLabel != dim.Invalid
}

// DimensionLabel returns the dimension label this tag is bound to, and
// whether it is in fact a dimension coordinate.
func (t Tag) DimensionLabel() (dim.Label, bool) {
    return t.dimLabel, t.IsDimensionCoord()
}

// Equal reports whether two tags are the same enumerated member.
func (t Tag) Equal(other Tag) bool { return t.id == other.id }

var nextID int

func define(name string, class Class, dt dtype.DType, u unit.Unit, dimLabel dim.Label) Tag {
    nextID++
    return Tag{id: nextID, name: name, class: class, dtype: dt, unit: u, dimLabel: dimLabel}
}

// Dimension coordinates: bound permanently to a dimension label.
var (
    X        = define("X", Coord, dtype.Float64, unit.Length, dim.X)
    Y        = define("Y", Coord, dtype.Float64, unit.Length, dim.Y)
    Z        = define("Z", Coord, dtype.Float64, unit.Length, dim.Z)
    Tof      = define("Tof", Coord, dtype.Float64, unit.Time, dim.Tof)
    Spectrum = define("Spectrum", Coord, dtype.Int32, unit.Dimensionless, dim.Spectrum)
    Time     = define("Time", Coord, dtype.Float64, unit.Time, dim.Time)
    Energy   = define("Energy", Coord, dtype.Float64, unit.Energy, dim.Energy)
    Row      = define("Row", Coord, dtype.Int32, unit.Dimensionless, dim.Row)
)

// Non-dimension coordinates: labels/attributes not bound to one axis.
var (
    DetectorId       = define("DetectorId", Coord, dtype.Int32, unit.Dimensionless, dim.Invalid)
    DetectorPosition = define("DetectorPosition", Coord, dtype.Vec3, unit.Length, dim.Invalid)
    DetectorMask     = define("DetectorMask", Coord, dtype.Bool, unit.Dimensionless, dim.Invalid)
    RowLabel         = define("RowLabel", Coord, dtype.String, unit.Dimensionless, dim.Invalid)
)

// Data tags: the physical quantities a dataset measures or derives.
var (
    Value    = define("Value", Data, dtype.Float64, unit.Counts, dim.Invalid)
    Variance = define("Variance", Data, dtype.Float64, unit.Counts, dim.Invalid)
)

// Attr tags: metadata that travels with data but is not a coordinate.
var (
    ExperimentLog = define("ExperimentLog", Attr, dtype.Dataset, unit.Dimensionless, dim.Invalid)
    MonitorTof    = define("MonitorTof", Attr, dtype.Dataset, unit.Time, dim.Invalid)
)

// dimensionCoords indexes the built-in dimension coordinates by the label
// they are bound to, for resolving a label to its coord tag (e.g. when
// rebinning along a label and looking up "the" coord on that label).
var dimensionCoords = map[dim.Label]Tag{
    dim.X:        X,
    dim.Y:        Y,
    dim.Z:        Z,
    dim.Tof:      Tof,
    dim.Spectrum: Spectrum,
    dim.Time:     Time,
    dim.Energy:   Energy,
    dim.Row:      Row,
}

// DimensionCoord returns the built-in Coord tag permanently bound to label,
// and whether one is registered.
func DimensionCoord(label dim.Label) (Tag, bool) {
    t, ok := dimensionCoords[label]
    return t, ok
}
