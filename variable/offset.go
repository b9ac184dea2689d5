package variable

import "github.com/tawesoft/nxdata/dim"

// StrideOf returns the raw buffer stride v uses for label in its current
// layout (after any slicing, transposing, or reversing), and whether v
// depends on label at all. A co-iteration cursor (see the mdzip package)
// uses this to align its own per-axis steps to v's storage without v ever
// exposing its strides slice directly.
func (v Variable) StrideOf(label dim.Label) (int, bool) {
    pos, ok := v.dims.IndexOf(label)
    if !ok {
        return 0, false
    }
    return v.strides[pos], true
}

// BaseOffset returns v's own base buffer offset - the position of the
// element at v's all-zero coordinate.
func (v Variable) BaseOffset() int { return v.offset }

// AtOffset returns the element at an absolute buffer offset, such as one
// produced by adding BaseOffset to a co-iteration cursor's running total.
func (v Variable) AtOffset(offset int) any { return v.h.c.At(offset) }

// SetAtOffset writes value at an absolute buffer offset, cloning the
// underlying storage first if it is shared with another Variable.
func (v *Variable) SetAtOffset(offset int, value any) {
    v.ensureUnique()
    v.h.c.SetAt(offset, value)
}

// WithOffsetShift returns a view of v whose base offset is shifted by
// delta, borrowing storage so writes through the shifted view land in v's
// own buffer. Used to pre-bind a nested MDZipView's handles to an outer
// iteration's current coordinate.
func (v Variable) WithOffsetShift(delta int) Variable {
    nv := v.borrow()
    nv.offset = v.offset + delta
    return nv
}
