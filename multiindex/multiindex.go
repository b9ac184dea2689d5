// Package multiindex implements the shared iteration engine behind strided
// Variable arithmetic and MDZipView: given one outer iteration space and k
// sub-variables each occupying an arbitrary subset of its axes, it produces
// k linear offsets per step without reallocating on every call.
//
// Axis 0 is the fastest-varying axis (opposite of the dim package's
// outer-to-inner label order); callers translate between the two
// conventions at their own boundary.
package multiindex

import "fmt"

// MaxAxes bounds the outer iteration space to avoid heap allocation for the
// coordinate and extent arrays in the common case.
const MaxAxes = 6

// MultiIndex steps through an outer shape of at most MaxAxes axes, tracking
// one running linear offset per sub-variable. Per-axis offset deltas are
// precomputed at construction so that Increment does one add per
// sub-variable in the common (no carry) case, and a short carry chain on
// wrap-around.
type MultiIndex struct {
    ndim   int
    k      int
    extent [MaxAxes]int
    coord  [MaxAxes]int

    // strides[j][d] is sub-variable j's stride along outer axis d, 0 if j
    // does not depend on that axis (a broadcast axis for j).
    strides [][]int

    // delta[d][j] is added to offset[j], on top of delta[0..d-1][j], when
    // axis d advances by one and every faster axis has just wrapped back
    // to 0.
    delta [][]int

    offset    []int
    fullIndex int
    volume    int
}

// New builds a MultiIndex over outer axis extents, with one stride row per
// sub-variable. Each row must have len(extents) entries, using 0 for any
// axis the sub-variable does not depend on.
func New(extents []int, strides [][]int) (*MultiIndex, error) {
    ndim := len(extents)
    if ndim > MaxAxes {
        return nil, fmt.Errorf("multiindex: outer shape has %d axes, at most %d supported", ndim, MaxAxes)
    }
    for _, e := range extents {
        if e < 0 {
            return nil, fmt.Errorf("multiindex: negative extent %d", e)
        }
    }
    k := len(strides)
    for j, row := range strides {
        if len(row) != ndim {
            return nil, fmt.Errorf("multiindex: sub-variable %d has %d strides, want %d", j, len(row), ndim)
        }
    }

    m := &MultiIndex{ndim: ndim, k: k, strides: strides}
    copy(m.extent[:], extents)
    m.offset = make([]int, k)
    m.delta = make([][]int, ndim)
    for d := range m.delta {
        m.delta[d] = make([]int, k)
    }

    volume := 1
    for _, e := range extents {
        volume *= e
    }
    m.volume = volume
    if volume == 0 {
        // No positions to iterate; the delta table is never consulted.
        return m, nil
    }

    step := 1
    for d := 0; d < ndim; d++ {
        m.SetIndex(step)
        cur := append([]int{}, m.offset...)
        if d > 0 {
            m.SetIndex(step - 1)
            for j := 0; j < k; j++ {
                cur[j] -= m.offset[j]
            }
        }
        for d2 := 0; d2 < d; d2++ {
            for j := 0; j < k; j++ {
                cur[j] -= m.delta[d2][j]
            }
        }
        m.delta[d] = cur
        step *= extents[d]
    }
    m.SetIndex(0)
    return m, nil
}

// Volume returns the outer shape's total element count.
func (m *MultiIndex) Volume() int { return m.volume }

// Index returns the current flat position in the outer iteration, in
// row-major order with axis 0 fastest.
func (m *MultiIndex) Index() int { return m.fullIndex }

// Offset returns sub-variable j's current linear offset.
func (m *MultiIndex) Offset(j int) int { return m.offset[j] }

// Coord returns a copy of the current outer coordinate, axis 0 first.
func (m *MultiIndex) Coord() []int {
    return append([]int{}, m.coord[:m.ndim]...)
}

// SetIndex repositions the cursor at flat index idx, recomputing every
// sub-variable's offset from the coordinate decomposition of idx. Used both
// to seed the delta table and for random-access seeks.
func (m *MultiIndex) SetIndex(idx int) {
    m.fullIndex = idx
    if m.ndim == 0 || m.volume == 0 {
        for j := range m.offset {
            m.offset[j] = 0
        }
        return
    }
    remainder := idx
    for d := 0; d < m.ndim-1; d++ {
        m.coord[d] = remainder % m.extent[d]
        remainder /= m.extent[d]
    }
    m.coord[m.ndim-1] = remainder
    for j := 0; j < m.k; j++ {
        off := 0
        for d := 0; d < m.ndim; d++ {
            off += m.strides[j][d] * m.coord[d]
        }
        m.offset[j] = off
    }
}

// Increment advances the cursor by one position in row-major order (axis 0
// fastest), updating every sub-variable's offset. The common case is one
// add per sub-variable; wrapping a faster axis back to 0 triggers a short
// carry chain bounded by ndim.
func (m *MultiIndex) Increment() {
    for j := 0; j < m.k; j++ {
        m.offset[j] += m.delta[0][j]
    }
    m.coord[0]++
    if m.ndim > 0 && m.coord[0] == m.extent[0] {
        m.carry(1)
    }
    m.fullIndex++
}

func (m *MultiIndex) carry(d int) {
    if d >= m.ndim {
        return
    }
    for j := 0; j < m.k; j++ {
        m.offset[j] += m.delta[d][j]
    }
    m.coord[d-1] = 0
    m.coord[d]++
    if m.coord[d] == m.extent[d] {
        m.carry(d + 1)
    }
}
