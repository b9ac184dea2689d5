package variable_test

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/tawesoft/nxdata/dim"
    "github.com/tawesoft/nxdata/tag"
    "github.com/tawesoft/nxdata/unit"
    "github.com/tawesoft/nxdata/variable"
)

func TestScalarOps_LeaveUnitUnchanged(t *testing.T) {
    v, err := variable.New(tag.X, "", dims(t, []dim.Label{dim.X}, []int{3}), []float64{1, 2, 3})
    require.NoError(t, err)

    doubled, err := variable.MulScalar(v, 2)
    require.NoError(t, err)
    assert.Equal(t, []float64{2, 4, 6}, floats(doubled))
    assert.True(t, v.Unit().Equal(doubled.Unit()))

    shifted, err := variable.AddScalar(v, 10)
    require.NoError(t, err)
    assert.Equal(t, []float64{11, 12, 13}, floats(shifted))

    // the source is untouched by out-of-place scalar ops
    assert.Equal(t, []float64{1, 2, 3}, floats(v))
}

func TestScalarAssign_MutatesInPlace(t *testing.T) {
    v, err := variable.New(tag.Value, "counts", dims(t, []dim.Label{dim.X}, []int{2}), []float64{8, 6})
    require.NoError(t, err)

    require.NoError(t, variable.DivScalarAssign(&v, 2))
    assert.Equal(t, []float64{4, 3}, floats(v))
    require.NoError(t, variable.SubScalarAssign(&v, 1))
    assert.Equal(t, []float64{3, 2}, floats(v))
}

func TestScalarAssign_SharedHandleClonesFirst(t *testing.T) {
    v, err := variable.New(tag.Value, "counts", dims(t, []dim.Label{dim.X}, []int{2}), []float64{1, 2})
    require.NoError(t, err)
    w := v.WithName("copy")

    require.NoError(t, variable.MulScalarAssign(&w, 10))
    assert.Equal(t, []float64{1, 2}, floats(v))
    assert.Equal(t, []float64{10, 20}, floats(w))
}

func TestQuantityMul_ComposesUnits(t *testing.T) {
    v, err := variable.New(tag.X, "", dims(t, []dim.Label{dim.X}, []int{2}), []float64{2, 3})
    require.NoError(t, err)

    area, err := variable.MulQuantity(v, variable.Quantity{Value: 4, Unit: unit.Length})
    require.NoError(t, err)
    assert.Equal(t, []float64{8, 12}, floats(area))
    assert.True(t, area.Unit().Equal(unit.Area))

    back, err := variable.DivQuantity(area, variable.Quantity{Value: 4, Unit: unit.Length})
    require.NoError(t, err)
    assert.Equal(t, []float64{2, 3}, floats(back))
    assert.True(t, back.Unit().Equal(unit.Length))
}

func TestQuantityAdd_RequiresMatchingUnit(t *testing.T) {
    v, err := variable.New(tag.X, "", dims(t, []dim.Label{dim.X}, []int{2}), []float64{1, 2})
    require.NoError(t, err)

    shifted, err := variable.AddQuantity(v, variable.Quantity{Value: 1, Unit: unit.Length})
    require.NoError(t, err)
    assert.Equal(t, []float64{2, 3}, floats(shifted))

    _, err = variable.AddQuantity(v, variable.Quantity{Value: 1, Unit: unit.Time})
    require.Error(t, err)
}

func TestScalarOps_RejectNonArithmetic(t *testing.T) {
    v, err := variable.New(tag.RowLabel, "", dims(t, []dim.Label{dim.Row}, []int{2}), []string{"a", "b"})
    require.NoError(t, err)

    _, err = variable.AddScalar(v, 1)
    require.Error(t, err)
}

func TestNewFromStrided_DenseLayout(t *testing.T) {
    d := dims(t, []dim.Label{dim.Y, dim.X}, []int{2, 3})
    v, err := variable.NewFromStrided(tag.Value, "", d, []int{24, 8}, values(6))
    require.NoError(t, err)
    assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, floats(v))
}

func TestNewFromStrided_PaddedRows(t *testing.T) {
    // rows of 3 elements stored 4 apart: a padded source layout
    data := []float64{1, 2, 3, 0, 4, 5, 6, 0}
    d := dims(t, []dim.Label{dim.Y, dim.X}, []int{2, 3})
    v, err := variable.NewFromStrided(tag.Value, "", d, []int{32, 8}, data)
    require.NoError(t, err)
    assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, floats(v))
}

func TestNewFromStrided_ShortBufferRejected(t *testing.T) {
    d := dims(t, []dim.Label{dim.Y, dim.X}, []int{2, 3})
    _, err := variable.NewFromStrided(tag.Value, "", d, []int{32, 8}, values(6))
    require.Error(t, err)
}

func TestAssign_CopiesThroughView(t *testing.T) {
    v, err := variable.New(tag.Value, "", dims(t, []dim.Label{dim.Y, dim.X}, []int{2, 2}), []float64{1, 2, 3, 4})
    require.NoError(t, err)
    src, err := variable.New(tag.Value, "", dims(t, []dim.Label{dim.X}, []int{2}), []float64{9, 8})
    require.NoError(t, err)

    row1, err := v.SliceAt(dim.Y, 1)
    require.NoError(t, err)
    require.NoError(t, variable.Assign(&row1, src))
    assert.Equal(t, []float64{1, 2, 9, 8}, floats(v))
}

func TestAssign_SelfOverlapSafe(t *testing.T) {
    v, err := variable.New(tag.Value, "", dims(t, []dim.Label{dim.Y, dim.X}, []int{2, 2}), []float64{1, 2, 3, 4})
    require.NoError(t, err)

    row0, err := v.SliceAt(dim.Y, 0)
    require.NoError(t, err)
    row1, err := v.SliceAt(dim.Y, 1)
    require.NoError(t, err)

    require.NoError(t, variable.Assign(&row1, row0))
    assert.Equal(t, []float64{1, 2, 1, 2}, floats(v))
}
