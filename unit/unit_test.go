package unit_test

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/tawesoft/nxdata/unit"
)

func TestAdd_RequiresEqualUnits(t *testing.T) {
    u, err := unit.Add(unit.Length, unit.Length)
    require.NoError(t, err)
    assert.True(t, u.Equal(unit.Length))

    _, err = unit.Add(unit.Length, unit.Time)
    require.Error(t, err)
}

func TestMul_ComposesDimensions(t *testing.T) {
    u, err := unit.Mul(unit.Length, unit.Length)
    require.NoError(t, err)
    assert.True(t, u.Equal(unit.Area))

    u, err = unit.Mul(unit.Counts, unit.Dimensionless)
    require.NoError(t, err)
    assert.True(t, u.Equal(unit.Counts))
}

func TestDiv_InvertsMul(t *testing.T) {
    u, err := unit.Div(unit.Area, unit.Length)
    require.NoError(t, err)
    assert.True(t, u.Equal(unit.Length))

    u, err = unit.Div(unit.Length, unit.Length)
    require.NoError(t, err)
    assert.True(t, u.Equal(unit.Dimensionless))
}

func TestCounts_IsItsOwnDimension(t *testing.T) {
    assert.False(t, unit.Counts.Equal(unit.Dimensionless))
    assert.False(t, unit.Counts.Equal(unit.Energy))

    perTime, err := unit.Div(unit.Counts, unit.Time)
    require.NoError(t, err)
    assert.False(t, perTime.Equal(unit.Counts))

    back, err := unit.Mul(perTime, unit.Time)
    require.NoError(t, err)
    assert.True(t, back.Equal(unit.Counts))
}

func TestZeroValue_IsDimensionless(t *testing.T) {
    var u unit.Unit
    assert.True(t, u.Equal(unit.Dimensionless))
    assert.Equal(t, "1", u.String())
}

func TestString_IsDeterministic(t *testing.T) {
    a, err := unit.Mul(unit.Length, unit.Time)
    require.NoError(t, err)
    b, err := unit.Mul(unit.Time, unit.Length)
    require.NoError(t, err)
    assert.Equal(t, a.String(), b.String())
}

func TestMustAdd_PanicsOnMismatch(t *testing.T) {
    assert.NotPanics(t, func() { unit.MustAdd(unit.Energy, unit.Energy) })
    assert.Panics(t, func() { unit.MustAdd(unit.Energy, unit.Time) })
}
