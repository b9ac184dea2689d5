package mdzip_test

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/tawesoft/nxdata/dataset"
    "github.com/tawesoft/nxdata/dim"
    "github.com/tawesoft/nxdata/mdzip"
    "github.com/tawesoft/nxdata/tag"
    "github.com/tawesoft/nxdata/variable"
)

func dims(t *testing.T, labels []dim.Label, extents []int) dim.Dimensions {
    t.Helper()
    d, err := dim.New(labels, extents)
    require.NoError(t, err)
    return d
}

func mustVar(t *testing.T, tg tag.Tag, name string, d dim.Dimensions, values any) variable.Variable {
    t.Helper()
    v, err := variable.New(tg, name, d, values)
    require.NoError(t, err)
    return v
}

// Bin-edge co-iteration over a Tof=3-edge coord and a
// (Spectrum:4, Tof:2) data variable - 4 spectra x 2 bins, edges (10,20)
// then (20,30) for every spectrum, values 1..8 in row-major order.
func TestView_BinEdgesOverSpectra(t *testing.T) {
    ds := dataset.New()
    require.NoError(t, ds.Insert(mustVar(t, tag.Tof, "", dims(t, []dim.Label{dim.Tof}, []int{3}), []float64{10, 20, 30})))
    require.NoError(t, ds.Insert(mustVar(t, tag.Value, "", dims(t, []dim.Label{dim.Spectrum, dim.Tof}, []int{4, 2}), []float64{1, 2, 3, 4, 5, 6, 7, 8})))

    view, err := mdzip.Build(ds, nil, mdzip.BinHandle(tag.Tof, ""), mdzip.ReadHandle(tag.Value, ""))
    require.NoError(t, err)
    assert.Equal(t, 8, view.Len())

    wantLeft := []float64{10, 20, 10, 20, 10, 20, 10, 20}
    wantRight := []float64{20, 30, 20, 30, 20, 30, 20, 30}
    wantValue := []float64{1, 2, 3, 4, 5, 6, 7, 8}

    view.Reset()
    for i := 0; i < view.Len(); i++ {
        left, right, err := view.Bin(tag.Tof, "")
        require.NoError(t, err)
        assert.Equal(t, wantLeft[i], left.(float64))
        assert.Equal(t, wantRight[i], right.(float64))

        val, err := view.At(tag.Value, "")
        require.NoError(t, err)
        assert.Equal(t, wantValue[i], val.(float64))

        if i < view.Len()-1 {
            view.Next()
        }
    }
}

func TestView_WriteHandleRequiresExactDims(t *testing.T) {
    ds := dataset.New()
    require.NoError(t, ds.Insert(mustVar(t, tag.Value, "", dims(t, []dim.Label{dim.X}, []int{3}), []float64{1, 2, 3})))
    require.NoError(t, ds.Insert(mustVar(t, tag.Variance, "", dims(t, []dim.Label{dim.X}, []int{3}), []float64{0, 0, 0})))

    view, err := mdzip.Build(ds, nil, mdzip.ReadHandle(tag.Value, ""), mdzip.WriteHandle(tag.Variance, ""))
    require.NoError(t, err)

    for view.Reset(); view.Index() < view.Len(); view.Next() {
        val, err := view.At(tag.Value, "")
        require.NoError(t, err)
        require.NoError(t, view.Set(tag.Variance, "", val.(float64)*val.(float64)))
        if view.Index() == view.Len()-1 {
            break
        }
    }

    variance, err := ds.Get(tag.Variance, "")
    require.NoError(t, err)
    got := make([]float64, variance.Size())
    for i := range got {
        got[i] = variance.At(i).(float64)
    }
    assert.Equal(t, []float64{1, 4, 9}, got)

    // a write handle narrower than the iteration dimensions is rejected
    require.NoError(t, ds.Insert(mustVar(t, tag.Value, "wide", dims(t, []dim.Label{dim.Y, dim.X}, []int{2, 3}), []float64{1, 2, 3, 4, 5, 6})))
    _, err = mdzip.Build(ds, nil, mdzip.ReadHandle(tag.Value, "wide"), mdzip.WriteHandle(tag.Variance, ""))
    assert.Error(t, err)
}

func TestView_StdDevDerivedFromVariance(t *testing.T) {
    ds := dataset.New()
    require.NoError(t, ds.Insert(mustVar(t, tag.Value, "signal", dims(t, []dim.Label{dim.X}, []int{2}), []float64{1, 2})))
    require.NoError(t, ds.Insert(mustVar(t, tag.Variance, "signal", dims(t, []dim.Label{dim.X}, []int{2}), []float64{4, 9})))

    view, err := mdzip.Build(ds, nil, mdzip.StdDevHandle("signal"))
    require.NoError(t, err)

    view.Reset()
    s0, err := view.StdDev("signal")
    require.NoError(t, err)
    assert.Equal(t, 2.0, s0)

    view.Next()
    s1, err := view.StdDev("signal")
    require.NoError(t, err)
    assert.Equal(t, 3.0, s1)
}

func TestView_NestedFixesOuterLabel(t *testing.T) {
    ds := dataset.New()
    require.NoError(t, ds.Insert(mustVar(t, tag.Value, "", dims(t, []dim.Label{dim.Spectrum, dim.Tof}, []int{2, 3}), []float64{1, 2, 3, 4, 5, 6})))

    outer, err := mdzip.Build(ds, nil, mdzip.ReadHandle(tag.Value, ""))
    require.NoError(t, err)

    outer.Seek(3) // second spectrum row (Tof is the fastest-varying axis)
    inner, err := outer.Nested([]dim.Label{dim.Spectrum}, mdzip.ReadHandle(tag.Value, ""))
    require.NoError(t, err)
    assert.Equal(t, 3, inner.Len())

    var got []float64
    for inner.Reset(); ; inner.Next() {
        v, err := inner.At(tag.Value, "")
        require.NoError(t, err)
        got = append(got, v.(float64))
        if inner.Index() == inner.Len()-1 {
            break
        }
    }
    assert.Equal(t, []float64{4, 5, 6}, got)
}
