package model

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestComputeUpdateCost_PaperExample verifies the worked example from the
// paper: 10M tuples, 100K memtable, 5 indexes, 50x seek cost.
func TestComputeUpdateCost_PaperExample(t *testing.T) {
	p := ParameterSet{
		TotalTuples:      10_000_000,
		MemtableCapacity: 100_000,
		IndexCount:       5,
		DiskSeekCost:     50,
	}

	result, err := ComputeUpdateCost(p)
	require.NoError(t, err)

	// disk penalty = log10(9,900,000) * 50 ≈ 349.78
	expectedDisk := math.Log10(9_900_000) * 50
	require.InDelta(t, 1+expectedDisk+9, result.RegularCost, 0.01, "regular cost")
	require.Equal(t, 5.0, result.DeferredCost, "deferred cost is exactly K")
	require.InDelta(t, (1+expectedDisk+9)/5, result.Speedup, 0.01, "speedup ~72x")
}

// TestComputeUpdateCost_DeferredCostIsIndexCount verifies deferred cost
// equals K exactly for any valid configuration (mem unit fixed at 1).
func TestComputeUpdateCost_DeferredCostIsIndexCount(t *testing.T) {
	for _, k := range []int{1, 2, 7, 20, 100} {
		p := DefaultParameters()
		p.IndexCount = k

		result, err := ComputeUpdateCost(p)
		require.NoError(t, err)
		require.Equal(t, float64(k), result.DeferredCost, "K=%d", k)
		require.Equal(t, result.RegularCost/float64(k), result.Speedup, "speedup must be regular/K for K=%d", k)
	}
}

// TestComputeUpdateCost_InvalidInputs verifies out-of-domain parameters are
// rejected before any formula runs, with the offending field identified.
func TestComputeUpdateCost_InvalidInputs(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ParameterSet)
		wantField string
	}{
		{
			name:      "zero tuples",
			mutate:    func(p *ParameterSet) { p.TotalTuples = 0 },
			wantField: "totalTuples",
		},
		{
			name:      "memtable equals total",
			mutate:    func(p *ParameterSet) { p.MemtableCapacity = p.TotalTuples },
			wantField: "memtableCapacity",
		},
		{
			name:      "memtable exceeds total",
			mutate:    func(p *ParameterSet) { p.MemtableCapacity = p.TotalTuples + 1 },
			wantField: "memtableCapacity",
		},
		{
			name:      "zero memtable",
			mutate:    func(p *ParameterSet) { p.MemtableCapacity = 0 },
			wantField: "memtableCapacity",
		},
		{
			name:      "zero indexes",
			mutate:    func(p *ParameterSet) { p.IndexCount = 0 },
			wantField: "indexCount",
		},
		{
			name:      "zero seek cost",
			mutate:    func(p *ParameterSet) { p.DiskSeekCost = 0 },
			wantField: "diskSeekCost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.mutate(&p)

			_, err := ComputeUpdateCost(p)
			require.Error(t, err)

			var invalid InvalidParameterError
			require.True(t, errors.As(err, &invalid), "expected InvalidParameterError, got %T", err)
			require.Equal(t, tt.wantField, invalid.Field)
		})
	}
}

// TestComputeUpdateCost_SmallTree exercises the log guard near the domain
// edge: with a single on-disk tuple the disk penalty collapses to zero but
// the computation must not fail.
func TestComputeUpdateCost_SmallTree(t *testing.T) {
	p := ParameterSet{
		TotalTuples:      2,
		MemtableCapacity: 1,
		IndexCount:       1,
		DiskSeekCost:     50,
	}

	result, err := ComputeUpdateCost(p)
	require.NoError(t, err)

	// log10(max(1, 2-1)) = 0, so regular = 1 + 0 + 1 = 2
	require.Equal(t, 2.0, result.RegularCost)
	require.Equal(t, 1.0, result.DeferredCost)
	require.Equal(t, 2.0, result.Speedup)
}

// TestSweepCostByIndexCount_Monotonic verifies that speedup never increases
// as the index count grows: the disk-penalty saving is fixed while deferred
// cost grows linearly with K.
func TestSweepCostByIndexCount_Monotonic(t *testing.T) {
	p := DefaultParameters()

	points, err := SweepCostByIndexCount(p, DefaultSweepRange())
	require.NoError(t, err)
	require.Len(t, points, 20)

	for i := 1; i < len(points); i++ {
		require.LessOrEqual(t, points[i].Speedup, points[i-1].Speedup,
			"speedup increased from K=%d to K=%d", points[i-1].IndexCount, points[i].IndexCount)
	}
}

// TestSweepCostByIndexCount_PreservesOrder verifies the sweep follows the
// caller's K ordering, whatever it is.
func TestSweepCostByIndexCount_PreservesOrder(t *testing.T) {
	p := DefaultParameters()
	kRange := []int{7, 1, 20, 3}

	points, err := SweepCostByIndexCount(p, kRange)
	require.NoError(t, err)
	require.Len(t, points, len(kRange))

	for i, k := range kRange {
		require.Equal(t, k, points[i].IndexCount)

		pk := p
		pk.IndexCount = k
		single, err := ComputeUpdateCost(pk)
		require.NoError(t, err)
		require.Equal(t, single.Speedup, points[i].Speedup, "sweep must match single-point evaluation at K=%d", k)
	}
}

// TestSweepCostByIndexCount_InvalidRange verifies an empty or out-of-domain
// K range is rejected.
func TestSweepCostByIndexCount_InvalidRange(t *testing.T) {
	p := DefaultParameters()

	_, err := SweepCostByIndexCount(p, nil)
	require.Error(t, err, "empty range")

	_, err = SweepCostByIndexCount(p, []int{1, 0, 2})
	require.Error(t, err, "K=0 inside range")

	var invalid InvalidParameterError
	require.True(t, errors.As(err, &invalid))
	require.Equal(t, "indexCount", invalid.Field)
}

// TestDefaultSweepRange verifies the dashboard's sweep domain.
func TestDefaultSweepRange(t *testing.T) {
	ks := DefaultSweepRange()
	require.Len(t, ks, 20)
	require.Equal(t, 1, ks[0])
	require.Equal(t, 20, ks[19])
}
