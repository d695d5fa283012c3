package model

import "math"

// memUnitCost is the cost of one memory-resident index probe. All other
// costs are expressed as multiples of it.
const memUnitCost = 1.0

// CostResult compares the per-update cost of the two strategies in
// abstract operation units.
type CostResult struct {
	RegularCost  float64 `json:"regularCost"`  // read-verify-then-write update
	DeferredCost float64 `json:"deferredCost"` // blind write, cleanup deferred to compaction
	Speedup      float64 `json:"speedup"`      // regularCost / deferredCost
}

// SpeedupPoint is one sample of a speedup-vs-index-count sweep.
type SpeedupPoint struct {
	IndexCount int     `json:"indexCount"`
	Speedup    float64 `json:"speedup"`
}

// ComputeUpdateCost derives the asymptotic cost of a regular update versus
// a deferred one for the given configuration.
//
// A regular update pays one memtable probe, one random disk search over the
// N-m tuples that live on disk (approximated as log10 of that count, scaled
// by the seek cost ratio), and a read-plus-write against each index: 2K-1
// additional memory operations. A deferred update is K blind in-memory
// writes, one per index, with no disk access on the write path.
func ComputeUpdateCost(p ParameterSet) (CostResult, error) {
	if err := p.validateCostInputs(); err != nil {
		return CostResult{}, err
	}

	// max(1, N-m) keeps the log argument positive. With m < N enforced
	// above this only matters when N-m would round to nothing, but the
	// guard stays: a log domain error must be impossible.
	onDiskTuples := math.Max(1, float64(p.TotalTuples-p.MemtableCapacity))
	diskPenalty := math.Log10(onDiskTuples) * float64(p.DiskSeekCost)

	regular := memUnitCost + diskPenalty + memUnitCost*float64(2*p.IndexCount-1)
	deferred := memUnitCost * float64(p.IndexCount)
	if deferred < memUnitCost {
		deferred = memUnitCost // K >= 1 guarantees this today; guard the division anyway
	}

	return CostResult{
		RegularCost:  regular,
		DeferredCost: deferred,
		Speedup:      regular / deferred,
	}, nil
}

// DefaultSweepRange returns the index counts the dashboard sweeps over.
func DefaultSweepRange() []int {
	ks := make([]int, 20)
	for i := range ks {
		ks[i] = i + 1
	}
	return ks
}

// SweepCostByIndexCount evaluates the speedup for each index count in
// kRange, holding the rest of p fixed. Output order follows kRange.
// The curve shows how the advantage of blind writes decays as more
// secondary indexes share the fixed disk-search saving.
func SweepCostByIndexCount(p ParameterSet, kRange []int) ([]SpeedupPoint, error) {
	if len(kRange) == 0 {
		return nil, errInvalidParameter("kRange", "must contain at least one index count")
	}

	points := make([]SpeedupPoint, 0, len(kRange))
	for _, k := range kRange {
		pk := p
		pk.IndexCount = k
		result, err := ComputeUpdateCost(pk)
		if err != nil {
			return nil, err
		}
		points = append(points, SpeedupPoint{IndexCount: k, Speedup: result.Speedup})
	}
	return points, nil
}
