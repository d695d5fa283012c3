package model

// ParameterSet holds the simulation inputs shared by all three calculators.
// It is a value object: built once per request from the dashboard controls,
// validated, passed by value, never mutated.
//
// Not every calculator reads every field. The cost model uses TotalTuples,
// MemtableCapacity, IndexCount and DiskSeekCost; the amplification simulator
// uses WriteLoadOpsPerSec and FlushThresholdMB; the tradeoff model uses
// WriteRatioPct.
type ParameterSet struct {
	TotalTuples        int     `json:"totalTuples" yaml:"totalTuples"`               // N: tuples in the tree (N >= 1)
	MemtableCapacity   int     `json:"memtableCapacity" yaml:"memtableCapacity"`     // m: tuples held in memory (1 <= m < N)
	IndexCount         int     `json:"indexCount" yaml:"indexCount"`                 // K: 1 primary + (K-1) secondary indexes (K >= 1)
	DiskSeekCost       int     `json:"diskSeekCost" yaml:"diskSeekCost"`             // random disk access cost relative to one memory access (>= 1)
	WriteLoadOpsPerSec float64 `json:"writeLoadOpsPerSec" yaml:"writeLoadOpsPerSec"` // incoming write rate (> 0)
	FlushThresholdMB   float64 `json:"flushThresholdMB" yaml:"flushThresholdMB"`     // memtable flush size in MB (> 0)
	WriteRatioPct      float64 `json:"writeRatioPct" yaml:"writeRatioPct"`           // write fraction of the workload (0..100)
}

// DefaultParameters returns the dashboard's default slider positions.
func DefaultParameters() ParameterSet {
	return ParameterSet{
		TotalTuples:        10_000_000, // 10M tuples
		MemtableCapacity:   100_000,    // 100K in-memory tuples
		IndexCount:         5,          // 1 primary + 4 secondary
		DiskSeekCost:       50,         // one seek costs ~50 memory accesses
		WriteLoadOpsPerSec: 50_000,     // slider range 10K-100K
		FlushThresholdMB:   128,        // slider range 64-512
		WriteRatioPct:      50,
	}
}

// Validate checks every field against its domain. Validation always runs
// before any formula is evaluated; nothing is silently clamped here.
func (p ParameterSet) Validate() error {
	if err := p.validateCostInputs(); err != nil {
		return err
	}
	if err := p.validateAmplificationInputs(); err != nil {
		return err
	}
	return p.validateTradeoffInputs()
}

// validateCostInputs checks the fields consumed by the update cost model.
func (p ParameterSet) validateCostInputs() error {
	if p.TotalTuples < 1 {
		return errInvalidParameter("totalTuples", "must be >= 1")
	}
	if p.MemtableCapacity < 1 {
		return errInvalidParameter("memtableCapacity", "must be >= 1")
	}
	if p.MemtableCapacity >= p.TotalTuples {
		return errInvalidParameter("memtableCapacity", "must be < totalTuples")
	}
	if p.IndexCount < 1 {
		return errInvalidParameter("indexCount", "must be >= 1")
	}
	if p.DiskSeekCost < 1 {
		return errInvalidParameter("diskSeekCost", "must be >= 1")
	}
	return nil
}

// validateAmplificationInputs checks the fields consumed by the write
// amplification simulator.
func (p ParameterSet) validateAmplificationInputs() error {
	if p.WriteLoadOpsPerSec <= 0 {
		return errInvalidParameter("writeLoadOpsPerSec", "must be > 0")
	}
	if p.FlushThresholdMB <= 0 {
		return errInvalidParameter("flushThresholdMB", "must be > 0")
	}
	return nil
}

// validateTradeoffInputs checks the fields consumed by the tradeoff model.
func (p ParameterSet) validateTradeoffInputs() error {
	if p.WriteRatioPct < 0 || p.WriteRatioPct > 100 {
		return errInvalidParameter("writeRatioPct", "must be between 0 and 100")
	}
	return nil
}
