package model

import (
	"encoding/json"
	"fmt"
)

// WorkloadVerdict classifies a workload by which update strategy it favors
type WorkloadVerdict int

const (
	VerdictReadHeavy  WorkloadVerdict = iota // standard strategy favored
	VerdictWriteHeavy                        // deferred strategy favored
)

// String returns the string representation of WorkloadVerdict
func (v WorkloadVerdict) String() string {
	switch v {
	case VerdictWriteHeavy:
		return "write-heavy"
	case VerdictReadHeavy:
		return "read-heavy"
	default:
		return "read-heavy"
	}
}

// ParseWorkloadVerdict parses a string into WorkloadVerdict
func ParseWorkloadVerdict(s string) (WorkloadVerdict, error) {
	switch s {
	case "write-heavy":
		return VerdictWriteHeavy, nil
	case "read-heavy":
		return VerdictReadHeavy, nil
	default:
		return VerdictReadHeavy, fmt.Errorf("invalid workload verdict: %s (must be 'read-heavy' or 'write-heavy')", s)
	}
}

// MarshalJSON implements json.Marshaler for WorkloadVerdict
func (v WorkloadVerdict) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON implements json.Unmarshaler for WorkloadVerdict
func (v *WorkloadVerdict) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseWorkloadVerdict(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// TradeoffPoint captures both strategies' throughput and read latency at
// one write ratio.
type TradeoffPoint struct {
	WritePct           float64 `json:"writePct"`
	ThroughputStandard float64 `json:"throughputStandard"` // ops/sec
	ThroughputDeferred float64 `json:"throughputDeferred"` // ops/sec
	LatencyStandardMs  float64 `json:"latencyStandardMs"`
	LatencyDeferredMs  float64 `json:"latencyDeferredMs"`
}

// TradeoffPoint evaluates both strategies at a single write ratio.
//
// Deferred updates turn writes into blind memory appends, so deferred
// throughput climbs much faster with the write fraction. The price is read
// latency: dirty secondary-index entries accumulate between compactions,
// and reads must sift through them. The standard strategy keeps indexes
// consistent at write time, so its read latency is flat.
func (c Calibration) TradeoffPoint(writePct float64) (TradeoffPoint, error) {
	p := ParameterSet{WriteRatioPct: writePct}
	if err := p.validateTradeoffInputs(); err != nil {
		return TradeoffPoint{}, err
	}
	return TradeoffPoint{
		WritePct:           writePct,
		ThroughputStandard: c.BaseThroughputOps + writePct*c.StandardThroughputSlope,
		ThroughputDeferred: c.BaseThroughputOps + writePct*c.DeferredThroughputSlope,
		LatencyStandardMs:  c.BaseReadLatencyMs,
		LatencyDeferredMs:  c.BaseReadLatencyMs + writePct*c.DeferredLatencySlope,
	}, nil
}

// TradeoffCurve evaluates the tradeoff at each sample in order. It is the
// pointwise application of TradeoffPoint, so the curve and the dashboard's
// single-point readout can never drift apart.
func (c Calibration) TradeoffCurve(writePctSamples []float64) ([]TradeoffPoint, error) {
	if len(writePctSamples) == 0 {
		return nil, errInvalidParameter("writePctSamples", "must contain at least one sample")
	}
	curve := make([]TradeoffPoint, 0, len(writePctSamples))
	for _, pct := range writePctSamples {
		point, err := c.TradeoffPoint(pct)
		if err != nil {
			return nil, err
		}
		curve = append(curve, point)
	}
	return curve, nil
}

// ClassifyWorkload returns which strategy the write ratio favors. This is
// a plain threshold: above it deferred updates win, at or below it the
// standard strategy does.
func (c Calibration) ClassifyWorkload(writePct float64) WorkloadVerdict {
	if writePct > c.WriteHeavyThresholdPct {
		return VerdictWriteHeavy
	}
	return VerdictReadHeavy
}

// DefaultTradeoffSamples returns the write ratios the dashboard plots:
// 20 evenly spaced samples spanning 0 to 100 percent.
func DefaultTradeoffSamples() []float64 {
	const n = 20
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = float64(i) * 100 / (n - 1)
	}
	return samples
}
