package main

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Prometheus metrics (gauges), tracking the most recent computation
	promMetrics = struct {
		regularCost        prometheus.Gauge
		deferredCost       prometheus.Gauge
		updateSpeedup      prometheus.Gauge
		standardWAMean     prometheus.Gauge
		optimizedWAMean    prometheus.Gauge
		waReductionPct     prometheus.Gauge
		throughputStandard prometheus.Gauge
		throughputDeferred prometheus.Gauge
		latencyStandard    prometheus.Gauge
		latencyDeferred    prometheus.Gauge
	}{
		regularCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lsm_demo_regular_update_cost",
			Help: "Cost of a read-verify-then-write update in memory-access units",
		}),
		deferredCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lsm_demo_deferred_update_cost",
			Help: "Cost of a blind-write deferred update in memory-access units",
		}),
		updateSpeedup: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lsm_demo_update_speedup",
			Help: "Regular update cost divided by deferred update cost",
		}),
		standardWAMean: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lsm_demo_standard_write_amplification_mean",
			Help: "Mean write amplification of the baseline strategy over the simulated window",
		}),
		optimizedWAMean: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lsm_demo_optimized_write_amplification_mean",
			Help: "Mean write amplification with deferred updates over the simulated window",
		}),
		waReductionPct: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lsm_demo_write_amplification_delta_percent",
			Help: "Percent change of mean write amplification with optimization (negative = improvement)",
		}),
		throughputStandard: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lsm_demo_throughput_standard_ops",
			Help: "Modeled throughput of the standard strategy at the current write ratio (ops/sec)",
		}),
		throughputDeferred: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lsm_demo_throughput_deferred_ops",
			Help: "Modeled throughput of the deferred strategy at the current write ratio (ops/sec)",
		}),
		latencyStandard: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lsm_demo_read_latency_standard_ms",
			Help: "Modeled read latency of the standard strategy (ms)",
		}),
		latencyDeferred: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lsm_demo_read_latency_deferred_ms",
			Help: "Modeled read latency of the deferred strategy (ms)",
		}),
	}
)

func initPrometheusMetrics() {
	prometheus.MustRegister(
		promMetrics.regularCost,
		promMetrics.deferredCost,
		promMetrics.updateSpeedup,
		promMetrics.standardWAMean,
		promMetrics.optimizedWAMean,
		promMetrics.waReductionPct,
		promMetrics.throughputStandard,
		promMetrics.throughputDeferred,
		promMetrics.latencyStandard,
		promMetrics.latencyDeferred,
	)
}

func updatePrometheusMetrics(results *DashboardResults) {
	promMetrics.regularCost.Set(results.Cost.RegularCost)
	promMetrics.deferredCost.Set(results.Cost.DeferredCost)
	promMetrics.updateSpeedup.Set(results.Cost.Speedup)

	promMetrics.standardWAMean.Set(results.Amplification.StandardMeanWA)
	if results.Amplification.OptimizationEnabled {
		promMetrics.optimizedWAMean.Set(results.Amplification.OptimizedMeanWA)
		promMetrics.waReductionPct.Set(results.Amplification.MeanDeltaPct)
	}

	promMetrics.throughputStandard.Set(results.Tradeoff.ThroughputStandard)
	promMetrics.throughputDeferred.Set(results.Tradeoff.ThroughputDeferred)
	promMetrics.latencyStandard.Set(results.Tradeoff.LatencyStandardMs)
	promMetrics.latencyDeferred.Set(results.Tradeoff.LatencyDeferredMs)
}
