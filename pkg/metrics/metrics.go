package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metrics for the analysis pipeline
type Registry struct {
	// Run Metrics
	AnalysisRunsTotal *prometheus.CounterVec
	AnalysisDuration  prometheus.Histogram

	// Stage Metrics
	StageDuration *prometheus.HistogramVec

	// Graph Metrics
	GraphNodes  prometheus.Gauge
	GraphEdges  prometheus.Gauge
	GraphEnergy prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{registry: reg}

	r.AnalysisRunsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netspect_analysis_runs_total",
			Help: "Total number of analysis runs",
		},
		[]string{"status"}, // success, error
	)

	r.AnalysisDuration = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "netspect_analysis_duration_seconds",
			Help:    "End-to-end duration of analysis runs in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
		},
	)

	r.StageDuration = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netspect_stage_duration_seconds",
			Help:    "Duration of individual pipeline stages in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"stage"},
	)

	r.GraphNodes = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "netspect_graph_nodes",
			Help: "Node count of the most recently analysed graph",
		},
	)

	r.GraphEdges = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "netspect_graph_edges",
			Help: "Edge count of the most recently analysed graph",
		},
	)

	r.GraphEnergy = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "netspect_graph_energy",
			Help: "Graph energy of the most recently analysed graph",
		},
	)

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry so an
// embedding process can expose or gather it.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// RecordRun records a completed analysis run with its outcome
func (r *Registry) RecordRun(status string, duration time.Duration) {
	r.AnalysisRunsTotal.WithLabelValues(status).Inc()
	r.AnalysisDuration.Observe(duration.Seconds())
}

// RecordStage records one pipeline stage duration
func (r *Registry) RecordStage(stage string, duration time.Duration) {
	r.StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// UpdateGraphMetrics records the shape of the analysed graph
func (r *Registry) UpdateGraphMetrics(nodes, edges int) {
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
}
