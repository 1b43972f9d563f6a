package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Runs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graphing_exponents_runs_total",
		Help: "Total number of pipeline runs, labelled by outcome.",
	}, []string{"outcome"})

	RunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "graphing_exponents_run_duration_ms",
		Help:    "End-to-end pipeline run latency in milliseconds.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 10000},
	})

	GraphVertices = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "graphing_exponents_graph_vertices",
		Help: "Vertices in the most recently loaded graph.",
	})

	GraphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "graphing_exponents_graph_edges",
		Help: "Edges in the most recently loaded graph.",
	})

	SkippedLines = promauto.NewCounter(prometheus.CounterOpts{
		Name: "graphing_exponents_input_lines_skipped_total",
		Help: "Total number of ill-formatted input lines skipped.",
	})

	FinalizedVertices = promauto.NewCounter(prometheus.CounterOpts{
		Name: "graphing_exponents_vertices_finalized_total",
		Help: "Total number of vertices finalized by Dijkstra runs.",
	})

	StaleDiscards = promauto.NewCounter(prometheus.CounterOpts{
		Name: "graphing_exponents_heap_stale_discards_total",
		Help: "Total number of outdated heap entries discarded on pop.",
	})

	ReportLines = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graphing_exponents_report_lines_total",
		Help: "Total number of report lines written, labelled by kind.",
	}, []string{"kind"})
)

// Outcome and kind label values.
const (
	OutcomeOK          = "ok"
	OutcomeError       = "error"
	OutcomeNegative    = "negative_edge"
	KindReachable      = "reachable"
	KindUnreachable    = "unreachable"
	DefaultMetricsPath = "/metrics"
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// NewServer returns an HTTP server exposing the registry at /metrics and a
// liveness probe at /healthz.
func NewServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("GET "+DefaultMetricsPath, Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return &http.Server{Addr: addr, Handler: mux}
}
