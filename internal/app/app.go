// Package app wires the graph store, the edge-list reader, the shortest-path
// engine and the report writer into the command-line pipeline:
//
//	generate (optional) → read input → Dijkstra from source → write report
//
// Each run is tagged with a random run ID that appears on every log record.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/izanahmed/graphing-exponents/bfs"
	"github.com/izanahmed/graphing-exponents/builder"
	"github.com/izanahmed/graphing-exponents/core"
	"github.com/izanahmed/graphing-exponents/dijkstra"
	"github.com/izanahmed/graphing-exponents/edgelist"
	"github.com/izanahmed/graphing-exponents/internal/config"
	"github.com/izanahmed/graphing-exponents/internal/metrics"
	"github.com/izanahmed/graphing-exponents/report"
)

// ErrSourceNotFound is returned when the configured source is not a vertex
// of the input graph. It wraps dijkstra.ErrVertexNotFound.
var ErrSourceNotFound = fmt.Errorf("app: source %w", dijkstra.ErrVertexNotFound)

// App runs the pipeline against a swappable configuration.
type App struct {
	mu     sync.RWMutex
	cfg    *config.Config
	logger *slog.Logger
	kick   chan struct{}
}

// New returns an App. A nil logger means slog.Default().
func New(cfg *config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{cfg: cfg, logger: logger, kick: make(chan struct{}, 1)}
}

// Config returns the configuration the next run will use.
func (a *App) Config() *config.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cfg
}

// Reconfigure swaps the configuration and, in watch mode, schedules a rerun.
func (a *App) Reconfigure(cfg *config.Config) {
	a.mu.Lock()
	a.cfg = cfg
	a.mu.Unlock()
	select {
	case a.kick <- struct{}{}:
	default:
	}
}

// RunResult summarises one pipeline run.
type RunResult struct {
	RunID     string
	Generated bool
	Vertices  int
	Edges     int
	Skipped   int
	Reachable int // vertices reachable from the source, source included
	Stats     dijkstra.Stats
	Report    report.Summary
	Duration  time.Duration
}

// Run executes the pipeline once with the current configuration.
func (a *App) Run(ctx context.Context) (*RunResult, error) {
	cfg := a.Config()
	return a.run(ctx, cfg, cfg.Generate.Enabled)
}

func (a *App) run(ctx context.Context, cfg *config.Config, generate bool) (res *RunResult, err error) {
	start := time.Now()
	res = &RunResult{RunID: uuid.New().String()}
	log := a.logger.With("run_id", res.RunID)

	defer func() {
		res.Duration = time.Since(start)
		metrics.RunDuration.Observe(float64(res.Duration.Milliseconds()))
		switch {
		case err == nil:
			metrics.Runs.WithLabelValues(metrics.OutcomeOK).Inc()
			log.Info("run complete", "lines", res.Report.Lines, "unreachable", res.Report.Unreachable,
				"output", cfg.Output, "duration", res.Duration)
		case errors.Is(err, dijkstra.ErrNegativeEdge):
			metrics.Runs.WithLabelValues(metrics.OutcomeNegative).Inc()
			log.Error("run failed", "err", err)
		default:
			metrics.Runs.WithLabelValues(metrics.OutcomeError).Inc()
			log.Error("run failed", "err", err)
		}
	}()

	if generate {
		if err := Generate(cfg.Input, cfg.Generate.Vertices); err != nil {
			return res, err
		}
		res.Generated = true
		log.Info("input generated", "path", cfg.Input, "vertices", cfg.Generate.Vertices)
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	g := core.NewGraph()
	sum, err := edgelist.ReadFile(cfg.Input, g,
		edgelist.WithLogger(log),
		edgelist.WithOnSkip(func(*edgelist.MalformedLineError) { metrics.SkippedLines.Inc() }),
	)
	if err != nil {
		return res, err
	}
	res.Vertices, res.Edges, res.Skipped = g.VertexCount(), g.EdgeCount(), len(sum.Skipped)
	metrics.GraphVertices.Set(float64(res.Vertices))
	metrics.GraphEdges.Set(float64(res.Edges))
	log.Info("file read", "path", cfg.Input, "vertices", res.Vertices, "edges", res.Edges, "skipped", res.Skipped)

	if !g.HasVertex(cfg.Source) {
		return res, fmt.Errorf("%w: %q", ErrSourceNotFound, cfg.Source)
	}
	if res.Reachable, err = bfs.Reachable(g, cfg.Source, bfs.WithContext(ctx)); err != nil {
		return res, err
	}
	log.Debug("reachability", "source", cfg.Source, "reachable", res.Reachable)

	log.Info("running dijkstra", "source", cfg.Source)
	dres, err := dijkstra.Dijkstra(g, dijkstra.Source(cfg.Source))
	if err != nil {
		return res, err
	}
	res.Stats = dres.Stats()
	metrics.FinalizedVertices.Add(float64(res.Stats.Finalized))
	metrics.StaleDiscards.Add(float64(res.Stats.StaleDiscards))
	log.Debug("dijkstra stats", "pops", res.Stats.Pops, "stale", res.Stats.StaleDiscards,
		"relaxations", res.Stats.Relaxations, "finalized", res.Stats.Finalized)

	res.Report, err = writeReport(cfg.Output, dres, cfg.Targets())
	metrics.ReportLines.WithLabelValues(metrics.KindReachable).Add(float64(res.Report.Reachable))
	metrics.ReportLines.WithLabelValues(metrics.KindUnreachable).Add(float64(res.Report.Unreachable))

	return res, err
}

// Generate writes the exponent data set over vertices 0..n to path.
func Generate(path string, n int) error {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithVertexCapacity(n + 1)}, nil,
		builder.Exponent(n),
	)
	if err != nil {
		return fmt.Errorf("app: generate: %w", err)
	}
	return edgelist.WriteFile(path, g)
}

// writeReport writes one line per destination to path. Lines before a
// missing destination are kept so the file shows how far the run got.
func writeReport(path string, res *dijkstra.Result, dests []string) (report.Summary, error) {
	f, err := os.Create(path)
	if err != nil {
		return report.Summary{}, fmt.Errorf("app: create %s: %w", path, err)
	}
	sum, werr := report.Write(f, res, dests)
	if cerr := f.Close(); werr == nil && cerr != nil {
		werr = fmt.Errorf("app: close %s: %w", path, cerr)
	}
	return sum, werr
}
