// Package graphexponents is an in-memory shortest-path toolkit built around
// the "graphing exponents" data set: vertices 0..n where i links to i+1 at
// cost i and to 2i at cost i·(1+log₂ i).
//
// Layout:
//
//	core/       — directed multigraph store: vertices, float-cost edges, RW locks
//	dijkstra/   — single-source shortest paths with lazy deletion, per-run Result
//	report/     — "(Cost is: d) a to b to c" / "x is unreachable" lines
//	edgelist/   — "src dst cost" text format: tolerant reader, exact writer
//	builder/    — deterministic generators (Exponent, Path, Grid, RandomSparse…)
//	bfs/        — hop-count reachability
//	internal/   — config (YAML + hot reload), metrics (Prometheus), app pipeline
//	cmd/graphing-exponents — the command-line driver
//
// Quick example:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", 4)
//	g.AddEdge("A", "C", 1)
//	g.AddEdge("C", "B", 1)
//	res, _ := dijkstra.Dijkstra(g, dijkstra.Source("A"))
//	line, _ := report.Line(res, "B") // (Cost is: 2.0) A to C to B
//
//	go install github.com/izanahmed/graphing-exponents/cmd/graphing-exponents@latest
package graphexponents
