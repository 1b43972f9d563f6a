package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/izanahmed/graphing-exponents/internal/app"
	"github.com/izanahmed/graphing-exponents/internal/config"
	"github.com/izanahmed/graphing-exponents/internal/metrics"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("graphing-exponents", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	input := fs.String("input", "", "Edge-list input file")
	output := fs.String("output", "", "Report output file")
	source := fs.String("source", "", "Source vertex")
	dest := fs.String("dest", "", "Comma-separated destination vertices")
	rng := fs.String("range", "", "Integer destination range FROM:TO")
	generate := fs.Bool("generate", true, "Write the exponent data set to -input before reading")
	vertices := fs.Int("vertices", 0, "Size of the generated data set")
	watch := fs.Bool("watch", false, "Re-run whenever the input file changes")
	metricsAddr := fs.String("metrics-addr", "", "Serve Prometheus metrics on this address")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	logFormat := fs.String("log-format", "", "text or json")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// ── Load config ──────────────────────────────────────────────────────────
	cfg := config.Default()
	var loader *config.Loader
	if *cfgPath != "" {
		var err error
		if loader, err = config.NewLoader(*cfgPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		c := *loader.Config()
		cfg = &c
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	overrides := func(c *config.Config) error {
		if set["input"] {
			c.Input = *input
		}
		if set["output"] {
			c.Output = *output
		}
		if set["source"] {
			c.Source = *source
		}
		if set["dest"] {
			c.Destinations = splitList(*dest)
		}
		if set["range"] {
			r, err := parseRange(*rng)
			if err != nil {
				return err
			}
			c.Destinations = nil
			c.Range = r
		}
		if set["generate"] {
			c.Generate.Enabled = *generate
		}
		if set["vertices"] {
			c.Generate.Vertices = *vertices
		}
		if set["watch"] {
			c.Watch = *watch
		}
		if set["metrics-addr"] {
			c.Metrics.Addr = *metricsAddr
		}
		if set["log-level"] {
			c.Log.Level = *logLevel
		}
		if set["log-format"] {
			c.Log.Format = *logFormat
		}
		if !set["range"] && !set["dest"] {
			c.FitRange()
		}
		return config.Validate(c)
	}
	if err := overrides(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Metrics server ───────────────────────────────────────────────────────
	if cfg.Metrics.Addr != "" {
		srv := metrics.NewServer(cfg.Metrics.Addr)
		srv.ReadHeaderTimeout = 10 * time.Second
		go func() {
			slog.Info("metrics server starting", "addr", cfg.Metrics.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("metrics server error", "err", err)
			}
		}()
		defer func() {
			shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutCtx)
		}()
	}

	a := app.New(cfg, logger)

	if !cfg.Watch {
		if _, err := a.Run(ctx); err != nil {
			return 1
		}
		return 0
	}

	// ── Hot-reload watcher ───────────────────────────────────────────────────
	if loader != nil {
		loader.OnChange(func(newCfg *config.Config) {
			next := *newCfg
			if err := overrides(&next); err != nil {
				slog.Warn("hot-reload skipped: config invalid", "err", err)
				return
			}
			a.Reconfigure(&next)
			slog.Info("config hot-reloaded", "input", next.Input, "source", next.Source)
		})
		loader.OnError(func(err error) { slog.Warn("hot-reload skipped", "err", err) })
		stopWatch, err := loader.Watch()
		if err != nil {
			slog.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
		} else {
			defer stopWatch()
		}
	}

	if err := a.Watch(ctx, nil); err != nil {
		slog.Error("watch failed", "err", err)
		return 1
	}
	slog.Info("goodbye")
	return 0
}

func newLogger(lc config.LogConf) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(lc.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(lc.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseRange(s string) (config.RangeConf, error) {
	from, to, ok := strings.Cut(s, ":")
	if !ok {
		return config.RangeConf{}, fmt.Errorf("-range %q: want FROM:TO", s)
	}
	f, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return config.RangeConf{}, fmt.Errorf("-range %q: %w", s, err)
	}
	t, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil {
		return config.RangeConf{}, fmt.Errorf("-range %q: %w", s, err)
	}
	return config.RangeConf{From: f, To: t}, nil
}
