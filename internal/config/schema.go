package config

import "strconv"

// Config is the top-level YAML structure.
type Config struct {
	Input        string       `yaml:"input"`
	Output       string       `yaml:"output"`
	Source       string       `yaml:"source"`
	Destinations []string     `yaml:"destinations"` // explicit list; wins over Range
	Range        RangeConf    `yaml:"range"`
	Generate     GenerateConf `yaml:"generate"`
	Log          LogConf      `yaml:"log"`
	Metrics      MetricsConf  `yaml:"metrics"`
	Watch        bool         `yaml:"watch"`
}

// RangeConf selects destinations named by consecutive integers From..To.
type RangeConf struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// GenerateConf controls writing the exponent data set to Input before a run.
type GenerateConf struct {
	Enabled  bool `yaml:"enabled"`
	Vertices int  `yaml:"vertices"`
}

// LogConf selects the slog handler.
type LogConf struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// MetricsConf configures the Prometheus endpoint. Empty Addr disables it.
type MetricsConf struct {
	Addr string `yaml:"addr"`
}

// Default values, matching the classic exponent demo.
const (
	DefaultInput    = "graph.dat"
	DefaultOutput   = "graph-output.dat"
	DefaultSource   = "0"
	DefaultRangeTo  = 1000
	DefaultVertices = 1000
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Input:    DefaultInput,
		Output:   DefaultOutput,
		Source:   DefaultSource,
		Range:    RangeConf{From: 1, To: DefaultRangeTo},
		Generate: GenerateConf{Enabled: true, Vertices: DefaultVertices},
		Log:      LogConf{Level: "info", Format: "text"},
	}
}

// FitRange shrinks the default destination range to the generated data
// set when no destinations were chosen, so a smaller -vertices still names
// only vertices that exist. Explicit ranges are left alone.
func (c *Config) FitRange() {
	if len(c.Destinations) > 0 || !c.Generate.Enabled {
		return
	}
	if c.Range == (RangeConf{From: 1, To: DefaultRangeTo}) && c.Generate.Vertices < DefaultRangeTo {
		c.Range.To = c.Generate.Vertices
	}
}

// Targets returns the destinations to report, in order: Destinations when
// non-empty, otherwise the decimal names From..To.
func (c *Config) Targets() []string {
	if len(c.Destinations) > 0 {
		out := make([]string, len(c.Destinations))
		copy(out, c.Destinations)
		return out
	}
	if c.Range.To < c.Range.From {
		return nil
	}
	out := make([]string, 0, c.Range.To-c.Range.From+1)
	for i := c.Range.From; i <= c.Range.To; i++ {
		out = append(out, strconv.Itoa(i))
	}

	return out
}
