package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration for the benchmark.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Workload
	PointCount    int   `json:"point_count"`
	MaxPointCount int   `json:"max_point_count"` // 0 disables the upper bound
	Seed          int64 `json:"seed"`            // 0 seeds from the clock

	// Loop
	FrameIntervalMs int    `json:"frame_interval_ms"`
	CyclePolicy     string `json:"cycle_policy"` // "full" or "legacy"

	// Renderer
	CanvasWidth         int     `json:"canvas_width"`
	CanvasHeight        int     `json:"canvas_height"`
	RotationMsPerDegree float64 `json:"rotation_ms_per_degree"`

	// Outputs
	MetricsAddr string `json:"metrics_addr"` // empty disables the /metrics endpoint

	// Headless runs
	HeadlessCycles int    `json:"headless_cycles"`
	Sweep          string `json:"sweep"` // comma separated point counts
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:               false,
		PointCount:          1000,
		MaxPointCount:       20000,
		Seed:                0,
		FrameIntervalMs:     16,
		CyclePolicy:         "full",
		CanvasWidth:         960,
		CanvasHeight:        600,
		RotationMsPerDegree: 150,
		MetricsAddr:         "",
		HeadlessCycles:      3,
		Sweep:               "",
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() {
	if c.MaxPointCount < 0 {
		c.MaxPointCount = 0
	}
	if c.PointCount <= 0 {
		c.PointCount = 1000
	}
	if c.MaxPointCount > 0 && c.PointCount > c.MaxPointCount {
		c.PointCount = c.MaxPointCount
	}
	if c.FrameIntervalMs < 0 {
		c.FrameIntervalMs = 0
	}
	if c.FrameIntervalMs > 1000 {
		c.FrameIntervalMs = 1000
	}
	switch c.CyclePolicy {
	case "full", "legacy":
	default:
		c.CyclePolicy = "full"
	}
	if c.CanvasWidth < 100 {
		c.CanvasWidth = 960
	}
	if c.CanvasHeight < 100 {
		c.CanvasHeight = 600
	}
	if c.RotationMsPerDegree <= 0 {
		c.RotationMsPerDegree = 150
	}
	if c.HeadlessCycles <= 0 {
		c.HeadlessCycles = 3
	}
	c.MetricsAddr = strings.TrimSpace(c.MetricsAddr)
}

// SweepPoints parses Sweep into point counts, skipping malformed or
// non-positive entries. An empty sweep yields PointCount alone.
func (c *Config) SweepPoints() []int {
	var out []int
	for _, part := range strings.Split(c.Sweep, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			continue
		}
		if c.MaxPointCount > 0 && n > c.MaxPointCount {
			continue
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		out = []int{c.PointCount}
	}
	return out
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
