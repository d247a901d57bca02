package scapegoat

import (
	"fmt"
	"math"
)

// DefaultAlpha is the weight-balance factor used if no other is configured.
// No child subtree may hold more than α of its parent subtree's weight.
const DefaultAlpha = 2.0 / 3.0

// Config configures a scapegoat tree.
type Config struct {
	// Alpha is the weight-balance factor, 0.5 < Alpha < 1. Zero selects DefaultAlpha.
	// Smaller values give shallower trees at the cost of more frequent rebuilds.
	Alpha float64
}

func (cfg Config) normalized() Config {
	if cfg.Alpha == 0 {
		cfg.Alpha = DefaultAlpha
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if math.IsNaN(cfg.Alpha) || cfg.Alpha <= 0.5 || cfg.Alpha >= 1 {
		return fmt.Errorf("%w: alpha must be in (0.5, 1), is %g", ErrInvalidConfig, cfg.Alpha)
	}
	return nil
}

// heightBound returns log_{1/α}(n) as a real number, or 0 for n < 1.
func (cfg Config) heightBound(n int) float64 {
	if n < 1 {
		return 0
	}
	return math.Log(float64(n)) / math.Log(1/cfg.Alpha)
}

// threshold is the maximum depth any node may have in a tree whose size is
// (or has recently been) n: ⌊log_{1/α}(n)⌋.
func (cfg Config) threshold(n int) int {
	return int(math.Floor(cfg.heightBound(n)))
}
