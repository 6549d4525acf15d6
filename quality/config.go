package quality

import (
	"fmt"
	"strconv"
	"strings"
)

// Function selects the interestingness formula.
type Function int

const (
	// SqrtDeviation is sqrt(g) * |p - p0|.
	SqrtDeviation Function = 1
	// OddsSquared is g / (1 - g) * (p - p0)^2.
	OddsSquared Function = 2
	// WeightedAccuracy is g * (2p - 1) + (1 - p0).
	WeightedAccuracy Function = 3
)

// String returns the stable name of the function.
func (f Function) String() string {
	switch f {
	case SqrtDeviation:
		return "sqrt-deviation"
	case OddsSquared:
		return "odds-squared"
	case WeightedAccuracy:
		return "weighted-accuracy"
	default:
		return "unsupported(" + strconv.Itoa(int(f)) + ")"
	}
}

// Valid reports whether f is one of the defined formulas.
func (f Function) Valid() bool {
	return f >= SqrtDeviation && f <= WeightedAccuracy
}

// ParseFunction accepts a formula number ("1".."3") or its name.
// Unknown numbers are returned as-is; they score every hypothesis as 0.
func ParseFunction(s string) (Function, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, f := range []Function{SqrtDeviation, OddsSquared, WeightedAccuracy} {
		if s == f.String() {
			return f, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unknown quality function %q", s)
	}
	return Function(n), nil
}

// Config configures an Engine.
type Config struct {
	// Function is the interestingness formula. Default: SqrtDeviation.
	Function Function

	// TargetLabel is the value (0 or 1) that attributes must hold to satisfy a
	// hypothesis and the class value counted as positive. Default: 1.
	TargetLabel uint8

	// SignificanceZ is the two-sided z threshold used by IsSignificant.
	// Default: 2.58 (significance level 0.01).
	SignificanceZ float64
}

// DefaultConfig returns a Config with the default settings.
func DefaultConfig() Config {
	return Config{
		Function:      SqrtDeviation,
		TargetLabel:   1,
		SignificanceZ: 2.58,
	}
}

// ZForLevel returns the two-sided critical z value for the common
// significance levels 0.10, 0.05, 0.01 and 0.001.
func ZForLevel(level float64) (float64, bool) {
	switch level {
	case 0.10:
		return 1.645, true
	case 0.05:
		return 1.96, true
	case 0.01:
		return 2.58, true
	case 0.001:
		return 3.29, true
	default:
		return 0, false
	}
}

func validateConfig(cfg Config) error {
	if cfg.TargetLabel > 1 {
		return fmt.Errorf("%w: %d", ErrInvalidTargetLabel, cfg.TargetLabel)
	}
	if cfg.SignificanceZ < 0 {
		return fmt.Errorf("%w: %g", ErrInvalidSignificance, cfg.SignificanceZ)
	}
	return nil
}
