package config

import (
	"os"
	"strconv"

	"github.com/efreeman/hexfleet/pkg/hexfleet"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	RechargeTurns int
	JumpRange     int
	SectorRadius  float64
	TaxRate       float64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	defaults := hexfleet.DefaultRules()
	return &Config{
		RechargeTurns: envIntOrDefault("SIM_RECHARGE_TURNS", defaults.RechargeTurns),
		JumpRange:     envIntOrDefault("SIM_JUMP_RANGE", defaults.DefaultJumpRange),
		SectorRadius:  envFloatOrDefault("SIM_SECTOR_RADIUS", defaults.SectorRadius),
		TaxRate:       envFloatOrDefault("SIM_TAX_RATE", defaults.TaxRate),
	}
}

// Rules converts the configuration into an engine rule set.
func (c *Config) Rules() hexfleet.Rules {
	return hexfleet.Rules{
		RechargeTurns:    c.RechargeTurns,
		DefaultJumpRange: c.JumpRange,
		SectorRadius:     c.SectorRadius,
		TaxRate:          c.TaxRate,
	}
}

func envIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloatOrDefault(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
