package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.RechargeTurns != 3 {
		t.Errorf("RechargeTurns = %d, want 3", cfg.RechargeTurns)
	}
	if cfg.JumpRange != 5 {
		t.Errorf("JumpRange = %d, want 5", cfg.JumpRange)
	}
	if cfg.SectorRadius != 1000 {
		t.Errorf("SectorRadius = %v, want 1000", cfg.SectorRadius)
	}
	if cfg.TaxRate != 0.1 {
		t.Errorf("TaxRate = %v, want 0.1", cfg.TaxRate)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SIM_RECHARGE_TURNS", "5")
	t.Setenv("SIM_JUMP_RANGE", "8")
	t.Setenv("SIM_SECTOR_RADIUS", "1500")
	t.Setenv("SIM_TAX_RATE", "0.25")

	rules := Load().Rules()
	if rules.RechargeTurns != 5 || rules.DefaultJumpRange != 8 {
		t.Errorf("jump rules = %d/%d, want 5/8", rules.RechargeTurns, rules.DefaultJumpRange)
	}
	if rules.SectorRadius != 1500 || rules.TaxRate != 0.25 {
		t.Errorf("economy rules = %v/%v, want 1500/0.25", rules.SectorRadius, rules.TaxRate)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("SIM_JUMP_RANGE", "warp")
	t.Setenv("SIM_TAX_RATE", "ten percent")

	cfg := Load()
	if cfg.JumpRange != 5 || cfg.TaxRate != 0.1 {
		t.Errorf("malformed env should fall back to defaults, got %d/%v", cfg.JumpRange, cfg.TaxRate)
	}
}
