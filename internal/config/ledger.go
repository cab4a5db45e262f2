package config

import "fmt"

// MaxPenaltyBasisPoints caps the early-unstake penalty at 10%
const MaxPenaltyBasisPoints = 1000

type LedgerConfig struct {
	// Account is the funding ledger's custody account holding staked
	// principal and retained penalties
	Account string `mapstructure:"account"`
	// PenaltyBasisPoints is deducted from unstakes while a project is
	// still Active; terminal-state unstakes pay no penalty
	PenaltyBasisPoints uint64 `mapstructure:"penalty-basis-points"`
}

func (cfg *LedgerConfig) Validate() error {
	if cfg.Account == "" {
		return fmt.Errorf("ledger account is required")
	}
	if cfg.PenaltyBasisPoints > MaxPenaltyBasisPoints {
		return fmt.Errorf("penalty basis points must not exceed %d (got %d)", MaxPenaltyBasisPoints, cfg.PenaltyBasisPoints)
	}

	return nil
}
