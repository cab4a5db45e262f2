package config

import (
	"fmt"
	"time"
)

// TokensConfig points at the four token ledgers the service talks to. The
// minter is the sole authorized issuer of the reserve token; the funding
// ledger is the sole authorized issuer of the claim and equity tokens.
type TokensConfig struct {
	PaymentURL string        `mapstructure:"payment-url"`
	ReserveURL string        `mapstructure:"reserve-url"`
	ClaimURL   string        `mapstructure:"claim-url"`
	EquityURL  string        `mapstructure:"equity-url"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

func (cfg *TokensConfig) Validate() error {
	if cfg.PaymentURL == "" {
		return fmt.Errorf("payment token ledger URL must be set")
	}
	if cfg.ReserveURL == "" {
		return fmt.Errorf("reserve token ledger URL must be set")
	}
	if cfg.ClaimURL == "" {
		return fmt.Errorf("claim token ledger URL must be set")
	}
	if cfg.EquityURL == "" {
		return fmt.Errorf("equity token ledger URL must be set")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("token ledger timeout should be positive")
	}

	return nil
}
