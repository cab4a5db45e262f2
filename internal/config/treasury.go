package config

import (
	"fmt"
	"time"
)

type TreasuryConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func (cfg *TreasuryConfig) Validate() error {
	if cfg.URL == "" {
		return fmt.Errorf("treasury router URL must be set")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("treasury router timeout should be positive")
	}

	return nil
}
