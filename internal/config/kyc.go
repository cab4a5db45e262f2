package config

import (
	"fmt"
	"time"
)

type KycConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func (cfg *KycConfig) Validate() error {
	if cfg.URL == "" {
		return fmt.Errorf("KYC registry URL must be set")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("KYC registry timeout should be positive")
	}

	return nil
}
