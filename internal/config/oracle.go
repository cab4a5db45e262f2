package config

import (
	"fmt"
	"time"
)

type OracleConfig struct {
	URL           string        `mapstructure:"url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *OracleConfig) Validate() error {
	if cfg.URL == "" {
		return fmt.Errorf("oracle URL must be set")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("oracle timeout should be positive")
	}
	if cfg.MaxRetryTimes == 0 {
		return fmt.Errorf("oracle max retry times should be positive")
	}
	if cfg.RetryInterval <= 0 {
		return fmt.Errorf("oracle retry interval should be positive")
	}

	return nil
}
