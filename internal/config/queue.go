package config

import (
	"fmt"
	"time"
)

type QueueConfig struct {
	URL            string        `mapstructure:"url"`
	Exchange       string        `mapstructure:"exchange"`
	PublishTimeout time.Duration `mapstructure:"publish-timeout"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.URL == "" {
		return fmt.Errorf("queue URL must be set")
	}
	if cfg.Exchange == "" {
		return fmt.Errorf("queue exchange must be set")
	}
	if cfg.PublishTimeout <= 0 {
		return fmt.Errorf("queue publish timeout should be positive")
	}

	return nil
}
