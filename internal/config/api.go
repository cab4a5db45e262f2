package config

import "fmt"

type ApiConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	// AdminToken is the bearer token required on administrator routes
	AdminToken string `mapstructure:"admin-token"`
}

func (cfg *ApiConfig) Validate() error {
	if cfg.Host == "" {
		return fmt.Errorf("api host cannot be empty")
	}
	if cfg.Port < 1024 || cfg.Port > 65535 {
		return fmt.Errorf("api port must be between 1024 and 65535 (got %d)", cfg.Port)
	}
	if cfg.AdminToken == "" {
		return fmt.Errorf("api admin token is required")
	}

	return nil
}
