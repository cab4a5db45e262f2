package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Db       DbConfig       `mapstructure:"db"`
	Api      ApiConfig      `mapstructure:"api"`
	Minter   MinterConfig   `mapstructure:"minter"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Oracle   OracleConfig   `mapstructure:"oracle"`
	Tokens   TokensConfig   `mapstructure:"tokens"`
	Treasury TreasuryConfig `mapstructure:"treasury"`
	Kyc      KycConfig      `mapstructure:"kyc"`
	Queue    QueueConfig    `mapstructure:"queue"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Db.Validate(); err != nil {
		return err
	}
	if err := cfg.Api.Validate(); err != nil {
		return err
	}
	if err := cfg.Minter.Validate(); err != nil {
		return err
	}
	if err := cfg.Ledger.Validate(); err != nil {
		return err
	}
	if err := cfg.Oracle.Validate(); err != nil {
		return err
	}
	if err := cfg.Tokens.Validate(); err != nil {
		return err
	}
	if err := cfg.Treasury.Validate(); err != nil {
		return err
	}
	if err := cfg.Kyc.Validate(); err != nil {
		return err
	}
	if err := cfg.Queue.Validate(); err != nil {
		return err
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return err
	}

	return nil
}

// New returns a validated Config from the given file. Any key can be
// overridden through the environment, e.g. DB_ADDRESS.
func New(cfgPath string) (*Config, error) {
	viper.SetConfigFile(cfgPath)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", cfgPath, err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file %s: %w", cfgPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
