package config

import "fmt"

const (
	// MaxFeeBasisPoints caps the issuance fee at 10%
	MaxFeeBasisPoints = 1000
	// MaxDiscountBasisPoints caps the commercial discount factor at 100%
	MaxDiscountBasisPoints = 10000
	// MaxPaymentDecimals bounds the declared decimal count of the payment
	// instrument so scale factors stay inside uint64
	MaxPaymentDecimals = 18
)

// MinterConfig holds the construction-time parameters of the reserve
// capacity minter. PaymentDecimals is captured once here and never
// re-queried from the payment instrument; an instrument that later changes
// its reported decimals silently desynchronizes issuance (known limitation).
type MinterConfig struct {
	// Account is the minter's custody account holding retained fees
	Account         string `mapstructure:"account"`
	PaymentDecimals int    `mapstructure:"payment-decimals"`
}

func (cfg *MinterConfig) Validate() error {
	if cfg.Account == "" {
		return fmt.Errorf("minter account is required")
	}
	if cfg.PaymentDecimals < 0 || cfg.PaymentDecimals > MaxPaymentDecimals {
		return fmt.Errorf("payment decimals must be between 0 and %d (got %d)", MaxPaymentDecimals, cfg.PaymentDecimals)
	}

	return nil
}
