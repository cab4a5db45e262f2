package pkg

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const accountHexLength = 40

// ValidateAccountAddress checks the ledger platform's account format:
// 0x followed by 40 hex characters.
func ValidateAccountAddress(address string) error {
	if address == "" {
		return fmt.Errorf("empty account address")
	}
	if !strings.HasPrefix(address, "0x") {
		return fmt.Errorf("account address %q must start with 0x", address)
	}

	body := address[2:]
	if len(body) != accountHexLength {
		return fmt.Errorf("account address %q must have %d hex characters", address, accountHexLength)
	}
	if _, err := hex.DecodeString(body); err != nil {
		return fmt.Errorf("account address %q is not valid hex: %w", address, err)
	}

	return nil
}
