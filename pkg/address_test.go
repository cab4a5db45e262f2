package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAccountAddress(t *testing.T) {
	valid := []string{
		"0x0000000000000000000000000000000000000000",
		"0xabcdefABCDEF0123456789abcdefABCDEF012345",
	}
	for _, address := range valid {
		assert.NoError(t, ValidateAccountAddress(address))
	}

	invalid := []string{
		"",
		"abcdefABCDEF0123456789abcdefABCDEF012345",    // no prefix
		"0xabcdefABCDEF0123456789abcdefABCDEF01234",   // too short
		"0xabcdefABCDEF0123456789abcdefABCDEF0123456", // too long
		"0xghijklABCDEF0123456789abcdefABCDEF012345",  // not hex
		"1xabcdefABCDEF0123456789abcdefABCDEF012345",  // wrong prefix
	}
	for _, address := range invalid {
		assert.Error(t, ValidateAccountAddress(address), address)
	}
}
