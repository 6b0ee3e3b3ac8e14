package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s is a valid card number per the Luhn checksum.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
