package rates

import (
	"strings"

	"github.com/veridia/vatplace/errors"
)

// NormalizeCountry trims and uppercases a 2-letter jurisdiction code. It
// fails with ErrInvalidInput when the trimmed code is not exactly two
// characters.
func NormalizeCountry(countryCode string) (string, error) {
	countryCode = strings.TrimSpace(countryCode)
	if len(countryCode) != 2 {
		return "", errors.NewInvalidInputf("country code %q is not a 2-character code", countryCode)
	}
	return strings.ToUpper(countryCode), nil
}
