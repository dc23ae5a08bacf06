// Package billing resolves VAT rates from billing addresses.
//
// A declared country, postal code, and city are matched against ordered
// postal-code exception tables covering enclaves and special-rate
// territories. Billing addresses are a definitive signal: no corroborating
// evidence is ever needed.
package billing

import (
	"regexp"
	"strings"

	"github.com/veridia/vatplace/errors"
	"github.com/veridia/vatplace/rates"
)

var whitespace = regexp.MustCompile(`\s+`)

// CalculateRate determines the VAT rate to collect based on the address
// information provided.
//
// The postal code may be empty for countries without postal codes. The
// returned exception name is empty when the jurisdiction default applies,
// including for postal codes that redirect to another jurisdiction's
// default rate (a Swiss post office serving the Italian city of Domodossola
// taxes at the Italian standard rate, not an enclave rate).
func CalculateRate(countryCode, postalCode, city string) (rates.Result, error) {
	countryCode, err := rates.NormalizeCountry(countryCode)
	if err != nil {
		return rates.Result{}, err
	}

	if !countriesWithoutPostalCodes[countryCode] && postalCode == "" {
		return rates.Result{}, errors.NewInvalidInputf("postal code is required for %s", countryCode)
	}

	if strings.TrimSpace(city) == "" {
		return rates.Result{}, errors.NewInvalidInputf("city is required")
	}

	postalCode = normalizePostalCode(countryCode, postalCode)
	city = strings.TrimSpace(strings.ToLower(city))

	record, tracked := rates.ByCountry[countryCode]
	matchers, hasExceptions := postalCodeExceptions[countryCode]
	if !tracked && !hasExceptions {
		return rates.Result{CountryCode: countryCode}, nil
	}

	countryDefault := record.BaseRate

	for _, m := range matchers {
		if !m.postal.MatchString(postalCode) {
			continue
		}
		if m.city != nil && !m.city.MatchString(city) {
			continue
		}

		// A plain redirect taxes at the target jurisdiction's default
		// rate with no exception name attached.
		if m.name == "" {
			countryCode = m.countryCode
			countryDefault = rates.ByCountry[countryCode].BaseRate
			break
		}

		exc, err := rates.ExceptionRateFor(m.countryCode, m.name)
		if err != nil {
			return rates.Result{}, errors.Wrapf(err, "postal exception table references unknown entry %s/%s", m.countryCode, m.name)
		}
		return rates.Result{Rate: exc.Rate, CountryCode: m.countryCode, ExceptionName: m.name}, nil
	}

	return rates.Result{Rate: countryDefault, CountryCode: countryCode}, nil
}

// normalizePostalCode strips whitespace, uppercases, removes the common
// european practice of prefixing the country code followed by a dash, and
// drops interior dashes. Normalizing an already-normalized code returns it
// unchanged.
func normalizePostalCode(countryCode, postalCode string) string {
	postalCode = whitespace.ReplaceAllString(postalCode, "")
	postalCode = strings.ToUpper(postalCode)

	if len(postalCode) > 3 && postalCode[0:3] == countryCode+"-" {
		postalCode = postalCode[3:]
	}

	return strings.ReplaceAll(postalCode, "-", "")
}
