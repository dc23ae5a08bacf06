// Package phone resolves VAT rates from international phone numbers.
//
// The country is resolved by longest-prefix matching over calling codes,
// then the number is checked against ordered calling-code exception tables
// covering enclaves with their own dialing prefixes. As with geolocation,
// some prefixes are too coarse to pin down the exception zone and require
// corroborating evidence.
package phone

import (
	"strings"

	"github.com/veridia/vatplace/errors"
	"github.com/veridia/vatplace/rates"
)

// CalculateRate determines the VAT rate based on a telephone number given
// in international format with a leading +.
//
// evidence is the result of a billing-address or declared-residence
// classification, resolved under the same corroboration rule as the
// geolocation classifier: an indefinite prefix match fails with
// errors.ErrUndefinitive when no evidence is supplied, and is skipped when
// the evidence disagrees.
func CalculateRate(phoneNumber string, evidence *rates.Evidence) (rates.Result, error) {
	digits, err := normalize(phoneNumber)
	if err != nil {
		return rates.Result{}, err
	}

	countryCode := lookupCountryCode(digits)
	if countryCode == "" {
		return rates.Result{}, errors.NewInvalidInputf("phone number does not appear to be a valid international phone number")
	}

	for _, m := range callingCodeExceptions[countryCode] {
		if !m.pattern.MatchString(digits) {
			continue
		}

		if !m.definitive {
			if evidence == nil {
				return rates.Result{}, errors.Wrapf(errors.ErrUndefinitive,
					"calling prefix is not specific enough to distinguish %q", m.name)
			}
			if !evidence.Corroborates(m.countryCode, m.name) {
				continue
			}
		}

		exc, err := rates.ExceptionRateFor(m.countryCode, m.name)
		if err != nil {
			return rates.Result{}, errors.Wrapf(err, "calling-code exception table references unknown entry %s/%s", m.countryCode, m.name)
		}
		return rates.Result{Rate: exc.Rate, CountryCode: m.countryCode, ExceptionName: m.name}, nil
	}

	record, ok := rates.ByCountry[countryCode]
	if !ok {
		return rates.Result{CountryCode: countryCode}, nil
	}
	return rates.Result{Rate: record.BaseRate, CountryCode: countryCode}, nil
}

// normalize strips everything but digits and the leading +, returning the
// bare digit string. Normalizing the digits of an already-normalized number
// leaves them unchanged.
func normalize(phoneNumber string) (string, error) {
	if phoneNumber == "" {
		return "", errors.NewInvalidInputf("no phone number provided")
	}

	var b strings.Builder
	for i, r := range strings.TrimSpace(phoneNumber) {
		if r >= '0' && r <= '9' || r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	if cleaned == "" || cleaned[0] != '+' {
		return "", errors.NewInvalidInputf("phone number is not in international format with a leading +")
	}

	digits := cleaned[1:]
	if digits == "" {
		return "", errors.NewInvalidInputf("phone number does not appear to contain any digits")
	}
	return digits, nil
}

// lookupCountryCode resolves the digit string to a two-character country
// code, or "" when no calling code matches.
func lookupCountryCode(digits string) string {
	for _, m := range callingCodeMapping[digits[0]] {
		if m.pattern.MatchString(digits) {
			return m.countryCode
		}
	}
	return ""
}
