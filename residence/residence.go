// Package residence resolves VAT rates from self-declared residence.
//
// Unlike the other classifiers there is no matching logic: the caller
// supplies a country and, when applicable, one of the enumerated exception
// names for that country. Exception names are never inferred from free
// text; present the Options catalog to the customer and pass back their
// selection.
package residence

import (
	"github.com/veridia/vatplace/errors"
	"github.com/veridia/vatplace/rates"
)

// CalculateRate determines the VAT rate for a customer based on their
// declared country and any declared exception zone.
//
// exceptionName must be empty or one of the names returned by
// ExceptionsByCountry for the declared country. Redirect entries resolve to
// the target jurisdiction: a residence declared as "Akrotiri" under GB
// returns the Cyprus rate under the CY jurisdiction with no exception name.
func CalculateRate(countryCode, exceptionName string) (rates.Result, error) {
	countryCode, err := rates.NormalizeCountry(countryCode)
	if err != nil {
		return rates.Result{}, err
	}

	record, ok := rates.ByCountry[countryCode]
	if !ok {
		return rates.Result{CountryCode: countryCode}, nil
	}

	if exceptionName == "" {
		return rates.Result{Rate: record.BaseRate, CountryCode: countryCode}, nil
	}

	exc, ok := record.Exceptions[exceptionName]
	if !ok {
		return rates.Result{}, errors.NewInvalidInputf("%q is not a valid exception for %s", exceptionName, countryCode)
	}

	if exc.IsRedirect() {
		return rates.Result{
			Rate:          exc.Rate,
			CountryCode:   exc.RedirectCountry,
			ExceptionName: exc.RedirectName,
		}, nil
	}

	return rates.Result{Rate: exc.Rate, CountryCode: countryCode, ExceptionName: exceptionName}, nil
}

// ExceptionsByCountry returns the names of the VAT exception zones a
// resident of the given country may declare. The slice is empty for
// countries without exceptions.
func ExceptionsByCountry(countryCode string) ([]string, error) {
	countryCode, err := rates.NormalizeCountry(countryCode)
	if err != nil {
		return nil, err
	}
	return exceptionsByCountry[countryCode], nil
}

// The valid exception names, listed by country
var exceptionsByCountry = map[string][]string{
	"AT": {"Jungholz", "Mittelberg"},
	"DE": {"Büsingen am Hochrhein", "Heligoland"},
	"ES": {"Canary Islands", "Ceuta", "Melilla"},
	"GB": {"Akrotiri", "Dhekelia"},
	"GR": {"Mount Athos"},
	"IT": {"Campione d'Italia", "Livigno"},
	"PT": {"Azores", "Madeira"},
}
