// Package rates is the reference data store for VAT jurisdictions.
//
// It maps 2-letter jurisdiction codes to their standard VAT rate and to any
// named exception zones (enclaves, overseas territories, special-rate
// territories) with rates differing from the jurisdiction default. The table
// is immutable and shared read-only by all classifiers.
//
// Rates were pulled from the following sources December 17, 2014:
//
//	http://ec.europa.eu/taxation_customs/resources/documents/taxation/vat/how_vat_works/rates/vat_rates_en.pdf
//	http://www.skatteetaten.no/en/Bedrift-og-organisasjon/Merverdiavgift/Guide-to-Value-Added-Tax-in-Norway/?chapter=3732#kapitteltekst
//	http://en.wikipedia.org/wiki/Special_member_state_territories_and_the_European_Union
package rates

import (
	"github.com/shopspring/decimal"

	"github.com/veridia/vatplace/errors"
)

// ErrUnknownJurisdiction indicates a jurisdiction code absent from the rate
// table. Callers treat absence as "rate 0" for jurisdictions outside the
// covered set.
var ErrUnknownJurisdiction = errors.New("unknown jurisdiction")

// Exception is the rate entry for a named exception zone. It is either a
// plain rate, or a redirect when the zone is legally domiciled in a
// different jurisdiction for VAT purposes (the UK RAF bases in Cyprus are
// taxed at the Cyprus rate under the CY jurisdiction).
type Exception struct {
	Rate decimal.Decimal

	// RedirectCountry and RedirectName replace the jurisdiction and
	// exception name in the classification output when set. RedirectName
	// may be empty even when RedirectCountry is set: the zone then resolves
	// to the target jurisdiction with no exception label.
	RedirectCountry string
	RedirectName    string
}

// IsRedirect reports whether the entry redirects to another jurisdiction.
func (e Exception) IsRedirect() bool {
	return e.RedirectCountry != ""
}

// Record holds the rate information for one jurisdiction.
type Record struct {
	BaseRate   decimal.Decimal
	Exceptions map[string]Exception
}

// RateFor returns the standard rate for a jurisdiction, or
// ErrUnknownJurisdiction if the jurisdiction is not in the table.
func RateFor(countryCode string) (decimal.Decimal, error) {
	record, ok := ByCountry[countryCode]
	if !ok {
		return decimal.Zero, errors.Wrapf(ErrUnknownJurisdiction, "no rate record for %q", countryCode)
	}
	return record.BaseRate, nil
}

// ExceptionRateFor returns the rate entry for a named exception zone of a
// jurisdiction. It fails with ErrUnknownJurisdiction when the jurisdiction
// is absent and with a plain error when the name is not one of the
// jurisdiction's exceptions.
func ExceptionRateFor(countryCode, name string) (Exception, error) {
	record, ok := ByCountry[countryCode]
	if !ok {
		return Exception{}, errors.Wrapf(ErrUnknownJurisdiction, "no rate record for %q", countryCode)
	}
	exc, ok := record.Exceptions[name]
	if !ok {
		return Exception{}, errors.Newf("%q is not an exception of %s", name, countryCode)
	}
	return exc, nil
}

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// ByCountry contains rate records for every jurisdiction with VAT collection
// requirements, including non-EU territories associated with EU countries.
// Zones where VAT does not apply carry a rate of 0.
var ByCountry = map[string]Record{
	"AT": { // Austria
		BaseRate: d("0.20"),
		Exceptions: map[string]Exception{
			"Jungholz":   {Rate: d("0.19")},
			"Mittelberg": {Rate: d("0.19")},
		},
	},
	"BE": { // Belgium
		BaseRate: d("0.21"),
	},
	"BG": { // Bulgaria
		BaseRate: d("0.20"),
	},
	"CY": { // Cyprus
		BaseRate: d("0.19"),
	},
	"CZ": { // Czech Republic
		BaseRate: d("0.21"),
	},
	"DE": { // Germany
		BaseRate: d("0.19"),
		Exceptions: map[string]Exception{
			"Büsingen am Hochrhein": {Rate: d("0.0")},
			"Heligoland":            {Rate: d("0.0")},
		},
	},
	"DK": { // Denmark
		BaseRate: d("0.25"),
	},
	"EE": { // Estonia
		BaseRate: d("0.20"),
	},
	"ES": { // Spain
		BaseRate: d("0.21"),
		Exceptions: map[string]Exception{
			"Canary Islands": {Rate: d("0.0")},
			"Ceuta":          {Rate: d("0.0")},
			"Melilla":        {Rate: d("0.0")},
		},
	},
	"FI": { // Finland
		BaseRate: d("0.24"),
	},
	"FR": { // France
		BaseRate: d("0.20"),
	},
	"GB": { // United Kingdom
		BaseRate: d("0.20"),
		Exceptions: map[string]Exception{
			// UK RAF bases in Cyprus are taxed at the Cyprus rate
			"Akrotiri": {Rate: d("0.19"), RedirectCountry: "CY"},
			"Dhekelia": {Rate: d("0.19"), RedirectCountry: "CY"},
		},
	},
	"GR": { // Greece
		BaseRate: d("0.23"),
		Exceptions: map[string]Exception{
			"Mount Athos": {Rate: d("0.0")},
		},
	},
	"HR": { // Croatia
		BaseRate: d("0.25"),
	},
	"HU": { // Hungary
		BaseRate: d("0.27"),
	},
	"IE": { // Ireland
		BaseRate: d("0.23"),
	},
	"IT": { // Italy
		BaseRate: d("0.22"),
		Exceptions: map[string]Exception{
			"Campione d'Italia": {Rate: d("0.0")},
			"Livigno":           {Rate: d("0.0")},
		},
	},
	"LT": { // Lithuania
		BaseRate: d("0.21"),
	},
	"LU": { // Luxembourg
		BaseRate: d("0.17"),
	},
	"LV": { // Latvia
		BaseRate: d("0.21"),
	},
	"MT": { // Malta
		BaseRate: d("0.18"),
	},
	"NL": { // Netherlands
		BaseRate: d("0.21"),
	},
	"PL": { // Poland
		BaseRate: d("0.23"),
	},
	"PT": { // Portugal
		BaseRate: d("0.23"),
		Exceptions: map[string]Exception{
			"Azores":  {Rate: d("0.18")},
			"Madeira": {Rate: d("0.22")},
		},
	},
	"RO": { // Romania
		BaseRate: d("0.24"),
	},
	"SE": { // Sweden
		BaseRate: d("0.25"),
	},
	"SI": { // Slovenia
		BaseRate: d("0.22"),
	},
	"SK": { // Slovakia
		BaseRate: d("0.20"),
	},

	// Countries associated with EU countries that have a special VAT rate
	"MC": { // Monaco - France
		BaseRate: d("0.20"),
	},
	"IM": { // Isle of Man - United Kingdom
		BaseRate: d("0.20"),
	},

	// Non-EU with their own VAT collection requirements
	"NO": { // Norway
		BaseRate: d("0.25"),
	},
}
