// Package geoip2 resolves VAT rates from coarse IP geolocation.
//
// The country, subdivision, and city fields of a GeoLite2 lookup are
// matched against ordered exception tables. Some exception zones have no
// independent geolocation identity (the whole surrounding region is
// flagged instead), so entries carry a definitive flag: matches that are
// not definitive require corroborating evidence from the billing-address
// or declared-residence classifier.
package geoip2

import (
	"strings"

	"github.com/veridia/vatplace/errors"
	"github.com/veridia/vatplace/rates"
)

// CalculateRate determines the VAT rate from GeoLite2 data.
//
// evidence is the result of a billing-address or declared-residence
// classification, passed explicitly to resolve matches that are not
// definitive. With no evidence an indefinite match fails with
// errors.ErrUndefinitive; evidence naming a different jurisdiction or
// exception turns the match into a non-match and scanning continues,
// falling through to the jurisdiction default.
func CalculateRate(countryCode, subdivision, city string, evidence *rates.Evidence) (rates.Result, error) {
	countryCode, err := rates.NormalizeCountry(countryCode)
	if err != nil {
		return rates.Result{}, err
	}

	subdivision = strings.ToLower(subdivision)
	city = strings.ToLower(city)

	record, ok := rates.ByCountry[countryCode]
	if !ok {
		return rates.Result{CountryCode: countryCode}, nil
	}

	for _, m := range geoExceptions[countryCode] {
		if m.subdivision != subdivision {
			continue
		}
		if m.city != "" && m.city != city {
			continue
		}

		if !m.definitive {
			if evidence == nil {
				return rates.Result{}, errors.Wrapf(errors.ErrUndefinitive,
					"geolocation for %s/%s is not specific enough to distinguish %q", countryCode, subdivision, m.name)
			}
			if !evidence.Corroborates(countryCode, m.name) {
				continue
			}
		}

		exc, err := rates.ExceptionRateFor(countryCode, m.name)
		if err != nil {
			return rates.Result{}, errors.Wrapf(err, "geo exception table references unknown entry %s/%s", countryCode, m.name)
		}
		return rates.Result{Rate: exc.Rate, CountryCode: countryCode, ExceptionName: m.name}, nil
	}

	return rates.Result{Rate: record.BaseRate, CountryCode: countryCode}, nil
}

// geoMatcher is one entry in a jurisdiction's ordered geolocation exception
// table. Subdivision and city are compared exactly, case-insensitively; an
// empty city matches any city. definitive marks matches specific enough to
// assign the exception without further evidence.
type geoMatcher struct {
	subdivision string
	city        string
	name        string
	definitive  bool
}

// geoExceptions maps GeoLite2 data to VAT exception zones, ordered
// first-match-wins per jurisdiction.
var geoExceptions = map[string][]geoMatcher{
	"AT": {
		{subdivision: "tyrol", city: "reutte", name: "Jungholz", definitive: false},
		{subdivision: "vorarlberg", city: "mittelberg", name: "Mittelberg", definitive: true},
	},
	"DE": {
		{subdivision: "baden-württemberg region", city: "konstanz", name: "Büsingen am Hochrhein", definitive: false},
		{subdivision: "schleswig-holstein", city: "pinneberg", name: "Heligoland", definitive: false},
	},
	"ES": {
		{subdivision: "canary islands", name: "Canary Islands", definitive: true},
		{subdivision: "ceuta", name: "Ceuta", definitive: true},
		{subdivision: "melilla", name: "Melilla", definitive: true},
	},
	"GR": {
		// There is no direct entry for Mount Athos, so we just flag the
		// Central Macedonia region since it is part of that
		{subdivision: "central macedonia", name: "Mount Athos", definitive: false},
	},
	"IT": {
		{subdivision: "lombardy", city: "livigno", name: "Livigno", definitive: true},
		// There are no entries that cover Campione d'Italia, so instead we
		// just flag the whole region of Lombardy as not definitive.
		{subdivision: "lombardy", name: "Campione d'Italia", definitive: false},
	},
	"PT": {
		{subdivision: "azores", name: "Azores", definitive: true},
		{subdivision: "madeira", name: "Madeira", definitive: true},
	},
}
