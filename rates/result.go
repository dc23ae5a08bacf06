package rates

import "github.com/shopspring/decimal"

// Result is the output contract shared by every classifier: the rate to
// collect, the jurisdiction it belongs to, and the exception zone that
// produced it. ExceptionName is empty when the jurisdiction default applies.
//
// A fresh Result is produced by every classification call; nothing is
// persisted.
type Result struct {
	Rate          decimal.Decimal
	CountryCode   string
	ExceptionName string
}

// Evidence is a corroborating (jurisdiction, exception) pair, already
// computed by the billing-address or declared-residence classifier. The
// geolocation and phone classifiers use it to resolve matches that are not
// definitive on their own. It is passed explicitly per call, never carried
// in shared state.
type Evidence struct {
	CountryCode   string
	ExceptionName string
}

// Corroborates reports whether the evidence agrees with a candidate match.
// A nil Evidence corroborates nothing.
func (e *Evidence) Corroborates(countryCode, exceptionName string) bool {
	return e != nil && e.CountryCode == countryCode && e.ExceptionName == exceptionName
}
