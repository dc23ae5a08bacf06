package vatid

import "regexp"

type idPattern struct {
	// regex matches the number portion of the VAT ID, after the prefix.
	regex *regexp.Regexp
	// countryCode is the ISO country code for the prefix.
	countryCode string
}

// idPatterns maps VAT ID prefixes to format checks, compiled from the
// national formats published via the European Commission and Skatteetaten.
// The EL prefix is Greece; GB government department codes run GD001-GD499
// and health authority codes HA500-HA999, so numbers outside those ranges
// are rejected without a registry call.
var idPatterns = map[string]idPattern{
	"AT": {regexp.MustCompile(`^U\d{8}$`), "AT"},
	"BE": {regexp.MustCompile(`^(1|0?)\d{9}$`), "BE"},
	"BG": {regexp.MustCompile(`^\d{9,10}$`), "BG"},
	"CY": {regexp.MustCompile(`^\d{8}[A-Z]$`), "CY"},
	"CZ": {regexp.MustCompile(`^\d{8,10}$`), "CZ"},
	"DE": {regexp.MustCompile(`^\d{9}$`), "DE"},
	"DK": {regexp.MustCompile(`^\d{8}$`), "DK"},
	"EE": {regexp.MustCompile(`^\d{9}$`), "EE"},
	"EL": {regexp.MustCompile(`^\d{9}$`), "GR"},
	"ES": {regexp.MustCompile(`^[A-Z0-9]\d{7}[A-Z0-9]$`), "ES"},
	"FI": {regexp.MustCompile(`^\d{8}$`), "FI"},
	"FR": {regexp.MustCompile(`^[A-Z0-9]{2}\d{9}$`), "FR"},
	"GB": {regexp.MustCompile(`^(GD(00[1-9]|0[1-9]\d|[1-4]\d{2})|HA[5-9]\d{2}|\d{9}|\d{12})$`), "GB"},
	"HR": {regexp.MustCompile(`^\d{11}$`), "HR"},
	"HU": {regexp.MustCompile(`^\d{8}$`), "HU"},
	"IE": {regexp.MustCompile(`^(\d{7}[A-Z]{1,2}|\d[A-Z+*]\d{5}[A-Z])$`), "IE"},
	"IT": {regexp.MustCompile(`^\d{11}$`), "IT"},
	"LT": {regexp.MustCompile(`^(\d{9}|\d{12})$`), "LT"},
	"LU": {regexp.MustCompile(`^\d{8}$`), "LU"},
	"LV": {regexp.MustCompile(`^\d{11}$`), "LV"},
	"MT": {regexp.MustCompile(`^\d{8}$`), "MT"},
	"NL": {regexp.MustCompile(`^\d{9}B\d{2}$`), "NL"},
	"NO": {regexp.MustCompile(`^\d{9}MVA$`), "NO"},
	"PL": {regexp.MustCompile(`^\d{10}$`), "PL"},
	"PT": {regexp.MustCompile(`^\d{9}$`), "PT"},
	"RO": {regexp.MustCompile(`^\d{2,10}$`), "RO"},
	"SE": {regexp.MustCompile(`^\d{12}$`), "SE"},
	"SI": {regexp.MustCompile(`^\d{8}$`), "SI"},
	"SK": {regexp.MustCompile(`^\d{10}$`), "SK"},
}
