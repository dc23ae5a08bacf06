package billing

import "regexp"

// postalMatcher is one entry in a jurisdiction's ordered exception table.
// The postal pattern is matched against the full normalized postal code;
// the optional city pattern is searched for within the lowercased city
// name. An entry with a name resolves to that named exception in
// countryCode's rate table; an entry without a name is a plain redirect to
// countryCode's default rate.
type postalMatcher struct {
	postal      *regexp.Regexp
	city        *regexp.Regexp
	countryCode string
	name        string
}

// postalCodeExceptions maps jurisdictions to ordered first-match-wins
// matcher lists. The countryCode on each entry may differ from the table
// key because some jurisdictions have post offices through multiple
// countries. These should only be used with billing addresses.
var postalCodeExceptions = map[string][]postalMatcher{
	"AT": {
		{
			postal:      regexp.MustCompile(`^6691$`),
			countryCode: "AT",
			name:        "Jungholz",
		},
		{
			postal:      regexp.MustCompile(`^699[123]$`),
			city:        regexp.MustCompile(`\bmittelberg\b`),
			countryCode: "AT",
			name:        "Mittelberg",
		},
	},
	"CH": {
		{
			postal:      regexp.MustCompile(`^8238$`),
			countryCode: "DE",
			name:        "Büsingen am Hochrhein",
		},
		{
			postal:      regexp.MustCompile(`^6911$`),
			countryCode: "IT",
			name:        "Campione d'Italia",
		},
		// The Italian city of Domodossola has a Swiss post office also
		{
			postal:      regexp.MustCompile(`^3907$`),
			countryCode: "IT",
		},
	},
	"DE": {
		{
			postal:      regexp.MustCompile(`^87491$`),
			countryCode: "AT",
			name:        "Jungholz",
		},
		{
			postal:      regexp.MustCompile(`^8756[789]$`),
			city:        regexp.MustCompile(`\bmittelberg\b`),
			countryCode: "AT",
			name:        "Mittelberg",
		},
		{
			postal:      regexp.MustCompile(`^78266$`),
			countryCode: "DE",
			name:        "Büsingen am Hochrhein",
		},
		{
			postal:      regexp.MustCompile(`^27498$`),
			countryCode: "DE",
			name:        "Heligoland",
		},
	},
	"ES": {
		{
			postal:      regexp.MustCompile(`^(5100[1-5]|5107[0-1]|51081)$`),
			countryCode: "ES",
			name:        "Ceuta",
		},
		{
			postal:      regexp.MustCompile(`^(5200[0-6]|5207[0-1]|52081)$`),
			countryCode: "ES",
			name:        "Melilla",
		},
		{
			postal:      regexp.MustCompile(`^(35\d{3}|38\d{3})$`),
			countryCode: "ES",
			name:        "Canary Islands",
		},
	},
	// The UK RAF bases in Cyprus are taxed at the Cyprus rate
	"GB": {
		// Akrotiri
		{
			postal:      regexp.MustCompile(`^(BFPO57|BF12AT)$`),
			countryCode: "CY",
		},
		// Dhekelia
		{
			postal:      regexp.MustCompile(`^(BFPO58|BF12AU)$`),
			countryCode: "CY",
		},
	},
	"GR": {
		{
			postal:      regexp.MustCompile(`^63086$`),
			countryCode: "GR",
			name:        "Mount Athos",
		},
	},
	"IT": {
		{
			postal:      regexp.MustCompile(`^22060$`),
			city:        regexp.MustCompile(`\bcampione\b`),
			countryCode: "IT",
			name:        "Campione d'Italia",
		},
		{
			postal:      regexp.MustCompile(`^23030$`),
			city:        regexp.MustCompile(`\blivigno\b`),
			countryCode: "IT",
			name:        "Livigno",
		},
	},
	"PT": {
		{
			postal:      regexp.MustCompile(`^9[0-4]\d{2,}$`),
			countryCode: "PT",
			name:        "Madeira",
		},
		{
			postal:      regexp.MustCompile(`^9[5-9]\d{2,}$`),
			countryCode: "PT",
			name:        "Azores",
		},
	},
}

// countriesWithoutPostalCodes is the fixed set of countries where a billing
// address legitimately carries no postal code.
var countriesWithoutPostalCodes = map[string]bool{
	"AE": true, "AG": true, "AN": true, "AO": true, "AW": true,
	"BF": true, "BI": true, "BJ": true, "BS": true, "BW": true,
	"BZ": true, "CD": true, "CF": true, "CG": true, "CI": true,
	"CK": true, "CM": true, "DJ": true, "DM": true, "ER": true,
	"FJ": true, "GD": true, "GH": true, "GM": true, "GN": true,
	"GQ": true, "GY": true, "HK": true, "IE": true, "JM": true,
	"KE": true, "KI": true, "KM": true, "KN": true, "KP": true,
	"LC": true, "ML": true, "MO": true, "MR": true, "MS": true,
	"MU": true, "MW": true, "NR": true, "NU": true, "PA": true,
	"QA": true, "RW": true, "SA": true, "SB": true, "SC": true,
	"SL": true, "SO": true, "SR": true, "ST": true, "SY": true,
	"TF": true, "TK": true, "TL": true, "TO": true, "TT": true,
	"TV": true, "TZ": true, "UG": true, "VU": true, "YE": true,
	"ZA": true, "ZW": true,
}
