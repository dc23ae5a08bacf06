package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridia/vatplace/errors"
)

func TestCalculateRate(t *testing.T) {
	tests := []struct {
		countryCode   string
		postalCode    string
		city          string
		wantRate      string
		wantCountry   string
		wantException string
	}{
		{"AT", "6691", "Jungholz", "0.19", "AT", "Jungholz"},
		{"AT", "6991", "Mittelberg", "0.19", "AT", "Mittelberg"},
		{"at", "6992", "Mittelberg", "0.19", "AT", "Mittelberg"},
		{"AT", "AT-6993", "Mittelberg", "0.19", "AT", "Mittelberg"},
		{"AT", "6971", "Hard", "0.20", "AT", ""},

		{"BE", "1000", "Brussels", "0.21", "BE", ""},
		{"BG", "1000", "Sofia", "0.20", "BG", ""},

		{"CH", "8238", "Büsingen am Hochrhein", "0.0", "DE", "Büsingen am Hochrhein"},
		{"CH", "6911", "Campione d'Italia", "0.0", "IT", "Campione d'Italia"},
		{"CH", "3907", "Domodossola", "0.22", "IT", ""},

		{"CY", "CY-1010", "Nicosia", "0.19", "CY", ""},
		{"CY", "1010", "Nicosia", "0.19", "CY", ""},
		{"CZ", "250 00", "Prague", "0.21", "CZ", ""},

		{"DE", "87491", "Jungholz", "0.19", "AT", "Jungholz"},
		{"de", "87567", "Mittelberg", "0.19", "AT", "Mittelberg"},
		{"de ", "87568", "mittelberg", "0.19", "AT", "Mittelberg"},
		{"DE", "DE-87569", "Mittelberg", "0.19", "AT", "Mittelberg"},
		{"DE", "78266", "Büsingen am Hochrhein", "0.0", "DE", "Büsingen am Hochrhein"},
		{"DE", "27498", "Heligoland", "0.0", "DE", "Heligoland"},
		{"DE", "04774", "Dahlen", "0.19", "DE", ""},

		{"DK", "1000", "Copenhagen", "0.25", "DK", ""},
		{"EE", "15199", "Tallinn", "0.20", "EE", ""},

		{"ES", "38001", "Santa Cruz de Tenerife", "0.0", "ES", "Canary Islands"},
		{"ES", "35630", "Antigua", "0.0", "ES", "Canary Islands"},
		{"ES", "35001", "Las Palmas", "0.0", "ES", "Canary Islands"},
		{"ES", "52002", "Melilla", "0.0", "ES", "Melilla"},
		{"ES", "51001", "Ceuta", "0.0", "ES", "Ceuta"},
		{"es", "28001", "Madrid", "0.21", "ES", ""},

		{"FI", "00140", "Helsinki", "0.24", "FI", ""},
		{"FR", "75016", "Paris", "0.20", "FR", ""},

		{"GB", "BFP O57", "Akrotiri", "0.19", "CY", ""},
		{"GB", "BFP O58", "Dhekelia", "0.19", "CY", ""},
		{"GB", "W8 4RU", "London", "0.20", "GB", ""},

		{"GR", "63086", "Mount Athos", "0.0", "GR", "Mount Athos"},
		{"GR", "10001", "Athens", "0.23", "GR", ""},

		{"HR", "HR-10000", "Zagreb", "0.25", "HR", ""},
		{"HU", "1239", "Budapest", "0.27", "HU", ""},

		{"IE", "Dublin 1", "Dublin", "0.23", "IE", ""},
		{"IE", "", "Galway", "0.23", "IE", ""},

		{"it", "22060", "Campione d'Italia", "0.0", "IT", "Campione d'Italia"},
		{"IT", "22060", "Campione dItalia", "0.0", "IT", "Campione d'Italia"},
		{"it ", "22060", "Campione", "0.0", "IT", "Campione d'Italia"},
		{"it", "23030", "Livigno", "0.0", "IT", "Livigno"},
		{"IT", "00100", "Rome", "0.22", "IT", ""},

		{"LT", "01001", "Vilnius", "0.21", "LT", ""},
		{"LU", "L-1248", "Luxembourg", "0.17", "LU", ""},
		{"LV", "LV-1001", "Riga", "0.21", "LV", ""},
		{"MT", "VLT", "Valletta", "0.18", "MT", ""},
		{"NL", "1000", "Amsterdam", "0.21", "NL", ""},
		{"PL", "00-001", "Warsaw", "0.23", "PL", ""},

		{"PT", "9970", "Santa Cruz das Flores", "0.18", "PT", "Azores"},
		{"PT", "9980-024", "Vila do Corvo", "0.18", "PT", "Azores"},
		{"PT", "9701-101", "Angra do Heroísmo", "0.18", "PT", "Azores"},
		{"PT", "9900-997", "Horta", "0.18", "PT", "Azores"},
		{"PT", "9000", "Funchal", "0.22", "PT", "Madeira"},
		{"PT", "1149-014", "Lisbon", "0.23", "PT", ""},

		{"RO", "010131", "București", "0.24", "RO", ""},
		{"SE", "SE-100 00", "Stockholm", "0.25", "SE", ""},
		{"SI", "1000", "Ljubljana", "0.22", "SI", ""},
		{"SK", "811 02", "Bratislava", "0.20", "SK", ""},

		{"MC", "98025", "Monaco", "0.20", "MC", ""},
		{"IM", "IM2 1RB", "Douglas", "0.20", "IM", ""},
		{"NO", "0001", "Oslo", "0.25", "NO", ""},

		{"US", "01950", "Newburyport", "0.0", "US", ""},
		{"CA", "K2R 1C5", "Ottawa", "0.0", "CA", ""},
	}

	for _, tt := range tests {
		t.Run(tt.countryCode+"/"+tt.postalCode+"/"+tt.city, func(t *testing.T) {
			result, err := CalculateRate(tt.countryCode, tt.postalCode, tt.city)
			require.NoError(t, err)
			assert.True(t, result.Rate.Equal(decimal.RequireFromString(tt.wantRate)),
				"got rate %s, want %s", result.Rate, tt.wantRate)
			assert.Equal(t, tt.wantCountry, result.CountryCode)
			assert.Equal(t, tt.wantException, result.ExceptionName)
		})
	}
}

func TestCalculateRateInvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		countryCode string
		postalCode  string
		city        string
	}{
		{name: "postal code required for CA", countryCode: "CA", city: "Ottawa"},
		{name: "postal code required for US", countryCode: "US", city: "Boston"},
		{name: "country required", countryCode: "", postalCode: "02108", city: "Boston"},
		{name: "city required", countryCode: "US", postalCode: "02108"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateRate(tt.countryCode, tt.postalCode, tt.city)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidInput(err))
		})
	}
}

func TestNormalizePostalCodeIdempotent(t *testing.T) {
	tests := []struct {
		countryCode string
		postalCode  string
		want        string
	}{
		{"AT", "AT-6993", "6993"},
		{"GB", "BFP O57", "BFPO57"},
		{"PL", "00-001", "00001"},
		{"LU", "L-1248", "L1248"},
		{"SE", "se-100 00", "10000"},
	}

	for _, tt := range tests {
		t.Run(tt.postalCode, func(t *testing.T) {
			once := normalizePostalCode(tt.countryCode, tt.postalCode)
			assert.Equal(t, tt.want, once)
			assert.Equal(t, once, normalizePostalCode(tt.countryCode, once))
		})
	}
}
