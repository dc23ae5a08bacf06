package geoip2

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridia/vatplace/errors"
	"github.com/veridia/vatplace/rates"
)

func TestCalculateRate(t *testing.T) {
	tests := []struct {
		countryCode   string
		subdivision   string
		city          string
		evidence      *rates.Evidence
		wantRate      string
		wantCountry   string
		wantException string
	}{
		{"AT", "Tyrol", "Reutte", &rates.Evidence{CountryCode: "AT", ExceptionName: "Jungholz"}, "0.19", "AT", "Jungholz"},
		{"AT", "Tyrol", "Reutte", &rates.Evidence{CountryCode: "AT"}, "0.20", "AT", ""},
		{"AT", "Vorarlberg", "Mittelberg", &rates.Evidence{CountryCode: "AT", ExceptionName: "Mittelberg"}, "0.19", "AT", "Mittelberg"},
		{"AT", "Salzburg", "Salzburg", &rates.Evidence{CountryCode: "AT"}, "0.20", "AT", ""},

		{"BE", "Brussels Capital", "Schaarbeek", &rates.Evidence{CountryCode: "BE"}, "0.21", "BE", ""},
		{"CY", "Lefkosia", "Nicosia", &rates.Evidence{CountryCode: "CY"}, "0.19", "CY", ""},

		{"DE", "Schleswig-Holstein", "Pinneberg", &rates.Evidence{CountryCode: "DE", ExceptionName: "Heligoland"}, "0.0", "DE", "Heligoland"},
		{"DE", "Schleswig-Holstein", "Pinneberg", &rates.Evidence{CountryCode: "DE"}, "0.19", "DE", ""},
		{"DE", "Baden-Württemberg Region", "Konstanz", &rates.Evidence{CountryCode: "DE", ExceptionName: "Büsingen am Hochrhein"}, "0.0", "DE", "Büsingen am Hochrhein"},
		// An exception declared by the address but a non-exception location
		{"DE", "Schleswig-Holstein", "Berlin", &rates.Evidence{CountryCode: "DE", ExceptionName: "Heligoland"}, "0.19", "DE", ""},
		{"DE", "Schleswig-Holstein", "Berlin", &rates.Evidence{CountryCode: "DE"}, "0.19", "DE", ""},

		{"ES", "Canary Islands", "Santa Cruz de Tenerife", &rates.Evidence{CountryCode: "ES", ExceptionName: "Canary Islands"}, "0.0", "ES", "Canary Islands"},
		{"ES", "Melilla", "Melilla", &rates.Evidence{CountryCode: "ES", ExceptionName: "Melilla"}, "0.0", "ES", "Melilla"},
		{"ES", "Ceuta", "Ceuta", &rates.Evidence{CountryCode: "ES", ExceptionName: "Ceuta"}, "0.0", "ES", "Ceuta"},
		{"ES", "Madrid", "Madrid", &rates.Evidence{CountryCode: "ES"}, "0.21", "ES", ""},

		{"FI", "", "Helsinki", &rates.Evidence{CountryCode: "FI"}, "0.24", "FI", ""},
		{"GB", "England", "London", &rates.Evidence{CountryCode: "GB"}, "0.20", "GB", ""},

		{"GR", "Central Macedonia", "Ormylia", &rates.Evidence{CountryCode: "GR", ExceptionName: "Mount Athos"}, "0.0", "GR", "Mount Athos"},
		{"GR", "Central Macedonia", "Ormylia", &rates.Evidence{CountryCode: "GR"}, "0.23", "GR", ""},
		{"GR", "Attica", "Athens", &rates.Evidence{CountryCode: "GR"}, "0.23", "GR", ""},

		{"IT", "Lombardy", "Como", &rates.Evidence{CountryCode: "IT", ExceptionName: "Campione d'Italia"}, "0.0", "IT", "Campione d'Italia"},
		{"IT", "Lombardy", "Como", &rates.Evidence{CountryCode: "IT"}, "0.22", "IT", ""},
		{"IT", "Lombardy", "Livigno", &rates.Evidence{CountryCode: "IT", ExceptionName: "Livigno"}, "0.0", "IT", "Livigno"},
		// Livigno is definitive, so a non-exception address does not override
		{"IT", "Lombardy", "Livigno", &rates.Evidence{CountryCode: "IT"}, "0.0", "IT", "Livigno"},
		{"IT", "Lombardy", "Cologne", &rates.Evidence{CountryCode: "IT"}, "0.22", "IT", ""},

		{"LU", "District de Luxembourg", "Luxembourg", &rates.Evidence{CountryCode: "LU"}, "0.17", "LU", ""},

		{"PT", "Azores", "Lajes", &rates.Evidence{CountryCode: "PT", ExceptionName: "Azores"}, "0.18", "PT", "Azores"},
		{"PT", "Azores", "Lajes", &rates.Evidence{CountryCode: "PT"}, "0.18", "PT", "Azores"},
		{"PT", "Madeira", "Santa Cruz", &rates.Evidence{CountryCode: "PT"}, "0.22", "PT", "Madeira"},
		{"PT", "Lisbon", "Lisbon", &rates.Evidence{CountryCode: "PT"}, "0.23", "PT", ""},

		{"MC", "Monaco", "Monaco", &rates.Evidence{CountryCode: "MC"}, "0.20", "MC", ""},
		{"IM", "", "Douglas", &rates.Evidence{CountryCode: "IM"}, "0.20", "IM", ""},
		{"NO", "Oslo County", "Oslo", &rates.Evidence{CountryCode: "NO"}, "0.25", "NO", ""},

		{"US", "Massachusetts", "Newburyport", &rates.Evidence{CountryCode: "US"}, "0.0", "US", ""},
		{"CA", "Ontario", "Ottawa", &rates.Evidence{CountryCode: "CA"}, "0.0", "CA", ""},
	}

	for _, tt := range tests {
		t.Run(tt.countryCode+"/"+tt.subdivision+"/"+tt.city, func(t *testing.T) {
			result, err := CalculateRate(tt.countryCode, tt.subdivision, tt.city, tt.evidence)
			require.NoError(t, err)
			assert.True(t, result.Rate.Equal(decimal.RequireFromString(tt.wantRate)),
				"got rate %s, want %s", result.Rate, tt.wantRate)
			assert.Equal(t, tt.wantCountry, result.CountryCode)
			assert.Equal(t, tt.wantException, result.ExceptionName)
		})
	}
}

func TestCalculateRateWithoutEvidence(t *testing.T) {
	// Definitive matches resolve without evidence
	result, err := CalculateRate("PT", "Azores", "Lajes", nil)
	require.NoError(t, err)
	assert.Equal(t, "Azores", result.ExceptionName)

	// Indefinite matches need evidence to resolve either way
	_, err = CalculateRate("DE", "Schleswig-Holstein", "Pinneberg", nil)
	require.Error(t, err)
	assert.True(t, errors.IsUndefinitive(err))

	_, err = CalculateRate("GR", "Central Macedonia", "Ormylia", nil)
	require.Error(t, err)
	assert.True(t, errors.IsUndefinitive(err))

	// Locations off the exception tables never need evidence
	result, err = CalculateRate("DE", "Berlin", "Berlin", nil)
	require.NoError(t, err)
	assert.Equal(t, "DE", result.CountryCode)
	assert.Empty(t, result.ExceptionName)
}

func TestCalculateRateInvalidCountry(t *testing.T) {
	_, err := CalculateRate("", "Lombardy", "Como", nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
}
