package rates

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridia/vatplace/errors"
)

func TestRateFor(t *testing.T) {
	tests := []struct {
		countryCode string
		want        string
	}{
		{"AT", "0.20"},
		{"DE", "0.19"},
		{"HU", "0.27"},
		{"LU", "0.17"},
		{"MC", "0.20"},
		{"IM", "0.20"},
		{"NO", "0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.countryCode, func(t *testing.T) {
			rate, err := RateFor(tt.countryCode)
			require.NoError(t, err)
			assert.True(t, rate.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", rate, tt.want)
		})
	}
}

func TestRateForUnknownJurisdiction(t *testing.T) {
	_, err := RateFor("US")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownJurisdiction))
}

func TestExceptionRateFor(t *testing.T) {
	tests := []struct {
		countryCode string
		name        string
		wantRate    string
	}{
		{"AT", "Jungholz", "0.19"},
		{"DE", "Heligoland", "0.0"},
		{"ES", "Canary Islands", "0.0"},
		{"GR", "Mount Athos", "0.0"},
		{"PT", "Azores", "0.18"},
		{"PT", "Madeira", "0.22"},
	}

	for _, tt := range tests {
		t.Run(tt.countryCode+"/"+tt.name, func(t *testing.T) {
			exc, err := ExceptionRateFor(tt.countryCode, tt.name)
			require.NoError(t, err)
			assert.False(t, exc.IsRedirect())
			assert.True(t, exc.Rate.Equal(decimal.RequireFromString(tt.wantRate)),
				"got %s, want %s", exc.Rate, tt.wantRate)
		})
	}
}

func TestExceptionRateForRedirect(t *testing.T) {
	exc, err := ExceptionRateFor("GB", "Akrotiri")
	require.NoError(t, err)
	assert.True(t, exc.IsRedirect())
	assert.Equal(t, "CY", exc.RedirectCountry)
	assert.Empty(t, exc.RedirectName)
	assert.True(t, exc.Rate.Equal(decimal.RequireFromString("0.19")))
}

func TestExceptionRateForUnknownName(t *testing.T) {
	_, err := ExceptionRateFor("AT", "Vienna")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnknownJurisdiction))

	_, err = ExceptionRateFor("US", "Anywhere")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownJurisdiction))
}

func TestNormalizeCountry(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "de", want: "DE"},
		{in: " at ", want: "AT"},
		{in: "GB", want: "GB"},
		{in: "", wantErr: true},
		{in: "DEU", wantErr: true},
		{in: "D", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeCountry(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidInput(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvidenceCorroborates(t *testing.T) {
	evidence := &Evidence{CountryCode: "AT", ExceptionName: "Jungholz"}

	assert.True(t, evidence.Corroborates("AT", "Jungholz"))
	assert.False(t, evidence.Corroborates("AT", "Mittelberg"))
	assert.False(t, evidence.Corroborates("DE", "Jungholz"))

	var missing *Evidence
	assert.False(t, missing.Corroborates("AT", "Jungholz"))
}
