// Package vatid normalizes and validates VAT identification numbers.
//
// Validation runs in stages: normalize, per-jurisdiction format check, then
// a remote registry lookup. The format check fails fast so malformed IDs
// never cost a network call. EU VAT IDs are checked against the VIES SOAP
// service; Norwegian IDs against the Brønnøysund business registry REST
// API. Both registries sit behind the Registry interface so the selection
// stays in one table.
package vatid

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/veridia/vatplace/errors"
	"github.com/veridia/vatplace/internal/httpclient"
)

// Registration is the outcome of a successful validation.
type Registration struct {
	// CountryCode is the ISO country code, which differs from the VAT
	// prefix for Greece (prefix EL, country GR).
	CountryCode string
	// ID is the normalized VAT ID including its prefix.
	ID string
	// Name is the registrant name reported by the registry.
	Name string
}

// Registry is the capability a remote VAT registry provides: check a
// format-valid number and report the registrant name.
type Registry interface {
	// Check validates number under the given VAT prefix and returns the
	// registered name. It fails with errors.ErrInvalidID when the registry
	// does not recognize the number, errors.ErrRegistryUnavailable for
	// transient server-side failures, and errors.ErrRegistryProtocol when
	// the response cannot be interpreted.
	Check(ctx context.Context, prefix, number string) (string, error)
}

// Config holds validator configuration. Zero values select the public
// registry endpoints and a 30 second timeout.
type Config struct {
	ViesEndpoint  string
	BrregEndpoint string
	Timeout       time.Duration

	// HTTPClient overrides the default SSRF-guarded client. Tests use
	// this with httpclient.WrapClient to reach httptest servers.
	HTTPClient *httpclient.SaferClient
}

// Validator checks VAT IDs against the remote registries. Safe for
// concurrent use; every call is an independent request/response exchange
// with no internal retries.
type Validator struct {
	registries map[string]Registry
}

// NewValidator creates a Validator from config.
func NewValidator(config Config) *Validator {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	client := config.HTTPClient
	if client == nil {
		client = httpclient.New(config.Timeout)
	}

	vies := &viesRegistry{endpoint: config.ViesEndpoint, client: client}
	if vies.endpoint == "" {
		vies.endpoint = ViesEndpoint
	}
	brreg := &brregRegistry{endpoint: config.BrregEndpoint, client: client}
	if brreg.endpoint == "" {
		brreg.endpoint = BrregEndpoint
	}

	registries := make(map[string]Registry, len(idPatterns))
	for prefix := range idPatterns {
		if prefix == "NO" {
			registries[prefix] = brreg
		} else {
			registries[prefix] = vies
		}
	}
	return &Validator{registries: registries}
}

// Normalize strips whitespace, dashes and periods from a VAT ID, uppercases
// it, and remaps the common incorrect "GR" prefix for Greece to the
// official "EL". It returns an empty string for a blank ID or one whose
// prefix is not an EU country or Norway, and fails with an invalid-input
// error for IDs shorter than three characters.
func Normalize(vatID string) (string, error) {
	if vatID == "" {
		return "", nil
	}
	if len(vatID) < 3 {
		return "", errors.NewInvalidInputf("VAT ID must be at least three characters long")
	}

	vatID = whitespace.ReplaceAllString(vatID, "")
	vatID = strings.ReplaceAll(vatID, "-", "")
	vatID = strings.ReplaceAll(vatID, ".", "")
	vatID = strings.ToUpper(vatID)

	// Fix people using the GR prefix for Greece
	if strings.HasPrefix(vatID, "GR") {
		vatID = "EL" + vatID[2:]
	}

	if len(vatID) < 2 {
		return "", nil
	}
	if _, ok := idPatterns[vatID[0:2]]; !ok {
		return "", nil
	}
	return vatID, nil
}

var whitespace = regexp.MustCompile(`\s+`)

// Validate normalizes a VAT ID, checks its format, and verifies it against
// the registry for its jurisdiction.
//
// It returns (nil, nil) when the ID is blank or not from a tracked
// jurisdiction. Format failures surface as errors.ErrInvalidID before any
// network call is made.
func (v *Validator) Validate(ctx context.Context, vatID string) (*Registration, error) {
	vatID, err := Normalize(vatID)
	if err != nil {
		return nil, err
	}
	if vatID == "" {
		return nil, nil
	}

	prefix := vatID[0:2]
	number := vatID[2:]

	pattern := idPatterns[prefix]
	if !pattern.regex.MatchString(number) {
		return nil, errors.NewInvalidIDf("VAT ID does not appear to be properly formatted for %s", prefix)
	}

	name, err := v.registries[prefix].Check(ctx, prefix, number)
	if err != nil {
		return nil, err
	}

	return &Registration{
		CountryCode: pattern.countryCode,
		ID:          vatID,
		Name:        name,
	}, nil
}
