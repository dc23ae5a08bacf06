package vatid

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/veridia/vatplace/errors"
	"github.com/veridia/vatplace/internal/httpclient"
	"github.com/veridia/vatplace/logger"
)

// BrregEndpoint is the public endpoint of the Brønnøysund Register Centre
// entity registry, which covers Norwegian VAT (MVA) registrations.
const BrregEndpoint = "https://data.brreg.no/enhetsregisteret/enhet"

// brregRegistry validates Norwegian organization numbers against the
// Brønnøysund registry REST API.
type brregRegistry struct {
	endpoint string
	client   *httpclient.SaferClient
}

type brregEntity struct {
	OrganizationNumber json.Number `json:"organisasjonsnummer"`
	Name               string      `json:"navn"`
}

func (r *brregRegistry) Check(ctx context.Context, prefix, number string) (string, error) {
	// Norwegian VAT IDs carry an MVA suffix the registry does not use
	organizationNumber := strings.TrimSuffix(number, "MVA")

	logger.Debugw("checking organization number against brreg", "number", organizationNumber)

	url := fmt.Sprintf("%s/%s.json", r.endpoint, organizationNumber)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to build brreg request")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "brreg request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", errors.Wrapf(errors.ErrInvalidID,
			"organization number %s is not registered with brreg", organizationNumber)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return "", errors.Wrapf(errors.ErrRegistryUnavailable,
			"brreg responded with HTTP %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Wrapf(errors.ErrRegistryProtocol,
			"brreg responded with HTTP %d", resp.StatusCode)
	}

	var entity brregEntity
	if err := json.NewDecoder(resp.Body).Decode(&entity); err != nil {
		return "", errors.Wrap(errors.ErrRegistryProtocol, err.Error())
	}

	if entity.OrganizationNumber.String() != organizationNumber {
		return "", errors.Wrapf(errors.ErrRegistryProtocol,
			"brreg returned organization number %q for a lookup of %q",
			entity.OrganizationNumber, organizationNumber)
	}
	if entity.Name == "" {
		return "", errors.Wrap(errors.ErrRegistryProtocol,
			"brreg response did not contain an entity name")
	}

	return entity.Name, nil
}
