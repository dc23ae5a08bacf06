package vatid

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/veridia/vatplace/errors"
	"github.com/veridia/vatplace/internal/httpclient"
	"github.com/veridia/vatplace/logger"
)

// ViesEndpoint is the public endpoint of the EU VAT Information Exchange
// System checkVat service.
const ViesEndpoint = "https://ec.europa.eu/taxation_customs/vies/services/checkVatService"

const viesRequestTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
    <soap:Body>
        <checkVat xmlns="urn:ec.europa.eu:taxud:vies:services:checkVat:types">
            <countryCode>%s</countryCode>
            <vatNumber>%s</vatNumber>
        </checkVat>
    </soap:Body>
</soap:Envelope>`

// viesRegistry validates EU VAT IDs against the VIES SOAP service.
type viesRegistry struct {
	endpoint string
	client   *httpclient.SaferClient
}

type viesResponse struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    struct {
		CheckVatResponse struct {
			Valid *bool   `xml:"valid"`
			Name  *string `xml:"name"`
		} `xml:"checkVatResponse"`
	} `xml:"Body"`
}

func (r *viesRegistry) Check(ctx context.Context, prefix, number string) (string, error) {
	logger.Debugw("checking VAT ID against VIES", "prefix", prefix, "number", number)

	envelope := fmt.Sprintf(viesRequestTemplate, prefix, number)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(envelope))
	if err != nil {
		return "", errors.Wrap(err, "failed to build VIES request")
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "VIES request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read VIES response")
	}

	// VIES reports downtime of the national databases as a server error
	if resp.StatusCode >= http.StatusInternalServerError {
		return "", errors.Wrapf(errors.ErrRegistryUnavailable,
			"VIES responded with HTTP %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Wrapf(errors.ErrRegistryProtocol,
			"VIES responded with HTTP %d", resp.StatusCode)
	}

	var parsed viesResponse
	if err := xml.Unmarshal(body, &parsed); err != nil {
		return "", errors.Wrap(errors.ErrRegistryProtocol, err.Error())
	}

	result := parsed.Body.CheckVatResponse
	if result.Valid == nil {
		return "", errors.Wrap(errors.ErrRegistryProtocol,
			"VIES response did not contain a validity flag")
	}
	if !*result.Valid {
		return "", errors.Wrapf(errors.ErrInvalidID,
			"VAT ID %s%s is not registered with VIES", prefix, number)
	}
	if result.Name == nil {
		return "", errors.Wrap(errors.ErrRegistryProtocol,
			"VIES response did not contain a company name")
	}

	return strings.TrimSpace(*result.Name), nil
}
