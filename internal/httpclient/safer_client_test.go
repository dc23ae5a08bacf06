package httpclient

import (
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateURL(t *testing.T) {
	client := New(5 * time.Second)

	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "https allowed", url: "https://ec.europa.eu/taxation_customs/vies/services/checkVatService"},
		{name: "http allowed", url: "http://data.brreg.no/enhetsregisteret/enhet/974760673.json"},
		{name: "file scheme blocked", url: "file:///etc/passwd", wantErr: true},
		{name: "ftp scheme blocked", url: "ftp://example.com/x", wantErr: true},
		{name: "localhost blocked", url: "http://localhost:8080/", wantErr: true},
		{name: "localhost subdomain blocked", url: "http://foo.localhost/", wantErr: true},
		{name: "loopback IP blocked", url: "http://127.0.0.1/", wantErr: true},
		{name: "private IP blocked", url: "http://10.0.0.8/", wantErr: true},
		{name: "link local blocked", url: "http://169.254.169.254/latest/meta-data/", wantErr: true},
		{name: "credentials blocked", url: "http://evil.com@example.com/", wantErr: true},
		{name: "missing hostname", url: "http:///path", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.url)
			require.NoError(t, err)

			err = client.validateURL(u)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		ip   string
		want bool
	}{
		{"10.1.2.3", true},
		{"172.16.0.1", true},
		{"192.168.1.1", true},
		{"127.0.0.1", true},
		{"169.254.169.254", true},
		{"224.0.0.1", true},
		{"::1", true},
		{"fe80::1", true},
		{"fd00::1", true},
		{"8.8.8.8", false},
		{"151.101.1.1", false},
		{"2001:4860:4860::8888", false},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			ip := net.ParseIP(tt.ip)
			require.NotNil(t, ip)
			assert.Equal(t, tt.want, isPrivateIP(ip))
		})
	}
}

func TestWrapClientAllowsLocalhost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	client := WrapClient(server.Client())
	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestDoBlocksPrivateTargets(t *testing.T) {
	client := New(5 * time.Second)

	req, err := http.NewRequest(http.MethodGet, "http://127.0.0.1:9/", nil)
	require.NoError(t, err)

	_, err = client.Do(req)
	assert.Error(t, err)
}
