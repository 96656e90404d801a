package nets

import (
	"net/http"
)

// HTTPClient fetches documents named by URL, dialing through the
// proxy-aware Dialer.
type HTTPClient = *http.Client

func (Module) HTTPClient(
	dialer Dialer,
) HTTPClient {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: dialer.DialContext,
		},
	}
}
