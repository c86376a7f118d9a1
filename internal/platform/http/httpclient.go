// Package http provides the outbound HTTP client used by external API
// adapters.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient builds an HTTP client for external API calls.
//
// http.DefaultClient has no timeout, so adapters always go through this
// constructor. The transport pins connection-level timeouts while the
// overall request timeout comes from the caller.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
