package network

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// NewHTTPClient returns a client for outbound calls to the text generation
// backend. An empty proxyURL falls back to the HTTP_PROXY environment.
func NewHTTPClient(proxyURL string) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	proxyURL = strings.TrimSpace(proxyURL)
	if proxyURL == "" {
		transport.Proxy = http.ProxyFromEnvironment
		return &http.Client{Transport: transport}, nil
	}

	parsed, err := ParseProxyURL(proxyURL)
	if err != nil {
		return nil, err
	}
	transport.Proxy = http.ProxyURL(parsed)
	return &http.Client{Transport: transport}, nil
}

// ParseProxyURL accepts http, https and socks5 proxies with a host.
func ParseProxyURL(raw string) (*url.URL, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy url: %w", err)
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "socks5":
	default:
		return nil, fmt.Errorf("invalid proxy url: unsupported scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("invalid proxy url: missing host")
	}
	return parsed, nil
}
