package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

// BrowserClient wraps tls-client with a Chrome TLS fingerprint.
// YouTube serves a stripped watch page (no player response) to clients
// whose JA3 hash does not look like a browser.
type BrowserClient struct {
	client tls_client.HttpClient
}

// NewBrowserClient creates a client that impersonates Chrome 131.
func NewBrowserClient(timeout time.Duration) (*BrowserClient, error) {
	opts := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(timeoutSeconds(timeout)),
		tls_client.WithClientProfile(profiles.Chrome_131),
		tls_client.WithCookieJar(tls_client.NewCookieJar()),
	}
	client, err := tls_client.NewHttpClient(nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("tls-client init: %w", err)
	}
	return &BrowserClient{client: client}, nil
}

// timeoutSeconds converts d to whole seconds for tls-client, rounding up so a
// sub-second timeout never becomes 0 (no timeout). d <= 0 selects the default.
func timeoutSeconds(d time.Duration) int {
	if d <= 0 {
		d = DefaultFetchTimeout
	}
	return int((d + time.Second - 1) / time.Second)
}

// Do executes a request with the Chrome fingerprint.
// Returns body bytes (at most limit), HTTP status code, and any error.
func (bc *BrowserClient) Do(ctx context.Context, method, url string, headers map[string]string, body io.Reader, limit int64) ([]byte, int, error) {
	req, err := fhttp.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	// Chrome-like header order matters for fingerprinting
	req.Header[fhttp.HeaderOrderKey] = []string{
		"accept",
		"accept-language",
		"accept-encoding",
		"referer",
		"cookie",
		"user-agent",
	}

	resp, err := bc.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("tls request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read body: %w", err)
	}
	return data, resp.StatusCode, nil
}
