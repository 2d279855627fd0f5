// Package bart provides the client and normalizer for the BART
// (Bay Area Rapid Transit) XML API.
package bart

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"bartd.opentransit.org/internal/logging"
)

const (
	// DefaultBaseURL is the root of the BART legacy XML API.
	DefaultBaseURL = "https://api.bart.gov/api/"

	// APIKeyEnvVar names the environment variable holding the API key.
	APIKeyEnvVar = "BART_API_KEY"

	// PublicAPIKey is BART's published shared key, used when no key is
	// configured in the environment.
	PublicAPIKey = "MW9S-E7SL-26DU-VV8V"

	requestTimeout = 10 * time.Second
	maxRedirects   = 10
)

// APIKeyFromEnv returns the configured API key, falling back to the
// public shared key.
func APIKeyFromEnv() string {
	if key := os.Getenv(APIKeyEnvVar); key != "" {
		return key
	}
	return PublicAPIKey
}

// Client performs blocking request/response calls against the upstream
// XML API. Every request carries the API key and is bounded by a fixed
// timeout; redirects are followed up to a small limit.
type Client struct {
	baseURL    string
	key        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client for the given base URL and API key. Empty
// arguments fall back to the public defaults.
func NewClient(baseURL, key string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if key == "" {
		key = APIKeyFromEnv()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/") + "/",
		key:     key,
		httpClient: &http.Client{
			Timeout: requestTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		logger: logger.With(slog.String("component", "bart_client")),
	}
}

// Fetch performs a GET against commandPath (e.g. "stn.aspx") with the
// given query parameters, appending the API key. It returns the raw
// response body, or a *TransportError if the upstream could not be
// reached or answered with a non-200 status.
func (c *Client) Fetch(ctx context.Context, commandPath string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("key", c.key)

	requestURL := c.baseURL + commandPath + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &TransportError{Op: commandPath, URL: requestURL, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: commandPath, URL: requestURL, Err: err}
	}
	defer logging.SafeCloseWithLogging(resp.Body, c.logger, "http_response_body")

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{
			Op:  commandPath,
			URL: requestURL,
			Err: fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: commandPath, URL: requestURL, Err: err}
	}

	return body, nil
}
