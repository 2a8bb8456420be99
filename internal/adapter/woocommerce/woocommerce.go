// Package woocommerce is the live commerce backend adapter. It talks
// to the WooCommerce REST surface: the Store API for the session cart
// and the v3 catalog API for products and categories.
package woocommerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/retry"
)

var _ port.CommerceBackend = (*Client)(nil)

const (
	storeAPIPath   = "/wc/store/v1"
	catalogAPIPath = "/wc/v3"

	requestTimeout  = 30 * time.Second
	readMaxAttempts = 3
	readRetryDelay  = 200 * time.Millisecond
)

type Config struct {
	APIURL         string
	ConsumerKey    string
	ConsumerSecret string
}

// Client issues backend requests and holds no cart state across
// calls. The cart session lives on the backend side.
type Client struct {
	httpClient     *http.Client
	apiURL         string
	consumerKey    string
	consumerSecret string
}

func New(cfg Config) (*Client, error) {
	const op = "woocommerce.New"

	if cfg.APIURL == "" {
		return nil, fmt.Errorf("%s: api url is required", op)
	}
	if cfg.ConsumerKey == "" || cfg.ConsumerSecret == "" {
		return nil, fmt.Errorf("%s: consumer key/secret pair is required", op)
	}

	return &Client{
		httpClient:     &http.Client{Timeout: requestTimeout},
		apiURL:         strings.TrimSuffix(cfg.APIURL, "/"),
		consumerKey:    cfg.ConsumerKey,
		consumerSecret: cfg.ConsumerSecret,
	}, nil
}

type statusError struct {
	code   int
	status string
}

func (e statusError) Error() string {
	return fmt.Sprintf("backend status %s", e.status)
}

func (statusError) Unwrap() error {
	return domain.ErrBackendUnavailable
}

func transient(err error) bool {
	var se statusError
	if errors.As(err, &se) {
		return se.code >= http.StatusInternalServerError
	}
	return !errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

// getJSON issues an authenticated-or-not GET, retrying transient
// failures, and returns the response headers for pagination callers.
func (c *Client) getJSON(
	ctx context.Context, path string, query url.Values, auth bool, out any,
) (http.Header, error) {
	cfg := retry.Config{
		MaxAttempts: readMaxAttempts,
		Backoff:     retry.ExponentialBackoff(readRetryDelay),
		ShouldRetry: transient,
	}
	return retry.DoWithResult(ctx, cfg, func() (http.Header, error) {
		return c.doJSON(ctx, http.MethodGet, path, query, nil, auth, out)
	})
}

// postJSON issues a cart-session mutation. Mutations are not retried:
// they are not idempotent at this layer.
func (c *Client) postJSON(ctx context.Context, path string, body any) error {
	_, err := c.doJSON(ctx, http.MethodPost, path, nil, body, false, nil)
	return err
}

func (c *Client) doJSON(
	ctx context.Context,
	method, path string,
	query url.Values,
	body any,
	auth bool,
	out any,
) (http.Header, error) {
	if query == nil {
		query = url.Values{}
	}
	if auth {
		query.Set("consumer_key", c.consumerKey)
		query.Set("consumer_secret", c.consumerSecret)
	}

	reqURL := c.apiURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(b)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK ||
		resp.StatusCode >= http.StatusMultipleChoices {
		return nil, statusError{resp.StatusCode, resp.Status}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
		}
	}
	return resp.Header, nil
}
