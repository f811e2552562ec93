// Package catalog provides a client for the YouTube Data API videos resource.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/vidinfo-cli/vidinfo/constant"
	"github.com/vidinfo-cli/vidinfo/log"
	"github.com/vidinfo-cli/vidinfo/network"
)

// ErrMissingKey is returned by Fetch when the client was built without a credential.
var ErrMissingKey = errors.New("catalog api key is not set")

// Options configures a Client. Zero values fall back to the shared HTTP client,
// the public endpoint and every part the projector displays.
type Options struct {
	HTTPClient *http.Client
	Endpoint   string
	Key        string
	Parts      []string
}

// Client retrieves video records from the catalog.
type Client struct {
	http     *http.Client
	endpoint string
	key      string
	parts    []string
}

// ListResponse is the body of a videos.list call.
type ListResponse struct {
	Kind  string  `json:"kind"`
	Items []Video `json:"items"`
}

// APIError is the error object the catalog returns alongside non-2xx statuses.
type APIError struct {
	Status  int    `json:"-"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("catalog responded with status %d", e.Status)
	}
	return fmt.Sprintf("catalog responded with status %d: %s", e.Status, e.Message)
}

// New creates a Client from explicit options.
func New(options Options) *Client {
	c := &Client{
		http:     options.HTTPClient,
		endpoint: options.Endpoint,
		key:      options.Key,
		parts:    options.Parts,
	}

	if c.http == nil {
		c.http = network.Client
	}

	if c.endpoint == "" {
		c.endpoint = constant.CatalogEndpoint
	}

	if len(c.parts) == 0 {
		c.parts = constant.CatalogParts
	}

	return c
}

// Fetch returns the items the catalog holds for id. An unknown id yields an empty slice and no error.
func (c *Client) Fetch(ctx context.Context, id string) ([]Video, error) {
	if c.key == "" {
		return nil, ErrMissingKey
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}

	q := u.Query()
	q.Set("part", strings.Join(c.parts, ","))
	q.Set("id", id)
	q.Set("key", c.key)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)

	log.Infof("requesting video %s", id)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	var result ListResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("catalog decode: %w", err)
	}

	log.Infof("catalog returned %d item(s) for %s", len(result.Items), id)
	return result.Items, nil
}

// decodeError extracts the catalog's error object, falling back to the bare status.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}

	var envelope struct {
		Error *APIError `json:"error"`
	}
	if json.Unmarshal(body, &envelope) == nil && envelope.Error != nil {
		envelope.Error.Status = resp.StatusCode
		return envelope.Error
	}

	return apiErr
}
