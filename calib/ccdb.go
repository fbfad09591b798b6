package calib

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNotFound reports that no calibration object is valid at the requested
// timestamp.
var ErrNotFound = errors.New("calib: no object valid at timestamp")

// Client fetches parametrizations from a timestamp-indexed calibration store
// over HTTP. Objects created after the client's reference time are never
// returned.
type Client struct {
	base            string
	hc              *http.Client
	createdNotAfter int64 // ms since epoch
}

// NewClient returns a client for the store at base. The created-not-after
// guard is fixed to the current time, so reprocessing cannot pick up objects
// uploaded later.
func NewClient(base string) *Client {
	return &Client{
		base:            base,
		hc:              &http.Client{Timeout: 30 * time.Second},
		createdNotAfter: time.Now().UnixMilli(),
	}
}

// GetForTimestamp fetches the parametrization at path valid for the given
// timestamp (ms since epoch). A negative timestamp means "now".
func (c *Client) GetForTimestamp(ctx context.Context, path string, timestamp int64) (*Parametrization, error) {
	if timestamp < 0 {
		timestamp = c.createdNotAfter
	}
	if timestamp > c.createdNotAfter {
		return nil, fmt.Errorf("calib: timestamp %d is later than reference time %d", timestamp, c.createdNotAfter)
	}

	u := fmt.Sprintf("%s/%s?timestamp=%d", c.base, path, timestamp)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("calib: build request: %w", err)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calib: fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("calib: %s at %d: %w", path, timestamp, ErrNotFound)
	default:
		return nil, fmt.Errorf("calib: fetch %s: unexpected status %s", path, resp.Status)
	}

	var p Parametrization
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("calib: decode %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
