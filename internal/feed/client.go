// README: HTTP client for the government open-data charging station feed.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"evconnect/internal/config"
)

// ErrUnavailable is returned when the upstream feed cannot be reached or its
// payload cannot be decoded. Callers recover by falling back to seed data.
var ErrUnavailable = errors.New("station feed unavailable")

// Record is one raw station entry from the feed. Every field is optional and
// untrusted; the upstream serves all values as JSON strings.
type Record struct {
	ID             string `json:"id"`
	StationName    string `json:"station_name"`
	Name           string `json:"name"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	Pincode        string `json:"pincode"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
	ChargerType    string `json:"charger_type"`
	Capacity       string `json:"capacity"`
	OperatingHours string `json:"operating_hours"`
	ContactNumber  string `json:"contact_number"`
	Price          string `json:"price"`
	Rating         string `json:"rating"`
	Availability   string `json:"availability"`
	TotalSlots     string `json:"total_slots"`
	AvailableSlots string `json:"available_slots"`
	DistanceKm     string `json:"distance_km"`
}

type feedResponse struct {
	Records []Record `json:"records"`
}

// Client fetches raw station records over HTTP. One shot per call, no
// retries; a failed call surfaces as ErrUnavailable.
type Client struct {
	baseURL string
	apiKey  string
	limit   int
	httpc   *http.Client
}

func NewClient(cfg config.FeedConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		limit:   cfg.Limit,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the current raw records from the upstream feed.
func (c *Client) Fetch(ctx context.Context) ([]Record, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: no feed URL configured", ErrUnavailable)
	}

	q := url.Values{}
	q.Set("api-key", c.apiKey)
	q.Set("format", "json")
	q.Set("limit", strconv.Itoa(c.limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var body feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	return body.Records, nil
}
