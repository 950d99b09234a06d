package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

const (
	ahrefsAPIURL = "https://api.ahrefs.com/v3/site-explorer/domain-rating"

	ahrefsRequestTimeout = 10 * time.Second
	// Maximum response body size (64KB); the metrics payload is tiny.
	maxAhrefsResponseSize = 64 << 10
)

// DomainMetrics is what the rating refresh job stores back on inventory
// domains.
type DomainMetrics struct {
	DomainRating   int
	MonthlyTraffic int64
}

// RatingProvider fetches third-party authority metrics for a domain.
type RatingProvider interface {
	FetchMetrics(ctx context.Context, domain string) (*DomainMetrics, error)
	Enabled() bool
}

type ahrefsResponse struct {
	DomainRating struct {
		DomainRating float64 `json:"domain_rating"`
	} `json:"domain_rating"`
	Metrics struct {
		OrgTraffic int64 `json:"org_traffic"`
	} `json:"metrics"`
}

// AhrefsClient talks to the Ahrefs v3 API. With an empty API key the
// client reports itself disabled and the refresh job skips it.
type AhrefsClient struct {
	apiKey     string
	httpClient *http.Client
	log        logger.Interface
}

func NewAhrefsClient(apiKey string, log logger.Interface) *AhrefsClient {
	return &AhrefsClient{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: ahrefsRequestTimeout,
		},
		log: log,
	}
}

var _ RatingProvider = (*AhrefsClient)(nil)

func (c *AhrefsClient) Enabled() bool {
	return c.apiKey != ""
}

func (c *AhrefsClient) FetchMetrics(ctx context.Context, domain string) (*DomainMetrics, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("ahrefs client is not configured")
	}

	endpoint := fmt.Sprintf("%s?target=%s&date=%s",
		ahrefsAPIURL, url.QueryEscape(domain), time.Now().UTC().Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ahrefs request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ahrefs returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAhrefsResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read ahrefs response: %w", err)
	}

	var parsed ahrefsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse ahrefs response: %w", err)
	}

	rating := int(parsed.DomainRating.DomainRating)
	if rating < 0 || rating > 100 {
		return nil, fmt.Errorf("ahrefs returned implausible rating %d", rating)
	}

	return &DomainMetrics{
		DomainRating:   rating,
		MonthlyTraffic: parsed.Metrics.OrgTraffic,
	}, nil
}
