// Package tennisdata fetches ATP season match files from the tennis_atp
// GitHub mirror.
package tennisdata

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/lmendes/go-atp-h2h/internal/model"
	"github.com/lmendes/go-atp-h2h/internal/parser"
)

// DefaultBaseURL is the raw-content root of the tennis_atp repository, which
// hosts one CSV per season named atp_matches_<year>.csv.
const DefaultBaseURL = "https://raw.githubusercontent.com/mneedham/tennis_atp/master"

// Client downloads season files from a tennis_atp mirror.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the given mirror root. An empty baseURL
// selects the default GitHub mirror.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SeasonURL returns the download URL for one season file. Useful for manual
// debugging when a fetch fails.
func (c *Client) SeasonURL(year int) string {
	return fmt.Sprintf("%s/atp_matches_%d.csv", c.baseURL, year)
}

// FetchSeason downloads and parses one season. Any HTTP or parse failure is
// returned as-is: callers treat a failed season as fatal for the whole fetch
// rather than building a partial corpus.
func (c *Client) FetchSeason(ctx context.Context, year int) ([]model.Match, error) {
	u := c.SeasonURL(year)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: HTTP %d", u, resp.StatusCode)
	}

	matches, err := parser.ParseSeason(resp.Body, year)
	if err != nil {
		return nil, fmt.Errorf("season %d: %w", year, err)
	}
	return matches, nil
}
