package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API Docs: https://wiki.openstreetmap.org/wiki/Overpass_API
// Sample query: node["amenity"="toilets"](around:500,25.0330,121.5654);
const defaultBaseURL = "https://overpass-api.de/api/interpreter"

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger.With("component", "overpass-client"),
	}
}

// QueryAmenities fetches all features carrying the given amenity tag within
// radiusMeters of the coordinate. Ways and relations are returned with their
// computed centers.
func (c *Client) QueryAmenities(ctx context.Context, amenity string, latitude, longitude, radiusMeters float64) (*QueryAPIResponse, error) {
	around := fmt.Sprintf(`["amenity"=%q](around:%.0f,%f,%f);`, amenity, radiusMeters, latitude, longitude)
	query := "[out:json];\n(\n  node" + around + "\n  way" + around + "\n  relation" + around + "\n);\nout center;"

	c.logger.Debug("querying overpass",
		"amenity", amenity,
		"latitude", latitude,
		"longitude", longitude,
		"radius_meters", radiusMeters,
	)

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to query overpass", "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("overpass API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp QueryAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode overpass response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully queried overpass", "element_count", len(apiResp.Elements))

	return &apiResp, nil
}
