// Package geocode holds the HTTP adapters for the external geocoding and
// reverse-geocoding services, so the resolution logic in package geo stays
// free of network concerns.
package geocode

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/yosefdabbas22/weather-app/internal/geo"
	"github.com/yosefdabbas22/weather-app/internal/httpx"
)

const defaultSearchBaseURL = "https://geocoding-api.open-meteo.com/v1/search"

// defaultSearchCount is how many candidates we ask for per lookup. The
// disambiguation rules need the same-named places from other countries in
// the batch, so one result is never enough.
const defaultSearchCount = 10

// SearchClient implements geo.Geocoder against the Open-Meteo geocoding API.
type SearchClient struct {
	baseURL  string
	count    int
	upstream httpx.Upstream
}

// NewSearchClient builds a search client. baseURL may be empty for the
// production endpoint; tests point it at a stub server.
func NewSearchClient(client *http.Client, baseURL string) *SearchClient {
	if baseURL == "" {
		baseURL = defaultSearchBaseURL
	}
	return &SearchClient{
		baseURL:  baseURL,
		count:    defaultSearchCount,
		upstream: httpx.NewUpstream(client, "geocode-search"),
	}
}

// Search runs one candidate query and returns the raw candidate batch.
// An empty batch is a normal outcome, not an error.
func (c *SearchClient) Search(ctx context.Context, query, lang string) ([]geo.Candidate, error) {
	values := url.Values{}
	values.Set("name", query)
	values.Set("count", strconv.Itoa(c.count))
	values.Set("format", "json")
	if lang != "" {
		values.Set("language", lang)
	}

	var payload struct {
		Results []struct {
			Name        string  `json:"name"`
			Country     string  `json:"country"`
			CountryCode string  `json:"country_code"`
			Latitude    float64 `json:"latitude"`
			Longitude   float64 `json:"longitude"`
			Population  int64   `json:"population"`
			FeatureCode string  `json:"feature_code"`
		} `json:"results"`
	}

	u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
	if err := c.upstream.GetJSON(ctx, u, &payload); err != nil {
		return nil, err
	}

	cands := make([]geo.Candidate, 0, len(payload.Results))
	for _, r := range payload.Results {
		cands = append(cands, geo.Candidate{
			Name:        r.Name,
			Country:     r.Country,
			CountryCode: r.CountryCode,
			Latitude:    r.Latitude,
			Longitude:   r.Longitude,
			Population:  r.Population,
			FeatureCode: r.FeatureCode,
		})
	}
	return cands, nil
}
