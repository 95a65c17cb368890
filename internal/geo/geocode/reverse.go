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

const defaultReverseBaseURL = "https://api.bigdatacloud.net/data/reverse-geocode-client"

// ReverseClient resolves coordinates back to a place name, used on the
// shared-location path. Best effort only: callers substitute an "Unknown"
// place when it fails instead of failing the whole flow.
type ReverseClient struct {
	baseURL  string
	upstream httpx.Upstream
}

func NewReverseClient(client *http.Client, baseURL string) *ReverseClient {
	if baseURL == "" {
		baseURL = defaultReverseBaseURL
	}
	return &ReverseClient{
		baseURL:  baseURL,
		upstream: httpx.NewUpstream(client, "geocode-reverse"),
	}
}

// Reverse returns the best-effort name and country for the coordinates.
func (c *ReverseClient) Reverse(ctx context.Context, lat, lon float64) (geo.Resolved, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	values.Set("localityLanguage", "en")

	var payload struct {
		City        string `json:"city"`
		Locality    string `json:"locality"`
		CountryName string `json:"countryName"`
	}

	u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
	if err := c.upstream.GetJSON(ctx, u, &payload); err != nil {
		return geo.Resolved{}, err
	}

	name := payload.City
	if name == "" {
		name = payload.Locality
	}
	if name == "" || payload.CountryName == "" {
		return geo.Resolved{}, fmt.Errorf("reverse geocode returned no usable place for %f,%f", lat, lon)
	}

	return geo.Resolved{
		Name:      name,
		Country:   payload.CountryName,
		Latitude:  lat,
		Longitude: lon,
	}, nil
}
