package weather

import (
	"context"

	"github.com/yosefdabbas22/weather-app/internal/geo"
)

// Provider abstracts the forecast data source.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, loc geo.Resolved, days int) (Report, error)
}

// ReverseGeocoder turns shared coordinates back into a place name.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (geo.Resolved, error)
}

// Cache is the short-TTL report cache contract.
type Cache interface {
	Get(key string) (Report, bool)
	Put(key string, r Report)
}

// Recents records successful searches for the recent-search list.
type Recents interface {
	Add(loc geo.Resolved) error
}
