package weather

import (
	"context"
	"fmt"
	"log"

	"github.com/yosefdabbas22/weather-app/internal/geo"
)

// UnknownPlace is substituted when reverse geocoding fails; the weather for
// the shared coordinates is still fetched and shown.
const UnknownPlace = "Unknown"

// Service ties the resolution pipeline, the forecast provider, the response
// cache, and the recent-search list together behind the two lookup paths the
// API exposes.
type Service struct {
	resolver *geo.Resolver
	reverse  ReverseGeocoder
	provider Provider
	cache    Cache
	recents  Recents
	days     int
}

// NewService creates a Service. cache and recents may be nil, in which case
// every lookup goes to the provider and nothing is recorded.
func NewService(resolver *geo.Resolver, reverse ReverseGeocoder, provider Provider, cache Cache, recents Recents, forecastDays int) *Service {
	if forecastDays <= 0 {
		forecastDays = 5
	}
	return &Service{
		resolver: resolver,
		reverse:  reverse,
		provider: provider,
		cache:    cache,
		recents:  recents,
		days:     forecastDays,
	}
}

// Resolve runs only the resolution pipeline for raw input.
func (s *Service) Resolve(ctx context.Context, raw string) (geo.Resolved, error) {
	return s.resolver.Resolve(ctx, raw)
}

// Lookup resolves raw input to a location and returns its weather report,
// serving from cache when possible. Resolution errors (geo.ErrEmptyInput,
// geo.ErrExhausted) pass through for the API layer to map.
func (s *Service) Lookup(ctx context.Context, raw string) (Report, error) {
	loc, err := s.resolver.Resolve(ctx, raw)
	if err != nil {
		return Report{}, err
	}

	if s.recents != nil {
		if err := s.recents.Add(loc); err != nil {
			log.Printf("failed to record recent search for %s: %v", loc.Key(), err)
		}
	}

	return s.fetch(ctx, loc.Key(), loc)
}

// LookupCoords serves the shared-location path: reverse geocode the
// coordinates (best effort) and fetch the weather there. The cache key is
// the rounded coordinates, so an "Unknown" place name never collides across
// different points.
func (s *Service) LookupCoords(ctx context.Context, lat, lon float64) (Report, error) {
	loc, err := s.reverse.Reverse(ctx, lat, lon)
	if err != nil {
		log.Printf("reverse geocode failed for %.4f,%.4f: %v", lat, lon, err)
		loc = geo.Resolved{
			Name:      UnknownPlace,
			Country:   UnknownPlace,
			Latitude:  lat,
			Longitude: lon,
		}
	}

	key := fmt.Sprintf("%.2f:%.2f", lat, lon)
	return s.fetch(ctx, key, loc)
}

// Refresh fetches a fresh report for loc and overwrites any cached entry.
// Used by the scheduler to keep recently searched locations warm.
func (s *Service) Refresh(ctx context.Context, loc geo.Resolved) error {
	report, err := s.provider.Fetch(ctx, loc, s.days)
	if err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Put(loc.Key(), report)
	}
	return nil
}

func (s *Service) fetch(ctx context.Context, key string, loc geo.Resolved) (Report, error) {
	if s.cache != nil {
		if report, ok := s.cache.Get(key); ok {
			return report, nil
		}
	}

	report, err := s.provider.Fetch(ctx, loc, s.days)
	if err != nil {
		return Report{}, fmt.Errorf("fetch weather for %s: %w", loc.Key(), err)
	}

	if s.cache != nil {
		s.cache.Put(key, report)
	}
	return report, nil
}
