package geo

import (
	"context"
	"errors"
	"log"
	"strings"
)

var (
	// ErrEmptyInput is returned when the search input is blank; no lookups
	// are issued. Callers treat it as a no-op rather than a failure.
	ErrEmptyInput = errors.New("empty search input")

	// ErrExhausted is returned when every planned lookup was tried and none
	// produced an acceptable location.
	ErrExhausted = errors.New("location not found")
)

// Geocoder performs a single lookup against the external geocoding service.
// It is unreliable by contract: it may return nothing for a valid place,
// several ambiguous matches, or fail outright.
type Geocoder interface {
	Search(ctx context.Context, query, lang string) ([]Candidate, error)
}

// Resolver turns free-form user input into a single resolved location by
// walking the planned query ladder and filtering each response batch. It
// carries no state between calls; the same input against the same upstream
// responses always resolves the same way.
type Resolver struct {
	geocoder Geocoder
}

func NewResolver(g Geocoder) *Resolver {
	return &Resolver{geocoder: g}
}

// Resolve tries each planned candidate query strictly in order and returns
// the first accepted location. Later candidates are deliberately more
// permissive fallbacks, so they are only tried after stricter ones come up
// empty; queries never run in parallel.
//
// A failed lookup counts as an empty batch for that candidate and the ladder
// moves on: a service hiccup on one variant must not sink the whole search.
// Only total exhaustion surfaces as an error.
func (r *Resolver) Resolve(ctx context.Context, raw string) (Resolved, error) {
	if strings.TrimSpace(raw) == "" {
		return Resolved{}, ErrEmptyInput
	}

	tried := make(map[CandidateQuery]struct{})
	for _, q := range Plan(raw) {
		if _, done := tried[q]; done {
			continue
		}
		tried[q] = struct{}{}

		cands, err := r.geocoder.Search(ctx, q.Query, q.Lang)
		if err != nil {
			log.Printf("geocode lookup failed for %q (lang=%s): %v", q.Query, q.Lang, err)
			continue
		}

		if loc, ok := Filter(cands, raw); ok {
			return loc, nil
		}
	}

	return Resolved{}, ErrExhausted
}
