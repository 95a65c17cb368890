package geo

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// stubGeocoder records every lookup and answers from a canned function.
type stubGeocoder struct {
	calls   []CandidateQuery
	respond func(query, lang string) ([]Candidate, error)
}

func (s *stubGeocoder) Search(_ context.Context, query, lang string) ([]Candidate, error) {
	s.calls = append(s.calls, CandidateQuery{Query: query, Lang: lang})
	if s.respond == nil {
		return nil, nil
	}
	return s.respond(query, lang)
}

func TestResolveFirstCandidateWins(t *testing.T) {
	tokyo := Candidate{
		Name:        "Tokyo",
		Country:     "Japan",
		CountryCode: "JP",
		Latitude:    35.68,
		Longitude:   139.69,
		Population:  9_700_000,
		FeatureCode: FeatureNationalCapital,
	}
	stub := &stubGeocoder{
		respond: func(query, lang string) ([]Candidate, error) {
			return []Candidate{tokyo}, nil
		},
	}

	got, err := NewResolver(stub).Resolve(context.Background(), "Tokyo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Tokyo" || got.Country != "Japan" {
		t.Errorf("resolved %v, want Tokyo, Japan", got)
	}
	if len(stub.calls) != 1 {
		t.Errorf("issued %d geocode calls, want exactly 1", len(stub.calls))
	}
}

func TestResolveBlankInput(t *testing.T) {
	stub := &stubGeocoder{}

	_, err := NewResolver(stub).Resolve(context.Background(), "   ")
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("got error %v, want ErrEmptyInput", err)
	}
	if len(stub.calls) != 0 {
		t.Errorf("blank input issued %d geocode calls, want none", len(stub.calls))
	}
}

func TestResolveExhaustion(t *testing.T) {
	raw := "عمان، الأردن"
	stub := &stubGeocoder{
		respond: func(query, lang string) ([]Candidate, error) {
			return nil, nil
		},
	}

	_, err := NewResolver(stub).Resolve(context.Background(), raw)
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("got error %v, want ErrExhausted", err)
	}

	// Every planned candidate tried exactly once, in the planned order.
	if !reflect.DeepEqual(stub.calls, Plan(raw)) {
		t.Errorf("calls %v do not match planned order %v", stub.calls, Plan(raw))
	}
}

func TestResolveSkipsFailedLookup(t *testing.T) {
	paris := Candidate{
		Name: "Paris", Country: "France", CountryCode: "FR",
		Latitude: 48.85, Longitude: 2.35, Population: 2_100_000, FeatureCode: FeatureNationalCapital,
	}
	stub := &stubGeocoder{
		respond: func(query, lang string) ([]Candidate, error) {
			if query == "Paris" {
				return nil, errors.New("upstream timeout")
			}
			return []Candidate{paris}, nil
		},
	}

	got, err := NewResolver(stub).Resolve(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("a single failed variant sank the resolution: %v", err)
	}
	if got.Name != "Paris" {
		t.Errorf("resolved %v, want Paris", got)
	}
	if len(stub.calls) != 2 {
		t.Errorf("issued %d calls, want 2 (failed first, succeeded second)", len(stub.calls))
	}
}

func TestResolveGuardWalksLadder(t *testing.T) {
	// First query variant returns only the colliding-country match; the
	// guard rejects it and the ladder continues until Jordan shows up.
	stub := &stubGeocoder{
		respond: func(query, lang string) ([]Candidate, error) {
			if lang == LangArabic {
				return []Candidate{omanMatch}, nil
			}
			return []Candidate{omanMatch, ammanJordan}, nil
		},
	}

	got, err := NewResolver(stub).Resolve(context.Background(), "عمان")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Country != "Jordan" {
		t.Errorf("resolved %v, want Amman, Jordan", got)
	}
	if len(stub.calls) != 2 {
		t.Errorf("issued %d calls, want 2", len(stub.calls))
	}
}
