package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/yosefdabbas22/weather-app/internal/geo"
)

func openTestStore(t *testing.T, max int) *RecentStore {
	t.Helper()
	s, err := OpenRecentStore(filepath.Join(t.TempDir(), "recent.db"), max)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecentAddAndList(t *testing.T) {
	s := openTestStore(t, 10)

	amman := geo.Resolved{Name: "Amman", Country: "Jordan", Latitude: 31.95, Longitude: 35.93}
	if err := s.Add(amman); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recs, err := s.List(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d entries, want 1", len(recs))
	}
	if recs[0].Location != amman {
		t.Errorf("got %v, want %v", recs[0].Location, amman)
	}
	if recs[0].ID == "" {
		t.Error("entry has no id")
	}
}

func TestRecentListEmpty(t *testing.T) {
	s := openTestStore(t, 10)
	if _, err := s.List(10); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestRecentDedupesByLocation(t *testing.T) {
	s := openTestStore(t, 10)

	amman := geo.Resolved{Name: "Amman", Country: "Jordan", Latitude: 31.95, Longitude: 35.93}
	tokyo := geo.Resolved{Name: "Tokyo", Country: "Japan", Latitude: 35.68, Longitude: 139.69}

	if err := s.Add(amman); err != nil {
		t.Fatal(err)
	}
	time.Sleep(2 * time.Millisecond)
	if err := s.Add(tokyo); err != nil {
		t.Fatal(err)
	}
	time.Sleep(2 * time.Millisecond)
	if err := s.Add(amman); err != nil {
		t.Fatal(err)
	}

	recs, err := s.List(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d entries, want 2 (repeat search must not duplicate)", len(recs))
	}
	// The repeated search moved Amman back to the front.
	if recs[0].Location.Name != "Amman" || recs[1].Location.Name != "Tokyo" {
		t.Errorf("order %s, %s; want Amman first", recs[0].Location.Name, recs[1].Location.Name)
	}
}

func TestRecentCapsEntries(t *testing.T) {
	s := openTestStore(t, 2)

	locs := []geo.Resolved{
		{Name: "A", Country: "X"},
		{Name: "B", Country: "X"},
		{Name: "C", Country: "X"},
	}
	for _, loc := range locs {
		if err := s.Add(loc); err != nil {
			t.Fatal(err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	recs, err := s.List(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d entries, want cap of 2", len(recs))
	}
	if recs[0].Location.Name != "C" || recs[1].Location.Name != "B" {
		t.Errorf("got %s, %s; want newest-first C, B", recs[0].Location.Name, recs[1].Location.Name)
	}
}

func TestRecentLocations(t *testing.T) {
	s := openTestStore(t, 5)

	if locs, err := s.Locations(); err != nil || len(locs) != 0 {
		t.Fatalf("empty store: got %v, %v; want no locations, no error", locs, err)
	}

	if err := s.Add(geo.Resolved{Name: "Amman", Country: "Jordan"}); err != nil {
		t.Fatal(err)
	}
	locs, err := s.Locations()
	if err != nil {
		t.Fatal(err)
	}
	if len(locs) != 1 || locs[0].Name != "Amman" {
		t.Errorf("got %v, want [Amman]", locs)
	}
}
