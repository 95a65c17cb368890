package store

import (
	"testing"
	"time"

	"github.com/yosefdabbas22/weather-app/internal/weather"
)

func TestCachePutGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, 0)

	report := weather.Report{Current: weather.Current{Temperature: 25}}
	c.Put("amman:jordan", report)

	got, ok := c.Get("amman:jordan")
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if got.Current.Temperature != 25 {
		t.Errorf("got temperature %v, want 25", got.Current.Temperature)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("unexpected hit for a missing key")
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	c := NewMemoryCache(10*time.Millisecond, 0)
	c.Put("k", weather.Report{})

	if _, ok := c.Get("k"); !ok {
		t.Fatal("expected a hit before expiry")
	}

	time.Sleep(25 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Error("expected a miss after the TTL elapsed")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry not removed, len = %d", c.Len())
	}
}

func TestCacheEvictsOldestWhenFull(t *testing.T) {
	c := NewMemoryCache(time.Minute, 2)

	c.Put("a", weather.Report{})
	time.Sleep(2 * time.Millisecond)
	c.Put("b", weather.Report{})
	time.Sleep(2 * time.Millisecond)
	c.Put("c", weather.Report{})

	if _, ok := c.Get("a"); ok {
		t.Error("oldest entry should have been evicted")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("entry b should survive")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("entry c should survive")
	}
	if c.Len() != 2 {
		t.Errorf("len = %d, want 2", c.Len())
	}
}

func TestCacheOverwriteDoesNotEvict(t *testing.T) {
	c := NewMemoryCache(time.Minute, 2)
	c.Put("a", weather.Report{})
	c.Put("b", weather.Report{})
	c.Put("a", weather.Report{Current: weather.Current{Temperature: 1}})

	if c.Len() != 2 {
		t.Errorf("len = %d, want 2 after overwriting an existing key", c.Len())
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("entry b should survive an overwrite of a")
	}
}
