package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"taxguide/api/internal/store"
)

func testCache(t *testing.T, ttl time.Duration) (*Comparison, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewWithClient(client, ttl), mr
}

func TestComparisonCacheRoundTrip(t *testing.T) {
	c, _ := testCache(t, time.Minute)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx); err != nil {
		t.Fatalf("get on empty cache: %v", err)
	} else if ok {
		t.Fatal("expected miss on empty cache")
	}

	data := store.ComparisonData{
		TaxBrackets: map[int][]store.TaxBracket{
			2024: {{ID: 1, Year: 2024, FilingStatus: "Single", TaxRate: 0.10}},
		},
		Summary: store.ComparisonSummary{TotalBrackets2024: 7, TotalBrackets2025: 7, RetirementAccountTypes2025: 6},
	}
	if err := c.Set(ctx, data); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := c.Get(ctx)
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if got.Summary != data.Summary {
		t.Fatalf("summary mismatch: %+v", got.Summary)
	}
	if len(got.TaxBrackets[2024]) != 1 || got.TaxBrackets[2024][0].FilingStatus != "Single" {
		t.Fatalf("bracket payload mismatch: %+v", got.TaxBrackets)
	}
}

func TestComparisonCacheInvalidate(t *testing.T) {
	c, _ := testCache(t, time.Minute)
	ctx := context.Background()

	if err := c.Set(ctx, store.ComparisonData{}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, ok, _ := c.Get(ctx); ok {
		t.Fatal("expected miss after invalidate")
	}
}

func TestComparisonCacheExpiry(t *testing.T) {
	c, mr := testCache(t, time.Second)
	ctx := context.Background()

	if err := c.Set(ctx, store.ComparisonData{}); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(2 * time.Second)
	if _, ok, _ := c.Get(ctx); ok {
		t.Fatal("expected miss after TTL expiry")
	}
}
