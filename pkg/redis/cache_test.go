package redis

import (
	"context"
	"testing"
	"time"
)

func TestMetricsKey(t *testing.T) {
	day := time.Date(2026, 8, 21, 15, 4, 5, 0, time.UTC)

	key := MetricsKey("AAPL", day)
	if key != "metrics:AAPL:2026-08-21" {
		t.Errorf("Unexpected key: %s", key)
	}

	// Time of day never changes the key
	if MetricsKey("AAPL", day.Add(5*time.Hour)) != key {
		t.Error("Expected same key for same day")
	}
}

func TestFraudKey(t *testing.T) {
	day := time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)

	key := FraudKey("MSFT", day)
	if key != "fraud:MSFT:2026-08-21" {
		t.Errorf("Unexpected key: %s", key)
	}
}

func TestCacheDisabledClient(t *testing.T) {
	// A disabled client turns every cache operation into a no-op
	cache := NewCache(&Client{}, "forensiq")
	ctx := context.Background()

	var dest map[string]string
	found, err := cache.Get(ctx, "k", &dest)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if found {
		t.Error("Expected miss on disabled client")
	}

	if err := cache.Set(ctx, "k", map[string]string{"a": "b"}, time.Minute); err != nil {
		t.Errorf("Set() failed: %v", err)
	}

	if err := cache.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete() failed: %v", err)
	}
}
