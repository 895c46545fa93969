package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	if _, ok, _ := store.Get(ctx, "missing"); ok {
		t.Fatal("unexpected hit")
	}

	if err := store.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := store.Get(ctx, "k")
	if err != nil || !ok || value != "v" {
		t.Fatalf("unexpected get %q %v %v", value, ok, err)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Fatal("deleted key still present")
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(ctx, "short", "v", time.Second)
	store.Set(ctx, "forever", "v", 0)

	now = now.Add(2 * time.Second)
	if _, ok, _ := store.Get(ctx, "short"); ok {
		t.Fatal("expired key returned")
	}
	if _, ok, _ := store.Get(ctx, "forever"); !ok {
		t.Fatal("key without ttl expired")
	}

	store.purge()
	if store.Len() != 1 {
		t.Fatalf("expected 1 entry after purge, got %d", store.Len())
	}
}
