package redis

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/poiesic/slotstore"
	"github.com/poiesic/slotstore/schema"
)

// newTestStore connects to the Redis instance named by
// SLOTSTORE_TEST_REDIS_ADDR, or skips the test.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	addr := os.Getenv("SLOTSTORE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("SLOTSTORE_TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { client.Close() })

	store := New(client, WithPrefix("slotstore-test:"))
	ctx := context.Background()
	if _, err := store.Clear(ctx).Await(ctx); err != nil {
		t.Fatalf("Failed to clear test keys: %v", err)
	}
	t.Cleanup(func() { store.Clear(context.Background()).Await(context.Background()) })
	return store
}

func TestStoreBasics(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	item, err := store.GetItem(ctx, "missing").Await(ctx)
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if item.Found {
		t.Fatal("expected missing key to report Found=false")
	}

	if _, err := store.SetItem(ctx, "a", "1").Await(ctx); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}
	item, err = store.GetItem(ctx, "a").Await(ctx)
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if !item.Found || item.Value != "1" {
		t.Fatalf("expected (1, true), got (%q, %v)", item.Value, item.Found)
	}

	if _, err := store.RemoveItem(ctx, "a").Await(ctx); err != nil {
		t.Fatalf("RemoveItem failed: %v", err)
	}
	item, err = store.GetItem(ctx, "a").Await(ctx)
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if item.Found {
		t.Fatal("expected key to be removed")
	}
}

func TestStoreKeysStripPrefix(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.SetItem(ctx, "a", "1").Await(ctx); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}
	keys, err := store.Keys(ctx).Await(ctx)
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 1 || keys[0] != "a" {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

func TestStoreWithAsyncSlotAccessors(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	slot := slotstore.NewAsync(store, "retries", slotstore.Entry[int]{
		Schema:  schema.Int(),
		Default: 3,
	}, slotstore.WithLogger(slotstore.Discard()))

	got, err := slot.Get(ctx).Await(ctx)
	if err != nil {
		t.Fatalf("Get future failed: %v", err)
	}
	if got != 3 {
		t.Fatalf("expected default, got %d", got)
	}

	if _, err := slot.Set(ctx, 7).Await(ctx); err != nil {
		t.Fatalf("Set future failed: %v", err)
	}
	got, err = slot.Get(ctx).Await(ctx)
	if err != nil {
		t.Fatalf("Get future failed: %v", err)
	}
	if got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}
