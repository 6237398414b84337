package memory

import (
	"sort"
	"sync"
	"testing"

	"github.com/poiesic/slotstore"
	"github.com/poiesic/slotstore/schema"
)

func TestStoreBasics(t *testing.T) {
	store := New()

	if _, found, _ := store.GetItem("missing"); found {
		t.Fatal("expected missing key to report found=false")
	}

	if err := store.SetItem("a", "1"); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}
	value, found, err := store.GetItem("a")
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if !found || value != "1" {
		t.Fatalf("expected (1, true), got (%q, %v)", value, found)
	}

	if err := store.RemoveItem("a"); err != nil {
		t.Fatalf("RemoveItem failed: %v", err)
	}
	if _, found, _ := store.GetItem("a"); found {
		t.Fatal("expected key to be removed")
	}

	// Removing an absent key is a no-op.
	if err := store.RemoveItem("a"); err != nil {
		t.Fatalf("RemoveItem of absent key failed: %v", err)
	}
}

func TestStoreClearAndKeys(t *testing.T) {
	store := New()
	store.SetItem("a", "1")
	store.SetItem("b", "2")

	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("unexpected keys: %v", keys)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d keys", store.Len())
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.SetItem("shared", "x")
				store.GetItem("shared")
				store.Keys()
			}
		}()
	}
	wg.Wait()

	if _, found, _ := store.GetItem("shared"); !found {
		t.Fatal("expected key to survive concurrent writes")
	}
}

func TestStoreWithSlotAccessors(t *testing.T) {
	store := New()
	slot := slotstore.New(store, "greeting", slotstore.Entry[string]{
		Schema:  schema.String(),
		Default: "hello",
	}, slotstore.WithLogger(slotstore.Discard()))

	if got := slot.Get(); got != "hello" {
		t.Fatalf("expected default, got %q", got)
	}
	slot.Set("hi")
	if got := slot.Get(); got != "hi" {
		t.Fatalf("expected hi, got %q", got)
	}
}
