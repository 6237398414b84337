package badger

import (
	"sort"
	"testing"

	"github.com/poiesic/slotstore"
	"github.com/poiesic/slotstore/schema"
)

// newMemoryStore creates an in-memory badger store for testing.
func newMemoryStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open("", true)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreBasics(t *testing.T) {
	store := newMemoryStore(t)

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
}

func TestStoreClearAndKeys(t *testing.T) {
	store := newMemoryStore(t)
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
	keys, err = store.Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("expected empty store, got %v", keys)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir, false)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	if err := store.SetItem("greeting", "hi"); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	store, err = Open(dir, false)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer store.Close()

	value, found, err := store.GetItem("greeting")
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if !found || value != "hi" {
		t.Fatalf("expected persisted value, got (%q, %v)", value, found)
	}
}

func TestStoreWithSlotAccessors(t *testing.T) {
	store := newMemoryStore(t)
	slot := slotstore.New(store, "retries", slotstore.Entry[int]{
		Schema:  schema.Int(),
		Default: 3,
	}, slotstore.WithLogger(slotstore.Discard()))

	if got := slot.Get(); got != 3 {
		t.Fatalf("expected default, got %d", got)
	}
	slot.Set(7)
	if got := slot.Get(); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}

	slot.Remove()
	if got := slot.Get(); got != 3 {
		t.Fatalf("expected default after remove, got %d", got)
	}
}
