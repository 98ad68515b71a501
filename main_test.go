package main

import (
	"context"
	"path/filepath"
	"testing"

	"wempy-orders/internal/storage"
)

func TestBuildCounterStore_DefaultsToFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("COUNTER_BACKEND", "")
	t.Setenv("COUNTER_FILE", filepath.Join(dir, "last_id.txt"))

	store := buildCounterStore(dir)
	if _, ok := store.(*storage.FileCounterStore); !ok {
		t.Fatalf("expected file counter store, got %T", store)
	}

	id, err := store.NextOrderID(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected first order id 1, got %d", id)
	}
}

func TestBuildDispatcher_WithoutPublisher(t *testing.T) {
	if d := buildDispatcher(nil); d == nil {
		t.Fatal("expected a dispatcher")
	}
}
