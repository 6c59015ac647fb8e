package cache

import (
	"context"
	"testing"
	"time"

	"pricesuggest/internal/model"
)

func TestMemoryGetPut(t *testing.T) {
	m := NewMemory(time.Hour)
	ctx := context.Background()

	if _, ok := m.Get(ctx, "missing"); ok {
		t.Fatal("expected miss on empty cache")
	}

	result := &model.SuggestionResult{ID: "r1", ProductName: "iPhone 13"}
	m.Put(ctx, "k1", result)

	got, ok := m.Get(ctx, "k1")
	if !ok || got.ID != "r1" {
		t.Fatalf("expected hit with r1, got (%v, %v)", got, ok)
	}
}

func TestMemoryExpiry(t *testing.T) {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryWithClock(time.Hour, func() time.Time { return clock })
	ctx := context.Background()

	m.Put(ctx, "k1", &model.SuggestionResult{ID: "r1"})

	clock = clock.Add(59 * time.Minute)
	if _, ok := m.Get(ctx, "k1"); !ok {
		t.Fatal("entry expired before TTL")
	}

	clock = clock.Add(time.Minute)
	if _, ok := m.Get(ctx, "k1"); ok {
		t.Fatal("entry survived past TTL")
	}
}

func TestMemoryPutOverwrites(t *testing.T) {
	m := NewMemory(time.Hour)
	ctx := context.Background()

	m.Put(ctx, "k1", &model.SuggestionResult{ID: "old"})
	m.Put(ctx, "k1", &model.SuggestionResult{ID: "new"})

	got, ok := m.Get(ctx, "k1")
	if !ok || got.ID != "new" {
		t.Fatalf("expected overwritten entry, got (%v, %v)", got, ok)
	}
}

func TestKeyNormalizesProductName(t *testing.T) {
	if Key("iPhone 13", "moi") != Key("iphone 13", "moi") {
		t.Error("keys should match regardless of case")
	}
	if Key("Điện thoại", "moi") != Key("dien thoai", "moi") {
		t.Error("keys should match regardless of diacritics")
	}
	if Key("iphone", "moi") == Key("iphone", "nhu-moi") {
		t.Error("different conditions must not share a key")
	}
}
