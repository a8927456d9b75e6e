package engine

import (
	"context"
	"testing"
	"time"
)

func TestCacheKey_Deterministic(t *testing.T) {
	a := CacheKey("jobs", "golang", "remote")
	b := CacheKey("jobs", "golang", "remote")
	if a != b {
		t.Errorf("same parts gave different keys: %q vs %q", a, b)
	}
	if a == CacheKey("jobs", "golang", "onsite") {
		t.Error("different parts gave the same key")
	}
	if len(a) != len("gr:")+24 {
		t.Errorf("unexpected key length: %q", a)
	}
}

func TestDayKey_Format(t *testing.T) {
	key := DayKey()
	if _, err := time.Parse("20060102", key); err != nil {
		t.Errorf("DayKey %q does not parse: %v", key, err)
	}
}

func TestCache_SetGet(t *testing.T) {
	InitCache("", time.Minute, 100, time.Minute)
	ctx := context.Background()

	key := CacheKey("test", "setget")
	if _, ok := CacheGet(ctx, key); ok {
		t.Fatal("unexpected hit before set")
	}

	CacheSet(ctx, key, []byte("payload"))
	data, ok := CacheGet(ctx, key)
	if !ok {
		t.Fatal("expected hit after set")
	}
	if string(data) != "payload" {
		t.Errorf("data = %q", data)
	}
}

func TestCache_JSONRoundTrip(t *testing.T) {
	InitCache("", time.Minute, 100, time.Minute)
	ctx := context.Background()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	key := CacheKey("test", "json")
	CacheStoreJSON(ctx, key, record{Name: "golang", Count: 3})

	got, ok := CacheLoadJSON[record](ctx, key)
	if !ok {
		t.Fatal("expected hit")
	}
	if got.Name != "golang" || got.Count != 3 {
		t.Errorf("got = %+v", got)
	}
}

func TestCache_Expiry(t *testing.T) {
	InitCache("", 10*time.Millisecond, 100, time.Minute)
	ctx := context.Background()

	key := CacheKey("test", "expiry")
	CacheSet(ctx, key, []byte("x"))
	time.Sleep(20 * time.Millisecond)

	if _, ok := CacheGet(ctx, key); ok {
		t.Error("expected miss after TTL")
	}
}

func TestCache_UninitializedMiss(t *testing.T) {
	saved := jobCache
	jobCache = nil
	defer func() { jobCache = saved }()

	if _, ok := CacheGet(context.Background(), "any"); ok {
		t.Error("uninitialized cache must miss")
	}
	// Set must be a no-op, not a panic.
	CacheSet(context.Background(), "any", []byte("x"))
}
