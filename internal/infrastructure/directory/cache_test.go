package directory

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/microblog/microblog-system/internal/core/domain"
	"github.com/microblog/microblog-system/internal/core/ports"
)

// stubSummaryCache is an in-memory stand-in for the redis client.
type stubSummaryCache struct {
	data   map[string][]byte
	getErr error

	sets    map[string][]byte
	lastTTL time.Duration
}

func newStubSummaryCache() *stubSummaryCache {
	return &stubSummaryCache{
		data: make(map[string][]byte),
		sets: make(map[string][]byte),
	}
}

func (s *stubSummaryCache) Get(_ context.Context, key string) *redis.StringCmd {
	if s.getErr != nil {
		return redis.NewStringResult("", s.getErr)
	}
	raw, ok := s.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(raw), nil)
}

func (s *stubSummaryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	s.sets[key] = value.([]byte)
	s.lastTTL = ttl
	return redis.NewStatusResult("OK", nil)
}

// countingDirectory records how many times each id reached the upstream.
type countingDirectory struct {
	resolve func(userID string) domain.AuthorSummary
	calls   map[string]int
}

func newCountingDirectory(resolve func(userID string) domain.AuthorSummary) *countingDirectory {
	return &countingDirectory{resolve: resolve, calls: make(map[string]int)}
}

func (d *countingDirectory) Resolve(_ context.Context, userID string) domain.AuthorSummary {
	d.calls[userID]++
	return d.resolve(userID)
}

func resolvedSummary(userID string) domain.AuthorSummary {
	first := "Alice"
	return domain.AuthorSummary{ID: userID, Username: "alice", FirstName: &first}
}

func newTestCachedDirectory(next ports.AuthorDirectory, cache summaryCache) *CachedDirectory {
	return &CachedDirectory{next: next, cache: cache, ttl: authorCacheTTL}
}

func TestCachedDirectory_MissResolvesAndCaches(t *testing.T) {
	cache := newStubSummaryCache()
	next := newCountingDirectory(resolvedSummary)
	dir := newTestCachedDirectory(next, cache)

	summary := dir.Resolve(context.Background(), "user-1")
	if summary.Username != "alice" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if next.calls["user-1"] != 1 {
		t.Errorf("expected one upstream lookup, got %d", next.calls["user-1"])
	}

	raw, ok := cache.sets["author:user-1"]
	if !ok {
		t.Fatal("resolved summary must be cached under author:<id>")
	}
	var cached domain.AuthorSummary
	if err := json.Unmarshal(raw, &cached); err != nil {
		t.Fatalf("cached payload must be JSON: %v", err)
	}
	if cached.Username != "alice" {
		t.Errorf("unexpected cached summary: %+v", cached)
	}
	if cache.lastTTL != authorCacheTTL {
		t.Errorf("expected ttl %v, got %v", authorCacheTTL, cache.lastTTL)
	}
}

func TestCachedDirectory_HitSkipsUpstream(t *testing.T) {
	cache := newStubSummaryCache()
	raw, _ := json.Marshal(resolvedSummary("user-1"))
	cache.data["author:user-1"] = raw

	next := newCountingDirectory(resolvedSummary)
	dir := newTestCachedDirectory(next, cache)

	summary := dir.Resolve(context.Background(), "user-1")
	if summary.Username != "alice" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if next.calls["user-1"] != 0 {
		t.Errorf("cache hit must not reach upstream, got %d lookups", next.calls["user-1"])
	}
}

// A redis error is a miss, never a failure: the lookup proceeds
// upstream and the caller sees a normal summary.
func TestCachedDirectory_RedisErrorIsMiss(t *testing.T) {
	cache := newStubSummaryCache()
	cache.getErr = errors.New("connection refused")
	next := newCountingDirectory(resolvedSummary)
	dir := newTestCachedDirectory(next, cache)

	summary := dir.Resolve(context.Background(), "user-1")
	if summary.Username != "alice" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if next.calls["user-1"] != 1 {
		t.Errorf("expected one upstream lookup, got %d", next.calls["user-1"])
	}
}

func TestCachedDirectory_CorruptEntryIsMiss(t *testing.T) {
	cache := newStubSummaryCache()
	cache.data["author:user-1"] = []byte("{not json")
	next := newCountingDirectory(resolvedSummary)
	dir := newTestCachedDirectory(next, cache)

	summary := dir.Resolve(context.Background(), "user-1")
	if summary.Username != "alice" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if next.calls["user-1"] != 1 {
		t.Errorf("expected one upstream lookup, got %d", next.calls["user-1"])
	}
}

// Fallback summaries are never written to the cache, so a directory
// recovery is visible on the very next lookup.
func TestCachedDirectory_FallbackNotCached(t *testing.T) {
	cache := newStubSummaryCache()
	next := newCountingDirectory(domain.FallbackAuthor)
	dir := newTestCachedDirectory(next, cache)

	summary := dir.Resolve(context.Background(), "user-1")
	if !summary.IsFallback() {
		t.Fatalf("expected fallback, got %+v", summary)
	}
	if len(cache.sets) != 0 {
		t.Errorf("fallback must not be cached, got %v", cache.sets)
	}

	dir.Resolve(context.Background(), "user-1")
	if next.calls["user-1"] != 2 {
		t.Errorf("every lookup must retry upstream while degraded, got %d", next.calls["user-1"])
	}
}

// A real account that is named like the fallback is still cached.
func TestCachedDirectory_UnknownUserNamedAccountIsCached(t *testing.T) {
	cache := newStubSummaryCache()
	next := newCountingDirectory(func(userID string) domain.AuthorSummary {
		return domain.AuthorSummary{ID: userID, Username: "Unknown User"}
	})
	dir := newTestCachedDirectory(next, cache)

	dir.Resolve(context.Background(), "user-1")
	if _, ok := cache.sets["author:user-1"]; !ok {
		t.Error("a resolved account shaped like the fallback must still be cached")
	}
}
