package resolve

import (
	"context"
	"testing"
	"time"
)

var ctx = context.Background()

// ----- StaticResolver -----

func TestStaticResolver_Exact(t *testing.T) {
	r := NewStaticResolver(map[string]string{
		"a1b2c3":     "user-service",
		"db-primary": "postgres",
	})

	cases := []struct {
		origin string
		want   string
		ok     bool
	}{
		{"a1b2c3", "user-service", true},
		{"db-primary", "postgres", true},
		{"DB-PRIMARY", "postgres", true}, // case-insensitive
		{"unknown", "", false},
	}

	for _, tc := range cases {
		svc, ok := r.Resolve(ctx, tc.origin)
		if ok != tc.ok || svc != tc.want {
			t.Errorf("Resolve(%q): want (%q, %v), got (%q, %v)", tc.origin, tc.want, tc.ok, svc, ok)
		}
	}
}

func TestStaticResolver_Wildcard(t *testing.T) {
	r := NewStaticResolver(map[string]string{
		"redis-*": "redis",
		"web-*":   "frontend",
	})

	cases := []struct {
		origin string
		want   string
		ok     bool
	}{
		{"redis-1", "redis", true},
		{"redis-replica", "redis", true},
		{"web-42", "frontend", true},
		{"worker-1", "", false},
	}

	for _, tc := range cases {
		svc, ok := r.Resolve(ctx, tc.origin)
		if ok != tc.ok || svc != tc.want {
			t.Errorf("Resolve(%q): want (%q, %v), got (%q, %v)", tc.origin, tc.want, tc.ok, svc, ok)
		}
	}
}

// ----- ChainResolver -----

type fixedResolver struct {
	service string
	ok      bool
	calls   int
}

func (f *fixedResolver) Resolve(_ context.Context, _ string) (string, bool) {
	f.calls++
	return f.service, f.ok
}

func TestChainResolver_FirstWins(t *testing.T) {
	first := &fixedResolver{service: "svc-a", ok: true}
	second := &fixedResolver{service: "svc-b", ok: true}

	svc, ok := NewChain(first, second).Resolve(ctx, "x")
	if !ok || svc != "svc-a" {
		t.Fatalf("want svc-a, got (%q, %v)", svc, ok)
	}
	if second.calls != 0 {
		t.Error("second resolver must not be consulted after a hit")
	}
}

func TestChainResolver_FallsThrough(t *testing.T) {
	first := &fixedResolver{ok: false}
	second := &fixedResolver{service: "svc-b", ok: true}

	svc, ok := NewChain(first, second).Resolve(ctx, "x")
	if !ok || svc != "svc-b" {
		t.Fatalf("want svc-b, got (%q, %v)", svc, ok)
	}
}

func TestChainResolver_AllMiss(t *testing.T) {
	if _, ok := NewChain(&fixedResolver{}, &fixedResolver{}).Resolve(ctx, "x"); ok {
		t.Fatal("want miss")
	}
}

// ----- CachingResolver -----

func TestCachingResolver_CachesHits(t *testing.T) {
	inner := &fixedResolver{service: "svc", ok: true}
	r := NewCachingResolver(inner, time.Minute, 0)

	r.Resolve(ctx, "o1")
	r.Resolve(ctx, "o1")

	if inner.calls != 1 {
		t.Fatalf("inner resolver called %d times, want 1", inner.calls)
	}
}

func TestCachingResolver_CachesMisses(t *testing.T) {
	inner := &fixedResolver{ok: false}
	r := NewCachingResolver(inner, time.Minute, 0)

	r.Resolve(ctx, "o1")
	r.Resolve(ctx, "o1")

	if inner.calls != 1 {
		t.Fatalf("inner resolver called %d times, want 1", inner.calls)
	}
}

func TestCachingResolver_Invalidate(t *testing.T) {
	inner := &fixedResolver{service: "svc", ok: true}
	r := NewCachingResolver(inner, time.Minute, 0)

	r.Resolve(ctx, "o1")
	r.Invalidate("o1")
	r.Resolve(ctx, "o1")

	if inner.calls != 2 {
		t.Fatalf("inner resolver called %d times, want 2", inner.calls)
	}
}

func TestCachingResolver_Eviction(t *testing.T) {
	inner := &fixedResolver{service: "svc", ok: true}
	r := NewCachingResolver(inner, time.Minute, 1)

	r.Resolve(ctx, "o1")
	r.Resolve(ctx, "o2") // evicts o1
	r.Resolve(ctx, "o1")

	if inner.calls != 3 {
		t.Fatalf("inner resolver called %d times, want 3", inner.calls)
	}
}
