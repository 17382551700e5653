package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestHelper(t *testing.T) (*CacheHelper, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewCacheHelper(client, "test:"), mr
}

func TestCacheSetGet(t *testing.T) {
	helper, _ := newTestHelper(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := helper.Set(ctx, "k", payload{Name: "a", Count: 2}, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var got payload
	if err := helper.Get(ctx, "k", &got); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "a" || got.Count != 2 {
		t.Fatalf("unexpected value: %+v", got)
	}
}

func TestCacheGetMiss(t *testing.T) {
	helper, _ := newTestHelper(t)

	var dest string
	err := helper.Get(context.Background(), "absent", &dest)
	if !errors.Is(err, ErrCacheNotFound) {
		t.Fatalf("expected ErrCacheNotFound, got %v", err)
	}
}

func TestCacheDelete(t *testing.T) {
	helper, _ := newTestHelper(t)
	ctx := context.Background()

	if err := helper.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := helper.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var dest string
	if err := helper.Get(ctx, "k", &dest); !errors.Is(err, ErrCacheNotFound) {
		t.Fatalf("expected miss after delete, got %v", err)
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	helper, mr := newTestHelper(t)
	ctx := context.Background()

	if err := helper.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	var dest string
	if err := helper.Get(ctx, "k", &dest); !errors.Is(err, ErrCacheNotFound) {
		t.Fatalf("expected expiry, got %v", err)
	}
}

func TestCacheOrExecute(t *testing.T) {
	helper, _ := newTestHelper(t)
	ctx := context.Background()

	calls := 0
	execute := func() (interface{}, error) {
		calls++
		return map[string]int{"n": 7}, nil
	}

	var first map[string]int
	if err := helper.CacheOrExecute(ctx, "k", &first, time.Minute, execute); err != nil {
		t.Fatalf("CacheOrExecute failed: %v", err)
	}
	if first["n"] != 7 {
		t.Fatalf("unexpected value: %+v", first)
	}

	var second map[string]int
	if err := helper.CacheOrExecute(ctx, "k", &second, time.Minute, execute); err != nil {
		t.Fatalf("CacheOrExecute failed: %v", err)
	}
	if second["n"] != 7 {
		t.Fatalf("unexpected cached value: %+v", second)
	}
	if calls != 1 {
		t.Fatalf("expected execute once, ran %d times", calls)
	}
}

func TestCacheOrExecutePropagatesError(t *testing.T) {
	helper, _ := newTestHelper(t)

	wantErr := errors.New("backend down")
	var dest string
	err := helper.CacheOrExecute(context.Background(), "k", &dest, time.Minute, func() (interface{}, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected backend error, got %v", err)
	}
}

func TestNilClientIsNoOp(t *testing.T) {
	helper := NewCacheHelper(nil, "test:")
	ctx := context.Background()

	var dest string
	if err := helper.Get(ctx, "k", &dest); !errors.Is(err, ErrCacheNotAvailable) {
		t.Fatalf("expected ErrCacheNotAvailable, got %v", err)
	}
	if err := helper.Set(ctx, "k", "v", time.Minute); !errors.Is(err, ErrCacheNotAvailable) {
		t.Fatalf("expected ErrCacheNotAvailable, got %v", err)
	}

	// execute path still works without a cache
	calls := 0
	if err := helper.CacheOrExecute(ctx, "k", &dest, time.Minute, func() (interface{}, error) {
		calls++
		return "computed", nil
	}); err != nil {
		t.Fatalf("CacheOrExecute failed: %v", err)
	}
	if dest != "computed" || calls != 1 {
		t.Fatalf("expected computed value, got %q after %d calls", dest, calls)
	}
}
