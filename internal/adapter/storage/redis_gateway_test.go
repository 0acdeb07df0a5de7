package storage

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestRedisGateway_LoadMissingReturnsEmpty(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	client.Del(ctx, snapshotKeyPrefix+"redis-test-missing")

	g := NewRedisGateway(client)
	snap, err := g.Load(ctx, "redis-test-missing")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap) != 0 {
		t.Errorf("expected empty snapshot, got %d records", len(snap))
	}
}

func TestRedisGateway_SaveLoadRoundtrip(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	storeID := "redis-test-store"
	client.Del(ctx, snapshotKeyPrefix+storeID)
	defer client.Del(ctx, snapshotKeyPrefix+storeID)

	g := NewRedisGateway(client)
	want := testSnapshot()
	if err := g.Save(ctx, storeID, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := g.Load(ctx, storeID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for id, w := range want {
		rec := got[id]
		if rec.Quantity != w.Quantity || rec.Version != w.Version {
			t.Errorf("%s: expected quantity %d version %d, got %d v%d", id, w.Quantity, w.Version, rec.Quantity, rec.Version)
		}
	}
}

func TestRedisGateway_SaveOverwrites(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	storeID := "redis-test-overwrite"
	client.Del(ctx, snapshotKeyPrefix+storeID)
	defer client.Del(ctx, snapshotKeyPrefix+storeID)

	g := NewRedisGateway(client)
	first := testSnapshot()
	if err := g.Save(ctx, storeID, first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := first.Clone()
	rec := second["prodA"]
	rec.Quantity = 42
	rec.Version = 2
	second["prodA"] = rec
	if err := g.Save(ctx, storeID, second); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := g.Load(ctx, storeID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got["prodA"].Quantity != 42 || got["prodA"].Version != 2 {
		t.Errorf("expected latest save to win, got %+v", got["prodA"])
	}
}
