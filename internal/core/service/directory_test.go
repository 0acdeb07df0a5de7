package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/namhbcf1/smartpos-sub005/internal/core/domain"
)

func newTestDirectory(gateway *mockGateway, cfg DirectoryConfig) (*ActorDirectory, *ConnectionRegistry) {
	registry := NewConnectionRegistry()
	return NewActorDirectory(gateway, registry, cfg), registry
}

func TestGet_ReturnsSameActor(t *testing.T) {
	gateway := newMockGateway()
	directory, _ := newTestDirectory(gateway, DirectoryConfig{})
	defer directory.Close()

	a1, err := directory.Get(context.Background(), "store-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	a2, err := directory.Get(context.Background(), "store-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if a1 != a2 {
		t.Error("expected the same actor instance for the same store")
	}
	if gateway.loadCount != 1 {
		t.Errorf("expected 1 load, got %d", gateway.loadCount)
	}
}

func TestGet_ConcurrentFirstAccessLoadsOnce(t *testing.T) {
	gateway := newMockGateway()
	directory, _ := newTestDirectory(gateway, DirectoryConfig{})
	defer directory.Close()

	const callers = 20
	actors := make([]*PartitionActor, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, err := directory.Get(context.Background(), "store-1")
			if err != nil {
				t.Errorf("get: %v", err)
				return
			}
			actors[i] = a
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		if actors[i] != actors[0] {
			t.Fatalf("caller %d got a different actor instance", i)
		}
	}

	gateway.mu.Lock()
	loads := gateway.loadCount
	gateway.mu.Unlock()
	if loads != 1 {
		t.Errorf("expected exactly 1 snapshot load, got %d", loads)
	}
}

func TestGet_DistinctStoresDistinctActors(t *testing.T) {
	gateway := newMockGateway()
	directory, _ := newTestDirectory(gateway, DirectoryConfig{})
	defer directory.Close()

	a1, _ := directory.Get(context.Background(), "store-1")
	a2, _ := directory.Get(context.Background(), "store-2")
	if a1 == a2 {
		t.Error("expected distinct actors for distinct stores")
	}
	if directory.ActorCount() != 2 {
		t.Errorf("expected 2 actors, got %d", directory.ActorCount())
	}
}

func TestGet_LoadFailureNotCached(t *testing.T) {
	gateway := newMockGateway()
	gateway.loadErr = errors.New("storage down")
	directory, _ := newTestDirectory(gateway, DirectoryConfig{})
	defer directory.Close()

	if _, err := directory.Get(context.Background(), "store-1"); err == nil {
		t.Fatal("expected load error")
	}
	if directory.ActorCount() != 0 {
		t.Errorf("failed load must not cache an actor, got %d", directory.ActorCount())
	}

	gateway.mu.Lock()
	gateway.loadErr = nil
	gateway.mu.Unlock()

	if _, err := directory.Get(context.Background(), "store-1"); err != nil {
		t.Fatalf("expected recovery after load failure, got: %v", err)
	}
}

func TestEvict_NextAccessReloadsFromGateway(t *testing.T) {
	gateway := newMockGateway()
	directory, _ := newTestDirectory(gateway, DirectoryConfig{})
	defer directory.Close()

	actor, _ := directory.Get(context.Background(), "store-1")
	if _, err := actor.Apply(context.Background(), domain.MutationRequest{
		StoreID:   "store-1",
		ProductID: "prodA",
		Action:    domain.ActionAdd,
		Amount:    10,
	}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	// a mutation whose save fails must not survive the restart
	gateway.setFailSave(true)
	actor.Apply(context.Background(), domain.MutationRequest{
		StoreID:   "store-1",
		ProductID: "prodA",
		Action:    domain.ActionAdd,
		Amount:    99,
	})
	gateway.setFailSave(false)

	directory.Evict("store-1")

	reloaded, err := directory.Get(context.Background(), "store-1")
	if err != nil {
		t.Fatalf("get after evict: %v", err)
	}
	if reloaded == actor {
		t.Fatal("expected a fresh actor after eviction")
	}

	snap, _ := reloaded.Snapshot(context.Background())
	if rec := snap["prodA"]; rec.Quantity != 10 || rec.Version != 1 {
		t.Errorf("expected reloaded quantity 10 version 1, got %d v%d", rec.Quantity, rec.Version)
	}
}

func TestIdleEviction(t *testing.T) {
	gateway := newMockGateway()
	directory, registry := newTestDirectory(gateway, DirectoryConfig{
		IdleTTL:       50 * time.Millisecond,
		SweepInterval: 10 * time.Millisecond,
	})
	defer directory.Close()

	if _, err := directory.Get(context.Background(), "store-1"); err != nil {
		t.Fatalf("get: %v", err)
	}

	// a live session pins the actor even when idle
	registry.Register(&Session{ID: "s1", StoreID: "store-1", Conn: &mockConn{}})
	time.Sleep(120 * time.Millisecond)
	if directory.ActorCount() != 1 {
		t.Fatalf("actor with live session must not be evicted")
	}

	registry.Unregister("s1")
	deadline := time.Now().Add(2 * time.Second)
	for directory.ActorCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("idle actor was not evicted")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestClose_StopsActors(t *testing.T) {
	gateway := newMockGateway()
	directory, _ := newTestDirectory(gateway, DirectoryConfig{})

	actor, _ := directory.Get(context.Background(), "store-1")
	directory.Close()

	_, err := actor.Apply(context.Background(), domain.MutationRequest{
		StoreID:   "store-1",
		ProductID: "prodA",
		Action:    domain.ActionAdd,
		Amount:    1,
	})
	if !errors.Is(err, ErrActorStopped) {
		t.Errorf("expected ErrActorStopped after Close, got: %v", err)
	}
}
