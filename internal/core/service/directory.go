package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/namhbcf1/smartpos-sub005/internal/port"
)

// DirectoryConfig carries the tunables for actor creation and eviction.
type DirectoryConfig struct {
	// PersistTimeout bounds each durable save; zero means the default.
	PersistTimeout time.Duration

	// MailboxSize is the per-actor queue depth.
	MailboxSize int

	// IdleTTL evicts actors with no sessions and no mutations for this
	// long. Zero disables eviction.
	IdleTTL time.Duration

	// SweepInterval is how often idle actors are checked for. Defaults to
	// IdleTTL/2 when unset.
	SweepInterval time.Duration
}

// ActorDirectory resolves a store ID to its singleton PartitionActor,
// creating it lazily. Concurrent first accesses to the same store collapse
// into a single snapshot load via singleflight.
type ActorDirectory struct {
	gateway  port.PersistenceGateway
	registry *ConnectionRegistry
	cfg      DirectoryConfig

	mu     sync.Mutex
	actors map[string]*PartitionActor
	group  singleflight.Group

	done      chan struct{}
	closeOnce sync.Once
}

func NewActorDirectory(gateway port.PersistenceGateway, registry *ConnectionRegistry, cfg DirectoryConfig) *ActorDirectory {
	if cfg.MailboxSize <= 0 {
		cfg.MailboxSize = 64
	}
	d := &ActorDirectory{
		gateway:  gateway,
		registry: registry,
		cfg:      cfg,
		actors:   make(map[string]*PartitionActor),
		done:     make(chan struct{}),
	}
	if cfg.IdleTTL > 0 {
		interval := cfg.SweepInterval
		if interval <= 0 {
			interval = cfg.IdleTTL / 2
		}
		go d.sweepLoop(interval)
	}
	return d
}

// Get returns the actor for a store, creating and loading it exactly once
// even under concurrent first access. A failed snapshot load is returned to
// every waiting caller and nothing is cached.
func (d *ActorDirectory) Get(ctx context.Context, storeID string) (*PartitionActor, error) {
	if a := d.lookup(storeID); a != nil {
		return a, nil
	}

	v, err, _ := d.group.Do(storeID, func() (any, error) {
		if a := d.lookup(storeID); a != nil {
			return a, nil
		}

		timeout := d.cfg.PersistTimeout
		if timeout <= 0 {
			timeout = defaultPersistTimeout
		}
		loadCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		snapshot, err := d.gateway.Load(loadCtx, storeID)
		if err != nil {
			return nil, fmt.Errorf("load snapshot for %s: %w", storeID, err)
		}

		a := newPartitionActor(storeID, snapshot, d.gateway, d.registry, d.cfg.PersistTimeout, d.cfg.MailboxSize)

		d.mu.Lock()
		d.actors[storeID] = a
		d.mu.Unlock()
		return a, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*PartitionActor), nil
}

// lookup returns the live actor for a store, dropping any stopped one so
// the next Get recreates it.
func (d *ActorDirectory) lookup(storeID string) *PartitionActor {
	d.mu.Lock()
	defer d.mu.Unlock()
	a := d.actors[storeID]
	if a == nil {
		return nil
	}
	select {
	case <-a.done:
		delete(d.actors, storeID)
		return nil
	default:
		return a
	}
}

// ActorCount returns the number of live actors.
func (d *ActorDirectory) ActorCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.actors)
}

// Evict disposes the actor for a store, if any. The next Get reloads its
// snapshot from the gateway.
func (d *ActorDirectory) Evict(storeID string) {
	d.mu.Lock()
	a := d.actors[storeID]
	delete(d.actors, storeID)
	d.mu.Unlock()
	if a != nil {
		a.Stop()
	}
}

// Close stops the sweeper and every live actor.
func (d *ActorDirectory) Close() {
	d.closeOnce.Do(func() { close(d.done) })

	d.mu.Lock()
	actors := make([]*PartitionActor, 0, len(d.actors))
	for _, a := range d.actors {
		actors = append(actors, a)
	}
	d.actors = make(map[string]*PartitionActor)
	d.mu.Unlock()

	for _, a := range actors {
		a.Stop()
	}
}

func (d *ActorDirectory) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-d.done:
			return
		case <-ticker.C:
			d.evictIdle()
		}
	}
}

// evictIdle disposes actors with no live sessions and no mutation inside
// IdleTTL.
func (d *ActorDirectory) evictIdle() {
	cutoff := time.Now().Add(-d.cfg.IdleTTL)

	d.mu.Lock()
	var idle []*PartitionActor
	for storeID, a := range d.actors {
		if d.registry.SessionCount(storeID) == 0 && a.LastActive().Before(cutoff) {
			idle = append(idle, a)
			delete(d.actors, storeID)
		}
	}
	d.mu.Unlock()

	for _, a := range idle {
		log.Printf("directory: evicting idle actor for store %s", a.StoreID())
		a.Stop()
	}
}
