package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/namhbcf1/smartpos-sub005/internal/core/domain"
	"github.com/namhbcf1/smartpos-sub005/internal/port"
)

var (
	ErrInvalidAction      = errors.New("invalid action")
	ErrPersistenceFailure = errors.New("persistence failure")
	ErrActorStopped       = errors.New("actor stopped")
)

const defaultPersistTimeout = 5 * time.Second

// PartitionActor is the single point of truth for one store's inventory.
// All operations funnel through a mailbox consumed by one goroutine, so at
// most one mutation touches the snapshot at any instant. Distinct stores
// run fully in parallel; there is no cross-store lock.
type PartitionActor struct {
	storeID  string
	gateway  port.PersistenceGateway
	registry *ConnectionRegistry

	persistTimeout time.Duration

	mailbox    chan message
	done       chan struct{}
	stopOnce   sync.Once
	lastActive atomic.Int64 // unix nanos of the last applied mutation

	// snapshot is owned by run(); nothing outside the mailbox goroutine
	// may read or write it.
	snapshot domain.Snapshot
}

type message interface{ actorMessage() }

type applyMsg struct {
	req   domain.MutationRequest
	reply chan applyResult
}

type applyResult struct {
	record domain.InventoryRecord
	err    error
}

type snapshotMsg struct {
	reply chan domain.Snapshot
}

func (applyMsg) actorMessage()    {}
func (snapshotMsg) actorMessage() {}

// newPartitionActor takes ownership of the loaded snapshot and starts the
// mailbox goroutine. Callers go through ActorDirectory, which guarantees a
// single instance per store.
func newPartitionActor(storeID string, snapshot domain.Snapshot, gateway port.PersistenceGateway, registry *ConnectionRegistry, persistTimeout time.Duration, mailboxSize int) *PartitionActor {
	if snapshot == nil {
		snapshot = make(domain.Snapshot)
	}
	if persistTimeout <= 0 {
		persistTimeout = defaultPersistTimeout
	}
	a := &PartitionActor{
		storeID:        storeID,
		gateway:        gateway,
		registry:       registry,
		persistTimeout: persistTimeout,
		mailbox:        make(chan message, mailboxSize),
		done:           make(chan struct{}),
		snapshot:       snapshot,
	}
	a.lastActive.Store(time.Now().UnixNano())
	go a.run()
	return a
}

func (a *PartitionActor) StoreID() string { return a.storeID }

// Apply enqueues the mutation and waits for its result. Once the mailbox
// has accepted the request it always runs to completion; cancelling ctx
// afterwards only abandons the reply, never the mutation.
func (a *PartitionActor) Apply(ctx context.Context, req domain.MutationRequest) (domain.InventoryRecord, error) {
	msg := applyMsg{req: req, reply: make(chan applyResult, 1)}

	select {
	case a.mailbox <- msg:
	case <-a.done:
		return domain.InventoryRecord{}, ErrActorStopped
	case <-ctx.Done():
		return domain.InventoryRecord{}, ctx.Err()
	}

	select {
	case res := <-msg.reply:
		return res.record, res.err
	case <-ctx.Done():
		return domain.InventoryRecord{}, ctx.Err()
	case <-a.done:
		// the actor may have replied concurrently with stopping
		select {
		case res := <-msg.reply:
			return res.record, res.err
		default:
			return domain.InventoryRecord{}, ErrActorStopped
		}
	}
}

// Snapshot returns a copy of the current state, read through the mailbox so
// it never observes a half-applied mutation.
func (a *PartitionActor) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	msg := snapshotMsg{reply: make(chan domain.Snapshot, 1)}

	select {
	case a.mailbox <- msg:
	case <-a.done:
		return nil, ErrActorStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case snap := <-msg.reply:
		return snap, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-a.done:
		select {
		case snap := <-msg.reply:
			return snap, nil
		default:
			return nil, ErrActorStopped
		}
	}
}

// LastActive reports when the actor last applied a mutation.
func (a *PartitionActor) LastActive() time.Time {
	return time.Unix(0, a.lastActive.Load())
}

// Stop terminates the mailbox goroutine. Queued operations are failed with
// ErrActorStopped rather than silently dropped.
func (a *PartitionActor) Stop() {
	a.stopOnce.Do(func() { close(a.done) })
}

func (a *PartitionActor) run() {
	for {
		select {
		case <-a.done:
			a.drainMailbox()
			return
		case msg := <-a.mailbox:
			a.handle(msg)
		}
	}
}

func (a *PartitionActor) handle(msg message) {
	switch m := msg.(type) {
	case applyMsg:
		record, err := a.apply(m.req)
		m.reply <- applyResult{record: record, err: err}
	case snapshotMsg:
		m.reply <- a.snapshot.Clone()
	}
}

func (a *PartitionActor) drainMailbox() {
	for {
		select {
		case msg := <-a.mailbox:
			switch m := msg.(type) {
			case applyMsg:
				m.reply <- applyResult{err: ErrActorStopped}
			case snapshotMsg:
				m.reply <- nil
			}
		default:
			return
		}
	}
}

// apply performs the read-modify-write-persist sequence for one mutation.
// The in-memory write is rolled back if the durable save fails or times
// out, so memory and storage never diverge observably.
func (a *PartitionActor) apply(req domain.MutationRequest) (domain.InventoryRecord, error) {
	if !req.Action.Valid() {
		return domain.InventoryRecord{}, fmt.Errorf("%w: %q", ErrInvalidAction, req.Action)
	}

	prev, existed := a.snapshot[req.ProductID]

	next := prev
	next.ProductID = req.ProductID
	switch req.Action {
	case domain.ActionAdd:
		next.Quantity = prev.Quantity + req.Amount
	case domain.ActionSubtract:
		next.Quantity = prev.Quantity - req.Amount
		if next.Quantity < 0 {
			next.Quantity = 0
		}
	case domain.ActionSet:
		next.Quantity = req.Amount
		if next.Quantity < 0 {
			next.Quantity = 0
		}
	}
	next.Version = prev.Version + 1
	next.UpdatedAt = time.Now().UTC()

	a.snapshot[req.ProductID] = next

	// The save uses its own timeout, not the caller's context: an accepted
	// mutation must not be cancelled by the caller going away.
	ctx, cancel := context.WithTimeout(context.Background(), a.persistTimeout)
	defer cancel()

	if err := a.gateway.Save(ctx, a.storeID, a.snapshot); err != nil {
		if existed {
			a.snapshot[req.ProductID] = prev
		} else {
			delete(a.snapshot, req.ProductID)
		}
		return domain.InventoryRecord{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	a.lastActive.Store(time.Now().UnixNano())

	a.registry.Broadcast(a.storeID, domain.BroadcastDelta{
		StoreID:   a.storeID,
		ProductID: next.ProductID,
		Quantity:  next.Quantity,
		Version:   next.Version,
		UpdatedAt: next.UpdatedAt,
	})

	return next, nil
}
