package port

import (
	"context"

	"github.com/namhbcf1/smartpos-sub005/internal/core/domain"
)

type PersistenceGateway interface {
	// Load retrieves the snapshot for a store, or an empty snapshot if none
	// has ever been saved.
	Load(ctx context.Context, storeID string) (domain.Snapshot, error)

	// Save durably writes the full snapshot for a store. Saves are
	// idempotent; the actor relies on the returned error to decide whether
	// to commit or roll back its in-memory state.
	Save(ctx context.Context, storeID string, snapshot domain.Snapshot) error
}
