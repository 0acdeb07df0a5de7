package domain

import "time"

// InventoryRecord is the authoritative state of one product within a store.
// Version increases by exactly one on every applied mutation, so clients can
// detect missed updates by a version gap.
type InventoryRecord struct {
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Snapshot is the full productId -> record map for one store, the unit of
// durable persistence.
type Snapshot map[string]InventoryRecord

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
