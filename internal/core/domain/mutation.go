package domain

import "time"

type Action string

const (
	ActionAdd      Action = "add"
	ActionSubtract Action = "subtract"
	ActionSet      Action = "set"
)

// Valid reports whether the action is one the actor understands.
func (a Action) Valid() bool {
	switch a {
	case ActionAdd, ActionSubtract, ActionSet:
		return true
	}
	return false
}

type Source string

const (
	SourceWebSocket Source = "ws"
	SourceRequest   Source = "request"
	SourceGRPC      Source = "grpc"
)

// MutationRequest is a validated inventory mutation bound for one store's
// actor. Amount is always non-negative; the transport layer rejects negative
// input before constructing a request.
type MutationRequest struct {
	RequestID string
	StoreID   string
	ProductID string
	Action    Action
	Amount    int
	Source    Source
}

// BroadcastDelta is the exact post-mutation record pushed to every live
// session of the store after a successful apply.
type BroadcastDelta struct {
	StoreID   string    `json:"storeId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
}
