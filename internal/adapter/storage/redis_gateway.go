package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/namhbcf1/smartpos-sub005/internal/core/domain"
)

const snapshotKeyPrefix = "snapshot:"

// RedisGateway persists store snapshots as JSON blobs in Redis.
type RedisGateway struct {
	client *redis.Client
}

func NewRedisGateway(client *redis.Client) *RedisGateway {
	return &RedisGateway{client: client}
}

func (g *RedisGateway) Load(ctx context.Context, storeID string) (domain.Snapshot, error) {
	key := snapshotKeyPrefix + storeID

	raw, err := g.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return make(domain.Snapshot), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot %s: %w", storeID, err)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", storeID, err)
	}
	return snapshot, nil
}

func (g *RedisGateway) Save(ctx context.Context, storeID string, snapshot domain.Snapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", storeID, err)
	}

	key := snapshotKeyPrefix + storeID
	if err := g.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("set snapshot %s: %w", storeID, err)
	}
	return nil
}
