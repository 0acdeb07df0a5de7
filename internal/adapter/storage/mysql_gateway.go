package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/namhbcf1/smartpos-sub005/internal/core/domain"
)

// MySQLGateway persists store snapshots in a store_snapshots table, one row
// per store. Saves are idempotent upserts.
type MySQLGateway struct {
	db *sql.DB
}

func NewMySQLGateway(db *sql.DB) *MySQLGateway {
	return &MySQLGateway{db: db}
}

// Migrate creates the snapshot table if it does not exist.
func (g *MySQLGateway) Migrate(ctx context.Context) error {
	_, err := g.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS store_snapshots (
			store_id   VARCHAR(128) PRIMARY KEY,
			data       JSON NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("create store_snapshots: %w", err)
	}
	return nil
}

func (g *MySQLGateway) Load(ctx context.Context, storeID string) (domain.Snapshot, error) {
	var raw []byte
	err := g.db.QueryRowContext(ctx, `
		SELECT data FROM store_snapshots WHERE store_id = ?`, storeID,
	).Scan(&raw)

	if errors.Is(err, sql.ErrNoRows) {
		return make(domain.Snapshot), nil
	}
	if err != nil {
		return nil, fmt.Errorf("query snapshot %s: %w", storeID, err)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", storeID, err)
	}
	return snapshot, nil
}

func (g *MySQLGateway) Save(ctx context.Context, storeID string, snapshot domain.Snapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", storeID, err)
	}

	_, err = g.db.ExecContext(ctx, `
		INSERT INTO store_snapshots (store_id, data)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE data = VALUES(data)`,
		storeID, raw,
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot %s: %w", storeID, err)
	}
	return nil
}
