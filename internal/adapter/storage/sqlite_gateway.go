package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/namhbcf1/smartpos-sub005/internal/core/domain"
)

// SQLiteGateway is the embedded default backend: a single-file database in
// WAL mode, so the server runs with no external services.
type SQLiteGateway struct {
	db *sql.DB
}

// NewSQLiteGateway opens (or creates) the database file and initializes the
// schema.
func NewSQLiteGateway(path string) (*SQLiteGateway, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(60000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	g := &SQLiteGateway{db: db}
	if err := g.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return g, nil
}

func (g *SQLiteGateway) Close() error { return g.db.Close() }

func (g *SQLiteGateway) migrate() error {
	_, err := g.db.Exec(`
	CREATE TABLE IF NOT EXISTS store_snapshots (
		store_id   TEXT PRIMARY KEY,
		data       TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);`)
	return err
}

func (g *SQLiteGateway) Load(ctx context.Context, storeID string) (domain.Snapshot, error) {
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

// Save upserts the snapshot row. Idempotent via ON CONFLICT.
func (g *SQLiteGateway) Save(ctx context.Context, storeID string, snapshot domain.Snapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", storeID, err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = g.db.ExecContext(ctx, `
		INSERT INTO store_snapshots (store_id, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(store_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		storeID, raw, now,
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot %s: %w", storeID, err)
	}
	return nil
}
