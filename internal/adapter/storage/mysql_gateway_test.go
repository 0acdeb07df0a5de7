package storage

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

func getMySQL(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/smartpos?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	return db
}

func newTestMySQLGateway(t *testing.T) *MySQLGateway {
	t.Helper()
	db := getMySQL(t)
	t.Cleanup(func() { db.Close() })

	g := NewMySQLGateway(db)
	if err := g.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return g
}

func TestMySQLGateway_LoadMissingReturnsEmpty(t *testing.T) {
	g := newTestMySQLGateway(t)
	ctx := context.Background()

	g.db.ExecContext(ctx, `DELETE FROM store_snapshots WHERE store_id = ?`, "mysql-test-missing")

	snap, err := g.Load(ctx, "mysql-test-missing")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap) != 0 {
		t.Errorf("expected empty snapshot, got %d records", len(snap))
	}
}

func TestMySQLGateway_SaveLoadRoundtrip(t *testing.T) {
	g := newTestMySQLGateway(t)
	ctx := context.Background()

	storeID := "mysql-test-store"
	g.db.ExecContext(ctx, `DELETE FROM store_snapshots WHERE store_id = ?`, storeID)
	defer g.db.ExecContext(ctx, `DELETE FROM store_snapshots WHERE store_id = ?`, storeID)

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

func TestMySQLGateway_SaveIsIdempotentUpsert(t *testing.T) {
	g := newTestMySQLGateway(t)
	ctx := context.Background()

	storeID := "mysql-test-idempotent"
	g.db.ExecContext(ctx, `DELETE FROM store_snapshots WHERE store_id = ?`, storeID)
	defer g.db.ExecContext(ctx, `DELETE FROM store_snapshots WHERE store_id = ?`, storeID)

	snap := testSnapshot()
	for i := 0; i < 3; i++ {
		if err := g.Save(ctx, storeID, snap); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	var count int
	g.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM store_snapshots WHERE store_id = ?`, storeID).Scan(&count)
	if count != 1 {
		t.Errorf("expected 1 row after repeated saves, got %d", count)
	}
}
