package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/namhbcf1/smartpos-sub005/internal/core/domain"
	"github.com/namhbcf1/smartpos-sub005/internal/core/service"
)

// Mock PersistenceGateway
type memGateway struct {
	mu        sync.Mutex
	snapshots map[string]domain.Snapshot
	failSave  bool
}

func newMemGateway() *memGateway {
	return &memGateway{snapshots: make(map[string]domain.Snapshot)}
}

func (g *memGateway) Load(ctx context.Context, storeID string) (domain.Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	snap, ok := g.snapshots[storeID]
	if !ok {
		return make(domain.Snapshot), nil
	}
	return snap.Clone(), nil
}

func (g *memGateway) Save(ctx context.Context, storeID string, snapshot domain.Snapshot) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failSave {
		return errors.New("storage down")
	}
	g.snapshots[storeID] = snapshot.Clone()
	return nil
}

func newTestStack(t *testing.T) (*service.ActorDirectory, *service.ConnectionRegistry, *memGateway) {
	t.Helper()
	gateway := newMemGateway()
	registry := service.NewConnectionRegistry()
	directory := service.NewActorDirectory(gateway, registry, service.DirectoryConfig{})
	t.Cleanup(directory.Close)
	return directory, registry, gateway
}

func postUpdate(t *testing.T, h *HTTPHandler, body string) (*httptest.ResponseRecorder, UpdateHTTPResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/update", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	h.Update(w, req)

	var resp UpdateHTTPResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return w, resp
}

func TestHTTPUpdate_Success(t *testing.T) {
	directory, _, _ := newTestStack(t)
	h := NewHTTPHandler(directory)

	w, resp := postUpdate(t, h, `{"storeId":"store-1","productId":"prodA","quantity":10,"action":"add"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !resp.Success {
		t.Fatalf("expected success, got: %s", resp.Message)
	}
	if resp.Data == nil || resp.Data.Quantity != 10 || resp.Data.Version != 1 {
		t.Errorf("expected quantity 10 version 1, got %+v", resp.Data)
	}
}

func TestHTTPUpdate_Validation(t *testing.T) {
	directory, _, _ := newTestStack(t)
	h := NewHTTPHandler(directory)

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"storeId":`},
		{"missing storeId", `{"productId":"prodA","quantity":1,"action":"add"}`},
		{"missing productId", `{"storeId":"store-1","quantity":1,"action":"add"}`},
		{"missing quantity", `{"storeId":"store-1","productId":"prodA","action":"add"}`},
		{"negative quantity", `{"storeId":"store-1","productId":"prodA","quantity":-1,"action":"add"}`},
		{"unknown action", `{"storeId":"store-1","productId":"prodA","quantity":1,"action":"destroy"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, resp := postUpdate(t, h, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			if resp.Success {
				t.Error("expected rejection")
			}
		})
	}
}

func TestHTTPUpdate_MethodNotAllowed(t *testing.T) {
	directory, _, _ := newTestStack(t)
	h := NewHTTPHandler(directory)

	req := httptest.NewRequest(http.MethodGet, "/update", nil)
	w := httptest.NewRecorder()
	h.Update(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestHTTPUpdate_PersistenceFailure(t *testing.T) {
	directory, _, gateway := newTestStack(t)
	h := NewHTTPHandler(directory)

	postUpdate(t, h, `{"storeId":"store-1","productId":"prodA","quantity":5,"action":"set"}`)

	gateway.mu.Lock()
	gateway.failSave = true
	gateway.mu.Unlock()

	w, resp := postUpdate(t, h, `{"storeId":"store-1","productId":"prodA","quantity":3,"action":"add"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if resp.Success {
		t.Error("expected failure response")
	}

	gateway.mu.Lock()
	gateway.failSave = false
	gateway.mu.Unlock()

	// state must be unchanged by the failed mutation
	_, resp = postUpdate(t, h, `{"storeId":"store-1","productId":"prodA","quantity":0,"action":"add"}`)
	if resp.Data == nil || resp.Data.Quantity != 5 {
		t.Errorf("expected quantity 5 after rollback, got %+v", resp.Data)
	}
}

func TestHTTPSnapshot(t *testing.T) {
	directory, _, _ := newTestStack(t)
	h := NewHTTPHandler(directory)

	postUpdate(t, h, `{"storeId":"store-1","productId":"prodA","quantity":10,"action":"set"}`)
	postUpdate(t, h, `{"storeId":"store-1","productId":"prodB","quantity":4,"action":"set"}`)

	req := httptest.NewRequest(http.MethodGet, "/snapshot?storeId=store-1", nil)
	w := httptest.NewRecorder()
	h.Snapshot(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp SnapshotHTTPResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 records, got %d", len(resp.Data))
	}
	if rec := resp.Data["prodA"]; rec.Quantity != 10 {
		t.Errorf("expected prodA quantity 10, got %d", rec.Quantity)
	}
}

func TestHTTPSnapshot_MissingStoreID(t *testing.T) {
	directory, _, _ := newTestStack(t)
	h := NewHTTPHandler(directory)

	req := httptest.NewRequest(http.MethodGet, "/snapshot", nil)
	w := httptest.NewRecorder()
	h.Snapshot(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	directory, _, _ := newTestStack(t)
	h := NewHTTPHandler(directory)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.HealthCheck(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
