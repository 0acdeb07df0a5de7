package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/namhbcf1/smartpos-sub005/internal/core/domain"
	"github.com/namhbcf1/smartpos-sub005/internal/core/service"
)

type HTTPHandler struct {
	directory *service.ActorDirectory
}

type UpdateHTTPRequest struct {
	StoreID   string `json:"storeId"`
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
	Action    string `json:"action"`
	RequestID string `json:"requestId"`
}

type UpdateHTTPResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Data    *domain.InventoryRecord `json:"data,omitempty"`
}

type SnapshotHTTPResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    domain.Snapshot `json:"data,omitempty"`
}

func NewHTTPHandler(directory *service.ActorDirectory) *HTTPHandler {
	return &HTTPHandler{directory: directory}
}

// Update is the one-shot mutation surface: POST /update.
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req UpdateHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, UpdateHTTPResponse{
			Success: false,
			Message: "invalid request body",
		})
		return
	}

	if msg := validateUpdate(req); msg != "" {
		writeJSON(w, http.StatusBadRequest, UpdateHTTPResponse{
			Success: false,
			Message: msg,
		})
		return
	}

	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	actor, err := h.directory.Get(r.Context(), req.StoreID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, UpdateHTTPResponse{
			Success: false,
			Message: "store unavailable",
		})
		return
	}

	record, err := actor.Apply(r.Context(), domain.MutationRequest{
		RequestID: requestID,
		StoreID:   req.StoreID,
		ProductID: req.ProductID,
		Action:    domain.Action(req.Action),
		Amount:    *req.Quantity,
		Source:    domain.SourceRequest,
	})
	if err != nil {
		status := http.StatusInternalServerError
		message := "internal error"

		if errors.Is(err, service.ErrInvalidAction) {
			status = http.StatusBadRequest
			message = "invalid action"
		} else if errors.Is(err, service.ErrPersistenceFailure) {
			message = "failed to persist update"
		}

		writeJSON(w, status, UpdateHTTPResponse{
			Success: false,
			Message: message,
		})
		return
	}

	writeJSON(w, http.StatusOK, UpdateHTTPResponse{
		Success: true,
		Message: "inventory updated",
		Data:    &record,
	})
}

// Snapshot serves GET /snapshot?storeId=. The read routes through the
// actor's mailbox, so it never observes a half-applied mutation.
func (h *HTTPHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	storeID := r.URL.Query().Get("storeId")
	if storeID == "" {
		writeJSON(w, http.StatusBadRequest, SnapshotHTTPResponse{
			Success: false,
			Message: "missing storeId",
		})
		return
	}

	actor, err := h.directory.Get(r.Context(), storeID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, SnapshotHTTPResponse{
			Success: false,
			Message: "store unavailable",
		})
		return
	}

	snapshot, err := actor.Snapshot(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, SnapshotHTTPResponse{
			Success: false,
			Message: "internal error",
		})
		return
	}

	writeJSON(w, http.StatusOK, SnapshotHTTPResponse{
		Success: true,
		Message: "ok",
		Data:    snapshot,
	})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// validateUpdate returns a rejection message, or "" when the request is
// well-formed. Validation lives here so the actor only ever sees requests
// with non-negative amounts.
func validateUpdate(req UpdateHTTPRequest) string {
	if req.StoreID == "" {
		return "missing storeId"
	}
	if req.ProductID == "" {
		return "missing productId"
	}
	if req.Quantity == nil {
		return "missing quantity"
	}
	if *req.Quantity < 0 {
		return "quantity must be non-negative"
	}
	if !domain.Action(req.Action).Valid() {
		return "unknown action"
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
