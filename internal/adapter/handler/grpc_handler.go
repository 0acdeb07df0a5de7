package handler

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/namhbcf1/smartpos-sub005/internal/adapter/handler/pb"
	"github.com/namhbcf1/smartpos-sub005/internal/core/domain"
	"github.com/namhbcf1/smartpos-sub005/internal/core/service"
)

type GRPCHandler struct {
	pb.UnimplementedInventorySyncServer
	directory *service.ActorDirectory
}

func NewGRPCHandler(directory *service.ActorDirectory) *GRPCHandler {
	return &GRPCHandler{directory: directory}
}

func (h *GRPCHandler) Update(ctx context.Context, req *pb.UpdateRequest) (*pb.UpdateResponse, error) {
	if req.GetStoreId() == "" || req.GetProductId() == "" {
		return &pb.UpdateResponse{
			Success: false,
			Message: "missing required fields",
		}, nil
	}
	if req.GetQuantity() < 0 {
		return &pb.UpdateResponse{
			Success: false,
			Message: "quantity must be non-negative",
		}, nil
	}
	if !domain.Action(req.GetAction()).Valid() {
		return &pb.UpdateResponse{
			Success: false,
			Message: "unknown action",
		}, nil
	}

	requestID := req.GetRequestId()
	if requestID == "" {
		requestID = uuid.New().String()
	}

	actor, err := h.directory.Get(ctx, req.GetStoreId())
	if err != nil {
		return &pb.UpdateResponse{
			Success: false,
			Message: "store unavailable",
		}, nil
	}

	record, err := actor.Apply(ctx, domain.MutationRequest{
		RequestID: requestID,
		StoreID:   req.GetStoreId(),
		ProductID: req.GetProductId(),
		Action:    domain.Action(req.GetAction()),
		Amount:    int(req.GetQuantity()),
		Source:    domain.SourceGRPC,
	})
	if err != nil {
		message := "internal error"
		if errors.Is(err, service.ErrInvalidAction) {
			message = "invalid action"
		} else if errors.Is(err, service.ErrPersistenceFailure) {
			message = "failed to persist update"
		}
		return &pb.UpdateResponse{
			Success: false,
			Message: message,
		}, nil
	}

	return &pb.UpdateResponse{
		Success: true,
		Message: "inventory updated",
		Record:  toPBRecord(record),
	}, nil
}

func (h *GRPCHandler) GetSnapshot(ctx context.Context, req *pb.SnapshotRequest) (*pb.SnapshotResponse, error) {
	if req.GetStoreId() == "" {
		return &pb.SnapshotResponse{
			Success: false,
			Message: "missing store_id",
		}, nil
	}

	actor, err := h.directory.Get(ctx, req.GetStoreId())
	if err != nil {
		return &pb.SnapshotResponse{
			Success: false,
			Message: "store unavailable",
		}, nil
	}

	snapshot, err := actor.Snapshot(ctx)
	if err != nil {
		return &pb.SnapshotResponse{
			Success: false,
			Message: "internal error",
		}, nil
	}

	records := make([]*pb.InventoryRecord, 0, len(snapshot))
	for _, rec := range snapshot {
		records = append(records, toPBRecord(rec))
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].GetProductId() < records[j].GetProductId()
	})

	return &pb.SnapshotResponse{
		Success: true,
		Message: "ok",
		Records: records,
	}, nil
}

func toPBRecord(rec domain.InventoryRecord) *pb.InventoryRecord {
	return &pb.InventoryRecord{
		ProductId:       rec.ProductID,
		Quantity:        int64(rec.Quantity),
		Version:         rec.Version,
		UpdatedAtUnixMs: rec.UpdatedAt.UnixMilli(),
	}
}
