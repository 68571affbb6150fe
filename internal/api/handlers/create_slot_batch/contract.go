package create_slot_batch

import (
	"context"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
	createSlotBatch "github.com/m04kA/DriveTail-Dashboard/internal/usecase/create_slot_batch"
)

type CreateSlotBatchUseCase interface {
	Execute(ctx context.Context, req *createSlotBatch.Request) (*createSlotBatch.Response, error)
	Preview(req *createSlotBatch.Request) (*createSlotBatch.Response, error)
}

type SessionLoader interface {
	Load(ctx context.Context, token string) (*domain.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
