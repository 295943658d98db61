package repository

import (
	"context"

	"relief/internal/domain/entity"

	"github.com/google/uuid"
)

// HistoryRepository defines the interface for the append-only audit trail.
// Entries are never updated or deleted.
type HistoryRepository interface {
	// Append persists one immutable history entry.
	Append(ctx context.Context, entry *entity.HistoryEntry) error

	// ListBySubject retrieves the audit trail for one supply unit or demand
	// request, newest first.
	ListBySubject(ctx context.Context, subjectType entity.HistorySubject, subjectID uuid.UUID, limit, offset int) ([]*entity.HistoryEntry, error)
}
