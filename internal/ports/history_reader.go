package ports

import (
	"context"

	"github.com/bnema/athena-partnership/internal/domain"
)

// HistoryReader exposes stored partnership records to the detectors and the
// memory retriever.
type HistoryReader interface {
	History(ctx context.Context, query domain.HistoryQuery) ([]domain.HistoryEntry, error)
	CountBySession(ctx context.Context, sessionID string) (int, error)
}
