package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/bnema/athena-partnership/internal/ports"
)

// Backend is a record store that can be written to and queried.
type Backend interface {
	ports.PartnershipSink
	ports.HistoryReader
}

// Sink writes to the primary backend and falls back to the secondary one
// when the primary fails. Reads follow the same order.
type Sink struct {
	primary  Backend
	fallback Backend
}

var _ Backend = (*Sink)(nil)

var (
	errNilPrimarySink  = errors.New("primary partnership sink is nil")
	errNilFallbackSink = errors.New("fallback partnership sink is nil")
)

func NewSink(primary Backend, fallback Backend) *Sink {
	sink, err := NewSinkChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return sink
}

func NewSinkChecked(primary Backend, fallback Backend) (*Sink, error) {
	if primary == nil {
		return nil, errNilPrimarySink
	}
	if fallback == nil {
		return nil, errNilFallbackSink
	}

	return &Sink{primary: primary, fallback: fallback}, nil
}

func (s *Sink) LogPartnership(ctx context.Context, record domain.PartnershipRecord) error {
	err := s.primary.LogPartnership(ctx, record)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.LogPartnership(ctx, record)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary sink log failed: %w; fallback sink log failed: %w", err, fallbackErr)
}

func (s *Sink) History(ctx context.Context, query domain.HistoryQuery) ([]domain.HistoryEntry, error) {
	entries, err := s.primary.History(ctx, query)
	if err == nil {
		return entries, nil
	}
	if shouldSkipFallback(err) {
		return nil, err
	}

	fallbackEntries, fallbackErr := s.fallback.History(ctx, query)
	if fallbackErr == nil {
		return fallbackEntries, nil
	}

	return nil, fmt.Errorf("primary sink history failed: %w; fallback sink history failed: %w", err, fallbackErr)
}

func (s *Sink) CountBySession(ctx context.Context, sessionID string) (int, error) {
	count, err := s.primary.CountBySession(ctx, sessionID)
	if err == nil {
		return count, nil
	}
	if shouldSkipFallback(err) {
		return 0, err
	}

	fallbackCount, fallbackErr := s.fallback.CountBySession(ctx, sessionID)
	if fallbackErr == nil {
		return fallbackCount, nil
	}

	return 0, fmt.Errorf("primary sink count failed: %w; fallback sink count failed: %w", err, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
