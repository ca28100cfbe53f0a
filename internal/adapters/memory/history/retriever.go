// Package history answers memory retrieval queries from stored partnership
// records.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/bnema/athena-partnership/internal/keywords"
	"github.com/bnema/athena-partnership/internal/ports"
)

const (
	defaultScanLimit = 200

	tierOneOverlap = 0.75
	tierTwoOverlap = 0.5

	recencyHalfWeek = 7.0
)

type Retriever struct {
	history   ports.HistoryReader
	clock     ports.Clock
	scanLimit int
}

var _ ports.MemoryRetriever = (*Retriever)(nil)

func NewRetriever(history ports.HistoryReader, clock ports.Clock) *Retriever {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Retriever{history: history, clock: clock, scanLimit: defaultScanLimit}
}

// Retrieve returns the stored record whose keywords best cover the query
// keywords. Ties go to the newer record.
func (r *Retriever) Retrieve(ctx context.Context, query string, opts domain.RetrieveOptions) (domain.MemoryResult, error) {
	want := opts.Keywords
	if len(want) == 0 {
		want = keywords.Extract(query, query, nil)
	}
	if len(want) == 0 {
		return domain.MemoryResult{}, nil
	}

	entries, err := r.history.History(ctx, domain.HistoryQuery{
		ExcludeSession: opts.ExcludeSession,
		Limit:          r.scanLimit,
	})
	if err != nil {
		return domain.MemoryResult{}, fmt.Errorf("load partnership history: %w", err)
	}

	var (
		best      domain.HistoryEntry
		bestScore float64
	)
	for _, entry := range entries {
		if score := keywords.Overlap(entry.Keywords, want); score > bestScore {
			best, bestScore = entry, score
		}
	}
	if bestScore == 0 {
		return domain.MemoryResult{}, nil
	}

	return domain.MemoryResult{
		Found:    true,
		TierUsed: tierFor(bestScore),
		Data: domain.MemoryData{
			RecordID:  best.RecordID,
			SessionID: best.SessionID,
			Summary:   best.Task,
		},
		Enrichment: &domain.MemoryEnrichment{RecencyScore: recencyScore(r.clock.Now(), best.Timestamp)},
	}, nil
}

func tierFor(overlap float64) int {
	switch {
	case overlap >= tierOneOverlap:
		return 1
	case overlap >= tierTwoOverlap:
		return 2
	default:
		return 3
	}
}

// recencyScore is 1 for a record made now and halves after a week.
func recencyScore(now, at time.Time) float64 {
	ageDays := max(now.Sub(at).Hours()/24, 0)
	return 1 / (1 + ageDays/recencyHalfWeek)
}
