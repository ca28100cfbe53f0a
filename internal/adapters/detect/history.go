package detect

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/bnema/athena-partnership/internal/keywords"
	"github.com/bnema/athena-partnership/internal/ports"
)

const (
	defaultPrecedentSimilarity = 0.5
	defaultPrecedentScan       = 200
	maxPrecedents              = 3
)

// IterationCounter counts the partnerships already stored for the proposal's
// session.
type IterationCounter struct {
	history ports.HistoryReader
}

var _ ports.IterationCounter = (*IterationCounter)(nil)

func NewIterationCounter(history ports.HistoryReader) *IterationCounter {
	return &IterationCounter{history: history}
}

func (c *IterationCounter) CountIterations(ctx context.Context, proposal domain.Proposal) (domain.IterationCount, error) {
	if proposal.SessionID == "" {
		return domain.IterationCount{}, nil
	}

	count, err := c.history.CountBySession(ctx, proposal.SessionID)
	if err != nil {
		return domain.IterationCount{}, fmt.Errorf("count session partnerships: %w", err)
	}

	return domain.IterationCount{IterationCount: count}, nil
}

// PrecedentMatcher finds records from other sessions whose keywords cover
// most of the proposal's keywords.
type PrecedentMatcher struct {
	history       ports.HistoryReader
	minSimilarity float64
	scanLimit     int
}

var _ ports.PrecedentMatcher = (*PrecedentMatcher)(nil)

func NewPrecedentMatcher(history ports.HistoryReader) *PrecedentMatcher {
	return &PrecedentMatcher{
		history:       history,
		minSimilarity: defaultPrecedentSimilarity,
		scanLimit:     defaultPrecedentScan,
	}
}

func (m *PrecedentMatcher) MatchPrecedents(ctx context.Context, proposal domain.Proposal) (domain.PrecedentMatch, error) {
	if len(proposal.Keywords) == 0 {
		return domain.PrecedentMatch{}, nil
	}

	entries, err := m.history.History(ctx, domain.HistoryQuery{
		ExcludeSession: proposal.SessionID,
		Limit:          m.scanLimit,
	})
	if err != nil {
		return domain.PrecedentMatch{}, fmt.Errorf("load partnership history: %w", err)
	}

	var precedents []domain.Precedent
	for _, entry := range entries {
		similarity := keywords.Overlap(entry.Keywords, proposal.Keywords)
		if similarity < m.minSimilarity {
			continue
		}
		precedents = append(precedents, domain.Precedent{
			RecordID:   entry.RecordID,
			SessionID:  entry.SessionID,
			Summary:    entry.Task,
			Similarity: similarity,
		})
	}

	// Entries arrive newest first; the stable sort keeps that as the tiebreak.
	slices.SortStableFunc(precedents, func(a, b domain.Precedent) int {
		return cmp.Compare(b.Similarity, a.Similarity)
	})
	if len(precedents) > maxPrecedents {
		precedents = precedents[:maxPrecedents]
	}

	return domain.PrecedentMatch{Found: len(precedents) > 0, Precedents: precedents}, nil
}
