package ports

import (
	"context"

	"github.com/bnema/athena-partnership/internal/domain"
)

type SignatureDetector interface {
	DetectSignature(ctx context.Context, proposal domain.Proposal) (domain.SignatureMatch, error)
}

type IterationCounter interface {
	CountIterations(ctx context.Context, proposal domain.Proposal) (domain.IterationCount, error)
}

type PrecedentMatcher interface {
	MatchPrecedents(ctx context.Context, proposal domain.Proposal) (domain.PrecedentMatch, error)
}

type InterventionDetector interface {
	DetectInterventions(ctx context.Context, proposal domain.Proposal) (domain.InterventionCount, error)
}

// HaltCheckpoint owns the aggregation policy over whatever signals were produced.
type HaltCheckpoint interface {
	Evaluate(ctx context.Context, proposal domain.Proposal, signals domain.DetectionSignals) (domain.HaltDecision, error)
}
