package ports

import (
	"context"

	"github.com/bnema/athena-partnership/internal/domain"
)

type ConsensusScorer interface {
	Score(ctx context.Context, plan domain.Plan, mission domain.MissionContext) (domain.Consensus, error)
}

// ProfileSignals supplies the user-profile and temporal components of consensus,
// each in [0,1].
type ProfileSignals interface {
	UserProfileAlignment(ctx context.Context, mission domain.MissionContext) float64
	TemporalBehavioralFit(ctx context.Context, mission domain.MissionContext) float64
}
