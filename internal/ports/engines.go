package ports

import (
	"context"

	"github.com/bnema/athena-partnership/internal/domain"
)

type DialogueEngine interface {
	Engage(ctx context.Context, plan domain.Plan, mission domain.MissionContext) (domain.DialogueAnalysis, error)
}

type StrategicEngine interface {
	Analyze(ctx context.Context, plan domain.Plan, mission domain.MissionContext) (domain.StrategicAnalysis, error)
}

type CreativeEngine interface {
	Synthesize(ctx context.Context, plan domain.Plan, strategic domain.StrategicAnalysis, mission domain.MissionContext) (domain.CreativeSynthesis, error)
}
