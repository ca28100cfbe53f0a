package application

import (
	"context"

	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/bnema/athena-partnership/internal/keywords"
	"github.com/bnema/athena-partnership/internal/ports"
	"go.uber.org/zap"
)

const (
	profileWeight  = 0.4
	temporalWeight = 0.2
	memoryWeight   = 0.4
	meshBonus      = 0.05

	defaultMemoryScore = 0.5

	// Stand-ins until real profiling signals are wired.
	DefaultUserProfileAlignment  = 0.8
	DefaultTemporalBehavioralFit = 0.7
)

var tierScores = map[int]float64{
	1: 0.90,
	2: 0.75,
	3: 0.65,
}

// StaticProfileSignals returns fixed profile scores. Zero fields fall back to
// the package defaults.
type StaticProfileSignals struct {
	UserProfile float64
	Temporal    float64
}

func (s StaticProfileSignals) UserProfileAlignment(context.Context, domain.MissionContext) float64 {
	if s.UserProfile == 0 {
		return DefaultUserProfileAlignment
	}
	return s.UserProfile
}

func (s StaticProfileSignals) TemporalBehavioralFit(context.Context, domain.MissionContext) float64 {
	if s.Temporal == 0 {
		return DefaultTemporalBehavioralFit
	}
	return s.Temporal
}

// ConsensusScorer is the default ports.ConsensusScorer. Memory is optional;
// without it the memory component stays at its neutral default.
type ConsensusScorer struct {
	memory  ports.MemoryRetriever
	profile ports.ProfileSignals
	log     *zap.Logger
}

func NewConsensusScorer(memory ports.MemoryRetriever, profile ports.ProfileSignals, logger *zap.Logger) *ConsensusScorer {
	if profile == nil {
		profile = StaticProfileSignals{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ConsensusScorer{memory: memory, profile: profile, log: logger.Named("consensus")}
}

func (s *ConsensusScorer) Score(ctx context.Context, plan domain.Plan, mission domain.MissionContext) (domain.Consensus, error) {
	memory := defaultMemoryScore
	if s.memory != nil {
		result, err := guard(func() (domain.MemoryResult, error) {
			return s.memory.Retrieve(ctx, plan.Task, domain.RetrieveOptions{
				Keywords:       keywords.Extract(plan.Task, mission.UserMessage, mission.Mesh),
				ExcludeSession: mission.SessionID,
				Limit:          precedentLookups,
			})
		})
		if err != nil {
			s.log.Warn("memory retrieval failed, using neutral memory score", zap.String("phase", "consensus"), zap.Error(err))
		} else {
			memory = MemoryPatternScore(result)
		}
	}

	return ComputeConsensus(
		s.profile.UserProfileAlignment(ctx, mission),
		s.profile.TemporalBehavioralFit(ctx, mission),
		memory,
		mission.Mesh != nil,
	), nil
}

// ComputeConsensus combines the component scores into a clamped total.
func ComputeConsensus(profile, temporal, memory float64, meshPresent bool) domain.Consensus {
	c := domain.Consensus{
		UserProfileAlignment:  profile,
		TemporalBehavioralFit: temporal,
		MemoryPatternScore:    memory,
	}
	if meshPresent {
		c.MeshAlignmentBonus = meshBonus
	}
	c.Score = clamp(profileWeight*profile+temporalWeight*temporal+memoryWeight*memory+c.MeshAlignmentBonus, 0, 1)

	return c
}

// MemoryPatternScore maps a retrieval result to a score by relevance tier,
// averaged with the recency score when one is supplied.
func MemoryPatternScore(result domain.MemoryResult) float64 {
	if !result.Found {
		return defaultMemoryScore
	}

	score, ok := tierScores[result.TierUsed]
	if !ok {
		score = defaultMemoryScore
	}
	if result.Enrichment != nil {
		score = (score + result.Enrichment.RecencyScore) / 2
	}

	return score
}

// Consensus scores a plan without running any review phase.
func (c *Coordinator) Consensus(ctx context.Context, mesh *domain.MeshIntelligence, plan domain.Plan, mission domain.MissionContext) (domain.Consensus, error) {
	if mesh == nil {
		mesh = mission.Mesh
	}
	mission.Mesh = mesh

	return guard(func() (domain.Consensus, error) {
		return c.scorer.Score(ctx, plan, mission)
	})
}
