package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/bnema/athena-partnership/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMemoryPatternScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result domain.MemoryResult
		want   float64
	}{
		{name: "not found", result: domain.MemoryResult{Found: false, TierUsed: 1}, want: 0.5},
		{name: "tier 1", result: domain.MemoryResult{Found: true, TierUsed: 1}, want: 0.90},
		{name: "tier 2", result: domain.MemoryResult{Found: true, TierUsed: 2}, want: 0.75},
		{name: "tier 3", result: domain.MemoryResult{Found: true, TierUsed: 3}, want: 0.65},
		{name: "unknown tier", result: domain.MemoryResult{Found: true, TierUsed: 7}, want: 0.50},
		{
			name:   "averaged with recency",
			result: domain.MemoryResult{Found: true, TierUsed: 2, Enrichment: &domain.MemoryEnrichment{RecencyScore: 0.25}},
			want:   0.50,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, MemoryPatternScore(tt.result), 1e-9)
		})
	}
}

func TestComputeConsensusStaysInBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                      string
		profile, temporal, memory float64
		mesh                      bool
		want                      float64
	}{
		{name: "defaults", profile: 0.8, temporal: 0.7, memory: 0.5, want: 0.66},
		{name: "mesh bonus", profile: 0.8, temporal: 0.7, memory: 0.5, mesh: true, want: 0.71},
		{name: "clamped high", profile: 1, temporal: 1, memory: 1, mesh: true, want: 1},
		{name: "clamped low", profile: -2, temporal: 0, memory: 0, want: 0},
		{name: "all zero", want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ComputeConsensus(tt.profile, tt.temporal, tt.memory, tt.mesh)
			assert.InDelta(t, tt.want, got.Score, 1e-9)
			assert.GreaterOrEqual(t, got.Score, 0.0)
			assert.LessOrEqual(t, got.Score, 1.0)
		})
	}
}

func TestConsensusScorerUsesMemoryAndProfile(t *testing.T) {
	t.Parallel()

	memory := mocks.NewMockMemoryRetriever(t)
	memory.EXPECT().Retrieve(mockAnyContext(), "Refactor PartnershipCoordinator phases", mock.Anything).Return(domain.MemoryResult{
		Found:      true,
		TierUsed:   1,
		Enrichment: &domain.MemoryEnrichment{RecencyScore: 0.5},
	}, nil)

	scorer := NewConsensusScorer(memory, nil, nil)

	got, err := scorer.Score(context.Background(), basePlan(), baseMission(50))
	require.NoError(t, err)
	assert.InDelta(t, 0.7, got.MemoryPatternScore, 1e-9)
	assert.InDelta(t, 0.74, got.Score, 1e-9)
	assert.Zero(t, got.MeshAlignmentBonus)

	mission := baseMission(50)
	mission.Mesh = &domain.MeshIntelligence{}
	got, err = scorer.Score(context.Background(), basePlan(), mission)
	require.NoError(t, err)
	assert.InDelta(t, 0.79, got.Score, 1e-9)
}

func TestConsensusScorerDegradesWhenMemoryFails(t *testing.T) {
	t.Parallel()

	memory := mocks.NewMockMemoryRetriever(t)
	memory.EXPECT().Retrieve(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.MemoryResult{}, errors.New("index offline"))

	scorer := NewConsensusScorer(memory, StaticProfileSignals{UserProfile: 1, Temporal: 1}, nil)

	got, err := scorer.Score(context.Background(), basePlan(), baseMission(50))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got.MemoryPatternScore, 1e-9)
	assert.InDelta(t, 0.8, got.Score, 1e-9)
}

func TestCoordinatorConsensusAppliesMeshArgument(t *testing.T) {
	t.Parallel()

	coordinator := newTestCoordinator(t, newEngineMocks(t).deps())

	without, err := coordinator.Consensus(context.Background(), nil, basePlan(), baseMission(50))
	require.NoError(t, err)
	with, err := coordinator.Consensus(context.Background(), &domain.MeshIntelligence{Goals: []string{"speed"}}, basePlan(), baseMission(50))
	require.NoError(t, err)

	assert.InDelta(t, 0.66, without.Score, 1e-9)
	assert.InDelta(t, 0.05, with.Score-without.Score, 1e-9)
}
