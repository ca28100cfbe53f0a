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

func runInfinityWith(t *testing.T, scorer *scriptedScorer, threshold float64, rounds int, extra func(*Deps)) domain.Outcome {
	t.Helper()

	deps := newEngineMocks(t).deps()
	deps.Config = enabledInfinity(threshold, rounds)
	deps.Scorer = scorer
	if extra != nil {
		extra(&deps)
	}

	return newTestCoordinator(t, deps).Coordinate(context.Background(), nil, basePlan(), baseMission(90))
}

func TestInfinityStopsWhenConsensusAchieved(t *testing.T) {
	t.Parallel()

	scorer := &scriptedScorer{scores: []float64{0.5, 0.75}}
	outcome := runInfinityWith(t, scorer, 0.70, 5, nil)
	require.True(t, outcome.Success, outcome.Error)

	record := outcome.Record
	assert.Equal(t, domain.TerminationConsensusAchieved, record.TerminationReason)
	assert.Len(t, record.Rounds, 2)
	assert.Equal(t, 2, scorer.calls)
	assert.Equal(t, []float64{0.5, 0.75}, record.ConsensusTrajectory)
	assert.InDelta(t, 0.75, record.FinalConfidence, 1e-9)

	metrics := record.Metrics.Infinity
	require.NotNil(t, metrics)
	assert.Equal(t, 2, metrics.RoundsCompleted)
	assert.InDelta(t, 0.5, metrics.InitialConsensus, 1e-9)
	assert.InDelta(t, 0.75, metrics.FinalConsensus, 1e-9)
	assert.InDelta(t, 0.25, metrics.ConsensusImprovement, 1e-9)
	assert.InDelta(t, 0.375, metrics.AverageDelta, 1e-9)
	assert.Nil(t, record.Metrics.Standard)
}

func TestInfinityStopsOnDiminishingReturns(t *testing.T) {
	t.Parallel()

	scorer := &scriptedScorer{scores: []float64{0.20, 0.22, 0.9}}
	outcome := runInfinityWith(t, scorer, 0.85, 5, nil)
	require.True(t, outcome.Success, outcome.Error)

	record := outcome.Record
	assert.Equal(t, domain.TerminationDiminishingReturns, record.TerminationReason)
	require.Len(t, record.Rounds, 2)
	assert.InDelta(t, 0.20, record.Rounds[0].Delta, 1e-9)
	assert.InDelta(t, 0.02, record.Rounds[1].Delta, 1e-9)
	assert.InDelta(t, 0.22, record.FinalConfidence, 1e-9)
}

func TestInfinityFirstRoundNeverCountsAsDiminishing(t *testing.T) {
	t.Parallel()

	scorer := &scriptedScorer{scores: []float64{0.01, 0.2}}
	outcome := runInfinityWith(t, scorer, 0.85, 2, nil)
	require.True(t, outcome.Success, outcome.Error)

	assert.Equal(t, domain.TerminationMaxRounds, outcome.Record.TerminationReason)
	assert.Len(t, outcome.Record.Rounds, 2)
}

func TestInfinityStopsAtMaxRounds(t *testing.T) {
	t.Parallel()

	scorer := &scriptedScorer{scores: []float64{0.1, 0.2, 0.3, 0.4}}
	outcome := runInfinityWith(t, scorer, 0.85, 3, nil)
	require.True(t, outcome.Success, outcome.Error)

	record := outcome.Record
	assert.Equal(t, domain.TerminationMaxRounds, record.TerminationReason)
	assert.Len(t, record.Rounds, 3)
	assert.Equal(t, 3, scorer.calls)
	assert.Equal(t, []int{1, 2, 3}, []int{record.Rounds[0].Round, record.Rounds[1].Round, record.Rounds[2].Round})
}

func TestInfinityRoundsBumpConfidenceOnCopies(t *testing.T) {
	t.Parallel()

	scorer := &scriptedScorer{scores: []float64{0.1, 0.2, 0.3}}
	plan := basePlan()
	outcome := runInfinityWith(t, scorer, 0.85, 3, nil)
	require.True(t, outcome.Success, outcome.Error)

	record := outcome.Record
	assert.InDelta(t, 0.85, plan.Confidence, 1e-9)
	assert.InDelta(t, 0.85, record.InitialConfidence, 1e-9)
	assert.InDelta(t, 1.0, record.RefinedPlan.Confidence, 1e-9)
	require.Len(t, record.ConfidenceHistory, 4)
	assert.InDelta(t, 0.85, record.ConfidenceHistory[0], 1e-9)
	assert.InDelta(t, 0.90, record.ConfidenceHistory[1], 1e-9)
	assert.InDelta(t, 0.95, record.ConfidenceHistory[2], 1e-9)
	assert.InDelta(t, 1.0, record.ConfidenceHistory[3], 1e-9)
	assert.Len(t, record.RefinedPlan.Metadata.Changes, 6)
}

func TestInfinityChallengesUseMemoryAfterFirstRound(t *testing.T) {
	t.Parallel()

	memory := mocks.NewMockMemoryRetriever(t)
	memory.EXPECT().Retrieve(mockAnyContext(), "Refactor PartnershipCoordinator phases", mock.MatchedBy(func(opts domain.RetrieveOptions) bool {
		return opts.ExcludeSession == "session-1" && opts.Limit == 1
	})).Return(domain.MemoryResult{
		Found:    true,
		TierUsed: 1,
		Data:     domain.MemoryData{SessionID: "older", Summary: "phase split in the indexer"},
	}, nil).Once()
	memory.EXPECT().Retrieve(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.MemoryResult{}, errors.New("index offline")).Once()

	scorer := &scriptedScorer{scores: []float64{0.1, 0.2, 0.3}}
	outcome := runInfinityWith(t, scorer, 0.85, 3, func(d *Deps) { d.Memory = memory })
	require.True(t, outcome.Success, outcome.Error)

	rounds := outcome.Record.Rounds
	require.Len(t, rounds, 3)

	assert.Equal(t, domain.ChallengeReframe, rounds[0].Challenge.Type)
	assert.Equal(t, domain.AcknowledgeReframe, rounds[0].Response.Acknowledges)

	assert.Equal(t, domain.ChallengePatternMatch, rounds[1].Challenge.Type)
	require.NotNil(t, rounds[1].Challenge.Precedent)
	assert.Equal(t, "older", rounds[1].Challenge.Precedent.SessionID)
	assert.Contains(t, rounds[1].Challenge.Question, "phase split in the indexer")
	assert.Equal(t, domain.AcknowledgeBuildOnMemory, rounds[1].Response.Acknowledges)

	assert.Equal(t, domain.ChallengeOpenQuestion, rounds[2].Challenge.Type)
	assert.Equal(t, fallbackQuestion, rounds[2].Challenge.Question)
}

func TestInfinityCancellationReturnsPartialRecord(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scorer := &scriptedScorer{scores: []float64{0.1, 0.2, 0.3}, onCall: func(call int) {
		if call == 1 {
			cancel()
		}
	}}

	var persisted bool
	sink := mocks.NewMockPartnershipSink(t)
	sink.EXPECT().LogPartnership(mockAnyContext(), mock.Anything).RunAndReturn(
		func(ctx context.Context, record domain.PartnershipRecord) error {
			persisted = ctx.Err() == nil
			return nil
		}).Once()

	deps := newEngineMocks(t).deps()
	deps.Config = enabledInfinity(0.85, 5)
	deps.Scorer = scorer
	deps.Sink = sink

	outcome := newTestCoordinator(t, deps).Coordinate(ctx, nil, basePlan(), baseMission(90))
	require.True(t, outcome.Success, outcome.Error)

	assert.Equal(t, domain.TerminationCancelled, outcome.Record.TerminationReason)
	assert.Len(t, outcome.Record.Rounds, 1)
	assert.InDelta(t, 0.1, outcome.Record.FinalConfidence, 1e-9)
	assert.True(t, persisted)
}

func TestInfinityCancelledBeforeFirstRoundKeepsInitialConfidence(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	deps := newEngineMocks(t).deps()
	deps.Config = enabledInfinity(0.85, 5)
	deps.Scorer = &scriptedScorer{scores: []float64{0.5}}

	outcome := newTestCoordinator(t, deps).Coordinate(ctx, nil, basePlan(), baseMission(90))
	require.True(t, outcome.Success, outcome.Error)

	record := outcome.Record
	assert.Equal(t, domain.TerminationCancelled, record.TerminationReason)
	assert.Empty(t, record.Rounds)
	assert.InDelta(t, 0.85, record.FinalConfidence, 1e-9)
	assert.Zero(t, record.Metrics.Infinity.RoundsCompleted)
}

func TestInfinityScorerFailureFailsCoordination(t *testing.T) {
	t.Parallel()

	scorer := mocks.NewMockConsensusScorer(t)
	scorer.EXPECT().Score(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.Consensus{}, errors.New("profile store down"))

	deps := newEngineMocks(t).deps()
	deps.Config = enabledInfinity(0.85, 5)
	deps.Scorer = scorer

	outcome := newTestCoordinator(t, deps).Coordinate(context.Background(), nil, basePlan(), baseMission(90))
	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.Error, "score consensus in round 1: profile store down")
}

func TestChallengeAddsPivotAfterTwoStalledRounds(t *testing.T) {
	t.Parallel()

	coordinator := newTestCoordinator(t, newEngineMocks(t).deps())
	state := &infinityState{
		plan: basePlan(),
		rounds: []domain.DialogueRound{
			{Round: 1, Delta: 0.02},
			{Round: 2, Delta: -0.01},
		},
	}

	ch := coordinator.challenge(context.Background(), 3, state, baseMission(90), nil)
	assert.Equal(t, domain.ChallengeOpenQuestion, ch.Type)
	assert.Equal(t, pivotSuggestion, ch.PivotSuggestion)

	response, next := respond(ch, state.plan)
	assert.Equal(t, domain.AcknowledgePivot, response.Acknowledges)
	assert.Equal(t, "pivot: "+pivotSuggestion, response.ChangesApplied[0])
	assert.InDelta(t, 0.90, next.Confidence, 1e-9)
	assert.Empty(t, state.plan.Metadata.Changes)

	state.rounds[1].Delta = 0.04
	ch = coordinator.challenge(context.Background(), 3, state, baseMission(90), nil)
	assert.Empty(t, ch.PivotSuggestion)
}
