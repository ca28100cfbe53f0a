package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/bnema/athena-partnership/internal/ports/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinatorRequiresEngines(t *testing.T) {
	t.Parallel()

	_, err := NewCoordinator(Deps{})
	require.ErrorIs(t, err, domain.ErrMissingCollaborator)
	assert.ErrorContains(t, err, "dialogue engine")
	assert.ErrorContains(t, err, "strategic engine")
	assert.ErrorContains(t, err, "creative engine")

	_, err = NewCoordinator(Deps{Dialogue: mocks.NewMockDialogueEngine(t), Strategic: mocks.NewMockStrategicEngine(t)})
	require.ErrorIs(t, err, domain.ErrMissingCollaborator)
	assert.NotContains(t, err.Error(), "dialogue engine")
}

func TestCoordinateDoesNotMutateCallerPlan(t *testing.T) {
	t.Parallel()

	engines := newEngineMocks(t)
	engines.dialogue.EXPECT().Engage(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.DialogueAnalysis{
		QuestionsRaised:      []string{"q1", "q2", "q3"},
		RefinementsSuggested: []domain.Refinement{{Area: "testing", Suggestion: "add phase tests"}},
	}, nil)
	engines.strategic.EXPECT().Analyze(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.StrategicAnalysis{
		Recommendation: domain.StrategicRecommendation{Verdict: domain.VerdictProceedWithMitigation, Confidence: 0.75},
		AlternativeApproaches: []domain.AlternativeApproach{
			{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"},
		},
	}, nil)
	engines.creative.EXPECT().Synthesize(mockAnyContext(), mock.Anything, mock.Anything, mock.Anything).Return(domain.CreativeSynthesis{
		MetaphoricalSolutions:  []domain.MetaphoricalSolution{{Metaphor: "relay race", ApplicabilityScore: 0.9}},
		CrossDomainInnovations: []domain.CrossDomainInnovation{{Domain: "biology", Innovation: "homeostasis"}},
	}, nil)

	coordinator := newTestCoordinator(t, engines.deps())
	plan := basePlan()
	snapshot := plan.Clone()

	outcome := coordinator.Coordinate(context.Background(), nil, plan, baseMission(40))
	require.True(t, outcome.Success, outcome.Error)
	require.NotNil(t, outcome.Record)

	if diff := cmp.Diff(snapshot, plan); diff != "" {
		t.Fatalf("caller plan mutated (-want +got):\n%s", diff)
	}

	refined := outcome.Record.RefinedPlan
	assert.Equal(t, []string{"rewrite from scratch", "a", "b", "c", "d"}, refined.Metadata.Alternatives)
	assert.Equal(t, []string{"testing: add phase tests"}, refined.Metadata.Refinements)
	assert.Equal(t, []string{"biology: homeostasis"}, refined.Metadata.Innovations)

	refined.Metadata.Extra["owner"] = "athena"
	assert.Equal(t, "epsilon", plan.Metadata.Extra["owner"])
}

func TestCoordinateSelectsModeByComplexityGate(t *testing.T) {
	t.Parallel()

	t.Run("71 runs infinity mode", func(t *testing.T) {
		t.Parallel()

		engines := newEngineMocks(t)
		deps := engines.deps()
		deps.Config = enabledInfinity(0.7, 3)
		deps.Scorer = &scriptedScorer{scores: []float64{0.5, 0.75}}

		outcome := newTestCoordinator(t, deps).Coordinate(context.Background(), nil, basePlan(), baseMission(71))
		require.True(t, outcome.Success, outcome.Error)
		assert.Equal(t, domain.ModeInfinity, outcome.Record.Mode)
		engines.dialogue.AssertNotCalled(t, "Engage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("70 stays in standard mode", func(t *testing.T) {
		t.Parallel()

		engines := newEngineMocks(t)
		engines.dialogue.EXPECT().Engage(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.DialogueAnalysis{}, nil).Once()
		engines.strategic.EXPECT().Analyze(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.StrategicAnalysis{}, nil).Once()
		deps := engines.deps()
		deps.Config = enabledInfinity(0.7, 3)
		deps.Scorer = &scriptedScorer{scores: []float64{0.9}}

		outcome := newTestCoordinator(t, deps).Coordinate(context.Background(), nil, basePlan(), baseMission(70))
		require.True(t, outcome.Success, outcome.Error)
		assert.Equal(t, domain.ModeStandard, outcome.Record.Mode)
		assert.Empty(t, outcome.Record.Rounds)
	})

	t.Run("disabled config never runs infinity mode", func(t *testing.T) {
		t.Parallel()

		engines := newEngineMocks(t)
		engines.dialogue.EXPECT().Engage(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.DialogueAnalysis{}, nil).Once()
		engines.strategic.EXPECT().Analyze(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.StrategicAnalysis{}, nil).Once()
		engines.creative.EXPECT().Synthesize(mockAnyContext(), mock.Anything, mock.Anything, mock.Anything).Return(domain.CreativeSynthesis{}, nil).Once()

		outcome := newTestCoordinator(t, engines.deps()).Coordinate(context.Background(), nil, basePlan(), baseMission(95))
		require.True(t, outcome.Success, outcome.Error)
		assert.Equal(t, domain.ModeStandard, outcome.Record.Mode)
	})
}

func TestCoordinateHaltShortCircuitsAnalysis(t *testing.T) {
	t.Parallel()

	engines := newEngineMocks(t)
	sink := mocks.NewMockPartnershipSink(t)
	checkpoint := mocks.NewMockHaltCheckpoint(t)
	precedents := []domain.Precedent{{SessionID: "older", Summary: "same refactor failed twice", Similarity: 0.8}}
	checkpoint.EXPECT().Evaluate(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.HaltDecision{
		ShouldHalt:      true,
		Severity:        domain.SeverityCritical,
		Reasons:         []string{"known failure signature"},
		Recommendations: []string{"stop and ask the user"},
		Precedents:      precedents,
	}, nil)

	deps := engines.deps()
	deps.Sink = sink
	deps.Checkpoint = checkpoint

	outcome := newTestCoordinator(t, deps).Coordinate(context.Background(), nil, basePlan(), baseMission(90))

	assert.True(t, outcome.Success)
	assert.True(t, outcome.Halted)
	assert.Nil(t, outcome.Record)
	require.NotNil(t, outcome.Halt)
	assert.Equal(t, domain.SeverityCritical, outcome.Halt.Severity)
	assert.Equal(t, []string{"stop and ask the user"}, outcome.Halt.Recommendations)
	assert.Equal(t, precedents, outcome.Halt.Precedents)
	assert.Equal(t, testNow, outcome.Halt.Timestamp)

	engines.dialogue.AssertNotCalled(t, "Engage", mock.Anything, mock.Anything, mock.Anything)
	engines.strategic.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything, mock.Anything)
	engines.creative.AssertNotCalled(t, "Synthesize", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	sink.AssertNotCalled(t, "LogPartnership", mock.Anything, mock.Anything)
}

func TestCoordinateDetectorFailuresDoNotBlockCheckpoint(t *testing.T) {
	t.Parallel()

	engines := newEngineMocks(t)
	engines.dialogue.EXPECT().Engage(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.DialogueAnalysis{}, nil)

	signatures := mocks.NewMockSignatureDetector(t)
	signatures.EXPECT().DetectSignature(mockAnyContext(), mock.Anything).Return(domain.SignatureMatch{}, errors.New("catalog unreadable"))
	iterations := mocks.NewMockIterationCounter(t)
	iterations.EXPECT().CountIterations(mockAnyContext(), mock.Anything).RunAndReturn(
		func(context.Context, domain.Proposal) (domain.IterationCount, error) {
			panic("store closed")
		})
	precedentMatcher := mocks.NewMockPrecedentMatcher(t)
	precedentMatcher.EXPECT().MatchPrecedents(mockAnyContext(), mock.Anything).Return(domain.PrecedentMatch{}, nil)
	interventions := mocks.NewMockInterventionDetector(t)
	interventions.EXPECT().DetectInterventions(mockAnyContext(), mock.Anything).Return(domain.InterventionCount{InterventionCount: 1}, nil)

	var seen domain.DetectionSignals
	checkpoint := mocks.NewMockHaltCheckpoint(t)
	checkpoint.EXPECT().Evaluate(mockAnyContext(), mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, _ domain.Proposal, signals domain.DetectionSignals) (domain.HaltDecision, error) {
			seen = signals
			return domain.HaltDecision{Severity: domain.SeverityLow}, nil
		})

	deps := engines.deps()
	deps.Signatures = signatures
	deps.Iterations = iterations
	deps.Precedents = precedentMatcher
	deps.Interventions = interventions
	deps.Checkpoint = checkpoint

	outcome := newTestCoordinator(t, deps).Coordinate(context.Background(), nil, basePlan(), baseMission(10))
	require.True(t, outcome.Success, outcome.Error)
	assert.False(t, outcome.Halted)

	assert.Nil(t, seen.Signature)
	assert.Nil(t, seen.Iterations)
	require.NotNil(t, seen.Precedents)
	require.NotNil(t, seen.Interventions)
	assert.Equal(t, 1, seen.Interventions.InterventionCount)
}

func TestDetectReportsFailedDetectors(t *testing.T) {
	t.Parallel()

	engines := newEngineMocks(t)
	signatures := mocks.NewMockSignatureDetector(t)
	signatures.EXPECT().DetectSignature(mockAnyContext(), mock.Anything).Return(domain.SignatureMatch{}, errors.New("boom"))
	checkpoint := mocks.NewMockHaltCheckpoint(t)
	checkpoint.EXPECT().Evaluate(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.HaltDecision{}, errors.New("policy missing"))

	deps := engines.deps()
	deps.Signatures = signatures
	deps.Checkpoint = checkpoint

	mesh := &domain.MeshIntelligence{Goals: []string{"Reliability"}}
	result, err := newTestCoordinator(t, deps).Detect(context.Background(), mesh, basePlan(), baseMission(10))
	require.NoError(t, err)

	assert.Equal(t, []string{detectorSignature, detectorCheckpoint}, result.FailedDetectors)
	assert.False(t, result.Decision.ShouldHalt)
	assert.Equal(t, domain.SeverityLow, result.Decision.Severity)
	assert.Contains(t, result.Proposal.Keywords, "partnershipcoordinator")
	assert.Contains(t, result.Proposal.Keywords, "reliability")
}

func TestDetectRejectsInvalidPlan(t *testing.T) {
	t.Parallel()

	_, err := newTestCoordinator(t, newEngineMocks(t).deps()).Detect(context.Background(), nil, domain.Plan{}, baseMission(10))
	require.ErrorIs(t, err, domain.ErrInvalidPlan)
}

func TestCoordinateEscalationGating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		questions     int
		complexity    int
		wantStrategic bool
	}{
		{name: "few questions low complexity", questions: 2, complexity: 60, wantStrategic: false},
		{name: "many questions low complexity", questions: 3, complexity: 60, wantStrategic: true},
		{name: "few questions high complexity", questions: 2, complexity: 61, wantStrategic: true},
		{name: "many questions high complexity", questions: 3, complexity: 61, wantStrategic: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			engines := newEngineMocks(t)
			questions := make([]string, tt.questions)
			engines.dialogue.EXPECT().Engage(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.DialogueAnalysis{QuestionsRaised: questions}, nil)
			if tt.wantStrategic {
				engines.strategic.EXPECT().Analyze(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.StrategicAnalysis{}, nil).Once()
			}

			outcome := newTestCoordinator(t, engines.deps()).Coordinate(context.Background(), nil, basePlan(), baseMission(tt.complexity))
			require.True(t, outcome.Success, outcome.Error)
			assert.Equal(t, tt.wantStrategic, outcome.Record.Metrics.Standard.StrategicAnalysisRan)
			if !tt.wantStrategic {
				engines.strategic.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything, mock.Anything)
			}
			engines.creative.AssertNotCalled(t, "Synthesize", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCoordinateCreativeGate(t *testing.T) {
	t.Parallel()

	engines := newEngineMocks(t)
	engines.dialogue.EXPECT().Engage(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.DialogueAnalysis{}, nil)
	engines.strategic.EXPECT().Analyze(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.StrategicAnalysis{
		AlternativeApproaches: []domain.AlternativeApproach{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}},
	}, nil)
	engines.creative.EXPECT().Synthesize(mockAnyContext(), mock.Anything, mock.Anything, mock.Anything).
		Return(domain.CreativeSynthesis{}, nil).Once()

	outcome := newTestCoordinator(t, engines.deps()).Coordinate(context.Background(), nil, basePlan(), baseMission(65))
	require.True(t, outcome.Success, outcome.Error)
	assert.True(t, outcome.Record.Metrics.Standard.CreativeSynthesisRan)
}

func TestCoordinateStandardConfidenceScenario(t *testing.T) {
	t.Parallel()

	engines := newEngineMocks(t)
	engines.dialogue.EXPECT().Engage(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.DialogueAnalysis{}, nil)
	engines.strategic.EXPECT().Analyze(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.StrategicAnalysis{
		Recommendation: domain.StrategicRecommendation{Verdict: domain.VerdictProceedWithValidation, Confidence: 0.70},
	}, nil)

	outcome := newTestCoordinator(t, engines.deps()).Coordinate(context.Background(), nil, basePlan(), baseMission(65))
	require.True(t, outcome.Success, outcome.Error)

	record := outcome.Record
	assert.InDelta(t, 0.85, record.InitialConfidence, 1e-9)
	assert.InDelta(t, 0.775, record.FinalConfidence, 1e-9)
	assert.InDelta(t, 0.70, record.RefinedPlan.Confidence, 1e-9)
	assert.Contains(t, record.RefinedPlan.Metadata.Conditions, "validate core assumptions before rollout")

	metrics := record.Metrics.Standard
	require.NotNil(t, metrics)
	assert.InDelta(t, -0.075, metrics.ConfidenceDelta, 1e-9)
	assert.InDelta(t, 0.5, metrics.EffectivenessScore, 1e-9)
	assert.Nil(t, record.Metrics.Infinity)
}

func TestCoordinateStandardWithCreativeBoost(t *testing.T) {
	t.Parallel()

	engines := newEngineMocks(t)
	engines.dialogue.EXPECT().Engage(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.DialogueAnalysis{}, nil)
	engines.strategic.EXPECT().Analyze(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.StrategicAnalysis{
		Recommendation: domain.StrategicRecommendation{Verdict: domain.VerdictProceedWithValidation, Confidence: 0.70},
	}, nil)
	engines.creative.EXPECT().Synthesize(mockAnyContext(), mock.Anything, mock.Anything, mock.Anything).Return(domain.CreativeSynthesis{
		MetaphoricalSolutions:     []domain.MetaphoricalSolution{{Metaphor: "keel", ApplicabilityScore: 0.8}},
		SynthesizedRecommendation: domain.SynthesizedRecommendation{CreativityScore: 0.6},
	}, nil)

	outcome := newTestCoordinator(t, engines.deps()).Coordinate(context.Background(), nil, basePlan(), baseMission(85))
	require.True(t, outcome.Success, outcome.Error)

	assert.InDelta(t, 0.835, outcome.Record.FinalConfidence, 1e-9)
	assert.InDelta(t, 0.80, outcome.Record.RefinedPlan.Confidence, 1e-9)
	assert.InDelta(t, 0.7, outcome.Record.Metrics.Standard.EffectivenessScore, 1e-9)
}

func TestCoordinateStandardsEnforcement(t *testing.T) {
	t.Parallel()

	engines := newEngineMocks(t)
	engines.dialogue.EXPECT().Engage(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.DialogueAnalysis{}, nil)
	engines.strategic.EXPECT().Analyze(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.StrategicAnalysis{
		StandardsViolations: []domain.Violation{{Rule: "existing"}},
	}, nil)

	enforcer := mocks.NewMockStandardsEnforcer(t)
	enforcer.EXPECT().IsOperational().Return(true)
	enforcer.EXPECT().EnforceCodeStandards(mockAnyContext(), mock.MatchedBy(func(req domain.StandardsRequest) bool {
		return req.Task == "Refactor PartnershipCoordinator phases"
	})).Return(domain.StandardsReport{
		Status:     "violations",
		Violations: []domain.Violation{{Rule: "no-global-state", Message: "global logger"}},
	}, nil).Once()
	enforcer.EXPECT().EnforceCodeStandards(mockAnyContext(), mock.MatchedBy(func(req domain.StandardsRequest) bool {
		return req.Task == approachReviewPrefix+"Refactor PartnershipCoordinator phases"
	})).Return(domain.StandardsReport{}, errors.New("pattern index offline")).Once()

	deps := engines.deps()
	deps.Enforcer = enforcer

	mission := baseMission(65)
	mission.Colonels = []string{"architect"}
	outcome := newTestCoordinator(t, deps).Coordinate(context.Background(), nil, basePlan(), mission)
	require.True(t, outcome.Success, outcome.Error)

	record := outcome.Record
	require.NotNil(t, record.StandardsReview)
	assert.Nil(t, record.ApproachReview)
	assert.Equal(t, []domain.Violation{
		{Rule: "existing"},
		{Rule: "no-global-state", Message: "global logger"},
	}, record.Strategic.StandardsViolations)
	assert.Equal(t, 1, record.Metrics.Standard.StandardsViolations)
	assert.Zero(t, record.Metrics.Standard.ApproachViolations)
}

func TestCoordinateSkipsEnforcerThatIsNotOperational(t *testing.T) {
	t.Parallel()

	engines := newEngineMocks(t)
	engines.dialogue.EXPECT().Engage(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.DialogueAnalysis{}, nil)
	enforcer := mocks.NewMockStandardsEnforcer(t)
	enforcer.EXPECT().IsOperational().Return(false)

	deps := engines.deps()
	deps.Enforcer = enforcer

	outcome := newTestCoordinator(t, deps).Coordinate(context.Background(), nil, basePlan(), baseMission(20))
	require.True(t, outcome.Success, outcome.Error)
	assert.Nil(t, outcome.Record.StandardsReview)
	enforcer.AssertNotCalled(t, "EnforceCodeStandards", mock.Anything, mock.Anything)
}

func TestCoordinatePersistenceFailuresAreIsolated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sink func(t *testing.T) *mocks.MockPartnershipSink
	}{
		{
			name: "sink error",
			sink: func(t *testing.T) *mocks.MockPartnershipSink {
				sink := mocks.NewMockPartnershipSink(t)
				sink.EXPECT().LogPartnership(mockAnyContext(), mock.Anything).Return(errors.New("database is locked"))
				return sink
			},
		},
		{
			name: "sink panic",
			sink: func(t *testing.T) *mocks.MockPartnershipSink {
				sink := mocks.NewMockPartnershipSink(t)
				sink.EXPECT().LogPartnership(mockAnyContext(), mock.Anything).RunAndReturn(
					func(context.Context, domain.PartnershipRecord) error { panic("driver crashed") })
				return sink
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			engines := newEngineMocks(t)
			engines.dialogue.EXPECT().Engage(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.DialogueAnalysis{}, nil)
			deps := engines.deps()
			deps.Sink = tt.sink(t)

			outcome := newTestCoordinator(t, deps).Coordinate(context.Background(), nil, basePlan(), baseMission(10))
			assert.True(t, outcome.Success)
			assert.Empty(t, outcome.Error)
			assert.NotNil(t, outcome.Record)
		})
	}
}

func TestCoordinatePersistsCompletedRecord(t *testing.T) {
	t.Parallel()

	engines := newEngineMocks(t)
	engines.dialogue.EXPECT().Engage(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.DialogueAnalysis{}, nil)

	var persisted domain.PartnershipRecord
	sink := mocks.NewMockPartnershipSink(t)
	sink.EXPECT().LogPartnership(mockAnyContext(), mock.Anything).RunAndReturn(
		func(_ context.Context, record domain.PartnershipRecord) error {
			persisted = record
			return nil
		}).Once()

	deps := engines.deps()
	deps.Sink = sink

	outcome := newTestCoordinator(t, deps).Coordinate(context.Background(), nil, basePlan(), baseMission(10))
	require.True(t, outcome.Success, outcome.Error)

	assert.NotEmpty(t, persisted.ID)
	assert.Equal(t, outcome.Record.ID, persisted.ID)
	assert.Equal(t, "session-1", persisted.SessionID)
	assert.Equal(t, testNow, persisted.Timestamp)
	assert.Contains(t, persisted.Keywords, "partnershipcoordinator")
}

func TestCoordinateConvertsEngineFailures(t *testing.T) {
	t.Parallel()

	t.Run("error", func(t *testing.T) {
		t.Parallel()

		engines := newEngineMocks(t)
		engines.dialogue.EXPECT().Engage(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.DialogueAnalysis{}, errors.New("model unavailable"))

		outcome := newTestCoordinator(t, engines.deps()).Coordinate(context.Background(), nil, basePlan(), baseMission(10))
		assert.False(t, outcome.Success)
		assert.Contains(t, outcome.Error, "dialogue phase: model unavailable")
		assert.Nil(t, outcome.Record)
	})

	t.Run("panic", func(t *testing.T) {
		t.Parallel()

		engines := newEngineMocks(t)
		engines.dialogue.EXPECT().Engage(mockAnyContext(), mock.Anything, mock.Anything).Return(domain.DialogueAnalysis{}, nil)
		engines.strategic.EXPECT().Analyze(mockAnyContext(), mock.Anything, mock.Anything).RunAndReturn(
			func(context.Context, domain.Plan, domain.MissionContext) (domain.StrategicAnalysis, error) {
				panic("nil analysis")
			})

		outcome := newTestCoordinator(t, engines.deps()).Coordinate(context.Background(), nil, basePlan(), baseMission(65))
		assert.False(t, outcome.Success)
		assert.Contains(t, outcome.Error, "recovered panic: nil analysis")
	})

	t.Run("invalid plan", func(t *testing.T) {
		t.Parallel()

		outcome := newTestCoordinator(t, newEngineMocks(t).deps()).Coordinate(context.Background(), nil, domain.Plan{Task: "x", Confidence: 2}, baseMission(10))
		assert.False(t, outcome.Success)
		assert.Contains(t, outcome.Error, "confidence 2.00 out of range")
	})
}

func TestInfinityConfigIsLoadedOnce(t *testing.T) {
	t.Parallel()

	source := mocks.NewMockConfigSource(t)
	source.EXPECT().LoadInfinityConfig(mockAnyContext()).Return(domain.InfinityConfig{
		Enabled:            true,
		ConsensusThreshold: 0.9,
		MaxDialogueRounds:  4,
	}, nil).Once()

	deps := newEngineMocks(t).deps()
	deps.Config = source
	coordinator := newTestCoordinator(t, deps)

	first := coordinator.InfinityConfig(context.Background())
	second := coordinator.InfinityConfig(context.Background())

	assert.Equal(t, first, second)
	assert.True(t, first.Enabled)
	assert.Equal(t, domain.ConfigStatusEnabled, first.Status)
	assert.Equal(t, 4, first.MaxDialogueRounds)
}

func TestInfinityConfigFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  domain.InfinityConfig
		err  error
	}{
		{name: "load error", err: errors.New("config unreadable")},
		{name: "disabled", cfg: domain.InfinityConfig{Enabled: false, ConsensusThreshold: 0.5, MaxDialogueRounds: 9}},
		{name: "invalid threshold", cfg: domain.InfinityConfig{Enabled: true, ConsensusThreshold: 1.5, MaxDialogueRounds: 3}},
		{name: "invalid rounds", cfg: domain.InfinityConfig{Enabled: true, ConsensusThreshold: 0.8, MaxDialogueRounds: 0}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			source := mocks.NewMockConfigSource(t)
			source.EXPECT().LoadInfinityConfig(mockAnyContext()).Return(tt.cfg, tt.err)

			deps := newEngineMocks(t).deps()
			deps.Config = source

			assert.Equal(t, domain.DefaultInfinityConfig(), newTestCoordinator(t, deps).InfinityConfig(context.Background()))
		})
	}
}
