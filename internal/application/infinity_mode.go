package application

import (
	"context"
	"fmt"
	"math"

	"github.com/bnema/athena-partnership/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const (
	diminishingDelta  = 0.05
	pivotDelta        = 0.03
	responseBump      = 0.05
	precedentLookups  = 1
	pivotSuggestion   = "step back and consider an alternative approach; recent rounds stopped moving consensus"
	fallbackQuestion  = "Which assumption in this plan has the least evidence behind it?"
	changeBumpSummary = "confidence raised by 0.05 after addressing the challenge"
)

// infinityState is owned by a single runInfinity call.
type infinityState struct {
	plan       domain.Plan
	consensus  float64
	rounds     []domain.DialogueRound
	trajectory []float64
	confidence []float64
	pivots     []int
}

func (s *infinityState) lastDeltasStalled() bool {
	n := len(s.rounds)
	if n < 2 {
		return false
	}

	return math.Abs(s.rounds[n-1].Delta) < pivotDelta && math.Abs(s.rounds[n-2].Delta) < pivotDelta
}

// runInfinity iterates challenge and response rounds until consensus reaches
// the threshold, stops improving, hits the round cap or ctx is cancelled.
// Cancellation is checked at round boundaries and yields a partial record.
func (c *Coordinator) runInfinity(ctx context.Context, plan domain.Plan, mission domain.MissionContext, kw []string, cfg domain.InfinityConfig) (domain.PartnershipRecord, error) {
	initial := plan.EffectiveConfidence()
	state := &infinityState{
		plan:       plan,
		confidence: []float64{initial},
	}

	var reason domain.TerminationReason
	round := 0
	for round < cfg.MaxDialogueRounds && state.consensus < cfg.ConsensusThreshold {
		if ctx.Err() != nil {
			reason = domain.TerminationCancelled
			break
		}
		round++

		dr, err := c.playRound(ctx, round, state, mission, kw)
		if err != nil {
			return domain.PartnershipRecord{}, err
		}

		if math.Abs(dr.Delta) < diminishingDelta && round > 1 {
			reason = domain.TerminationDiminishingReturns
			break
		}
		if state.consensus >= cfg.ConsensusThreshold {
			reason = domain.TerminationConsensusAchieved
			break
		}
	}
	if reason == "" {
		reason = domain.TerminationMaxRounds
	}

	c.telemetry.rounds.Record(ctx, int64(len(state.rounds)),
		metric.WithAttributes(attribute.String("termination", string(reason))))
	c.log.Debug("infinity dialogue finished",
		zap.String("session_id", mission.SessionID),
		zap.Int("rounds", len(state.rounds)),
		zap.String("termination", string(reason)),
		zap.Float64("consensus", state.consensus),
	)

	final := initial
	if len(state.rounds) > 0 {
		final = state.consensus
	}

	return domain.PartnershipRecord{
		Mode:                domain.ModeInfinity,
		InitialConfidence:   initial,
		FinalConfidence:     final,
		RefinedPlan:         state.plan,
		Metrics:             domain.PartnershipMetrics{Infinity: infinityMetrics(state)},
		Rounds:              state.rounds,
		ConsensusTrajectory: state.trajectory,
		ConfidenceHistory:   state.confidence,
		PivotPoints:         state.pivots,
		TerminationReason:   reason,
	}, nil
}

func (c *Coordinator) playRound(ctx context.Context, round int, state *infinityState, mission domain.MissionContext, kw []string) (domain.DialogueRound, error) {
	ctx, span := c.telemetry.startPhase(ctx, "infinity_round", attribute.Int("round", round))
	defer span.End()

	challenge := c.challenge(ctx, round, state, mission, kw)
	if challenge.PivotSuggestion != "" {
		state.pivots = append(state.pivots, round)
	}

	response, next := respond(challenge, state.plan)
	state.plan = next
	state.confidence = append(state.confidence, response.ConfidenceAfter)

	consensus, err := guard(func() (domain.Consensus, error) {
		return c.scorer.Score(ctx, next, mission)
	})
	if err != nil {
		return domain.DialogueRound{}, fmt.Errorf("score consensus in round %d: %w", round, err)
	}

	dr := domain.DialogueRound{
		Round:           round,
		Challenge:       challenge,
		Response:        response,
		ConsensusBefore: state.consensus,
		ConsensusAfter:  consensus.Score,
		Delta:           consensus.Score - state.consensus,
	}
	state.rounds = append(state.rounds, dr)
	state.trajectory = append(state.trajectory, consensus.Score)
	state.consensus = consensus.Score

	span.SetAttributes(
		attribute.String("challenge.type", string(challenge.Type)),
		attribute.Float64("consensus.after", consensus.Score),
	)

	return dr, nil
}

// challenge opens with a reframe, then leans on memory for a precedent.
// Two stalled rounds in a row add a pivot suggestion.
func (c *Coordinator) challenge(ctx context.Context, round int, state *infinityState, mission domain.MissionContext, kw []string) domain.Challenge {
	var ch domain.Challenge
	switch {
	case round == 1:
		ch = domain.Challenge{
			Type:     domain.ChallengeReframe,
			Question: fmt.Sprintf("What problem is %q really solving, and would a different framing change the approach?", state.plan.Task),
		}
	default:
		if precedent, ok := c.recallPrecedent(ctx, state.plan, mission, kw); ok {
			ch = domain.Challenge{
				Type:      domain.ChallengePatternMatch,
				Question:  fmt.Sprintf("A similar effort was recorded before (%s). What does this plan do differently?", precedent.Summary),
				Precedent: &precedent,
			}
		} else {
			ch = domain.Challenge{Type: domain.ChallengeOpenQuestion, Question: fallbackQuestion}
		}
	}

	if state.lastDeltasStalled() {
		ch.PivotSuggestion = pivotSuggestion
	}

	return ch
}

func (c *Coordinator) recallPrecedent(ctx context.Context, plan domain.Plan, mission domain.MissionContext, kw []string) (domain.MemoryData, bool) {
	if c.memory == nil {
		return domain.MemoryData{}, false
	}

	result, err := guard(func() (domain.MemoryResult, error) {
		return c.memory.Retrieve(ctx, plan.Task, domain.RetrieveOptions{
			Keywords:       kw,
			ExcludeSession: mission.SessionID,
			Limit:          precedentLookups,
		})
	})
	if err != nil {
		c.log.Warn("memory retrieval failed, using fallback challenge",
			zap.String("phase", "infinity"),
			zap.Error(err),
		)
		return domain.MemoryData{}, false
	}
	if !result.Found {
		return domain.MemoryData{}, false
	}

	return result.Data, true
}

// respond returns a new plan; the input plan is left untouched.
func respond(challenge domain.Challenge, plan domain.Plan) (domain.ChallengeResponse, domain.Plan) {
	next := plan.Clone()
	before := plan.EffectiveConfidence()
	after := min(before+responseBump, 1.0)

	var (
		ack     domain.Acknowledgement
		changes []string
	)
	switch {
	case challenge.PivotSuggestion != "":
		ack = domain.AcknowledgePivot
		changes = append(changes, "pivot: "+challenge.PivotSuggestion)
	case challenge.Type == domain.ChallengePatternMatch:
		ack = domain.AcknowledgeBuildOnMemory
		changes = append(changes, "built on precedent: "+challenge.Precedent.Summary)
	default:
		ack = domain.AcknowledgeReframe
		changes = append(changes, "reframed approach around: "+challenge.Question)
	}
	changes = append(changes, changeBumpSummary)

	next.Confidence = after
	next.Metadata.Changes = append(next.Metadata.Changes, changes...)

	return domain.ChallengeResponse{
		Acknowledges:     ack,
		ChangesApplied:   changes,
		ConfidenceBefore: before,
		ConfidenceAfter:  after,
	}, next
}

func infinityMetrics(state *infinityState) *domain.InfinityMetrics {
	metrics := &domain.InfinityMetrics{RoundsCompleted: len(state.rounds)}
	if len(state.rounds) == 0 {
		return metrics
	}

	metrics.InitialConsensus = state.trajectory[0]
	metrics.FinalConsensus = state.consensus
	metrics.ConsensusImprovement = metrics.FinalConsensus - metrics.InitialConsensus

	var total float64
	for _, r := range state.rounds {
		total += math.Abs(r.Delta)
	}
	metrics.AverageDelta = total / float64(len(state.rounds))

	return metrics
}
