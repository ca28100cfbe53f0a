package application

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/athena-partnership/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	strategicQuestionGate   = 2
	strategicComplexityGate = 60
	creativeComplexityGate  = 80
	creativeAlternativeGate = 3

	questionPenalty            = 0.02
	defaultStrategicConfidence = 0.8
	defaultCreativityScore     = 0.5
	creativeWeight             = 0.1
	metaphorBoost              = 0.1
	metaphorBoostThreshold     = 0.75

	minFinalConfidence = 0.5
	maxFinalConfidence = 1.0

	approachReviewPrefix = "strategic approach review: "
)

func (c *Coordinator) runStandard(ctx context.Context, plan domain.Plan, mission domain.MissionContext) (domain.PartnershipRecord, error) {
	initial := plan.EffectiveConfidence()

	dialogue, err := c.engage(ctx, plan, mission)
	if err != nil {
		return domain.PartnershipRecord{}, err
	}
	questions := len(dialogue.QuestionsRaised)

	var strategic *domain.StrategicAnalysis
	if shouldRunStrategic(questions, mission.ComplexityScore) {
		if err := ctx.Err(); err != nil {
			return domain.PartnershipRecord{}, fmt.Errorf("standard mode: %w", err)
		}
		analysis, err := c.analyze(ctx, plan, mission)
		if err != nil {
			return domain.PartnershipRecord{}, err
		}
		strategic = &analysis
	}

	var creative *domain.CreativeSynthesis
	if shouldRunCreative(strategic, mission.ComplexityScore) {
		if err := ctx.Err(); err != nil {
			return domain.PartnershipRecord{}, fmt.Errorf("standard mode: %w", err)
		}
		synthesis, err := c.synthesize(ctx, plan, *strategic, mission)
		if err != nil {
			return domain.PartnershipRecord{}, err
		}
		creative = &synthesis
	}

	standards := c.enforceStandards(ctx, domain.StandardsRequest{
		Task:    plan.Task,
		Code:    plan.Approach,
		Context: mission.UserMessage,
		Roles:   mission.Colonels,
	})
	if standards != nil && strategic != nil {
		strategic.StandardsViolations = append(slices.Clip(strategic.StandardsViolations), standards.Violations...)
	}

	refined, applied := refinePlan(plan, dialogue, strategic, creative)

	approach := c.enforceStandards(ctx, domain.StandardsRequest{
		Task:    approachReviewPrefix + plan.Task,
		Code:    refined.Approach,
		Context: mission.UserMessage,
		Roles:   mission.Colonels,
	})

	final := finalConfidence(initial, questions, strategic, creative)
	delta := final - initial

	metrics := &domain.StandardMetrics{
		QuestionsRaised:      questions,
		RefinementsApplied:   applied,
		StrategicAnalysisRan: strategic != nil,
		CreativeSynthesisRan: creative != nil,
		ConfidenceDelta:      delta,
		EffectivenessScore:   effectiveness(strategic != nil, creative != nil, delta),
	}
	if standards != nil {
		metrics.StandardsViolations = len(standards.Violations)
	}
	if approach != nil {
		metrics.ApproachViolations = len(approach.Violations)
	}

	return domain.PartnershipRecord{
		Mode:              domain.ModeStandard,
		InitialConfidence: initial,
		FinalConfidence:   final,
		RefinedPlan:       refined,
		Metrics:           domain.PartnershipMetrics{Standard: metrics},
		Dialogue:          &dialogue,
		Strategic:         strategic,
		Creative:          creative,
		StandardsReview:   standards,
		ApproachReview:    approach,
	}, nil
}

func shouldRunStrategic(questions, complexity int) bool {
	return questions > strategicQuestionGate || complexity > strategicComplexityGate
}

func shouldRunCreative(strategic *domain.StrategicAnalysis, complexity int) bool {
	if strategic == nil {
		return false
	}

	return complexity > creativeComplexityGate || len(strategic.AlternativeApproaches) > creativeAlternativeGate
}

func (c *Coordinator) engage(ctx context.Context, plan domain.Plan, mission domain.MissionContext) (domain.DialogueAnalysis, error) {
	ctx, span := c.telemetry.startPhase(ctx, "dialogue")
	defer span.End()

	analysis, err := c.dialogue.Engage(ctx, plan, mission)
	if err != nil {
		return domain.DialogueAnalysis{}, fmt.Errorf("dialogue phase: %w", err)
	}
	span.SetAttributes(attribute.Int("dialogue.questions", len(analysis.QuestionsRaised)))

	return analysis, nil
}

func (c *Coordinator) analyze(ctx context.Context, plan domain.Plan, mission domain.MissionContext) (domain.StrategicAnalysis, error) {
	ctx, span := c.telemetry.startPhase(ctx, "strategic")
	defer span.End()

	analysis, err := c.strategic.Analyze(ctx, plan, mission)
	if err != nil {
		return domain.StrategicAnalysis{}, fmt.Errorf("strategic phase: %w", err)
	}
	span.SetAttributes(attribute.String("strategic.verdict", string(analysis.Recommendation.Verdict)))

	return analysis, nil
}

func (c *Coordinator) synthesize(ctx context.Context, plan domain.Plan, strategic domain.StrategicAnalysis, mission domain.MissionContext) (domain.CreativeSynthesis, error) {
	ctx, span := c.telemetry.startPhase(ctx, "creative")
	defer span.End()

	synthesis, err := c.creative.Synthesize(ctx, plan, strategic, mission)
	if err != nil {
		return domain.CreativeSynthesis{}, fmt.Errorf("creative phase: %w", err)
	}

	return synthesis, nil
}

// enforceStandards returns nil when the enforcer is absent, not operational
// or failing. Standards findings never block the pipeline.
func (c *Coordinator) enforceStandards(ctx context.Context, req domain.StandardsRequest) *domain.StandardsReport {
	if c.enforcer == nil {
		return nil
	}
	operational, err := guard(func() (bool, error) {
		return c.enforcer.IsOperational(), nil
	})
	if err != nil || !operational {
		c.log.Debug("standards enforcer unavailable", zap.Error(err))
		return nil
	}

	ctx, span := c.telemetry.startPhase(ctx, "standards")
	defer span.End()

	report, err := guard(func() (domain.StandardsReport, error) {
		return c.enforcer.EnforceCodeStandards(ctx, req)
	})
	if err != nil {
		c.log.Warn("standards enforcement failed",
			zap.String("phase", "standards"),
			zap.String("task", req.Task),
			zap.Error(err),
		)
		return nil
	}
	span.SetAttributes(attribute.Int("standards.violations", len(report.Violations)))

	return &report
}

// refinePlan returns a refined copy of plan and the number of refinements
// merged into it.
func refinePlan(plan domain.Plan, dialogue domain.DialogueAnalysis, strategic *domain.StrategicAnalysis, creative *domain.CreativeSynthesis) (domain.Plan, int) {
	refined := plan.Clone()
	confidence := plan.EffectiveConfidence()
	applied := 0

	for _, r := range dialogue.RefinementsSuggested {
		refined.Metadata.Refinements = append(refined.Metadata.Refinements, formatRefinement(r))
		applied++
	}

	if strategic != nil {
		rec := strategic.Recommendation
		if condition := verdictCondition(rec.Verdict); condition != "" {
			refined.Metadata.Conditions = append(refined.Metadata.Conditions, condition)
			applied++
		}
		for _, condition := range rec.Conditions {
			refined.Metadata.Conditions = append(refined.Metadata.Conditions, condition)
			applied++
		}
		confidence -= rec.Verdict.ConfidencePenalty()
		for _, alt := range strategic.AlternativeApproaches {
			refined.Metadata.Alternatives = append(refined.Metadata.Alternatives, alt.Name)
		}
	}

	if creative != nil {
		if len(creative.MetaphoricalSolutions) > 0 && creative.MetaphoricalSolutions[0].ApplicabilityScore > metaphorBoostThreshold {
			confidence += metaphorBoost
		}
		for _, innovation := range creative.CrossDomainInnovations {
			refined.Metadata.Innovations = append(refined.Metadata.Innovations, innovation.Domain+": "+innovation.Innovation)
			applied++
		}
	}

	refined.Confidence = clamp(confidence, 0, 1)

	return refined, applied
}

func formatRefinement(r domain.Refinement) string {
	if strings.TrimSpace(r.Area) == "" {
		return r.Suggestion
	}

	return r.Area + ": " + r.Suggestion
}

func verdictCondition(verdict domain.Verdict) string {
	switch verdict {
	case domain.VerdictProceedWithValidation:
		return "validate core assumptions before rollout"
	case domain.VerdictProceedWithMitigation:
		return "document mitigations for identified risks"
	case domain.VerdictReconsider:
		return "revisit the approach before implementation"
	default:
		return ""
	}
}

// finalConfidence applies each step to a running value in order, so the
// strategic average sees the question penalty.
func finalConfidence(initial float64, questions int, strategic *domain.StrategicAnalysis, creative *domain.CreativeSynthesis) float64 {
	value := initial - questionPenalty*float64(questions)

	if strategic != nil {
		strategicConfidence := strategic.Recommendation.Confidence
		if strategicConfidence == 0 {
			strategicConfidence = defaultStrategicConfidence
		}
		value = (value + strategicConfidence) / 2
	}

	if creative != nil {
		score := creative.SynthesizedRecommendation.CreativityScore
		if score == 0 {
			score = defaultCreativityScore
		}
		value += creativeWeight * score
	}

	return clamp(value, minFinalConfidence, maxFinalConfidence)
}

func effectiveness(strategicRan, creativeRan bool, confidenceDelta float64) float64 {
	score := 0.2
	if strategicRan {
		score += 0.3
	}
	if creativeRan {
		score += 0.2
	}
	score += min(max(confidenceDelta, 0), 0.3)

	return clamp(score, 0, 1)
}

func clamp(value, lo, hi float64) float64 {
	return min(max(value, lo), hi)
}
