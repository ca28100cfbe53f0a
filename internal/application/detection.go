package application

import (
	"context"

	"github.com/bnema/athena-partnership/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	detectorSignature     = "signature"
	detectorIterations    = "iterations"
	detectorPrecedents    = "precedents"
	detectorInterventions = "interventions"
	detectorCheckpoint    = "checkpoint"
)

// Detect runs only the error-detection phase for a plan, without any
// analysis phase or persistence.
func (c *Coordinator) Detect(ctx context.Context, mesh *domain.MeshIntelligence, plan domain.Plan, mission domain.MissionContext) (domain.ErrorDetectionResult, error) {
	if err := plan.Validate(); err != nil {
		return domain.ErrorDetectionResult{}, err
	}
	if mesh == nil {
		mesh = mission.Mesh
	}
	mission.Mesh = mesh

	return c.detect(ctx, buildProposal(plan, mission)), nil
}

// detect never fails: a detector that errors or panics is recorded in
// FailedDetectors and contributes no signal.
func (c *Coordinator) detect(ctx context.Context, proposal domain.Proposal) domain.ErrorDetectionResult {
	ctx, span := c.telemetry.startPhase(ctx, "error_detection")
	defer span.End()

	result := domain.ErrorDetectionResult{Proposal: proposal}

	if c.signatures != nil {
		match, err := guard(func() (domain.SignatureMatch, error) {
			return c.signatures.DetectSignature(ctx, proposal)
		})
		if c.keepSignal(&result, detectorSignature, err) {
			result.Signals.Signature = &match
		}
	}
	if c.iterations != nil {
		count, err := guard(func() (domain.IterationCount, error) {
			return c.iterations.CountIterations(ctx, proposal)
		})
		if c.keepSignal(&result, detectorIterations, err) {
			result.Signals.Iterations = &count
		}
	}
	if c.precedents != nil {
		match, err := guard(func() (domain.PrecedentMatch, error) {
			return c.precedents.MatchPrecedents(ctx, proposal)
		})
		if c.keepSignal(&result, detectorPrecedents, err) {
			result.Signals.Precedents = &match
		}
	}
	if c.interventions != nil {
		count, err := guard(func() (domain.InterventionCount, error) {
			return c.interventions.DetectInterventions(ctx, proposal)
		})
		if c.keepSignal(&result, detectorInterventions, err) {
			result.Signals.Interventions = &count
		}
	}

	result.Decision = domain.HaltDecision{Severity: domain.SeverityLow}
	if c.checkpoint != nil {
		decision, err := guard(func() (domain.HaltDecision, error) {
			return c.checkpoint.Evaluate(ctx, proposal, result.Signals)
		})
		if c.keepSignal(&result, detectorCheckpoint, err) {
			result.Decision = decision
		}
	}

	span.SetAttributes(
		attribute.Bool("halt.should_halt", result.Decision.ShouldHalt),
		attribute.StringSlice("detectors.failed", result.FailedDetectors),
	)

	return result
}

// keepSignal records a failed detector and reports whether its result
// should be kept.
func (c *Coordinator) keepSignal(result *domain.ErrorDetectionResult, name string, err error) bool {
	if err == nil {
		return true
	}

	result.FailedDetectors = append(result.FailedDetectors, name)
	c.log.Warn("error detector failed, ignoring its signal",
		zap.String("phase", "error_detection"),
		zap.String("detector", name),
		zap.String("session_id", result.Proposal.SessionID),
		zap.Error(err),
	)

	return false
}
