package detect

import (
	"context"
	"fmt"

	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/bnema/athena-partnership/internal/ports"
	"go.uber.org/zap"
)

const (
	criticalMatchThreshold     = 0.8
	criticalIterationThreshold = 3
	interventionHaltThreshold  = 3
	precedentIterationMinimum  = 2
)

// Checkpoint is the default halt policy. Absent signals never trigger a rule.
type Checkpoint struct {
	signatures SignatureSource
	logger     *zap.Logger
}

var _ ports.HaltCheckpoint = (*Checkpoint)(nil)

// NewCheckpoint builds the policy. signatures is optional and only used to
// look up the recommendation of a detected signature.
func NewCheckpoint(signatures SignatureSource, logger *zap.Logger) *Checkpoint {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Checkpoint{signatures: signatures, logger: logger}
}

func (c *Checkpoint) Evaluate(ctx context.Context, _ domain.Proposal, signals domain.DetectionSignals) (domain.HaltDecision, error) {
	if err := ctx.Err(); err != nil {
		return domain.HaltDecision{}, err
	}

	iterations := 0
	if signals.Iterations != nil {
		iterations = signals.Iterations.IterationCount
	}

	var precedents []domain.Precedent
	if signals.Precedents != nil && signals.Precedents.Found {
		precedents = signals.Precedents.Precedents
	}

	sig := signals.Signature
	if sig != nil && sig.Detected && sig.MatchPercentage >= criticalMatchThreshold && iterations >= criticalIterationThreshold {
		return domain.HaltDecision{
			ShouldHalt: true,
			Severity:   domain.SeverityCritical,
			Reasons: []string{
				fmt.Sprintf("known failure signature %q matched at %.0f%%", sig.Signature, sig.MatchPercentage*100),
				fmt.Sprintf("%d prior attempts in this session", iterations),
			},
			Recommendations: c.signatureRecommendations(ctx, sig.Signature),
			Precedents:      precedents,
		}, nil
	}

	if in := signals.Interventions; in != nil && in.InterventionCount >= interventionHaltThreshold {
		return domain.HaltDecision{
			ShouldHalt: true,
			Severity:   domain.SeverityHigh,
			Reasons:    []string{fmt.Sprintf("user corrected course %d times", in.InterventionCount)},
			Recommendations: []string{
				"Restate the user's requirements and confirm them before continuing",
			},
			Precedents: precedents,
		}, nil
	}

	if len(precedents) > 0 && iterations >= precedentIterationMinimum {
		return domain.HaltDecision{
			Severity: domain.SeverityMedium,
			Reasons: []string{
				fmt.Sprintf("%d similar partnerships found in other sessions", len(precedents)),
				fmt.Sprintf("%d prior attempts in this session", iterations),
			},
			Recommendations: []string{"Review how the matching precedents ended before repeating the approach"},
			Precedents:      precedents,
		}, nil
	}

	return domain.HaltDecision{Severity: domain.SeverityLow, Precedents: precedents}, nil
}

func (c *Checkpoint) signatureRecommendations(ctx context.Context, name string) []string {
	fallback := []string{"Stop and review the failure pattern before another attempt"}
	if c.signatures == nil {
		return fallback
	}

	signatures, err := c.signatures.List(ctx)
	if err != nil {
		c.logger.Warn("signature lookup failed", zap.String("phase", "error_detection"), zap.Error(err))
		return fallback
	}
	for _, s := range signatures {
		if s.Name == name && s.Recommendation != "" {
			return []string{s.Recommendation}
		}
	}

	return fallback
}
