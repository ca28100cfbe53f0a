package heuristic

import (
	"context"
	"fmt"
	"math"

	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/bnema/athena-partnership/internal/ports"
)

const (
	reconsiderComplexity = 85
	reconsiderConfidence = 0.6
	mitigationComplexity = 70
	validationComplexity = 50
	validationConfidence = 0.7
	spikeComplexity      = 80
)

type StrategicEngine struct{}

var _ ports.StrategicEngine = StrategicEngine{}

func (StrategicEngine) Analyze(ctx context.Context, plan domain.Plan, mission domain.MissionContext) (domain.StrategicAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return domain.StrategicAnalysis{}, err
	}

	complexity := complexityOf(plan, mission)
	confidence := plan.EffectiveConfidence()
	verdict := verdictFor(complexity, confidence)

	return domain.StrategicAnalysis{
		Recommendation: domain.StrategicRecommendation{
			Verdict:          verdict,
			Confidence:       strategicConfidence(complexity, confidence),
			StrategicSummary: fmt.Sprintf("complexity %d at confidence %.2f: %s", complexity, confidence, verdict),
			Conditions:       conditionsFor(verdict),
		},
		AlternativeApproaches: alternativesFor(plan, complexity),
	}, nil
}

func verdictFor(complexity int, confidence float64) domain.Verdict {
	switch {
	case complexity > reconsiderComplexity && confidence < reconsiderConfidence:
		return domain.VerdictReconsider
	case complexity > mitigationComplexity:
		return domain.VerdictProceedWithMitigation
	case complexity > validationComplexity || confidence < validationConfidence:
		return domain.VerdictProceedWithValidation
	default:
		return domain.VerdictProceed
	}
}

// strategicConfidence discounts the plan's confidence by up to a quarter as
// complexity approaches 100, rounded to two places.
func strategicConfidence(complexity int, confidence float64) float64 {
	discounted := confidence * (1 - float64(complexity)/400)
	return math.Round(min(max(discounted, 0), 1)*100) / 100
}

func conditionsFor(verdict domain.Verdict) []string {
	switch verdict {
	case domain.VerdictProceedWithValidation:
		return []string{"prototype the riskiest step first"}
	case domain.VerdictProceedWithMitigation:
		return []string{"stage the rollout", "keep the previous path available"}
	case domain.VerdictReconsider:
		return []string{"split the task before committing to it"}
	default:
		return nil
	}
}

func alternativesFor(plan domain.Plan, complexity int) []domain.AlternativeApproach {
	var out []domain.AlternativeApproach
	for _, name := range plan.Metadata.Alternatives {
		out = append(out, domain.AlternativeApproach{Name: name, Rationale: "proposed with the plan"})
	}
	if complexity > riskyComplexity {
		out = append(out, domain.AlternativeApproach{Name: "incremental rollout", Rationale: "ship behind a flag in stages"})
	}
	if complexity > spikeComplexity {
		out = append(out, domain.AlternativeApproach{Name: "spike first", Rationale: "prototype the riskiest piece in isolation"})
	}

	return out
}
