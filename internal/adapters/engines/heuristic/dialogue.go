// Package heuristic provides rule-based analysis engines. They need no
// network access and give stable output for the same input.
package heuristic

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/bnema/athena-partnership/internal/ports"
)

const (
	riskyComplexity     = 60
	overconfidence      = 0.9
	minSpecificTaskWord = 4
)

var (
	rollbackTerms     = []string{"rollback", "roll back", "revert", "feature flag", "canary"}
	verificationTerms = []string{"test", "verify", "validate", "benchmark", "staging"}
)

type DialogueEngine struct{}

var _ ports.DialogueEngine = DialogueEngine{}

func (DialogueEngine) Engage(ctx context.Context, plan domain.Plan, mission domain.MissionContext) (domain.DialogueAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return domain.DialogueAnalysis{}, err
	}

	text := strings.ToLower(plan.Task + " " + plan.Approach + " " + mission.UserMessage)
	complexity := complexityOf(plan, mission)
	analysis := domain.DialogueAnalysis{QuestionsRaised: []string{}}

	ask := func(question, area, suggestion string) {
		analysis.QuestionsRaised = append(analysis.QuestionsRaised, question)
		analysis.RefinementsSuggested = append(analysis.RefinementsSuggested, domain.Refinement{Area: area, Suggestion: suggestion})
	}

	if strings.TrimSpace(plan.Approach) == "" {
		ask(fmt.Sprintf("What approach will be taken for %q?", plan.Task), "approach", "state the intended approach")
	}
	if len(strings.Fields(plan.Task)) < minSpecificTaskWord {
		ask("What does done look like for this task?", "scope", "define acceptance criteria")
	}
	if complexity > riskyComplexity {
		if !containsAny(text, rollbackTerms) {
			ask("How will this be rolled back if it fails?", "rollback", "define a rollback path")
		}
		if !containsAny(text, verificationTerms) {
			ask("How will the change be verified before release?", "testing", "add tests that pin current behaviour")
		}
		if plan.EffectiveConfidence() > overconfidence {
			ask("What evidence supports such high confidence for a complex change?", "confidence", "list the assumptions behind the estimate")
		}
	}

	return analysis, nil
}

func complexityOf(plan domain.Plan, mission domain.MissionContext) int {
	return max(plan.ComplexityScore, mission.ComplexityScore)
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
