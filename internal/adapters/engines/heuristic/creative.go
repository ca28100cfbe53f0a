package heuristic

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/bnema/athena-partnership/internal/keywords"
	"github.com/bnema/athena-partnership/internal/ports"
)

const (
	maxSolutions     = 3
	maxInnovations   = 2
	baseApplicable   = 0.6
	perHitApplicable = 0.1
	maxApplicable    = 0.95
	fallbackApply    = 0.5
)

type metaphor struct {
	name     string
	insight  string
	keywords []string
}

var metaphors = []metaphor{
	{
		name:     "strangler fig",
		insight:  "grow the new path around the old one and retire the old one piece by piece",
		keywords: []string{"refactor", "rewrite", "legacy", "migration", "replace", "coordinator"},
	},
	{
		name:     "circuit breaker",
		insight:  "stop calling what keeps failing and give it room to recover",
		keywords: []string{"retry", "failure", "timeout", "network", "service", "client"},
	},
	{
		name:     "immune system",
		insight:  "recognise known bad patterns early and remember new ones",
		keywords: []string{"security", "detection", "error", "validation", "errors", "pattern"},
	},
	{
		name:     "river delta",
		insight:  "split one heavy flow into many smaller channels",
		keywords: []string{"pipeline", "stream", "routing", "queue", "throughput", "batch"},
	},
	{
		name:     "gardening",
		insight:  "small regular pruning beats one big clearance",
		keywords: []string{"cleanup", "maintenance", "technical", "prune", "deprecated", "phases"},
	},
	{
		name:     "scaffolding",
		insight:  "put temporary structure up first and take it down once the walls stand",
		keywords: []string{"prototype", "tests", "structure", "build", "harness", "skeleton"},
	},
}

type CreativeEngine struct{}

var _ ports.CreativeEngine = CreativeEngine{}

func (CreativeEngine) Synthesize(ctx context.Context, plan domain.Plan, strategic domain.StrategicAnalysis, mission domain.MissionContext) (domain.CreativeSynthesis, error) {
	if err := ctx.Err(); err != nil {
		return domain.CreativeSynthesis{}, err
	}

	terms := keywords.Extract(plan.Task, mission.UserMessage, mission.Mesh)
	terms = append(terms, keywords.MessageWords(plan.Task+" "+plan.Approach)...)

	solutions := rankMetaphors(terms)
	innovations := innovationsFor(strategic, mission.Mesh)

	synthesis := domain.CreativeSynthesis{
		MetaphoricalSolutions:  solutions,
		CrossDomainInnovations: innovations,
		SynthesizedRecommendation: domain.SynthesizedRecommendation{
			CreativityScore: creativityScore(len(solutions), len(innovations)),
			Wisdom:          solutions[0].Insight,
		},
	}

	return synthesis, nil
}

// rankMetaphors always returns at least one solution.
func rankMetaphors(terms []string) []domain.MetaphoricalSolution {
	index := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		index[t] = struct{}{}
	}

	type scored struct {
		m    metaphor
		hits int
	}
	var ranked []scored
	for _, m := range metaphors {
		hits := 0
		for _, kw := range m.keywords {
			if _, ok := index[kw]; ok {
				hits++
			}
		}
		if hits > 0 {
			ranked = append(ranked, scored{m: m, hits: hits})
		}
	}
	slices.SortStableFunc(ranked, func(a, b scored) int { return cmp.Compare(b.hits, a.hits) })

	if len(ranked) == 0 {
		fallback := metaphors[len(metaphors)-1]
		return []domain.MetaphoricalSolution{{Metaphor: fallback.name, Insight: fallback.insight, ApplicabilityScore: fallbackApply}}
	}

	out := make([]domain.MetaphoricalSolution, 0, min(len(ranked), maxSolutions))
	for _, r := range ranked[:min(len(ranked), maxSolutions)] {
		out = append(out, domain.MetaphoricalSolution{
			Metaphor:           r.m.name,
			Insight:            r.m.insight,
			ApplicabilityScore: round2(min(baseApplicable+perHitApplicable*float64(r.hits), maxApplicable)),
		})
	}

	return out
}

func innovationsFor(strategic domain.StrategicAnalysis, mesh *domain.MeshIntelligence) []domain.CrossDomainInnovation {
	var out []domain.CrossDomainInnovation
	if mesh != nil {
		for _, d := range mesh.Domains {
			d = strings.TrimSpace(d)
			if d == "" {
				continue
			}
			out = append(out, domain.CrossDomainInnovation{Domain: d, Innovation: fmt.Sprintf("reuse a proven %s pattern for this change", d)})
			if len(out) == maxInnovations {
				break
			}
		}
	}

	switch strategic.Recommendation.Verdict {
	case domain.VerdictReconsider:
		out = append(out, domain.CrossDomainInnovation{Domain: "product", Innovation: "ship the smallest slice that proves the idea"})
	case domain.VerdictProceedWithMitigation:
		out = append(out, domain.CrossDomainInnovation{Domain: "operations", Innovation: "treat the rollout like a canary deployment"})
	}

	return out
}

func creativityScore(solutions, innovations int) float64 {
	return round2(min(0.4+0.1*float64(solutions)+0.05*float64(innovations), 1))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
