package domain

import (
	"fmt"
	"strings"
)

// DefaultPlanConfidence is the starting confidence for plans that carry none.
const DefaultPlanConfidence = 0.85

type PlanMetadata struct {
	Alternatives []string          `json:"alternatives,omitempty"`
	Keywords     []string          `json:"keywords,omitempty"`
	Refinements  []string          `json:"refinements,omitempty"`
	Conditions   []string          `json:"conditions,omitempty"`
	Innovations  []string          `json:"innovations,omitempty"`
	Changes      []string          `json:"changes,omitempty"`
	Extra        map[string]string `json:"extra,omitempty"`
}

type Plan struct {
	Task            string       `json:"task"`
	Approach        string       `json:"approach"`
	ComplexityScore int          `json:"complexityScore"`
	Confidence      float64      `json:"confidence"`
	Metadata        PlanMetadata `json:"metadata"`
}

// Clone returns a deep copy; slices and maps are never shared with the receiver.
func (p Plan) Clone() Plan {
	clone := p
	clone.Metadata = PlanMetadata{
		Alternatives: cloneStrings(p.Metadata.Alternatives),
		Keywords:     cloneStrings(p.Metadata.Keywords),
		Refinements:  cloneStrings(p.Metadata.Refinements),
		Conditions:   cloneStrings(p.Metadata.Conditions),
		Innovations:  cloneStrings(p.Metadata.Innovations),
		Changes:      cloneStrings(p.Metadata.Changes),
	}
	if p.Metadata.Extra != nil {
		clone.Metadata.Extra = make(map[string]string, len(p.Metadata.Extra))
		for k, v := range p.Metadata.Extra {
			clone.Metadata.Extra[k] = v
		}
	}

	return clone
}

// EffectiveConfidence treats a zero confidence as unset.
func (p Plan) EffectiveConfidence() float64 {
	if p.Confidence > 0 {
		return p.Confidence
	}

	return DefaultPlanConfidence
}

func (p Plan) Validate() error {
	if strings.TrimSpace(p.Task) == "" {
		return fmt.Errorf("%w: task is required", ErrInvalidPlan)
	}
	if p.ComplexityScore < 0 || p.ComplexityScore > 100 {
		return fmt.Errorf("%w: complexity score %d out of range [0,100]", ErrInvalidPlan, p.ComplexityScore)
	}
	if p.Confidence < 0 || p.Confidence > 1 {
		return fmt.Errorf("%w: confidence %.2f out of range [0,1]", ErrInvalidPlan, p.Confidence)
	}

	return nil
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}

	out := make([]string, len(values))
	copy(out, values)
	return out
}
