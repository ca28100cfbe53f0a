package domain

type Refinement struct {
	Area       string `json:"area"`
	Suggestion string `json:"suggestion"`
}

type DialogueAnalysis struct {
	QuestionsRaised      []string     `json:"questionsRaised"`
	RefinementsSuggested []Refinement `json:"refinementsSuggested,omitempty"`
}

type Verdict string

const (
	VerdictProceed               Verdict = "proceed"
	VerdictProceedWithValidation Verdict = "proceed_with_validation"
	VerdictProceedWithMitigation Verdict = "proceed_with_mitigation"
	VerdictReconsider            Verdict = "reconsider"
)

// ConfidencePenalty is subtracted from a refined plan's confidence.
func (v Verdict) ConfidencePenalty() float64 {
	switch v {
	case VerdictProceedWithValidation:
		return 0.15
	case VerdictProceedWithMitigation:
		return 0.10
	default:
		return 0
	}
}

type StrategicRecommendation struct {
	Verdict          Verdict  `json:"verdict"`
	Confidence       float64  `json:"confidence,omitempty"`
	StrategicSummary string   `json:"strategicSummary,omitempty"`
	Conditions       []string `json:"conditions,omitempty"`
}

type AlternativeApproach struct {
	Name      string `json:"name"`
	Rationale string `json:"rationale,omitempty"`
}

type StrategicAnalysis struct {
	Recommendation        StrategicRecommendation `json:"recommendation"`
	AlternativeApproaches []AlternativeApproach   `json:"alternativeApproaches,omitempty"`
	StandardsViolations   []Violation             `json:"standardsViolations,omitempty"`
}

type MetaphoricalSolution struct {
	Metaphor           string  `json:"metaphor"`
	Insight            string  `json:"insight"`
	ApplicabilityScore float64 `json:"applicabilityScore"`
}

type CrossDomainInnovation struct {
	Domain     string `json:"domain"`
	Innovation string `json:"innovation"`
}

type SynthesizedRecommendation struct {
	CreativityScore float64 `json:"creativityScore,omitempty"`
	Wisdom          string  `json:"wisdom,omitempty"`
}

type CreativeSynthesis struct {
	MetaphoricalSolutions     []MetaphoricalSolution    `json:"metaphoricalSolutions,omitempty"`
	CrossDomainInnovations    []CrossDomainInnovation   `json:"crossDomainInnovations,omitempty"`
	SynthesizedRecommendation SynthesizedRecommendation `json:"synthesizedRecommendation"`
}

type StandardsRequest struct {
	Task    string   `json:"task"`
	Code    string   `json:"code"`
	Context string   `json:"context"`
	Roles   []string `json:"roles,omitempty"`
}

type Violation struct {
	Rule     string `json:"rule"`
	Severity string `json:"severity,omitempty"`
	Message  string `json:"message"`
}

type StandardsReport struct {
	Status            string      `json:"status"`
	Violations        []Violation `json:"violations,omitempty"`
	Recommendations   []string    `json:"recommendations,omitempty"`
	SelectedStandards []string    `json:"selectedStandards,omitempty"`
}
